//go:generate mockery --name LearnerRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"

	"ssat_prep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LearnerRepository interface {
	// Create は名前が使われていれば model.ErrConflict を返します。
	Create(ctx context.Context, db *gorm.DB, learner *model.Learner) error
	FindByID(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (*model.Learner, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Learner, error)
	List(ctx context.Context, db *gorm.DB) ([]*model.Learner, error)
	Delete(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) error
}

type gormLearnerRepository struct{}

func NewGormLearnerRepository() LearnerRepository {
	return &gormLearnerRepository{}
}

func (r *gormLearnerRepository) Create(ctx context.Context, db *gorm.DB, learner *model.Learner) error {
	if err := db.WithContext(ctx).Create(learner).Error; err != nil {
		return dbError(ctx, "gormLearnerRepository.Create", err, "name", learner.Name)
	}
	return nil
}

func (r *gormLearnerRepository) FindByID(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (*model.Learner, error) {
	var learner model.Learner
	if err := db.WithContext(ctx).Scopes(ofLearner(learnerID)).First(&learner).Error; err != nil {
		return nil, dbError(ctx, "gormLearnerRepository.FindByID", err, "learner_id", learnerID.String())
	}
	return &learner, nil
}

func (r *gormLearnerRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Learner, error) {
	var learner model.Learner
	if err := db.WithContext(ctx).Where("name = ?", name).First(&learner).Error; err != nil {
		return nil, dbError(ctx, "gormLearnerRepository.FindByName", err, "name", name)
	}
	return &learner, nil
}

// List は登録順に返します。リマインダーが全員を走査するのに使います。
func (r *gormLearnerRepository) List(ctx context.Context, db *gorm.DB) ([]*model.Learner, error) {
	var learners []*model.Learner
	if err := db.WithContext(ctx).Order("created_at ASC").Find(&learners).Error; err != nil {
		return nil, dbError(ctx, "gormLearnerRepository.List", err)
	}
	return learners, nil
}

// Delete は論理削除です。
func (r *gormLearnerRepository) Delete(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) error {
	result := db.WithContext(ctx).Scopes(ofLearner(learnerID)).Delete(&model.Learner{})
	if result.Error != nil {
		return dbError(ctx, "gormLearnerRepository.Delete", result.Error, "learner_id", learnerID.String())
	}
	return mustAffect(result)
}
