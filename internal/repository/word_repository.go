//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"

	"ssat_prep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WordRepository は学習者の単語帳です。削除は論理削除で、削除済みの単語はどのメソッドからも見えません。
type WordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, word *model.Word) error
	FindByID(ctx context.Context, db *gorm.DB, learnerID, wordID uuid.UUID) (*model.Word, error)
	FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]*model.Word, error)
	Update(ctx context.Context, tx *gorm.DB, learnerID, wordID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, learnerID, wordID uuid.UUID) error
	CheckTermExists(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, term string, excludeWordID *uuid.UUID) (bool, error)
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func (r *gormWordRepository) Create(ctx context.Context, tx *gorm.DB, word *model.Word) error {
	if err := tx.WithContext(ctx).Create(word).Error; err != nil {
		return dbError(ctx, "gormWordRepository.Create", err, "learner_id", word.LearnerID.String(), "term", word.Term)
	}
	return nil
}

func (r *gormWordRepository) FindByID(ctx context.Context, db *gorm.DB, learnerID, wordID uuid.UUID) (*model.Word, error) {
	var word model.Word
	if err := db.WithContext(ctx).Scopes(ofLearnerWord(learnerID, wordID)).First(&word).Error; err != nil {
		return nil, dbError(ctx, "gormWordRepository.FindByID", err, "word_id", wordID.String())
	}
	return &word, nil
}

// FindByLearner は綴りのアルファベット順で返します。
func (r *gormWordRepository) FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]*model.Word, error) {
	var words []*model.Word
	if err := db.WithContext(ctx).Scopes(ofLearner(learnerID)).Order("term ASC").Find(&words).Error; err != nil {
		return nil, dbError(ctx, "gormWordRepository.FindByLearner", err, "learner_id", learnerID.String())
	}
	return words, nil
}

// Update は updates のカラムだけを書き換えます。空なら何もしません。
func (r *gormWordRepository) Update(ctx context.Context, tx *gorm.DB, learnerID, wordID uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Word{}).Scopes(ofLearnerWord(learnerID, wordID)).Updates(updates)
	if result.Error != nil {
		return dbError(ctx, "gormWordRepository.Update", result.Error, "word_id", wordID.String())
	}
	return mustAffect(result)
}

func (r *gormWordRepository) Delete(ctx context.Context, tx *gorm.DB, learnerID, wordID uuid.UUID) error {
	result := tx.WithContext(ctx).Scopes(ofLearnerWord(learnerID, wordID)).Delete(&model.Word{})
	if result.Error != nil {
		return dbError(ctx, "gormWordRepository.Delete", result.Error, "word_id", wordID.String())
	}
	return mustAffect(result)
}

// CheckTermExists は同じ学習者の単語帳に同じ綴り(大文字小文字を区別しない)があるかを返します。
// excludeWordID を渡すとその単語自身は数えません。
func (r *gormWordRepository) CheckTermExists(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, term string, excludeWordID *uuid.UUID) (bool, error) {
	query := db.WithContext(ctx).Model(&model.Word{}).Scopes(ofLearner(learnerID)).Where("LOWER(term) = LOWER(?)", term)
	if excludeWordID != nil {
		query = query.Where("word_id <> ?", *excludeWordID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, dbError(ctx, "gormWordRepository.CheckTermExists", err, "term", term)
	}
	return count > 0, nil
}
