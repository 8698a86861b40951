// internal/service/learner_service.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"ssat_prep/internal/middleware"
	"ssat_prep/internal/model"
	"ssat_prep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LearnerService interface {
	CreateLearner(ctx context.Context, req *model.CreateLearnerRequest) (*model.Learner, error)
	GetLearner(ctx context.Context, learnerID uuid.UUID) (*model.Learner, error)
	GetLearnerByName(ctx context.Context, name string) (*model.Learner, error)
	ListLearners(ctx context.Context) ([]*model.Learner, error)
	DeleteLearner(ctx context.Context, learnerID uuid.UUID) error
}

type learnerService struct {
	db          *gorm.DB
	learnerRepo repository.LearnerRepository
}

func NewLearnerService(db *gorm.DB, repo repository.LearnerRepository) LearnerService {
	return &learnerService{db: db, learnerRepo: repo}
}

func (s *learnerService) CreateLearner(ctx context.Context, req *model.CreateLearnerRequest) (*model.Learner, error) {
	logger := middleware.GetLogger(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "name is a required field", "name", model.ErrInvalidInput)
	}
	level := req.TestLevel
	if level == "" {
		level = model.TestLevelUpper
	}

	learner := &model.Learner{
		LearnerID: uuid.New(),
		Name:      name,
		TestLevel: level,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.learnerRepo.Create(ctx, tx, learner)
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Warn("Learner name already taken", "name", name)
			return nil, model.NewAppError("LEARNER_NAME_TAKEN", "A learner with this name already exists.", "name", model.ErrConflict)
		}
		logger.Error("Failed to create learner", "error", err)
		return nil, internalError("Failed to create the learner.", err)
	}

	logger.Info("Learner created", "learner_id", learner.LearnerID.String())
	return learner, nil
}

// GetLearner は指定されたIDの学習者を取得します (認証用にも利用)
func (s *learnerService) GetLearner(ctx context.Context, learnerID uuid.UUID) (*model.Learner, error) {
	learner, err := s.learnerRepo.FindByID(ctx, s.db, learnerID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("LEARNER_NOT_FOUND", "The learner was not found.", "", model.ErrNotFound)
		}
		return nil, internalError("Failed to load the learner.", err)
	}
	return learner, nil
}

func (s *learnerService) GetLearnerByName(ctx context.Context, name string) (*model.Learner, error) {
	learner, err := s.learnerRepo.FindByName(ctx, s.db, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("LEARNER_NOT_FOUND", "The learner was not found.", "name", model.ErrNotFound)
		}
		return nil, internalError("Failed to load the learner.", err)
	}
	return learner, nil
}

func (s *learnerService) ListLearners(ctx context.Context) ([]*model.Learner, error) {
	learners, err := s.learnerRepo.List(ctx, s.db)
	if err != nil {
		return nil, internalError("Failed to list learners.", err)
	}
	return learners, nil
}

// DeleteLearner は学習者を論理削除します。以降その学習者の認証は通りません。
// 名前の一意制約は削除済みの行にも残るため、同じ名前では再登録できません。
func (s *learnerService) DeleteLearner(ctx context.Context, learnerID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With(slog.String("learner_id", learnerID.String()))

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.learnerRepo.Delete(ctx, tx, learnerID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("LEARNER_NOT_FOUND", "The learner was not found.", "", model.ErrNotFound)
		}
		return internalError("Failed to delete the learner.", err)
	}

	logger.Info("Learner deleted")
	return nil
}
