//go:generate mockery --name ReviewItemRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"

	"ssat_prep/internal/middleware"
	"ssat_prep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewItemRepository interface {
	Create(ctx context.Context, tx *gorm.DB, item *model.ReviewItem) error
	FindByWordID(ctx context.Context, db *gorm.DB, learnerID, wordID uuid.UUID) (*model.ReviewItem, error)
	// Update は Version が一致する場合だけ更新します。一致しなければ model.ErrConflict。
	Update(ctx context.Context, tx *gorm.DB, item *model.ReviewItem) error
	DeleteByWordID(ctx context.Context, tx *gorm.DB, learnerID, wordID uuid.UUID) error
	// ListWordsWithItems は削除されていない全単語と、あればその復習履歴を返します。
	ListWordsWithItems(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]model.WordWithReview, error)
}

type gormReviewItemRepository struct{}

func NewGormReviewItemRepository() ReviewItemRepository {
	return &gormReviewItemRepository{}
}

func (r *gormReviewItemRepository) Create(ctx context.Context, tx *gorm.DB, item *model.ReviewItem) error {
	if item.Version == 0 {
		item.Version = 1
	}
	// 同じ単語への同時初回操作は一意制約で model.ErrConflict になる
	if err := tx.WithContext(ctx).Create(item).Error; err != nil {
		return dbError(ctx, "gormReviewItemRepository.Create", err, "word_id", item.WordID.String())
	}
	return nil
}

func (r *gormReviewItemRepository) FindByWordID(ctx context.Context, db *gorm.DB, learnerID, wordID uuid.UUID) (*model.ReviewItem, error) {
	var item model.ReviewItem
	if err := db.WithContext(ctx).Scopes(ofLearnerWord(learnerID, wordID)).First(&item).Error; err != nil {
		return nil, dbError(ctx, "gormReviewItemRepository.FindByWordID", err, "word_id", wordID.String())
	}
	return &item, nil
}

func (r *gormReviewItemRepository) Update(ctx context.Context, tx *gorm.DB, item *model.ReviewItem) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.ReviewItem{}).
		Where("review_item_id = ? AND version = ?", item.ReviewItemID, item.Version).
		Updates(map[string]interface{}{
			"times_seen":        item.TimesSeen,
			"times_correct":     item.TimesCorrect,
			"interval_days":     item.IntervalDays,
			"ease_factor":       item.EaseFactor,
			"mastery_level":     item.MasteryLevel,
			"is_mastered":       item.IsMastered,
			"difficulty_rating": item.DifficultyRating,
			"next_review_at":    item.NextReviewAt,
			"last_seen_at":      item.LastSeenAt,
			"version":           item.Version + 1,
		})
	if result.Error != nil {
		return dbError(ctx, "gormReviewItemRepository.Update", result.Error, "review_item_id", item.ReviewItemID.String())
	}
	if result.RowsAffected == 0 {
		logger.Warn("Review item version mismatch", "review_item_id", item.ReviewItemID.String(), "version", item.Version)
		return model.ErrConflict
	}
	item.Version++
	return nil
}

func (r *gormReviewItemRepository) DeleteByWordID(ctx context.Context, tx *gorm.DB, learnerID, wordID uuid.UUID) error {
	// 履歴がない単語もあるので 0 件は正常
	if err := tx.WithContext(ctx).Scopes(ofLearnerWord(learnerID, wordID)).Delete(&model.ReviewItem{}).Error; err != nil {
		return dbError(ctx, "gormReviewItemRepository.DeleteByWordID", err, "word_id", wordID.String())
	}
	return nil
}

func (r *gormReviewItemRepository) ListWordsWithItems(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]model.WordWithReview, error) {
	var words []*model.Word
	err := db.WithContext(ctx).
		Preload("ReviewItem", "learner_id = ?", learnerID).
		Scopes(ofLearner(learnerID)).
		Order("created_at ASC").
		Find(&words).Error
	if err != nil {
		return nil, dbError(ctx, "gormReviewItemRepository.ListWordsWithItems", err, "learner_id", learnerID.String())
	}

	out := make([]model.WordWithReview, 0, len(words))
	for _, w := range words {
		item := w.ReviewItem
		w.ReviewItem = nil
		out = append(out, model.WordWithReview{Word: *w, ReviewItem: item})
	}
	return out, nil
}
