package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ssat_prep/internal/config"
	"ssat_prep/internal/middleware"
	"ssat_prep/internal/model"
	"ssat_prep/internal/repository"
	"ssat_prep/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewService interface {
	GetReviewQueue(ctx context.Context, learnerID uuid.UUID, limit int) ([]*model.ReviewQueueItem, error)
	SubmitReview(ctx context.Context, learnerID, wordID uuid.UUID, req *model.SubmitReviewRequest) (*model.ReviewStateResponse, error)
	MarkMastered(ctx context.Context, learnerID, wordID uuid.UUID) (*model.ReviewStateResponse, error)
	UnmarkMastered(ctx context.Context, learnerID, wordID uuid.UUID) (*model.ReviewStateResponse, error)
	Star(ctx context.Context, learnerID, wordID uuid.UUID) (*model.ReviewStateResponse, error)
	GetVocabularyFocus(ctx context.Context, learnerID uuid.UUID, count int) (*model.VocabularyFocusResponse, error)
	GetReviewSummary(ctx context.Context, learnerID uuid.UUID) (*model.ReviewSummaryResponse, error)
}

type reviewService struct {
	db       *gorm.DB
	wordRepo repository.WordRepository
	itemRepo repository.ReviewItemRepository
	cfg      *config.Config
	now      func() time.Time
}

// ReviewOption は reviewService の設定を差し替えます。
type ReviewOption func(*reviewService)

// WithClock は現在時刻の取得元を差し替えます (テスト用)。
func WithClock(now func() time.Time) ReviewOption {
	return func(s *reviewService) {
		s.now = now
	}
}

func NewReviewService(db *gorm.DB, wordRepo repository.WordRepository, itemRepo repository.ReviewItemRepository, cfg *config.Config, opts ...ReviewOption) ReviewService {
	s := &reviewService{
		db:       db,
		wordRepo: wordRepo,
		itemRepo: itemRepo,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// queueEntry は並べ替え時に単語本文を持ち回るためのメタ情報です。
type queueEntry struct {
	word *model.Word
}

// rank は学習者の全単語を優先度順に並べます。キューと出題候補の両方で使います。
func (s *reviewService) rank(ctx context.Context, learnerID uuid.UUID, limit int, now time.Time) ([]srs.Ranked[queueEntry], error) {
	rows, err := s.itemRepo.ListWordsWithItems(ctx, s.db, learnerID)
	if err != nil {
		return nil, err
	}

	candidates := make([]srs.Candidate[queueEntry], 0, len(rows))
	for i := range rows {
		candidates = append(candidates, srs.Candidate[queueEntry]{
			Item: rows[i].State(now),
			Meta: queueEntry{word: &rows[i].Word},
		})
	}
	return srs.RankForReview(candidates, limit, now), nil
}

func (s *reviewService) resolveLimit(limit int) int {
	if limit <= 0 {
		return s.cfg.App.ReviewLimit
	}
	if s.cfg.App.MaxReviewLimit > 0 && limit > s.cfg.App.MaxReviewLimit {
		return s.cfg.App.MaxReviewLimit
	}
	return limit
}

// GetReviewQueue は今出題すべき単語を優先度順に返します。limit が 0 以下なら設定値を使います。
func (s *reviewService) GetReviewQueue(ctx context.Context, learnerID uuid.UUID, limit int) ([]*model.ReviewQueueItem, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)
	now := s.now()

	ranked, err := s.rank(ctx, learnerID, s.resolveLimit(limit), now)
	if err != nil {
		logger.Error("Failed to load words for review queue", "error", err)
		return nil, internalError("Failed to build the review queue.", err)
	}

	queue := make([]*model.ReviewQueueItem, 0, len(ranked))
	for _, r := range ranked {
		w := r.Meta.word
		queue = append(queue, &model.ReviewQueueItem{
			WordID:          w.WordID,
			Term:            w.Term,
			Definition:      w.Definition,
			PartOfSpeech:    w.PartOfSpeech,
			ExampleSentence: w.ExampleSentence,
			Label:           r.Label,
			Category:        r.Category.String(),
			Tier:            r.Tier,
			DaysOverdue:     r.DaysOverdue,
			State:           model.NewReviewStateResponse(w.WordID, r.Item),
		})
	}

	logger.Debug("Review queue built", "count", len(queue))
	return queue, nil
}

// GetVocabularyFocus は問題生成向けに上位 count 件をラベルごとに分けて返します。
func (s *reviewService) GetVocabularyFocus(ctx context.Context, learnerID uuid.UUID, count int) (*model.VocabularyFocusResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)
	if count <= 0 {
		count = s.cfg.App.FocusCount
	}

	ranked, err := s.rank(ctx, learnerID, s.resolveLimit(count), s.now())
	if err != nil {
		logger.Error("Failed to load words for vocabulary focus", "error", err)
		return nil, internalError("Failed to select focus words.", err)
	}

	resp := &model.VocabularyFocusResponse{
		Words:   make([]model.FocusWord, 0, len(ranked)),
		ByLabel: make(map[srs.Label][]model.FocusWord),
	}
	for _, r := range ranked {
		fw := model.FocusWord{
			WordID:     r.Meta.word.WordID,
			Term:       r.Meta.word.Term,
			Definition: r.Meta.word.Definition,
			Label:      r.Label,
		}
		resp.Words = append(resp.Words, fw)
		resp.ByLabel[r.Label] = append(resp.ByLabel[r.Label], fw)
	}
	return resp, nil
}

func (s *reviewService) GetReviewSummary(ctx context.Context, learnerID uuid.UUID) (*model.ReviewSummaryResponse, error) {
	now := s.now()
	rows, err := s.itemRepo.ListWordsWithItems(ctx, s.db, learnerID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to load words for summary", "learner_id", learnerID, "error", err)
		return nil, internalError("Failed to summarize reviews.", err)
	}

	items := make([]srs.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.State(now))
	}
	summary := srs.Summarize(items, now)
	return &model.ReviewSummaryResponse{
		LearnerID: learnerID,
		Summary:   summary,
		Pending:   summary.Pending(),
	}, nil
}

func (s *reviewService) SubmitReview(ctx context.Context, learnerID, wordID uuid.UUID, req *model.SubmitReviewRequest) (*model.ReviewStateResponse, error) {
	quality, ok := req.ResolveQuality()
	if !ok {
		return nil, model.NewAppError("VALIDATION_ERROR", "Either quality or is_correct is required.", "quality", model.ErrInvalidInput)
	}
	return s.mutate(ctx, learnerID, wordID, "SubmitReview", func(it srs.Item, now time.Time) (srs.Item, error) {
		if req.DifficultyRating != nil {
			return srs.ApplyReviewWithDifficulty(it, quality, *req.DifficultyRating, now)
		}
		return srs.ApplyReview(it, quality, now)
	})
}

func (s *reviewService) MarkMastered(ctx context.Context, learnerID, wordID uuid.UUID) (*model.ReviewStateResponse, error) {
	return s.mutate(ctx, learnerID, wordID, "MarkMastered", func(it srs.Item, now time.Time) (srs.Item, error) {
		return srs.ApplyMaster(it, now), nil
	})
}

func (s *reviewService) UnmarkMastered(ctx context.Context, learnerID, wordID uuid.UUID) (*model.ReviewStateResponse, error) {
	return s.mutate(ctx, learnerID, wordID, "UnmarkMastered", func(it srs.Item, now time.Time) (srs.Item, error) {
		return srs.ApplyUnmaster(it, now), nil
	})
}

func (s *reviewService) Star(ctx context.Context, learnerID, wordID uuid.UUID) (*model.ReviewStateResponse, error) {
	return s.mutate(ctx, learnerID, wordID, "Star", func(it srs.Item, now time.Time) (srs.Item, error) {
		return srs.ApplyStar(it, now), nil
	})
}

// mutate は単語の存在確認、履歴の取得(無ければ作成)、状態遷移、保存を1トランザクションで行います。
func (s *reviewService) mutate(ctx context.Context, learnerID, wordID uuid.UUID, op string, apply func(srs.Item, time.Time) (srs.Item, error)) (*model.ReviewStateResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "word_id", wordID, "op", op)
	now := s.now()

	var result srs.Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.wordRepo.FindByID(ctx, tx, learnerID, wordID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return errWordNotFound
			}
			return err
		}

		item, err := s.itemRepo.FindByWordID(ctx, tx, learnerID, wordID)
		isNew := false
		if err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				return err
			}
			item = model.NewReviewItem(learnerID, wordID, now)
			isNew = true
		}

		next, err := apply(item.State(), now)
		if err != nil {
			return model.NewAppError("VALIDATION_ERROR", err.Error(), "", fmt.Errorf("%w: %w", model.ErrInvalidInput, err))
		}
		item.SetState(next)

		if isNew {
			err = s.itemRepo.Create(ctx, tx, item)
		} else {
			err = s.itemRepo.Update(ctx, tx, item)
		}
		if err != nil {
			return err
		}
		result = next
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		switch {
		case errors.As(err, &appErr):
			return nil, err
		case errors.Is(err, model.ErrConflict):
			logger.Warn("Concurrent review update detected")
			return nil, model.NewAppError("REVIEW_CONFLICT", "The review state was changed by another request. Please retry.", "", model.ErrConflict)
		default:
			logger.Error("Transaction failed for review update", "error", err)
			return nil, internalError("Failed to update the review state.", err)
		}
	}

	logger.Info("Review state updated",
		slogAttrs(result)...,
	)
	return model.NewReviewStateResponse(wordID, result), nil
}

func slogAttrs(it srs.Item) []any {
	return []any{
		"interval_days", it.IntervalDays,
		"ease_factor", it.EaseFactor,
		"mastery_level", it.MasteryLevel,
		"is_mastered", it.IsMastered,
		"next_review_at", it.NextReviewAt,
	}
}
