// internal/service/word_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"ssat_prep/internal/middleware"
	"ssat_prep/internal/model"
	"ssat_prep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WordService interface {
	PostWord(ctx context.Context, learnerID uuid.UUID, req *model.PostWordRequest) (*model.Word, error)
	GetWords(ctx context.Context, learnerID uuid.UUID) ([]*model.Word, error)
	GetWord(ctx context.Context, learnerID, wordID uuid.UUID) (*model.Word, error)
	PutWord(ctx context.Context, learnerID, wordID uuid.UUID, req *model.PutWordRequest) (*model.Word, error)
	PatchWord(ctx context.Context, learnerID, wordID uuid.UUID, req *model.PatchWordRequest) (*model.Word, error)
	DeleteWord(ctx context.Context, learnerID, wordID uuid.UUID) error
}

type wordService struct {
	db       *gorm.DB // トランザクション用
	wordRepo repository.WordRepository
	itemRepo repository.ReviewItemRepository
}

func NewWordService(db *gorm.DB, wordRepo repository.WordRepository, itemRepo repository.ReviewItemRepository) WordService {
	return &wordService{
		db:       db,
		wordRepo: wordRepo,
		itemRepo: itemRepo,
	}
}

var (
	errWordNotFound = model.NewAppError("WORD_NOT_FOUND", "The word was not found.", "word_id", model.ErrNotFound)
	errTermTaken    = model.NewAppError("WORD_ALREADY_EXISTS", "This word is already in your word bank.", "term", model.ErrConflict)
)

// PostWord は単語を登録します。復習履歴は最初の操作時に作るので、ここでは作りません。
func (s *wordService) PostWord(ctx context.Context, learnerID uuid.UUID, req *model.PostWordRequest) (*model.Word, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	term := strings.TrimSpace(req.Term)
	if term == "" || strings.TrimSpace(req.Definition) == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "term and definition are required.", "", model.ErrInvalidInput)
	}

	word := &model.Word{
		WordID:          uuid.New(),
		LearnerID:       learnerID,
		Term:            term,
		Definition:      strings.TrimSpace(req.Definition),
		PartOfSpeech:    req.PartOfSpeech,
		ExampleSentence: req.ExampleSentence,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.wordRepo.CheckTermExists(ctx, tx, learnerID, term, nil)
		if err != nil {
			return err
		}
		if exists {
			return errTermTaken
		}
		if err := s.wordRepo.Create(ctx, tx, word); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return errTermTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for PostWord", "error", err)
		return nil, internalError("Failed to register the word.", err)
	}

	logger.Info("Word created", "word_id", word.WordID.String(), "term", word.Term)
	return word, nil
}

func (s *wordService) GetWords(ctx context.Context, learnerID uuid.UUID) ([]*model.Word, error) {
	words, err := s.wordRepo.FindByLearner(ctx, s.db, learnerID)
	if err != nil {
		return nil, internalError("Failed to list words.", err)
	}
	if words == nil {
		words = []*model.Word{}
	}
	return words, nil
}

func (s *wordService) GetWord(ctx context.Context, learnerID, wordID uuid.UUID) (*model.Word, error) {
	word, err := s.wordRepo.FindByID(ctx, s.db, learnerID, wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errWordNotFound
		}
		return nil, internalError("Failed to load the word.", err)
	}
	return word, nil
}

func (s *wordService) PutWord(ctx context.Context, learnerID, wordID uuid.UUID, req *model.PutWordRequest) (*model.Word, error) {
	term := strings.TrimSpace(req.Term)
	definition := strings.TrimSpace(req.Definition)
	if term == "" || definition == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "term and definition are required.", "", model.ErrInvalidInput)
	}
	return s.update(ctx, learnerID, wordID, "PutWord", func(word *model.Word) map[string]interface{} {
		return map[string]interface{}{
			"term":             term,
			"definition":       definition,
			"part_of_speech":   req.PartOfSpeech,
			"example_sentence": req.ExampleSentence,
		}
	})
}

func (s *wordService) PatchWord(ctx context.Context, learnerID, wordID uuid.UUID, req *model.PatchWordRequest) (*model.Word, error) {
	if req.IsEmpty() {
		return nil, model.NewAppError("VALIDATION_ERROR", "No fields were provided for update.", "", model.ErrInvalidInput)
	}
	return s.update(ctx, learnerID, wordID, "PatchWord", func(word *model.Word) map[string]interface{} {
		updates := make(map[string]interface{})
		if req.Term != nil && strings.TrimSpace(*req.Term) != "" {
			updates["term"] = strings.TrimSpace(*req.Term)
		}
		if req.Definition != nil && strings.TrimSpace(*req.Definition) != "" {
			updates["definition"] = strings.TrimSpace(*req.Definition)
		}
		if req.PartOfSpeech != nil {
			updates["part_of_speech"] = *req.PartOfSpeech
		}
		if req.ExampleSentence != nil {
			updates["example_sentence"] = *req.ExampleSentence
		}
		return updates
	})
}

// update は存在確認・綴りの重複確認・更新・再取得を1トランザクションで行います。
func (s *wordService) update(ctx context.Context, learnerID, wordID uuid.UUID, op string, buildUpdates func(*model.Word) map[string]interface{}) (*model.Word, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "word_id", wordID, "op", op)

	var updated *model.Word
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		word, err := s.wordRepo.FindByID(ctx, tx, learnerID, wordID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return errWordNotFound
			}
			return err
		}

		updates := buildUpdates(word)
		if term, ok := updates["term"].(string); ok && !strings.EqualFold(term, word.Term) {
			exists, err := s.wordRepo.CheckTermExists(ctx, tx, learnerID, term, &wordID)
			if err != nil {
				return err
			}
			if exists {
				return errTermTaken
			}
		}

		if len(updates) > 0 {
			if err := s.wordRepo.Update(ctx, tx, learnerID, wordID, updates); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return errWordNotFound
				}
				return err
			}
		}

		updated, err = s.wordRepo.FindByID(ctx, tx, learnerID, wordID)
		return err
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for word update", "error", err)
		return nil, internalError("Failed to update the word.", err)
	}

	logger.Info("Word updated")
	return updated, nil
}

// DeleteWord は単語を論理削除し、その復習履歴も消します。
func (s *wordService) DeleteWord(ctx context.Context, learnerID, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "word_id", wordID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.wordRepo.Delete(ctx, tx, learnerID, wordID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return errWordNotFound
			}
			return err
		}
		return s.itemRepo.DeleteByWordID(ctx, tx, learnerID, wordID)
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return err
		}
		logger.Error("Transaction failed for DeleteWord", "error", err)
		return internalError("Failed to delete the word.", err)
	}

	logger.Info("Word deleted")
	return nil
}
