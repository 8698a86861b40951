// internal/handlers/word_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"ssat_prep/internal/model"
	"ssat_prep/internal/service"
	"ssat_prep/internal/webutil"
)

type WordHandler struct {
	service service.WordService
	logger  *slog.Logger
}

func NewWordHandler(s service.WordService, logger *slog.Logger) *WordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordHandler{
		service: s,
		logger:  logger,
	}
}

// PostWord は単語帳に単語を追加します
func (h *WordHandler) PostWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostWord"))

	learnerID, ok := learnerFromRequest(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()))

	var req model.PostWordRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	word, err := h.service.PostWord(r.Context(), learnerID, &req)
	if err != nil {
		logger.Error("Error posting word in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word posted successfully", slog.String("word_id", word.WordID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, word, logger)
}

func (h *WordHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWords"))

	learnerID, ok := learnerFromRequest(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()))

	words, err := h.service.GetWords(r.Context(), learnerID)
	if err != nil {
		logger.Error("Error listing words in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if words == nil {
		words = []*model.Word{}
	}
	logger.Info("Words listed successfully", slog.Int("count", len(words)))
	webutil.RespondWithJSON(w, http.StatusOK, words, logger)
}

func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWord"))

	learnerID, ok := learnerFromRequest(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := wordIDFromURL(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()), slog.String("word_id", wordID.String()))

	word, err := h.service.GetWord(r.Context(), learnerID, wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Word not found in service")
		} else {
			logger.Error("Error getting word from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

// PutWord は単語の内容を丸ごと置き換えます
func (h *WordHandler) PutWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutWord"))

	learnerID, ok := learnerFromRequest(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := wordIDFromURL(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()), slog.String("word_id", wordID.String()))

	var req model.PutWordRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	word, err := h.service.PutWord(r.Context(), learnerID, wordID, &req)
	if err != nil {
		logger.Error("Error putting word in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word put successfully")
	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

// PatchWord は指定されたフィールドだけを更新します
func (h *WordHandler) PatchWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchWord"))

	learnerID, ok := learnerFromRequest(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := wordIDFromURL(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()), slog.String("word_id", wordID.String()))

	var req model.PatchWordRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	word, err := h.service.PatchWord(r.Context(), learnerID, wordID, &req)
	if err != nil {
		logger.Error("Error patching word in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word patched successfully")
	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteWord"))

	learnerID, ok := learnerFromRequest(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := wordIDFromURL(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()), slog.String("word_id", wordID.String()))

	if err := h.service.DeleteWord(r.Context(), learnerID, wordID); err != nil {
		logger.Error("Error deleting word in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}
