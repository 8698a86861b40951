// internal/handlers/practice_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"ssat_prep/internal/service"
	"ssat_prep/internal/webutil"
)

// PracticeHandler は問題生成側に渡す出題候補を返します。
type PracticeHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewPracticeHandler(s service.ReviewService, logger *slog.Logger) *PracticeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PracticeHandler{service: s, logger: logger}
}

func (h *PracticeHandler) GetVocabularyFocus(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetVocabularyFocus"))

	learnerID, ok := learnerFromRequest(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()))

	count, err := webutil.QueryInt(r, "count", 0)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	focus, err := h.service.GetVocabularyFocus(r.Context(), learnerID, count)
	if err != nil {
		logger.Error("Error selecting focus words", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocabulary focus returned", slog.Int("count", len(focus.Words)))
	webutil.RespondWithJSON(w, http.StatusOK, focus, logger)
}
