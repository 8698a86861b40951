// internal/handlers/review_handler.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"ssat_prep/internal/model"
	"ssat_prep/internal/service"
	"ssat_prep/internal/webutil"

	"github.com/google/uuid"
)

type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{service: s, logger: logger}
}

// GetReviewQueue は出題順に並べた復習キューを返します。?limit=N で件数を指定できます。
func (h *ReviewHandler) GetReviewQueue(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetReviewQueue"))

	learnerID, ok := learnerFromRequest(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()))

	limit, err := webutil.QueryInt(r, "limit", 0)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	queue, err := h.service.GetReviewQueue(r.Context(), learnerID, limit)
	if err != nil {
		logger.Error("Error building review queue", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if queue == nil {
		queue = []*model.ReviewQueueItem{}
	}
	logger.Info("Review queue returned", slog.Int("count", len(queue)))
	webutil.RespondWithJSON(w, http.StatusOK, queue, logger)
}

func (h *ReviewHandler) GetReviewSummary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetReviewSummary"))

	learnerID, ok := learnerFromRequest(w, r, logger)
	if !ok {
		return
	}

	summary, err := h.service.GetReviewSummary(r.Context(), learnerID)
	if err != nil {
		logger.Error("Error summarizing reviews", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, summary, logger)
}

// SubmitReviewResult は1問分の解答結果を反映します
func (h *ReviewHandler) SubmitReviewResult(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitReviewResult"))

	learnerID, ok := learnerFromRequest(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := wordIDFromURL(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()), slog.String("word_id", wordID.String()))

	var req model.SubmitReviewRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}
	if _, ok := req.ResolveQuality(); !ok {
		appErr := model.NewAppError("VALIDATION_ERROR", "Either quality or is_correct is required.", "quality", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	state, err := h.service.SubmitReview(r.Context(), learnerID, wordID, &req)
	if err != nil {
		logger.Error("Error submitting review result", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Review result submitted", slog.Float64("interval_days", state.IntervalDays))
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

func (h *ReviewHandler) MarkMastered(w http.ResponseWriter, r *http.Request) {
	h.applyAction(w, r, "MarkMastered", h.service.MarkMastered)
}

func (h *ReviewHandler) UnmarkMastered(w http.ResponseWriter, r *http.Request) {
	h.applyAction(w, r, "UnmarkMastered", h.service.UnmarkMastered)
}

func (h *ReviewHandler) Star(w http.ResponseWriter, r *http.Request) {
	h.applyAction(w, r, "Star", h.service.Star)
}

type reviewAction func(ctx context.Context, learnerID, wordID uuid.UUID) (*model.ReviewStateResponse, error)

// applyAction はボディを持たない操作 (覚えた/取り消し/苦手) の共通処理です。
func (h *ReviewHandler) applyAction(w http.ResponseWriter, r *http.Request, name string, action reviewAction) {
	logger := h.logger.With(slog.String("handler", name))

	learnerID, ok := learnerFromRequest(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := wordIDFromURL(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("learner_id", learnerID.String()), slog.String("word_id", wordID.String()))

	state, err := action(r.Context(), learnerID, wordID)
	if err != nil {
		logger.Error("Error applying review action", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Review action applied")
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}
