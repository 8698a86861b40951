// internal/handlers/learner_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"ssat_prep/internal/model"
	"ssat_prep/internal/service"
	"ssat_prep/internal/webutil"
)

type LearnerHandler struct {
	service service.LearnerService
	logger  *slog.Logger
}

func NewLearnerHandler(s service.LearnerService, logger *slog.Logger) *LearnerHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LearnerHandler{service: s, logger: logger}
}

// CreateLearner は学習者を登録します (認証不要)
func (h *LearnerHandler) CreateLearner(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateLearner"))

	var req model.CreateLearnerRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	learner, err := h.service.CreateLearner(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Learner created successfully", slog.String("learner_id", learner.LearnerID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, model.NewLearnerResponse(learner), logger)
}

func (h *LearnerHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMe"))

	learnerID, ok := learnerFromRequest(w, r, logger)
	if !ok {
		return
	}

	learner, err := h.service.GetLearner(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.NewLearnerResponse(learner), logger)
}

// DeleteMe は認証中の学習者を削除します。
func (h *LearnerHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteMe"))

	learnerID, ok := learnerFromRequest(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.DeleteLearner(r.Context(), learnerID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Learner deleted successfully", slog.String("learner_id", learnerID.String()))
	w.WriteHeader(http.StatusNoContent)
}
