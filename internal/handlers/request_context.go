// internal/handlers/request_context.go
package handlers

import (
	"log/slog"
	"net/http"

	"ssat_prep/internal/middleware"
	"ssat_prep/internal/model"
	"ssat_prep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// learnerFromRequest は認証ミドルウェアが設定した学習者IDを取り出します。
// 失敗時はエラーレスポンスを書き込み false を返します。
func learnerFromRequest(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return uuid.Nil, false
	}
	return learnerID, true
}

func wordIDFromURL(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	wordIDStr := chi.URLParam(r, "word_id")
	wordID, err := uuid.Parse(wordIDStr)
	if err != nil {
		logger.Warn("Invalid word ID format in URL", slog.String("word_id_str", wordIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "word_id must be a valid UUID.", "word_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return wordID, true
}

// decodeAndValidate はボディのデコードとタグによる検証をまとめて行います。
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}) bool {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "The request body is not valid JSON for this endpoint.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return false
	}
	if err := webutil.ValidateStruct(dst); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return false
	}
	return true
}
