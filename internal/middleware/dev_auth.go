// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"errors"
	"net/http"

	"ssat_prep/internal/model"
	"ssat_prep/internal/webutil"

	"github.com/google/uuid"
)

const LearnerIDHeader = "X-Learner-ID"

// LearnerVerifier は学習者の存在確認に使います。
type LearnerVerifier interface {
	GetLearner(ctx context.Context, learnerID uuid.UUID) (*model.Learner, error)
}

// DevLearnerContextMiddleware はモックセッションです。
// X-Learner-ID ヘッダーのUUIDをそのままログイン中の学習者として扱います。
// verifier が nil でなければDB上に存在するかも確認します。
func DevLearnerContextMiddleware(verifier LearnerVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			learnerIDStr := r.Header.Get(LearnerIDHeader)
			if learnerIDStr == "" {
				logger.Warn("[DEV AUTH] Failed: X-Learner-ID header missing")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "X-Learner-ID header is required.", "", model.ErrUnauthorized))
				return
			}

			learnerID, err := uuid.Parse(learnerIDStr)
			if err != nil {
				logger.Warn("[DEV AUTH] Failed: Invalid X-Learner-ID format", "value", learnerIDStr)
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "X-Learner-ID must be a UUID.", "", model.ErrUnauthorized))
				return
			}

			if verifier != nil {
				if _, err := verifier.GetLearner(r.Context(), learnerID); err != nil {
					if errors.Is(err, model.ErrNotFound) {
						logger.Warn("[DEV AUTH] Failed: learner not found", "learner_id", learnerID.String())
						webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Unknown learner.", "", model.ErrUnauthorized))
						return
					}
					logger.Error("[DEV AUTH] Failed to verify learner", "error", err)
					webutil.HandleError(w, logger, err)
					return
				}
			}

			ctx := WithLearnerID(r.Context(), learnerID)
			ctx = WithLogger(ctx, logger.With("learner_id", learnerID.String()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
