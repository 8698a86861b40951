// internal/handlers/router.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"ssat_prep/internal/config"
	"ssat_prep/internal/middleware"
	"ssat_prep/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Pinger はヘルスチェック用です。*sql.DB が満たします。
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RouterDeps はルーター構築に必要な依存関係です。
type RouterDeps struct {
	Config   *config.Config
	Logger   *slog.Logger
	Learners service.LearnerService
	Words    service.WordService
	Reviews  service.ReviewService
	DB       Pinger
}

// NewRouter はミドルウェアとAPIルートを登録したルーターを返します。
func NewRouter(deps RouterDeps) *chi.Mux {
	cfg, logger := deps.Config, deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	learnerHandler := NewLearnerHandler(deps.Learners, logger)
	wordHandler := NewWordHandler(deps.Words, logger)
	reviewHandler := NewReviewHandler(deps.Reviews, logger)
	practiceHandler := NewPracticeHandler(deps.Reviews, logger)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		r.Use(middleware.DetailLoggingMiddleware(logger))
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/learners", learnerHandler.CreateLearner)

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware(cfg, deps.Learners, logger))

			r.Get("/learners/me", learnerHandler.GetMe)
			r.Delete("/learners/me", learnerHandler.DeleteMe)

			r.Route("/words", func(r chi.Router) {
				r.Post("/", wordHandler.PostWord)
				r.Get("/", wordHandler.GetWords)
				r.Get("/{word_id}", wordHandler.GetWord)
				r.Put("/{word_id}", wordHandler.PutWord)
				r.Patch("/{word_id}", wordHandler.PatchWord)
				r.Delete("/{word_id}", wordHandler.DeleteWord)
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", reviewHandler.GetReviewQueue)
				r.Get("/summary", reviewHandler.GetReviewSummary)
				r.Put("/{word_id}/result", reviewHandler.SubmitReviewResult)
				r.Put("/{word_id}/mastered", reviewHandler.MarkMastered)
				r.Delete("/{word_id}/mastered", reviewHandler.UnmarkMastered)
				r.Put("/{word_id}/star", reviewHandler.Star)
			})

			r.Get("/practice/vocabulary-focus", practiceHandler.GetVocabularyFocus)
		})
	})

	r.Get("/health", healthHandler(deps.DB))

	return r
}

// authMiddleware は設定に応じて JWT かモックセッションを選びます。
func authMiddleware(cfg *config.Config, learners service.LearnerService, logger *slog.Logger) func(http.Handler) http.Handler {
	if cfg.Auth.Mode == config.AuthModeJWT {
		logger.Info("Applying JWT authentication middleware")
		return middleware.JWTAuthMiddleware(cfg.JWT.SecretKey)
	}
	logger.Warn("Applying development authentication middleware (X-Learner-ID header)")
	var verifier middleware.LearnerVerifier
	if learners != nil {
		verifier = learners
	}
	return middleware.DevLearnerContextMiddleware(verifier)
}

func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
			return
		}
		if err := db.PingContext(r.Context()); err != nil {
			middleware.GetLogger(r.Context()).Error("Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
