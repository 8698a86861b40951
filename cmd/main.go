// cmd/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ssat_prep/internal/config"
	"ssat_prep/internal/handlers"
	"ssat_prep/internal/logging"
	"ssat_prep/internal/reminder"
	"ssat_prep/internal/repository"
	"ssat_prep/internal/service"
	"ssat_prep/internal/webutil"

	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run はサーバーを起動し、停止後に終了コードを返します。os.Exit は main でだけ呼びます。
func run(args []string) int {
	fs := pflag.NewFlagSet("ssat-prep", pflag.ContinueOnError)
	configPath := fs.StringP("config", "c", "configs", "directory containing config.yaml")
	migrate := fs.Bool("migrate", false, "run database migrations before starting")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// 設定読み込み中は一時的なロガーを使う
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		return 1
	}

	logger := logging.New(cfg.Log)
	if !webutil.SetLocale(cfg.App.Locale) {
		logger.Warn("Unsupported locale, falling back to English", slog.String("locale", cfg.App.Locale))
	}

	logger.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	db, err := repository.NewDB(cfg.Database.Driver, cfg.Database.URL, logger)
	if err != nil {
		logger.Error("Error initializing database", slog.Any("error", err))
		return 1
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return 1
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error("Error closing database connection", slog.Any("error", err))
		} else {
			logger.Info("Database connection closed.")
		}
	}()

	if *migrate {
		if err := repository.AutoMigrate(db); err != nil {
			logger.Error("Error running migrations", slog.Any("error", err))
			return 1
		}
		logger.Info("Database migrated")
	}

	learnerRepo := repository.NewGormLearnerRepository()
	wordRepo := repository.NewGormWordRepository()
	itemRepo := repository.NewGormReviewItemRepository()

	learnerService := service.NewLearnerService(db, learnerRepo)
	wordService := service.NewWordService(db, wordRepo, itemRepo)
	reviewService := service.NewReviewService(db, wordRepo, itemRepo, cfg)

	r := handlers.NewRouter(handlers.RouterDeps{
		Config:   cfg,
		Logger:   logger,
		Learners: learnerService,
		Words:    wordService,
		Reviews:  reviewService,
		DB:       sqlDB,
	})

	var reminders *reminder.Scheduler
	if cfg.Reminder.Enabled {
		reminders = reminder.New(cfg.Reminder, learnerService, reviewService, reminder.LogNotifier{Logger: logger}, logger)
		if err := reminders.Start(); err != nil {
			logger.Error("Could not start reminder scheduler", slog.Any("error", err))
			return 1
		}
	}

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 70 * time.Second, // ルーター側のタイムアウト(60秒)より長く
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	exitCode := 0
	select {
	case sig := <-quit:
		logger.Info("Shutting down server...", slog.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		exitCode = 1
	}

	if reminders != nil {
		reminders.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", slog.Any("error", err))
		exitCode = 1
	}

	logger.Info("Server exiting")
	return exitCode
}
