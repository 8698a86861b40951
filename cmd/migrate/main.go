// cmd/migrate/main.go
package main

import (
	"log/slog"
	"os"

	"ssat_prep/internal/config"
	"ssat_prep/internal/logging"
	"ssat_prep/internal/repository"

	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run はマイグレーションを実行し、終了コードを返します。
func run(args []string) int {
	fs := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	configPath := fs.StringP("config", "c", "configs", "directory containing config.yaml")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		return 1
	}
	logger := logging.New(cfg.Log)

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
	defer sqlDB.Close()

	if err := repository.AutoMigrate(db); err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		return 1
	}
	logger.Info("Migration completed", slog.String("driver", cfg.Database.Driver))
	return 0
}
