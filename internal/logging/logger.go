// internal/logging/logger.go
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"ssat_prep/internal/config"

	"github.com/lmittmann/tint"
)

// ParseLevel は設定値をログレベルに変換します。不明な値は Info 扱いで ok=false を返します。
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// NewHandler は設定に応じた slog.Handler を返します。
// APP_ENV=dev のときは format に関係なく tint を使います。
func NewHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	level, ok := ParseLevel(cfg.Level)
	if !ok {
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", cfg.Level))
	}

	format := strings.ToLower(cfg.Format)
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		format = "tint"
	}

	switch format {
	case "tint":
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC3339,
		})
	case "text":
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	default:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level, AddSource: true})
	}
}

// New は標準エラー出力向けのロガーを作り、デフォルトロガーにも設定します。
func New(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(NewHandler(os.Stderr, cfg))
	slog.SetDefault(logger)
	return logger
}
