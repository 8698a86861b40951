// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // postgres | sqlite
	URL    string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json | text | tint
}

type AppConfig struct {
	ReviewLimit    int    `mapstructure:"review_limit"`
	MaxReviewLimit int    `mapstructure:"max_review_limit"`
	FocusCount     int    `mapstructure:"focus_count"`
	Locale         string `mapstructure:"locale"` // バリデーションメッセージの言語 (en | ja)
}

type AuthConfig struct {
	Mode string `mapstructure:"mode"` // dev | jwt
}

type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type ReminderConfig struct {
	Enabled         bool `mapstructure:"enabled"`
	IntervalMinutes int  `mapstructure:"interval_minutes"`
	StartHour       int  `mapstructure:"start_hour"` // UTC
	EndHour         int  `mapstructure:"end_hour"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	App      AppConfig      `mapstructure:"app"`
	Auth     AuthConfig     `mapstructure:"auth"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Reminder ReminderConfig `mapstructure:"reminder"`
}

// LoadConfig は path と カレントディレクトリから config.yaml を読み込みます。
// 環境変数は APP_ 接頭辞 (例: APP_DATABASE_URL) で上書きできます。
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Warn("Config file not found. Using defaults and environment variables.", slog.String("path", path))
		} else {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	slog.Info("Config loaded",
		slog.String("port", cfg.Server.Port),
		slog.String("db_driver", cfg.Database.Driver),
		slog.Int("review_limit", cfg.App.ReviewLimit),
		slog.String("auth_mode", cfg.Auth.Mode),
		slog.Bool("reminder_enabled", cfg.Reminder.Enabled),
	)
	return &cfg, nil
}

// setDefaults は AutomaticEnv で上書きできるようキーを登録しておきます。
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("database.driver", DefaultDatabaseDriver)
	v.SetDefault("database.url", "")
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("app.review_limit", DefaultAppReviewLimit)
	v.SetDefault("app.max_review_limit", DefaultMaxReviewLimit)
	v.SetDefault("app.focus_count", DefaultFocusCount)
	v.SetDefault("app.locale", DefaultLocale)
	v.SetDefault("auth.mode", DefaultAuthMode)
	v.SetDefault("jwt.secret_key", "")
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Authorization", "Content-Type", "X-Learner-ID"})
	v.SetDefault("cors.max_age", 300)
	v.SetDefault("reminder.enabled", false)
	v.SetDefault("reminder.interval_minutes", DefaultReminderInterval)
	v.SetDefault("reminder.start_hour", DefaultReminderStart)
	v.SetDefault("reminder.end_hour", DefaultReminderEnd)
}

// normalize は不正値をデフォルトに戻し、組み合わせとして成立しない設定はエラーにします。
func (c *Config) normalize() error {
	if c.App.ReviewLimit <= 0 {
		slog.Warn("Invalid review limit, using default", slog.Int("review_limit", c.App.ReviewLimit))
		c.App.ReviewLimit = DefaultAppReviewLimit
	}
	if c.App.MaxReviewLimit < c.App.ReviewLimit {
		c.App.MaxReviewLimit = c.App.ReviewLimit
	}
	if c.App.FocusCount <= 0 {
		c.App.FocusCount = DefaultFocusCount
	}
	if c.Reminder.IntervalMinutes <= 0 {
		c.Reminder.IntervalMinutes = DefaultReminderInterval
	}
	if c.Reminder.StartHour < 0 || c.Reminder.StartHour > 23 || c.Reminder.EndHour < 0 || c.Reminder.EndHour > 23 {
		return fmt.Errorf("reminder hours must be within 0-23: start=%d end=%d", c.Reminder.StartHour, c.Reminder.EndHour)
	}

	c.Database.Driver = strings.ToLower(c.Database.Driver)
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}
	if c.Database.URL == "" {
		slog.Warn("Database URL is not set in config.")
	}

	c.Auth.Mode = strings.ToLower(c.Auth.Mode)
	switch c.Auth.Mode {
	case AuthModeDev:
	case AuthModeJWT:
		if c.JWT.SecretKey == "" {
			return errors.New("jwt.secret_key is required when auth.mode is jwt")
		}
	default:
		return fmt.Errorf("unsupported auth mode: %q", c.Auth.Mode)
	}
	return nil
}
