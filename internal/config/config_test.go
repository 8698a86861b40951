package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: ":9090"
database:
  driver: sqlite
  url: "file::memory:"
app:
  review_limit: 15
  locale: ja
auth:
  mode: jwt
jwt:
  secret_key: test-secret
reminder:
  enabled: true
  interval_minutes: 30
  start_hour: 7
  end_hour: 20
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 15, cfg.App.ReviewLimit)
	assert.Equal(t, DefaultMaxReviewLimit, cfg.App.MaxReviewLimit)
	assert.Equal(t, "ja", cfg.App.Locale)
	assert.Equal(t, AuthModeJWT, cfg.Auth.Mode)
	assert.True(t, cfg.Reminder.Enabled)
	assert.Equal(t, 30, cfg.Reminder.IntervalMinutes)
	assert.Equal(t, 7, cfg.Reminder.StartHour)
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DefaultDatabaseDriver, cfg.Database.Driver)
	assert.Equal(t, DefaultAppReviewLimit, cfg.App.ReviewLimit)
	assert.Equal(t, DefaultAuthMode, cfg.Auth.Mode)
	assert.Equal(t, DefaultReminderInterval, cfg.Reminder.IntervalMinutes)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	dir := writeConfig(t, "app:\n  review_limit: 15\n")
	t.Setenv("APP_APP_REVIEW_LIMIT", "42")
	t.Setenv("APP_DATABASE_URL", "postgres://example")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.App.ReviewLimit)
	assert.Equal(t, "postgres://example", cfg.Database.URL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "jwtなのに鍵なし", body: "auth:\n  mode: jwt\n"},
		{name: "未知のドライバ", body: "database:\n  driver: mysql\n"},
		{name: "未知の認証モード", body: "auth:\n  mode: oauth\n"},
		{name: "時刻が範囲外", body: "reminder:\n  start_hour: 25\n"},
		{name: "終了時刻が負", body: "reminder:\n  start_hour: 22\n  end_hour: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_OvernightReminderWindow(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "reminder:\n  enabled: true\n  start_hour: 22\n  end_hour: 6\n"))
	require.NoError(t, err)
	assert.Equal(t, 22, cfg.Reminder.StartHour)
	assert.Equal(t, 6, cfg.Reminder.EndHour)
}

func TestLoadConfig_NormalizesLimits(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "app:\n  review_limit: -3\n  max_review_limit: 5\n  focus_count: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAppReviewLimit, cfg.App.ReviewLimit)
	assert.Equal(t, DefaultAppReviewLimit, cfg.App.MaxReviewLimit)
	assert.Equal(t, DefaultFocusCount, cfg.App.FocusCount)
}
