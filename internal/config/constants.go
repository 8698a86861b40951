// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "ssat-prep"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort       = ":8080"
	DefaultDatabaseDriver   = "postgres"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "json"
	DefaultLocale           = "en"
	DefaultAuthMode         = AuthModeDev
	DefaultAppReviewLimit   = 20
	DefaultMaxReviewLimit   = 100
	DefaultFocusCount       = 10
	DefaultReminderInterval = 60
	DefaultReminderStart    = 8
	DefaultReminderEnd      = 21
)

// 認証モード
const (
	AuthModeDev = "dev" // X-Learner-ID ヘッダーをそのまま信用する
	AuthModeJWT = "jwt"
)
