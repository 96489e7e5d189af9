// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "huruf-practice"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort      = ":8080"
	DefaultLogLevel        = "info"
	DefaultDatabasePath    = "data/practice.db"
	DefaultRecentLimit     = 20
	DefaultTrendDays       = 7
	DefaultJWTExpiresHours = 24 * 30 // ローカルアプリなので長め
)

// カタログの文字数 (正準アラビア文字28字)
const CanonicalLetterCount = 28
