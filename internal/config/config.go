// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Path string `mapstructure:"path"` // 端末ローカルのsqliteファイルパス
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type AppConfig struct {
	RecentLimit int `mapstructure:"recent_limit"` // 履歴APIのデフォルト件数
	TrendDays   int `mapstructure:"trend_days"`   // トレンド集計の日数
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type JWTConfig struct {
	SecretKey    string `mapstructure:"secret_key"`
	ExpiresHours int    `mapstructure:"expires_hours"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	App      AppConfig      `mapstructure:"app"`
	Auth     AuthConfig     `mapstructure:"auth"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数での上書き (例: APP_AUTH_ENABLED, APP_JWT_SECRET_KEY)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("database.path", "DATABASE_PATH")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Println("Server port not set, using default ':8080'")
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Database.Path == "" {
		log.Println("Database path not set, using default 'data/practice.db'")
		Cfg.Database.Path = DefaultDatabasePath
	}
	if Cfg.App.RecentLimit <= 0 {
		log.Println("App recent limit not set or invalid, using default '20'")
		Cfg.App.RecentLimit = DefaultRecentLimit
	}
	if Cfg.App.TrendDays <= 0 {
		Cfg.App.TrendDays = DefaultTrendDays
	}
	if Cfg.JWT.ExpiresHours <= 0 {
		Cfg.JWT.ExpiresHours = DefaultJWTExpiresHours
	}
	if Cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set in config.")
	}

	// Auth.Enabled のデフォルト値を設定 (未設定なら true = 有効 にする)
	if !viper.IsSet("auth.enabled") {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		Cfg.Auth.Enabled = true
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Database Path: %s", Cfg.Database.Path)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)

	return nil
}
