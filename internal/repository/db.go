package repository

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB は端末ローカルのsqliteファイルへのGORM接続を確立します。
// マイグレーションは Migrator が担当するため、ここでは接続設定のみを行います。
func NewDB(path string, appLogger *slog.Logger) (*gorm.DB, error) {

	// === slog を利用する GORM Logger の設定 ===
	var gormLogLevel gormlogger.LogLevel
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	)
	finalGormLogger := slogGormLogger.LogMode(gormLogLevel)

	// DBファイルの親ディレクトリを作成 (インメモリDSNの場合は不要)
	if !strings.HasPrefix(path, "file:") {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				appLogger.Error("Failed to create database directory", slog.Any("error", err))
				return nil, err
			}
		}
	}

	// 外部キー制約を有効化 (attempts→users のカスケード削除に必要)
	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&_fk=1"
	} else {
		dsn += "?_fk=1"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: finalGormLogger,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	// sqliteは単一ライターのため接続は1本に固定する
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	appLogger.Info("Database connection established with GORM", slog.String("path", path))

	return db, nil
}
