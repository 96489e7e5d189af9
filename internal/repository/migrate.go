package repository

import (
	"context"
	"fmt"
	"log/slog"

	"go_huruf_practice/internal/model"

	"gorm.io/gorm"
)

// migration は1つのスキーマバージョンアップを表します。
// Statements はトランザクション内で適用され、Seed はコミット後に
// トランザクション外で実行されます (冪等であること)。
type migration struct {
	Version    int
	Name       string
	Statements []string
	Seed       func(ctx context.Context, db *gorm.DB, logger *slog.Logger) error
}

// Migrator は _meta(version) の単一行マーカーを基準に、未適用の
// マイグレーションをバージョン昇順で適用します。
type Migrator struct {
	db         *gorm.DB
	logger     *slog.Logger
	migrations []migration
}

func NewMigrator(db *gorm.DB, logger *slog.Logger) *Migrator {
	return &Migrator{
		db:         db,
		logger:     logger,
		migrations: allMigrations(),
	}
}

// Run はスキーマを最新バージョンまで引き上げます。起動時に一度だけ呼ばれ、
// 失敗した場合アプリは続行できません (呼び出し側でfatal扱い)。
func (m *Migrator) Run(ctx context.Context) error {
	if err := m.ensureMeta(ctx); err != nil {
		return err
	}

	current, err := m.currentVersion(ctx)
	if err != nil {
		return err
	}

	for _, mig := range m.migrations {
		if mig.Version <= current {
			continue
		}

		m.logger.Info("Applying migration",
			slog.Int("version", mig.Version), slog.String("name", mig.Name))

		// スキーマ変更とバージョン更新を1トランザクションで行う。
		// 失敗時は全体をロールバックしてエラーを伝播する。
		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, stmt := range mig.Statements {
				if err := tx.Exec(stmt).Error; err != nil {
					return fmt.Errorf("migration %d (%s): %w", mig.Version, mig.Name, err)
				}
			}
			if err := tx.Exec("UPDATE _meta SET version = ?", mig.Version).Error; err != nil {
				return fmt.Errorf("migration %d (%s): update version marker: %w", mig.Version, mig.Name, err)
			}
			return nil
		})
		if err != nil {
			m.logger.Error("Migration failed, rolled back",
				slog.Int("version", mig.Version), slog.Any("error", err))
			return err
		}
	}

	// シードはコミット後にトランザクション外で、適用済みバージョンも含めて
	// 毎回実行する (行数ガードで冪等)。バージョン更新の後にシードが失敗しても
	// 次回起動のここで回復する。
	for _, mig := range m.migrations {
		if mig.Seed == nil {
			continue
		}
		if err := mig.Seed(ctx, m.db, m.logger); err != nil {
			m.logger.Error("Seed step failed",
				slog.Int("version", mig.Version), slog.Any("error", err))
			return fmt.Errorf("migration %d (%s): seed: %w", mig.Version, mig.Name, err)
		}
	}

	return nil
}

func (m *Migrator) ensureMeta(ctx context.Context) error {
	db := m.db.WithContext(ctx)
	if err := db.Exec("CREATE TABLE IF NOT EXISTS _meta (version INTEGER NOT NULL)").Error; err != nil {
		return fmt.Errorf("ensure _meta: %w", err)
	}
	// 単一行マーカー。存在しない場合のみバージョン0で初期化する。
	if err := db.Exec("INSERT INTO _meta (version) SELECT 0 WHERE NOT EXISTS (SELECT 1 FROM _meta)").Error; err != nil {
		return fmt.Errorf("init _meta: %w", err)
	}
	return nil
}

func (m *Migrator) currentVersion(ctx context.Context) (int, error) {
	var version int
	if err := m.db.WithContext(ctx).Raw("SELECT version FROM _meta").Scan(&version).Error; err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

// タイムスタンプ列は DATETIME で宣言すること。格納形式はISOテキストのままだが、
// TEXT宣言だとドライバが読み取り時に time.Time へ変換してくれない。
func allMigrations() []migration {
	return []migration{
		{
			Version: 1,
			Name:    "create users, letters, attempts",
			Statements: []string{
				`CREATE TABLE IF NOT EXISTS users (
					id TEXT PRIMARY KEY,
					display_name TEXT NOT NULL UNIQUE,
					password_hash TEXT NOT NULL,
					created_at DATETIME NOT NULL
				)`,
				`CREATE TABLE IF NOT EXISTS letters (
					id INTEGER PRIMARY KEY,
					ar TEXT NOT NULL UNIQUE,
					en TEXT NOT NULL,
					order_index INTEGER NOT NULL
				)`,
				`CREATE TABLE IF NOT EXISTS attempts (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					target_letter_id INTEGER NOT NULL REFERENCES letters(id),
					predicted_letter_id INTEGER REFERENCES letters(id),
					correct INTEGER NOT NULL,
					confidence REAL,
					duration_ms INTEGER,
					audio_uri TEXT,
					created_at DATETIME NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_attempts_user_created ON attempts(user_id, created_at)`,
				`CREATE INDEX IF NOT EXISTS idx_attempts_target_letter ON attempts(target_letter_id)`,
			},
			Seed: seedLetters,
		},
		{
			Version: 2,
			Name:    "create levels, user_levels, session_flags",
			Statements: []string{
				`CREATE TABLE IF NOT EXISTS levels (
					level INTEGER PRIMARY KEY,
					min_accuracy REAL NOT NULL,
					min_attempts INTEGER NOT NULL
				)`,
				`CREATE TABLE IF NOT EXISTS user_levels (
					user_id TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
					level INTEGER NOT NULL REFERENCES levels(level),
					updated_at DATETIME NOT NULL
				)`,
				`CREATE TABLE IF NOT EXISTS session_flags (
					key TEXT PRIMARY KEY,
					value TEXT NOT NULL,
					updated_at DATETIME NOT NULL
				)`,
			},
			Seed: seedLevelThresholds,
		},
	}
}

// seedLetters は正準28文字をシードします。既にデータがある場合は何もしません。
func seedLetters(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Letter{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	letters := model.CanonicalLetters()
	if err := db.WithContext(ctx).Create(&letters).Error; err != nil {
		return err
	}
	logger.Info("Seeded canonical letter catalog", slog.Int("count", len(letters)))
	return nil
}

// seedLevelThresholds はレベル到達条件をシードします。既にデータがある場合は何もしません。
func seedLevelThresholds(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.LevelThreshold{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	thresholds := model.DefaultLevelThresholds()
	if err := db.WithContext(ctx).Create(&thresholds).Error; err != nil {
		return err
	}
	logger.Info("Seeded level thresholds", slog.Int("count", len(thresholds)))
	return nil
}
