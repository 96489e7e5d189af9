// internal/repository/session_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_huruf_practice/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRepository はセッションフラグ (現在ユーザー、ツアー進行状況など) の
// 永続キーバリューストアです。
type SessionRepository interface {
	Get(ctx context.Context, db *gorm.DB, key string) (string, error)
	Set(ctx context.Context, db *gorm.DB, key, value string) error
	Remove(ctx context.Context, db *gorm.DB, key string) error
	RemoveByPrefix(ctx context.Context, db *gorm.DB, prefix string) error
}

type gormSessionRepository struct{}

func NewGormSessionRepository() SessionRepository {
	return &gormSessionRepository{}
}

func (r *gormSessionRepository) Get(ctx context.Context, db *gorm.DB, key string) (string, error) {
	var flag model.SessionFlag
	result := db.WithContext(ctx).Where("key = ?", key).First(&flag)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", model.ErrNotFound
		}
		return "", fmt.Errorf("gormSessionRepository.Get: %w", result.Error)
	}
	return flag.Value, nil
}

func (r *gormSessionRepository) Set(ctx context.Context, db *gorm.DB, key, value string) error {
	flag := &model.SessionFlag{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(flag)
	if result.Error != nil {
		return fmt.Errorf("gormSessionRepository.Set: %w", result.Error)
	}
	return nil
}

// Remove はフラグを削除します。存在しないキーはエラーにしません。
func (r *gormSessionRepository) Remove(ctx context.Context, db *gorm.DB, key string) error {
	result := db.WithContext(ctx).Where("key = ?", key).Delete(&model.SessionFlag{})
	if result.Error != nil {
		return fmt.Errorf("gormSessionRepository.Remove: %w", result.Error)
	}
	return nil
}

// RemoveByPrefix は接頭辞が一致するフラグをまとめて削除します
// (アカウント削除時のツアーフラグ掃除に使用)。
func (r *gormSessionRepository) RemoveByPrefix(ctx context.Context, db *gorm.DB, prefix string) error {
	result := db.WithContext(ctx).Where("key LIKE ?", prefix+"%").Delete(&model.SessionFlag{})
	if result.Error != nil {
		return fmt.Errorf("gormSessionRepository.RemoveByPrefix: %w", result.Error)
	}
	return nil
}
