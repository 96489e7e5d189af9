// internal/repository/level_repository.go
package repository

import (
	"context"
	"errors"

	"go_huruf_practice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LevelRepository interface {
	ListThresholds(ctx context.Context, db *gorm.DB) ([]*model.LevelThreshold, error)
	UpsertUserLevel(ctx context.Context, db *gorm.DB, userLevel *model.UserLevel) error
	FindUserLevel(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.UserLevel, error)
}

type gormLevelRepository struct{}

func NewGormLevelRepository() LevelRepository {
	return &gormLevelRepository{}
}

// ListThresholds はレベル到達条件をレベル昇順で返します
func (r *gormLevelRepository) ListThresholds(ctx context.Context, db *gorm.DB) ([]*model.LevelThreshold, error) {
	var thresholds []*model.LevelThreshold
	result := db.WithContext(ctx).Order("level ASC").Find(&thresholds)
	if result.Error != nil {
		return nil, result.Error
	}
	return thresholds, nil
}

// UpsertUserLevel はユーザーの現在レベルを作成または更新します (1ユーザー1行)
func (r *gormLevelRepository) UpsertUserLevel(ctx context.Context, db *gorm.DB, userLevel *model.UserLevel) error {
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"level", "updated_at"}),
	}).Create(userLevel)
	return result.Error
}

func (r *gormLevelRepository) FindUserLevel(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.UserLevel, error) {
	var userLevel model.UserLevel
	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&userLevel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &userLevel, nil
}
