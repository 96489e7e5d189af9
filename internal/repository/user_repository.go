// internal/repository/user_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go_huruf_practice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *model.User) error
	FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error)
	FindByDisplayName(ctx context.Context, db *gorm.DB, displayName string) (*model.User, error)
	Delete(ctx context.Context, db *gorm.DB, userID uuid.UUID) error
}

type gormUserRepository struct{}

func NewGormUserRepository() UserRepository {
	return &gormUserRepository{}
}

func (r *gormUserRepository) Create(ctx context.Context, db *gorm.DB, user *model.User) error {
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		// display_name のUNIQUE違反は重複エラーとして返す
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return model.ErrConflict
		}
		return fmt.Errorf("gormUserRepository.Create: %w", err)
	}
	return nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error) {
	var user model.User
	result := db.WithContext(ctx).Where("id = ?", userID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *gormUserRepository) FindByDisplayName(ctx context.Context, db *gorm.DB, displayName string) (*model.User, error) {
	var user model.User
	result := db.WithContext(ctx).Where("display_name = ?", displayName).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

// Delete はユーザー行を削除します。attempts / user_levels は外部キーの
// ON DELETE CASCADE で追従します。
func (r *gormUserRepository) Delete(ctx context.Context, db *gorm.DB, userID uuid.UUID) error {
	result := db.WithContext(ctx).Where("id = ?", userID).Delete(&model.User{})
	if result.Error != nil {
		return fmt.Errorf("gormUserRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
