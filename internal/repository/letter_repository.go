// internal/repository/letter_repository.go
package repository

import (
	"context"
	"errors"

	"go_huruf_practice/internal/model"

	"gorm.io/gorm"
)

type LetterRepository interface {
	FindByLabel(ctx context.Context, db *gorm.DB, ar string) (*model.Letter, error)
	ListOrdered(ctx context.Context, db *gorm.DB) ([]*model.Letter, error)
}

type gormLetterRepository struct{}

func NewGormLetterRepository() LetterRepository {
	return &gormLetterRepository{}
}

// FindByLabel は表示ラベル (アラビア文字) を内部IDへ解決します。
// カタログにないラベルは model.ErrUnknownLetter を返します。
func (r *gormLetterRepository) FindByLabel(ctx context.Context, db *gorm.DB, ar string) (*model.Letter, error) {
	var letter model.Letter
	result := db.WithContext(ctx).Where("ar = ?", ar).First(&letter)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrUnknownLetter
		}
		return nil, result.Error
	}
	return &letter, nil
}

// ListOrdered はカタログ全体を字母順で返します
func (r *gormLetterRepository) ListOrdered(ctx context.Context, db *gorm.DB) ([]*model.Letter, error) {
	var letters []*model.Letter
	result := db.WithContext(ctx).Order("order_index ASC").Find(&letters)
	if result.Error != nil {
		return nil, result.Error
	}
	return letters, nil
}
