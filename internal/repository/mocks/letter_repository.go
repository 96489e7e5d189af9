// Code generated manually in mockery style. Keep in sync with repository.LetterRepository.
package mocks

import (
	"context"

	"go_huruf_practice/internal/model"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type LetterRepository struct {
	mock.Mock
}

func (m *LetterRepository) FindByLabel(ctx context.Context, db *gorm.DB, ar string) (*model.Letter, error) {
	args := m.Called(ctx, db, ar)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Letter), args.Error(1)
}

func (m *LetterRepository) ListOrdered(ctx context.Context, db *gorm.DB) ([]*model.Letter, error) {
	args := m.Called(ctx, db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Letter), args.Error(1)
}
