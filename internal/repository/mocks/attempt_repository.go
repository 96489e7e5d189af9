// Code generated manually in mockery style. Keep in sync with repository.AttemptRepository.
package mocks

import (
	"context"

	"go_huruf_practice/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type AttemptRepository struct {
	mock.Mock
}

func (m *AttemptRepository) Create(ctx context.Context, db *gorm.DB, attempt *model.Attempt) error {
	args := m.Called(ctx, db, attempt)
	return args.Error(0)
}

func (m *AttemptRepository) FindRecentByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.RecentAttempt, error) {
	args := m.Called(ctx, db, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.RecentAttempt), args.Error(1)
}
