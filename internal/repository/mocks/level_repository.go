// Code generated manually in mockery style. Keep in sync with repository.LevelRepository.
package mocks

import (
	"context"

	"go_huruf_practice/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type LevelRepository struct {
	mock.Mock
}

func (m *LevelRepository) ListThresholds(ctx context.Context, db *gorm.DB) ([]*model.LevelThreshold, error) {
	args := m.Called(ctx, db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.LevelThreshold), args.Error(1)
}

func (m *LevelRepository) UpsertUserLevel(ctx context.Context, db *gorm.DB, userLevel *model.UserLevel) error {
	args := m.Called(ctx, db, userLevel)
	return args.Error(0)
}

func (m *LevelRepository) FindUserLevel(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.UserLevel, error) {
	args := m.Called(ctx, db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserLevel), args.Error(1)
}
