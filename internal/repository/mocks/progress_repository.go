// Code generated manually in mockery style. Keep in sync with repository.ProgressRepository.
package mocks

import (
	"context"
	"time"

	"go_huruf_practice/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type ProgressRepository struct {
	mock.Mock
}

func (m *ProgressRepository) PerLetterStats(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.LetterStat, error) {
	args := m.Called(ctx, db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.LetterStat), args.Error(1)
}

func (m *ProgressRepository) Totals(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.ProgressTotals, error) {
	args := m.Called(ctx, db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProgressTotals), args.Error(1)
}

func (m *ProgressRepository) DailySeries(ctx context.Context, db *gorm.DB, userID uuid.UUID, since time.Time, letterIDs []int) ([]*model.DailyStat, error) {
	args := m.Called(ctx, db, userID, since, letterIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.DailyStat), args.Error(1)
}
