// internal/service/level_service_test.go
package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go_huruf_practice/internal/model"
	"go_huruf_practice/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func defaultThresholds() []*model.LevelThreshold {
	seed := model.DefaultLevelThresholds()
	out := make([]*model.LevelThreshold, len(seed))
	for i := range seed {
		out[i] = &seed[i]
	}
	return out
}

// --- Test Promote ---

func Test_levelService_Promote(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name      string
		totals    *model.ProgressTotals
		wantLevel int
	}{
		{
			// 正答率は足りないので回数だけではレベル2にならない
			name:      "正常系: 20試行・正答率50%はレベル1のまま",
			totals:    &model.ProgressTotals{N: 20, Correct: 10, Accuracy: 0.5},
			wantLevel: 1,
		},
		{
			name:      "正常系: 50試行・正答率70%でレベル2に昇格",
			totals:    &model.ProgressTotals{N: 50, Correct: 35, Accuracy: 0.7},
			wantLevel: 2,
		},
		{
			name:      "正常系: 境界値ちょうど (50試行・65%) で昇格する",
			totals:    &model.ProgressTotals{N: 50, Correct: 33, Accuracy: 0.65},
			wantLevel: 2,
		},
		{
			// 回数はレベル3相当でも正答率が届かなければレベル2止まり
			name:      "正常系: 200試行・正答率70%はレベル2",
			totals:    &model.ProgressTotals{N: 200, Correct: 140, Accuracy: 0.7},
			wantLevel: 2,
		},
		{
			name:      "正常系: 600試行・正答率95%で最高レベル5",
			totals:    &model.ProgressTotals{N: 600, Correct: 570, Accuracy: 0.95},
			wantLevel: 5,
		},
		{
			// 高水位を保持しないため、成績が落ちればレベルも下がる
			name:      "正常系: 正答率の低下でレベルが下がる (降格あり)",
			totals:    &model.ProgressTotals{N: 60, Correct: 24, Accuracy: 0.4},
			wantLevel: 1,
		},
		{
			name:      "正常系: 試行ゼロはレベル1",
			totals:    &model.ProgressTotals{N: 0, Correct: 0, Accuracy: 0.0},
			wantLevel: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db := setupTestDBAttempt()
			mockProgRepo := new(mocks.ProgressRepository)
			mockLevelRepo := new(mocks.LevelRepository)

			mockProgRepo.On("Totals", ctx, mock.AnythingOfType("*gorm.DB"), userID).
				Return(tc.totals, nil).Once()
			mockLevelRepo.On("ListThresholds", ctx, mock.AnythingOfType("*gorm.DB")).
				Return(defaultThresholds(), nil).Once()
			mockLevelRepo.On("UpsertUserLevel", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserLevel")).
				Run(func(args mock.Arguments) {
					ul := args.Get(2).(*model.UserLevel)
					assert.Equal(t, userID, ul.UserID)
					assert.Equal(t, tc.wantLevel, ul.Level)
					assert.Equal(t, time.UTC, ul.UpdatedAt.Location())
				}).Return(nil).Once()

			svc := NewLevelService(db, mockProgRepo, mockLevelRepo)

			got, err := svc.Promote(ctx, userID)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tc.wantLevel, got.Level)

			mockProgRepo.AssertExpectations(t)
			mockLevelRepo.AssertExpectations(t)
		})
	}

	t.Run("異常系: 集計の読み取り失敗で昇格処理は中断される", func(t *testing.T) {
		db := setupTestDBAttempt()
		mockProgRepo := new(mocks.ProgressRepository)
		mockLevelRepo := new(mocks.LevelRepository)

		mockProgRepo.On("Totals", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(nil, errors.New("db gone")).Once()
		// ListThresholds / UpsertUserLevel は呼ばれない

		svc := NewLevelService(db, mockProgRepo, mockLevelRepo)

		got, err := svc.Promote(ctx, userID)
		require.Error(t, err)
		assert.Nil(t, got)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Detail.Code)

		mockProgRepo.AssertExpectations(t)
		mockLevelRepo.AssertExpectations(t)
	})
}

// --- Test GetUserLevel ---

func Test_levelService_GetUserLevel(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("正常系: 保存済みレベルが返る", func(t *testing.T) {
		db := setupTestDBAttempt()
		mockProgRepo := new(mocks.ProgressRepository)
		mockLevelRepo := new(mocks.LevelRepository)

		stored := &model.UserLevel{UserID: userID, Level: 3, UpdatedAt: time.Now().UTC()}
		mockLevelRepo.On("FindUserLevel", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(stored, nil).Once()

		svc := NewLevelService(db, mockProgRepo, mockLevelRepo)

		got, err := svc.GetUserLevel(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 3, got.Level)

		mockLevelRepo.AssertExpectations(t)
	})

	t.Run("異常系: ラップされた未検出エラーでもLEVEL_NOT_FOUNDになる", func(t *testing.T) {
		db := setupTestDBAttempt()
		mockProgRepo := new(mocks.ProgressRepository)
		mockLevelRepo := new(mocks.LevelRepository)

		// センチネルがラップされて返っても errors.Is で判定できること
		wrapped := fmt.Errorf("gormLevelRepository.FindUserLevel: %w", model.ErrNotFound)
		mockLevelRepo.On("FindUserLevel", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(nil, wrapped).Once()

		svc := NewLevelService(db, mockProgRepo, mockLevelRepo)

		got, err := svc.GetUserLevel(ctx, userID)
		require.Error(t, err)
		assert.Nil(t, got)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "LEVEL_NOT_FOUND", appErr.Detail.Code)

		mockLevelRepo.AssertExpectations(t)
	})

	t.Run("異常系: 未計算のユーザーはLEVEL_NOT_FOUND", func(t *testing.T) {
		db := setupTestDBAttempt()
		mockProgRepo := new(mocks.ProgressRepository)
		mockLevelRepo := new(mocks.LevelRepository)

		mockLevelRepo.On("FindUserLevel", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewLevelService(db, mockProgRepo, mockLevelRepo)

		got, err := svc.GetUserLevel(ctx, userID)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, model.ErrNotFound)

		mockLevelRepo.AssertExpectations(t)
	})
}
