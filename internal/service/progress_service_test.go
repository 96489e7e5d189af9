// internal/service/progress_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"go_huruf_practice/internal/config"
	"go_huruf_practice/internal/model"
	"go_huruf_practice/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testProgressConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			RecentLimit: 20,
			TrendDays:   7,
		},
	}
}

// --- Test WeeklySeries ---

func Test_progressService_WeeklySeries(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("正常系: ウィンドウ起点は当日を含む直近7日", func(t *testing.T) {
		db := setupTestDBAttempt()
		mockProgRepo := new(mocks.ProgressRepository)
		mockAttemptRepo := new(mocks.AttemptRepository)

		wantSince := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -6)
		series := []*model.DailyStat{{Day: wantSince.Format("2006-01-02"), N: 3, Accuracy: 1.0}}

		mockProgRepo.On("DailySeries", ctx, mock.AnythingOfType("*gorm.DB"), userID, wantSince, []int(nil)).
			Return(series, nil).Once()

		svc := NewProgressService(db, mockProgRepo, mockAttemptRepo, testProgressConfig())

		got, err := svc.WeeklySeries(ctx, userID, nil)
		require.NoError(t, err)
		assert.Equal(t, series, got)

		mockProgRepo.AssertExpectations(t)
	})

	t.Run("正常系: 結果nilは空スライスに正規化される", func(t *testing.T) {
		db := setupTestDBAttempt()
		mockProgRepo := new(mocks.ProgressRepository)
		mockAttemptRepo := new(mocks.AttemptRepository)

		mockProgRepo.On("DailySeries", ctx, mock.AnythingOfType("*gorm.DB"), userID, mock.AnythingOfType("time.Time"), []int{1, 2}).
			Return(nil, nil).Once()

		svc := NewProgressService(db, mockProgRepo, mockAttemptRepo, testProgressConfig())

		got, err := svc.WeeklySeries(ctx, userID, []int{1, 2})
		require.NoError(t, err)
		require.NotNil(t, got) // JSONで null ではなく [] になる
		assert.Empty(t, got)

		mockProgRepo.AssertExpectations(t)
	})
}

// --- Test RecentAttempts ---

func Test_progressService_RecentAttempts(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name      string
		limit     int
		wantLimit int // リポジトリに渡る実効limit
	}{
		{name: "正常系: 0以下はデフォルト値にフォールバック", limit: 0, wantLimit: 20},
		{name: "正常系: 指定値がそのまま使われる", limit: 5, wantLimit: 5},
		{name: "正常系: 上限100でクランプされる", limit: 500, wantLimit: 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db := setupTestDBAttempt()
			mockProgRepo := new(mocks.ProgressRepository)
			mockAttemptRepo := new(mocks.AttemptRepository)

			mockAttemptRepo.On("FindRecentByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID, tc.wantLimit).
				Return([]*model.RecentAttempt{}, nil).Once()

			svc := NewProgressService(db, mockProgRepo, mockAttemptRepo, testProgressConfig())

			got, err := svc.RecentAttempts(ctx, userID, tc.limit)
			require.NoError(t, err)
			assert.NotNil(t, got)

			mockAttemptRepo.AssertExpectations(t)
		})
	}
}

// --- Test LetterStats / Totals ---

func Test_progressService_LetterStats(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("正常系: リポジトリの集計がそのまま返る", func(t *testing.T) {
		db := setupTestDBAttempt()
		mockProgRepo := new(mocks.ProgressRepository)
		mockAttemptRepo := new(mocks.AttemptRepository)

		stats := []*model.LetterStat{
			{LetterID: 1, Ar: "ا", En: "alef", N: 2, Correct: 1, Accuracy: 0.5},
		}
		mockProgRepo.On("PerLetterStats", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(stats, nil).Once()

		svc := NewProgressService(db, mockProgRepo, mockAttemptRepo, testProgressConfig())

		got, err := svc.LetterStats(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, stats, got)

		mockProgRepo.AssertExpectations(t)
	})
}

func Test_progressService_Totals(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("正常系: 全体集計がそのまま返る", func(t *testing.T) {
		db := setupTestDBAttempt()
		mockProgRepo := new(mocks.ProgressRepository)
		mockAttemptRepo := new(mocks.AttemptRepository)

		totals := &model.ProgressTotals{N: 10, Correct: 7, Accuracy: 0.7}
		mockProgRepo.On("Totals", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(totals, nil).Once()

		svc := NewProgressService(db, mockProgRepo, mockAttemptRepo, testProgressConfig())

		got, err := svc.Totals(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, totals, got)

		mockProgRepo.AssertExpectations(t)
	})
}
