package service

import (
	"context"
	"time"

	"go_huruf_practice/internal/config"
	"go_huruf_practice/internal/middleware"
	"go_huruf_practice/internal/model"
	"go_huruf_practice/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressService は進捗集計の読み取り操作を提供します。全て副作用なし。
type ProgressService interface {
	LetterStats(ctx context.Context, userID uuid.UUID) ([]*model.LetterStat, error)
	Totals(ctx context.Context, userID uuid.UUID) (*model.ProgressTotals, error)
	WeeklySeries(ctx context.Context, userID uuid.UUID, letterIDs []int) ([]*model.DailyStat, error)
	RecentAttempts(ctx context.Context, userID uuid.UUID, limit int) ([]*model.RecentAttempt, error)
}

type progressService struct {
	db          *gorm.DB
	progRepo    repository.ProgressRepository
	attemptRepo repository.AttemptRepository
	cfg         *config.Config
}

func NewProgressService(db *gorm.DB, progRepo repository.ProgressRepository, attemptRepo repository.AttemptRepository, cfg *config.Config) ProgressService {
	return &progressService{
		db:          db,
		progRepo:    progRepo,
		attemptRepo: attemptRepo,
		cfg:         cfg,
	}
}

func (s *progressService) LetterStats(ctx context.Context, userID uuid.UUID) ([]*model.LetterStat, error) {
	stats, err := s.progRepo.PerLetterStats(ctx, s.db, userID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to compute per-letter stats", "user_id", userID, "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "文字別の成績集計に失敗しました。", "", err)
	}
	return stats, nil
}

func (s *progressService) Totals(ctx context.Context, userID uuid.UUID) (*model.ProgressTotals, error) {
	totals, err := s.progRepo.Totals(ctx, s.db, userID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to compute totals", "user_id", userID, "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "成績集計に失敗しました。", "", err)
	}
	return totals, nil
}

// WeeklySeries は直近 TrendDays 日 (当日を含む) のトレンドを返します
func (s *progressService) WeeklySeries(ctx context.Context, userID uuid.UUID, letterIDs []int) ([]*model.DailyStat, error) {
	days := s.cfg.App.TrendDays
	if days <= 0 {
		days = config.DefaultTrendDays
	}
	// UTCの当日0時から (days-1) 日さかのぼった時点をウィンドウの起点とする
	today := time.Now().UTC().Truncate(24 * time.Hour)
	since := today.AddDate(0, 0, -(days - 1))

	series, err := s.progRepo.DailySeries(ctx, s.db, userID, since, letterIDs)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to compute weekly series", "user_id", userID, "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トレンド集計に失敗しました。", "", err)
	}
	if series == nil {
		series = []*model.DailyStat{}
	}
	return series, nil
}

func (s *progressService) RecentAttempts(ctx context.Context, userID uuid.UUID, limit int) ([]*model.RecentAttempt, error) {
	if limit <= 0 {
		limit = s.cfg.App.RecentLimit
	}
	if limit > 100 {
		limit = 100
	}

	attempts, err := s.attemptRepo.FindRecentByUser(ctx, s.db, userID, limit)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to fetch recent attempts", "user_id", userID, "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "履歴の取得に失敗しました。", "", err)
	}
	if attempts == nil {
		attempts = []*model.RecentAttempt{}
	}
	return attempts, nil
}
