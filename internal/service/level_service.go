package service

import (
	"context"
	"errors"
	"time"

	"go_huruf_practice/internal/middleware"
	"go_huruf_practice/internal/model"
	"go_huruf_practice/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LevelService はレベルの再計算と参照を担当します
type LevelService interface {
	Promote(ctx context.Context, userID uuid.UUID) (*model.UserLevel, error)
	GetUserLevel(ctx context.Context, userID uuid.UUID) (*model.UserLevel, error)
}

type levelService struct {
	db        *gorm.DB
	progRepo  repository.ProgressRepository
	levelRepo repository.LevelRepository
}

func NewLevelService(db *gorm.DB, progRepo repository.ProgressRepository, levelRepo repository.LevelRepository) LevelService {
	return &levelService{
		db:        db,
		progRepo:  progRepo,
		levelRepo: levelRepo,
	}
}

// Promote は累計成績からレベルを毎回ゼロから再計算し、user_levels へupsertします。
// 高水位を保持しないため、正答率が落ちればレベルは下がり得る (仕様通り)。
func (s *levelService) Promote(ctx context.Context, userID uuid.UUID) (*model.UserLevel, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	totals, err := s.progRepo.Totals(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to read totals for promotion", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "成績集計に失敗しました。", "", err)
	}

	thresholds, err := s.levelRepo.ListThresholds(ctx, s.db)
	if err != nil {
		logger.Error("Failed to read level thresholds", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "レベル条件の取得に失敗しました。", "", err)
	}

	// レベル昇順に走査し、試行回数と正答率の両方を満たす最高レベルを採用する
	level := 1
	for _, t := range thresholds {
		if totals.N >= t.MinAttempts && totals.Accuracy >= t.MinAccuracy {
			level = t.Level
		}
	}

	userLevel := &model.UserLevel{
		UserID:    userID,
		Level:     level,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.levelRepo.UpsertUserLevel(ctx, s.db, userLevel); err != nil {
		logger.Error("Failed to upsert user level", "level", level, "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "レベルの保存に失敗しました。", "", err)
	}

	logger.Info("User level recomputed", "level", level, "attempts", totals.N, "accuracy", totals.Accuracy)
	return userLevel, nil
}

func (s *levelService) GetUserLevel(ctx context.Context, userID uuid.UUID) (*model.UserLevel, error) {
	userLevel, err := s.levelRepo.FindUserLevel(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("LEVEL_NOT_FOUND", "レベルがまだ計算されていません。", "", model.ErrNotFound)
		}
		middleware.GetLogger(ctx).Error("Failed to fetch user level", "user_id", userID, "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "レベルの取得に失敗しました。", "", err)
	}
	return userLevel, nil
}
