package service

import (
	"context"
	"errors"
	"fmt"

	"go_huruf_practice/internal/middleware"
	"go_huruf_practice/internal/model"
	"go_huruf_practice/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TourService はオンボーディング用ガイドツアーの状態機械を提供します。
// 状態は home → levels → practice → profile → done の一方向で、
// どの操作もエラーにはならず、境界では単にクランプされます。
type TourService interface {
	Start(ctx context.Context, userID uuid.UUID) (*model.TourStateResponse, error)
	Next(ctx context.Context, userID uuid.UUID) (*model.TourStateResponse, error)
	MarkPracticeDone(ctx context.Context, userID uuid.UUID) (*model.TourStateResponse, error)
	Finish(ctx context.Context, userID uuid.UUID) error
	Current(ctx context.Context, userID uuid.UUID) (*model.TourStateResponse, error)
}

type tourService struct {
	db          *gorm.DB
	sessionRepo repository.SessionRepository
}

func NewTourService(db *gorm.DB, sessionRepo repository.SessionRepository) TourService {
	return &tourService{
		db:          db,
		sessionRepo: sessionRepo,
	}
}

func tourActiveKey(userID uuid.UUID) string {
	return fmt.Sprintf("tour:%s:active", userID)
}

func tourStepKey(userID uuid.UUID) string {
	return fmt.Sprintf("tour:%s:step", userID)
}

// Start はツアーを home にリセットして有効化し、ユーザー単位で永続化します
func (s *tourService) Start(ctx context.Context, userID uuid.UUID) (*model.TourStateResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if err := s.persist(ctx, userID, model.TourStepHome); err != nil {
		logger.Error("Failed to start tour", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ツアーの開始に失敗しました。", "", err)
	}
	return &model.TourStateResponse{Active: true, Step: model.TourStepHome.String()}, nil
}

// Next は固定順序で1ステップ進めます。終端では何もしません。
// ツアーが無効ならno-op (エラーにしない)。
func (s *tourService) Next(ctx context.Context, userID uuid.UUID) (*model.TourStateResponse, error) {
	active, step, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !active {
		return &model.TourStateResponse{Active: false, Step: step.String()}, nil
	}

	next := model.NextTourStep(step)
	if next != step {
		if err := s.persist(ctx, userID, next); err != nil {
			middleware.GetLogger(ctx).Error("Failed to advance tour", "user_id", userID, "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ツアーの更新に失敗しました。", "", err)
		}
	}
	return &model.TourStateResponse{Active: true, Step: next.String()}, nil
}

// MarkPracticeDone は初回練習の成功後に呼ばれ、現在位置に関わらず profile へ
// ショートカットします。ツアーが無効ならno-op。
func (s *tourService) MarkPracticeDone(ctx context.Context, userID uuid.UUID) (*model.TourStateResponse, error) {
	active, step, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !active {
		return &model.TourStateResponse{Active: false, Step: step.String()}, nil
	}

	if err := s.persist(ctx, userID, model.TourStepProfile); err != nil {
		middleware.GetLogger(ctx).Error("Failed to mark practice done", "user_id", userID, "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ツアーの更新に失敗しました。", "", err)
	}
	return &model.TourStateResponse{Active: true, Step: model.TourStepProfile.String()}, nil
}

// Finish はツアーを終了し、永続化していたフラグを削除します。
// 以降アプリを再起動してもツアーは再開されない。
func (s *tourService) Finish(ctx context.Context, userID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if err := s.sessionRepo.Remove(ctx, s.db, tourActiveKey(userID)); err != nil {
		logger.Error("Failed to clear tour active flag", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "ツアーの終了に失敗しました。", "", err)
	}
	if err := s.sessionRepo.Remove(ctx, s.db, tourStepKey(userID)); err != nil {
		logger.Error("Failed to clear tour step flag", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "ツアーの終了に失敗しました。", "", err)
	}
	return nil
}

// Current は永続化されたフラグから状態を復元します (アプリ起動時のリハイドレート)
func (s *tourService) Current(ctx context.Context, userID uuid.UUID) (*model.TourStateResponse, error) {
	active, step, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.TourStateResponse{Active: active, Step: step.String()}, nil
}

func (s *tourService) load(ctx context.Context, userID uuid.UUID) (bool, model.TourStep, error) {
	activeVal, err := s.sessionRepo.Get(ctx, s.db, tourActiveKey(userID))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// フラグなし = ツアーは休止状態
			return false, model.TourStepHome, nil
		}
		middleware.GetLogger(ctx).Error("Failed to load tour state", "user_id", userID, "error", err)
		return false, model.TourStepHome, model.NewAppError("INTERNAL_SERVER_ERROR", "ツアー状態の取得に失敗しました。", "", err)
	}
	if activeVal != "1" {
		return false, model.TourStepHome, nil
	}

	stepVal, err := s.sessionRepo.Get(ctx, s.db, tourStepKey(userID))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return true, model.TourStepHome, nil
		}
		middleware.GetLogger(ctx).Error("Failed to load tour step", "user_id", userID, "error", err)
		return false, model.TourStepHome, model.NewAppError("INTERNAL_SERVER_ERROR", "ツアー状態の取得に失敗しました。", "", err)
	}
	return true, model.ParseTourStep(stepVal), nil
}

func (s *tourService) persist(ctx context.Context, userID uuid.UUID, step model.TourStep) error {
	if err := s.sessionRepo.Set(ctx, s.db, tourActiveKey(userID), "1"); err != nil {
		return err
	}
	return s.sessionRepo.Set(ctx, s.db, tourStepKey(userID), step.String())
}
