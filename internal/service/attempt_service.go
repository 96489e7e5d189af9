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

// AttemptService は練習試行の記録を担当します
type AttemptService interface {
	RecordAttempt(ctx context.Context, userID uuid.UUID, req *model.RecordAttemptRequest) (*model.Attempt, error)
	SubmitPractice(ctx context.Context, userID uuid.UUID, req *model.SubmitPracticeRequest) (*model.Attempt, error)
	ListLetters(ctx context.Context) ([]*model.Letter, error)
}

type attemptService struct {
	db          *gorm.DB
	letterRepo  repository.LetterRepository
	attemptRepo repository.AttemptRepository
	evaluator   Evaluator
}

func NewAttemptService(db *gorm.DB, letterRepo repository.LetterRepository, attemptRepo repository.AttemptRepository, evaluator Evaluator) AttemptService {
	return &attemptService{
		db:          db,
		letterRepo:  letterRepo,
		attemptRepo: attemptRepo,
		evaluator:   evaluator,
	}
}

// RecordAttempt は正誤確定済みの試行を1行記録します。
// ラベル解決に失敗した場合は行を書かずにエラーを返す。
func (s *attemptService) RecordAttempt(ctx context.Context, userID uuid.UUID, req *model.RecordAttemptRequest) (*model.Attempt, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	target, predicted, err := s.resolveLabels(ctx, req.TargetLetter, req.PredictedLetter)
	if err != nil {
		return nil, err
	}

	attempt := &model.Attempt{
		UserID:         userID,
		TargetLetterID: target.LetterID,
		Correct:        *req.Correct,
		Confidence:     req.Confidence,
		DurationMs:     req.DurationMs,
		AudioURI:       req.AudioURI,
		CreatedAt:      time.Now().UTC(),
	}
	if predicted != nil {
		attempt.PredictedLetterID = &predicted.LetterID
	}

	if err := s.attemptRepo.Create(ctx, s.db, attempt); err != nil {
		logger.Error("Failed to record attempt", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "試行の記録に失敗しました。", "", err)
	}
	return attempt, nil
}

// SubmitPractice は録音提出を受け付け、注入された Evaluator で採点してから記録します
func (s *attemptService) SubmitPractice(ctx context.Context, userID uuid.UUID, req *model.SubmitPracticeRequest) (*model.Attempt, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	target, predicted, err := s.resolveLabels(ctx, req.TargetLetter, req.PredictedLetter)
	if err != nil {
		return nil, err
	}

	audioURI := ""
	if req.AudioURI != nil {
		audioURI = *req.AudioURI
	}
	correct, confidence, err := s.evaluator.Evaluate(ctx, audioURI, target)
	if err != nil {
		logger.Error("Evaluator failed", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "発音の評価に失敗しました。", "", err)
	}

	attempt := &model.Attempt{
		UserID:         userID,
		TargetLetterID: target.LetterID,
		Correct:        correct,
		Confidence:     &confidence,
		DurationMs:     req.DurationMs,
		AudioURI:       req.AudioURI,
		CreatedAt:      time.Now().UTC(),
	}
	if predicted != nil {
		attempt.PredictedLetterID = &predicted.LetterID
	}

	if err := s.attemptRepo.Create(ctx, s.db, attempt); err != nil {
		logger.Error("Failed to record practice attempt", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "試行の記録に失敗しました。", "", err)
	}
	return attempt, nil
}

// ListLetters はカタログ全体を字母順で返します
func (s *attemptService) ListLetters(ctx context.Context) ([]*model.Letter, error) {
	letters, err := s.letterRepo.ListOrdered(ctx, s.db)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list letters", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "文字カタログの取得に失敗しました。", "", err)
	}
	return letters, nil
}

// resolveLabels は表示ラベルをカタログIDへ解決します
func (s *attemptService) resolveLabels(ctx context.Context, targetLabel string, predictedLabel *string) (*model.Letter, *model.Letter, error) {
	logger := middleware.GetLogger(ctx)

	target, err := s.letterRepo.FindByLabel(ctx, s.db, targetLabel)
	if err != nil {
		if errors.Is(err, model.ErrUnknownLetter) {
			logger.Warn("Unknown target letter label", "label", targetLabel)
			return nil, nil, model.NewAppError("UNKNOWN_LETTER", "指定された文字はカタログに存在しません。", "target_letter", model.ErrUnknownLetter)
		}
		logger.Error("Failed to resolve target letter", "error", err)
		return nil, nil, model.NewAppError("INTERNAL_SERVER_ERROR", "文字の解決に失敗しました。", "", err)
	}

	var predicted *model.Letter
	if predictedLabel != nil {
		predicted, err = s.letterRepo.FindByLabel(ctx, s.db, *predictedLabel)
		if err != nil {
			if errors.Is(err, model.ErrUnknownLetter) {
				logger.Warn("Unknown predicted letter label", "label", *predictedLabel)
				return nil, nil, model.NewAppError("UNKNOWN_LETTER", "判定された文字はカタログに存在しません。", "predicted_letter", model.ErrUnknownLetter)
			}
			logger.Error("Failed to resolve predicted letter", "error", err)
			return nil, nil, model.NewAppError("INTERNAL_SERVER_ERROR", "文字の解決に失敗しました。", "", err)
		}
	}

	return target, predicted, nil
}
