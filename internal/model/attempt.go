package model

import (
	"time"

	"github.com/google/uuid"
)

// Attempt は1回の発音練習イベントを表します。追記専用で、更新・削除は行いません
// (ユーザー削除時のカスケードを除く)。
type Attempt struct {
	AttemptID         int64     `gorm:"primaryKey;autoIncrement;column:id" json:"attempt_id"`
	UserID            uuid.UUID `gorm:"type:uuid;column:user_id;not null" json:"-"`
	TargetLetterID    int       `gorm:"column:target_letter_id;not null" json:"target_letter_id"`
	PredictedLetterID *int      `gorm:"column:predicted_letter_id" json:"predicted_letter_id,omitempty"` // NULL = 判定不能
	Correct           bool      `gorm:"column:correct;not null" json:"correct"`
	Confidence        *float64  `gorm:"column:confidence" json:"confidence,omitempty"`
	DurationMs        *int      `gorm:"column:duration_ms" json:"duration_ms,omitempty"`
	AudioURI          *string   `gorm:"column:audio_uri" json:"audio_uri,omitempty"`
	CreatedAt         time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Attempt) TableName() string {
	return "attempts"
}

// RecordAttemptRequest は練習結果記録APIのリクエストDTO。
// 正誤は呼び出し側 (UI層) が確定済みのケース用です。
type RecordAttemptRequest struct {
	TargetLetter    string   `json:"target_letter" validate:"required"`
	PredictedLetter *string  `json:"predicted_letter,omitempty" validate:"omitempty,min=1"`
	Correct         *bool    `json:"correct" validate:"required"`
	Confidence      *float64 `json:"confidence,omitempty" validate:"omitempty,gte=0,lte=1"`
	DurationMs      *int     `json:"duration_ms,omitempty" validate:"omitempty,gte=0"`
	AudioURI        *string  `json:"audio_uri,omitempty"`
}

// SubmitPracticeRequest は録音提出APIのリクエストDTO。
// 正誤・信頼度は注入された Evaluator が決定します。
type SubmitPracticeRequest struct {
	TargetLetter    string  `json:"target_letter" validate:"required"`
	PredictedLetter *string `json:"predicted_letter,omitempty" validate:"omitempty,min=1"`
	DurationMs      *int    `json:"duration_ms,omitempty" validate:"omitempty,gte=0"`
	AudioURI        *string `json:"audio_uri,omitempty"`
}
