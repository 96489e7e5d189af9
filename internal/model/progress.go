package model

import "time"

// LetterStat は文字ごとの成績 (試行数・正答数・正答率)。
// 試行のない文字も accuracy=0 で必ず1行返ります。
type LetterStat struct {
	LetterID int     `json:"letter_id"`
	Ar       string  `json:"ar"`
	En       string  `json:"en"`
	N        int     `json:"n"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// ProgressTotals はユーザーの全試行の集計
type ProgressTotals struct {
	N        int     `json:"n"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// DailyStat は直近7日間トレンドの1日分 (UTC日付で切り捨て)
type DailyStat struct {
	Day      string  `json:"day"` // YYYY-MM-DD
	N        int     `json:"n"`
	Accuracy float64 `json:"accuracy"`
}

// RecentAttempt は履歴表示用の試行 (文字ラベル解決済み、新しい順)
type RecentAttempt struct {
	AttemptID   int64     `json:"attempt_id"`
	TargetAr    string    `json:"target_ar"`
	PredictedAr *string   `json:"predicted_ar,omitempty"`
	Correct     bool      `json:"correct"`
	Confidence  *float64  `json:"confidence,omitempty"`
	DurationMs  *int      `json:"duration_ms,omitempty"`
	AudioURI    *string   `json:"audio_uri,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
