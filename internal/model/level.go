package model

import (
	"time"

	"github.com/google/uuid"
)

// LevelThreshold はレベル到達条件 (最低正答率と最低試行回数) の静的テーブルです。
// マイグレーション時に一度だけシードされ、以降は読み取り専用です。
type LevelThreshold struct {
	Level       int     `gorm:"primaryKey;column:level" json:"level"`
	MinAccuracy float64 `gorm:"column:min_accuracy;not null" json:"min_accuracy"`
	MinAttempts int     `gorm:"column:min_attempts;not null" json:"min_attempts"`
}

func (LevelThreshold) TableName() string {
	return "levels"
}

// UserLevel はユーザーごとの現在レベル (1ユーザー1行、upsertで更新)
type UserLevel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"-"`
	Level     int       `gorm:"column:level;not null" json:"level"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (UserLevel) TableName() string {
	return "user_levels"
}

// DefaultLevelThresholds はシードするレベル到達条件を返します。
// レベル1は無条件のベースラインです。
func DefaultLevelThresholds() []LevelThreshold {
	return []LevelThreshold{
		{Level: 1, MinAccuracy: 0.0, MinAttempts: 0},
		{Level: 2, MinAccuracy: 0.65, MinAttempts: 50},
		{Level: 3, MinAccuracy: 0.75, MinAttempts: 150},
		{Level: 4, MinAccuracy: 0.85, MinAttempts: 300},
		{Level: 5, MinAccuracy: 0.90, MinAttempts: 500},
	}
}

// UserLevelResponse はレベルAPIのレスポンスDTO
type UserLevelResponse struct {
	Level     int       `json:"level"`
	UpdatedAt time.Time `json:"updated_at"`
}
