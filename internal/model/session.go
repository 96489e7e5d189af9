package model

import "time"

// SessionFlag はセッションフラグ (現在ユーザー、ツアー進行状況など) を保持する
// 永続キーバリューストアの1行です。
type SessionFlag struct {
	Key       string    `gorm:"primaryKey;column:key" json:"key"`
	Value     string    `gorm:"column:value;not null" json:"value"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (SessionFlag) TableName() string {
	return "session_flags"
}
