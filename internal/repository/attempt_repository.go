// internal/repository/attempt_repository.go
package repository

import (
	"context"

	"go_huruf_practice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(ctx context.Context, db *gorm.DB, attempt *model.Attempt) error
	FindRecentByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.RecentAttempt, error)
}

type gormAttemptRepository struct{}

func NewGormAttemptRepository() AttemptRepository {
	return &gormAttemptRepository{}
}

// Create は1試行を追記します。リトライはしない (ローカルストレージの書き込み
// 失敗は呼び出し元へそのまま伝播させる)。
func (r *gormAttemptRepository) Create(ctx context.Context, db *gorm.DB, attempt *model.Attempt) error {
	return db.WithContext(ctx).Create(attempt).Error
}

// FindRecentByUser は直近の試行を新しい順に返します。文字ラベルはJOINで解決済み。
func (r *gormAttemptRepository) FindRecentByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.RecentAttempt, error) {
	var rows []*model.RecentAttempt
	result := db.WithContext(ctx).Raw(`
		SELECT a.id AS attempt_id,
		       t.ar AS target_ar,
		       p.ar AS predicted_ar,
		       a.correct,
		       a.confidence,
		       a.duration_ms,
		       a.audio_uri,
		       a.created_at
		FROM attempts a
		JOIN letters t ON t.id = a.target_letter_id
		LEFT JOIN letters p ON p.id = a.predicted_letter_id
		WHERE a.user_id = ?
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT ?`, userID, limit).Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}
