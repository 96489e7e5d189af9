// internal/repository/progress_repository.go
package repository

import (
	"context"
	"time"

	"go_huruf_practice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressRepository は進捗集計の読み取り専用クエリ群です。副作用はありません。
type ProgressRepository interface {
	PerLetterStats(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.LetterStat, error)
	Totals(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.ProgressTotals, error)
	DailySeries(ctx context.Context, db *gorm.DB, userID uuid.UUID, since time.Time, letterIDs []int) ([]*model.DailyStat, error)
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

// PerLetterStats はカタログ全文字の成績を字母順で返します。
// 試行のない文字も LEFT JOIN で必ず1行含まれます (n=0, accuracy=0)。
func (r *gormProgressRepository) PerLetterStats(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.LetterStat, error) {
	var rows []*model.LetterStat
	result := db.WithContext(ctx).Raw(`
		SELECT l.id AS letter_id,
		       l.ar,
		       l.en,
		       COUNT(a.id) AS n,
		       COALESCE(SUM(a.correct), 0) AS correct,
		       CASE WHEN COUNT(a.id) = 0 THEN 0.0
		            ELSE CAST(SUM(a.correct) AS REAL) / COUNT(a.id)
		       END AS accuracy
		FROM letters l
		LEFT JOIN attempts a ON a.target_letter_id = l.id AND a.user_id = ?
		GROUP BY l.id, l.ar, l.en, l.order_index
		ORDER BY l.order_index ASC`, userID).Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

// Totals はユーザーの全試行を1行に集計します
func (r *gormProgressRepository) Totals(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.ProgressTotals, error) {
	var totals model.ProgressTotals
	result := db.WithContext(ctx).Raw(`
		SELECT COUNT(id) AS n,
		       COALESCE(SUM(correct), 0) AS correct,
		       CASE WHEN COUNT(id) = 0 THEN 0.0
		            ELSE CAST(SUM(correct) AS REAL) / COUNT(id)
		       END AS accuracy
		FROM attempts
		WHERE user_id = ?`, userID).Scan(&totals)
	if result.Error != nil {
		return nil, result.Error
	}
	return &totals, nil
}

// DailySeries は since 以降の試行をUTCの暦日単位でグループ化して返します。
// letterIDs を渡すと対象文字で絞り込みます。
// created_at はUTCの "YYYY-MM-DD hh:mm:ss..." 形式で保存されるため、
// 日付の切り出しは先頭10文字のsubstrで行う (タイムゾーン接尾辞に依存しない)。
func (r *gormProgressRepository) DailySeries(ctx context.Context, db *gorm.DB, userID uuid.UUID, since time.Time, letterIDs []int) ([]*model.DailyStat, error) {
	var rows []*model.DailyStat

	query := `
		SELECT substr(a.created_at, 1, 10) AS day,
		       COUNT(a.id) AS n,
		       CAST(SUM(a.correct) AS REAL) / COUNT(a.id) AS accuracy
		FROM attempts a
		WHERE a.user_id = ? AND a.created_at >= ?`
	args := []interface{}{userID, since.UTC()}

	if len(letterIDs) > 0 {
		query += ` AND a.target_letter_id IN ?`
		args = append(args, letterIDs)
	}
	query += `
		GROUP BY day
		ORDER BY day ASC`

	result := db.WithContext(ctx).Raw(query, args...).Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}
