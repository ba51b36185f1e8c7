package usagerepo

import (
	"context"
	"time"

	"github.com/akulagin/creditcore/internal/domain"
	"github.com/akulagin/creditcore/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// GetForDay returns the usage row for userID rolled over to day. The upsert
// resets daily_count when the stored day differs, and never touches
// free_interview_used.
func (r *Repository) GetForDay(ctx context.Context, userID string, day time.Time) (*domain.UsageRecord, error) {
	query := `
        INSERT INTO usage_records (user_id, day)
        VALUES ($1, $2)
        ON CONFLICT (user_id) DO UPDATE SET
            daily_count = CASE WHEN usage_records.day = EXCLUDED.day THEN usage_records.daily_count ELSE 0 END,
            day = EXCLUDED.day,
            updated_at = now()
        RETURNING user_id, day, daily_count, free_interview_used, interviews_completed, updated_at
    `
	row := r.db.QueryRow(ctx, query, userID, day)
	var record domain.UsageRecord
	err := row.Scan(&record.UserID, &record.Day, &record.DailyCount, &record.FreeInterviewUsed, &record.InterviewsCompleted, &record.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to get usage record", zap.Error(err))
		return nil, err
	}
	return &record, nil
}

// AddDailyCount bumps the daily counter by cost.
func (r *Repository) AddDailyCount(ctx context.Context, userID string, cost int) error {
	query := `
        UPDATE usage_records
        SET daily_count = daily_count + $2, updated_at = now()
        WHERE user_id = $1
    `
	_, err := r.db.Exec(ctx, query, userID, cost)
	if err != nil {
		zap.L().Error("failed to increment daily count", zap.Error(err))
		return err
	}
	return nil
}

// MarkFreeInterviewUsed consumes the one-time entitlement. The flag is
// monotonic; repeated calls keep it set.
func (r *Repository) MarkFreeInterviewUsed(ctx context.Context, userID string) error {
	query := `
        UPDATE usage_records
        SET free_interview_used = TRUE, interviews_completed = interviews_completed + 1, updated_at = now()
        WHERE user_id = $1
    `
	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to mark free interview used", zap.Error(err))
		return err
	}
	return nil
}
