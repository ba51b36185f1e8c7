package creditrepo

import (
	"context"

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

// GetOrCreateCredits returns the user's balance, lazily creating the row with
// the starting balance. The upsert makes concurrent first reads create
// exactly one row.
func (r *Repository) GetOrCreateCredits(ctx context.Context, userID string, starting int64) (*domain.UserCredits, error) {
	query := `
        INSERT INTO user_credits (user_id, credits)
        VALUES ($1, $2)
        ON CONFLICT (user_id) DO UPDATE SET updated_at = user_credits.updated_at
        RETURNING user_id, credits, created_at, updated_at
    `
	row := r.db.QueryRow(ctx, query, userID, starting)
	var credits domain.UserCredits
	err := row.Scan(&credits.UserID, &credits.Credits, &credits.CreatedAt, &credits.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to get user credits", zap.Error(err))
		return nil, err
	}
	return &credits, nil
}

// AddCredits atomically increments the balance, creating the row with the
// starting balance first if the user has never been seen.
func (r *Repository) AddCredits(ctx context.Context, userID string, amount, starting int64) (int64, error) {
	query := `
        INSERT INTO user_credits (user_id, credits)
        VALUES ($1, $2 + $3)
        ON CONFLICT (user_id) DO UPDATE SET credits = user_credits.credits + $3, updated_at = now()
        RETURNING credits
    `
	var balance int64
	err := r.db.QueryRow(ctx, query, userID, starting, amount).Scan(&balance)
	if err != nil {
		zap.L().Error("failed to add credits", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// DeductCredits decrements the balance only when it covers the amount. The
// condition lives in the UPDATE itself, so concurrent spends for one user
// never drive the balance negative. Returns false when the balance was
// insufficient.
func (r *Repository) DeductCredits(ctx context.Context, userID string, amount int64) (bool, error) {
	query := `
        UPDATE user_credits
        SET credits = credits - $2, updated_at = now()
        WHERE user_id = $1 AND credits >= $2
    `
	tag, err := r.db.Exec(ctx, query, userID, amount)
	if err != nil {
		zap.L().Error("failed to deduct credits", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
