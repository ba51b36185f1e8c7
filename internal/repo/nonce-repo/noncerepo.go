package noncerepo

import (
	"context"
	"errors"

	"github.com/akulagin/creditcore/internal/domain"
	"github.com/akulagin/creditcore/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolationCode = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Consume binds a nonce to the transaction it authorizes. The primary key is
// the only uniqueness check; a duplicate insert is the replay signal and is
// surfaced as domain.ErrDuplicateNonce, never swallowed.
func (r *Repository) Consume(ctx context.Context, nonce, transactionID string) error {
	query := `
        INSERT INTO nonce_records (nonce, transaction_id)
        VALUES ($1, $2)
    `
	_, err := r.db.Exec(ctx, query, nonce, transactionID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			zap.L().Warn("nonce replay rejected", zap.String("nonce", nonce))
			return domain.ErrDuplicateNonce
		}
		zap.L().Error("can't save nonce", zap.Error(err))
		return err
	}
	return nil
}

// Find returns the nonce record, or nil when the nonce has never been used.
func (r *Repository) Find(ctx context.Context, nonce string) (*domain.NonceRecord, error) {
	var record domain.NonceRecord
	err := r.db.QueryRow(ctx, "SELECT nonce, transaction_id, created_at FROM nonce_records WHERE nonce = $1", nonce).
		Scan(&record.Nonce, &record.TransactionID, &record.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find nonce", zap.Error(err))
		return nil, err
	}
	return &record, nil
}
