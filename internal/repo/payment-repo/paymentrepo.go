package paymentrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/akulagin/creditcore/internal/domain"
	"github.com/akulagin/creditcore/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolationCode = "23505"

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// CreateWithNonce writes the payment record and its nonce record as one
// transaction. Which uniqueness constraint fired distinguishes a replayed
// transaction id from a reused nonce; both refuse creation.
func (r *Repository) CreateWithNonce(ctx context.Context, record *domain.PaymentRecord) error {
	paymentQuery := `
        INSERT INTO payment_records (id, user_id, transaction_id, expected_amount, token, recipient, nonce, status, timeout_seconds)
        VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending', $8)
    `
	nonceQuery := `
        INSERT INTO nonce_records (nonce, transaction_id)
        VALUES ($1, $2)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, paymentQuery,
			record.ID, record.UserID, record.TransactionID, record.ExpectedAmount,
			record.Token, record.Recipient, record.Nonce, record.TimeoutSeconds,
		); err != nil {
			return err
		}
		if _, err := r.db.Exec(ctx, nonceQuery, record.Nonce, record.TransactionID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			if strings.Contains(pgErr.ConstraintName, "transaction_id") {
				zap.L().Warn("duplicate transaction id rejected", zap.String("transaction_id", record.TransactionID))
				return domain.ErrDuplicateTransactionID
			}
			zap.L().Warn("duplicate nonce rejected", zap.String("transaction_id", record.TransactionID))
			return domain.ErrDuplicateNonce
		}
		zap.L().Error("can't save payment record", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByTransactionID(ctx context.Context, transactionID string) (*domain.PaymentRecord, error) {
	query := `
        SELECT id, user_id, transaction_id, expected_amount, token, recipient, nonce, status, timeout_seconds, created_at, updated_at, verified_at
        FROM payment_records
        WHERE transaction_id = $1
    `
	row := r.db.QueryRow(ctx, query, transactionID)

	var record domain.PaymentRecord
	err := row.Scan(&record.ID, &record.UserID, &record.TransactionID, &record.ExpectedAmount,
		&record.Token, &record.Recipient, &record.Nonce, &record.Status, &record.TimeoutSeconds,
		&record.CreatedAt, &record.UpdatedAt, &record.VerifiedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment record", zap.Error(err))
		return nil, err
	}
	return &record, nil
}

// ConfirmPending moves the record to confirmed only when it is still pending.
// The affected-row count elects the single winner among concurrent callers:
// true means this caller owns the one credit mutation that may follow.
func (r *Repository) ConfirmPending(ctx context.Context, transactionID string) (bool, error) {
	query := `
        UPDATE payment_records
        SET status = 'confirmed', verified_at = now(), updated_at = now()
        WHERE transaction_id = $1 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, transactionID)
	if err != nil {
		zap.L().Error("failed to confirm payment record", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// FailPending moves the record to failed only when it is still pending.
func (r *Repository) FailPending(ctx context.Context, transactionID string) (bool, error) {
	query := `
        UPDATE payment_records
        SET status = 'failed', updated_at = now()
        WHERE transaction_id = $1 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, transactionID)
	if err != nil {
		zap.L().Error("failed to fail payment record", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// FindPendingForProcessing returns pending records at least minAgeSeconds old,
// oldest first, for the confirmation worker.
func (r *Repository) FindPendingForProcessing(ctx context.Context, limit uint32, minAgeSeconds int) ([]domain.PaymentRecord, error) {
	query := `
        SELECT id, user_id, transaction_id, expected_amount, token, recipient, nonce, status, timeout_seconds, created_at, updated_at, verified_at
        FROM payment_records
        WHERE status = 'pending' AND created_at <= now() - make_interval(secs => $2)
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit), minAgeSeconds)
	if err != nil {
		zap.L().Error("can't get payment records for processing", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.PaymentRecord
	for rows.Next() {
		var record domain.PaymentRecord
		err := rows.Scan(&record.ID, &record.UserID, &record.TransactionID, &record.ExpectedAmount,
			&record.Token, &record.Recipient, &record.Nonce, &record.Status, &record.TimeoutSeconds,
			&record.CreatedAt, &record.UpdatedAt, &record.VerifiedAt)
		if err != nil {
			zap.L().Error("can't scan payment record row", zap.Error(err))
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
