package paymentrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akulagin/creditcore/internal/domain"
	"github.com/akulagin/creditcore/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func testRecord() *domain.PaymentRecord {
	return &domain.PaymentRecord{
		ID:             "3f1d3f9e-54a7-4f2c-9c55-2b0f0d6c9a11",
		UserID:         "user-1",
		TransactionID:  "tx-1",
		ExpectedAmount: 0.5,
		Token:          "USDC",
		Recipient:      "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin",
		Nonce:          "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6",
		TimeoutSeconds: 300,
	}
}

func TestRepository_CreateWithNonce(t *testing.T) {
	repo, mock, mockTxManager := NewMock(t)
	record := testRecord()

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
	}{
		{
			name: "Record and nonce saved in one transaction",
			mockSetup: func() {
				mockTxManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectExec("INSERT INTO payment_records").
					WithArgs(record.ID, record.UserID, record.TransactionID, record.ExpectedAmount,
						record.Token, record.Recipient, record.Nonce, record.TimeoutSeconds).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec("INSERT INTO nonce_records").
					WithArgs(record.Nonce, record.TransactionID).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Duplicate transaction id",
			mockSetup: func() {
				mockTxManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectExec("INSERT INTO payment_records").
					WithArgs(record.ID, record.UserID, record.TransactionID, record.ExpectedAmount,
						record.Token, record.Recipient, record.Nonce, record.TimeoutSeconds).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "payment_records_transaction_id_key"})
			},
			wantErr: domain.ErrDuplicateTransactionID,
		},
		{
			name: "Duplicate nonce",
			mockSetup: func() {
				mockTxManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectExec("INSERT INTO payment_records").
					WithArgs(record.ID, record.UserID, record.TransactionID, record.ExpectedAmount,
						record.Token, record.Recipient, record.Nonce, record.TimeoutSeconds).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec("INSERT INTO nonce_records").
					WithArgs(record.Nonce, record.TransactionID).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "nonce_records_pkey"})
			},
			wantErr: domain.ErrDuplicateNonce,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.CreateWithNonce(context.Background(), record)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByTransactionID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Existing record",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "transaction_id", "expected_amount", "token", "recipient", "nonce", "status", "timeout_seconds", "created_at", "updated_at", "verified_at"}).
					AddRow("id-1", "user-1", "tx-1", 0.5, "USDC", "recipient", "nonce", domain.PendingStatus, 300, now, now, nil)
				mock.ExpectQuery("SELECT (.+) FROM payment_records").
					WithArgs("tx-1").
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "Unknown transaction returns nil",
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM payment_records").
					WithArgs("tx-1").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM payment_records").
					WithArgs("tx-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			record, err := repo.FindByTransactionID(context.Background(), "tx-1")

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.Equal(t, domain.PendingStatus, record.Status)
			} else {
				assert.Nil(t, record)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// Two concurrent settlement attempts race on the same pending record. The
// conditional UPDATE lets exactly one caller observe an affected row.
func TestRepository_ConfirmPending_SingleWinner(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectExec("UPDATE payment_records").
		WithArgs("tx-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE payment_records").
		WithArgs("tx-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	won, err := repo.ConfirmPending(context.Background(), "tx-1")
	assert.NoError(t, err)
	assert.True(t, won)

	won, err = repo.ConfirmPending(context.Background(), "tx-1")
	assert.NoError(t, err)
	assert.False(t, won)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FailPending(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectExec("UPDATE payment_records").
		WithArgs("tx-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	won, err := repo.FailPending(context.Background(), "tx-1")
	assert.NoError(t, err)
	assert.True(t, won)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindPendingForProcessing(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "user_id", "transaction_id", "expected_amount", "token", "recipient", "nonce", "status", "timeout_seconds", "created_at", "updated_at", "verified_at"}).
		AddRow("id-1", "user-1", "tx-1", 0.5, "USDC", "recipient", "nonce-1", domain.PendingStatus, 300, now, now, nil).
		AddRow("id-2", "user-2", "tx-2", 1.0, "USDT", "recipient", "nonce-2", domain.PendingStatus, 300, now, now, nil)
	mock.ExpectQuery("SELECT (.+) FROM payment_records").
		WithArgs(uint32(100), 5).
		WillReturnRows(rows)

	records, err := repo.FindPendingForProcessing(context.Background(), 100, 5)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "tx-1", records[0].TransactionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
