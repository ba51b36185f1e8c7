package noncerepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akulagin/creditcore/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Consume(t *testing.T) {
	repo, mock := NewMock(t)
	nonce := "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6"

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
	}{
		{
			name: "Fresh nonce is consumed",
			mockSetup: func() {
				mock.ExpectExec("INSERT INTO nonce_records").
					WithArgs(nonce, "tx-1").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Replayed nonce is rejected",
			mockSetup: func() {
				mock.ExpectExec("INSERT INTO nonce_records").
					WithArgs(nonce, "tx-1").
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "nonce_records_pkey"})
			},
			wantErr: domain.ErrDuplicateNonce,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec("INSERT INTO nonce_records").
					WithArgs(nonce, "tx-1").
					WillReturnError(errors.New("database error"))
			},
			wantErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Consume(context.Background(), nonce, "tx-1")

			if tt.wantErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.wantErr, domain.ErrDuplicateNonce) {
					assert.ErrorIs(t, err, domain.ErrDuplicateNonce)
				}
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Find(t *testing.T) {
	repo, mock := NewMock(t)
	nonce := "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6"

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Used nonce is returned",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"nonce", "transaction_id", "created_at"}).
					AddRow(nonce, "tx-1", time.Now())
				mock.ExpectQuery("SELECT nonce, transaction_id, created_at FROM nonce_records").
					WithArgs(nonce).
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "Unused nonce returns nil",
			mockSetup: func() {
				mock.ExpectQuery("SELECT nonce, transaction_id, created_at FROM nonce_records").
					WithArgs(nonce).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("SELECT nonce, transaction_id, created_at FROM nonce_records").
					WithArgs(nonce).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			record, err := repo.Find(context.Background(), nonce)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.Equal(t, "tx-1", record.TransactionID)
			} else {
				assert.Nil(t, record)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
