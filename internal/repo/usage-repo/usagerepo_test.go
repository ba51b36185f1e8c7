package usagerepo

import (
	"context"
	"errors"
	"testing"
	"time"

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

func TestRepository_GetForDay(t *testing.T) {
	repo, mock := NewMock(t)
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	tests := []struct {
		name       string
		mockSetup  func()
		expectErr  bool
		dailyCount int
		freeUsed   bool
	}{
		{
			name: "First interaction creates zeroed row",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"user_id", "day", "daily_count", "free_interview_used", "interviews_completed", "updated_at"}).
					AddRow("user-1", day, 0, false, 0, now)
				mock.ExpectQuery("INSERT INTO usage_records").
					WithArgs("user-1", day).
					WillReturnRows(rows)
			},
		},
		{
			name: "Day rollover keeps free interview flag",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"user_id", "day", "daily_count", "free_interview_used", "interviews_completed", "updated_at"}).
					AddRow("user-1", day, 0, true, 3, now)
				mock.ExpectQuery("INSERT INTO usage_records").
					WithArgs("user-1", day).
					WillReturnRows(rows)
			},
			freeUsed: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("INSERT INTO usage_records").
					WithArgs("user-1", day).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			record, err := repo.GetForDay(context.Background(), "user-1", day)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.dailyCount, record.DailyCount)
				assert.Equal(t, tt.freeUsed, record.FreeInterviewUsed)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_AddDailyCount(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec("UPDATE usage_records").
		WithArgs("user-1", 2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.AddDailyCount(context.Background(), "user-1", 2)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AddDailyCountError(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec("UPDATE usage_records").
		WithArgs("user-1", 1).
		WillReturnError(errors.New("database error"))

	err := repo.AddDailyCount(context.Background(), "user-1", 1)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkFreeInterviewUsed(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec("UPDATE usage_records").
		WithArgs("user-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.MarkFreeInterviewUsed(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
