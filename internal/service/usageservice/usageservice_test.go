package usageservice

import (
	"context"
	"errors"
	"testing"

	"github.com/akulagin/creditcore/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockCreditLedger) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockRepo(ctrl)
	mockLedger := NewMockCreditLedger(ctrl)
	svc := New(mockRepo, mockLedger, 3, 0)
	return svc, mockRepo, mockLedger
}

func TestService_CheckUsage(t *testing.T) {
	svc, mockRepo, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		action    string
		record    *domain.UsageRecord
		wantErr   error
		allowed   bool
		remaining int
	}{
		{
			name:      "Free interview not used allows regardless of counter",
			action:    "interview",
			record:    &domain.UsageRecord{UserID: "user-1", DailyCount: 99, FreeInterviewUsed: false},
			allowed:   true,
			remaining: 3,
		},
		{
			name:      "Quota available after free interview",
			action:    "question",
			record:    &domain.UsageRecord{UserID: "user-1", DailyCount: 1, FreeInterviewUsed: true},
			allowed:   true,
			remaining: 2,
		},
		{
			name:      "Quota exhausted",
			action:    "question",
			record:    &domain.UsageRecord{UserID: "user-1", DailyCount: 3, FreeInterviewUsed: true},
			allowed:   false,
			remaining: 0,
		},
		{
			name:    "Unknown action",
			action:  "mining",
			wantErr: ErrUnknownAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.record != nil {
				mockRepo.EXPECT().GetForDay(ctx, "user-1", gomock.Any()).Return(tt.record, nil)
			}
			status, err := svc.CheckUsage(ctx, "user-1", tt.action)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.allowed, status.Allowed)
			assert.Equal(t, tt.remaining, status.Remaining)
		})
	}
}

func TestService_RecordUsage(t *testing.T) {
	svc, mockRepo, _ := NewMock(t)
	ctx := context.Background()

	t.Run("First interview consumes the free entitlement", func(t *testing.T) {
		mockRepo.EXPECT().GetForDay(ctx, "user-1", gomock.Any()).
			Return(&domain.UsageRecord{UserID: "user-1"}, nil)
		mockRepo.EXPECT().MarkFreeInterviewUsed(ctx, "user-1").Return(nil)

		err := svc.RecordUsage(ctx, "user-1", "interview", 1, false)
		assert.NoError(t, err)
	})

	t.Run("Later actions consume daily quota", func(t *testing.T) {
		mockRepo.EXPECT().GetForDay(ctx, "user-1", gomock.Any()).
			Return(&domain.UsageRecord{UserID: "user-1", FreeInterviewUsed: true}, nil)
		mockRepo.EXPECT().AddDailyCount(ctx, "user-1", 1).Return(nil)

		err := svc.RecordUsage(ctx, "user-1", "question", 1, true)
		assert.NoError(t, err)
	})

	t.Run("Unknown action", func(t *testing.T) {
		err := svc.RecordUsage(ctx, "user-1", "mining", 1, true)
		assert.ErrorIs(t, err, ErrUnknownAction)
	})
}

func TestService_Consume(t *testing.T) {
	svc, mockRepo, mockLedger := NewMock(t)
	ctx := context.Background()

	t.Run("Free interview covers the action", func(t *testing.T) {
		mockRepo.EXPECT().GetForDay(ctx, "user-1", gomock.Any()).
			Return(&domain.UsageRecord{UserID: "user-1", FreeInterviewUsed: false}, nil).Times(2)
		mockRepo.EXPECT().MarkFreeInterviewUsed(ctx, "user-1").Return(nil)

		result, err := svc.Consume(ctx, "user-1", "interview")
		assert.NoError(t, err)
		assert.False(t, result.Charged)
	})

	t.Run("Daily quota covers the action", func(t *testing.T) {
		mockRepo.EXPECT().GetForDay(ctx, "user-1", gomock.Any()).
			Return(&domain.UsageRecord{UserID: "user-1", DailyCount: 1, FreeInterviewUsed: true}, nil).Times(2)
		mockRepo.EXPECT().AddDailyCount(ctx, "user-1", 1).Return(nil)

		result, err := svc.Consume(ctx, "user-1", "question")
		assert.NoError(t, err)
		assert.False(t, result.Charged)
		assert.Equal(t, 1, result.Remaining)
	})

	t.Run("Exhausted quota falls back to credits", func(t *testing.T) {
		mockRepo.EXPECT().GetForDay(ctx, "user-1", gomock.Any()).
			Return(&domain.UsageRecord{UserID: "user-1", DailyCount: 3, FreeInterviewUsed: true}, nil)
		mockLedger.EXPECT().DeductCredits(ctx, "user-1", int64(1)).Return(nil)
		mockLedger.EXPECT().GetCredits(ctx, "user-1").Return(int64(9), nil)

		result, err := svc.Consume(ctx, "user-1", "question")
		assert.NoError(t, err)
		assert.True(t, result.Charged)
		assert.Equal(t, int64(9), result.Credits)
	})

	t.Run("No quota and no credits", func(t *testing.T) {
		ledgerErr := errors.New("insufficient credits")
		mockRepo.EXPECT().GetForDay(ctx, "user-1", gomock.Any()).
			Return(&domain.UsageRecord{UserID: "user-1", DailyCount: 3, FreeInterviewUsed: true}, nil)
		mockLedger.EXPECT().DeductCredits(ctx, "user-1", int64(1)).Return(ledgerErr)

		_, err := svc.Consume(ctx, "user-1", "question")
		assert.ErrorIs(t, err, ledgerErr)
	})
}
