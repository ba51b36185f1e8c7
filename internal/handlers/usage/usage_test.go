package usage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akulagin/creditcore/internal/dto"
	"github.com/akulagin/creditcore/internal/service/creditservice"
	"github.com/akulagin/creditcore/internal/service/usageservice"
	"github.com/akulagin/creditcore/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var testRequirements = dto.PaymentRequirementsDTO{
	Amount:      0.5,
	Token:       "USDC",
	Recipient:   "7Np41oeYqPefeNQEHSv1UDhYrehxin3NStELsSKCT4K2",
	Description: "Unlock one full AI interview",
}

func NewMock(t *testing.T) (*UsageHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, testRequirements)
	defer ctrl.Finish()
	return handler, service
}

func authCtx(userID string) context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, userID)
}

func TestCheckUsageHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		url          string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Allowed with default action",
			url:  "/api/user/usage",
			prepareMock: func() {
				service.EXPECT().
					CheckUsage(gomock.Any(), "user-1", "interview").
					Return(&usageservice.UsageStatus{Allowed: true, Cost: 1, Remaining: 3}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Quota exhausted answers 402 with requirements",
			url:  "/api/user/usage?action=question",
			prepareMock: func() {
				service.EXPECT().
					CheckUsage(gomock.Any(), "user-1", "question").
					Return(&usageservice.UsageStatus{Allowed: false, Cost: 1, FreeInterviewUsed: true}, nil)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Unknown action",
			url:  "/api/user/usage?action=mining",
			prepareMock: func() {
				service.EXPECT().
					CheckUsage(gomock.Any(), "user-1", "mining").
					Return(nil, usageservice.ErrUnknownAction)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Internal error",
			url:  "/api/user/usage",
			prepareMock: func() {
				service.EXPECT().
					CheckUsage(gomock.Any(), "user-1", "interview").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil).WithContext(authCtx("user-1"))
			rec := httptest.NewRecorder()

			handler.CheckUsage(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusPaymentRequired {
				var got dto.PaymentRequirementsDTO
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, testRequirements, got)
			}
		})
	}
}

func TestConsumeHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Free quota covers the action",
			body: `{"action":"interview"}`,
			prepareMock: func() {
				service.EXPECT().
					Consume(gomock.Any(), "user-1", "interview").
					Return(&usageservice.ConsumeResult{Charged: false, Cost: 1, Remaining: 2}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Credits cover the action",
			body: `{"action":"question"}`,
			prepareMock: func() {
				service.EXPECT().
					Consume(gomock.Any(), "user-1", "question").
					Return(&usageservice.ConsumeResult{Charged: true, Cost: 1, Credits: 4}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No quota and no credits answers 402",
			body: `{"action":"question"}`,
			prepareMock: func() {
				service.EXPECT().
					Consume(gomock.Any(), "user-1", "question").
					Return(nil, creditservice.ErrInsufficientCredits)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name:         "Malformed body",
			body:         `{`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/user/usage", bytes.NewBufferString(tt.body)).
				WithContext(authCtx("user-1"))
			rec := httptest.NewRecorder()

			handler.Consume(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
