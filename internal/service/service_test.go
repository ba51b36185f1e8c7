package service

import (
	"testing"

	"github.com/akulagin/creditcore/internal/config"
	"github.com/akulagin/creditcore/internal/pg"
	"github.com/akulagin/creditcore/internal/repo"
	"github.com/akulagin/creditcore/internal/service/creditservice"
	"github.com/akulagin/creditcore/internal/service/paymentservice"
	"github.com/akulagin/creditcore/internal/service/usageservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreditRepo := creditservice.NewMockRepo(ctrl)
	mockUsageRepo := usageservice.NewMockRepo(ctrl)
	mockPaymentRepo := paymentservice.NewMockPaymentRepo(ctrl)
	mockNonceRepo := paymentservice.NewMockNonceRepo(ctrl)
	mockTxManager := pg.NewMockTXManager(ctrl)
	mockVerifier := paymentservice.NewMockVerifier(ctrl)

	repos := &repo.Repositories{
		CreditRepo:  mockCreditRepo,
		UsageRepo:   mockUsageRepo,
		PaymentRepo: mockPaymentRepo,
		NonceRepo:   mockNonceRepo,
		TxManager:   mockTxManager,
	}

	cfg := &config.Config{
		StartingCredits:   5,
		DailyFreeLimit:    3,
		CreditsPerUnit:    10,
		PaymentTimeoutSec: 300,
	}

	services := New(repos, cfg, mockVerifier, nil)

	assert.NotNil(t, services.CreditService)
	assert.NotNil(t, services.UsageService)
	assert.NotNil(t, services.PaymentService)
}
