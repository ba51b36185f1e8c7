package service

import (
	"github.com/akulagin/creditcore/internal/config"
	"github.com/akulagin/creditcore/internal/handlers/credits"
	"github.com/akulagin/creditcore/internal/handlers/usage"
	"github.com/akulagin/creditcore/internal/repo"
	"github.com/akulagin/creditcore/internal/service/creditservice"
	"github.com/akulagin/creditcore/internal/service/paymentservice"
	"github.com/akulagin/creditcore/internal/service/usageservice"
)

type Services struct {
	CreditService  credits.Service
	UsageService   usage.Service
	PaymentService *paymentservice.Service
}

func New(repo *repo.Repositories, cfg *config.Config, verifier paymentservice.Verifier, kafkaWriter paymentservice.KafkaWriter) *Services {
	creditService := creditservice.New(repo.CreditRepo, cfg.StartingCredits)
	usageService := usageservice.New(repo.UsageRepo, creditService, cfg.DailyFreeLimit, cfg.QuotaUTCOffset)
	paymentService := paymentservice.New(
		repo.PaymentRepo,
		repo.NonceRepo,
		creditService,
		verifier,
		repo.TxManager,
		kafkaWriter,
		cfg.KafkaTopic,
		cfg.CreditsPerUnit,
		cfg.PaymentTimeoutSec,
	)

	return &Services{
		CreditService:  creditService,
		UsageService:   usageService,
		PaymentService: paymentService,
	}
}
