package repo

import (
	"github.com/akulagin/creditcore/internal/pg"
	creditrepo "github.com/akulagin/creditcore/internal/repo/credit-repo"
	noncerepo "github.com/akulagin/creditcore/internal/repo/nonce-repo"
	paymentrepo "github.com/akulagin/creditcore/internal/repo/payment-repo"
	usagerepo "github.com/akulagin/creditcore/internal/repo/usage-repo"
	"github.com/akulagin/creditcore/internal/service/creditservice"
	"github.com/akulagin/creditcore/internal/service/paymentservice"
	"github.com/akulagin/creditcore/internal/service/usageservice"
)

type Repositories struct {
	CreditRepo  creditservice.Repo
	UsageRepo   usageservice.Repo
	PaymentRepo paymentservice.PaymentRepo
	NonceRepo   paymentservice.NonceRepo
	TxManager   pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	creditRepo := creditrepo.New(conn)
	usageRepo := usagerepo.New(conn)
	paymentRepo := paymentrepo.New(conn, txManager)
	nonceRepo := noncerepo.New(conn)

	return &Repositories{
		CreditRepo:  creditRepo,
		UsageRepo:   usageRepo,
		PaymentRepo: paymentRepo,
		NonceRepo:   nonceRepo,
		TxManager:   txManager,
	}
}
