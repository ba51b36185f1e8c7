package repo

import (
	"testing"

	"github.com/akulagin/creditcore/internal/pg"
	creditrepo "github.com/akulagin/creditcore/internal/repo/credit-repo"
	noncerepo "github.com/akulagin/creditcore/internal/repo/nonce-repo"
	paymentrepo "github.com/akulagin/creditcore/internal/repo/payment-repo"
	usagerepo "github.com/akulagin/creditcore/internal/repo/usage-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.CreditRepo)
	assert.NotNil(t, repo.UsageRepo)
	assert.NotNil(t, repo.PaymentRepo)
	assert.NotNil(t, repo.NonceRepo)
	assert.NotNil(t, repo.TxManager)

	assert.IsType(t, &creditrepo.Repository{}, repo.CreditRepo)
	assert.IsType(t, &usagerepo.Repository{}, repo.UsageRepo)
	assert.IsType(t, &paymentrepo.Repository{}, repo.PaymentRepo)
	assert.IsType(t, &noncerepo.Repository{}, repo.NonceRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
