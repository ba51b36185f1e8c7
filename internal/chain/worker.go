package chain

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/akulagin/creditcore/internal/config"
	"github.com/akulagin/creditcore/internal/domain"
	"github.com/akulagin/creditcore/internal/service/paymentservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// minRecordAge keeps the poller off records the client is still actively
// confirming through the API.
const minRecordAge = 5

var processingPayments sync.Map

// Payments is the slice of the payment service the confirmation worker
// drives.
type Payments interface {
	FindPendingForProcessing(ctx context.Context, limit uint32, minAgeSeconds int) ([]domain.PaymentRecord, error)
	VerifyAndSettle(ctx context.Context, transactionID string) (*paymentservice.VerifyOutcome, error)
	VerifyTransactionAtomic(ctx context.Context, transactionID, nonce string, verificationSucceeded bool) (*paymentservice.VerifyOutcome, error)
}

// Worker periodically re-checks pending payment records against the chain:
// confirmed transfers are settled, definitive rejections are failed, and
// records past their timeout expire.
type Worker struct {
	payments       Payments
	limit          uint32
	defaultTimeout int
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func NewWorker(cfg *config.Config, payments Payments) *Worker {
	return &Worker{
		payments:       payments,
		limit:          1000,
		defaultTimeout: cfg.PaymentTimeoutSec,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (w *Worker) Start(ctx context.Context) {
	zap.L().Info("Payment confirmation worker started")
	go w.run(ctx)
}

func (w *Worker) run(ctx context.Context) {
	ticker := time.NewTicker(w.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping confirmation worker")
			return
		case <-ticker.C:
			w.processPending(ctx)
		}
	}
}

func (w *Worker) processPending(ctx context.Context) {
	records, err := w.payments.FindPendingForProcessing(ctx, atomic.LoadUint32(&w.limit), minRecordAge)
	if err != nil {
		zap.L().Error("Failed to fetch pending payments", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, record := range records {
		record := record

		if _, loaded := processingPayments.LoadOrStore(record.TransactionID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := w.workerPool.AddTask(ctx, func() error {
				defer processingPayments.Delete(record.TransactionID)
				return w.handleRecord(ctx, record)
			})
			if err != nil {
				processingPayments.Delete(record.TransactionID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing pending payments", zap.Error(err))
	}
}

func (w *Worker) handleRecord(ctx context.Context, record domain.PaymentRecord) error {
	if w.expired(record) {
		zap.L().Info("Payment record expired, failing",
			zap.String("transaction_id", record.TransactionID),
			zap.Time("created_at", record.CreatedAt),
		)
		_, err := w.payments.VerifyTransactionAtomic(ctx, record.TransactionID, "", false)
		if err != nil && !errors.Is(err, paymentservice.ErrPaymentFailed) {
			return fmt.Errorf("failed to expire payment %s: %w", record.TransactionID, err)
		}
		return nil
	}

	_, err := w.payments.VerifyAndSettle(ctx, record.TransactionID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, paymentservice.ErrVerificationInconclusive):
		// Still pending; the next tick will try again.
		return nil
	case errors.Is(err, paymentservice.ErrPaymentFailed):
		return nil
	default:
		return fmt.Errorf("failed to settle payment %s: %w", record.TransactionID, err)
	}
}

func (w *Worker) expired(record domain.PaymentRecord) bool {
	timeout := record.TimeoutSeconds
	if timeout <= 0 {
		timeout = w.defaultTimeout
	}
	return time.Since(record.CreatedAt) > time.Duration(timeout)*time.Second
}
