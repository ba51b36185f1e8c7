package paymentservice

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/akulagin/creditcore/internal/domain"
	"github.com/akulagin/creditcore/internal/metrics"
	"github.com/akulagin/creditcore/internal/pg"
	"github.com/akulagin/creditcore/pkg/validate"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type PaymentRepo interface {
	CreateWithNonce(ctx context.Context, record *domain.PaymentRecord) error
	FindByTransactionID(ctx context.Context, transactionID string) (*domain.PaymentRecord, error)
	ConfirmPending(ctx context.Context, transactionID string) (bool, error)
	FailPending(ctx context.Context, transactionID string) (bool, error)
	FindPendingForProcessing(ctx context.Context, limit uint32, minAgeSeconds int) ([]domain.PaymentRecord, error)
}

type NonceRepo interface {
	Consume(ctx context.Context, nonce, transactionID string) error
	Find(ctx context.Context, nonce string) (*domain.NonceRecord, error)
}

// CreditLedger is the slice of the credit service the coordinator mutates.
type CreditLedger interface {
	GetCredits(ctx context.Context, userID string) (int64, error)
	AddCredits(ctx context.Context, userID string, amount int64) (int64, error)
}

// Verifier checks a transaction on-chain. Implemented by the chain package.
type Verifier interface {
	VerifyPayment(ctx context.Context, transactionID, expectedUserID string, expectedAmount float64, expectedToken, expectedRecipient string) *domain.VerifyResult
}

// KafkaWriter publishes confirmed-payment events. May be nil when no broker
// is configured.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

var (
	ErrRecordNotFound           = errors.New("payment record not found")
	ErrPaymentFailed            = errors.New("payment failed")
	ErrNonceMismatch            = errors.New("nonce does not match payment record")
	ErrInvalidStatus            = errors.New("status must be confirmed or failed")
	ErrValidation               = errors.New("invalid payment parameters")
	ErrVerificationInconclusive = errors.New("verification inconclusive, payment still pending")
)

type Service struct {
	paymentRepo    PaymentRepo
	nonceRepo      NonceRepo
	credits        CreditLedger
	verifier       Verifier
	txManager      pg.TXManager
	kafkaWriter    KafkaWriter
	kafkaTopic     string
	creditsPerUnit int64
	defaultTimeout int
}

func New(
	paymentRepo PaymentRepo,
	nonceRepo NonceRepo,
	credits CreditLedger,
	verifier Verifier,
	txManager pg.TXManager,
	kafkaWriter KafkaWriter,
	kafkaTopic string,
	creditsPerUnit int,
	defaultTimeoutSeconds int,
) *Service {
	return &Service{
		paymentRepo:    paymentRepo,
		nonceRepo:      nonceRepo,
		credits:        credits,
		verifier:       verifier,
		txManager:      txManager,
		kafkaWriter:    kafkaWriter,
		kafkaTopic:     kafkaTopic,
		creditsPerUnit: int64(creditsPerUnit),
		defaultTimeout: defaultTimeoutSeconds,
	}
}

// GenerateNonce returns a 32-char lowercase hex token with 128 bits of
// entropy from the system CSPRNG.
func (s *Service) GenerateNonce() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("can't read random source: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// CheckNonceUsage reports whether a nonce has been consumed. Pure lookup.
func (s *Service) CheckNonceUsage(ctx context.Context, nonce string) (*domain.NonceRecord, error) {
	return s.nonceRepo.Find(ctx, nonce)
}

// CreateSecureRecord registers a pending payment and consumes its nonce in
// one transaction. A known transaction id or a reused nonce both refuse
// creation; the two are distinguishable via errors.Is for audit logging.
func (s *Service) CreateSecureRecord(ctx context.Context, userID, transactionID string, amount float64, token, recipient, nonce string, timeoutSeconds int) (*domain.PaymentRecord, error) {
	switch {
	case userID == "" || transactionID == "":
		return nil, ErrValidation
	case amount <= 0:
		return nil, ErrValidation
	case !domain.ValidToken(token):
		return nil, ErrValidation
	case !validate.IsWalletAddress(recipient):
		return nil, ErrValidation
	case !validate.IsNonce(nonce):
		return nil, ErrValidation
	}
	if timeoutSeconds <= 0 {
		timeoutSeconds = s.defaultTimeout
	}

	record := &domain.PaymentRecord{
		ID:             uuid.New().String(),
		UserID:         userID,
		TransactionID:  transactionID,
		ExpectedAmount: amount,
		Token:          token,
		Recipient:      recipient,
		Nonce:          nonce,
		Status:         domain.PendingStatus,
		TimeoutSeconds: timeoutSeconds,
	}

	if err := s.paymentRepo.CreateWithNonce(ctx, record); err != nil {
		zap.L().Error("can't create payment record", zap.String("transaction_id", transactionID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("payment record created",
		zap.String("transaction_id", transactionID),
		zap.String("userID", userID),
		zap.Float64("amount", amount),
		zap.String("token", token),
	)
	return record, nil
}

// GetRecord returns the payment record for a transaction id.
func (s *Service) GetRecord(ctx context.Context, transactionID string) (*domain.PaymentRecord, error) {
	record, err := s.paymentRepo.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}
	return record, nil
}

// VerifyOutcome is the result of the idempotent settlement operation.
type VerifyOutcome struct {
	Success          bool
	AlreadyProcessed bool
	UserID           string
	CreditsAdded     int64
}

// VerifyTransactionAtomic settles a payment exactly once. Safe to call any
// number of times with the same inputs from any number of goroutines: the
// pending→confirmed transition is a conditional UPDATE whose affected-row
// count elects a single winner, and the credit mutation shares the winner's
// database transaction so a storage failure leaves the record pending.
func (s *Service) VerifyTransactionAtomic(ctx context.Context, transactionID, nonce string, verificationSucceeded bool) (*VerifyOutcome, error) {
	record, err := s.paymentRepo.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		metrics.PaymentVerifications.WithLabelValues("error").Inc()
		return nil, ErrRecordNotFound
	}
	if nonce != "" && record.Nonce != nonce {
		zap.L().Warn("nonce mismatch on verification",
			zap.String("transaction_id", transactionID))
		metrics.PaymentVerifications.WithLabelValues("error").Inc()
		return nil, ErrNonceMismatch
	}

	switch record.Status {
	case domain.ConfirmedStatus:
		// Replayed webhook or retried client: acknowledge without touching credits.
		metrics.PaymentVerifications.WithLabelValues("already_processed").Inc()
		return &VerifyOutcome{Success: true, AlreadyProcessed: true, UserID: record.UserID}, nil
	case domain.FailedStatus:
		return nil, ErrPaymentFailed
	}

	if !verificationSucceeded {
		if _, err := s.paymentRepo.FailPending(ctx, transactionID); err != nil {
			return nil, err
		}
		zap.L().Info("payment marked failed", zap.String("transaction_id", transactionID))
		metrics.PaymentVerifications.WithLabelValues("failed").Inc()
		return nil, ErrPaymentFailed
	}

	creditsToAdd := int64(math.Round(record.ExpectedAmount * float64(s.creditsPerUnit)))

	var won bool
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		won, err = s.paymentRepo.ConfirmPending(ctx, transactionID)
		if err != nil {
			return err
		}
		if !won {
			return nil
		}
		if _, err := s.credits.AddCredits(ctx, record.UserID, creditsToAdd); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		zap.L().Error("settlement transaction failed, record stays pending", zap.Error(err))
		return nil, err
	}

	if !won {
		// Lost the race: another caller performed the transition.
		return s.settleAfterLostRace(ctx, transactionID)
	}

	zap.L().Info("payment confirmed",
		zap.String("transaction_id", transactionID),
		zap.String("userID", record.UserID),
		zap.Int64("credits", creditsToAdd),
	)
	metrics.PaymentVerifications.WithLabelValues("confirmed").Inc()
	s.publishConfirmed(ctx, record, creditsToAdd)

	return &VerifyOutcome{Success: true, UserID: record.UserID, CreditsAdded: creditsToAdd}, nil
}

func (s *Service) settleAfterLostRace(ctx context.Context, transactionID string) (*VerifyOutcome, error) {
	record, err := s.paymentRepo.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}
	if record.Status == domain.ConfirmedStatus {
		metrics.PaymentVerifications.WithLabelValues("already_processed").Inc()
		return &VerifyOutcome{Success: true, AlreadyProcessed: true, UserID: record.UserID}, nil
	}
	return nil, ErrPaymentFailed
}

// VerifyAndSettle runs the on-chain check for a pending record and feeds the
// result to the coordinator. Inconclusive checks (RPC errors, not yet
// finalized) leave the record pending and return
// ErrVerificationInconclusive.
func (s *Service) VerifyAndSettle(ctx context.Context, transactionID string) (*VerifyOutcome, error) {
	record, err := s.paymentRepo.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}
	if record.Status == domain.ConfirmedStatus {
		metrics.PaymentVerifications.WithLabelValues("already_processed").Inc()
		return &VerifyOutcome{Success: true, AlreadyProcessed: true, UserID: record.UserID}, nil
	}
	if record.Status == domain.FailedStatus {
		return nil, ErrPaymentFailed
	}

	result := s.verifier.VerifyPayment(ctx, record.TransactionID, record.UserID, record.ExpectedAmount, record.Token, record.Recipient)
	if result.Success {
		return s.VerifyTransactionAtomic(ctx, transactionID, record.Nonce, true)
	}
	if result.Retryable() {
		zap.L().Info("verification inconclusive",
			zap.String("transaction_id", transactionID),
			zap.String("reason", string(result.Reason)),
		)
		return nil, ErrVerificationInconclusive
	}

	zap.L().Warn("verification rejected payment",
		zap.String("transaction_id", transactionID),
		zap.String("reason", string(result.Reason)),
		zap.String("detail", result.Detail),
	)
	return s.VerifyTransactionAtomic(ctx, transactionID, record.Nonce, false)
}

// UpdateStatus applies a one-way pending→confirmed|failed transition through
// the coordinator, so a confirmation always carries its credit mutation and
// repeats stay idempotent.
func (s *Service) UpdateStatus(ctx context.Context, transactionID, status string) (*VerifyOutcome, error) {
	switch status {
	case domain.ConfirmedStatus:
		return s.VerifyTransactionAtomic(ctx, transactionID, "", true)
	case domain.FailedStatus:
		return s.VerifyTransactionAtomic(ctx, transactionID, "", false)
	}
	return nil, ErrInvalidStatus
}

// TopUp settles the payment referenced by transactionID for userID and
// returns the resulting balance. Idempotent: a replay reports the current
// balance with alreadyProcessed=true.
func (s *Service) TopUp(ctx context.Context, userID, transactionID string) (int64, bool, error) {
	record, err := s.paymentRepo.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return 0, false, err
	}
	// An unknown transaction and someone else's transaction look the same to
	// the caller.
	if record == nil || record.UserID != userID {
		return 0, false, ErrRecordNotFound
	}

	outcome, err := s.VerifyAndSettle(ctx, transactionID)
	if err != nil {
		return 0, false, err
	}

	balance, err := s.credits.GetCredits(ctx, userID)
	if err != nil {
		return 0, false, err
	}
	return balance, outcome.AlreadyProcessed, nil
}

// FindPendingForProcessing exposes pending records to the confirmation worker.
func (s *Service) FindPendingForProcessing(ctx context.Context, limit uint32, minAgeSeconds int) ([]domain.PaymentRecord, error) {
	return s.paymentRepo.FindPendingForProcessing(ctx, limit, minAgeSeconds)
}

type confirmedEvent struct {
	TransactionID string  `json:"transaction_id"`
	UserID        string  `json:"user_id"`
	Token         string  `json:"token"`
	Amount        float64 `json:"amount"`
	Credits       int64   `json:"credits"`
}

// publishConfirmed emits a best-effort notification; settlement never depends
// on the broker being reachable.
func (s *Service) publishConfirmed(ctx context.Context, record *domain.PaymentRecord, credits int64) {
	if s.kafkaWriter == nil {
		return
	}

	value, err := json.Marshal(confirmedEvent{
		TransactionID: record.TransactionID,
		UserID:        record.UserID,
		Token:         record.Token,
		Amount:        record.ExpectedAmount,
		Credits:       credits,
	})
	if err != nil {
		zap.L().Error("can't marshal confirmed event", zap.Error(err))
		return
	}

	msg := kafka.Message{
		Topic: s.kafkaTopic,
		Key:   []byte(record.TransactionID),
		Value: value,
	}
	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		zap.L().Error("can't publish confirmed event", zap.Error(err))
	}
}
