package creditservice

import (
	"context"
	"errors"

	"github.com/akulagin/creditcore/internal/domain"
	"github.com/akulagin/creditcore/internal/metrics"
	"go.uber.org/zap"
)

type Repo interface {
	GetOrCreateCredits(ctx context.Context, userID string, starting int64) (*domain.UserCredits, error)
	AddCredits(ctx context.Context, userID string, amount, starting int64) (int64, error)
	DeductCredits(ctx context.Context, userID string, amount int64) (bool, error)
}

type Service struct {
	repo     Repo
	starting int64
}

func New(repo Repo, startingCredits int) *Service {
	return &Service{
		repo:     repo,
		starting: int64(startingCredits),
	}
}

var (
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrInvalidAmount       = errors.New("amount must be positive")
)

// GetCredits returns the user's balance, creating the row with the starting
// balance on first contact.
func (s *Service) GetCredits(ctx context.Context, userID string) (int64, error) {
	credits, err := s.repo.GetOrCreateCredits(ctx, userID, s.starting)
	if err != nil {
		zap.L().Error("failed to get credits", zap.Error(err))
		return 0, err
	}
	return credits.Credits, nil
}

// AddCredits increments the balance and returns the new total.
func (s *Service) AddCredits(ctx context.Context, userID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	balance, err := s.repo.AddCredits(ctx, userID, amount, s.starting)
	if err != nil {
		zap.L().Error("failed to add credits", zap.Error(err))
		return 0, err
	}
	metrics.CreditMutations.WithLabelValues("add").Inc()
	zap.L().Info("credits added", zap.String("userID", userID), zap.Int64("amount", amount), zap.Int64("balance", balance))
	return balance, nil
}

// DeductCredits spends amount from the balance. Returns
// ErrInsufficientCredits without touching the balance when it does not cover
// the amount.
func (s *Service) DeductCredits(ctx context.Context, userID string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	// Ensure the row exists so a brand-new user spends from the starting balance.
	if _, err := s.repo.GetOrCreateCredits(ctx, userID, s.starting); err != nil {
		return err
	}

	ok, err := s.repo.DeductCredits(ctx, userID, amount)
	if err != nil {
		zap.L().Error("failed to deduct credits", zap.Error(err))
		return err
	}
	if !ok {
		return ErrInsufficientCredits
	}
	metrics.CreditMutations.WithLabelValues("deduct").Inc()
	return nil
}
