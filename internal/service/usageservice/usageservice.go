package usageservice

import (
	"context"
	"errors"
	"time"

	"github.com/akulagin/creditcore/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	GetForDay(ctx context.Context, userID string, day time.Time) (*domain.UsageRecord, error)
	AddDailyCount(ctx context.Context, userID string, cost int) error
	MarkFreeInterviewUsed(ctx context.Context, userID string) error
}

// CreditLedger is the slice of the credit service used when free quota is
// exhausted.
type CreditLedger interface {
	GetCredits(ctx context.Context, userID string) (int64, error)
	DeductCredits(ctx context.Context, userID string, amount int64) error
}

var ErrUnknownAction = errors.New("unknown action")

// Per-action cost in free daily interactions and, once quota is spent, in credits.
var actionCosts = map[string]int{
	"interview": 1,
	"question":  1,
	"analysis":  1,
}

type Service struct {
	repo       Repo
	credits    CreditLedger
	dailyLimit int
	location   *time.Location
}

func New(repo Repo, credits CreditLedger, dailyLimit, utcOffsetHours int) *Service {
	return &Service{
		repo:       repo,
		credits:    credits,
		dailyLimit: dailyLimit,
		// A single fixed offset for the whole service keeps the day boundary
		// deterministic regardless of caller locale.
		location: time.FixedZone("quota", utcOffsetHours*3600),
	}
}

type UsageStatus struct {
	Allowed           bool
	Cost              int
	Remaining         int
	FreeInterviewUsed bool
}

type ConsumeResult struct {
	Charged           bool
	Cost              int
	Remaining         int
	FreeInterviewUsed bool
	Credits           int64
}

func (s *Service) today() time.Time {
	now := time.Now().In(s.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckUsage reports whether the user may perform the action without paying.
// Advisory only: it does not consume quota and never touches credits.
func (s *Service) CheckUsage(ctx context.Context, userID, action string) (*UsageStatus, error) {
	cost, ok := actionCosts[action]
	if !ok {
		return nil, ErrUnknownAction
	}

	record, err := s.repo.GetForDay(ctx, userID, s.today())
	if err != nil {
		zap.L().Error("failed to get usage record", zap.Error(err))
		return nil, err
	}

	status := &UsageStatus{
		Cost:              cost,
		FreeInterviewUsed: record.FreeInterviewUsed,
	}

	if !record.FreeInterviewUsed {
		// The one-time entitlement covers the whole first interview.
		status.Allowed = true
		status.Remaining = s.dailyLimit
		return status, nil
	}

	status.Remaining = s.dailyLimit - record.DailyCount
	if status.Remaining < 0 {
		status.Remaining = 0
	}
	status.Allowed = record.DailyCount+cost <= s.dailyLimit
	return status, nil
}

// RecordUsage consumes quota for an action the caller already performed. If
// the free interview had not been used it is marked used; otherwise the daily
// counter grows by cost. Day rollover happens inside GetForDay.
func (s *Service) RecordUsage(ctx context.Context, userID, action string, cost int, freeInterviewAlreadyUsed bool) error {
	if _, ok := actionCosts[action]; !ok {
		return ErrUnknownAction
	}

	if _, err := s.repo.GetForDay(ctx, userID, s.today()); err != nil {
		zap.L().Error("failed to roll over usage record", zap.Error(err))
		return err
	}

	if !freeInterviewAlreadyUsed {
		return s.repo.MarkFreeInterviewUsed(ctx, userID)
	}
	return s.repo.AddDailyCount(ctx, userID, cost)
}

// Consume performs the full billing decision for one action: free quota
// first, then credits. Returns creditservice.ErrInsufficientCredits through
// the ledger when the user can pay with neither.
func (s *Service) Consume(ctx context.Context, userID, action string) (*ConsumeResult, error) {
	status, err := s.CheckUsage(ctx, userID, action)
	if err != nil {
		return nil, err
	}

	if status.Allowed {
		if err := s.RecordUsage(ctx, userID, action, status.Cost, status.FreeInterviewUsed); err != nil {
			return nil, err
		}
		remaining := status.Remaining
		if status.FreeInterviewUsed {
			remaining -= status.Cost
		}
		return &ConsumeResult{
			Charged:           false,
			Cost:              status.Cost,
			Remaining:         remaining,
			FreeInterviewUsed: true,
		}, nil
	}

	if err := s.credits.DeductCredits(ctx, userID, int64(status.Cost)); err != nil {
		return nil, err
	}

	credits, err := s.credits.GetCredits(ctx, userID)
	if err != nil {
		// The deduction already happened; surface the balance as unknown.
		zap.L().Error("failed to read balance after deduction", zap.Error(err))
		credits = -1
	}

	return &ConsumeResult{
		Charged:           true,
		Cost:              status.Cost,
		Remaining:         0,
		FreeInterviewUsed: true,
		Credits:           credits,
	}, nil
}
