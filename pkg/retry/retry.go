package retry

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// Strategy is a reusable retry policy shared by callers of unreliable
// backends (chain RPC, external HTTP services).
type Strategy struct {
	maxAttempts uint64
	baseDelay   time.Duration
}

func NewStrategy(maxAttempts uint64, baseDelay time.Duration) *Strategy {
	if maxAttempts == 0 {
		maxAttempts = 1
	}
	return &Strategy{maxAttempts: maxAttempts, baseDelay: baseDelay}
}

// Do runs fn with exponential backoff until it succeeds, returns a permanent
// error, or the attempt budget is exhausted. Wrap transient failures with
// Transient to make them retryable.
func (s *Strategy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(s.maxAttempts-1, retry.NewExponential(s.baseDelay))
	return retry.Do(ctx, backoff, fn)
}

// Transient marks err as retryable for Do.
func Transient(err error) error {
	return retry.RetryableError(err)
}
