package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDoSucceedsAfterTransientFailures(t *testing.T) {
	strategy := NewStrategy(3, time.Millisecond)

	attempts := 0
	err := strategy.Do(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return Transient(errors.New("temporarily unavailable"))
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDoStopsOnPermanentError(t *testing.T) {
	strategy := NewStrategy(5, time.Millisecond)

	attempts := 0
	permanent := errors.New("amount mismatch")
	err := strategy.Do(context.Background(), func(ctx context.Context) error {
		attempts++
		return permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, attempts)
}

func TestDoExhaustsAttempts(t *testing.T) {
	strategy := NewStrategy(3, time.Millisecond)

	attempts := 0
	err := strategy.Do(context.Background(), func(ctx context.Context) error {
		attempts++
		return Transient(errors.New("rpc timeout"))
	})

	assert.Error(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDoRespectsContextCancellation(t *testing.T) {
	strategy := NewStrategy(10, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := strategy.Do(ctx, func(ctx context.Context) error {
		return Transient(errors.New("rpc timeout"))
	})

	assert.Error(t, err)
}
