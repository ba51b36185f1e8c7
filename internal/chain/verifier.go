package chain

import (
	"context"
	"fmt"

	"github.com/akulagin/creditcore/internal/config"
	"github.com/akulagin/creditcore/internal/domain"
	"github.com/akulagin/creditcore/internal/metrics"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Verifier checks SPL token payments against what a payment record promised:
// the transaction must be finalized, successful, and must move at least the
// expected amount of the expected token to the configured recipient wallet.
type Verifier struct {
	rpc   RPCClientI
	cache Cache
	cfg   *config.Config
}

func NewVerifier(rpc RPCClientI, cache Cache, cfg *config.Config) *Verifier {
	return &Verifier{
		rpc:   rpc,
		cache: cache,
		cfg:   cfg,
	}
}

// VerifyPayment fetches the transaction at finalized commitment and compares
// the token-balance delta of the recipient against the expected amount.
// Definitive outcomes are cached: a finalized transaction never changes.
func (v *Verifier) VerifyPayment(ctx context.Context, transactionID, expectedUserID string, expectedAmount float64, expectedToken, expectedRecipient string) *domain.VerifyResult {
	if v.cache != nil {
		cached, err := v.cache.Get(ctx, transactionID)
		if err != nil {
			zap.L().Warn("verification cache unavailable", zap.Error(err))
		}
		if cached != nil {
			return cached
		}
	}

	result := v.verify(ctx, transactionID, expectedAmount, expectedToken, expectedRecipient)

	if result.Success {
		metrics.PaymentVerifications.WithLabelValues("success").Inc()
	} else {
		metrics.PaymentVerifications.WithLabelValues(string(result.Reason)).Inc()
	}

	// Only cache outcomes that cannot change: a transaction that is not
	// visible yet may well appear on the next poll.
	if v.cache != nil && !result.Retryable() {
		if err := v.cache.Set(ctx, transactionID, result); err != nil {
			zap.L().Warn("can't cache verification result", zap.Error(err))
		}
	}
	return result
}

func (v *Verifier) verify(ctx context.Context, transactionID string, expectedAmount float64, expectedToken, expectedRecipient string) *domain.VerifyResult {
	tx, err := v.rpc.GetTransaction(ctx, transactionID)
	if err != nil {
		return &domain.VerifyResult{Reason: domain.ReasonRPCError, Detail: err.Error()}
	}

	// Null result: the node does not see the transaction at finalized
	// commitment. Either it does not exist or it is not finalized yet;
	// both cases leave the payment pending.
	if tx.Type == gjson.Null || !tx.Exists() {
		return &domain.VerifyResult{Reason: domain.ReasonNotFound, Detail: "transaction not visible at finalized commitment"}
	}

	if txErr := tx.Get("meta.err"); txErr.Exists() && txErr.Type != gjson.Null {
		return &domain.VerifyResult{Reason: domain.ReasonTxFailed, Detail: fmt.Sprintf("on-chain error: %s", txErr.Raw)}
	}

	mint := v.cfg.Mint(expectedToken)
	if mint == "" {
		return &domain.VerifyResult{Reason: domain.ReasonAmountMismatch, Detail: fmt.Sprintf("no mint configured for token %s", expectedToken)}
	}

	actual, found := tokenDelta(tx, mint, expectedRecipient)
	if !found {
		return &domain.VerifyResult{Reason: domain.ReasonRecipientMismatch, Detail: "recipient received no tokens of the expected mint"}
	}
	if actual < expectedAmount {
		return &domain.VerifyResult{
			ActualAmount: actual,
			Reason:       domain.ReasonAmountMismatch,
			Detail:       fmt.Sprintf("expected %.6f, got %.6f", expectedAmount, actual),
		}
	}

	return &domain.VerifyResult{Success: true, ActualAmount: actual}
}

// tokenDelta returns how much the owner's balance of the given mint grew in
// this transaction, computed from pre/postTokenBalances.
func tokenDelta(tx gjson.Result, mint, owner string) (float64, bool) {
	post, ok := balanceFor(tx.Get("meta.postTokenBalances"), mint, owner)
	if !ok {
		return 0, false
	}
	pre, _ := balanceFor(tx.Get("meta.preTokenBalances"), mint, owner)
	return post - pre, true
}

func balanceFor(balances gjson.Result, mint, owner string) (float64, bool) {
	var amount float64
	var found bool
	balances.ForEach(func(_, b gjson.Result) bool {
		if b.Get("mint").String() != mint || b.Get("owner").String() != owner {
			return true
		}
		amount = b.Get("uiTokenAmount.uiAmount").Float()
		found = true
		return false
	})
	return amount, found
}
