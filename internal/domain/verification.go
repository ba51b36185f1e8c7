package domain

// VerifyReason classifies why an on-chain verification did not succeed.
type VerifyReason string

const (
	// ReasonNotFound транзакция не найдена в сети (возможно, ещё не видна).
	ReasonNotFound VerifyReason = "NotFound"
	// ReasonNotFinalized транзакция найдена, но ещё не финализирована.
	ReasonNotFinalized VerifyReason = "NotFinalized"
	// ReasonAmountMismatch переведённая сумма меньше ожидаемой.
	ReasonAmountMismatch VerifyReason = "AmountMismatch"
	// ReasonRecipientMismatch получатель не совпадает с ожидаемым кошельком.
	ReasonRecipientMismatch VerifyReason = "RecipientMismatch"
	// ReasonTxFailed транзакция исполнена с ошибкой в сети.
	ReasonTxFailed VerifyReason = "TxFailed"
	// ReasonRPCError сеть недоступна или ответ не разобран.
	ReasonRPCError VerifyReason = "RpcError"
)

// VerifyResult is the structured outcome of an on-chain payment check. A
// mismatch is a result, not an error: callers branch on Reason to decide
// between failing the payment and retrying later.
type VerifyResult struct {
	Success      bool         `json:"success"`
	ActualAmount float64      `json:"actual_amount,omitempty"`
	Reason       VerifyReason `json:"reason,omitempty"`
	Detail       string       `json:"detail,omitempty"`
}

// Retryable reports whether the payment may still confirm and must stay
// pending. RpcError and not-yet-visible transactions must never fail the
// record.
func (r *VerifyResult) Retryable() bool {
	switch r.Reason {
	case ReasonNotFound, ReasonNotFinalized, ReasonRPCError:
		return true
	}
	return false
}
