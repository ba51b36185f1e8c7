package domain

import "errors"

// Shared storage-level sentinels. Services wrap or translate these for the
// HTTP layer.
var (
	ErrNotFound               = errors.New("record not found")
	ErrDuplicateTransactionID = errors.New("transaction already registered")
	ErrDuplicateNonce         = errors.New("nonce already used")
)
