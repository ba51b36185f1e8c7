package validate

import "regexp"

// Base58 alphabet excludes 0, O, I and l.
var (
	addressRe   = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)
	signatureRe = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{64,90}$`)
	nonceRe     = regexp.MustCompile(`^[a-f0-9]{32}$`)
)

// IsWalletAddress reports whether s looks like a Solana account address.
func IsWalletAddress(s string) bool {
	return addressRe.MatchString(s)
}

// IsTransactionSignature reports whether s looks like a Solana transaction signature.
func IsTransactionSignature(s string) bool {
	return signatureRe.MatchString(s)
}

// IsNonce reports whether s is a 32-char lowercase hex nonce.
func IsNonce(s string) bool {
	return nonceRe.MatchString(s)
}
