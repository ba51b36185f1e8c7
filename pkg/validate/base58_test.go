package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWalletAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{"valid mainnet address", "7Np41oeYqPefeNQEHSv1UDhYrehxin3NStELsSKCT4K2", true},
		{"valid mint address", "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", true},
		{"too short", "abc", false},
		{"contains zero", "0Np41oeYqPefeNQEHSv1UDhYrehxin3NStELsSKCT4K2", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWalletAddress(tt.address))
		})
	}
}

func TestIsTransactionSignature(t *testing.T) {
	valid := "5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW"
	assert.True(t, IsTransactionSignature(valid))
	assert.False(t, IsTransactionSignature("short"))
	assert.False(t, IsTransactionSignature(""))
}

func TestIsNonce(t *testing.T) {
	assert.True(t, IsNonce("a3f8b2c91d4e5f60718293a4b5c6d7e8"))
	assert.False(t, IsNonce("A3F8B2C91D4E5F60718293A4B5C6D7E8"))
	assert.False(t, IsNonce("a3f8b2c9"))
}
