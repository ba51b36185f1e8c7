package domain

import "time"

const (
	// PendingStatus платёж создан, подтверждение в сети ещё не проверено;
	PendingStatus string = "pending"
	// ConfirmedStatus платёж подтверждён, кредиты начислены (терминальный);
	ConfirmedStatus string = "confirmed"
	// FailedStatus платёж отклонён проверкой либо истёк (терминальный);
	FailedStatus string = "failed"
)

const (
	TokenUSDC string = "USDC"
	TokenUSDT string = "USDT"
	TokenCASH string = "CASH"
)

type UserCredits struct {
	UserID    string    `db:"user_id"`
	Credits   int64     `db:"credits"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type UsageRecord struct {
	UserID              string    `db:"user_id"`
	Day                 time.Time `db:"day"`
	DailyCount          int       `db:"daily_count"`
	FreeInterviewUsed   bool      `db:"free_interview_used"`
	InterviewsCompleted int       `db:"interviews_completed"`
	UpdatedAt           time.Time `db:"updated_at"`
}

type NonceRecord struct {
	Nonce         string    `db:"nonce"`
	TransactionID string    `db:"transaction_id"`
	CreatedAt     time.Time `db:"created_at"`
}

type PaymentRecord struct {
	ID             string     `db:"id"`
	UserID         string     `db:"user_id"`
	TransactionID  string     `db:"transaction_id"`
	ExpectedAmount float64    `db:"expected_amount"`
	Token          string     `db:"token"`
	Recipient      string     `db:"recipient"`
	Nonce          string     `db:"nonce"`
	Status         string     `db:"status"`
	TimeoutSeconds int        `db:"timeout_seconds"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	VerifiedAt     *time.Time `db:"verified_at"`
}

// ValidToken reports whether token is one of the supported SPL tokens.
func ValidToken(token string) bool {
	switch token {
	case TokenUSDC, TokenUSDT, TokenCASH:
		return true
	}
	return false
}
