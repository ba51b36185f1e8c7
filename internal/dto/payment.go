package dto

import "time"

type CreatePaymentRecordRequestDTO struct {
	UserID         string  `json:"user_id" example:"user-42"`
	TransactionID  string  `json:"transaction_id"`
	ExpectedAmount float64 `json:"expected_amount" example:"0.5"`
	Token          string  `json:"token" example:"USDC"`
	Recipient      string  `json:"recipient" example:"7Np41oeYqPefeNQEHSv1UDhYrehxin3NStELsSKCT4K2"`
	Nonce          string  `json:"nonce" example:"a3f8b2c91d4e5f60718293a4b5c6d7e8"`
	TimeoutSeconds int     `json:"timeout_seconds,omitempty" example:"300"`
}

type PaymentRecordResponseDTO struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	TransactionID  string     `json:"transaction_id"`
	ExpectedAmount float64    `json:"expected_amount"`
	Token          string     `json:"token"`
	Recipient      string     `json:"recipient"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	VerifiedAt     *time.Time `json:"verified_at,omitempty"`
}

type UpdatePaymentStatusRequestDTO struct {
	Status string `json:"status" example:"confirmed"`
}
