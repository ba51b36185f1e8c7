package dto

import "encoding/json"

type WebhookTransactionDTO struct {
	Signature string          `json:"signature"`
	Slot      uint64          `json:"slot"`
	BlockTime int64           `json:"blockTime"`
	Meta      json.RawMessage `json:"meta,omitempty"`
}

type WebhookRequestDTO struct {
	Transaction WebhookTransactionDTO `json:"transaction"`
	Result      string                `json:"result" example:"finalized"`
}

type WebhookResponseDTO struct {
	Success bool `json:"success" example:"true"`
}
