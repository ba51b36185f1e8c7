package dto

type CreditsResponseDTO struct {
	Credits int64 `json:"credits" example:"5"`
}

type TopUpRequestDTO struct {
	Amount        float64 `json:"amount" example:"0.5"`
	TransactionID string  `json:"transactionId" example:"5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW"`
}

type TopUpResponseDTO struct {
	Success bool   `json:"success" example:"true"`
	Credits int64  `json:"credits" example:"10"`
	Message string `json:"message" example:"credits added"`
}
