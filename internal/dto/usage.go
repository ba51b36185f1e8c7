package dto

type UsageStatusResponseDTO struct {
	Allowed           bool `json:"allowed" example:"true"`
	Cost              int  `json:"cost" example:"1"`
	Remaining         int  `json:"remaining" example:"3"`
	FreeInterviewUsed bool `json:"freeInterviewUsed" example:"false"`
}

type ConsumeRequestDTO struct {
	Action string `json:"action" example:"interview"`
}

type ConsumeResponseDTO struct {
	Charged   bool  `json:"charged" example:"false"`
	Cost      int   `json:"cost" example:"1"`
	Remaining int   `json:"remaining" example:"2"`
	Credits   int64 `json:"credits,omitempty" example:"4"`
}

// PaymentRequirementsDTO is the machine-readable 402 payload that tells the
// client how to pay for the next action.
type PaymentRequirementsDTO struct {
	Amount      float64 `json:"amount" example:"0.5"`
	Token       string  `json:"token" example:"USDC"`
	Recipient   string  `json:"recipient" example:"7Np41oeYqPefeNQEHSv1UDhYrehxin3NStELsSKCT4K2"`
	Description string  `json:"description" example:"Unlock one full AI interview"`
}
