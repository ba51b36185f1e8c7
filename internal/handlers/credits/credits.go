package credits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akulagin/creditcore/internal/dto"
	"github.com/akulagin/creditcore/internal/service/paymentservice"
	"github.com/akulagin/creditcore/pkg/auth"
	"github.com/akulagin/creditcore/pkg/utils"
	"github.com/akulagin/creditcore/pkg/validate"
)

type Service interface {
	GetCredits(ctx context.Context, userID string) (int64, error)
}

// Settler settles the payment a top-up references.
type Settler interface {
	TopUp(ctx context.Context, userID, transactionID string) (int64, bool, error)
}

type CreditsHandler struct {
	creditService Service
	settler       Settler
}

func New(creditService Service, settler Settler) *CreditsHandler {
	return &CreditsHandler{
		creditService: creditService,
		settler:       settler,
	}
}

// GetCredits godoc
//
//	@Summary		Get current credit balance
//	@Description	Return the caller's credit balance. Anonymous callers get a zero balance, not an error.
//	@Tags			Кредиты
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CreditsResponseDTO	"Current balance"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/credits [get]
func (h *CreditsHandler) GetCredits(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithJSON(w, http.StatusOK, dto.CreditsResponseDTO{Credits: 0})
		return
	}

	credits, err := h.creditService.GetCredits(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreditsResponseDTO{Credits: credits})
}

// TopUp godoc
//
//	@Summary		Credit the account from a verified payment
//	@Description	Settle the referenced on-chain payment and report the new balance. Safe to retry: a replay reports the balance without a second credit.
//	@Tags			Кредиты
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TopUpRequestDTO	true	"Top-up payload"
//	@Success		200		{object}	dto.TopUpResponseDTO	"Balance after settlement"
//	@Failure		400		{object}	utils.Response			"Invalid amount or transaction"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		503		{object}	utils.Response			"Verification pending, retry later"
//	@Router			/api/user/credits [post]
func (h *CreditsHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.TopUpRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Amount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "amount must be positive")
		return
	}
	if !validate.IsTransactionSignature(req.TransactionID) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	balance, alreadyProcessed, err := h.settler.TopUp(r.Context(), userID, req.TransactionID)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrRecordNotFound),
			errors.Is(err, paymentservice.ErrPaymentFailed):
			utils.RespondWithError(w, http.StatusBadRequest, "invalid transaction")
		case errors.Is(err, paymentservice.ErrVerificationInconclusive):
			utils.RespondWithError(w, http.StatusServiceUnavailable, "verification pending, retry later")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	message := "credits added"
	if alreadyProcessed {
		message = "payment already credited"
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TopUpResponseDTO{
		Success: true,
		Credits: balance,
		Message: message,
	})
}
