package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akulagin/creditcore/internal/domain"
	"github.com/akulagin/creditcore/internal/dto"
	"github.com/akulagin/creditcore/internal/metrics"
	"github.com/akulagin/creditcore/internal/service/paymentservice"
	"github.com/akulagin/creditcore/pkg/utils"
	"github.com/akulagin/creditcore/pkg/validate"
)

type Service interface {
	CreateSecureRecord(ctx context.Context, userID, transactionID string, amount float64, token, recipient, nonce string, timeoutSeconds int) (*domain.PaymentRecord, error)
	GetRecord(ctx context.Context, transactionID string) (*domain.PaymentRecord, error)
	UpdateStatus(ctx context.Context, transactionID, status string) (*paymentservice.VerifyOutcome, error)
	VerifyAndSettle(ctx context.Context, transactionID string) (*paymentservice.VerifyOutcome, error)
}

type PaymentsHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentsHandler {
	return &PaymentsHandler{
		paymentService: paymentService,
	}
}

func toResponseDTO(record *domain.PaymentRecord) dto.PaymentRecordResponseDTO {
	return dto.PaymentRecordResponseDTO{
		ID:             record.ID,
		UserID:         record.UserID,
		TransactionID:  record.TransactionID,
		ExpectedAmount: record.ExpectedAmount,
		Token:          record.Token,
		Recipient:      record.Recipient,
		Status:         record.Status,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
		VerifiedAt:     record.VerifiedAt,
	}
}

// CreateRecord godoc
//
//	@Summary		Create a pending payment record
//	@Description	Register a payment attempt and bind its nonce. A known transaction id or a reused nonce refuses creation.
//	@Tags			Платежи
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePaymentRecordRequestDTO	true	"Payment attempt"
//	@Success		201		{object}	dto.PaymentRecordResponseDTO		"Created record"
//	@Failure		400		{object}	utils.Response						"Invalid payload"
//	@Failure		409		{object}	utils.Response						"Transaction or nonce already registered"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/payments/records [post]
func (h *PaymentsHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentRecordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.paymentService.CreateSecureRecord(r.Context(),
		req.UserID, req.TransactionID, req.ExpectedAmount, req.Token, req.Recipient, req.Nonce, req.TimeoutSeconds)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, "invalid payment parameters")
		case errors.Is(err, domain.ErrDuplicateTransactionID), errors.Is(err, domain.ErrDuplicateNonce):
			// Same refusal for both; the audit trail keeps the distinction.
			utils.RespondWithError(w, http.StatusConflict, "payment already registered")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, toResponseDTO(record))
}

// GetRecord godoc
//
//	@Summary		Get a payment record
//	@Tags			Платежи
//	@Produce		json
//	@Param			transaction_id	query		string	true	"Transaction signature"
//	@Success		200	{object}	dto.PaymentRecordResponseDTO	"Payment record"
//	@Failure		400	{object}	utils.Response					"Missing transaction id"
//	@Failure		404	{object}	utils.Response					"Record not found"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/payments/records [get]
func (h *PaymentsHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	transactionID := r.URL.Query().Get("transaction_id")
	if transactionID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "transaction_id is required")
		return
	}

	record, err := h.paymentService.GetRecord(r.Context(), transactionID)
	if err != nil {
		if errors.Is(err, paymentservice.ErrRecordNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "payment record not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(record))
}

// UpdateStatus godoc
//
//	@Summary		Transition a payment record
//	@Description	One-way pending→confirmed|failed transition. Confirming settles credits through the coordinator; repeats are idempotent.
//	@Tags			Платежи
//	@Accept			json
//	@Produce		json
//	@Param			transaction_id	query		string							true	"Transaction signature"
//	@Param			request			body		dto.UpdatePaymentStatusRequestDTO	true	"Target status"
//	@Success		200	{object}	dto.PaymentRecordResponseDTO	"Record after transition"
//	@Failure		400	{object}	utils.Response					"Invalid status or failed payment"
//	@Failure		404	{object}	utils.Response					"Record not found"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/payments/records [patch]
func (h *PaymentsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	transactionID := r.URL.Query().Get("transaction_id")
	if transactionID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "transaction_id is required")
		return
	}

	var req dto.UpdatePaymentStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err := h.paymentService.UpdateStatus(r.Context(), transactionID, req.Status)
	if err != nil && !errors.Is(err, paymentservice.ErrPaymentFailed) {
		switch {
		case errors.Is(err, paymentservice.ErrInvalidStatus):
			utils.RespondWithError(w, http.StatusBadRequest, "status must be confirmed or failed")
		case errors.Is(err, paymentservice.ErrRecordNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "payment record not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	record, err := h.paymentService.GetRecord(r.Context(), transactionID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(record))
}

// Webhook godoc
//
//	@Summary		Chain confirmation webhook
//	@Description	Settle the payment matching the delivered signature. Safe to deliver any number of times; non-final results are acknowledged without state change.
//	@Tags			Платежи
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WebhookRequestDTO	true	"Chain notification"
//	@Success		200	{object}	dto.WebhookResponseDTO	"Settled or already settled"
//	@Failure		400	{object}	utils.Response			"Invalid payload or rejected payment"
//	@Failure		404	{object}	utils.Response			"No payment record for signature"
//	@Failure		503	{object}	utils.Response			"Verification pending, retry later"
//	@Router			/api/payments/webhook [post]
func (h *PaymentsHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	metrics.WebhookDeliveries.Inc()

	var req dto.WebhookRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validate.IsTransactionSignature(req.Transaction.Signature) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid transaction signature")
		return
	}

	// Only finality matters; earlier commitment levels are acknowledged so
	// the sender stops retrying, and the poller picks the record up later.
	if req.Result != "finalized" {
		utils.RespondWithJSON(w, http.StatusOK, dto.WebhookResponseDTO{Success: true})
		return
	}

	_, err := h.paymentService.VerifyAndSettle(r.Context(), req.Transaction.Signature)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrRecordNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "payment record not found")
		case errors.Is(err, paymentservice.ErrPaymentFailed):
			utils.RespondWithError(w, http.StatusBadRequest, "invalid payment")
		case errors.Is(err, paymentservice.ErrVerificationInconclusive):
			utils.RespondWithError(w, http.StatusServiceUnavailable, "verification pending")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.WebhookResponseDTO{Success: true})
}
