package usage

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akulagin/creditcore/internal/dto"
	"github.com/akulagin/creditcore/internal/service/creditservice"
	"github.com/akulagin/creditcore/internal/service/usageservice"
	"github.com/akulagin/creditcore/pkg/auth"
	"github.com/akulagin/creditcore/pkg/utils"
)

type Service interface {
	CheckUsage(ctx context.Context, userID, action string) (*usageservice.UsageStatus, error)
	Consume(ctx context.Context, userID, action string) (*usageservice.ConsumeResult, error)
}

type UsageHandler struct {
	usageService Service
	requirements dto.PaymentRequirementsDTO
}

func New(usageService Service, requirements dto.PaymentRequirementsDTO) *UsageHandler {
	return &UsageHandler{
		usageService: usageService,
		requirements: requirements,
	}
}

// CheckUsage godoc
//
//	@Summary		Check free quota for an action
//	@Description	Report whether the caller may perform the action without paying. Disallowed requests answer 402 with payment requirements.
//	@Tags			Квота
//	@Security		BearerAuth
//	@Produce		json
//	@Param			action	query		string	false	"Billable action"	default(interview)
//	@Success		200		{object}	dto.UsageStatusResponseDTO		"Quota status"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		402		{object}	dto.PaymentRequirementsDTO		"Payment required"
//	@Failure		422		{object}	utils.Response					"Unknown action"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/user/usage [get]
func (h *UsageHandler) CheckUsage(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	action := r.URL.Query().Get("action")
	if action == "" {
		action = "interview"
	}

	status, err := h.usageService.CheckUsage(r.Context(), userID, action)
	if err != nil {
		if errors.Is(err, usageservice.ErrUnknownAction) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Unknown action")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if !status.Allowed {
		utils.RespondWithJSON(w, http.StatusPaymentRequired, h.requirements)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.UsageStatusResponseDTO{
		Allowed:           status.Allowed,
		Cost:              status.Cost,
		Remaining:         status.Remaining,
		FreeInterviewUsed: status.FreeInterviewUsed,
	})
}

// Consume godoc
//
//	@Summary		Consume one billable action
//	@Description	Spend free quota if available, otherwise credits. When neither covers the action, answer 402 with payment requirements.
//	@Tags			Квота
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConsumeRequestDTO	true	"Action to consume"
//	@Success		200		{object}	dto.ConsumeResponseDTO		"Action recorded"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	dto.PaymentRequirementsDTO	"Payment required"
//	@Failure		422		{object}	utils.Response				"Unknown action"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/usage [post]
func (h *UsageHandler) Consume(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.ConsumeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Action == "" {
		req.Action = "interview"
	}

	result, err := h.usageService.Consume(r.Context(), userID, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, usageservice.ErrUnknownAction):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Unknown action")
		case errors.Is(err, creditservice.ErrInsufficientCredits):
			utils.RespondWithJSON(w, http.StatusPaymentRequired, h.requirements)
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ConsumeResponseDTO{
		Charged:   result.Charged,
		Cost:      result.Cost,
		Remaining: result.Remaining,
		Credits:   result.Credits,
	})
}
