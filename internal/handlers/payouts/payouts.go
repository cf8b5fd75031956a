package payouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fanvault/payments/internal/domain"
	"github.com/fanvault/payments/internal/dto"
	"github.com/fanvault/payments/internal/service/payoutservice"
	"github.com/fanvault/payments/pkg/utils"
)

type Service interface {
	Initiate(ctx context.Context, creatorID string, amount int64) (*domain.Payout, error)
	ApplyTransferEvent(ctx context.Context, transferID string, status domain.PayoutStatus, arrivalDate *time.Time, failureReason string) (*domain.Payout, error)
}

type PayoutHandler struct {
	payoutService Service
}

func New(payoutService Service) *PayoutHandler {
	return &PayoutHandler{
		payoutService: payoutService,
	}
}

// InitiatePayout godoc
//
//	@Summary		Initiate a payout
//	@Description	Settle part of the creator balance via an external transfer. A provider failure is captured by the failover queue before the error is returned.
//	@Tags			Payouts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.InitiatePayoutRequestDTO	true	"Payout request payload"
//	@Success		201		{object}	dto.PayoutResponseDTO			"Payout created"
//	@Failure		400		{object}	utils.Response					"Invalid amount"
//	@Failure		402		{object}	utils.Response					"Insufficient balance"
//	@Failure		409		{object}	utils.Response					"Payout account missing or inactive"
//	@Failure		502		{object}	utils.Response					"Provider transfer failed, queued for retry"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/payouts [post]
func (h *PayoutHandler) InitiatePayout(w http.ResponseWriter, r *http.Request) {
	var req dto.InitiatePayoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CreatorID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "creator_id is required")
		return
	}

	payout, err := h.payoutService.Initiate(r.Context(), req.CreatorID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, payoutservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, payoutservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, payoutservice.ErrNotConnected), errors.Is(err, payoutservice.ErrAccountInactive):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, payoutservice.ErrTransferFailed):
			utils.RespondWithError(w, http.StatusBadGateway, "provider transfer failed, payout queued for retry")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, toPayoutDTO(payout))
}

// TransferWebhook godoc
//
//	@Summary		Apply a provider transfer lifecycle event
//	@Description	Move the matching payout along its one-way status lifecycle. Repeated delivery of the same status is a no-op.
//	@Tags			Payouts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferEventRequestDTO	true	"Transfer event payload"
//	@Success		200		{object}	dto.PayoutResponseDTO		"Payout after the event"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		404		{object}	utils.Response				"Unknown transfer id"
//	@Failure		409		{object}	utils.Response				"Transition not allowed"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/webhooks/transfers [post]
func (h *PayoutHandler) TransferWebhook(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferEventRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TransferID == "" || req.Status == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "transfer_id and status are required")
		return
	}

	payout, err := h.payoutService.ApplyTransferEvent(
		r.Context(), req.TransferID, domain.PayoutStatus(req.Status), req.ArrivalDate, req.FailureReason,
	)
	if err != nil {
		switch {
		case errors.Is(err, payoutservice.ErrUnknownTransfer):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, payoutservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toPayoutDTO(payout))
}

func toPayoutDTO(p *domain.Payout) dto.PayoutResponseDTO {
	return dto.PayoutResponseDTO{
		ID:            p.ID,
		CreatorID:     p.CreatorID,
		Amount:        p.AmountMinor,
		TransferID:    p.ExternalTransferID,
		Status:        string(p.Status),
		ArrivalDate:   p.ArrivalDate,
		FailureReason: p.FailureReason,
		CreatedAt:     p.CreatedAt,
	}
}
