package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fanvault/payments/internal/domain"
	"github.com/fanvault/payments/internal/dto"
	"github.com/fanvault/payments/internal/service/ledgerservice"
	"github.com/fanvault/payments/internal/split"
	"github.com/fanvault/payments/pkg/utils"
)

type Service interface {
	RecordOrQueue(ctx context.Context, payerID, creatorID string, amount int64, category domain.Category, confirmationID string) (*domain.Transaction, error)
}

type PaymentHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *PaymentHandler {
	return &PaymentHandler{
		ledgerService: ledgerService,
	}
}

// RecordPayment godoc
//
//	@Summary		Record a confirmed payment
//	@Description	Verify the provider confirmation and append an immutable ledger transaction with the platform fee split applied. Redelivery of the same confirmation id returns the original transaction.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RecordPaymentRequestDTO	true	"Payment report payload"
//	@Success		201		{object}	dto.TransactionResponseDTO	"Transaction recorded (or the original row on redelivery)"
//	@Success		202		{object}	utils.Response				"Provider unavailable, queued for retry"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		422		{object}	utils.Response				"Confirmation verification failed"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/payments [post]
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PayerID == "" || req.CreatorID == "" || req.ConfirmationID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "payer_id, creator_id and confirmation_id are required")
		return
	}

	transaction, err := h.ledgerService.RecordOrQueue(
		r.Context(), req.PayerID, req.CreatorID, req.Amount, domain.Category(req.Category), req.ConfirmationID,
	)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrQueuedForRetry):
			utils.RespondWithJSON(w, http.StatusAccepted, utils.Response{Message: "provider unavailable, payment queued for retry"})
		case errors.Is(err, ledgerservice.ErrVerificationFailed):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, split.ErrUnknownCategory), errors.Is(err, split.ErrNegativeAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, toTransactionDTO(transaction))
}

func toTransactionDTO(t *domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:              t.ID,
		PayerID:         t.PayerID,
		CreatorID:       t.CreatorID,
		Amount:          t.AmountMinor,
		Category:        string(t.Category),
		PlatformFee:     t.PlatformFeeMinor,
		CreatorEarnings: t.CreatorEarnings(),
		Status:          string(t.Status),
		CreatedAt:       t.CreatedAt,
	}
}
