package creators

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fanvault/payments/internal/domain"
	"github.com/fanvault/payments/internal/dto"
	"github.com/fanvault/payments/internal/service/feeservice"
	"github.com/fanvault/payments/pkg/utils"
)

type LedgerService interface {
	BalanceOf(ctx context.Context, creatorID string) (int64, error)
}

type FeeService interface {
	FeeInfoFor(ctx context.Context, creatorID string) (*feeservice.FeeInfo, error)
}

type PayoutService interface {
	History(ctx context.Context, creatorID string, limit int) ([]domain.Payout, error)
	RegisterPayoutAccount(ctx context.Context, creatorID, providerAccountID string) error
}

type CreatorHandler struct {
	ledgerService LedgerService
	feeService    FeeService
	payoutService PayoutService
}

func New(ledgerService LedgerService, feeService FeeService, payoutService PayoutService) *CreatorHandler {
	return &CreatorHandler{
		ledgerService: ledgerService,
		feeService:    feeService,
		payoutService: payoutService,
	}
}

// GetBalance godoc
//
//	@Summary		Get creator available balance
//	@Description	Available balance derived from the ledger: completed creator shares minus payouts that already committed funds.
//	@Tags			Creators
//	@Produce		json
//	@Param			creatorID	path		string					true	"Creator id"
//	@Success		200			{object}	dto.BalanceResponseDTO	"Available balance in minor units"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/creators/{creatorID}/balance [get]
func (h *CreatorHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	creatorID := chi.URLParam(r, "creatorID")

	balance, err := h.ledgerService.BalanceOf(r.Context(), creatorID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		CreatorID: creatorID,
		Balance:   balance,
	})
}

// GetFees godoc
//
//	@Summary		Get creator fee information
//	@Description	Current fee tier computed from the trailing calendar month earnings, or the locked elite founding override.
//	@Tags			Creators
//	@Produce		json
//	@Param			creatorID	path		string					true	"Creator id"
//	@Success		200			{object}	dto.FeeInfoResponseDTO	"Current tier and fee percent"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/creators/{creatorID}/fees [get]
func (h *CreatorHandler) GetFees(w http.ResponseWriter, r *http.Request) {
	creatorID := chi.URLParam(r, "creatorID")

	info, err := h.feeService.FeeInfoFor(r.Context(), creatorID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FeeInfoResponseDTO{
		CreatorID:       info.CreatorID,
		Tier:            info.TierName,
		FeePercent:      info.FeePercent,
		MonthlyEarnings: info.MonthlyEarnings,
		EliteFounding:   info.EliteFounding,
	})
}

// GetPayouts godoc
//
//	@Summary		Get creator payout history
//	@Description	Payouts for the creator, newest first.
//	@Tags			Creators
//	@Produce		json
//	@Param			creatorID	path		string					true	"Creator id"
//	@Param			limit		query		int						false	"Max rows to return"
//	@Success		200			{array}		dto.PayoutResponseDTO	"Payout history"
//	@Success		204			{object}	utils.Response			"No payouts yet"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/creators/{creatorID}/payouts [get]
func (h *CreatorHandler) GetPayouts(w http.ResponseWriter, r *http.Request) {
	creatorID := chi.URLParam(r, "creatorID")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	payouts, err := h.payoutService.History(r.Context(), creatorID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch payouts")
		return
	}
	if len(payouts) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Payouts not found")
		return
	}

	response := make([]dto.PayoutResponseDTO, len(payouts))
	for i, payout := range payouts {
		response[i] = dto.PayoutResponseDTO{
			ID:            payout.ID,
			CreatorID:     payout.CreatorID,
			Amount:        payout.AmountMinor,
			TransferID:    payout.ExternalTransferID,
			Status:        string(payout.Status),
			ArrivalDate:   payout.ArrivalDate,
			FailureReason: payout.FailureReason,
			CreatedAt:     payout.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// RegisterPayoutAccount godoc
//
//	@Summary		Register the creator payout destination
//	@Description	Store the provider connected-account id used as the destination for future transfers.
//	@Tags			Creators
//	@Accept			json
//	@Produce		json
//	@Param			creatorID	path		string								true	"Creator id"
//	@Param			request		body		dto.RegisterPayoutAccountRequestDTO	true	"Payout account payload"
//	@Success		200			{object}	utils.Response						"Payout account registered"
//	@Failure		400			{object}	utils.Response						"Invalid request"
//	@Failure		500			{object}	utils.Response						"Internal server error"
//	@Router			/api/creators/{creatorID}/payout-account [put]
func (h *CreatorHandler) RegisterPayoutAccount(w http.ResponseWriter, r *http.Request) {
	creatorID := chi.URLParam(r, "creatorID")

	var req dto.RegisterPayoutAccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProviderAccountID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "provider_account_id is required")
		return
	}

	if err := h.payoutService.RegisterPayoutAccount(r.Context(), creatorID, req.ProviderAccountID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "payout account registered"})
}
