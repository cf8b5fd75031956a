package failover

import "github.com/fanvault/payments/internal/domain"

// Retry payloads carry everything the operation-specific handler needs to
// replay the failed call. They are stored as JSON on the failover record.

type PaymentPayload struct {
	PayerID        string          `json:"payer_id"`
	CreatorID      string          `json:"creator_id"`
	AmountMinor    int64           `json:"amount_minor"`
	Category       domain.Category `json:"category"`
	ConfirmationID string          `json:"confirmation_id"`
}

type PayoutPayload struct {
	CreatorID   string `json:"creator_id"`
	AmountMinor int64  `json:"amount_minor"`
}

type TierRecalcPayload struct {
	CreatorID string `json:"creator_id"`
}
