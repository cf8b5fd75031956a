package dto

import "time"

type InitiatePayoutRequestDTO struct {
	CreatorID string `json:"creator_id" example:"creator_a1b2c3"`
	Amount    int64  `json:"amount" example:"50000"`
}

type PayoutResponseDTO struct {
	ID            string     `json:"id" example:"0b78e5cb-61f5-4c9e-9f3f-3a5e7d2c1b0a"`
	CreatorID     string     `json:"creator_id" example:"creator_a1b2c3"`
	Amount        int64      `json:"amount" example:"50000"`
	TransferID    string     `json:"transfer_id" example:"tr_1LcX2f"`
	Status        string     `json:"status" example:"pending"`
	ArrivalDate   *time.Time `json:"arrival_date,omitempty" example:"2026-08-04T00:00:00Z"`
	FailureReason string     `json:"failure_reason,omitempty" example:""`
	CreatedAt     time.Time  `json:"created_at" example:"2026-08-01T12:04:05Z"`
}

type RegisterPayoutAccountRequestDTO struct {
	ProviderAccountID string `json:"provider_account_id" example:"acct_1Lbz4x"`
}

type TransferEventRequestDTO struct {
	TransferID    string     `json:"transfer_id" example:"tr_1LcX2f"`
	Status        string     `json:"status" example:"paid"`
	ArrivalDate   *time.Time `json:"arrival_date,omitempty" example:"2026-08-04T00:00:00Z"`
	FailureReason string     `json:"failure_reason,omitempty" example:"account_closed"`
}
