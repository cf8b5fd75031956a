package dto

import "time"

type RecordPaymentRequestDTO struct {
	PayerID        string `json:"payer_id" example:"fan_7f3c1d"`
	CreatorID      string `json:"creator_id" example:"creator_a1b2c3"`
	Amount         int64  `json:"amount" example:"999"`
	Category       string `json:"category" example:"subscription"`
	ConfirmationID string `json:"confirmation_id" example:"conf_9a8b7c6d"`
}

type TransactionResponseDTO struct {
	ID              string    `json:"id" example:"a81bc81b-dead-4e5d-abff-90865d1e13b1"`
	PayerID         string    `json:"payer_id" example:"fan_7f3c1d"`
	CreatorID       string    `json:"creator_id" example:"creator_a1b2c3"`
	Amount          int64     `json:"amount" example:"999"`
	Category        string    `json:"category" example:"subscription"`
	PlatformFee     int64     `json:"platform_fee" example:"200"`
	CreatorEarnings int64     `json:"creator_earnings" example:"799"`
	Status          string    `json:"status" example:"completed"`
	CreatedAt       time.Time `json:"created_at" example:"2026-08-01T12:04:05Z"`
}

type BalanceResponseDTO struct {
	CreatorID string `json:"creator_id" example:"creator_a1b2c3"`
	Balance   int64  `json:"balance" example:"125000"`
}
