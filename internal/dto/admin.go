package dto

import "time"

type GrantEliteRequestDTO struct {
	FeePercent int64 `json:"fee_percent" example:"10"`
}

type EliteProfileResponseDTO struct {
	CreatorID   string `json:"creator_id" example:"creator_a1b2c3"`
	FeePercent  int64  `json:"fee_percent" example:"10"`
	EliteLocked bool   `json:"elite_locked" example:"true"`
}

type FeeInfoResponseDTO struct {
	CreatorID       string `json:"creator_id" example:"creator_a1b2c3"`
	Tier            string `json:"tier" example:"rising"`
	FeePercent      int64  `json:"fee_percent" example:"18"`
	MonthlyEarnings int64  `json:"monthly_earnings" example:"150000"`
	EliteFounding   bool   `json:"elite_founding" example:"false"`
}

type ExecuteTaskResponseDTO struct {
	Task   string `json:"task" example:"batch_payout"`
	Status string `json:"status" example:"completed"`
}

type FailoverRecordResponseDTO struct {
	ID            string     `json:"id" example:"5f1d7a2e-90cd-4a15-8a5e-02b1c3d4e5f6"`
	OperationKind string     `json:"operation_kind" example:"payout"`
	Status        string     `json:"status" example:"pending"`
	RetryCount    int        `json:"retry_count" example:"2"`
	MaxRetries    int        `json:"max_retries" example:"5"`
	CreatedAt     time.Time  `json:"created_at" example:"2026-08-01T12:04:05Z"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty" example:"2026-08-01T12:30:00Z"`
}
