package domain

import "time"

// Category of a money-moving event. Each category has its own revenue split.
type Category string

const (
	CategorySubscription     Category = "subscription"
	CategoryOneTimeExclusive Category = "one_time_exclusive"
	CategoryTip              Category = "tip"
	CategoryMerchandise      Category = "merchandise"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionRefunded  TransactionStatus = "refunded"
)

// Transaction is an immutable ledger row for a confirmed payment.
// Creator earnings are always derived as AmountMinor - PlatformFeeMinor
// and never stored separately.
type Transaction struct {
	ID                     string            `db:"id"`
	PayerID                string            `db:"payer_id"`
	CreatorID              string            `db:"creator_id"`
	AmountMinor            int64             `db:"amount_minor"`
	Category               Category          `db:"category"`
	PlatformFeeMinor       int64             `db:"platform_fee_minor"`
	ProviderConfirmationID string            `db:"provider_confirmation_id"`
	Status                 TransactionStatus `db:"status"`
	CreatedAt              time.Time         `db:"created_at"`
}

func (t *Transaction) CreatorEarnings() int64 {
	return t.AmountMinor - t.PlatformFeeMinor
}

// CreatorProfile carries the payout destination, the irreversible elite
// founding override and the denormalized running-earnings counter.
type CreatorProfile struct {
	CreatorID           string    `db:"creator_id"`
	ProviderAccountID   string    `db:"provider_account_id"`
	EliteFoundingLocked bool      `db:"elite_founding_locked"`
	LockedFeePercentage int64     `db:"locked_fee_percentage"`
	EarnedTotalMinor    int64     `db:"earned_total_minor"`
	CreatedAt           time.Time `db:"created_at"`
}

type PayoutStatus string

const (
	PayoutPending   PayoutStatus = "pending"
	PayoutInTransit PayoutStatus = "in_transit"
	PayoutPaid      PayoutStatus = "paid"
	PayoutFailed    PayoutStatus = "failed"
	PayoutCancelled PayoutStatus = "cancelled"
)

// Committed reports whether the payout still holds creator funds, i.e.
// its amount must stay excluded from the available balance.
func (s PayoutStatus) Committed() bool {
	return s == PayoutPending || s == PayoutInTransit || s == PayoutPaid
}

// Terminal payout statuses never change again.
func (s PayoutStatus) Terminal() bool {
	return s == PayoutPaid || s == PayoutFailed || s == PayoutCancelled
}

// Payout exists only for transfers the provider accepted. A failed transfer
// call produces a FailoverRecord, never a Payout row.
type Payout struct {
	ID                 string       `db:"id"`
	CreatorID          string       `db:"creator_id"`
	AmountMinor        int64        `db:"amount_minor"`
	ExternalTransferID string       `db:"external_transfer_id"`
	Status             PayoutStatus `db:"status"`
	ArrivalDate        *time.Time   `db:"arrival_date"`
	FailureReason      string       `db:"failure_reason"`
	CreatedAt          time.Time    `db:"created_at"`
}

// OperationKind tags a FailoverRecord with the retry handler it needs.
// The set is closed; the failover queue refuses to start without a handler
// for every kind.
type OperationKind string

const (
	OperationPayment           OperationKind = "payment"
	OperationPayout            OperationKind = "payout"
	OperationTierRecalculation OperationKind = "tier_recalculation"
)

// OperationKinds lists every valid kind, in a fixed order.
func OperationKinds() []OperationKind {
	return []OperationKind{OperationPayment, OperationPayout, OperationTierRecalculation}
}

type FailoverStatus string

const (
	FailoverPending FailoverStatus = "pending"
	FailoverSuccess FailoverStatus = "success"
	FailoverFailed  FailoverStatus = "failed"
)

const DefaultMaxRetries = 5

// FailoverRecord is a durable note that an operation against the provider
// failed and must be retried, decoupled from the original caller.
type FailoverRecord struct {
	ID            string         `db:"id"`
	OperationKind OperationKind  `db:"operation_kind"`
	Payload       []byte         `db:"payload"`
	Status        FailoverStatus `db:"status"`
	RetryCount    int            `db:"retry_count"`
	MaxRetries    int            `db:"max_retries"`
	CreatedAt     time.Time      `db:"created_at"`
	ResolvedAt    *time.Time     `db:"resolved_at"`
}

// Exhausted reports whether automatic draining gave up on the record.
// An exhausted record only moves again through the manual retry path.
func (r *FailoverRecord) Exhausted() bool {
	return r.Status == FailoverFailed && r.RetryCount >= r.MaxRetries
}

type LogLevel string

const (
	LevelDebug    LogLevel = "DEBUG"
	LevelInfo     LogLevel = "INFO"
	LevelWarn     LogLevel = "WARN"
	LevelError    LogLevel = "ERROR"
	LevelCritical LogLevel = "CRITICAL"
)

// AuditFilter narrows an audit log query. Zero values mean "any".
type AuditFilter struct {
	Level     LogLevel
	Operation string
	CreatorID string
	Status    string
	From      time.Time
	To        time.Time
	Limit     int
}

// AuditSummary aggregates the operation log for operators.
type AuditSummary struct {
	ByLevel     map[LogLevel]int64 `json:"by_level"`
	ByStatus    map[string]int64   `json:"by_status"`
	Errors24h   int64              `json:"errors_24h"`
	Critical24h int64              `json:"critical_24h"`
}

// AuditEntry is one row of the bounded operation log. The log is
// diagnostic only and never authoritative for financial state.
type AuditEntry struct {
	ID            int64             `db:"id"`
	Timestamp     time.Time         `db:"ts"`
	Level         LogLevel          `db:"level"`
	Operation     string            `db:"operation"`
	CreatorID     string            `db:"creator_id"`
	TransactionID string            `db:"transaction_id"`
	PayoutID      string            `db:"payout_id"`
	AmountMinor   int64             `db:"amount_minor"`
	Status        string            `db:"status"`
	Message       string            `db:"message"`
	Metadata      map[string]string `db:"metadata"`
}
