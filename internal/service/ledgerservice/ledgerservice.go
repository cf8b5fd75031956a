package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fanvault/payments/internal/domain"
	"github.com/fanvault/payments/internal/failover"
	"github.com/fanvault/payments/internal/pg"
	"github.com/fanvault/payments/internal/provider"
	"github.com/fanvault/payments/internal/split"
)

type TransactionRepo interface {
	InsertOnce(ctx context.Context, transaction *domain.Transaction) (bool, error)
	FindByConfirmationID(ctx context.Context, confirmationID string) (*domain.Transaction, error)
	EarnedTotal(ctx context.Context, creatorID string) (int64, error)
	EarnedBetween(ctx context.Context, creatorID string, from, to time.Time) (int64, error)
}

type ProfileRepo interface {
	AddEarnings(ctx context.Context, creatorID string, delta int64) error
}

type PayoutRepo interface {
	CommittedTotal(ctx context.Context, creatorID string) (int64, error)
}

type ProviderAPI interface {
	GetConfirmation(ctx context.Context, id string) (*provider.PaymentConfirmation, error)
}

type FailoverSink interface {
	Enqueue(ctx context.Context, kind domain.OperationKind, payload any) (*domain.FailoverRecord, error)
}

type Auditor interface {
	Record(ctx context.Context, entry domain.AuditEntry)
}

var (
	// ErrVerificationFailed means the provider confirmation did not match
	// the reported payment. Nothing is written in that case.
	ErrVerificationFailed = errors.New("payment confirmation verification failed")
	// ErrQueuedForRetry tells the caller the provider was unreachable and
	// the recording was captured by the failover queue instead.
	ErrQueuedForRetry = errors.New("payment recording queued for retry")
)

type Service struct {
	transactionRepo TransactionRepo
	profileRepo     ProfileRepo
	payoutRepo      PayoutRepo
	provider        ProviderAPI
	failover        FailoverSink
	txManager       pg.TXManager
	audit           Auditor
}

func New(
	transactionRepo TransactionRepo,
	profileRepo ProfileRepo,
	payoutRepo PayoutRepo,
	providerAPI ProviderAPI,
	failoverSink FailoverSink,
	txManager pg.TXManager,
	audit Auditor,
) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		profileRepo:     profileRepo,
		payoutRepo:      payoutRepo,
		provider:        providerAPI,
		failover:        failoverSink,
		txManager:       txManager,
		audit:           audit,
	}
}

// Record verifies the provider confirmation and writes exactly one
// immutable completed transaction. Redelivery of the same confirmation id
// returns the original row without a second balance increment.
func (s *Service) Record(ctx context.Context, payerID, creatorID string, amount int64, category domain.Category, confirmationID string) (*domain.Transaction, error) {
	confirmation, err := s.provider.GetConfirmation(ctx, confirmationID)
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			s.auditVerificationFailure(ctx, creatorID, confirmationID, "confirmation not found at provider")
			return nil, fmt.Errorf("%w: confirmation %s not found", ErrVerificationFailed, confirmationID)
		}
		zap.L().Error("failed to fetch payment confirmation", zap.String("confirmationID", confirmationID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch confirmation %s: %w", confirmationID, err)
	}

	if confirmation.Status != provider.ConfirmationSucceeded {
		s.auditVerificationFailure(ctx, creatorID, confirmationID, "confirmation status is "+confirmation.Status)
		return nil, fmt.Errorf("%w: status %s", ErrVerificationFailed, confirmation.Status)
	}
	if confirmation.Amount != amount {
		s.auditVerificationFailure(ctx, creatorID, confirmationID,
			fmt.Sprintf("amount mismatch: reported %d, confirmed %d", amount, confirmation.Amount))
		return nil, fmt.Errorf("%w: amount mismatch", ErrVerificationFailed)
	}

	creatorShare, platformFee, err := split.Split(amount, category)
	if err != nil {
		return nil, err
	}

	transaction := &domain.Transaction{
		ID:                     uuid.NewString(),
		PayerID:                payerID,
		CreatorID:              creatorID,
		AmountMinor:            amount,
		Category:               category,
		PlatformFeeMinor:       platformFee,
		ProviderConfirmationID: confirmationID,
		Status:                 domain.TransactionCompleted,
		CreatedAt:              time.Now(),
	}

	var created bool
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		created, err = s.transactionRepo.InsertOnce(ctx, transaction)
		if err != nil {
			return err
		}
		if !created {
			return nil
		}
		return s.profileRepo.AddEarnings(ctx, creatorID, creatorShare)
	})
	if err != nil {
		zap.L().Error("failed to record transaction", zap.String("confirmationID", confirmationID), zap.Error(err))
		return nil, err
	}

	if !created {
		existing, err := s.transactionRepo.FindByConfirmationID(ctx, confirmationID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("duplicate confirmation %s vanished", confirmationID)
		}
		s.audit.Record(ctx, domain.AuditEntry{
			Level:         domain.LevelInfo,
			Operation:     "record_payment",
			CreatorID:     creatorID,
			TransactionID: existing.ID,
			AmountMinor:   amount,
			Status:        "duplicate",
			Message:       "duplicate confirmation delivery ignored",
			Metadata:      map[string]string{"confirmation_id": confirmationID},
		})
		return existing, nil
	}

	s.audit.Record(ctx, domain.AuditEntry{
		Level:         domain.LevelInfo,
		Operation:     "record_payment",
		CreatorID:     creatorID,
		TransactionID: transaction.ID,
		AmountMinor:   amount,
		Status:        "completed",
		Message:       "payment recorded",
		Metadata:      map[string]string{"confirmation_id": confirmationID, "category": string(category)},
	})
	return transaction, nil
}

// RecordOrQueue is the webhook-facing wrapper: a provider outage does not
// drop the payment, it lands in the failover queue for the drain job.
func (s *Service) RecordOrQueue(ctx context.Context, payerID, creatorID string, amount int64, category domain.Category, confirmationID string) (*domain.Transaction, error) {
	transaction, err := s.Record(ctx, payerID, creatorID, amount, category, confirmationID)
	if err == nil || !errors.Is(err, provider.ErrUnavailable) {
		return transaction, err
	}

	if _, enqueueErr := s.failover.Enqueue(ctx, domain.OperationPayment, failover.PaymentPayload{
		PayerID:        payerID,
		CreatorID:      creatorID,
		AmountMinor:    amount,
		Category:       category,
		ConfirmationID: confirmationID,
	}); enqueueErr != nil {
		zap.L().Error("failed to queue payment for retry", zap.Error(enqueueErr))
		return nil, err
	}

	return nil, fmt.Errorf("%w: %w", ErrQueuedForRetry, err)
}

// BalanceOf computes the available balance by aggregation: completed
// creator shares minus payouts that already committed funds.
func (s *Service) BalanceOf(ctx context.Context, creatorID string) (int64, error) {
	earned, err := s.transactionRepo.EarnedTotal(ctx, creatorID)
	if err != nil {
		return 0, err
	}
	committed, err := s.payoutRepo.CommittedTotal(ctx, creatorID)
	if err != nil {
		return 0, err
	}
	return earned - committed, nil
}

// MonthlyEarnings sums the creator shares for the current calendar month.
func (s *Service) MonthlyEarnings(ctx context.Context, creatorID string) (int64, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)
	return s.transactionRepo.EarnedBetween(ctx, creatorID, monthStart, nextMonth)
}

func (s *Service) auditVerificationFailure(ctx context.Context, creatorID, confirmationID, reason string) {
	s.audit.Record(ctx, domain.AuditEntry{
		Level:     domain.LevelWarn,
		Operation: "record_payment",
		CreatorID: creatorID,
		Status:    "rejected",
		Message:   "confirmation verification failed: " + reason,
		Metadata:  map[string]string{"confirmation_id": confirmationID},
	})
}
