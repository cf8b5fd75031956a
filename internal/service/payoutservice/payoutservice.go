package payoutservice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fanvault/payments/internal/domain"
	"github.com/fanvault/payments/internal/failover"
	"github.com/fanvault/payments/internal/provider"
)

const (
	payoutCurrency  = "usd"
	batchParallel   = 4
	defaultHistoryN = 50
)

type PayoutRepo interface {
	Insert(ctx context.Context, payout *domain.Payout) (*domain.Payout, error)
	FindByTransferID(ctx context.Context, transferID string) (*domain.Payout, error)
	UpdateStatus(ctx context.Context, payout *domain.Payout) (*domain.Payout, error)
	ListByCreator(ctx context.Context, creatorID string, limit int) ([]domain.Payout, error)
}

type ProfileRepo interface {
	Get(ctx context.Context, creatorID string) (*domain.CreatorProfile, error)
	SetPayoutAccount(ctx context.Context, creatorID, providerAccountID string) error
	ListCreatorIDs(ctx context.Context) ([]string, error)
}

type Balances interface {
	BalanceOf(ctx context.Context, creatorID string) (int64, error)
}

type ProviderAPI interface {
	CreateTransfer(ctx context.Context, req provider.TransferRequest) (*provider.Transfer, error)
	GetAccount(ctx context.Context, id string) (*provider.ConnectedAccount, error)
}

type FailoverSink interface {
	Enqueue(ctx context.Context, kind domain.OperationKind, payload any) (*domain.FailoverRecord, error)
}

type Auditor interface {
	Record(ctx context.Context, entry domain.AuditEntry)
}

var (
	ErrInvalidAmount       = errors.New("payout amount must be positive")
	ErrNotConnected        = errors.New("creator has no payout destination")
	ErrAccountInactive     = errors.New("creator payout account is not active")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrTransferFailed      = errors.New("provider transfer failed")
	ErrUnknownTransfer     = errors.New("unknown transfer")
	ErrInvalidTransition   = errors.New("invalid payout status transition")
)

type Service struct {
	payoutRepo  PayoutRepo
	profileRepo ProfileRepo
	balances    Balances
	provider    ProviderAPI
	failover    FailoverSink
	audit       Auditor
}

func New(
	payoutRepo PayoutRepo,
	profileRepo ProfileRepo,
	balances Balances,
	providerAPI ProviderAPI,
	failoverSink FailoverSink,
	audit Auditor,
) *Service {
	return &Service{
		payoutRepo:  payoutRepo,
		profileRepo: profileRepo,
		balances:    balances,
		provider:    providerAPI,
		failover:    failoverSink,
		audit:       audit,
	}
}

// Initiate settles part of a creator's balance via an external transfer.
// A provider failure is captured by the failover queue before the error is
// surfaced; no Payout row exists unless the provider accepted the transfer.
func (s *Service) Initiate(ctx context.Context, creatorID string, amount int64) (*domain.Payout, error) {
	payout, err := s.execute(ctx, creatorID, amount)
	if err != nil && errors.Is(err, ErrTransferFailed) {
		if _, enqueueErr := s.failover.Enqueue(ctx, domain.OperationPayout, failover.PayoutPayload{
			CreatorID:   creatorID,
			AmountMinor: amount,
		}); enqueueErr != nil {
			zap.L().Error("failed to queue payout for retry", zap.Error(enqueueErr))
		}
	}
	return payout, err
}

// execute runs the payout without failover capture. The drain job retries
// through this path so a repeated failure cannot enqueue itself twice.
func (s *Service) execute(ctx context.Context, creatorID string, amount int64) (*domain.Payout, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	profile, err := s.profileRepo.Get(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.ProviderAccountID == "" {
		return nil, ErrNotConnected
	}

	account, err := s.provider.GetAccount(ctx, profile.ProviderAccountID)
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			return nil, ErrNotConnected
		}
		return nil, fmt.Errorf("failed to check payout account: %w", err)
	}
	if account.Status != provider.AccountActive {
		return nil, ErrAccountInactive
	}

	balance, err := s.balances.BalanceOf(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if amount > balance {
		return nil, ErrInsufficientBalance
	}

	transfer, err := s.provider.CreateTransfer(ctx, provider.TransferRequest{
		Amount:         amount,
		Currency:       payoutCurrency,
		Destination:    profile.ProviderAccountID,
		IdempotencyKey: uuid.NewString(),
		Metadata:       map[string]string{"creator_id": creatorID},
	})
	if err != nil {
		zap.L().Error("transfer creation failed",
			zap.String("creatorID", creatorID),
			zap.Int64("amount", amount),
			zap.Error(err),
		)
		s.audit.Record(ctx, domain.AuditEntry{
			Level:       domain.LevelError,
			Operation:   "initiate_payout",
			CreatorID:   creatorID,
			AmountMinor: amount,
			Status:      "failed",
			Message:     "provider transfer creation failed: " + err.Error(),
		})
		return nil, fmt.Errorf("%w: %w", ErrTransferFailed, err)
	}

	payout := &domain.Payout{
		ID:                 uuid.NewString(),
		CreatorID:          creatorID,
		AmountMinor:        amount,
		ExternalTransferID: transfer.ID,
		Status:             domain.PayoutPending,
		CreatedAt:          time.Now(),
	}
	if _, err := s.payoutRepo.Insert(ctx, payout); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		Level:       domain.LevelInfo,
		Operation:   "initiate_payout",
		CreatorID:   creatorID,
		PayoutID:    payout.ID,
		AmountMinor: amount,
		Status:      "pending",
		Message:     "payout initiated, transfer " + transfer.ID,
	})
	return payout, nil
}

// Retry is the failover drain entry point for payout records.
func (s *Service) Retry(ctx context.Context, creatorID string, amount int64) error {
	_, err := s.execute(ctx, creatorID, amount)
	// Preconditions that can no longer hold (balance already drained by a
	// manual payout, account disconnected) end the retry loop as resolved
	// work rather than burning attempts forever.
	if errors.Is(err, ErrInsufficientBalance) || errors.Is(err, ErrInvalidAmount) {
		zap.L().Warn("payout retry dropped, precondition no longer holds",
			zap.String("creatorID", creatorID), zap.Error(err))
		return nil
	}
	return err
}

type BatchResult struct {
	SuccessfulPayouts int   `json:"successful_payouts"`
	FailedPayouts     int   `json:"failed_payouts"`
	TotalAmount       int64 `json:"total_amount"`
}

// BatchProcess sweeps every creator at or above the threshold. One
// creator's failure never halts the batch; transfer failures land in the
// failover queue via Initiate.
func (s *Service) BatchProcess(ctx context.Context, minThreshold int64) (*BatchResult, error) {
	creatorIDs, err := s.profileRepo.ListCreatorIDs(ctx)
	if err != nil {
		return nil, err
	}

	result := &BatchResult{}
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(batchParallel)
	for _, creatorID := range creatorIDs {
		creatorID := creatorID
		g.Go(func() error {
			balance, err := s.balances.BalanceOf(ctx, creatorID)
			if err != nil {
				zap.L().Error("failed to compute balance in batch payout",
					zap.String("creatorID", creatorID), zap.Error(err))
				mu.Lock()
				result.FailedPayouts++
				mu.Unlock()
				return nil
			}
			if balance < minThreshold {
				return nil
			}

			payout, err := s.Initiate(ctx, creatorID, balance)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.FailedPayouts++
				return nil
			}
			result.SuccessfulPayouts++
			result.TotalAmount += payout.AmountMinor
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		Level:       domain.LevelInfo,
		Operation:   "batch_payout",
		AmountMinor: result.TotalAmount,
		Status:      "completed",
		Message: fmt.Sprintf("batch payout finished: %d succeeded, %d failed",
			result.SuccessfulPayouts, result.FailedPayouts),
	})
	return result, nil
}

// ApplyTransferEvent applies a provider lifecycle event to the matching
// payout. Transitions are one-way; a terminal payout never changes again
// and a failed payout is never retried automatically.
func (s *Service) ApplyTransferEvent(ctx context.Context, transferID string, status domain.PayoutStatus, arrivalDate *time.Time, failureReason string) (*domain.Payout, error) {
	payout, err := s.payoutRepo.FindByTransferID(ctx, transferID)
	if err != nil {
		return nil, err
	}
	if payout == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTransfer, transferID)
	}

	if payout.Status == status {
		return payout, nil
	}
	if !transitionAllowed(payout.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, payout.Status, status)
	}

	payout.Status = status
	switch status {
	case domain.PayoutPaid:
		payout.ArrivalDate = arrivalDate
	case domain.PayoutFailed:
		payout.FailureReason = failureReason
	}

	updated, err := s.payoutRepo.UpdateStatus(ctx, payout)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Lost a race against another webhook delivery that already put
		// the row into a terminal state.
		return nil, fmt.Errorf("%w: payout already terminal", ErrInvalidTransition)
	}

	level := domain.LevelInfo
	if status == domain.PayoutFailed {
		level = domain.LevelError
	}
	s.audit.Record(ctx, domain.AuditEntry{
		Level:       level,
		Operation:   "transfer_event",
		CreatorID:   updated.CreatorID,
		PayoutID:    updated.ID,
		AmountMinor: updated.AmountMinor,
		Status:      string(status),
		Message:     "transfer " + transferID + " moved to " + string(status),
	})
	return updated, nil
}

func (s *Service) History(ctx context.Context, creatorID string, limit int) ([]domain.Payout, error) {
	if limit <= 0 {
		limit = defaultHistoryN
	}
	return s.payoutRepo.ListByCreator(ctx, creatorID, limit)
}

// RegisterPayoutAccount stores the creator's provider account id, set
// during the platform's onboarding callback.
func (s *Service) RegisterPayoutAccount(ctx context.Context, creatorID, providerAccountID string) error {
	if err := s.profileRepo.SetPayoutAccount(ctx, creatorID, providerAccountID); err != nil {
		return err
	}
	s.audit.Record(ctx, domain.AuditEntry{
		Level:     domain.LevelInfo,
		Operation: "register_payout_account",
		CreatorID: creatorID,
		Status:    "connected",
		Message:   "payout destination registered",
	})
	return nil
}

func transitionAllowed(from, to domain.PayoutStatus) bool {
	if from.Terminal() {
		return false
	}
	switch from {
	case domain.PayoutPending:
		return to == domain.PayoutInTransit || to == domain.PayoutPaid ||
			to == domain.PayoutFailed || to == domain.PayoutCancelled
	case domain.PayoutInTransit:
		return to == domain.PayoutPaid || to == domain.PayoutFailed
	default:
		return false
	}
}
