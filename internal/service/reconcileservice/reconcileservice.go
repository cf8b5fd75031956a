package reconcileservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fanvault/payments/internal/domain"
	"github.com/fanvault/payments/internal/provider"
)

const payoutCurrency = "usd"

type TransactionRepo interface {
	ListByStatus(ctx context.Context, status domain.TransactionStatus) ([]domain.Transaction, error)
}

type PayoutRepo interface {
	ListAll(ctx context.Context) ([]domain.Payout, error)
}

type ProviderAPI interface {
	GetTransfer(ctx context.Context, id string) (*provider.Transfer, error)
}

type Auditor interface {
	Record(ctx context.Context, entry domain.AuditEntry)
}

// Report is the ledger self-audit output. Discrepancies should never fire:
// the write path already enforces conservation, this is defense in depth.
type Report struct {
	GeneratedAt           time.Time `json:"generated_at"`
	TotalCollected        int64     `json:"total_collected"`
	TotalCreatorEarnings  int64     `json:"total_creator_earnings"`
	TotalPlatformEarnings int64     `json:"total_platform_earnings"`
	Discrepancies         []string  `json:"discrepancies"`
}

// PayoutReport cross-checks local payout rows against provider transfers.
type PayoutReport struct {
	GeneratedAt   time.Time `json:"generated_at"`
	Checked       int       `json:"checked"`
	Matched       int       `json:"matched"`
	Discrepancies []string  `json:"discrepancies"`
}

type Service struct {
	transactionRepo TransactionRepo
	payoutRepo      PayoutRepo
	provider        ProviderAPI
	audit           Auditor
}

func New(transactionRepo TransactionRepo, payoutRepo PayoutRepo, providerAPI ProviderAPI, audit Auditor) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		payoutRepo:      payoutRepo,
		provider:        providerAPI,
		audit:           audit,
	}
}

// SelfAudit re-derives creator earnings for every completed transaction and
// confirms conservation: fee + earnings == amount with both non-negative.
func (s *Service) SelfAudit(ctx context.Context) (*Report, error) {
	transactions, err := s.transactionRepo.ListByStatus(ctx, domain.TransactionCompleted)
	if err != nil {
		return nil, err
	}

	report := &Report{GeneratedAt: time.Now()}
	for _, transaction := range transactions {
		earnings := transaction.CreatorEarnings()

		if transaction.AmountMinor < 0 {
			report.Discrepancies = append(report.Discrepancies,
				fmt.Sprintf("transaction %s: negative amount %d", transaction.ID, transaction.AmountMinor))
		}
		if transaction.PlatformFeeMinor < 0 {
			report.Discrepancies = append(report.Discrepancies,
				fmt.Sprintf("transaction %s: negative platform fee %d", transaction.ID, transaction.PlatformFeeMinor))
		}
		if earnings < 0 {
			report.Discrepancies = append(report.Discrepancies,
				fmt.Sprintf("transaction %s: platform fee %d exceeds amount %d",
					transaction.ID, transaction.PlatformFeeMinor, transaction.AmountMinor))
		}
		if earnings+transaction.PlatformFeeMinor != transaction.AmountMinor {
			report.Discrepancies = append(report.Discrepancies,
				fmt.Sprintf("transaction %s: earnings %d + fee %d != amount %d",
					transaction.ID, earnings, transaction.PlatformFeeMinor, transaction.AmountMinor))
		}

		report.TotalCollected += transaction.AmountMinor
		report.TotalCreatorEarnings += earnings
		report.TotalPlatformEarnings += transaction.PlatformFeeMinor
	}

	s.auditReport(ctx, "self_audit", len(report.Discrepancies),
		fmt.Sprintf("self audit over %d transactions found %d discrepancies",
			len(transactions), len(report.Discrepancies)))
	return report, nil
}

// AuditPayouts compares every payout row with the provider's transfer
// record. An unreachable transfer is itself a discrepancy; the audit keeps
// going for the remaining rows.
func (s *Service) AuditPayouts(ctx context.Context) (*PayoutReport, error) {
	payouts, err := s.payoutRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	report := &PayoutReport{GeneratedAt: time.Now()}
	for _, payout := range payouts {
		report.Checked++

		transfer, err := s.provider.GetTransfer(ctx, payout.ExternalTransferID)
		if err != nil {
			report.Discrepancies = append(report.Discrepancies,
				fmt.Sprintf("payout %s: provider transfer %s unreachable: %v",
					payout.ID, payout.ExternalTransferID, err))
			continue
		}

		mismatched := false
		if transfer.Amount != payout.AmountMinor {
			mismatched = true
			report.Discrepancies = append(report.Discrepancies,
				fmt.Sprintf("payout %s: amount %d disagrees with provider amount %d",
					payout.ID, payout.AmountMinor, transfer.Amount))
		}
		if transfer.Currency != payoutCurrency {
			mismatched = true
			report.Discrepancies = append(report.Discrepancies,
				fmt.Sprintf("payout %s: provider currency %q, expected %q",
					payout.ID, transfer.Currency, payoutCurrency))
		}
		if payout.Status == domain.PayoutPaid && transfer.Status == provider.TransferFailed {
			mismatched = true
			report.Discrepancies = append(report.Discrepancies,
				fmt.Sprintf("payout %s: marked paid locally but failed at provider", payout.ID))
		}
		if !mismatched {
			report.Matched++
		}
	}

	s.auditReport(ctx, "payout_audit", len(report.Discrepancies),
		fmt.Sprintf("payout audit checked %d payouts, %d matched, %d discrepancies",
			report.Checked, report.Matched, len(report.Discrepancies)))
	return report, nil
}

func (s *Service) auditReport(ctx context.Context, operation string, discrepancies int, message string) {
	level := domain.LevelInfo
	status := "clean"
	if discrepancies > 0 {
		level = domain.LevelWarn
		status = "discrepancies"
		zap.L().Warn(message)
	}
	s.audit.Record(ctx, domain.AuditEntry{
		Level:     level,
		Operation: operation,
		Status:    status,
		Message:   message,
	})
}
