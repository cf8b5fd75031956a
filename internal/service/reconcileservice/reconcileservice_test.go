package reconcileservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/fanvault/payments/internal/domain"
	"github.com/fanvault/payments/internal/provider"
)

type mocks struct {
	transactions *MockTransactionRepo
	payouts      *MockPayoutRepo
	provider     *MockProviderAPI
	audit        *MockAuditor
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		transactions: NewMockTransactionRepo(ctrl),
		payouts:      NewMockPayoutRepo(ctrl),
		provider:     NewMockProviderAPI(ctrl),
		audit:        NewMockAuditor(ctrl),
	}
	service := New(m.transactions, m.payouts, m.provider, m.audit)
	defer ctrl.Finish()
	return service, m
}

func TestSelfAudit(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Clean ledger produces totals and no discrepancies", func(t *testing.T) {
		m.transactions.EXPECT().ListByStatus(gomock.Any(), domain.TransactionCompleted).Return([]domain.Transaction{
			{ID: "t-1", AmountMinor: 999, PlatformFeeMinor: 200},
			{ID: "t-2", AmountMinor: 1000, PlatformFeeMinor: 100},
		}, nil)
		m.audit.EXPECT().Record(gomock.Any(), gomock.Any())

		report, err := service.SelfAudit(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, report.Discrepancies)
		assert.Equal(t, int64(1999), report.TotalCollected)
		assert.Equal(t, int64(1699), report.TotalCreatorEarnings)
		assert.Equal(t, int64(300), report.TotalPlatformEarnings)
		assert.Equal(t, report.TotalCollected, report.TotalCreatorEarnings+report.TotalPlatformEarnings)
	})

	t.Run("Fee above amount is flagged", func(t *testing.T) {
		m.transactions.EXPECT().ListByStatus(gomock.Any(), domain.TransactionCompleted).Return([]domain.Transaction{
			{ID: "t-bad", AmountMinor: 100, PlatformFeeMinor: 150},
		}, nil)
		m.audit.EXPECT().Record(gomock.Any(), gomock.Any())

		report, err := service.SelfAudit(context.Background())
		assert.NoError(t, err)
		assert.NotEmpty(t, report.Discrepancies)
	})

	t.Run("Repo failure propagates", func(t *testing.T) {
		m.transactions.EXPECT().ListByStatus(gomock.Any(), domain.TransactionCompleted).
			Return(nil, errors.New("db down"))

		_, err := service.SelfAudit(context.Background())
		assert.Error(t, err)
	})
}

func TestAuditPayouts(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Matching payouts are counted", func(t *testing.T) {
		m.payouts.EXPECT().ListAll(gomock.Any()).Return([]domain.Payout{
			{ID: "p-1", AmountMinor: 5000, ExternalTransferID: "tr-1", Status: domain.PayoutPaid},
		}, nil)
		m.provider.EXPECT().GetTransfer(gomock.Any(), "tr-1").
			Return(&provider.Transfer{ID: "tr-1", Amount: 5000, Currency: "usd", Status: provider.TransferPaid}, nil)
		m.audit.EXPECT().Record(gomock.Any(), gomock.Any())

		report, err := service.AuditPayouts(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 1, report.Checked)
		assert.Equal(t, 1, report.Matched)
		assert.Empty(t, report.Discrepancies)
	})

	t.Run("Amount and status mismatches are discrepancies", func(t *testing.T) {
		m.payouts.EXPECT().ListAll(gomock.Any()).Return([]domain.Payout{
			{ID: "p-1", AmountMinor: 5000, ExternalTransferID: "tr-1", Status: domain.PayoutPaid},
		}, nil)
		m.provider.EXPECT().GetTransfer(gomock.Any(), "tr-1").
			Return(&provider.Transfer{ID: "tr-1", Amount: 4000, Currency: "usd", Status: provider.TransferFailed}, nil)
		m.audit.EXPECT().Record(gomock.Any(), gomock.Any())

		report, err := service.AuditPayouts(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 0, report.Matched)
		assert.Len(t, report.Discrepancies, 2)
	})

	t.Run("Unreachable transfer is itself a discrepancy and the audit continues", func(t *testing.T) {
		m.payouts.EXPECT().ListAll(gomock.Any()).Return([]domain.Payout{
			{ID: "p-1", AmountMinor: 5000, ExternalTransferID: "tr-1", Status: domain.PayoutPaid},
			{ID: "p-2", AmountMinor: 1000, ExternalTransferID: "tr-2", Status: domain.PayoutPending},
		}, nil)
		m.provider.EXPECT().GetTransfer(gomock.Any(), "tr-1").Return(nil, provider.ErrUnavailable)
		m.provider.EXPECT().GetTransfer(gomock.Any(), "tr-2").
			Return(&provider.Transfer{ID: "tr-2", Amount: 1000, Currency: "usd", Status: provider.TransferPending}, nil)
		m.audit.EXPECT().Record(gomock.Any(), gomock.Any())

		report, err := service.AuditPayouts(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 2, report.Checked)
		assert.Equal(t, 1, report.Matched)
		assert.Len(t, report.Discrepancies, 1)
	})
}
