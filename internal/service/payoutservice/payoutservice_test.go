package payoutservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/fanvault/payments/internal/domain"
	"github.com/fanvault/payments/internal/provider"
)

type mocks struct {
	payouts  *MockPayoutRepo
	profiles *MockProfileRepo
	balances *MockBalances
	provider *MockProviderAPI
	failover *MockFailoverSink
	audit    *MockAuditor
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		payouts:  NewMockPayoutRepo(ctrl),
		profiles: NewMockProfileRepo(ctrl),
		balances: NewMockBalances(ctrl),
		provider: NewMockProviderAPI(ctrl),
		failover: NewMockFailoverSink(ctrl),
		audit:    NewMockAuditor(ctrl),
	}
	service := New(m.payouts, m.profiles, m.balances, m.provider, m.failover, m.audit)
	defer ctrl.Finish()
	return service, m
}

func connectedProfile(creatorID string) *domain.CreatorProfile {
	return &domain.CreatorProfile{CreatorID: creatorID, ProviderAccountID: "acct-1"}
}

func activeAccount() *provider.ConnectedAccount {
	return &provider.ConnectedAccount{ID: "acct-1", Status: provider.AccountActive}
}

func TestInitiate(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name        string
		amount      int64
		prepareMock func()
		wantErr     error
	}{
		{
			name:        "Zero amount is rejected",
			amount:      0,
			prepareMock: func() {},
			wantErr:     ErrInvalidAmount,
		},
		{
			name:        "Negative amount is rejected",
			amount:      -100,
			prepareMock: func() {},
			wantErr:     ErrInvalidAmount,
		},
		{
			name:   "Creator without payout destination",
			amount: 1000,
			prepareMock: func() {
				m.profiles.EXPECT().Get(gomock.Any(), "creator-1").Return(&domain.CreatorProfile{CreatorID: "creator-1"}, nil)
			},
			wantErr: ErrNotConnected,
		},
		{
			name:   "Inactive payout account",
			amount: 1000,
			prepareMock: func() {
				m.profiles.EXPECT().Get(gomock.Any(), "creator-1").Return(connectedProfile("creator-1"), nil)
				m.provider.EXPECT().GetAccount(gomock.Any(), "acct-1").
					Return(&provider.ConnectedAccount{ID: "acct-1", Status: "restricted"}, nil)
			},
			wantErr: ErrAccountInactive,
		},
		{
			name:   "Amount above available balance",
			amount: 5000,
			prepareMock: func() {
				m.profiles.EXPECT().Get(gomock.Any(), "creator-1").Return(connectedProfile("creator-1"), nil)
				m.provider.EXPECT().GetAccount(gomock.Any(), "acct-1").Return(activeAccount(), nil)
				m.balances.EXPECT().BalanceOf(gomock.Any(), "creator-1").Return(int64(4999), nil)
			},
			wantErr: ErrInsufficientBalance,
		},
		{
			name:   "Successful payout commits exactly the requested amount",
			amount: 5000,
			prepareMock: func() {
				m.profiles.EXPECT().Get(gomock.Any(), "creator-1").Return(connectedProfile("creator-1"), nil)
				m.provider.EXPECT().GetAccount(gomock.Any(), "acct-1").Return(activeAccount(), nil)
				m.balances.EXPECT().BalanceOf(gomock.Any(), "creator-1").Return(int64(5000), nil)
				m.provider.EXPECT().CreateTransfer(gomock.Any(), gomock.Any()).
					Return(&provider.Transfer{ID: "tr-1", Amount: 5000, Currency: "usd"}, nil)
				m.payouts.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Payout) (*domain.Payout, error) {
						return p, nil
					})
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			payout, err := service.Initiate(context.Background(), "creator-1", tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, payout)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.amount, payout.AmountMinor)
			assert.Equal(t, "tr-1", payout.ExternalTransferID)
			assert.Equal(t, domain.PayoutPending, payout.Status)
		})
	}
}

func TestInitiateTransferFailureQueuesRetry(t *testing.T) {
	service, m := NewMock(t)

	m.profiles.EXPECT().Get(gomock.Any(), "creator-1").Return(connectedProfile("creator-1"), nil)
	m.provider.EXPECT().GetAccount(gomock.Any(), "acct-1").Return(activeAccount(), nil)
	m.balances.EXPECT().BalanceOf(gomock.Any(), "creator-1").Return(int64(5000), nil)
	m.provider.EXPECT().CreateTransfer(gomock.Any(), gomock.Any()).
		Return(nil, provider.ErrUnavailable)
	m.audit.EXPECT().Record(gomock.Any(), gomock.Any())
	m.failover.EXPECT().Enqueue(gomock.Any(), domain.OperationPayout, gomock.Any()).
		Return(&domain.FailoverRecord{ID: "rec-1"}, nil)

	payout, err := service.Initiate(context.Background(), "creator-1", 5000)
	assert.ErrorIs(t, err, ErrTransferFailed)
	assert.Nil(t, payout)
}

func TestRetryDropsStalePreconditions(t *testing.T) {
	service, m := NewMock(t)

	// Balance drained since the failure was captured: the retry resolves
	// without a payout and without another failover record.
	m.profiles.EXPECT().Get(gomock.Any(), "creator-1").Return(connectedProfile("creator-1"), nil)
	m.provider.EXPECT().GetAccount(gomock.Any(), "acct-1").Return(activeAccount(), nil)
	m.balances.EXPECT().BalanceOf(gomock.Any(), "creator-1").Return(int64(100), nil)

	err := service.Retry(context.Background(), "creator-1", 5000)
	assert.NoError(t, err)
}

func TestBatchProcess(t *testing.T) {
	service, m := NewMock(t)

	m.profiles.EXPECT().ListCreatorIDs(gomock.Any()).Return([]string{"a", "b", "c"}, nil)

	// a: above threshold, succeeds.
	m.balances.EXPECT().BalanceOf(gomock.Any(), "a").Return(int64(20_000), nil).Times(2)
	m.profiles.EXPECT().Get(gomock.Any(), "a").Return(&domain.CreatorProfile{CreatorID: "a", ProviderAccountID: "acct-a"}, nil)
	m.provider.EXPECT().GetAccount(gomock.Any(), "acct-a").Return(activeAccount(), nil)
	m.provider.EXPECT().CreateTransfer(gomock.Any(), gomock.Any()).
		Return(&provider.Transfer{ID: "tr-a", Amount: 20_000, Currency: "usd"}, nil)
	m.payouts.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Payout) (*domain.Payout, error) { return p, nil })

	// b: below threshold, skipped.
	m.balances.EXPECT().BalanceOf(gomock.Any(), "b").Return(int64(500), nil)

	// c: payout fails, batch keeps going.
	m.balances.EXPECT().BalanceOf(gomock.Any(), "c").Return(int64(50_000), nil).Times(2)
	m.profiles.EXPECT().Get(gomock.Any(), "c").Return(&domain.CreatorProfile{CreatorID: "c", ProviderAccountID: "acct-c"}, nil)
	m.provider.EXPECT().GetAccount(gomock.Any(), "acct-c").Return(activeAccount(), nil)
	m.provider.EXPECT().CreateTransfer(gomock.Any(), gomock.Any()).Return(nil, provider.ErrUnavailable)
	m.failover.EXPECT().Enqueue(gomock.Any(), domain.OperationPayout, gomock.Any()).
		Return(&domain.FailoverRecord{ID: "rec-c"}, nil)

	m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).AnyTimes()

	result, err := service.BatchProcess(context.Background(), 10_000)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.SuccessfulPayouts)
	assert.Equal(t, 1, result.FailedPayouts)
	assert.Equal(t, int64(20_000), result.TotalAmount)
}

func TestApplyTransferEvent(t *testing.T) {
	service, m := NewMock(t)
	arrival := time.Now()

	tests := []struct {
		name        string
		status      domain.PayoutStatus
		prepareMock func()
		wantErr     error
		wantStatus  domain.PayoutStatus
	}{
		{
			name:   "Unknown transfer id",
			status: domain.PayoutPaid,
			prepareMock: func() {
				m.payouts.EXPECT().FindByTransferID(gomock.Any(), "tr-1").Return(nil, nil)
			},
			wantErr: ErrUnknownTransfer,
		},
		{
			name:   "Pending moves to in transit",
			status: domain.PayoutInTransit,
			prepareMock: func() {
				m.payouts.EXPECT().FindByTransferID(gomock.Any(), "tr-1").
					Return(&domain.Payout{ID: "p-1", ExternalTransferID: "tr-1", Status: domain.PayoutPending}, nil)
				m.payouts.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Payout) (*domain.Payout, error) { return p, nil })
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any())
			},
			wantStatus: domain.PayoutInTransit,
		},
		{
			name:   "In transit moves to paid with arrival date",
			status: domain.PayoutPaid,
			prepareMock: func() {
				m.payouts.EXPECT().FindByTransferID(gomock.Any(), "tr-1").
					Return(&domain.Payout{ID: "p-1", ExternalTransferID: "tr-1", Status: domain.PayoutInTransit}, nil)
				m.payouts.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Payout) (*domain.Payout, error) { return p, nil })
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any())
			},
			wantStatus: domain.PayoutPaid,
		},
		{
			name:   "Paid never becomes failed",
			status: domain.PayoutFailed,
			prepareMock: func() {
				m.payouts.EXPECT().FindByTransferID(gomock.Any(), "tr-1").
					Return(&domain.Payout{ID: "p-1", ExternalTransferID: "tr-1", Status: domain.PayoutPaid}, nil)
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name:   "Failed never becomes paid",
			status: domain.PayoutPaid,
			prepareMock: func() {
				m.payouts.EXPECT().FindByTransferID(gomock.Any(), "tr-1").
					Return(&domain.Payout{ID: "p-1", ExternalTransferID: "tr-1", Status: domain.PayoutFailed}, nil)
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name:   "Repeated delivery of the same status is a no-op",
			status: domain.PayoutInTransit,
			prepareMock: func() {
				m.payouts.EXPECT().FindByTransferID(gomock.Any(), "tr-1").
					Return(&domain.Payout{ID: "p-1", ExternalTransferID: "tr-1", Status: domain.PayoutInTransit}, nil)
			},
			wantStatus: domain.PayoutInTransit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			payout, err := service.ApplyTransferEvent(context.Background(), "tr-1", tt.status, &arrival, "")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, payout.Status)
			if tt.wantStatus == domain.PayoutPaid {
				assert.Equal(t, &arrival, payout.ArrivalDate)
			}
		})
	}
}

func TestApplyTransferEventLostRace(t *testing.T) {
	service, m := NewMock(t)

	m.payouts.EXPECT().FindByTransferID(gomock.Any(), "tr-1").
		Return(&domain.Payout{ID: "p-1", ExternalTransferID: "tr-1", Status: domain.PayoutPending}, nil)
	// Another delivery moved the row to a terminal state between the read
	// and the guarded update.
	m.payouts.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := service.ApplyTransferEvent(context.Background(), "tr-1", domain.PayoutFailed, nil, "account_closed")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestHistory(t *testing.T) {
	service, m := NewMock(t)

	m.payouts.EXPECT().ListByCreator(gomock.Any(), "creator-1", defaultHistoryN).
		Return([]domain.Payout{{ID: "p-1"}}, nil)

	payouts, err := service.History(context.Background(), "creator-1", 0)
	assert.NoError(t, err)
	assert.Len(t, payouts, 1)
}

func TestRegisterPayoutAccount(t *testing.T) {
	service, m := NewMock(t)

	m.profiles.EXPECT().SetPayoutAccount(gomock.Any(), "creator-1", "acct-1").Return(nil)
	m.audit.EXPECT().Record(gomock.Any(), gomock.Any())
	assert.NoError(t, service.RegisterPayoutAccount(context.Background(), "creator-1", "acct-1"))

	m.profiles.EXPECT().SetPayoutAccount(gomock.Any(), "creator-1", "acct-1").Return(errors.New("db down"))
	assert.Error(t, service.RegisterPayoutAccount(context.Background(), "creator-1", "acct-1"))
}
