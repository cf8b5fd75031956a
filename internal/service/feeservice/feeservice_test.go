package feeservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/fanvault/payments/internal/domain"
)

type mocks struct {
	profiles *MockProfileRepo
	earnings *MockEarningsSource
	failover *MockFailoverSink
	audit    *MockAuditor
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		profiles: NewMockProfileRepo(ctrl),
		earnings: NewMockEarningsSource(ctrl),
		failover: NewMockFailoverSink(ctrl),
		audit:    NewMockAuditor(ctrl),
	}
	service := New(m.profiles, m.earnings, m.failover, m.audit)
	defer ctrl.Finish()
	return service, m
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		name     string
		earnings int64
		wantTier string
		wantFee  int64
	}{
		{"Zero earnings is starter", 0, "starter", 20},
		{"One below rising stays starter", 99_999, "starter", 20},
		{"Exactly at rising threshold", 100_000, "rising", 18},
		{"One below established stays rising", 499_999, "rising", 18},
		{"Exactly at established threshold", 500_000, "established", 15},
		{"One below partner stays established", 999_999, "established", 15},
		{"Exactly at partner threshold", 1_000_000, "partner", 10},
		{"Far above partner stays partner", 50_000_000, "partner", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier := TierFor(tt.earnings)
			assert.Equal(t, tt.wantTier, tier.Name)
			assert.Equal(t, tt.wantFee, tier.FeePercent)
		})
	}
}

func TestFeeInfoFor(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Tier is recomputed from monthly earnings", func(t *testing.T) {
		m.profiles.EXPECT().Get(gomock.Any(), "creator-1").Return(&domain.CreatorProfile{CreatorID: "creator-1"}, nil)
		m.earnings.EXPECT().MonthlyEarnings(gomock.Any(), "creator-1").Return(int64(150_000), nil)

		info, err := service.FeeInfoFor(context.Background(), "creator-1")
		assert.NoError(t, err)
		assert.Equal(t, "rising", info.TierName)
		assert.Equal(t, int64(18), info.FeePercent)
		assert.False(t, info.EliteFounding)
	})

	t.Run("Unknown creator falls back to starter", func(t *testing.T) {
		m.profiles.EXPECT().Get(gomock.Any(), "creator-2").Return(nil, nil)
		m.earnings.EXPECT().MonthlyEarnings(gomock.Any(), "creator-2").Return(int64(0), nil)

		info, err := service.FeeInfoFor(context.Background(), "creator-2")
		assert.NoError(t, err)
		assert.Equal(t, "starter", info.TierName)
	})

	t.Run("Elite lock bypasses the tier table at any earnings", func(t *testing.T) {
		m.profiles.EXPECT().Get(gomock.Any(), "creator-3").Return(&domain.CreatorProfile{
			CreatorID:           "creator-3",
			EliteFoundingLocked: true,
			LockedFeePercentage: 12,
		}, nil)

		info, err := service.FeeInfoFor(context.Background(), "creator-3")
		assert.NoError(t, err)
		assert.Equal(t, "elite_founding", info.TierName)
		assert.Equal(t, int64(12), info.FeePercent)
		assert.True(t, info.EliteFounding)
	})
}

func TestGrantEliteFounding(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Zero percent uses the default", func(t *testing.T) {
		m.profiles.EXPECT().GrantEliteFounding(gomock.Any(), "creator-1", int64(DefaultEliteFeePercent)).
			Return(&domain.CreatorProfile{CreatorID: "creator-1", EliteFoundingLocked: true, LockedFeePercentage: DefaultEliteFeePercent}, nil)
		m.audit.EXPECT().Record(gomock.Any(), gomock.Any())

		profile, err := service.GrantEliteFounding(context.Background(), "creator-1", 0)
		assert.NoError(t, err)
		assert.True(t, profile.EliteFoundingLocked)
		assert.Equal(t, int64(DefaultEliteFeePercent), profile.LockedFeePercentage)
	})

	t.Run("Out of range percent is rejected", func(t *testing.T) {
		_, err := service.GrantEliteFounding(context.Background(), "creator-1", 100)
		assert.ErrorIs(t, err, ErrInvalidFeePercent)

		_, err = service.GrantEliteFounding(context.Background(), "creator-1", -5)
		assert.ErrorIs(t, err, ErrInvalidFeePercent)
	})

	t.Run("Second grant returns the already locked profile unchanged", func(t *testing.T) {
		m.profiles.EXPECT().GrantEliteFounding(gomock.Any(), "creator-1", int64(15)).
			Return(&domain.CreatorProfile{CreatorID: "creator-1", EliteFoundingLocked: true, LockedFeePercentage: 10}, nil)
		m.audit.EXPECT().Record(gomock.Any(), gomock.Any())

		profile, err := service.GrantEliteFounding(context.Background(), "creator-1", 15)
		assert.NoError(t, err)
		assert.Equal(t, int64(10), profile.LockedFeePercentage)
	})
}

func TestRecalculateAll(t *testing.T) {
	service, m := NewMock(t)

	t.Run("One failing creator does not halt the report", func(t *testing.T) {
		m.profiles.EXPECT().ListCreatorIDs(gomock.Any()).Return([]string{"a", "b", "c"}, nil)

		m.profiles.EXPECT().Get(gomock.Any(), "a").Return(nil, nil)
		m.earnings.EXPECT().MonthlyEarnings(gomock.Any(), "a").Return(int64(600_000), nil)

		m.profiles.EXPECT().Get(gomock.Any(), "b").Return(nil, errors.New("db hiccup"))
		m.failover.EXPECT().Enqueue(gomock.Any(), domain.OperationTierRecalculation, gomock.Any()).
			Return(&domain.FailoverRecord{ID: "rec-1"}, nil)

		m.profiles.EXPECT().Get(gomock.Any(), "c").Return(nil, nil)
		m.earnings.EXPECT().MonthlyEarnings(gomock.Any(), "c").Return(int64(0), nil)

		m.audit.EXPECT().Record(gomock.Any(), gomock.Any())

		report, err := service.RecalculateAll(context.Background())
		assert.NoError(t, err)
		assert.Len(t, report.Entries, 2)
		assert.Equal(t, 1, report.Failed)
		assert.Equal(t, "established", report.Entries[0].TierName)
		assert.Equal(t, "starter", report.Entries[1].TierName)
	})
}
