package feeservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fanvault/payments/internal/domain"
	"github.com/fanvault/payments/internal/failover"
)

// Tier maps a trailing-month earnings threshold to the platform fee the
// creator pays on future earnings reports.
type Tier struct {
	Name               string `json:"name"`
	MinMonthlyEarnings int64  `json:"min_monthly_earnings"`
	FeePercent         int64  `json:"fee_percent"`
}

// tiers is scanned top-down; the first threshold the earnings meet wins.
// The last row is the floor tier with a zero threshold.
var tiers = []Tier{
	{Name: "partner", MinMonthlyEarnings: 1_000_000, FeePercent: 10},
	{Name: "established", MinMonthlyEarnings: 500_000, FeePercent: 15},
	{Name: "rising", MinMonthlyEarnings: 100_000, FeePercent: 18},
	{Name: "starter", MinMonthlyEarnings: 0, FeePercent: 20},
}

const DefaultEliteFeePercent = 10

type ProfileRepo interface {
	Get(ctx context.Context, creatorID string) (*domain.CreatorProfile, error)
	GrantEliteFounding(ctx context.Context, creatorID string, feePercentage int64) (*domain.CreatorProfile, error)
	ListCreatorIDs(ctx context.Context) ([]string, error)
}

type EarningsSource interface {
	MonthlyEarnings(ctx context.Context, creatorID string) (int64, error)
}

type FailoverSink interface {
	Enqueue(ctx context.Context, kind domain.OperationKind, payload any) (*domain.FailoverRecord, error)
}

type Auditor interface {
	Record(ctx context.Context, entry domain.AuditEntry)
}

var ErrInvalidFeePercent = errors.New("fee percentage must be between 1 and 99")

type FeeInfo struct {
	CreatorID       string `json:"creator_id"`
	TierName        string `json:"tier"`
	FeePercent      int64  `json:"fee_percent"`
	MonthlyEarnings int64  `json:"monthly_earnings"`
	EliteFounding   bool   `json:"elite_founding"`
}

type TierReportEntry struct {
	CreatorID       string `json:"creator_id"`
	TierName        string `json:"tier"`
	FeePercent      int64  `json:"fee_percent"`
	MonthlyEarnings int64  `json:"monthly_earnings"`
	EliteFounding   bool   `json:"elite_founding"`
}

// TierReport is informational only: non-elite tiers are never persisted,
// they are recomputed from the ledger on every read.
type TierReport struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Entries     []TierReportEntry `json:"entries"`
	Failed      int               `json:"failed"`
}

type Service struct {
	profileRepo ProfileRepo
	earnings    EarningsSource
	failover    FailoverSink
	audit       Auditor
}

func New(profileRepo ProfileRepo, earnings EarningsSource, failoverSink FailoverSink, audit Auditor) *Service {
	return &Service{
		profileRepo: profileRepo,
		earnings:    earnings,
		failover:    failoverSink,
		audit:       audit,
	}
}

// TierFor returns the highest tier whose threshold the earnings meet.
func TierFor(monthlyEarnings int64) Tier {
	for _, tier := range tiers {
		if monthlyEarnings >= tier.MinMonthlyEarnings {
			return tier
		}
	}
	return tiers[len(tiers)-1]
}

// Tiers exposes the fixed tier table, highest first.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

// FeeInfoFor computes the creator's current fee. An elite-locked profile
// bypasses tier computation entirely, whatever the earnings.
func (s *Service) FeeInfoFor(ctx context.Context, creatorID string) (*FeeInfo, error) {
	profile, err := s.profileRepo.Get(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	if profile != nil && profile.EliteFoundingLocked {
		return &FeeInfo{
			CreatorID:     creatorID,
			TierName:      "elite_founding",
			FeePercent:    profile.LockedFeePercentage,
			EliteFounding: true,
		}, nil
	}

	monthly, err := s.earnings.MonthlyEarnings(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	tier := TierFor(monthly)
	return &FeeInfo{
		CreatorID:       creatorID,
		TierName:        tier.Name,
		FeePercent:      tier.FeePercent,
		MonthlyEarnings: monthly,
	}, nil
}

// GrantEliteFounding permanently locks the creator's fee. Only an explicit
// administrative call reaches this; no automated path sets or clears it.
func (s *Service) GrantEliteFounding(ctx context.Context, creatorID string, feePercent int64) (*domain.CreatorProfile, error) {
	if feePercent == 0 {
		feePercent = DefaultEliteFeePercent
	}
	if feePercent < 1 || feePercent > 99 {
		return nil, ErrInvalidFeePercent
	}

	profile, err := s.profileRepo.GrantEliteFounding(ctx, creatorID, feePercent)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		Level:     domain.LevelInfo,
		Operation: "grant_elite_founding",
		CreatorID: creatorID,
		Status:    "locked",
		Message:   fmt.Sprintf("elite founding locked at %d%%", profile.LockedFeePercentage),
	})
	return profile, nil
}

// RecalculateAll produces the periodic tier report. A creator whose
// earnings lookup fails is captured by the failover queue and the report
// continues with the rest.
func (s *Service) RecalculateAll(ctx context.Context) (*TierReport, error) {
	creatorIDs, err := s.profileRepo.ListCreatorIDs(ctx)
	if err != nil {
		return nil, err
	}

	report := &TierReport{GeneratedAt: time.Now()}
	for _, creatorID := range creatorIDs {
		info, err := s.FeeInfoFor(ctx, creatorID)
		if err != nil {
			zap.L().Error("tier recalculation failed for creator",
				zap.String("creatorID", creatorID), zap.Error(err))
			report.Failed++
			if _, enqueueErr := s.failover.Enqueue(ctx, domain.OperationTierRecalculation, failover.TierRecalcPayload{
				CreatorID: creatorID,
			}); enqueueErr != nil {
				zap.L().Error("failed to queue tier recalculation", zap.Error(enqueueErr))
			}
			continue
		}
		report.Entries = append(report.Entries, TierReportEntry{
			CreatorID:       info.CreatorID,
			TierName:        info.TierName,
			FeePercent:      info.FeePercent,
			MonthlyEarnings: info.MonthlyEarnings,
			EliteFounding:   info.EliteFounding,
		})
	}

	s.audit.Record(ctx, domain.AuditEntry{
		Level:     domain.LevelInfo,
		Operation: "tier_recalculation",
		Status:    "completed",
		Message:   fmt.Sprintf("tier report generated for %d creators, %d failed", len(report.Entries), report.Failed),
	})
	return report, nil
}
