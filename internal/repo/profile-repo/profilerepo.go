package profilerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/fanvault/payments/internal/domain"
	"github.com/fanvault/payments/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const profileColumns = `creator_id, provider_account_id, elite_founding_locked, locked_fee_percentage, earned_total_minor, created_at`

func (r *Repository) Get(ctx context.Context, creatorID string) (*domain.CreatorProfile, error) {
	query := `
        SELECT ` + profileColumns + `
        FROM creator_profiles
        WHERE creator_id = $1
    `
	row := r.db.QueryRow(ctx, query, creatorID)

	var profile domain.CreatorProfile
	err := row.Scan(
		&profile.CreatorID,
		&profile.ProviderAccountID,
		&profile.EliteFoundingLocked,
		&profile.LockedFeePercentage,
		&profile.EarnedTotalMinor,
		&profile.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get creator profile", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

// AddEarnings upserts the profile row and bumps the denormalized
// running-earnings counter in one statement.
func (r *Repository) AddEarnings(ctx context.Context, creatorID string, delta int64) error {
	query := `
        INSERT INTO creator_profiles (creator_id, earned_total_minor)
        VALUES ($1, $2)
        ON CONFLICT (creator_id) DO UPDATE
        SET earned_total_minor = creator_profiles.earned_total_minor + EXCLUDED.earned_total_minor
    `
	if _, err := r.db.Exec(ctx, query, creatorID, delta); err != nil {
		zap.L().Error("failed to add creator earnings", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetPayoutAccount(ctx context.Context, creatorID, providerAccountID string) error {
	query := `
        INSERT INTO creator_profiles (creator_id, provider_account_id)
        VALUES ($1, $2)
        ON CONFLICT (creator_id) DO UPDATE
        SET provider_account_id = EXCLUDED.provider_account_id
    `
	if _, err := r.db.Exec(ctx, query, creatorID, providerAccountID); err != nil {
		zap.L().Error("failed to set payout account", zap.Error(err))
		return err
	}
	return nil
}

// GrantEliteFounding locks the fee percentage. The update clause refuses to
// touch an already-locked profile, so the grant is irreversible and the
// original percentage survives repeated calls.
func (r *Repository) GrantEliteFounding(ctx context.Context, creatorID string, feePercentage int64) (*domain.CreatorProfile, error) {
	query := `
        INSERT INTO creator_profiles (creator_id, elite_founding_locked, locked_fee_percentage)
        VALUES ($1, TRUE, $2)
        ON CONFLICT (creator_id) DO UPDATE
        SET elite_founding_locked = TRUE,
            locked_fee_percentage = EXCLUDED.locked_fee_percentage
        WHERE creator_profiles.elite_founding_locked = FALSE
    `
	if _, err := r.db.Exec(ctx, query, creatorID, feePercentage); err != nil {
		zap.L().Error("failed to grant elite founding", zap.Error(err))
		return nil, err
	}
	return r.Get(ctx, creatorID)
}

func (r *Repository) ListCreatorIDs(ctx context.Context) ([]string, error) {
	query := `
        SELECT creator_id
        FROM creator_profiles
        ORDER BY creator_id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list creators", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var creatorIDs []string
	for rows.Next() {
		var creatorID string
		if err := rows.Scan(&creatorID); err != nil {
			zap.L().Error("failed to scan creator id", zap.Error(err))
			return nil, err
		}
		creatorIDs = append(creatorIDs, creatorID)
	}

	return creatorIDs, rows.Err()
}
