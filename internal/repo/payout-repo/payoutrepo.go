package payoutrepo

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

const payoutColumns = `id, creator_id, amount_minor, external_transfer_id, status, arrival_date, failure_reason, created_at`

func (r *Repository) Insert(ctx context.Context, payout *domain.Payout) (*domain.Payout, error) {
	query := `
        INSERT INTO payouts (id, creator_id, amount_minor, external_transfer_id, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query,
		payout.ID,
		payout.CreatorID,
		payout.AmountMinor,
		payout.ExternalTransferID,
		payout.Status,
		payout.CreatedAt,
	)
	if err != nil {
		zap.L().Error("failed to insert payout", zap.Error(err))
		return nil, err
	}
	return payout, nil
}

func (r *Repository) FindByTransferID(ctx context.Context, transferID string) (*domain.Payout, error) {
	query := `
        SELECT ` + payoutColumns + `
        FROM payouts
        WHERE external_transfer_id = $1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, transferID))
}

// UpdateStatus applies a lifecycle transition. Terminal rows are filtered in
// SQL, so a late or duplicated webhook can never rewrite them.
func (r *Repository) UpdateStatus(ctx context.Context, payout *domain.Payout) (*domain.Payout, error) {
	query := `
        UPDATE payouts
        SET status = $2, arrival_date = $3, failure_reason = $4
        WHERE id = $1 AND status NOT IN ('paid', 'failed', 'cancelled')
        RETURNING ` + payoutColumns + `
	`
	updated, err := r.scanOne(r.db.QueryRow(ctx, query, payout.ID, payout.Status, payout.ArrivalDate, payout.FailureReason))
	if err != nil {
		zap.L().Error("failed to update payout status", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) ListByCreator(ctx context.Context, creatorID string, limit int) ([]domain.Payout, error) {
	query := `
        SELECT ` + payoutColumns + `
        FROM payouts
        WHERE creator_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, creatorID, limit)
	if err != nil {
		zap.L().Error("failed to list payouts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.Payout, error) {
	query := `
        SELECT ` + payoutColumns + `
        FROM payouts
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list payouts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return r.scanAll(rows)
}

// CommittedTotal sums payouts whose funds are no longer available to the
// creator: pending, in transit or already paid.
func (r *Repository) CommittedTotal(ctx context.Context, creatorID string) (int64, error) {
	query := `
        SELECT COALESCE(SUM(amount_minor), 0)
        FROM payouts
        WHERE creator_id = $1 AND status IN ('pending', 'in_transit', 'paid')
    `
	var total int64
	if err := r.db.QueryRow(ctx, query, creatorID).Scan(&total); err != nil {
		zap.L().Error("failed to sum committed payouts", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Payout, error) {
	var payout domain.Payout
	err := row.Scan(
		&payout.ID,
		&payout.CreatorID,
		&payout.AmountMinor,
		&payout.ExternalTransferID,
		&payout.Status,
		&payout.ArrivalDate,
		&payout.FailureReason,
		&payout.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payout, nil
}

func (r *Repository) scanAll(rows pgx.Rows) ([]domain.Payout, error) {
	var payouts []domain.Payout
	for rows.Next() {
		var payout domain.Payout
		err := rows.Scan(
			&payout.ID,
			&payout.CreatorID,
			&payout.AmountMinor,
			&payout.ExternalTransferID,
			&payout.Status,
			&payout.ArrivalDate,
			&payout.FailureReason,
			&payout.CreatedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, payout)
	}
	return payouts, rows.Err()
}
