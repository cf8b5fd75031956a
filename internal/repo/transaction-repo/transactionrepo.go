package transactionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fanvault/payments/internal/domain"
	"github.com/fanvault/payments/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// InsertOnce writes the transaction unless a row with the same provider
// confirmation id already exists. The unique index carries the idempotency
// guarantee, so concurrent duplicate webhook deliveries insert exactly once.
func (r *Repository) InsertOnce(ctx context.Context, transaction *domain.Transaction) (bool, error) {
	query := `
        INSERT INTO transactions (id, payer_id, creator_id, amount_minor, category, platform_fee_minor, provider_confirmation_id, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (provider_confirmation_id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query,
		transaction.ID,
		transaction.PayerID,
		transaction.CreatorID,
		transaction.AmountMinor,
		transaction.Category,
		transaction.PlatformFeeMinor,
		transaction.ProviderConfirmationID,
		transaction.Status,
		transaction.CreatedAt,
	)
	if err != nil {
		zap.L().Error("failed to insert transaction", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) FindByConfirmationID(ctx context.Context, confirmationID string) (*domain.Transaction, error) {
	query := `
        SELECT id, payer_id, creator_id, amount_minor, category, platform_fee_minor, provider_confirmation_id, status, created_at
        FROM transactions
        WHERE provider_confirmation_id = $1
    `
	row := r.db.QueryRow(ctx, query, confirmationID)

	var transaction domain.Transaction
	err := row.Scan(
		&transaction.ID,
		&transaction.PayerID,
		&transaction.CreatorID,
		&transaction.AmountMinor,
		&transaction.Category,
		&transaction.PlatformFeeMinor,
		&transaction.ProviderConfirmationID,
		&transaction.Status,
		&transaction.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find transaction by confirmation id", zap.Error(err))
		return nil, err
	}
	return &transaction, nil
}

func (r *Repository) ListByStatus(ctx context.Context, status domain.TransactionStatus) ([]domain.Transaction, error) {
	query := `
        SELECT id, payer_id, creator_id, amount_minor, category, platform_fee_minor, provider_confirmation_id, status, created_at
        FROM transactions
        WHERE status = $1
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		err := rows.Scan(
			&transaction.ID,
			&transaction.PayerID,
			&transaction.CreatorID,
			&transaction.AmountMinor,
			&transaction.Category,
			&transaction.PlatformFeeMinor,
			&transaction.ProviderConfirmationID,
			&transaction.Status,
			&transaction.CreatedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	return transactions, rows.Err()
}

// EarnedTotal sums the creator share of every completed transaction.
func (r *Repository) EarnedTotal(ctx context.Context, creatorID string) (int64, error) {
	query := `
        SELECT COALESCE(SUM(amount_minor - platform_fee_minor), 0)
        FROM transactions
        WHERE creator_id = $1 AND status = 'completed'
    `
	var total int64
	if err := r.db.QueryRow(ctx, query, creatorID).Scan(&total); err != nil {
		zap.L().Error("failed to sum creator earnings", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// EarnedBetween sums the creator share of completed transactions with
// created_at in [from, to).
func (r *Repository) EarnedBetween(ctx context.Context, creatorID string, from, to time.Time) (int64, error) {
	query := `
        SELECT COALESCE(SUM(amount_minor - platform_fee_minor), 0)
        FROM transactions
        WHERE creator_id = $1 AND status = 'completed' AND created_at >= $2 AND created_at < $3
    `
	var total int64
	if err := r.db.QueryRow(ctx, query, creatorID, from, to).Scan(&total); err != nil {
		zap.L().Error("failed to sum monthly creator earnings", zap.Error(err))
		return 0, err
	}
	return total, nil
}
