package failoverrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/fanvault/payments/internal/domain"
	"github.com/fanvault/payments/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
	capacity  int
}

func New(db pg.Database, txManager pg.TXManager, capacity int) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
		capacity:  capacity,
	}
}

const recordColumns = `id, operation_kind, payload, status, retry_count, max_retries, created_at, resolved_at`

// Insert stores a new failover record. When the queue is at capacity the
// oldest record is evicted and returned so the caller can escalate: dropping
// an unresolved failure is a near-outage signal.
func (r *Repository) Insert(ctx context.Context, record *domain.FailoverRecord) (evicted *domain.FailoverRecord, err error) {
	err = r.txManager.Begin(ctx, func(ctx context.Context) error {
		insert := `
            INSERT INTO failover_records (id, operation_kind, payload, status, retry_count, max_retries, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7)
        `
		_, err := r.db.Exec(ctx, insert,
			record.ID,
			record.OperationKind,
			record.Payload,
			record.Status,
			record.RetryCount,
			record.MaxRetries,
			record.CreatedAt,
		)
		if err != nil {
			zap.L().Error("failed to insert failover record", zap.Error(err))
			return err
		}

		var count int
		if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM failover_records`).Scan(&count); err != nil {
			return err
		}
		if count <= r.capacity {
			return nil
		}

		evict := `
            DELETE FROM failover_records
            WHERE id = (SELECT id FROM failover_records ORDER BY created_at LIMIT 1)
            RETURNING ` + recordColumns + `
        `
		dropped, err := r.scanOne(r.db.QueryRow(ctx, evict))
		if err != nil {
			zap.L().Error("failed to evict oldest failover record", zap.Error(err))
			return err
		}
		evicted = dropped
		return nil
	})
	if err != nil {
		return nil, err
	}
	return evicted, nil
}

func (r *Repository) Get(ctx context.Context, id string) (*domain.FailoverRecord, error) {
	query := `
        SELECT ` + recordColumns + `
        FROM failover_records
        WHERE id = $1
    `
	record, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if err != nil {
		zap.L().Error("failed to get failover record", zap.Error(err))
		return nil, err
	}
	return record, nil
}

// ListRetryable returns pending records that have attempts left, oldest first.
func (r *Repository) ListRetryable(ctx context.Context, limit int) ([]domain.FailoverRecord, error) {
	query := `
        SELECT ` + recordColumns + `
        FROM failover_records
        WHERE status = 'pending' AND retry_count < max_retries
        ORDER BY created_at
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to list retryable failover records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *Repository) ListByStatus(ctx context.Context, status domain.FailoverStatus, limit int) ([]domain.FailoverRecord, error) {
	query := `
        SELECT ` + recordColumns + `
        FROM failover_records
        WHERE status = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, status, limit)
	if err != nil {
		zap.L().Error("failed to list failover records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *Repository) MarkSuccess(ctx context.Context, id string) (*domain.FailoverRecord, error) {
	query := `
        UPDATE failover_records
        SET status = 'success', resolved_at = now()
        WHERE id = $1
        RETURNING ` + recordColumns + `
    `
	record, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if err != nil {
		zap.L().Error("failed to mark failover record success", zap.Error(err))
		return nil, err
	}
	return record, nil
}

// MarkAttemptFailed bumps the retry counter; when the counter reaches
// max_retries the record flips to the terminal failed status.
func (r *Repository) MarkAttemptFailed(ctx context.Context, id string) (*domain.FailoverRecord, error) {
	query := `
        UPDATE failover_records
        SET retry_count = retry_count + 1,
            status = CASE WHEN retry_count + 1 >= max_retries THEN 'failed' ELSE 'pending' END
        WHERE id = $1
        RETURNING ` + recordColumns + `
    `
	record, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if err != nil {
		zap.L().Error("failed to mark failover attempt", zap.Error(err))
		return nil, err
	}
	return record, nil
}

func (r *Repository) scanOne(row pgx.Row) (*domain.FailoverRecord, error) {
	var record domain.FailoverRecord
	err := row.Scan(
		&record.ID,
		&record.OperationKind,
		&record.Payload,
		&record.Status,
		&record.RetryCount,
		&record.MaxRetries,
		&record.CreatedAt,
		&record.ResolvedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *Repository) scanAll(rows pgx.Rows) ([]domain.FailoverRecord, error) {
	var records []domain.FailoverRecord
	for rows.Next() {
		var record domain.FailoverRecord
		err := rows.Scan(
			&record.ID,
			&record.OperationKind,
			&record.Payload,
			&record.Status,
			&record.RetryCount,
			&record.MaxRetries,
			&record.CreatedAt,
			&record.ResolvedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan failover record", zap.Error(err))
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
