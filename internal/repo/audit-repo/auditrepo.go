package auditrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fanvault/payments/internal/domain"
	"github.com/fanvault/payments/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db       pg.Database
	capacity int
}

func New(db pg.Database, capacity int) *Repository {
	return &Repository{
		db:       db,
		capacity: capacity,
	}
}

const entryColumns = `id, ts, level, operation, creator_id, transaction_id, payout_id, amount_minor, status, message, metadata`

// Insert appends an entry and trims the log back to capacity. Trimmed
// entries are returned so the logger can escalate when an unresolved
// failure record falls off the end.
func (r *Repository) Insert(ctx context.Context, entry *domain.AuditEntry) ([]domain.AuditEntry, error) {
	metadata, err := marshalMetadata(entry.Metadata)
	if err != nil {
		return nil, err
	}

	insert := `
        INSERT INTO audit_log (ts, level, operation, creator_id, transaction_id, payout_id, amount_minor, status, message, metadata)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `
	err = r.db.QueryRow(ctx, insert,
		entry.Timestamp,
		entry.Level,
		entry.Operation,
		entry.CreatorID,
		entry.TransactionID,
		entry.PayoutID,
		entry.AmountMinor,
		entry.Status,
		entry.Message,
		metadata,
	).Scan(&entry.ID)
	if err != nil {
		zap.L().Error("failed to insert audit entry", zap.Error(err))
		return nil, err
	}

	trim := `
        DELETE FROM audit_log
        WHERE id IN (
            SELECT id FROM audit_log ORDER BY id DESC OFFSET $1
        )
        RETURNING ` + entryColumns + `
    `
	rows, err := r.db.Query(ctx, trim, r.capacity)
	if err != nil {
		zap.L().Error("failed to trim audit log", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *Repository) Query(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error) {
	query := `
        SELECT ` + entryColumns + `
        FROM audit_log
        WHERE ($1 = '' OR level = $1)
          AND ($2 = '' OR operation = $2)
          AND ($3 = '' OR creator_id = $3)
          AND ($4 = '' OR status = $4)
          AND ($5::timestamptz IS NULL OR ts >= $5)
          AND ($6::timestamptz IS NULL OR ts <= $6)
        ORDER BY ts DESC, id DESC
        LIMIT $7
    `
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.Query(ctx, query,
		string(filter.Level),
		filter.Operation,
		filter.CreatorID,
		filter.Status,
		nullableTime(filter.From),
		nullableTime(filter.To),
		limit,
	)
	if err != nil {
		zap.L().Error("failed to query audit log", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *Repository) Summary(ctx context.Context) (*domain.AuditSummary, error) {
	summary := &domain.AuditSummary{
		ByLevel:  make(map[domain.LogLevel]int64),
		ByStatus: make(map[string]int64),
	}

	levelQuery := `
        SELECT level, COUNT(*)
        FROM audit_log
        GROUP BY level
    `
	rows, err := r.db.Query(ctx, levelQuery)
	if err != nil {
		zap.L().Error("failed to summarize audit levels", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var level domain.LogLevel
		var count int64
		if err := rows.Scan(&level, &count); err != nil {
			return nil, err
		}
		summary.ByLevel[level] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	statusQuery := `
        SELECT status, COUNT(*)
        FROM audit_log
        WHERE status <> ''
        GROUP BY status
    `
	statusRows, err := r.db.Query(ctx, statusQuery)
	if err != nil {
		zap.L().Error("failed to summarize audit statuses", zap.Error(err))
		return nil, err
	}
	defer statusRows.Close()
	for statusRows.Next() {
		var status string
		var count int64
		if err := statusRows.Scan(&status, &count); err != nil {
			return nil, err
		}
		summary.ByStatus[status] = count
	}
	if err := statusRows.Err(); err != nil {
		return nil, err
	}

	recentQuery := `
        SELECT
            COUNT(*) FILTER (WHERE level = 'ERROR'),
            COUNT(*) FILTER (WHERE level = 'CRITICAL')
        FROM audit_log
        WHERE ts >= $1
    `
	since := time.Now().Add(-24 * time.Hour)
	if err := r.db.QueryRow(ctx, recentQuery, since).Scan(&summary.Errors24h, &summary.Critical24h); err != nil {
		zap.L().Error("failed to summarize recent audit errors", zap.Error(err))
		return nil, err
	}

	return summary, nil
}

func (r *Repository) scanAll(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]domain.AuditEntry, error) {
	var entries []domain.AuditEntry
	for rows.Next() {
		var entry domain.AuditEntry
		var metadata []byte
		err := rows.Scan(
			&entry.ID,
			&entry.Timestamp,
			&entry.Level,
			&entry.Operation,
			&entry.CreatorID,
			&entry.TransactionID,
			&entry.PayoutID,
			&entry.AmountMinor,
			&entry.Status,
			&entry.Message,
			&metadata,
		)
		if err != nil {
			zap.L().Error("failed to scan audit entry", zap.Error(err))
			return nil, err
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &entry.Metadata); err != nil {
				return nil, fmt.Errorf("failed to parse audit metadata: %w", err)
			}
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func marshalMetadata(metadata map[string]string) ([]byte, error) {
	if len(metadata) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal audit metadata: %w", err)
	}
	return raw, nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
