package auditlog

import (
	"context"
	"time"

	"github.com/fanvault/payments/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) ([]domain.AuditEntry, error)
	Query(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error)
	Summary(ctx context.Context) (*domain.AuditSummary, error)
}

// Logger is the structured, filterable operation log. It is diagnostic
// infrastructure: a failed write is reported but never fails the operation
// that produced the entry.
type Logger struct {
	repo Repo
}

func New(repo Repo) *Logger {
	return &Logger{
		repo: repo,
	}
}

func (l *Logger) Record(ctx context.Context, entry domain.AuditEntry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if entry.Level == "" {
		entry.Level = domain.LevelInfo
	}

	evicted, err := l.repo.Insert(ctx, &entry)
	if err != nil {
		zap.L().Error("failed to persist audit entry",
			zap.String("operation", entry.Operation),
			zap.Error(err),
		)
		return
	}

	for _, dropped := range evicted {
		if !unresolvedFailure(dropped) {
			continue
		}
		// Losing the trace of an unresolved failure is itself a failure
		// worth keeping: re-log it at CRITICAL so it lands back on top.
		l.Record(ctx, domain.AuditEntry{
			Level:     domain.LevelCritical,
			Operation: "audit_log_eviction",
			CreatorID: dropped.CreatorID,
			PayoutID:  dropped.PayoutID,
			Status:    "dropped",
			Message:   "audit log overflow dropped an unresolved failure entry: " + dropped.Message,
		})
	}
}

func (l *Logger) Query(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error) {
	return l.repo.Query(ctx, filter)
}

func (l *Logger) Summary(ctx context.Context) (*domain.AuditSummary, error) {
	return l.repo.Summary(ctx)
}

func unresolvedFailure(entry domain.AuditEntry) bool {
	if entry.Level != domain.LevelError && entry.Level != domain.LevelCritical {
		return false
	}
	return entry.Status == "failed" || entry.Status == "exhausted"
}
