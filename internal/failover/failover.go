package failover

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fanvault/payments/internal/domain"
)

const drainBatchLimit = 100

type Repo interface {
	Insert(ctx context.Context, record *domain.FailoverRecord) (*domain.FailoverRecord, error)
	Get(ctx context.Context, id string) (*domain.FailoverRecord, error)
	ListRetryable(ctx context.Context, limit int) ([]domain.FailoverRecord, error)
	ListByStatus(ctx context.Context, status domain.FailoverStatus, limit int) ([]domain.FailoverRecord, error)
	MarkSuccess(ctx context.Context, id string) (*domain.FailoverRecord, error)
	MarkAttemptFailed(ctx context.Context, id string) (*domain.FailoverRecord, error)
}

type Auditor interface {
	Record(ctx context.Context, entry domain.AuditEntry)
}

// Handler replays one failed operation from its stored payload.
type Handler func(ctx context.Context, payload []byte) error

var (
	ErrRecordNotFound    = errors.New("failover record not found")
	ErrNoHandler         = errors.New("no retry handler registered for operation kind")
	ErrUnknownKind       = errors.New("unknown operation kind")
	ErrAlreadySucceeded  = errors.New("failover record already succeeded")
)

// Queue captures operations that failed against the provider and retries
// them with bounded attempts. Dispatch is a closed handler table keyed by
// operation kind; EnsureHandlers makes a missing handler a startup error
// rather than a silent drop at drain time.
type Queue struct {
	repo     Repo
	audit    Auditor
	pool     WorkerPoolI
	mu       sync.RWMutex
	handlers map[domain.OperationKind]Handler
}

func New(repo Repo, audit Auditor) *Queue {
	return &Queue{
		repo:     repo,
		audit:    audit,
		pool:     NewWorkerPool(10),
		handlers: make(map[domain.OperationKind]Handler),
	}
}

func (q *Queue) Register(kind domain.OperationKind, handler Handler) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers[kind] = handler
}

// EnsureHandlers verifies every operation kind has a handler. Called at
// startup after wiring.
func (q *Queue) EnsureHandlers() error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	for _, kind := range domain.OperationKinds() {
		if _, ok := q.handlers[kind]; !ok {
			return fmt.Errorf("%w: %s", ErrNoHandler, kind)
		}
	}
	return nil
}

func (q *Queue) handler(kind domain.OperationKind) (Handler, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	handler, ok := q.handlers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoHandler, kind)
	}
	return handler, nil
}

// Enqueue stores a failover record for later draining. An eviction caused
// by queue overflow is escalated: a dropped unresolved failure means money
// movements may need manual reconstruction.
func (q *Queue) Enqueue(ctx context.Context, kind domain.OperationKind, payload any) (*domain.FailoverRecord, error) {
	if !validKind(kind) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal failover payload: %w", err)
	}

	record := &domain.FailoverRecord{
		ID:            uuid.NewString(),
		OperationKind: kind,
		Payload:       raw,
		Status:        domain.FailoverPending,
		MaxRetries:    domain.DefaultMaxRetries,
		CreatedAt:     time.Now(),
	}

	evicted, err := q.repo.Insert(ctx, record)
	if err != nil {
		return nil, err
	}

	if evicted != nil {
		zap.L().Error("failover queue overflow, record dropped",
			zap.String("recordID", evicted.ID),
			zap.String("kind", string(evicted.OperationKind)),
		)
		q.audit.Record(ctx, domain.AuditEntry{
			Level:     domain.LevelCritical,
			Operation: "failover_overflow",
			Status:    "dropped",
			Message:   "failover queue overflow, record dropped: " + evicted.ID,
			Metadata: map[string]string{
				"operation_kind": string(evicted.OperationKind),
				"payload":        string(evicted.Payload),
			},
		})
	}

	q.audit.Record(ctx, domain.AuditEntry{
		Level:     domain.LevelWarn,
		Operation: "failover_enqueue",
		Status:    "pending",
		Message:   "operation captured for retry",
		Metadata:  map[string]string{"operation_kind": string(kind), "record_id": record.ID},
	})
	return record, nil
}

type DrainResult struct {
	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Exhausted int `json:"exhausted"`
}

// Drain retries every pending record with attempts left. Individual
// failures only bump the record's retry counter; the drain itself succeeds.
func (q *Queue) Drain(ctx context.Context) (*DrainResult, error) {
	records, err := q.repo.ListRetryable(ctx, drainBatchLimit)
	if err != nil {
		return nil, err
	}

	result := &DrainResult{}
	var mu sync.Mutex

	for _, record := range records {
		record := record
		err := q.pool.AddTask(ctx, func() error {
			succeeded, exhausted := q.attempt(ctx, &record)

			mu.Lock()
			defer mu.Unlock()
			result.Attempted++
			switch {
			case succeeded:
				result.Succeeded++
			case exhausted:
				result.Failed++
				result.Exhausted++
			default:
				result.Failed++
			}
			return nil
		})
		if err != nil {
			return result, err
		}
	}
	q.pool.Wait()

	if result.Attempted > 0 {
		zap.L().Info("failover queue drained",
			zap.Int("attempted", result.Attempted),
			zap.Int("succeeded", result.Succeeded),
			zap.Int("failed", result.Failed),
			zap.Int("exhausted", result.Exhausted),
		)
	}
	return result, nil
}

func (q *Queue) attempt(ctx context.Context, record *domain.FailoverRecord) (succeeded, exhausted bool) {
	handler, err := q.handler(record.OperationKind)
	if err != nil {
		zap.L().Error("failover record has no handler", zap.String("recordID", record.ID), zap.Error(err))
		return false, false
	}

	if err := handler(ctx, record.Payload); err != nil {
		updated, markErr := q.repo.MarkAttemptFailed(ctx, record.ID)
		if markErr != nil || updated == nil {
			zap.L().Error("failed to mark failover attempt", zap.String("recordID", record.ID), zap.Error(markErr))
			return false, false
		}
		if updated.Exhausted() {
			q.audit.Record(ctx, domain.AuditEntry{
				Level:     domain.LevelCritical,
				Operation: "failover_exhausted",
				Status:    "exhausted",
				Message:   fmt.Sprintf("failover record %s exhausted %d retries: %v", record.ID, updated.MaxRetries, err),
				Metadata: map[string]string{
					"operation_kind": string(record.OperationKind),
					"payload":        string(record.Payload),
				},
			})
			return false, true
		}
		return false, false
	}

	if _, err := q.repo.MarkSuccess(ctx, record.ID); err != nil {
		zap.L().Error("failed to mark failover success", zap.String("recordID", record.ID), zap.Error(err))
		return false, false
	}
	q.audit.Record(ctx, domain.AuditEntry{
		Level:     domain.LevelInfo,
		Operation: "failover_retry",
		Status:    "success",
		Message:   "failover record resolved",
		Metadata:  map[string]string{"record_id": record.ID, "operation_kind": string(record.OperationKind)},
	})
	return true, false
}

// RetryNow is the operator recovery path: one attempt for a specific
// record, bypassing the retry-count gate. A failed manual attempt leaves
// the record untouched.
func (q *Queue) RetryNow(ctx context.Context, id string) (*domain.FailoverRecord, error) {
	record, err := q.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}
	if record.Status == domain.FailoverSuccess {
		return nil, ErrAlreadySucceeded
	}

	handler, err := q.handler(record.OperationKind)
	if err != nil {
		return nil, err
	}

	if err := handler(ctx, record.Payload); err != nil {
		q.audit.Record(ctx, domain.AuditEntry{
			Level:     domain.LevelWarn,
			Operation: "failover_manual_retry",
			Status:    "failed",
			Message:   fmt.Sprintf("manual retry of record %s failed: %v", id, err),
			Metadata:  map[string]string{"record_id": id},
		})
		return nil, fmt.Errorf("manual retry failed: %w", err)
	}

	resolved, err := q.repo.MarkSuccess(ctx, id)
	if err != nil {
		return nil, err
	}
	q.audit.Record(ctx, domain.AuditEntry{
		Level:     domain.LevelInfo,
		Operation: "failover_manual_retry",
		Status:    "success",
		Message:   "manual retry resolved record",
		Metadata:  map[string]string{"record_id": id},
	})
	return resolved, nil
}

func (q *Queue) List(ctx context.Context, status domain.FailoverStatus, limit int) ([]domain.FailoverRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	return q.repo.ListByStatus(ctx, status, limit)
}

func validKind(kind domain.OperationKind) bool {
	for _, known := range domain.OperationKinds() {
		if kind == known {
			return true
		}
	}
	return false
}
