package failover

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/fanvault/payments/internal/domain"
)

func NewMock(t *testing.T) (*Queue, *MockRepo, *MockAuditor) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	audit := NewMockAuditor(ctrl)
	queue := New(repo, audit)
	defer ctrl.Finish()
	return queue, repo, audit
}

func TestEnsureHandlers(t *testing.T) {
	queue, _, _ := NewMock(t)

	err := queue.EnsureHandlers()
	assert.ErrorIs(t, err, ErrNoHandler)

	noop := func(ctx context.Context, payload []byte) error { return nil }
	queue.Register(domain.OperationPayment, noop)
	queue.Register(domain.OperationPayout, noop)
	assert.ErrorIs(t, queue.EnsureHandlers(), ErrNoHandler)

	queue.Register(domain.OperationTierRecalculation, noop)
	assert.NoError(t, queue.EnsureHandlers())
}

func TestEnqueue(t *testing.T) {
	queue, repo, audit := NewMock(t)

	t.Run("Unknown operation kind is rejected", func(t *testing.T) {
		_, err := queue.Enqueue(context.Background(), "refund", nil)
		assert.ErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("Record is stored pending with the default retry budget", func(t *testing.T) {
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *domain.FailoverRecord) (*domain.FailoverRecord, error) {
				assert.Equal(t, domain.FailoverPending, r.Status)
				assert.Equal(t, domain.DefaultMaxRetries, r.MaxRetries)
				return nil, nil
			})
		audit.EXPECT().Record(gomock.Any(), gomock.Any())

		record, err := queue.Enqueue(context.Background(), domain.OperationPayout, PayoutPayload{CreatorID: "c-1", AmountMinor: 500})
		assert.NoError(t, err)
		assert.NotEmpty(t, record.ID)
	})

	t.Run("Capacity eviction escalates to a critical audit entry", func(t *testing.T) {
		evicted := &domain.FailoverRecord{ID: "old-1", OperationKind: domain.OperationPayment, Payload: []byte(`{}`)}
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(evicted, nil)

		var levels []domain.LogLevel
		audit.EXPECT().Record(gomock.Any(), gomock.Any()).Times(2).
			Do(func(_ context.Context, entry domain.AuditEntry) {
				levels = append(levels, entry.Level)
			})

		_, err := queue.Enqueue(context.Background(), domain.OperationPayout, PayoutPayload{CreatorID: "c-1"})
		assert.NoError(t, err)
		assert.Contains(t, levels, domain.LevelCritical)
	})
}

func TestDrain(t *testing.T) {
	queue, repo, audit := NewMock(t)

	queue.Register(domain.OperationPayout, func(ctx context.Context, payload []byte) error {
		if string(payload) == `"fail"` {
			return errors.New("still down")
		}
		return nil
	})

	records := []domain.FailoverRecord{
		{ID: "rec-1", OperationKind: domain.OperationPayout, Payload: []byte(`"fail"`), Status: domain.FailoverPending, RetryCount: 0, MaxRetries: 5},
		{ID: "rec-2", OperationKind: domain.OperationPayout, Payload: []byte(`"ok"`), Status: domain.FailoverPending, RetryCount: 1, MaxRetries: 5},
	}
	repo.EXPECT().ListRetryable(gomock.Any(), drainBatchLimit).Return(records, nil)
	repo.EXPECT().MarkAttemptFailed(gomock.Any(), "rec-1").
		Return(&domain.FailoverRecord{ID: "rec-1", Status: domain.FailoverPending, RetryCount: 1, MaxRetries: 5}, nil)
	repo.EXPECT().MarkSuccess(gomock.Any(), "rec-2").
		Return(&domain.FailoverRecord{ID: "rec-2", Status: domain.FailoverSuccess}, nil)
	audit.EXPECT().Record(gomock.Any(), gomock.Any()).AnyTimes()

	result, err := queue.Drain(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Attempted)
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 0, result.Exhausted)
}

func TestDrainExhaustion(t *testing.T) {
	queue, repo, audit := NewMock(t)

	queue.Register(domain.OperationPayment, func(ctx context.Context, payload []byte) error {
		return errors.New("permanently broken")
	})

	// Fifth failed attempt flips the record to failed and escalates.
	records := []domain.FailoverRecord{
		{ID: "rec-1", OperationKind: domain.OperationPayment, Status: domain.FailoverPending, RetryCount: 4, MaxRetries: 5},
	}
	repo.EXPECT().ListRetryable(gomock.Any(), drainBatchLimit).Return(records, nil)
	repo.EXPECT().MarkAttemptFailed(gomock.Any(), "rec-1").
		Return(&domain.FailoverRecord{ID: "rec-1", Status: domain.FailoverFailed, RetryCount: 5, MaxRetries: 5}, nil)

	var critical bool
	audit.EXPECT().Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, entry domain.AuditEntry) {
			if entry.Level == domain.LevelCritical {
				critical = true
				assert.NotEmpty(t, entry.Metadata["payload"])
			}
		})

	result, err := queue.Drain(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Exhausted)
	assert.True(t, critical)
}

func TestRetryNow(t *testing.T) {
	queue, repo, audit := NewMock(t)

	attempted := 0
	queue.Register(domain.OperationPayout, func(ctx context.Context, payload []byte) error {
		attempted++
		return nil
	})

	t.Run("Unknown record", func(t *testing.T) {
		repo.EXPECT().Get(gomock.Any(), "missing").Return(nil, nil)
		_, err := queue.RetryNow(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("Already succeeded record is refused", func(t *testing.T) {
		repo.EXPECT().Get(gomock.Any(), "done").
			Return(&domain.FailoverRecord{ID: "done", Status: domain.FailoverSuccess}, nil)
		_, err := queue.RetryNow(context.Background(), "done")
		assert.ErrorIs(t, err, ErrAlreadySucceeded)
	})

	t.Run("Exhausted record can still be retried manually", func(t *testing.T) {
		repo.EXPECT().Get(gomock.Any(), "rec-1").Return(&domain.FailoverRecord{
			ID:            "rec-1",
			OperationKind: domain.OperationPayout,
			Status:        domain.FailoverFailed,
			RetryCount:    5,
			MaxRetries:    5,
		}, nil)
		repo.EXPECT().MarkSuccess(gomock.Any(), "rec-1").
			Return(&domain.FailoverRecord{ID: "rec-1", Status: domain.FailoverSuccess}, nil)
		audit.EXPECT().Record(gomock.Any(), gomock.Any())

		resolved, err := queue.RetryNow(context.Background(), "rec-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.FailoverSuccess, resolved.Status)
		assert.Equal(t, 1, attempted)
	})
}

func TestWorkerPoolWait(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var done [16]bool
	for i := 0; i < len(done); i++ {
		i := i
		err := pool.AddTask(context.Background(), func() error {
			done[i] = true
			return nil
		})
		assert.NoError(t, err)
	}
	pool.Wait()

	for i := range done {
		assert.True(t, done[i])
	}
}
