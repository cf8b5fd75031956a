package failoverrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/fanvault/payments/internal/domain"
	"github.com/fanvault/payments/internal/pg"
)

const testCapacity = 3

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager, testCapacity)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func passthroughTx(m *pg.MockTXManager) {
	m.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	)
}

func recordRows(records ...domain.FailoverRecord) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "operation_kind", "payload", "status", "retry_count", "max_retries", "created_at", "resolved_at"})
	for _, r := range records {
		rows.AddRow(r.ID, r.OperationKind, r.Payload, r.Status, r.RetryCount, r.MaxRetries, r.CreatedAt, r.ResolvedAt)
	}
	return rows
}

func sampleRecord() *domain.FailoverRecord {
	return &domain.FailoverRecord{
		ID:            "rec-1",
		OperationKind: domain.OperationPayout,
		Payload:       []byte(`{"creator_id":"c-1"}`),
		Status:        domain.FailoverPending,
		MaxRetries:    domain.DefaultMaxRetries,
		CreatedAt:     time.Now(),
	}
}

func TestRepository_Insert(t *testing.T) {
	t.Run("Below capacity inserts without eviction", func(t *testing.T) {
		repo, mock, txManager := NewMock(t)
		record := sampleRecord()

		passthroughTx(txManager)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO failover_records")).
			WithArgs(record.ID, record.OperationKind, record.Payload, record.Status,
				record.RetryCount, record.MaxRetries, record.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM failover_records")).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(testCapacity))

		evicted, err := repo.Insert(context.Background(), record)
		assert.NoError(t, err)
		assert.Nil(t, evicted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Above capacity evicts the oldest record", func(t *testing.T) {
		repo, mock, txManager := NewMock(t)
		record := sampleRecord()
		oldest := domain.FailoverRecord{
			ID:            "rec-old",
			OperationKind: domain.OperationPayment,
			Payload:       []byte(`{}`),
			Status:        domain.FailoverPending,
			RetryCount:    2,
			MaxRetries:    domain.DefaultMaxRetries,
			CreatedAt:     time.Now().Add(-time.Hour),
		}

		passthroughTx(txManager)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO failover_records")).
			WithArgs(record.ID, record.OperationKind, record.Payload, record.Status,
				record.RetryCount, record.MaxRetries, record.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM failover_records")).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(testCapacity + 1))
		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM failover_records")).
			WillReturnRows(recordRows(oldest))

		evicted, err := repo.Insert(context.Background(), record)
		assert.NoError(t, err)
		assert.Equal(t, "rec-old", evicted.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ListRetryable(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("status = 'pending' AND retry_count < max_retries")).
		WithArgs(100).
		WillReturnRows(recordRows(
			domain.FailoverRecord{ID: "rec-1", OperationKind: domain.OperationPayout, Payload: []byte(`{}`), Status: domain.FailoverPending, RetryCount: 1, MaxRetries: 5, CreatedAt: now},
		))

	records, err := repo.ListRetryable(context.Background(), 100)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "rec-1", records[0].ID)
}

func TestRepository_MarkAttemptFailed(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	t.Run("Counter bumps and stays pending", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SET retry_count = retry_count + 1")).
			WithArgs("rec-1").
			WillReturnRows(recordRows(domain.FailoverRecord{
				ID: "rec-1", OperationKind: domain.OperationPayout, Payload: []byte(`{}`),
				Status: domain.FailoverPending, RetryCount: 2, MaxRetries: 5, CreatedAt: now,
			}))

		record, err := repo.MarkAttemptFailed(context.Background(), "rec-1")
		assert.NoError(t, err)
		assert.False(t, record.Exhausted())
	})

	t.Run("Final attempt flips to failed", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SET retry_count = retry_count + 1")).
			WithArgs("rec-1").
			WillReturnRows(recordRows(domain.FailoverRecord{
				ID: "rec-1", OperationKind: domain.OperationPayout, Payload: []byte(`{}`),
				Status: domain.FailoverFailed, RetryCount: 5, MaxRetries: 5, CreatedAt: now,
			}))

		record, err := repo.MarkAttemptFailed(context.Background(), "rec-1")
		assert.NoError(t, err)
		assert.True(t, record.Exhausted())
	})
}

func TestRepository_MarkSuccess(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	resolved := now

	mock.ExpectQuery(regexp.QuoteMeta("SET status = 'success', resolved_at = now()")).
		WithArgs("rec-1").
		WillReturnRows(recordRows(domain.FailoverRecord{
			ID: "rec-1", OperationKind: domain.OperationPayout, Payload: []byte(`{}`),
			Status: domain.FailoverSuccess, RetryCount: 1, MaxRetries: 5, CreatedAt: now, ResolvedAt: &resolved,
		}))

	record, err := repo.MarkSuccess(context.Background(), "rec-1")
	assert.NoError(t, err)
	assert.Equal(t, domain.FailoverSuccess, record.Status)
	assert.NotNil(t, record.ResolvedAt)
}

func TestRepository_Get(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs("rec-missing").
		WillReturnRows(recordRows())

	record, err := repo.Get(context.Background(), "rec-missing")
	assert.NoError(t, err)
	assert.Nil(t, record)
}
