package auditlog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/fanvault/payments/internal/domain"
)

func NewMock(t *testing.T) (*Logger, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	logger := New(repo)
	defer ctrl.Finish()
	return logger, repo
}

func TestRecord(t *testing.T) {
	logger, repo := NewMock(t)

	t.Run("Defaults are filled in", func(t *testing.T) {
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *domain.AuditEntry) ([]domain.AuditEntry, error) {
				assert.False(t, entry.Timestamp.IsZero())
				assert.Equal(t, domain.LevelInfo, entry.Level)
				return nil, nil
			})

		logger.Record(context.Background(), domain.AuditEntry{Operation: "record_payment", Status: "completed"})
	})

	t.Run("Persistence failure never panics or propagates", func(t *testing.T) {
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
		logger.Record(context.Background(), domain.AuditEntry{Operation: "record_payment"})
	})

	t.Run("Evicted unresolved failures are re-logged at critical", func(t *testing.T) {
		first := repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return([]domain.AuditEntry{
				{Level: domain.LevelError, Operation: "initiate_payout", Status: "failed", Message: "transfer failed"},
				{Level: domain.LevelInfo, Operation: "record_payment", Status: "completed"},
			}, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).After(first).
			DoAndReturn(func(_ context.Context, entry *domain.AuditEntry) ([]domain.AuditEntry, error) {
				assert.Equal(t, domain.LevelCritical, entry.Level)
				assert.Equal(t, "audit_log_eviction", entry.Operation)
				assert.Equal(t, "dropped", entry.Status)
				return nil, nil
			})

		logger.Record(context.Background(), domain.AuditEntry{Operation: "record_payment"})
	})
}

func TestQueryAndSummary(t *testing.T) {
	logger, repo := NewMock(t)

	filter := domain.AuditFilter{Level: domain.LevelError, Limit: 10}
	repo.EXPECT().Query(gomock.Any(), filter).Return([]domain.AuditEntry{{ID: 1}}, nil)

	entries, err := logger.Query(context.Background(), filter)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)

	repo.EXPECT().Summary(gomock.Any()).Return(&domain.AuditSummary{Errors24h: 3}, nil)
	summary, err := logger.Summary(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), summary.Errors24h)
}
