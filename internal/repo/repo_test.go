package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/fanvault/payments/internal/pg"
	auditrepo "github.com/fanvault/payments/internal/repo/audit-repo"
	failoverrepo "github.com/fanvault/payments/internal/repo/failover-repo"
	payoutrepo "github.com/fanvault/payments/internal/repo/payout-repo"
	profilerepo "github.com/fanvault/payments/internal/repo/profile-repo"
	transactionrepo "github.com/fanvault/payments/internal/repo/transaction-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager, Capacities{FailoverQueue: 1000, AuditLog: 10000})
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.TransactionRepo)
	assert.NotNil(t, repo.ProfileRepo)
	assert.NotNil(t, repo.PayoutRepo)
	assert.NotNil(t, repo.FailoverRepo)
	assert.NotNil(t, repo.AuditRepo)

	assert.IsType(t, &transactionrepo.Repository{}, repo.TransactionRepo)
	assert.IsType(t, &profilerepo.Repository{}, repo.ProfileRepo)
	assert.IsType(t, &payoutrepo.Repository{}, repo.PayoutRepo)
	assert.IsType(t, &failoverrepo.Repository{}, repo.FailoverRepo)
	assert.IsType(t, &auditrepo.Repository{}, repo.AuditRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
