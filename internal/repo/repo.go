package repo

import (
	"github.com/fanvault/payments/internal/pg"
	auditrepo "github.com/fanvault/payments/internal/repo/audit-repo"
	failoverrepo "github.com/fanvault/payments/internal/repo/failover-repo"
	payoutrepo "github.com/fanvault/payments/internal/repo/payout-repo"
	profilerepo "github.com/fanvault/payments/internal/repo/profile-repo"
	transactionrepo "github.com/fanvault/payments/internal/repo/transaction-repo"
)

// Repositories bundles the concrete Postgres repositories. The services
// depend on their own narrow interfaces; each concrete repo here satisfies
// every interface carved out of it.
type Repositories struct {
	TransactionRepo *transactionrepo.Repository
	ProfileRepo     *profilerepo.Repository
	PayoutRepo      *payoutrepo.Repository
	FailoverRepo    *failoverrepo.Repository
	AuditRepo       *auditrepo.Repository
}

type Capacities struct {
	FailoverQueue int
	AuditLog      int
}

func New(conn pg.Database, txManager pg.TXManager, caps Capacities) *Repositories {
	return &Repositories{
		TransactionRepo: transactionrepo.New(conn, txManager),
		ProfileRepo:     profilerepo.New(conn),
		PayoutRepo:      payoutrepo.New(conn),
		FailoverRepo:    failoverrepo.New(conn, txManager, caps.FailoverQueue),
		AuditRepo:       auditrepo.New(conn, caps.AuditLog),
	}
}
