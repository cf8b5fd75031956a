package service

import (
	"github.com/fanvault/payments/internal/auditlog"
	"github.com/fanvault/payments/internal/failover"
	"github.com/fanvault/payments/internal/pg"
	"github.com/fanvault/payments/internal/provider"
	"github.com/fanvault/payments/internal/repo"
	"github.com/fanvault/payments/internal/service/feeservice"
	"github.com/fanvault/payments/internal/service/ledgerservice"
	"github.com/fanvault/payments/internal/service/payoutservice"
	"github.com/fanvault/payments/internal/service/reconcileservice"
)

type Services struct {
	Ledger    *ledgerservice.Service
	Fees      *feeservice.Service
	Payouts   *payoutservice.Service
	Reconcile *reconcileservice.Service
}

func New(
	repos *repo.Repositories,
	providerAPI provider.API,
	queue *failover.Queue,
	audit *auditlog.Logger,
	txManager pg.TXManager,
) *Services {
	ledger := ledgerservice.New(
		repos.TransactionRepo,
		repos.ProfileRepo,
		repos.PayoutRepo,
		providerAPI,
		queue,
		txManager,
		audit,
	)
	fees := feeservice.New(repos.ProfileRepo, ledger, queue, audit)
	payouts := payoutservice.New(
		repos.PayoutRepo,
		repos.ProfileRepo,
		ledger,
		providerAPI,
		queue,
		audit,
	)
	reconcile := reconcileservice.New(repos.TransactionRepo, repos.PayoutRepo, providerAPI, audit)

	return &Services{
		Ledger:    ledger,
		Fees:      fees,
		Payouts:   payouts,
		Reconcile: reconcile,
	}
}
