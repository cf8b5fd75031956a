package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/fanvault/payments/internal/auditlog"
	"github.com/fanvault/payments/internal/config"
	"github.com/fanvault/payments/internal/domain"
	"github.com/fanvault/payments/internal/failover"
	"github.com/fanvault/payments/internal/handlers"
	"github.com/fanvault/payments/internal/pg"
	"github.com/fanvault/payments/internal/provider"
	"github.com/fanvault/payments/internal/repo"
	"github.com/fanvault/payments/internal/scheduler"
	"github.com/fanvault/payments/internal/service"
	"github.com/fanvault/payments/pkg/clients"
	"github.com/fanvault/payments/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	repo  *repo.Repositories
	queue *failover.Queue
	sched *scheduler.Scheduler

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't parse config: %w", err)
	}

	if err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	a.cfg = cfg
	a.repo = repo.New(conn, txManager, repo.Capacities{
		FailoverQueue: cfg.FailoverCapacity,
		AuditLog:      cfg.AuditLogCapacity,
	})

	audit := auditlog.New(a.repo.AuditRepo)
	a.queue = failover.New(a.repo.FailoverRepo, audit)

	providerClient := provider.New(cfg, clients.NewHTTPClient())
	a.srv = service.New(a.repo, providerClient, a.queue, audit, txManager)

	a.registerRetryHandlers()
	if err := a.queue.EnsureHandlers(); err != nil {
		return fmt.Errorf("failover queue misconfigured: %w", err)
	}

	a.sched, err = a.buildScheduler(pool)
	if err != nil {
		return fmt.Errorf("can't build scheduler: %w", err)
	}

	a.api = handlers.New(a.srv, a.sched, a.queue, audit)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}
	a.sched.Start(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// registerRetryHandlers binds each failover operation kind to its replay
// path. Replays go through the non-enqueueing service entry points so a
// still-failing operation bumps its retry counter instead of re-capturing
// itself.
func (a *Application) registerRetryHandlers() {
	a.queue.Register(domain.OperationPayment, func(ctx context.Context, payload []byte) error {
		var p failover.PaymentPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("malformed payment payload: %w", err)
		}
		_, err := a.srv.Ledger.Record(ctx, p.PayerID, p.CreatorID, p.AmountMinor, p.Category, p.ConfirmationID)
		return err
	})
	a.queue.Register(domain.OperationPayout, func(ctx context.Context, payload []byte) error {
		var p failover.PayoutPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("malformed payout payload: %w", err)
		}
		return a.srv.Payouts.Retry(ctx, p.CreatorID, p.AmountMinor)
	})
	a.queue.Register(domain.OperationTierRecalculation, func(ctx context.Context, payload []byte) error {
		var p failover.TierRecalcPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("malformed tier recalculation payload: %w", err)
		}
		_, err := a.srv.Fees.FeeInfoFor(ctx, p.CreatorID)
		return err
	})
}

func (a *Application) buildScheduler(pool *pgxpool.Pool) (*scheduler.Scheduler, error) {
	return scheduler.New(pg.NewJobLock(pool), []scheduler.Job{
		{
			Name: scheduler.TaskTierRecalculation,
			Spec: "10 0 1 * *",
			Run: func(ctx context.Context) error {
				_, err := a.srv.Fees.RecalculateAll(ctx)
				return err
			},
		},
		{
			Name: scheduler.TaskBatchPayout,
			Spec: "0 2 * * *",
			Run: func(ctx context.Context) error {
				_, err := a.srv.Payouts.BatchProcess(ctx, a.cfg.PayoutMinThreshold)
				return err
			},
		},
		{
			Name: scheduler.TaskReconciliation,
			Spec: "0 3 * * 0",
			Run: func(ctx context.Context) error {
				report, err := a.srv.Reconcile.SelfAudit(ctx)
				if err != nil {
					return err
				}
				if len(report.Discrepancies) > 0 {
					zap.L().Warn("ledger reconciliation found discrepancies",
						zap.Int("count", len(report.Discrepancies)))
				}
				payoutReport, err := a.srv.Reconcile.AuditPayouts(ctx)
				if err != nil {
					return err
				}
				if len(payoutReport.Discrepancies) > 0 {
					zap.L().Warn("payout reconciliation found discrepancies",
						zap.Int("count", len(payoutReport.Discrepancies)))
				}
				return nil
			},
		},
		{
			Name: scheduler.TaskFailoverDrain,
			Spec: "*/5 * * * *",
			Run: func(ctx context.Context) error {
				_, err := a.queue.Drain(ctx)
				return err
			},
		},
	})
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
