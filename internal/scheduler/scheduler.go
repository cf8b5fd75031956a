package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Task names are the public identifiers used by ExecuteTask and by the
// admin API.
const (
	TaskTierRecalculation = "tier_recalculation"
	TaskBatchPayout       = "batch_payout"
	TaskReconciliation    = "reconciliation"
	TaskFailoverDrain     = "failover_drain"
)

var ErrUnknownTask = errors.New("unknown scheduled task")

// Lease single-flights a job across instances. The in-process overlap
// guard is handled separately by the cron SkipIfStillRunning chain.
type Lease interface {
	TryLock(ctx context.Context, name string) (release func(), ok bool, err error)
}

// Job is one named scheduled function. Run errors are logged and isolated;
// they never stop the other jobs.
type Job struct {
	Name string
	Spec string
	Run  func(ctx context.Context) error
}

type Scheduler struct {
	cron *cron.Cron
	jobs map[string]Job
	lease Lease

	mu      sync.Mutex
	started bool
}

func New(lease Lease, jobs []Job) (*Scheduler, error) {
	logger := &zapCronLogger{log: zap.L()}
	s := &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(logger),
			cron.SkipIfStillRunning(logger),
		)),
		jobs:  make(map[string]Job, len(jobs)),
		lease: lease,
	}

	for _, job := range jobs {
		job := job
		if _, exists := s.jobs[job.Name]; exists {
			return nil, fmt.Errorf("duplicate scheduled task %q", job.Name)
		}
		s.jobs[job.Name] = job

		_, err := s.cron.AddFunc(job.Spec, func() {
			s.runJob(context.Background(), job)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to schedule task %q: %w", job.Name, err)
		}
	}
	return s, nil
}

func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	s.cron.Start()
	zap.L().Info("scheduler started", zap.Int("jobs", len(s.jobs)))

	go func() {
		<-ctx.Done()
		stopCtx := s.cron.Stop()
		select {
		case <-stopCtx.Done():
		case <-time.After(30 * time.Second):
			zap.L().Warn("scheduler stop timed out with jobs still running")
		}
		zap.L().Info("scheduler stopped")
	}()
}

// ExecuteTask runs a named job on demand, through the same lease the
// scheduled trigger uses. Administrative tooling calls this directly.
func (s *Scheduler) ExecuteTask(ctx context.Context, name string) error {
	job, ok := s.jobs[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTask, name)
	}
	return s.runJob(ctx, job)
}

// TaskNames lists the registered jobs in no particular order.
func (s *Scheduler) TaskNames() []string {
	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	return names
}

func (s *Scheduler) runJob(ctx context.Context, job Job) error {
	release, ok, err := s.lease.TryLock(ctx, job.Name)
	if err != nil {
		zap.L().Error("failed to acquire job lease", zap.String("job", job.Name), zap.Error(err))
		return err
	}
	if !ok {
		zap.L().Info("job lease held elsewhere, skipping run", zap.String("job", job.Name))
		return nil
	}
	defer release()

	start := time.Now()
	zap.L().Info("scheduled task starting", zap.String("job", job.Name))

	if err := job.Run(ctx); err != nil {
		zap.L().Error("scheduled task failed",
			zap.String("job", job.Name),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return err
	}

	zap.L().Info("scheduled task finished",
		zap.String("job", job.Name),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

type zapCronLogger struct {
	log *zap.Logger
}

func (l *zapCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Sugar().Infow(msg, keysAndValues...)
}

func (l *zapCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
