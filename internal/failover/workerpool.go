package failover

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Wait()
	Close()
}

type Task func() error

// WorkerPool runs retry attempts with bounded concurrency. Wait blocks
// until every task accepted so far has finished, which is what lets a drain
// cycle report accurate aggregate counts.
type WorkerPool struct {
	pool    chan Task
	pending sync.WaitGroup
	once    sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{pool: make(chan Task, size)}

	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Error("task execution failed", zap.Error(err))
		}
		wp.pending.Done()
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	wp.pending.Add(1)
	select {
	case <-ctx.Done():
		wp.pending.Done()
		return ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

func (wp *WorkerPool) Wait() {
	wp.pending.Wait()
}

func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		close(wp.pool)
	})
}
