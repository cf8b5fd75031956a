package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeLease struct {
	held    map[string]bool
	locked  []string
	failErr error
}

func (l *fakeLease) TryLock(ctx context.Context, name string) (func(), bool, error) {
	if l.failErr != nil {
		return nil, false, l.failErr
	}
	if l.held[name] {
		return nil, false, nil
	}
	l.locked = append(l.locked, name)
	return func() {}, true, nil
}

func TestNew(t *testing.T) {
	t.Run("Duplicate job names are rejected", func(t *testing.T) {
		_, err := New(&fakeLease{}, []Job{
			{Name: "drain", Spec: "* * * * *", Run: func(ctx context.Context) error { return nil }},
			{Name: "drain", Spec: "* * * * *", Run: func(ctx context.Context) error { return nil }},
		})
		assert.Error(t, err)
	})

	t.Run("Invalid cron spec is rejected", func(t *testing.T) {
		_, err := New(&fakeLease{}, []Job{
			{Name: "drain", Spec: "not a spec", Run: func(ctx context.Context) error { return nil }},
		})
		assert.Error(t, err)
	})
}

func TestExecuteTask(t *testing.T) {
	lease := &fakeLease{}
	ran := false
	s, err := New(lease, []Job{
		{Name: TaskFailoverDrain, Spec: "*/5 * * * *", Run: func(ctx context.Context) error {
			ran = true
			return nil
		}},
	})
	assert.NoError(t, err)

	t.Run("Unknown task name", func(t *testing.T) {
		err := s.ExecuteTask(context.Background(), "vacuum_the_moon")
		assert.ErrorIs(t, err, ErrUnknownTask)
	})

	t.Run("Known task runs under the lease", func(t *testing.T) {
		err := s.ExecuteTask(context.Background(), TaskFailoverDrain)
		assert.NoError(t, err)
		assert.True(t, ran)
		assert.Equal(t, []string{TaskFailoverDrain}, lease.locked)
	})

	t.Run("Job error propagates", func(t *testing.T) {
		boom := errors.New("boom")
		s, err := New(&fakeLease{}, []Job{
			{Name: "failing", Spec: "* * * * *", Run: func(ctx context.Context) error { return boom }},
		})
		assert.NoError(t, err)
		assert.ErrorIs(t, s.ExecuteTask(context.Background(), "failing"), boom)
	})
}

func TestLeaseGating(t *testing.T) {
	t.Run("Held lease skips the run without error", func(t *testing.T) {
		ran := false
		s, err := New(&fakeLease{held: map[string]bool{"drain": true}}, []Job{
			{Name: "drain", Spec: "* * * * *", Run: func(ctx context.Context) error {
				ran = true
				return nil
			}},
		})
		assert.NoError(t, err)
		assert.NoError(t, s.ExecuteTask(context.Background(), "drain"))
		assert.False(t, ran)
	})

	t.Run("Lease failure surfaces", func(t *testing.T) {
		s, err := New(&fakeLease{failErr: errors.New("no conn")}, []Job{
			{Name: "drain", Spec: "* * * * *", Run: func(ctx context.Context) error { return nil }},
		})
		assert.NoError(t, err)
		assert.Error(t, s.ExecuteTask(context.Background(), "drain"))
	})
}

func TestTaskNames(t *testing.T) {
	s, err := New(&fakeLease{}, []Job{
		{Name: TaskTierRecalculation, Spec: "10 0 1 * *", Run: func(ctx context.Context) error { return nil }},
		{Name: TaskBatchPayout, Spec: "0 2 * * *", Run: func(ctx context.Context) error { return nil }},
		{Name: TaskReconciliation, Spec: "0 3 * * 0", Run: func(ctx context.Context) error { return nil }},
		{Name: TaskFailoverDrain, Spec: "*/5 * * * *", Run: func(ctx context.Context) error { return nil }},
	})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{
		TaskTierRecalculation, TaskBatchPayout, TaskReconciliation, TaskFailoverDrain,
	}, s.TaskNames())
}
