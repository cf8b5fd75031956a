package pg

import (
	"context"
	"hash/fnv"

	"github.com/jackc/pgx/v5/pgxpool"
)

// JobLock single-flights scheduled jobs across horizontally-scaled
// instances with Postgres advisory locks keyed by job name. The lock is
// session scoped, so the acquired connection is held until release.
type JobLock struct {
	pool *pgxpool.Pool
}

func NewJobLock(pool *pgxpool.Pool) *JobLock {
	return &JobLock{pool: pool}
}

func (l *JobLock) TryLock(ctx context.Context, name string) (release func(), ok bool, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, false, err
	}

	key := lockKey(name)
	row := conn.QueryRow(ctx, `SELECT pg_try_advisory_lock($1)`, key)
	if err := row.Scan(&ok); err != nil {
		conn.Release()
		return nil, false, err
	}
	if !ok {
		conn.Release()
		return nil, false, nil
	}

	release = func() {
		_, _ = conn.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, key)
		conn.Release()
	}
	return release, true, nil
}

func lockKey(name string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return int64(h.Sum64())
}
