package querier

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var QueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "db_query_duration_seconds",
		Help:    "Duration of database calls by kind and outcome",
		Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	},
	[]string{"kind", "outcome"},
)

// Querier runs statements on the transaction stored in ctx, or on the pool
// when there is none.
type Querier struct {
	pool   *pgxpool.Pool
	getter *pgxv5.CtxGetter
}

func New(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *Querier {
	return &Querier{
		pool:   pool,
		getter: getter,
	}
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	start := time.Now()
	tag, err := q.get(ctx).Exec(ctx, sql, args...)
	observe("exec", start, err)
	return tag, err
}

func (q *Querier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	start := time.Now()
	rows, err := q.get(ctx).Query(ctx, sql, args...)
	observe("query", start, err)
	return rows, err
}

// QueryRow errors surface on Scan, so only latency is recorded.
func (q *Querier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	start := time.Now()
	row := q.get(ctx).QueryRow(ctx, sql, args...)
	observe("query_row", start, nil)
	return row
}

func (q *Querier) get(ctx context.Context) pgxv5.Tr {
	return q.getter.DefaultTrOrDB(ctx, q.pool)
}

func observe(kind string, start time.Time, err error) {
	QueryDuration.WithLabelValues(kind, outcome(err)).Observe(time.Since(start).Seconds())
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
