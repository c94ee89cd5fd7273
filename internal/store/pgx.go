package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/trace"
)

// PgxClient implements Client directly on a pgx connection pool.
type PgxClient struct {
	pool   *pgxpool.Pool
	tracer trace.Tracer
}

func NewPgxClient(pool *pgxpool.Pool, opts ...Option) *PgxClient {
	o := buildOptions(opts)
	return &PgxClient{
		pool:   pool,
		tracer: o.tracerProvider.Tracer(tracerName),
	}
}

func (c *PgxClient) ExecTx(ctx context.Context, stmt Statement) (affected int64, err error) {
	ctx, span := startSpan(ctx, c.tracer, "store.ExecTx", "postgresql", stmt)
	defer func() { endSpan(span, err) }()

	err = pgx.BeginTxFunc(ctx, c.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, stmt.SQL, pgx.NamedArgs(stmt.Params))
		if err != nil {
			return err
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("exec: %w", err)
	}
	return affected, nil
}

func (c *PgxClient) Query(ctx context.Context, stmt Statement) (out []MenuRow, err error) {
	ctx, span := startSpan(ctx, c.tracer, "store.Query", "postgresql", stmt)
	defer func() { endSpan(span, err) }()

	rows, err := c.pool.Query(ctx, stmt.SQL, pgx.NamedArgs(stmt.Params))
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	out, err = pgx.CollectRows(rows, pgx.RowToStructByName[MenuRow])
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return out, nil
}

func (c *PgxClient) Ping(ctx context.Context) error {
	if err := c.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}
