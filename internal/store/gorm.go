package store

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// GormClient implements Client on top of a *gorm.DB. It works with any
// gorm dialector whose driver understands the statements it is given.
type GormClient struct {
	db     *gorm.DB
	tracer trace.Tracer
	system string
}

func NewGormClient(db *gorm.DB, opts ...Option) *GormClient {
	o := buildOptions(opts)
	return &GormClient{
		db:     db,
		tracer: o.tracerProvider.Tracer(tracerName),
		system: db.Dialector.Name(),
	}
}

func (c *GormClient) ExecTx(ctx context.Context, stmt Statement) (affected int64, err error) {
	ctx, span := startSpan(ctx, c.tracer, "store.ExecTx", c.system, stmt)
	defer func() { endSpan(span, err) }()

	err = c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(stmt.SQL, gormArgs(stmt.Params)...)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("exec: %w", err)
	}
	return affected, nil
}

func (c *GormClient) Query(ctx context.Context, stmt Statement) (out []MenuRow, err error) {
	ctx, span := startSpan(ctx, c.tracer, "store.Query", c.system, stmt)
	defer func() { endSpan(span, err) }()

	out = []MenuRow{}
	if err := c.db.WithContext(ctx).Raw(stmt.SQL, gormArgs(stmt.Params)...).Scan(&out).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return out, nil
}

func (c *GormClient) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// gormArgs passes named parameters as the single map argument gorm
// expects for @name placeholders. Without parameters nothing is passed,
// since gorm appends unused arguments to the statement.
func gormArgs(params map[string]any) []any {
	if len(params) == 0 {
		return nil
	}
	return []any{params}
}
