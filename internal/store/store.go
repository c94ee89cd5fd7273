// Package store is the narrow contract the menu service has with its
// database: one parameterized statement per transaction, parameterized
// reads of menu rows, and a readiness ping.
package store

import (
	"context"
	_ "embed"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/MosaabBleik/menu-service/internal/store"

// Statement is SQL with @name placeholders bound from Params.
type Statement struct {
	SQL    string
	Params map[string]any
}

// MenuRow is a row of the menu table, scanned by column name.
type MenuRow struct {
	ID          string          `gorm:"column:id" db:"id"`
	Name        string          `gorm:"column:name" db:"name"`
	Description string          `gorm:"column:description" db:"description"`
	Price       decimal.Decimal `gorm:"column:price" db:"price"`
	Available   bool            `gorm:"column:available" db:"available"`
	CreatedAt   time.Time       `gorm:"column:created_at" db:"created_at"`
}

type Client interface {
	// ExecTx runs stmt in its own transaction and commits it. It returns
	// the number of rows the statement affected.
	ExecTx(ctx context.Context, stmt Statement) (int64, error)
	// Query runs a read whose result columns are those of MenuRow.
	Query(ctx context.Context, stmt Statement) ([]MenuRow, error)
	Ping(ctx context.Context) error
}

// schemaSQL leaves created_at to the database: the row gets the
// timestamp of the transaction that inserted it.
//
//go:embed schema.sql
var schemaSQL string

// EnsureSchema creates the menu table when it does not exist yet.
func EnsureSchema(ctx context.Context, c Client) error {
	_, err := c.ExecTx(ctx, Statement{SQL: schemaSQL})
	return err
}

type Option func(*options)

type options struct {
	tracerProvider trace.TracerProvider
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

func buildOptions(opts []Option) options {
	o := options{tracerProvider: otel.GetTracerProvider()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
