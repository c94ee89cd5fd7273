package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MosaabBleik/menu-service/internal/store"
	"github.com/MosaabBleik/menu-service/internal/store/storetest"
)

const (
	insertSQL = `INSERT INTO menu (id, name, description, price, available)
VALUES (@id, @name, @description, @price, @available)`

	selectSQL = `SELECT id, name, description, price, available, created_at FROM menu`
)

func insertStmt(id string) store.Statement {
	return store.Statement{
		SQL: insertSQL,
		Params: map[string]any{
			"id":          id,
			"name":        "Flat White",
			"description": "Double ristretto, steamed milk",
			"price":       decimal.RequireFromString("4.5"),
			"available":   true,
		},
	}
}

func TestGormClient_InsertAndQuery(t *testing.T) {
	ctx := context.Background()
	client := storetest.New(t)

	before := time.Now().Add(-time.Second)
	affected, err := client.ExecTx(ctx, insertStmt("item-1"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	after := time.Now().Add(time.Second)

	rows, err := client.Query(ctx, store.Statement{
		SQL:    selectSQL + ` WHERE id = @id`,
		Params: map[string]any{"id": "item-1"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "item-1", row.ID)
	assert.Equal(t, "Flat White", row.Name)
	assert.Equal(t, "Double ristretto, steamed milk", row.Description)
	assert.True(t, row.Price.Equal(decimal.RequireFromString("4.5")), "price=%s", row.Price)
	assert.True(t, row.Available)
	assert.True(t, row.CreatedAt.After(before) && row.CreatedAt.Before(after),
		"created_at=%v not within [%v, %v]", row.CreatedAt, before, after)
}

func TestGormClient_UpdateWithoutMatchCommits(t *testing.T) {
	client := storetest.New(t)

	affected, err := client.ExecTx(context.Background(), store.Statement{
		SQL:    `UPDATE menu SET name = @name WHERE id = @id`,
		Params: map[string]any{"id": "missing", "name": "Mocha"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestGormClient_FailedStatementLeavesNoEffect(t *testing.T) {
	ctx := context.Background()
	client := storetest.New(t)

	_, err := client.ExecTx(ctx, insertStmt("dup"))
	require.NoError(t, err)

	_, err = client.ExecTx(ctx, insertStmt("dup"))
	require.Error(t, err)

	rows, err := client.Query(ctx, store.Statement{SQL: selectSQL})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestGormClient_QueryError(t *testing.T) {
	client := storetest.New(t)

	_, err := client.Query(context.Background(), store.Statement{SQL: `SELECT nope FROM missing_table`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query:")
}

func TestGormClient_QueryEmpty(t *testing.T) {
	client := storetest.New(t)

	rows, err := client.Query(context.Background(), store.Statement{SQL: selectSQL})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestGormClient_ScansZeroPriceAndFalse(t *testing.T) {
	ctx := context.Background()
	client := storetest.New(t)

	stmt := insertStmt("water")
	stmt.Params["price"] = decimal.Zero
	stmt.Params["available"] = false
	_, err := client.ExecTx(ctx, stmt)
	require.NoError(t, err)

	rows, err := client.Query(ctx, store.Statement{SQL: selectSQL})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Price.IsZero())
	assert.False(t, rows[0].Available)
}

func TestGormClient_Ping(t *testing.T) {
	client := storetest.New(t)
	require.NoError(t, client.Ping(context.Background()))
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	ctx := context.Background()
	client := store.NewGormClient(storetest.OpenDB(t))

	require.NoError(t, store.EnsureSchema(ctx, client))
	require.NoError(t, store.EnsureSchema(ctx, client))
}

func TestGormClient_OrdersByDatabaseCommitTime(t *testing.T) {
	ctx := context.Background()
	client := storetest.New(t)

	for _, id := range []string{"a", "b", "c"} {
		_, err := client.ExecTx(ctx, insertStmt(id))
		require.NoError(t, err)
		storetest.Tick()
	}

	rows, err := client.Query(ctx, store.Statement{SQL: selectSQL + ` ORDER BY created_at DESC`})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "c", rows[0].ID)
	assert.Equal(t, "b", rows[1].ID)
	assert.Equal(t, "a", rows[2].ID)
}
