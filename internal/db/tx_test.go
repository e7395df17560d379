package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/grapple/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func insertUser(ctx context.Context, tx db.DBTX, id, username string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO users (id, username, created_at, updated_at) VALUES (?, ?, '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`,
		id, username)
	return err
}

func userCount(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n))
	return n
}

func TestWithinTx_CommitsBothWrites(t *testing.T) {
	database := openTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertUser(ctx, tx, "u1", "minji"); err != nil {
			return err
		}
		return insertUser(ctx, tx, "u2", "jun")
	})
	require.NoError(t, err)
	assert.Equal(t, 2, userCount(t, database))
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	database := openTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		require.NoError(t, insertUser(ctx, tx, "u1", "minji"))
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Zero(t, userCount(t, database))
}

func TestWithinTx_RollsBackOnConstraintViolation(t *testing.T) {
	database := openTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertUser(ctx, tx, "u1", "minji"); err != nil {
			return err
		}
		// same username violates UNIQUE
		return insertUser(ctx, tx, "u2", "minji")
	})
	require.Error(t, err)
	assert.Zero(t, userCount(t, database))
}

func TestWithinTx_RollsBackOnPanic(t *testing.T) {
	database := openTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)

	assert.PanicsWithValue(t, "boom", func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertUser(ctx, tx, "u1", "minji")
			panic("boom")
		})
	})
	assert.Zero(t, userCount(t, database))

	// the connection is usable again after the panic
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertUser(ctx, tx, "u1", "minji")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, userCount(t, database))
}

func TestWithinTx_CancelledContext(t *testing.T) {
	uow := db.NewSQLiteUnitOfWork(openTestDB(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := uow.WithinTx(ctx, func(context.Context, db.DBTX) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
}
