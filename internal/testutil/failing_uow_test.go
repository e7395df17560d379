package testutil

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/grapple/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecFaultUoW_FailsNthWriteAndRollsBack(t *testing.T) {
	database := NewTestDB(t)
	injected := errors.New("injected")
	uow := NewExecFaultUoW(database, 2, injected)

	insert := func(ctx context.Context, tx db.DBTX, id string) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO users (id, username, created_at, updated_at) VALUES (?, ?, '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`,
			id, "user-"+id)
		return err
	}

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		var n int
		// reads are not counted
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
			return err
		}
		if err := insert(ctx, tx, "a"); err != nil {
			return err
		}
		return insert(ctx, tx, "b")
	})
	require.ErrorIs(t, err, injected)
	assert.Equal(t, 2, uow.Execs())

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count))
	assert.Zero(t, count)
}

func TestExecFaultUoW_CountResetsPerTransaction(t *testing.T) {
	uow := NewExecFaultUoW(NewTestDB(t), 5, errors.New("never"))

	for i := 0; i < 2; i++ {
		err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, err := tx.ExecContext(ctx, `DELETE FROM users`)
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, 1, uow.Execs())
	}
}
