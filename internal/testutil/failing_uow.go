package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/alexanderramin/grapple/internal/db"
)

// ExecFaultUoW is a unit of work whose Nth write fails with Err. Writes are
// ExecContext calls counted from 1 across one transaction; reads pass
// through. Use it to check that multi-write use cases roll back cleanly.
type ExecFaultUoW struct {
	inner  *db.SQLiteUnitOfWork
	failAt int32
	err    error
	execs  atomic.Int32
}

func NewExecFaultUoW(database *sql.DB, failAt int, err error) *ExecFaultUoW {
	return &ExecFaultUoW{
		inner:  db.NewSQLiteUnitOfWork(database),
		failAt: int32(failAt),
		err:    err,
	}
}

// Execs reports how many writes the last transaction attempted, including
// the injected failure.
func (u *ExecFaultUoW) Execs() int { return int(u.execs.Load()) }

func (u *ExecFaultUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	u.execs.Store(0)
	return u.inner.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &faultyTx{DBTX: tx, uow: u})
	})
}

type faultyTx struct {
	db.DBTX
	uow *ExecFaultUoW
}

func (f *faultyTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.uow.execs.Add(1) == f.uow.failAt {
		return nil, f.uow.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
