package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the statement surface shared by the pool and a transaction.
// Store functions accept it so they run the same way inside WithTx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Tx interface {
	Querier
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type DB interface {
	Querier
	Begin(ctx context.Context) (Tx, error)
	Ping(context.Context) error
	Close()
}

// PgxDB adapts *pgxpool.Pool to DB.
type PgxDB struct {
	*pgxpool.Pool
}

// Begin acquires a pooled connection and starts a transaction on it.
// The connection goes back to the pool on Commit or Rollback.
func (p *PgxDB) Begin(ctx context.Context) (Tx, error) {
	return p.Pool.Begin(ctx)
}

type FakeDB struct {
	ExecFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	BeginFn    func(ctx context.Context) (Tx, error)
	PingFn     func(ctx context.Context) error
	CloseFn    func()
}

func (f *FakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.ExecFn != nil {
		return f.ExecFn(ctx, sql, args...)
	}
	panic("unexpected Exec")
}

func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.QueryFn != nil {
		return f.QueryFn(ctx, sql, args...)
	}
	panic("unexpected Query")
}

func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.QueryRowFn != nil {
		return f.QueryRowFn(ctx, sql, args...)
	}
	panic("unexpected QueryRow")
}

func (f *FakeDB) Begin(ctx context.Context) (Tx, error) {
	if f.BeginFn != nil {
		return f.BeginFn(ctx)
	}
	panic("unexpected Begin")
}

func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

func (f *FakeDB) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}

// FakeTx records whether it was committed or rolled back.
// Statement methods panic unless the matching Fn is set.
type FakeTx struct {
	ExecFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	CommitErr  error

	Committed  bool
	RolledBack bool
}

func (f *FakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.ExecFn != nil {
		return f.ExecFn(ctx, sql, args...)
	}
	panic("unexpected Exec")
}

func (f *FakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.QueryFn != nil {
		return f.QueryFn(ctx, sql, args...)
	}
	panic("unexpected Query")
}

func (f *FakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.QueryRowFn != nil {
		return f.QueryRowFn(ctx, sql, args...)
	}
	panic("unexpected QueryRow")
}

func (f *FakeTx) Commit(ctx context.Context) error {
	if f.CommitErr != nil {
		return f.CommitErr
	}
	f.Committed = true
	return nil
}

func (f *FakeTx) Rollback(ctx context.Context) error {
	if f.Committed {
		return pgx.ErrTxClosed
	}
	f.RolledBack = true
	return nil
}

// NewFakeDB returns a FakeDB whose Begin always hands out tx.
func NewFakeDB(tx *FakeTx) *FakeDB {
	return &FakeDB{BeginFn: func(context.Context) (Tx, error) { return tx, nil }}
}
