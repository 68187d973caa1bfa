package store

import (
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作 ---------- */

// assign 將 vals 依序寫入 Scan 的目標指標
func assign(dest []any, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("scan: want %d dest, got %d", len(vals), len(dest))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int:
			*p = vals[i].(int)
		case *string:
			*p = vals[i].(string)
		case *bool:
			*p = vals[i].(bool)
		default:
			panic(fmt.Sprintf("assign: unsupported dest %T", d))
		}
	}
	return nil
}

// fakeRow 實作 pgx.Row
type fakeRow struct {
	vals    []any
	scanErr error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	return assign(dest, r.vals)
}

// fakeRows 實作 pgx.Rows
type fakeRows struct {
	data    [][]any
	idx     int
	scanErr error
	err     error
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	vals := r.data[r.idx]
	r.idx++
	return assign(dest, vals)
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }
