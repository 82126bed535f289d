package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// stubSQL satisfies infra.SQLExecutor with per-call hooks. Unset hooks fail
// loudly so a test only exercises the paths it configured.
type stubSQL struct {
	exec     func(sql string, args []any) (pgconn.CommandTag, error)
	queryRow func(sql string, args []any) pgx.Row
	query    func(sql string, args []any) (pgx.Rows, error)
}

func (s *stubSQL) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if s.exec == nil {
		return pgconn.CommandTag{}, fmt.Errorf("unexpected Exec: %q", sql)
	}
	return s.exec(sql, args)
}

func (s *stubSQL) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if s.queryRow == nil {
		return stubRow{scan: func(...any) error { return fmt.Errorf("unexpected QueryRow: %q", sql) }}
	}
	return s.queryRow(sql, args)
}

func (s *stubSQL) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if s.query == nil {
		return nil, fmt.Errorf("unexpected Query: %q", sql)
	}
	return s.query(sql, args)
}

// stubRow satisfies pgx.Row. A nil scan func behaves like an empty result.
type stubRow struct {
	scan func(dest ...any) error
}

func (r stubRow) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

// rowsBase fills in the pgx.Rows methods repository code never calls.
type rowsBase struct{}

func (rowsBase) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (rowsBase) Conn() *pgx.Conn                              { return nil }
func (rowsBase) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (rowsBase) RawValues() [][]byte                          { return nil }
func (rowsBase) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in stub rows")
}

// stubRows feeds a fixed sequence of scan closures to rows.Next/rows.Scan.
type stubRows struct {
	rowsBase
	scans []func(dest ...any) error
	idx   int
	err   error
}

func (r *stubRows) Next() bool {
	if r.idx < len(r.scans) {
		r.idx++
		return true
	}
	return false
}

func (r *stubRows) Scan(dest ...any) error { return r.scans[r.idx-1](dest...) }
func (r *stubRows) Close()                 {}
func (r *stubRows) Err() error             { return r.err }
