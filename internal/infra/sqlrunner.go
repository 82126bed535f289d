package infra

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Every inline statement starts with an audit marker line of the form
// "--sql <uuid>". The runner refuses statements without one.
var markerRegexp = regexp.MustCompile(`^--sql ([0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12})\s*\n`)

var errMissingMarker = errors.New("sql statement missing audit marker")

// SQLExecutor is the narrow query surface repositories depend on.
type SQLExecutor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// SQLRunner executes marker-tagged statements against a pgx pool and logs
// each execution under its marker rather than the raw SQL text.
type SQLRunner struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

var _ SQLExecutor = (*SQLRunner)(nil)

func NewSQLRunner(pool *pgxpool.Pool, log zerolog.Logger) *SQLRunner {
	return &SQLRunner{pool: pool, log: log}
}

// extractMarker splits a tagged statement into its marker and the bare SQL.
func extractMarker(sql string) (marker string, rest string, ok bool) {
	m := markerRegexp.FindStringSubmatch(sql)
	if m == nil {
		return "", sql, false
	}
	return m[1], strings.TrimPrefix(sql, m[0]), true
}

func (r *SQLRunner) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	marker, clean, ok := extractMarker(sql)
	if !ok {
		r.log.Error().Msg("exec rejected: missing sql marker")
		return pgconn.CommandTag{}, errMissingMarker
	}

	tag, err := r.pool.Exec(ctx, clean, args...)
	if err != nil {
		r.log.Error().Err(err).Str("sql", marker).Msg("exec failed")
		return tag, err
	}

	r.log.Debug().Str("sql", marker).Int64("rows", tag.RowsAffected()).Msg("exec")
	return tag, nil
}

func (r *SQLRunner) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	marker, clean, ok := extractMarker(sql)
	if !ok {
		r.log.Error().Msg("query row rejected: missing sql marker")
		return errorRow{err: errMissingMarker}
	}

	r.log.Debug().Str("sql", marker).Msg("query row")
	return loggingRow{row: r.pool.QueryRow(ctx, clean, args...), log: r.log, marker: marker}
}

func (r *SQLRunner) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	marker, clean, ok := extractMarker(sql)
	if !ok {
		r.log.Error().Msg("query rejected: missing sql marker")
		return nil, errMissingMarker
	}

	rows, err := r.pool.Query(ctx, clean, args...)
	if err != nil {
		r.log.Error().Err(err).Str("sql", marker).Msg("query failed")
		return nil, err
	}

	r.log.Debug().Str("sql", marker).Msg("query")
	return loggingRows{Rows: rows, log: r.log, marker: marker}, nil
}

// errorRow satisfies pgx.Row for statements rejected before reaching the pool.
type errorRow struct {
	err error
}

func (r errorRow) Scan(dest ...any) error { return r.err }

// loggingRow reports scan failures under the statement marker. ErrNoRows is
// an expected outcome and stays quiet.
type loggingRow struct {
	row    pgx.Row
	log    zerolog.Logger
	marker string
}

func (r loggingRow) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		r.log.Error().Err(err).Str("sql", r.marker).Msg("row scan failed")
	}
	return err
}

// loggingRows surfaces iteration errors when the cursor is closed.
type loggingRows struct {
	pgx.Rows
	log    zerolog.Logger
	marker string
}

func (r loggingRows) Close() {
	r.Rows.Close()
	if err := r.Rows.Err(); err != nil {
		r.log.Error().Err(err).Str("sql", r.marker).Msg("rows iteration failed")
	}
}
