package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"skill-roadmap/internal/database"

	_ "modernc.org/sqlite"
)

var errNilDB = errors.New("sqlite: nil db")

type DB struct {
	db *sql.DB
}

// Open opens the sqlite file at path and verifies it answers a ping.
func Open(ctx context.Context, path string) (database.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("empty sqlite path")
	}

	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pingCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := sqldb.PingContext(pingCtx); err != nil {
		_ = sqldb.Close()
		return nil, err
	}

	return &DB{db: sqldb}, nil
}

func (d *DB) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

func (d *DB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if d == nil || d.db == nil {
		return 0, errNilDB
	}
	res, err := d.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (d *DB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	if d == nil || d.db == nil {
		return nil, errNilDB
	}
	r, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{rows: r}, nil
}

func (d *DB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return d.db.QueryRowContext(ctx, query, args...)
}

func (d *DB) Begin(ctx context.Context) (database.Tx, error) {
	if d == nil || d.db == nil {
		return nil, errNilDB
	}
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return sqlTx{tx: tx}, nil
}

func (d *DB) Placeholder(int) string {
	return "?"
}

type sqlTx struct {
	tx *sql.Tx
}

func (t sqlTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (t sqlTx) Commit(context.Context) error {
	return t.tx.Commit()
}

func (t sqlTx) Rollback(context.Context) error {
	return t.tx.Rollback()
}

type sqlRows struct {
	rows *sql.Rows
}

func (r sqlRows) Close() {
	_ = r.rows.Close()
}

func (r sqlRows) Next() bool {
	return r.rows.Next()
}

func (r sqlRows) Columns() ([]string, error) {
	return r.rows.Columns()
}

func (r sqlRows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r sqlRows) Err() error {
	return r.rows.Err()
}
