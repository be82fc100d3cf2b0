package database

import "context"

// DB is the subset of a relational database the dataset tables need: whole
// table reads and transactional table replacement.
type DB interface {
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	Begin(ctx context.Context) (Tx, error)

	// Placeholder returns the bind parameter for the n-th argument, starting at 1.
	Placeholder(n int) string
}

type Tx interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Rows interface {
	Close()
	Next() bool
	Columns() ([]string, error)
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
