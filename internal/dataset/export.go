package dataset

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skill-roadmap/internal/database"
)

// maxBindArgs stays under the smallest bind parameter limit of the supported
// databases.
const maxBindArgs = 900

var ErrNoHeader = errors.New("table has no header")

// ExportTable replaces table t.Name in db with the content of t. All columns
// are TEXT and empty cells are stored as NULL.
func ExportTable(ctx context.Context, db database.DB, t Table) error {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return ErrNoTableName
	}
	if len(t.Header) == 0 {
		return fmt.Errorf("export %q: %w", name, ErrNoHeader)
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	cols := make([]string, 0, len(t.Header))
	defs := make([]string, 0, len(t.Header))
	for _, h := range t.Header {
		cols = append(cols, quoteIdent(h))
		defs = append(defs, quoteIdent(h)+" TEXT")
	}

	table := quoteIdent(name)
	if _, err := tx.Exec(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
		return fmt.Errorf("export %q: drop: %w", name, err)
	}
	if _, err := tx.Exec(ctx, "CREATE TABLE "+table+" ("+strings.Join(defs, ", ")+")"); err != nil {
		return fmt.Errorf("export %q: create: %w", name, err)
	}

	batch := maxBindArgs / len(cols)
	if batch < 1 {
		batch = 1
	}
	prefix := "INSERT INTO " + table + " (" + strings.Join(cols, ", ") + ") VALUES "

	for start := 0; start < len(t.Rows); start += batch {
		end := start + batch
		if end > len(t.Rows) {
			end = len(t.Rows)
		}

		var sb strings.Builder
		sb.WriteString(prefix)
		args := make([]any, 0, (end-start)*len(cols))
		for i, row := range t.Rows[start:end] {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteByte('(')
			for j := range cols {
				if j > 0 {
					sb.WriteString(", ")
				}
				args = append(args, nullable(cell(row, j)))
				sb.WriteString(db.Placeholder(len(args)))
			}
			sb.WriteByte(')')
		}

		if _, err := tx.Exec(ctx, sb.String(), args...); err != nil {
			return fmt.Errorf("export %q: insert: %w", name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	committed = true
	return nil
}

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}
