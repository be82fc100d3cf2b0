package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"skill-roadmap/internal/database"
)

var ErrNoTableName = errors.New("no table name configured")

// SQLSource reads whole tables from a relational database. Every value is
// read as nullable text so the CSV and SQL paths share one representation.
type SQLSource struct {
	db database.DB
}

func NewSQLSource(db database.DB) *SQLSource {
	return &SQLSource{db: db}
}

func (s *SQLSource) ReadTable(ctx context.Context, spec TableSpec) (Table, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return Table{}, ErrNoTableName
	}

	rows, err := s.db.Query(ctx, "SELECT * FROM "+quoteIdent(name))
	if err != nil {
		return Table{}, fmt.Errorf("source %q: %w", name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return Table{}, fmt.Errorf("source %q: columns: %w", name, err)
	}

	table := Table{Name: name, Header: cols}
	vals := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range vals {
		dest[i] = &vals[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return Table{}, fmt.Errorf("source %q: scan: %w", name, err)
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			if v.Valid {
				row[i] = v.String
			}
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return Table{}, fmt.Errorf("source %q: %w", name, err)
	}

	return table, nil
}

// quoteIdent quotes each dot-separated part of a possibly schema-qualified name.
func quoteIdent(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = `"` + strings.ReplaceAll(p, `"`, `""`) + `"`
	}
	return strings.Join(parts, ".")
}
