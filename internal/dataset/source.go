package dataset

import "context"

// Source reads one table as raw rows. Required columns are checked later by
// the record projections, so a Source never needs to know the schema.
type Source interface {
	ReadTable(ctx context.Context, spec TableSpec) (Table, error)
}
