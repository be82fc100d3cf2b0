package dataset

import (
	"fmt"
	"strings"
)

const (
	ColumnPostingID = "job_link"
	ColumnSkills    = "job_skills"
	ColumnTitle     = "job_title"
	ColumnSummary   = "job_summary"
)

// Table is the raw content of one tabular source. Empty cells stand for
// missing values.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// TableSpec names a source table. Name is the table name for SQL sources and
// the label in error messages; Locations lists CSV parts in read order.
type TableSpec struct {
	Name      string
	Locations []string
}

func (s TableSpec) IsZero() bool {
	return strings.TrimSpace(s.Name) == "" && len(s.Locations) == 0
}

func (s TableSpec) label() string {
	if n := strings.TrimSpace(s.Name); n != "" {
		return n
	}
	return strings.Join(s.Locations, ",")
}

type MissingColumnError struct {
	Source string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("source %q is missing required column %q", e.Source, e.Column)
}

// RequireColumns returns the header index of every column, in argument order.
func (t Table) RequireColumns(columns ...string) ([]int, error) {
	idx := make([]int, 0, len(columns))
	for _, col := range columns {
		i := t.columnIndex(col)
		if i < 0 {
			return nil, &MissingColumnError{Source: t.Name, Column: col}
		}
		idx = append(idx, i)
	}
	return idx, nil
}

func (t Table) columnIndex(col string) int {
	for i, h := range t.Header {
		if h == col {
			return i
		}
	}
	return -1
}

type RawSkillRecord struct {
	PostingID string
	SkillText string
}

type PostingTitleRecord struct {
	PostingID string
	Title     string
}

type PostingSummaryRecord struct {
	PostingID string
	Summary   string
}

func SkillRecords(t Table) ([]RawSkillRecord, error) {
	out := make([]RawSkillRecord, 0, len(t.Rows))
	err := project(t, ColumnSkills, func(id, v string) {
		out = append(out, RawSkillRecord{PostingID: id, SkillText: v})
	})
	return out, err
}

func TitleRecords(t Table) ([]PostingTitleRecord, error) {
	out := make([]PostingTitleRecord, 0, len(t.Rows))
	err := project(t, ColumnTitle, func(id, v string) {
		out = append(out, PostingTitleRecord{PostingID: id, Title: v})
	})
	return out, err
}

func SummaryRecords(t Table) ([]PostingSummaryRecord, error) {
	out := make([]PostingSummaryRecord, 0, len(t.Rows))
	err := project(t, ColumnSummary, func(id, v string) {
		out = append(out, PostingSummaryRecord{PostingID: id, Summary: v})
	})
	return out, err
}

// project calls fn with the posting id and value column of every row that has
// a posting id.
func project(t Table, valueColumn string, fn func(id, value string)) error {
	idx, err := t.RequireColumns(ColumnPostingID, valueColumn)
	if err != nil {
		return err
	}
	for _, row := range t.Rows {
		id := cell(row, idx[0])
		if id == "" {
			continue
		}
		fn(id, cell(row, idx[1]))
	}
	return nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
