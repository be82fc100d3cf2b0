package dataset

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	ErrNoLocations    = errors.New("no locations configured")
	ErrNoMatches      = errors.New("pattern matched no files")
	ErrEmptyCSV       = errors.New("csv has no header")
	ErrHeaderMismatch = errors.New("csv part header differs from first part")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVSource reads tables from local CSV files, globs of split parts, or
// http(s) URLs. A nil fetcher rejects remote locations.
type CSVSource struct {
	fetcher Fetcher
}

func NewCSVSource(fetcher Fetcher) *CSVSource {
	return &CSVSource{fetcher: fetcher}
}

func (s *CSVSource) ReadTable(ctx context.Context, spec TableSpec) (Table, error) {
	name := spec.label()
	if len(spec.Locations) == 0 {
		return Table{}, fmt.Errorf("source %q: %w", name, ErrNoLocations)
	}

	parts, err := expandLocations(spec.Locations)
	if err != nil {
		return Table{}, fmt.Errorf("source %q: %w", name, err)
	}

	table := Table{Name: name}
	for _, loc := range parts {
		if err := ctx.Err(); err != nil {
			return Table{}, err
		}

		header, rows, err := s.readPart(ctx, loc, false)
		if err != nil {
			return Table{}, fmt.Errorf("source %q: read %s: %w", name, loc, err)
		}

		if table.Header == nil {
			table.Header = header
		} else if !sameHeader(table.Header, header) {
			return Table{}, fmt.Errorf("source %q: %s: %w", name, loc, ErrHeaderMismatch)
		}
		table.Rows = append(table.Rows, rows...)
	}

	return table, nil
}

func (s *CSVSource) readPart(ctx context.Context, loc string, headerOnly bool) ([]string, [][]string, error) {
	if isRemote(loc) {
		if s.fetcher == nil {
			return nil, nil, &FetchError{URL: loc, Message: "remote locations are not enabled"}
		}
		b, err := s.fetcher.Fetch(ctx, loc)
		if err != nil {
			return nil, nil, err
		}
		return parseCSV(bytes.NewReader(b), headerOnly)
	}

	f, err := os.Open(loc)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return parseCSV(f, headerOnly)
}

// ReadHeader returns only the header of a CSV location.
func (s *CSVSource) ReadHeader(ctx context.Context, loc string) ([]string, error) {
	header, _, err := s.readPart(ctx, strings.TrimSpace(loc), true)
	return header, err
}

func parseCSV(r io.Reader, headerOnly bool) ([]string, [][]string, error) {
	br := bufio.NewReaderSize(r, 1<<16)
	if b, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(b, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrEmptyCSV
	}
	if err != nil {
		return nil, nil, err
	}
	if headerOnly {
		return header, nil, nil
	}

	var rows [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, fitWidth(rec, len(header)))
	}
	return header, rows, nil
}

func fitWidth(rec []string, width int) []string {
	if len(rec) == width {
		return rec
	}
	out := make([]string, width)
	copy(out, rec)
	return out
}

func sameHeader(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func expandLocations(locations []string) ([]string, error) {
	out := make([]string, 0, len(locations))
	for _, loc := range locations {
		loc = strings.TrimSpace(loc)
		if loc == "" {
			continue
		}
		if isRemote(loc) || !strings.ContainsAny(loc, "*?[") {
			out = append(out, loc)
			continue
		}

		matches, err := filepath.Glob(loc)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%s: %w", loc, ErrNoMatches)
		}
		sort.Slice(matches, func(i, j int) bool { return naturalLess(matches[i], matches[j]) })
		out = append(out, matches...)
	}
	if len(out) == 0 {
		return nil, ErrNoLocations
	}
	return out, nil
}

// naturalLess orders digit runs by numeric value so part2 sorts before part10.
func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		if isDigit(a[0]) && isDigit(b[0]) {
			na, ra := splitDigits(a)
			nb, rb := splitDigits(b)
			ta := strings.TrimLeft(na, "0")
			tb := strings.TrimLeft(nb, "0")
			if len(ta) != len(tb) {
				return len(ta) < len(tb)
			}
			if ta != tb {
				return ta < tb
			}
			a, b = ra, rb
			continue
		}
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		a, b = a[1:], b[1:]
	}
	return len(a) < len(b)
}

func splitDigits(s string) (string, string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
