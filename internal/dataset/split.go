package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const DefaultSplitMaxBytes int64 = 95 * 1024 * 1024

// Splitter cuts a CSV file into parts no larger than MaxBytes so each fits
// under a storage upload limit. Every part repeats the header. A single row
// larger than the limit gets a part of its own.
type Splitter struct {
	MaxBytes int64
	OutDir   string
}

// Split writes <name>_part<N>.csv files into OutDir (default <dir>/<name>_split)
// and returns their paths in order.
func (s Splitter) Split(path string) ([]string, error) {
	maxBytes := s.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultSplitMaxBytes
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outDir := s.OutDir
	if outDir == "" {
		outDir = filepath.Join(filepath.Dir(path), base+"_split")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyCSV
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], string(utf8BOM))
	}
	headerBytes, err := encodeRecord(header)
	if err != nil {
		return nil, err
	}

	var (
		parts []string
		out   *os.File
		size  int64
		rows  int
	)
	closeOut := func() error {
		if out == nil {
			return nil
		}
		err := out.Close()
		out = nil
		return err
	}
	openPart := func() error {
		if err := closeOut(); err != nil {
			return err
		}
		p := filepath.Join(outDir, fmt.Sprintf("%s_part%d.csv", base, len(parts)+1))
		f, err := os.Create(p)
		if err != nil {
			return err
		}
		if _, err := f.Write(headerBytes); err != nil {
			_ = f.Close()
			return err
		}
		out, size, rows = f, int64(len(headerBytes)), 0
		parts = append(parts, p)
		return nil
	}
	defer func() { _ = closeOut() }()

	if err := openPart(); err != nil {
		return nil, err
	}
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		b, err := encodeRecord(rec)
		if err != nil {
			return nil, err
		}
		if rows > 0 && size+int64(len(b)) > maxBytes {
			if err := openPart(); err != nil {
				return nil, err
			}
		}
		if _, err := out.Write(b); err != nil {
			return nil, err
		}
		size += int64(len(b))
		rows++
	}

	if err := closeOut(); err != nil {
		return nil, err
	}
	return parts, nil
}

func encodeRecord(rec []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(rec); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
