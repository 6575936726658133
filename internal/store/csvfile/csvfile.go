// Package csvfile persists challenges and practice entries as CSV files with
// a header row.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// readRows opens path and returns the header plus every data row. Rows may be
// shorter or longer than the header. An empty file yields a nil header.
func readRows(path string) (header []string, rows [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err = r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}

// rowMap keys a row by header name. Fields missing from a short row are
// absent from the map; fields beyond the header are dropped.
func rowMap(header, row []string) map[string]any {
	m := make(map[string]any, len(header))
	for i, name := range header {
		if i >= len(row) {
			break
		}
		m[name] = row[i]
	}
	return m
}

func writeAll(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	return nil
}
