package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hay-kot/practica/internal/core/challenge"
	"github.com/hay-kot/practica/internal/core/practice"
)

// EntryLog is an append-only CSV log of practice entries.
type EntryLog struct {
	path string
}

// NewEntryLog creates a practice log at the given path.
func NewEntryLog(path string) *EntryLog {
	return &EntryLog{path: path}
}

// Path returns the CSV location.
func (l *EntryLog) Path() string { return l.path }

// Exists reports whether the log file has been created.
func (l *EntryLog) Exists() bool {
	_, err := os.Stat(l.path)
	return err == nil
}

// Append adds one row, creating the file with its header first when needed.
func (l *EntryLog) Append(e practice.Entry) error {
	if err := l.ensure(); err != nil {
		return err
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open practice log: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(e.Row()); err != nil {
		return fmt.Errorf("append practice entry: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("append practice entry: %w", err)
	}
	return nil
}

// Read returns every entry in file order. A missing log is empty.
func (l *EntryLog) Read() ([]practice.Entry, error) {
	header, rows, err := readRows(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []practice.Entry{}, nil
		}
		return nil, &challenge.ParseError{Path: l.path, Err: err}
	}

	entries := make([]practice.Entry, 0, len(rows))
	for i, row := range rows {
		m := rowMap(header, row)
		get := func(key string) string {
			s, _ := m[key].(string)
			return s
		}

		duration := 0
		if raw := strings.TrimSpace(get("duration_minutes")); raw != "" {
			duration, err = strconv.Atoi(raw)
			if err != nil {
				return nil, &challenge.ParseError{
					Path: l.path,
					Line: i + 1,
					Err:  &challenge.ValidationError{Field: "duration_minutes", Value: raw, Reason: "expected integer"},
				}
			}
		}

		entries = append(entries, practice.Entry{
			ID:              get("id"),
			Date:            get("date"),
			Time:            get("time"),
			Description:     get("description"),
			Tags:            get("tags"),
			DurationMinutes: duration,
		})
	}

	return entries, nil
}

func (l *EntryLog) ensure() error {
	if l.Exists() {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create practice log dir: %w", err)
	}

	f, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("create practice log: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(practice.Columns()); err != nil {
		return fmt.Errorf("write practice log header: %w", err)
	}
	w.Flush()
	return w.Error()
}
