// Package jsonfile persists challenge collections as an indented JSON
// document. It is the authoritative store; see csvfile for the tabular export.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hay-kot/practica/internal/core/challenge"
	"github.com/hay-kot/practica/pkg/utils"
)

// ChallengeStore reads and writes a challenge collection at a fixed path.
type ChallengeStore struct {
	path string
}

// NewChallengeStore creates a JSON document store at the given path.
func NewChallengeStore(path string) *ChallengeStore {
	return &ChallengeStore{path: path}
}

// Path returns the document location.
func (s *ChallengeStore) Path() string { return s.path }

// Load reads the whole collection. See Load.
func (s *ChallengeStore) Load() (challenge.Collection, error) {
	return Load(s.path)
}

// Save replaces the document with records. See Save.
func (s *ChallengeStore) Save(records []*challenge.Challenge) error {
	return Save(s.path, records)
}

// Save writes records as a JSON array of {date, description, status}
// objects, indented by two spaces, with non-ASCII and HTML characters left
// unescaped. Existing content is replaced atomically.
func Save(path string, records []*challenge.Challenge) error {
	docs := make([]challenge.Persisted, 0, len(records))
	for _, ch := range records {
		if err := ch.Validate(); err != nil {
			return fmt.Errorf("save %s: %w", ch.Date(), err)
		}
		docs = append(docs, ch.ToPersistable())
	}

	err := utils.WriteFileAtomic(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	})
	if err != nil {
		return fmt.Errorf("write challenges document: %w", err)
	}
	return nil
}

// Load reads the document at path. A missing file yields a
// *challenge.NotFoundError; malformed JSON, a non-object element or an
// element that fails reconstruction yields a *challenge.ParseError. No
// partial collection is returned on error.
func Load(path string) (challenge.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &challenge.NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("open challenges document: %w", err)
	}
	defer func() { _ = f.Close() }()

	var raw any
	dec := json.NewDecoder(f)
	if err := dec.Decode(&raw); err != nil {
		return nil, &challenge.ParseError{Path: path, Err: err}
	}
	if dec.More() {
		return nil, &challenge.ParseError{Path: path, Err: errors.New("unexpected data after top-level array")}
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, &challenge.ParseError{Path: path, Err: fmt.Errorf("expected array of objects, got %s", jsonKind(raw))}
	}

	records := make(challenge.Collection, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &challenge.ParseError{Path: path, Line: i + 1, Err: fmt.Errorf("expected object, got %s", jsonKind(item))}
		}

		ch, err := challenge.FromPersistable(obj)
		if err != nil {
			return nil, &challenge.ParseError{Path: path, Line: i + 1, Err: err}
		}
		records = append(records, ch)
	}

	return records, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
