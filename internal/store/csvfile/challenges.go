package csvfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hay-kot/practica/internal/core/challenge"
	"github.com/hay-kot/practica/pkg/utils"
)

// ChallengeStore reads and writes the tabular challenge export at a fixed
// path.
type ChallengeStore struct {
	path string
}

// NewChallengeStore creates a CSV store at the given path.
func NewChallengeStore(path string) *ChallengeStore {
	return &ChallengeStore{path: path}
}

// Path returns the CSV location.
func (s *ChallengeStore) Path() string { return s.path }

// Load reads the whole collection. See Load.
func (s *ChallengeStore) Load() (challenge.Collection, error) {
	return Load(s.path)
}

// Save replaces the file with records. See Save.
func (s *ChallengeStore) Save(records []*challenge.Challenge) error {
	return Save(s.path, records)
}

// Save writes the header date,description,status followed by one row per
// record, replacing any existing file.
func Save(path string, records []*challenge.Challenge) error {
	rows := make([][]string, 0, len(records))
	for _, ch := range records {
		if err := ch.Validate(); err != nil {
			return fmt.Errorf("save %s: %w", ch.Date(), err)
		}
		p := ch.ToPersistable()
		rows = append(rows, []string{p.Date, p.Description, p.Status})
	}

	err := utils.WriteFileAtomic(path, func(w io.Writer) error {
		return writeAll(w, challenge.Fields(), rows)
	})
	if err != nil {
		return fmt.Errorf("write challenges csv: %w", err)
	}
	return nil
}

// Load reads every row of the CSV at path. A missing file yields a
// *challenge.NotFoundError. Missing fields default as in
// challenge.FromPersistable; a row that cannot be reconstructed fails the
// whole load with a *challenge.ParseError.
func Load(path string) (challenge.Collection, error) {
	header, rows, err := readRows(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &challenge.NotFoundError{Path: path}
		}
		return nil, &challenge.ParseError{Path: path, Err: err}
	}

	records := make(challenge.Collection, 0, len(rows))
	for i, row := range rows {
		ch, err := challenge.FromPersistable(rowMap(header, row))
		if err != nil {
			return nil, &challenge.ParseError{Path: path, Line: i + 1, Err: err}
		}
		records = append(records, ch)
	}

	return records, nil
}
