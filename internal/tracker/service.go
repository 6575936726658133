// Package tracker orchestrates loading, reconciling and saving challenges
// across the JSON document and its CSV copy.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hay-kot/practica/internal/core/challenge"
)

// ErrNoChallenge is returned by Complete when no challenge has the date.
var ErrNoChallenge = errors.New("no challenge found")

// Store persists a whole challenge collection to a single file.
type Store interface {
	Path() string
	Load() (challenge.Collection, error)
	Save(records []*challenge.Challenge) error
}

// Options tune a Service. Zero values select defaults.
type Options struct {
	// DefaultDescription replaces a blank description in Today.
	DefaultDescription string
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Service reconciles challenges. The document store is authoritative, the
// tabular store is rewritten after every change.
type Service struct {
	document           Store
	tabular            Store
	log                zerolog.Logger
	now                func() time.Time
	defaultDescription string
}

func NewService(document, tabular Store, log zerolog.Logger, opts Options) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Service{
		document:           document,
		tabular:            tabular,
		log:                log,
		now:                opts.Now,
		defaultDescription: opts.DefaultDescription,
	}
}

// CurrentDate returns the current calendar date from the service clock.
func (s *Service) CurrentDate() challenge.Date {
	return challenge.DateOf(s.now())
}

// DocumentPath returns the path of the authoritative document.
func (s *Service) DocumentPath() string { return s.document.Path() }

// TabularPath returns the path of the CSV copy.
func (s *Service) TabularPath() string { return s.tabular.Path() }

// Snapshot loads the document. found is false when the document does not
// exist yet, in which case the collection is empty and err is nil.
func (s *Service) Snapshot(ctx context.Context) (records challenge.Collection, found bool, err error) {
	records, err = s.document.Load()
	switch {
	case err == nil:
		return records, true, nil
	case errors.Is(err, challenge.ErrNotFound):
		s.log.Debug().Ctx(ctx).Str("path", s.document.Path()).Msg("document not found, starting empty")
		return challenge.Collection{}, false, nil
	default:
		return nil, false, fmt.Errorf("load challenges: %w", err)
	}
}

// List returns the document's challenges sorted by date, filtered by status
// when it is non-empty. A missing document is an error.
func (s *Service) List(ctx context.Context, status challenge.Status) ([]*challenge.Challenge, error) {
	records, err := s.document.Load()
	if err != nil {
		return nil, fmt.Errorf("load challenges: %w", err)
	}

	return challenge.Listing(records, status)
}

// Add creates today's challenge unless one exists. Files are only written
// when a challenge is created.
func (s *Service) Add(ctx context.Context, description string, markComplete bool) (*challenge.Challenge, bool, error) {
	records, _, err := s.Snapshot(ctx)
	if err != nil {
		return nil, false, err
	}

	ch, created := records.AddOrReuse(description, s.CurrentDate(), markComplete)
	if !created {
		s.log.Info().Ctx(ctx).Stringer("date", ch.Date()).Msg("challenge already exists")
		return ch, false, nil
	}

	if err := s.save(ctx, records); err != nil {
		return nil, false, err
	}

	s.log.Info().Ctx(ctx).
		Stringer("date", ch.Date()).
		Stringer("status", ch.Status()).
		Msg("challenge added")

	return ch, true, nil
}

// Complete marks the challenge dated on date as completed and rewrites both
// files. It returns ErrNoChallenge, leaving the files untouched, when no
// challenge has that date.
func (s *Service) Complete(ctx context.Context, date challenge.Date) (*challenge.Challenge, error) {
	records, err := s.document.Load()
	if err != nil {
		return nil, fmt.Errorf("load challenges: %w", err)
	}

	ch, ok := records.MarkCompletedByDate(date)
	if !ok {
		return nil, fmt.Errorf("%w for %s", ErrNoChallenge, date)
	}

	if err := s.save(ctx, records); err != nil {
		return nil, err
	}

	s.log.Info().Ctx(ctx).Stringer("date", date).Msg("challenge completed")
	return ch, nil
}

// TodayResult reports what Today did.
type TodayResult struct {
	Challenge *challenge.Challenge
	Created   bool
	Saved     int
	// Reloaded collections read back from each file after saving.
	FromDocument challenge.Collection
	FromTabular  challenge.Collection
}

// Today runs the interactive daily flow. A blank description falls
// back to the configured default. A newly created challenge is completed
// immediately. Both files are always rewritten and then read back.
func (s *Service) Today(ctx context.Context, description string) (*TodayResult, error) {
	if strings.TrimSpace(description) == "" {
		description = s.defaultDescription
	}

	records, _, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	ch, created := records.AddOrReuse(description, s.CurrentDate(), true)
	if err := s.save(ctx, records); err != nil {
		return nil, err
	}

	res := &TodayResult{
		Challenge: ch,
		Created:   created,
		Saved:     len(records),
	}

	res.FromDocument, err = s.document.Load()
	if err != nil {
		return nil, fmt.Errorf("reload challenges: %w", err)
	}

	res.FromTabular, err = s.tabular.Load()
	if err != nil {
		return nil, fmt.Errorf("reload challenges: %w", err)
	}

	s.log.Info().Ctx(ctx).
		Bool("created", created).
		Int("saved", res.Saved).
		Msg("recorded today's challenge")

	return res, nil
}

// save writes the document first so a failure leaves the authoritative
// file current and the tabular copy stale, never the reverse.
func (s *Service) save(ctx context.Context, records challenge.Collection) error {
	if err := s.document.Save(records); err != nil {
		return fmt.Errorf("save challenges: %w", err)
	}
	if err := s.tabular.Save(records); err != nil {
		return fmt.Errorf("save challenges csv: %w", err)
	}

	s.log.Debug().Ctx(ctx).
		Str("document", s.document.Path()).
		Str("tabular", s.tabular.Path()).
		Int("count", len(records)).
		Msg("challenges saved")
	return nil
}
