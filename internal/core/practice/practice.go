// Package practice models the free-form practice log kept by the web front
// end. Entries are timestamped, append-only and independent of challenges.
package practice

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/hay-kot/practica/internal/core/challenge"
)

// TimeLayout is the HH:MM layout of Entry.Time.
const TimeLayout = "15:04"

// Columns lists the CSV header of the practice log in order.
func Columns() []string {
	return []string{"id", "date", "time", "description", "tags", "duration_minutes"}
}

// Entry is one logged practice session.
type Entry struct {
	ID              string `json:"id"`
	Date            string `json:"date"` // YYYY-MM-DD
	Time            string `json:"time"` // HH:MM
	Description     string `json:"description"`
	Tags            string `json:"tags"`
	DurationMinutes int    `json:"duration_minutes"`
}

// Options carries the optional fields of a new Entry. Empty Date and Time
// default to the current day and minute.
type Options struct {
	Date            string
	Time            string
	Tags            string
	DurationMinutes int
}

// New builds an Entry with a fresh UUID. Description and tags are trimmed
// and NFC normalized so text typed on different platforms compares equal.
func New(now time.Time, description string, opts Options) (Entry, error) {
	date := strings.TrimSpace(opts.Date)
	if date == "" {
		date = now.Format(challenge.DateLayout)
	} else if _, err := challenge.ParseDate(date); err != nil {
		return Entry{}, err
	}

	clock := strings.TrimSpace(opts.Time)
	if clock == "" {
		clock = now.Format(TimeLayout)
	} else if _, err := time.Parse(TimeLayout, clock); err != nil {
		return Entry{}, &challenge.ValidationError{Field: "time", Value: clock, Reason: "expected HH:MM"}
	}

	if opts.DurationMinutes < 0 {
		return Entry{}, &challenge.ValidationError{
			Field:  "duration_minutes",
			Value:  fmt.Sprint(opts.DurationMinutes),
			Reason: "must not be negative",
		}
	}

	return Entry{
		ID:              uuid.NewString(),
		Date:            date,
		Time:            clock,
		Description:     cleanText(description),
		Tags:            cleanText(opts.Tags),
		DurationMinutes: opts.DurationMinutes,
	}, nil
}

func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Row renders the entry in Columns order.
func (e Entry) Row() []string {
	return []string{e.ID, e.Date, e.Time, e.Description, e.Tags, fmt.Sprint(e.DurationMinutes)}
}

// SortNewestFirst returns a copy of entries ordered by date and time,
// most recent first.
func SortNewestFirst(entries []Entry) []Entry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		if c := strings.Compare(b.Date, a.Date); c != 0 {
			return c
		}
		return strings.Compare(b.Time, a.Time)
	})
	return sorted
}
