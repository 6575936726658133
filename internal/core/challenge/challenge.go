// Package challenge defines the daily challenge record, its persisted form,
// and the pure helpers used to reconcile and present collections of them.
package challenge

import (
	"fmt"
	"strings"
	"time"
)

// Challenge is one dated practice record. Fields are only reachable through
// accessors; Complete is the single mutation.
type Challenge struct {
	date        Date
	description string
	status      Status
}

// New returns a pending Challenge. CRLF line breaks in description are
// stored as LF. A zero date is accepted here but rejected by Validate, so
// it never reaches a file.
func New(date Date, description string) *Challenge {
	return &Challenge{date: date, description: normalizeNewlines(description), status: StatusPending}
}

// NewWithStatus returns a Challenge with an explicit status, failing with a
// *ValidationError when status is unknown.
func NewWithStatus(date Date, description string, status Status) (*Challenge, error) {
	if _, err := ParseStatus(string(status)); err != nil {
		return nil, err
	}
	return &Challenge{date: date, description: normalizeNewlines(description), status: status}, nil
}

// NewToday returns a pending Challenge dated on the calendar day of now.
func NewToday(now time.Time, description string) *Challenge {
	return New(DateOf(now), description)
}

func (c *Challenge) Date() Date { return c.date }
func (c *Challenge) Description() string { return c.description }
func (c *Challenge) Status() Status { return c.status }

// IsCompleted reports whether the challenge has been completed.
func (c *Challenge) IsCompleted() bool {
	return c.status == StatusCompleted
}

// Complete marks the challenge completed. Calling it again is a no-op.
func (c *Challenge) Complete() {
	c.status = StatusCompleted
}

// Validate reports a *ValidationError for a challenge that could not be
// loaded back once persisted.
func (c *Challenge) Validate() error {
	if c.date.IsZero() {
		return &ValidationError{Field: FieldDate, Reason: "missing"}
	}
	if !c.status.IsValid() {
		return &ValidationError{Field: FieldStatus, Value: string(c.status), Reason: "unknown status"}
	}
	return nil
}

func (c *Challenge) String() string {
	return fmt.Sprintf("Challenge(date=%s, description='%s', status='%s')", c.date, c.description, c.status)
}

// Persisted is the format-neutral form shared by the document and tabular
// codecs.
type Persisted struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Field names of the persisted form, in column order.
const (
	FieldDate        = "date"
	FieldDescription = "description"
	FieldStatus      = "status"
)

// Fields lists the persisted field names in column order.
func Fields() []string {
	return []string{FieldDate, FieldDescription, FieldStatus}
}

// ToPersistable renders the challenge with its date as YYYY-MM-DD.
func (c *Challenge) ToPersistable() Persisted {
	return Persisted{
		Date:        c.date.String(),
		Description: c.description,
		Status:      string(c.status),
	}
}

// Map returns the persisted form keyed by field name.
func (p Persisted) Map() map[string]any {
	return map[string]any{
		FieldDate:        p.Date,
		FieldDescription: p.Description,
		FieldStatus:      p.Status,
	}
}

// FromPersistable rebuilds a Challenge from a decoded document object or a
// tabular row keyed by header.
//
// The date may be a Date, a time.Time or a string with surrounding
// whitespace. Description is trimmed and defaults to empty. A status that is
// absent, nil or blank after trimming defaults to pending; anything else must
// be a valid status.
func FromPersistable(data map[string]any) (*Challenge, error) {
	date, err := persistedDate(data[FieldDate])
	if err != nil {
		return nil, err
	}

	description, err := optionalString(data, FieldDescription)
	if err != nil {
		return nil, err
	}

	rawStatus, err := optionalString(data, FieldStatus)
	if err != nil {
		return nil, err
	}

	status := StatusPending
	if trimmed := strings.TrimSpace(rawStatus); trimmed != "" {
		status, err = ParseStatus(trimmed)
		if err != nil {
			return nil, err
		}
	}

	return &Challenge{
		date:        date,
		description: normalizeNewlines(strings.TrimSpace(description)),
		status:      status,
	}, nil
}

func persistedDate(raw any) (Date, error) {
	switch v := raw.(type) {
	case Date:
		if v.IsZero() {
			return Date{}, &ValidationError{Field: FieldDate, Reason: "missing"}
		}
		return v, nil
	case time.Time:
		if v.IsZero() {
			return Date{}, &ValidationError{Field: FieldDate, Reason: "missing"}
		}
		return DateOf(v), nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return Date{}, &ValidationError{Field: FieldDate, Reason: "missing"}
		}
		return ParseDate(trimmed)
	case nil:
		return Date{}, &ValidationError{Field: FieldDate, Reason: "missing"}
	default:
		return Date{}, &ValidationError{Field: FieldDate, Value: fmt.Sprint(v), Reason: fmt.Sprintf("unsupported type %T", v)}
	}
}

// optionalString returns the string stored under key; an absent or nil value
// yields "".
func optionalString(data map[string]any, key string) (string, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", &ValidationError{Field: key, Value: fmt.Sprint(raw), Reason: fmt.Sprintf("expected string, got %T", raw)}
	}
	return s, nil
}

// normalizeNewlines rewrites CRLF as LF. CSV readers fold CRLF inside quoted
// fields, so both codecs must only ever see LF.
func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
