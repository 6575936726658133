package challenge

import "strings"

// Status represents the completion state of a Challenge.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Statuses lists every valid status in display order.
func Statuses() []Status {
	return []Status{StatusPending, StatusCompleted}
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }

// ParseStatus converts s into a Status. It performs no trimming or
// defaulting; see FromPersistable for the lenient form.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", &ValidationError{
			Field:  "status",
			Value:  s,
			Reason: "must be one of " + statusList(),
		}
	}
	return status, nil
}

func statusList() string {
	names := make([]string, 0, 2)
	for _, s := range Statuses() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
