package challenge

import (
	"fmt"
	"slices"
)

// SortedByDate returns a copy of records ordered by ascending date. Records
// sharing a date keep their relative order.
func SortedByDate(records []*Challenge) []*Challenge {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b *Challenge) int {
		return a.date.Compare(b.date)
	})
	return sorted
}

// FilterByStatus returns the records with the given status, in order.
func FilterByStatus(records []*Challenge, status Status) ([]*Challenge, error) {
	if _, err := ParseStatus(string(status)); err != nil {
		return nil, err
	}

	filtered := make([]*Challenge, 0, len(records))
	for _, ch := range records {
		if ch.status == status {
			filtered = append(filtered, ch)
		}
	}
	return filtered, nil
}

// FormatLine renders a challenge for a numbered listing.
func FormatLine(ch *Challenge, index int) string {
	return fmt.Sprintf("%d,%s - %s [%s]", index, ch.date, ch.description, ch.status)
}

// Listing filters records by status when status is non-empty and returns the
// result sorted by date.
func Listing(records []*Challenge, status Status) ([]*Challenge, error) {
	if status != "" {
		filtered, err := FilterByStatus(records, status)
		if err != nil {
			return nil, err
		}
		records = filtered
	}
	return SortedByDate(records), nil
}
