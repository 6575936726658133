package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/practica/internal/core/challenge"
)

// ChallengeSink is a challenges file that can be rewritten.
type ChallengeSink interface {
	ChallengeSource
	Save(records []*challenge.Challenge) error
}

// SyncCheck verifies the CSV copy holds the same records as the JSON
// document. With autofix it rewrites the CSV from the document.
type SyncCheck struct {
	document ChallengeSource
	tabular  ChallengeSink
	autofix  bool
}

// NewSyncCheck creates a check comparing document against tabular.
func NewSyncCheck(document ChallengeSource, tabular ChallengeSink, autofix bool) *SyncCheck {
	return &SyncCheck{document: document, tabular: tabular, autofix: autofix}
}

func (c *SyncCheck) Name() string {
	return "Sync"
}

func (c *SyncCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	want, err := c.document.Load()
	if err != nil {
		item := CheckItem{
			Label:  "csv copy",
			Status: StatusFail,
			Detail: "skipped, challenges document unreadable",
		}
		if errors.Is(err, challenge.ErrNotFound) {
			item.Status = StatusWarn
			item.Detail = "skipped, no challenges document"
		}
		result.Items = append(result.Items, item)
		return result
	}

	got, err := c.tabular.Load()
	if err != nil && !errors.Is(err, challenge.ErrNotFound) {
		result.Items = append(result.Items, c.mismatch(want, "csv copy unreadable"))
		return result
	}

	if diff := Diff(want, got); diff != "" {
		result.Items = append(result.Items, c.mismatch(want, diff))
		return result
	}

	result.Items = append(result.Items, CheckItem{
		Label:  "csv copy",
		Status: StatusPass,
		Detail: "matches " + c.document.Path(),
	})
	return result
}

func (c *SyncCheck) mismatch(want challenge.Collection, detail string) CheckItem {
	if c.autofix {
		if err := c.tabular.Save(want); err != nil {
			return CheckItem{
				Label:  "csv copy",
				Status: StatusFail,
				Detail: fmt.Sprintf("%s; rewrite failed: %v", detail, err),
			}
		}
		return CheckItem{
			Label:  "csv copy",
			Status: StatusPass,
			Detail: "rewritten from " + c.document.Path(),
		}
	}

	return CheckItem{
		Label:   "csv copy",
		Status:  StatusFail,
		Detail:  detail,
		Fixable: true,
	}
}

// Diff describes the first difference between two collections, compared
// position by position. It returns "" when they hold the same records.
func Diff(want, got challenge.Collection) string {
	if len(want) != len(got) {
		return fmt.Sprintf("%d records, expected %d", len(got), len(want))
	}

	for i := range want {
		w, g := want[i], got[i]
		switch {
		case !w.Date().Equal(g.Date()):
			return fmt.Sprintf("record %d: date %s, expected %s", i+1, g.Date(), w.Date())
		case w.Description() != g.Description():
			return fmt.Sprintf("record %d (%s): description differs", i+1, w.Date())
		case w.Status() != g.Status():
			return fmt.Sprintf("record %d (%s): status %s, expected %s", i+1, w.Date(), g.Status(), w.Status())
		}
	}

	return ""
}
