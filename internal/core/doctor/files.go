package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/practica/internal/core/challenge"
	"github.com/hay-kot/practica/internal/core/practice"
)

// ChallengeSource is a readable challenges file.
type ChallengeSource interface {
	Path() string
	Load() (challenge.Collection, error)
}

// EntrySource is a readable practice log.
type EntrySource interface {
	Path() string
	Read() ([]practice.Entry, error)
}

// FilesCheck verifies every data file can be read and parsed.
type FilesCheck struct {
	document ChallengeSource
	tabular  ChallengeSource
	entries  EntrySource
}

// NewFilesCheck creates a check over the challenges document, its CSV copy
// and the practice log.
func NewFilesCheck(document, tabular ChallengeSource, entries EntrySource) *FilesCheck {
	return &FilesCheck{document: document, tabular: tabular, entries: entries}
}

func (c *FilesCheck) Name() string {
	return "Data files"
}

func (c *FilesCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	result.Items = append(result.Items,
		challengeItem("challenges", c.document),
		challengeItem("challenges csv", c.tabular),
	)

	entries, err := c.entries.Read()
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "practice log",
			Status: StatusFail,
			Detail: err.Error(),
		})
	} else {
		result.Items = append(result.Items, CheckItem{
			Label:  "practice log",
			Status: StatusPass,
			Detail: fmt.Sprintf("%d entries in %s", len(entries), c.entries.Path()),
		})
	}

	return result
}

func challengeItem(label string, src ChallengeSource) CheckItem {
	records, err := src.Load()
	switch {
	case errors.Is(err, challenge.ErrNotFound):
		return CheckItem{
			Label:  label,
			Status: StatusWarn,
			Detail: src.Path() + " does not exist yet",
		}
	case err != nil:
		return CheckItem{
			Label:  label,
			Status: StatusFail,
			Detail: err.Error(),
		}
	default:
		return CheckItem{
			Label:  label,
			Status: StatusPass,
			Detail: fmt.Sprintf("%d challenges in %s", len(records), src.Path()),
		}
	}
}
