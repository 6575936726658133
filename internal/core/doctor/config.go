package doctor

import (
	"context"
	"errors"
	"io/fs"
	"os"
)

// ConfigCheck reports whether a config file is in use. The config itself
// has already been validated by the time checks run.
type ConfigCheck struct {
	path string
}

// NewConfigCheck creates a check for the config file at path.
func NewConfigCheck(path string) *ConfigCheck {
	return &ConfigCheck{path: path}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if c.path == "" {
		result.Items = append(result.Items, CheckItem{
			Label:  "config file",
			Status: StatusPass,
			Detail: "using defaults",
		})
		return result
	}

	_, err := os.Stat(c.path)
	switch {
	case err == nil:
		result.Items = append(result.Items, CheckItem{
			Label:  "config file",
			Status: StatusPass,
			Detail: c.path,
		})
	case errors.Is(err, fs.ErrNotExist):
		result.Items = append(result.Items, CheckItem{
			Label:  "config file",
			Status: StatusPass,
			Detail: "not found, using defaults",
		})
	default:
		result.Items = append(result.Items, CheckItem{
			Label:  "config file",
			Status: StatusFail,
			Detail: err.Error(),
		})
	}

	return result
}
