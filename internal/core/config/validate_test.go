package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.resolvePaths()
	return &cfg
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig(t).Validate())
}

func TestValidate_Fields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
		wantErr   string
	}{
		{
			name:      "empty challenges file",
			mutate:    func(c *Config) { c.ChallengesFile = "" },
			wantField: "challenges_file",
			wantErr:   "is required",
		},
		{
			name:      "blank default description",
			mutate:    func(c *Config) { c.DefaultDescription = "   " },
			wantField: "default_description",
			wantErr:   "is required",
		},
		{
			name:      "directory as csv",
			mutate:    func(c *Config) { c.ChallengesCSV = c.DataDir },
			wantField: "challenges_csv",
			wantErr:   "is a directory",
		},
		{
			name:      "sheet too long",
			mutate:    func(c *Config) { c.Export.Sheet = strings.Repeat("x", 32) },
			wantField: "export.sheet",
			wantErr:   "at most 31",
		},
		{
			name:      "sheet with slash",
			mutate:    func(c *Config) { c.Export.Sheet = "a/b" },
			wantField: "export.sheet",
			wantErr:   "must not contain",
		},
		{
			name:      "unknown theme",
			mutate:    func(c *Config) { c.Theme = "solarized" },
			wantField: "theme",
			wantErr:   "unknown theme",
		},
		{
			name:      "shared file",
			mutate:    func(c *Config) { c.PracticeLog = filepath.Join(c.DataDir, ".", "challenges.csv") },
			wantField: "practice_log",
			wantErr:   "same file as challenges_csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.wantField, fieldErrs[0].Field)
			assert.Contains(t, fieldErrs[0].Err.Error(), tt.wantErr)
		})
	}
}
