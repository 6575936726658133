package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/practica/internal/core/styles"
)

// maxSheetName is the worksheet name limit imposed by the XLSX format.
const maxSheetName = 31

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("challenges_file", c.ChallengesFile, required, notDirectory),
		criterio.Run("challenges_csv", c.ChallengesCSV, required, notDirectory),
		criterio.Run("practice_log", c.PracticeLog, required, notDirectory),
		criterio.Run("default_description", c.DefaultDescription, required),
		criterio.Run("export.sheet", c.Export.Sheet, sheetName),
		criterio.Run("theme", c.Theme, knownTheme),
		c.validateDistinctFiles(),
	)
}

// validateDistinctFiles rejects configurations where two stores share a file.
func (c *Config) validateDistinctFiles() error {
	var errs criterio.FieldErrorsBuilder

	files := []struct {
		field string
		path  string
	}{
		{"challenges_file", c.ChallengesFile},
		{"challenges_csv", c.ChallengesCSV},
		{"practice_log", c.PracticeLog},
	}

	seen := make(map[string]string, len(files))
	for _, f := range files {
		if f.path == "" {
			continue
		}
		clean := filepath.Clean(f.path)
		if other, ok := seen[clean]; ok {
			errs = errs.Append(f.field, fmt.Errorf("same file as %s", other))
			continue
		}
		seen[clean] = f.field
	}

	return errs.ToError()
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("is required")
	}
	return nil
}

// notDirectory accepts a path that is a regular file or does not exist yet.
func notDirectory(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // created on first save
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	return nil
}

func sheetName(name string) error {
	if name == "" {
		return errors.New("is required")
	}
	if len([]rune(name)) > maxSheetName {
		return fmt.Errorf("must be at most %d characters", maxSheetName)
	}
	if strings.ContainsAny(name, `[]:*?/\`) {
		return fmt.Errorf("must not contain any of [ ] : * ? / \\")
	}
	return nil
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}
