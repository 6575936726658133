// Package config handles configuration loading and validation for practica.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/practica/internal/core/styles"
)

// DefaultDescription is used by the interactive flow when no description is
// entered.
const DefaultDescription = "realizar un commit util en github"

// Config holds the application configuration.
//
// ChallengesFile is the authoritative JSON document and ChallengesCSV the
// tabular copy rewritten with every change. PracticeLog is the append-only
// entry log used by the web UI.
type Config struct {
	ChallengesFile     string       `yaml:"challenges_file" json:"challenges_file"`
	ChallengesCSV      string       `yaml:"challenges_csv" json:"challenges_csv"`
	PracticeLog        string       `yaml:"practice_log" json:"practice_log"`
	DefaultDescription string       `yaml:"default_description" json:"default_description"`
	Export             ExportConfig `yaml:"export" json:"export"`
	Theme              string       `yaml:"theme" json:"theme"`
	DataDir            string       `yaml:"-" json:"data_dir,omitempty"` // set by caller, not from config file
}

// ExportConfig controls spreadsheet exports.
type ExportConfig struct {
	Sheet string `yaml:"sheet" json:"sheet"` // worksheet name for XLSX exports
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ChallengesFile:     "challenges.json",
		ChallengesCSV:      "challenges.csv",
		PracticeLog:        "practica.csv",
		DefaultDescription: DefaultDescription,
		Export: ExportConfig{
			Sheet: "Practica",
		},
		Theme: styles.DefaultTheme,
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided
// dataDir. Relative file paths are resolved against dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.DataDir = dataDir
	cfg.applyDefaults()
	cfg.resolvePaths()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.DefaultDescription == "" {
		c.DefaultDescription = defaults.DefaultDescription
	}
	if c.Export.Sheet == "" {
		c.Export.Sheet = defaults.Export.Sheet
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
}

// resolvePaths joins relative file paths onto DataDir.
func (c *Config) resolvePaths() {
	c.ChallengesFile = c.Resolve(c.ChallengesFile)
	c.ChallengesCSV = c.Resolve(c.ChallengesCSV)
	c.PracticeLog = c.Resolve(c.PracticeLog)
}

// Resolve returns path joined onto DataDir unless it is empty or absolute.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.DataDir == "" {
		return path
	}
	return filepath.Join(c.DataDir, path)
}

// Save writes the configuration as YAML, creating parent directories.
func Save(cfg *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0o644)
}
