package commands

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/practica/internal/core/config"
	"github.com/hay-kot/practica/internal/core/logging"
	"github.com/hay-kot/practica/internal/printer"
	"github.com/hay-kot/practica/internal/store/csvfile"
	"github.com/hay-kot/practica/internal/store/jsonfile"
	"github.com/hay-kot/practica/internal/tracker"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// ChallengesFile and ChallengesCSV override the config file when set.
	ChallengesFile string
	ChallengesCSV  string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Tracker reconciles challenges across the JSON and CSV files
	Tracker *tracker.Service

	// Document and Tabular are the JSON and CSV challenge files
	Document *jsonfile.ChallengeStore
	Tabular  *csvfile.ChallengeStore

	// Entries is the practice log shared by the log and serve commands
	Entries *csvfile.EntryLog

	// Stdin replaces os.Stdin for the interactive flow when set.
	Stdin io.Reader

	// Now is the clock used for new records. Defaults to time.Now.
	Now func() time.Time
}

// Init builds the stores and services from cfg, applying flag overrides.
func (f *Flags) Init(cfg *config.Config, log zerolog.Logger) {
	if f.Now == nil {
		f.Now = time.Now
	}
	if f.ChallengesFile != "" {
		cfg.ChallengesFile = f.ChallengesFile
	}
	if f.ChallengesCSV != "" {
		cfg.ChallengesCSV = f.ChallengesCSV
	}

	f.Config = cfg
	f.Entries = csvfile.NewEntryLog(cfg.PracticeLog)
	f.Document = jsonfile.NewChallengeStore(cfg.ChallengesFile)
	f.Tabular = csvfile.NewChallengeStore(cfg.ChallengesCSV)
	f.Tracker = tracker.NewService(
		f.Document,
		f.Tabular,
		logging.Component(log, "tracker"),
		tracker.Options{
			DefaultDescription: cfg.DefaultDescription,
			Now:                f.Now,
		},
	)
}

func (f *Flags) stdin() io.Reader {
	if f.Stdin != nil {
		return f.Stdin
	}
	return os.Stdin
}

// printerFor returns the printer installed on ctx, or one writing to the
// root command's writer.
func printerFor(ctx context.Context, c *cli.Command) *printer.Printer {
	if p, ok := printer.FromContext(ctx); ok {
		return p
	}
	return printer.New(c.Root().Writer)
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "practica", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/practica/practica.log
// On Linux: $XDG_STATE_HOME/practica/practica.log (defaults to ~/.local/state/practica/practica.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "practica", "practica.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "practica", "practica.log")
	}

	return filepath.Join(home, ".local", "state", "practica", "practica.log")
}
