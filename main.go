package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/practica/internal/commands"
	"github.com/hay-kot/practica/internal/core/config"
	"github.com/hay-kot/practica/internal/core/logging"
	"github.com/hay-kot/practica/internal/core/styles"
	"github.com/hay-kot/practica/internal/printer"
	"github.com/hay-kot/practica/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "practica",
		Usage:     "Track one small challenge per day",
		UsageText: "practica [global options] [command [command options]]",
		Description: `practica keeps a daily challenge in a JSON file and mirrors it to CSV.

Run 'practica' with no arguments to review your challenges and record today's.
Run 'practica add' to add today's challenge non-interactively.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("PRACTICA_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("PRACTICA_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("PRACTICA_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "directory relative data files resolve against (defaults to the working directory)",
				Sources:     cli.EnvVars("PRACTICA_DATA_DIR"),
				Destination: &flags.DataDir,
			},
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "JSON challenges file (default: challenges.json)",
				Sources:     cli.EnvVars("PRACTICA_FILE"),
				Destination: &flags.ChallengesFile,
			},
			&cli.StringFlag{
				Name:        "csv",
				Usage:       "CSV copy of the challenges (default: challenges.csv)",
				Sources:     cli.EnvVars("PRACTICA_CSV"),
				Destination: &flags.ChallengesCSV,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(logutils.Options{
				Level: flags.LogLevel,
				File:  flags.LogFile,
			})
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger.Hook(logging.ContextHook{})
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			flags.Init(cfg, log.Logger)

			ctx = logging.WithRunID(ctx, uuid.NewString())
			if args := c.Args(); args.Present() {
				ctx = logging.WithCommand(ctx, args.First())
			}

			log.Debug().
				Ctx(ctx).
				Str("challenges", cfg.ChallengesFile).
				Str("csv", cfg.ChallengesCSV).
				Str("practice_log", cfg.PracticeLog).
				Msg("config loaded")

			return printer.WithContext(ctx, printer.New(c.Root().Writer)), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = commands.NewListCmd(flags).Register(app)
	app = commands.NewAddCmd(flags).Register(app)
	app = commands.NewCompleteCmd(flags).Register(app)
	app = commands.NewExportCmd(flags).Register(app)
	app = commands.NewLogCmd(flags).Register(app)
	app = commands.NewServeCmd(flags).Register(app)
	app = commands.NewDoctorCmd(flags).Register(app)
	app = commands.NewConfigCmd(flags).Register(app)

	// Run the interactive flow when no subcommand is provided
	app.Action = commands.NewTodayCmd(flags).Run

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
