package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/practica/internal/core/practice"
	"github.com/hay-kot/practica/pkg/iojson"
)

type LogCmd struct {
	flags *Flags

	// add flags
	date     string
	time     string
	tags     string
	duration int

	// list flags
	jsonOutput bool
}

// NewLogCmd creates a new log command
func NewLogCmd(flags *Flags) *LogCmd {
	return &LogCmd{flags: flags}
}

// Register adds the log command to the application
func (cmd *LogCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "log",
		Usage: "Practice log commands",
		Description: `Commands for the append-only practice log shared with the web UI.

Use 'practica log add' to record a session and 'practica log list' to show them.`,
		Commands: []*cli.Command{
			cmd.addCmd(),
			cmd.listCmd(),
		},
	})
	return app
}

func (cmd *LogCmd) addCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Append a practice entry",
		UsageText: "practica log add <description> [--date YYYY-MM-DD] [--time HH:MM] [--tags a,b] [--duration minutes]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "date",
				Usage:       "entry date (defaults to today)",
				Destination: &cmd.date,
			},
			&cli.StringFlag{
				Name:        "time",
				Usage:       "entry time (defaults to now)",
				Destination: &cmd.time,
			},
			&cli.StringFlag{
				Name:        "tags",
				Usage:       "free-form tags",
				Destination: &cmd.tags,
			},
			&cli.IntFlag{
				Name:        "duration",
				Aliases:     []string{"d"},
				Usage:       "duration in minutes",
				Destination: &cmd.duration,
			},
		},
		Action: cmd.runAdd,
	}
}

func (cmd *LogCmd) listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List practice entries, newest first",
		UsageText: "practica log list [--json]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.runList,
	}
}

func (cmd *LogCmd) runAdd(ctx context.Context, c *cli.Command) error {
	description := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if description == "" {
		return errors.New("description is required")
	}

	entry, err := practice.New(cmd.flags.Now(), description, practice.Options{
		Date:            cmd.date,
		Time:            cmd.time,
		Tags:            cmd.tags,
		DurationMinutes: cmd.duration,
	})
	if err != nil {
		return err
	}

	if err := cmd.flags.Entries.Append(entry); err != nil {
		return fmt.Errorf("append entry: %w", err)
	}

	printerFor(ctx, c).Successf("Entry added: %s %s %s", entry.Date, entry.Time, entry.Description)
	return nil
}

func (cmd *LogCmd) runList(ctx context.Context, c *cli.Command) error {
	entries, err := cmd.flags.Entries.Read()
	if err != nil {
		return fmt.Errorf("read practice log: %w", err)
	}
	entries = practice.SortNewestFirst(entries)

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, e := range entries {
			if err := iojson.WriteLine(out, e); err != nil {
				return fmt.Errorf("encode entry: %w", err)
			}
		}
		return nil
	}

	if len(entries) == 0 {
		printerFor(ctx, c).Infof("No entries found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DATE\tTIME\tDESCRIPTION\tTAGS\tMINUTES")
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", e.Date, e.Time, e.Description, e.Tags, e.DurationMinutes)
	}
	return w.Flush()
}
