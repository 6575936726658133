package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/practica/internal/core/challenge"
	"github.com/hay-kot/practica/pkg/iojson"
)

type ListCmd struct {
	flags *Flags

	// flags
	status     string
	jsonOutput bool
}

// NewListCmd creates a new list command
func NewListCmd(flags *Flags) *ListCmd {
	return &ListCmd{flags: flags}
}

// Register adds the list command to the application
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List challenges",
		UsageText: "practica list [--status pending|completed] [--json]",
		Description: `Prints every challenge in the JSON file ordered by date.

Use --status to show only pending or completed challenges and --json for
one JSON object per line.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "status",
				Aliases:     []string{"s"},
				Usage:       "filter by status (pending, completed)",
				Destination: &cmd.status,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ListCmd) run(ctx context.Context, c *cli.Command) error {
	var status challenge.Status
	if cmd.status != "" {
		s, err := challenge.ParseStatus(cmd.status)
		if err != nil {
			return err
		}
		status = s
	}

	records, err := cmd.flags.Tracker.List(ctx, status)
	if err != nil {
		return fmt.Errorf("list challenges: %w", err)
	}

	if cmd.jsonOutput {
		out := c.Root().Writer
		for _, ch := range records {
			if err := iojson.WriteLine(out, ch.ToPersistable()); err != nil {
				return fmt.Errorf("encode challenge: %w", err)
			}
		}
		return nil
	}

	printListing(printerFor(ctx, c), records)
	return nil
}
