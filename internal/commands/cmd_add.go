package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
)

type AddCmd struct {
	flags *Flags

	// flags
	complete bool
}

// NewAddCmd creates a new add command
func NewAddCmd(flags *Flags) *AddCmd {
	return &AddCmd{flags: flags}
}

// Register adds the add command to the application
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add today's challenge",
		UsageText: "practica add <description> [--complete]",
		Description: `Adds a challenge dated today to the JSON file and rewrites the CSV copy.

If a challenge for today already exists it is shown unchanged and nothing
is written.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "complete",
				Usage:       "mark as completed immediately",
				Destination: &cmd.complete,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() == 0 {
		return errors.New("description is required")
	}
	description := strings.Join(c.Args().Slice(), " ")

	ch, created, err := cmd.flags.Tracker.Add(ctx, description, cmd.complete)
	if err != nil {
		return fmt.Errorf("add challenge: %w", err)
	}

	p := printerFor(ctx, c)
	if created {
		p.Successf("Added challenge:")
	} else {
		p.Infof("Challenge for today already exists:")
	}
	p.Printf("%s", ch)

	return nil
}
