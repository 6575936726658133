package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/practica/internal/core/challenge"
	"github.com/hay-kot/practica/internal/tracker"
)

type CompleteCmd struct {
	flags *Flags
}

// NewCompleteCmd creates a new complete command
func NewCompleteCmd(flags *Flags) *CompleteCmd {
	return &CompleteCmd{flags: flags}
}

// Register adds the complete command to the application
func (cmd *CompleteCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:          "complete",
		Usage:         "Mark a challenge completed by date",
		UsageText:     "practica complete <YYYY-MM-DD>",
		Description:   "Marks the challenge for the given date as completed and rewrites both files.",
		ShellComplete: PendingDateCompleter(cmd.flags),
		Action:        cmd.run,
	})

	return app
}

func (cmd *CompleteCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return errors.New("expected exactly one date (YYYY-MM-DD)")
	}

	date, err := challenge.ParseDate(c.Args().First())
	if err != nil {
		return err
	}

	p := printerFor(ctx, c)

	_, err = cmd.flags.Tracker.Complete(ctx, date)
	if errors.Is(err, tracker.ErrNoChallenge) {
		p.Warnf("No challenge found for %s", date)
		return nil
	}
	if err != nil {
		return fmt.Errorf("complete challenge: %w", err)
	}

	p.Successf("Marked %s as completed", date)
	return nil
}
