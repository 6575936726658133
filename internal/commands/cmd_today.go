package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/practica/internal/core/challenge"
	"github.com/hay-kot/practica/internal/printer"
)

// TodayCmd is the interactive flow run when no subcommand is given. It shows
// the stored challenges, asks for today's description and records it.
type TodayCmd struct {
	flags *Flags
}

// NewTodayCmd creates the interactive daily flow
func NewTodayCmd(flags *Flags) *TodayCmd {
	return &TodayCmd{flags: flags}
}

// Run executes the interactive flow.
func (cmd *TodayCmd) Run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() > 0 {
		return fmt.Errorf("unknown command %q. Run 'practica --help' for usage", c.Args().First())
	}

	p := printerFor(ctx, c)
	tr := cmd.flags.Tracker

	records, found, err := tr.Snapshot(ctx)
	if err != nil {
		return err
	}

	if found {
		p.Infof("file found, loading challenges...")
		p.Infof("loaded %d challenges from %s", len(records), tr.DocumentPath())
		printListing(p, records)
		printByStatus(p, records)
		p.Printf("")
	} else {
		p.Infof("can't find the last file, starting a new challenge")
	}

	description, err := cmd.prompt(p)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("read description: %w", err)
	}

	res, err := tr.Today(ctx, description)
	if err != nil {
		return fmt.Errorf("record today's challenge: %w", err)
	}

	if res.Created {
		p.Successf("adding new challenge:")
		p.Printf("%s", res.Challenge)
	} else {
		p.Infof("challenge already exists, using the existing")
	}
	p.Successf("saved %d challenges in database", res.Saved)

	p.Header("reconstructing challenges from JSON")
	cmd.verify(p, res.FromDocument)

	p.Header("reconstructing challenges from CSV")
	cmd.verify(p, res.FromTabular)

	return nil
}

func (cmd *TodayCmd) verify(p *printer.Printer, records challenge.Collection) {
	printListing(p, records)
	printByStatus(p, records)
}

// prompt asks for today's description. A terminal gets a form, anything
// else is read as a single line.
func (cmd *TodayCmd) prompt(p *printer.Printer) (string, error) {
	if cmd.flags.Stdin == nil && term.IsTerminal(int(os.Stdin.Fd())) {
		var description string
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("today's challenge").
					Description("Leave empty to use the default").
					Placeholder(cmd.flags.Config.DefaultDescription).
					Value(&description),
			),
		).Run()
		return description, err
	}

	_, _ = fmt.Fprint(p.Writer(), "today's challenge: ")
	line, err := bufio.NewReader(cmd.flags.stdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	_, _ = fmt.Fprintln(p.Writer())
	return strings.TrimRight(line, "\r\n"), nil
}
