package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/practica/internal/core/doctor"
	"github.com/hay-kot/practica/pkg/iojson"
)

type DoctorCmd struct {
	flags   *Flags
	format  string
	autofix bool
}

func NewDoctorCmd(flags *Flags) *DoctorCmd {
	return &DoctorCmd{flags: flags}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "doctor",
		Usage:       "Check config and data files",
		UsageText:   "practica doctor [options]",
		Description: "Verifies the config, checks every data file parses, and compares the CSV copy against the JSON file.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
			&cli.BoolFlag{
				Name:        "autofix",
				Usage:       "rewrite the CSV copy from the JSON file when they differ",
				Destination: &cmd.autofix,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	checks := []doctor.Check{
		doctor.NewConfigCheck(cmd.flags.ConfigPath),
		doctor.NewFilesCheck(cmd.flags.Document, cmd.flags.Tabular, cmd.flags.Entries),
		doctor.NewSyncCheck(cmd.flags.Document, cmd.flags.Tabular, cmd.autofix),
	}

	results := doctor.RunAll(ctx, checks)

	if cmd.format == "json" {
		return cmd.outputJSON(c, results)
	}

	return cmd.outputText(ctx, c, results)
}

type summaryJSON struct {
	Passed int `json:"passed"`
	Warned int `json:"warned"`
	Failed int `json:"failed"`
}

func (cmd *DoctorCmd) outputJSON(c *cli.Command, results []doctor.Result) error {
	passed, warned, failed := doctor.Summary(results)

	out := struct {
		Healthy bool            `json:"healthy"`
		Summary summaryJSON     `json:"summary"`
		Checks  []doctor.Result `json:"checks"`
	}{
		Healthy: failed == 0,
		Summary: summaryJSON{Passed: passed, Warned: warned, Failed: failed},
		Checks:  results,
	}

	if err := iojson.Write(c.Root().Writer, c.Root().ErrWriter, out); err != nil {
		return err
	}
	if failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *DoctorCmd) outputText(ctx context.Context, c *cli.Command, results []doctor.Result) error {
	p := printerFor(ctx, c)
	st := p.Styles()

	p.Header("practica doctor")
	p.Printf("%s", st.Muted.Render(strings.Repeat("─", 40)))

	for _, result := range results {
		p.Printf("")
		p.Printf("%s", st.Header.Render(result.Name))

		for _, item := range result.Items {
			var detail string
			if item.Detail != "" {
				detail = " " + st.Muted.Render(item.Detail)
			}

			var icon string
			switch item.Status {
			case doctor.StatusPass:
				icon = st.Success.Render("✔")
			case doctor.StatusWarn:
				icon = st.Warning.Render("●")
			case doctor.StatusFail:
				icon = st.Error.Render("✘")
			}

			p.Printf("  %s %s%s", icon, item.Label, detail)
		}
	}

	passed, warned, failed := doctor.Summary(results)
	p.Printf("")
	p.Printf("%s  %s  %s",
		st.Success.Render(fmt.Sprintf("%d passed", passed)),
		st.Warning.Render(fmt.Sprintf("%d warnings", warned)),
		st.Error.Render(fmt.Sprintf("%d failed", failed)),
	)

	if !cmd.autofix {
		if fixable := doctor.CountFixable(results); fixable > 0 {
			p.Printf("")
			p.Printf("%s", st.Muted.Render(fmt.Sprintf("Run 'practica doctor --autofix' to fix %d issue(s)", fixable)))
		}
	}

	if failed > 0 {
		return cli.Exit("", 1)
	}

	return nil
}
