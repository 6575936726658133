package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/practica/internal/export/xlsx"
)

type ExportCmd struct {
	flags *Flags

	// flags
	from  string
	out   string
	sheet string
}

// NewExportCmd creates a new export command
func NewExportCmd(flags *Flags) *ExportCmd {
	return &ExportCmd{flags: flags}
}

// Register adds the export command to the application
func (cmd *ExportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "export",
		Usage:     "Export a CSV file to an XLSX workbook",
		UsageText: "practica export [--from <csv>] [--out <xlsx>] [--sheet <name>]",
		Description: `Converts a CSV file with a header row into a single sheet workbook.

Defaults to the challenges CSV, writing next to it with an .xlsx extension.
Use --from with the practice log to export practice entries.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "from",
				Usage:       "CSV file to export (defaults to the challenges CSV)",
				Destination: &cmd.from,
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "output path (defaults to <from>.xlsx)",
				Destination: &cmd.out,
			},
			&cli.StringFlag{
				Name:        "sheet",
				Usage:       "worksheet name (defaults to export.sheet from config)",
				Destination: &cmd.sheet,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ExportCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config

	from := cmd.from
	if from == "" {
		from = cfg.ChallengesCSV
	}

	out := cmd.out
	if out == "" {
		out = strings.TrimSuffix(from, filepath.Ext(from)) + ".xlsx"
	}

	sheet := cmd.sheet
	if sheet == "" {
		sheet = cfg.Export.Sheet
	}

	if err := xlsx.ExportFile(from, out, sheet); err != nil {
		return fmt.Errorf("export %s: %w", from, err)
	}

	printerFor(ctx, c).Successf("Exported %s to %s", from, out)
	return nil
}
