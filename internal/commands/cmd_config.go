package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/practica/internal/core/config"
	"github.com/hay-kot/practica/pkg/iojson"
)

type ConfigCmd struct {
	flags  *Flags
	force  bool
	format string
}

// NewConfigCmd creates the config command group.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config commands to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "init",
				Usage:       "Write a config file with the default settings",
				UsageText:   "practica config init [--force]",
				Description: "Creates the config file at the --config path. Existing files are left alone unless --force is set.",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "force",
						Usage:       "overwrite an existing config file",
						Destination: &cmd.force,
					},
				},
				Action: cmd.runInit,
			},
			{
				Name:        "show",
				Usage:       "Print the effective configuration",
				UsageText:   "practica config show [--format yaml|json]",
				Description: "Prints the configuration after defaults, overrides and path resolution are applied.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (yaml, json)",
						Value:       "yaml",
						Destination: &cmd.format,
					},
				},
				Action: cmd.runShow,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) runInit(ctx context.Context, c *cli.Command) error {
	p := printerFor(ctx, c)
	path := cmd.flags.ConfigPath

	if !cmd.force {
		_, err := os.Stat(path)
		if err == nil {
			p.Warnf("config already exists at %s (use --force to overwrite)", path)
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("check config: %w", err)
		}
	}

	cfg := config.DefaultConfig()
	if err := config.Save(&cfg, path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	p.Successf("wrote config to %s", path)
	return nil
}

func (cmd *ConfigCmd) runShow(_ context.Context, c *cli.Command) error {
	out := c.Root().Writer

	switch cmd.format {
	case "json":
		return iojson.Write(out, c.Root().ErrWriter, cmd.flags.Config)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(cmd.flags.Config); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", cmd.format)
	}
}
