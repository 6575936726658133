package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/practica/internal/web"
)

type ServeCmd struct {
	flags *Flags

	// flags
	addr string
}

// NewServeCmd creates a new serve command
func NewServeCmd(flags *Flags) *ServeCmd {
	return &ServeCmd{flags: flags}
}

// Register adds the serve command to the application
func (cmd *ServeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "serve",
		Usage:     "Run the web interface",
		UsageText: "practica serve [--addr host:port]",
		Description: `Serves the practice log and challenge listing over HTTP.

Server settings are read from PRACTICA_* environment variables
(PRACTICA_ADDR, PRACTICA_READ_TIMEOUT, PRACTICA_RATE_LIMIT, ...).
--addr overrides PRACTICA_ADDR.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Destination: &cmd.addr,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ServeCmd) run(ctx context.Context, c *cli.Command) error {
	cfg, err := web.LoadConfig()
	if err != nil {
		return fmt.Errorf("load web config: %w", err)
	}
	if cmd.addr != "" {
		cfg.Addr = cmd.addr
	}

	engine, err := web.NewEngine()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	logger := log.With().Str("component", "web").Logger()
	handler := web.NewHandler(cmd.flags.Entries, cmd.flags.Tracker, engine, cmd.flags.Config.Export.Sheet, cmd.flags.Now)
	router := web.NewRouter(cfg, logger, handler)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	printerFor(ctx, c).Infof("Listening on http://%s", cfg.Addr)
	return web.NewServer(cfg, logger, router).Run(ctx)
}
