package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/itemsapi/cmd/app/commands"
	"github.com/allisson/itemsapi/internal/app"
	"github.com/allisson/itemsapi/internal/config"
)

const (
	categorySystem = "system"
	categoryAuth   = "clients"
)

func getCommands(version string) []*cli.Command {
	return append(getSystemCommands(version), getAuthCommands()...)
}

// withContainer loads the environment, builds a container for fn and shuts it down afterwards.
func withContainer(ctx context.Context, fn func(cfg *config.Config, container *app.Container) error) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	defer func() { _ = container.Shutdown(ctx) }()

	return fn(cfg, container)
}

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:     "server",
			Category: categorySystem,
			Usage:    "Serve the API (and /metrics when METRICS_ENABLED) until SIGINT or SIGTERM",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:     "migrate",
			Category: categorySystem,
			Usage:    "Apply pending migrations for DB_DRIVER",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "dir",
					Value: "migrations",
					Usage: "Directory holding the postgresql/ and mysql/ migration sets",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(cfg *config.Config, container *app.Container) error {
					source, err := commands.MigrationSource(cmd.String("dir"), cfg.DBDriver)
					if err != nil {
						return err
					}
					return commands.RunMigrations(container.Logger(), source, cfg.MigrationURL())
				})
			},
		},
	}
}
