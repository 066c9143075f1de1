package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/itemsapi/cmd/app/commands"
	"github.com/allisson/itemsapi/internal/app"
	"github.com/allisson/itemsapi/internal/config"
)

func newFormatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func getAuthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:     "seed",
			Category: categoryAuth,
			Usage:    "Create the admin and external clients from ADMIN_CLIENT_* and EXTERNAL_CLIENT_*",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(cfg *config.Config, container *app.Container) error {
					clientUseCase, err := container.ClientUseCase()
					if err != nil {
						return err
					}
					return commands.RunSeed(ctx, clientUseCase, container.Logger(), cfg)
				})
			},
		},
		{
			Name:     "create-client",
			Category: categoryAuth,
			Usage:    "Create a new client with generated credentials",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Human-readable client name",
				},
				&cli.BoolFlag{
					Name:  "admin",
					Value: false,
					Usage: "Whether the client may manage other clients",
				},
				newFormatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(_ *config.Config, container *app.Container) error {
					clientUseCase, err := container.ClientUseCase()
					if err != nil {
						return err
					}
					return commands.RunCreateClient(
						ctx,
						clientUseCase,
						container.Logger(),
						cmd.String("name"),
						cmd.Bool("admin"),
						cmd.String("format"),
						commands.DefaultIO(),
					)
				})
			},
		},
		{
			Name:     "update-client",
			Category: categoryAuth,
			Usage:    "Update an existing client or regenerate its credentials",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Client ID",
				},
				&cli.StringFlag{
					Name:    "name",
					Aliases: []string{"n"},
					Usage:   "New client name",
				},
				&cli.BoolFlag{
					Name:  "admin",
					Usage: "Grant or revoke admin privileges",
				},
				&cli.BoolFlag{
					Name:  "regenerate-credentials",
					Usage: "Issue a new client_id and client_secret, invalidating the old ones",
				},
				newFormatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				opts := commands.UpdateClientOptions{
					ID:                    int64(cmd.Int("id")),
					RegenerateCredentials: cmd.Bool("regenerate-credentials"),
					Format:                cmd.String("format"),
				}
				if cmd.IsSet("name") {
					name := cmd.String("name")
					opts.Name = &name
				}
				if cmd.IsSet("admin") {
					isAdmin := cmd.Bool("admin")
					opts.IsAdmin = &isAdmin
				}

				return withContainer(ctx, func(_ *config.Config, container *app.Container) error {
					clientUseCase, err := container.ClientUseCase()
					if err != nil {
						return err
					}
					return commands.RunUpdateClient(ctx, clientUseCase, container.Logger(), opts, commands.DefaultIO())
				})
			},
		},
	}
}
