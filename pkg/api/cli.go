package api

import (
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/railquery/railquery/pkg/config"
	"github.com/railquery/railquery/pkg/gateway"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the web API over the National Rail gateway",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "path to a railquery config file",
					},
				},
				Action: func(c *cli.Context) error {
					cfg := config.Load(c.String("config"))

					if cfg.Gateway.AccessToken == "" {
						log.Fatal().Msg("No access token configured")
					}

					client := gateway.NewClient(cfg.Gateway)

					return SetupServer(c.String("listen"), client)
				},
			},
		},
	}
}
