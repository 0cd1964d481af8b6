package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/railquery/railquery/pkg/config"
	"github.com/railquery/railquery/pkg/render"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "service",
		Usage: "Gets the full details of a train service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "rid",
				Usage:    "RTTI ID of the service",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "token",
				Usage: "OpenLDBSVWS access token, overrides config",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a railquery config file",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the service details as JSON",
			},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Load(c.String("config"))

			if c.String("token") != "" {
				cfg.Gateway.AccessToken = c.String("token")
			}

			if cfg.Gateway.AccessToken == "" {
				log.Fatal().Msg("No access token configured")
			}

			client := NewClient(cfg.Gateway)

			details, err := client.ServiceDetails(context.Background(), c.String("rid"))
			if err != nil {
				return err
			}

			if c.Bool("json") {
				reduced, err := sheriff.Marshal(&sheriff.Options{
					Groups: []string{"basic", "detailed"},
				}, details)
				if err != nil {
					return err
				}

				output, err := json.MarshalIndent(reduced, "", "  ")
				if err != nil {
					return err
				}

				fmt.Println(string(output))

				return nil
			}

			return render.Write(os.Stdout, details)
		},
	}
}
