// Package config loads railquery's settings from an optional YAML file
// with environment variable overrides.
package config

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/railquery/railquery/pkg/util"
)

const defaultEndpoint = "https://lite.realtime.nationalrail.co.uk/OpenLDBSVWS/ldbsv13.asmx"

type Config struct {
	Gateway GatewayConfig
}

type GatewayConfig struct {
	Endpoint    string
	AccessToken string
	Timeout     time.Duration
}

// configFile is the YAML shape. Durations are Go duration strings.
type configFile struct {
	Gateway struct {
		Endpoint    string `yaml:"endpoint"`
		AccessToken string `yaml:"access_token"`
		Timeout     string `yaml:"timeout"`
	} `yaml:"gateway"`
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty or the file doesn't exist), then the
// RAILQUERY_* environment variables.
func Load(path string) Config {
	config := Config{
		Gateway: GatewayConfig{
			Endpoint: defaultEndpoint,
			Timeout:  10 * time.Second,
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			log.Debug().Str("path", path).Msg("Loading config file")

			var file configFile
			if err := yaml.Unmarshal(data, &file); err != nil {
				log.Fatal().Err(err).Str("path", path).Msg("Failed to parse config file")
			}

			if file.Gateway.Endpoint != "" {
				config.Gateway.Endpoint = file.Gateway.Endpoint
			}

			if file.Gateway.AccessToken != "" {
				config.Gateway.AccessToken = file.Gateway.AccessToken
			}

			if file.Gateway.Timeout != "" {
				config.Gateway.Timeout = parseTimeout(file.Gateway.Timeout)
			}
		} else if !os.IsNotExist(err) {
			log.Fatal().Err(err).Str("path", path).Msg("Failed to read config file")
		}
	}

	env := util.GetEnvironmentVariables()

	if env["RAILQUERY_GATEWAY_ENDPOINT"] != "" {
		config.Gateway.Endpoint = env["RAILQUERY_GATEWAY_ENDPOINT"]
	}

	if env["RAILQUERY_ACCESS_TOKEN"] != "" {
		config.Gateway.AccessToken = env["RAILQUERY_ACCESS_TOKEN"]
	}

	if env["RAILQUERY_GATEWAY_TIMEOUT"] != "" {
		config.Gateway.Timeout = parseTimeout(env["RAILQUERY_GATEWAY_TIMEOUT"])
	}

	return config
}

func parseTimeout(text string) time.Duration {
	timeout, err := time.ParseDuration(text)
	if err != nil {
		log.Fatal().Err(err).Str("timeout", text).Msg("Invalid gateway timeout")
	}

	return timeout
}
