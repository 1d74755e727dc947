package helpers

import (
	"github.com/rs/zerolog"

	"github.com/promq-io/promq/internal/config"
	"github.com/promq-io/promq/internal/logging"
	"github.com/promq-io/promq/internal/promapi"
)

// API client setup shared by all query-bearing commands.
//
// Server URL priority:
//  1. --server flag (highest)
//  2. PROMQ_SERVER_URL env var
//  3. ~/.promq/config.yaml server_url
//  4. http://localhost:9090 (default)

// APIClient builds the API client for one command invocation.
// serverOverride, when non-empty, wins over file and environment config.
func APIClient(serverOverride string, verbose bool) (*promapi.Client, zerolog.Logger, error) {
	logCfg := logging.DefaultConfig()
	if verbose {
		logCfg.Level = "debug"
	}
	logger := logging.New(logCfg)

	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, logger, err
	}

	if serverOverride != "" {
		cfg.ServerURL = serverOverride
	}

	if err := config.Validate(cfg); err != nil {
		return nil, logger, err
	}

	logger.Debug().Str("server", cfg.ServerURL).Msg("resolved server")

	return promapi.NewClient(cfg, logger), logger, nil
}
