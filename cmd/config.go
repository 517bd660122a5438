package cmd

import (
	"github.com/heatsight/heatsight-backend/infra"
	"github.com/heatsight/heatsight-backend/utils"
)

type serviceConfig struct {
	env           string
	loggingFormat string
	sentryDsn     string
}

func readServiceConfig() serviceConfig {
	return serviceConfig{
		env:           utils.GetEnv("ENV", "development"),
		loggingFormat: utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:     utils.GetEnv("SENTRY_DSN", ""),
	}
}

func readPgConfig() infra.PgConfig {
	config := infra.PgConfig{
		ConnectionString:    utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:            utils.GetEnv("PG_DATABASE", "heatsight"),
		DbConnectWithSocket: utils.GetEnv("PG_CONNECT_WITH_SOCKET", false),
		Port:                utils.GetEnv("PG_PORT", "5432"),
		MaxPoolConnections:  utils.GetEnv("PG_MAX_POOL_SIZE", infra.MAX_CONNECTIONS),
		SslMode:             utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
	// without a full connection string the individual credentials are
	// mandatory, fail fast instead of at the first connection attempt
	if config.ConnectionString == "" {
		config.Hostname = utils.GetRequiredEnv[string]("PG_HOSTNAME")
		config.User = utils.GetRequiredEnv[string]("PG_USER")
		config.Password = utils.GetRequiredEnv[string]("PG_PASSWORD")
	}
	return config
}

func readIngestionConfig() infra.IngestionConfig {
	return infra.IngestionConfig{
		IncomingDir:       utils.GetEnv("CSV_INCOMING_DIR", "./data/incoming"),
		ProcessedDir:      utils.GetEnv("CSV_PROCESSED_DIR", "./data/processed"),
		ErrorDir:          utils.GetEnv("CSV_ERROR_DIR", "./data/errors"),
		StabilityWindowMs: utils.GetEnv("CSV_STABILITY_WINDOW_MS", 2000),
		StabilityPollMs:   utils.GetEnv("CSV_STABILITY_POLL_MS", 200),
	}
}
