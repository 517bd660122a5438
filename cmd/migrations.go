package cmd

import (
	"github.com/heatsight/heatsight-backend/repositories"
	"github.com/heatsight/heatsight-backend/utils"
)

func RunMigrations() error {
	pgConfig := readPgConfig()
	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))

	return repositories.RunMigrations(pgConfig, logger)
}
