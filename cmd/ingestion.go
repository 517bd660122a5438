package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/heatsight/heatsight-backend/infra"
	"github.com/heatsight/heatsight-backend/repositories"
	"github.com/heatsight/heatsight-backend/usecases"
	"github.com/heatsight/heatsight-backend/utils"
)

// RunIngestionWatcher starts the long-running ingestion service: it watches
// the incoming directory and processes batches until SIGINT or SIGTERM.
func RunIngestionWatcher() error {
	config := readServiceConfig()
	pgConfig := readPgConfig()
	ingestionConfig := readIngestionConfig()

	logger := utils.NewLogger(config.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	infra.SetupSentry(config.sentryDsn, config.env)
	defer sentry.Flush(3 * time.Second)

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(), pgConfig.MaxPoolConnections)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}
	defer pool.Close()

	uc := usecases.NewUsecases(
		repositories.NewRepositories(pool),
		usecases.WithIngestionConfig(ingestionConfig),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher := uc.NewDirectoryWatcher()
	if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	logger.InfoContext(ctx, "ingestion service stopped")
	return nil
}
