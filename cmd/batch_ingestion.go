package cmd

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/heatsight/heatsight-backend/infra"
	"github.com/heatsight/heatsight-backend/jobs"
	"github.com/heatsight/heatsight-backend/repositories"
	"github.com/heatsight/heatsight-backend/usecases"
	"github.com/heatsight/heatsight-backend/utils"
)

// RunBatchIngestion sweeps the incoming directory once and exits, for
// cron-style deployments.
func RunBatchIngestion() error {
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

	return jobs.IngestPendingBatches(ctx, uc, ingestionConfig.IncomingDir)
}
