package jobs

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/heatsight/heatsight-backend/usecases"
)

const pendingBatchesTimeout = 1 * time.Hour

// IngestPendingBatches is the one-shot variant of the watcher: it sweeps the
// incoming directory once and registers every file already there. Complete
// batches are processed, partial ones are left in place for the next run.
// Meant for cron-style deployments where the service is not kept running.
func IngestPendingBatches(ctx context.Context, uc usecases.Usecases, incomingDir string) error {
	return executeWithMonitoring(
		ctx,
		uc,
		"ingest-pending-batches",
		func(ctx context.Context, uc usecases.Usecases) error {
			ctx, cancel := context.WithTimeout(ctx, pendingBatchesTimeout)
			defer cancel()

			coordinator := uc.NewIngestionCoordinator()
			if err := coordinator.EnsureDirs(); err != nil {
				return err
			}

			entries, err := os.ReadDir(incomingDir)
			if err != nil {
				return errors.Wrapf(err, "error listing directory %s", incomingDir)
			}
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				coordinator.HandleNewFile(ctx, filepath.Join(incomingDir, entry.Name()))
			}
			return nil
		},
	)
}
