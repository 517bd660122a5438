package ingestion

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"

	"github.com/heatsight/heatsight-backend/infra"
	"github.com/heatsight/heatsight-backend/utils"
)

const (
	defaultStabilityWindow = 2 * time.Second
	defaultStabilityPoll   = 200 * time.Millisecond
	livenessLogInterval    = 5 * time.Minute
)

// DirectoryWatcher watches the incoming directory and hands files to the
// coordinator once they have been stable (no size change) for the full
// stability window. Exporters write large CSVs over several seconds, so
// reacting to the first write event would read truncated files.
type DirectoryWatcher struct {
	coordinator     *Coordinator
	config          infra.IngestionConfig
	stabilityWindow time.Duration
	stabilityPoll   time.Duration
}

type pendingFile struct {
	size        int64
	stableSince time.Time
}

func NewDirectoryWatcher(coordinator *Coordinator, config infra.IngestionConfig) *DirectoryWatcher {
	stabilityWindow := defaultStabilityWindow
	if config.StabilityWindowMs > 0 {
		stabilityWindow = time.Duration(config.StabilityWindowMs) * time.Millisecond
	}
	stabilityPoll := defaultStabilityPoll
	if config.StabilityPollMs > 0 {
		stabilityPoll = time.Duration(config.StabilityPollMs) * time.Millisecond
	}

	return &DirectoryWatcher{
		coordinator:     coordinator,
		config:          config,
		stabilityWindow: stabilityWindow,
		stabilityPoll:   stabilityPoll,
	}
}

// Run watches the incoming directory until the context is canceled. Files
// already present at startup are picked up too, so a restart never strands
// a batch. All coordinator calls happen on this goroutine: file handling is
// strictly sequential.
func (w *DirectoryWatcher) Run(ctx context.Context) error {
	logger := utils.LoggerFromContext(ctx)

	if err := w.coordinator.EnsureDirs(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "error creating filesystem watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(w.config.IncomingDir); err != nil {
		return errors.Wrapf(err, "error watching directory %s", w.config.IncomingDir)
	}

	pending := make(map[string]pendingFile)

	if err := w.enqueueExisting(pending); err != nil {
		return err
	}

	logger.InfoContext(ctx, "watching for incoming files", "dir", w.config.IncomingDir)

	ticker := time.NewTicker(w.stabilityPoll)
	defer ticker.Stop()

	liveness := time.NewTicker(livenessLogInterval)
	defer liveness.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("filesystem watcher closed")
			}
			if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) {
				w.track(pending, event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("filesystem watcher closed")
			}
			logger.ErrorContext(ctx, "filesystem watcher error", "error", err.Error())

		case <-ticker.C:
			w.flushStable(ctx, pending)

		case <-liveness.C:
			logger.InfoContext(ctx, "ingestion watcher alive",
				"pending_files", len(pending),
				"pending_batches", w.coordinator.PendingBatches())
		}
	}
}

func (w *DirectoryWatcher) enqueueExisting(pending map[string]pendingFile) error {
	entries, err := os.ReadDir(w.config.IncomingDir)
	if err != nil {
		return errors.Wrapf(err, "error listing directory %s", w.config.IncomingDir)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		w.track(pending, filepath.Join(w.config.IncomingDir, entry.Name()))
	}
	return nil
}

func (w *DirectoryWatcher) track(pending map[string]pendingFile, filePath string) {
	name := filepath.Base(filePath)
	if strings.HasPrefix(name, ".") {
		return
	}

	info, err := os.Stat(filePath)
	if err != nil {
		// already moved or deleted, drop it
		delete(pending, filePath)
		return
	}
	if info.IsDir() {
		return
	}

	entry, ok := pending[filePath]
	if !ok || entry.size != info.Size() {
		pending[filePath] = pendingFile{size: info.Size(), stableSince: time.Now()}
	}
}

// flushStable re-stats every pending file and hands over those whose size
// has not changed for the full stability window.
func (w *DirectoryWatcher) flushStable(ctx context.Context, pending map[string]pendingFile) {
	now := time.Now()
	for filePath, entry := range pending {
		info, err := os.Stat(filePath)
		if err != nil {
			delete(pending, filePath)
			continue
		}
		if info.Size() != entry.size {
			pending[filePath] = pendingFile{size: info.Size(), stableSince: now}
			continue
		}
		if now.Sub(entry.stableSince) < w.stabilityWindow {
			continue
		}

		delete(pending, filePath)
		w.coordinator.HandleNewFile(ctx, filePath)
	}
}
