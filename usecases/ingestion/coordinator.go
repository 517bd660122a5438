package ingestion

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/heatsight/heatsight-backend/infra"
	"github.com/heatsight/heatsight-backend/models"
	"github.com/heatsight/heatsight-backend/utils"
)

// FileHandler loads one CSV file of a given type into the warehouse.
type FileHandler interface {
	Process(ctx context.Context, filePath string) error
}

var batchDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// Coordinator classifies incoming files, assembles them into batches and
// runs a completed batch through the loaders in a fixed order. A single
// mutex serializes batch processing: loaders of different batches share the
// buildings table and must never interleave.
type Coordinator struct {
	mu       sync.Mutex
	tracker  *BatchTracker
	handlers map[models.FileType]FileHandler
	config   infra.IngestionConfig
}

func NewCoordinator(config infra.IngestionConfig, handlers map[models.FileType]FileHandler) *Coordinator {
	return &Coordinator{
		tracker:  NewBatchTracker(),
		handlers: handlers,
		config:   config,
	}
}

// PendingBatches reports how many incomplete batches are waiting for files.
func (c *Coordinator) PendingBatches() int {
	return c.tracker.Pending()
}

// EnsureDirs creates the incoming, processed and error directories so the
// service can start against an empty data volume.
func (c *Coordinator) EnsureDirs() error {
	for _, dir := range []string{c.config.IncomingDir, c.config.ProcessedDir, c.config.ErrorDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "error creating directory %s", dir)
		}
	}
	return nil
}

// HandleNewFile registers one stable file with its batch and processes the
// batch if this file completed it. Files matching no known type are logged
// and left in place for an operator to inspect.
func (c *Coordinator) HandleNewFile(ctx context.Context, filePath string) {
	logger := utils.LoggerFromContext(ctx)
	fileName := filepath.Base(filePath)

	fileType, ok := classifyFile(fileName)
	if !ok {
		logger.WarnContext(ctx, "ignoring file matching no known type", "file", fileName)
		return
	}

	batchKey := batchKeyFor(fileName)
	logger.InfoContext(ctx, "registered incoming file",
		"file", fileName, "type", string(fileType), "batch", batchKey)

	if c.tracker.Register(batchKey, fileType, filePath) {
		files, ok := c.tracker.Take(batchKey)
		if !ok {
			return
		}
		c.processBatch(ctx, batchKey, files)
	}
}

func classifyFile(fileName string) (models.FileType, bool) {
	for _, fileType := range models.RequiredFileTypes {
		if strings.Contains(fileName, string(fileType)) {
			return fileType, true
		}
	}
	return "", false
}

func batchKeyFor(fileName string) string {
	if date := batchDatePattern.FindString(fileName); date != "" {
		return date
	}
	return models.DefaultBatchKey
}

// processBatch runs the batch's loaders in processing order. The outcome is
// all-or-nothing at the file level: on the first loader error the remaining
// loaders are skipped and every file of the batch moves to the error
// directory, otherwise every file moves to the processed directory. Errors
// never propagate to the watcher loop.
func (c *Coordinator) processBatch(ctx context.Context, batchKey string, files models.BatchFiles) {
	c.mu.Lock()
	defer c.mu.Unlock()

	logger := utils.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "batch complete, processing", "batch", batchKey)

	var batchErr error
	for _, fileType := range models.ProcessingOrder {
		filePath := files[fileType]
		handler, ok := c.handlers[fileType]
		if !ok {
			batchErr = errors.Newf("no handler registered for file type %s", fileType)
			break
		}

		logger.InfoContext(ctx, "processing file",
			"batch", batchKey, "type", string(fileType), "file", filepath.Base(filePath))
		if err := handler.Process(ctx, filePath); err != nil {
			batchErr = errors.Wrapf(err, "error processing %s file %s", fileType, filepath.Base(filePath))
			break
		}
	}

	if batchErr != nil {
		logger.ErrorContext(ctx, "batch failed, moving files to error directory",
			"batch", batchKey, "error", batchErr.Error())
		utils.LogAndReportSentryError(ctx, batchErr)
		c.moveBatch(ctx, files, c.config.ErrorDir)
		return
	}

	logger.InfoContext(ctx, "batch processed", "batch", batchKey)
	c.moveBatch(ctx, files, c.config.ProcessedDir)
}

func (c *Coordinator) moveBatch(ctx context.Context, files models.BatchFiles, destDir string) {
	logger := utils.LoggerFromContext(ctx)
	for _, filePath := range files {
		dest := filepath.Join(destDir, filepath.Base(filePath))
		if err := os.Rename(filePath, dest); err != nil {
			logger.ErrorContext(ctx, "error moving file",
				"file", filePath, "dest", dest, "error", err.Error())
		}
	}
}
