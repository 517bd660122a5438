package ingestion

import (
	"context"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/heatsight/heatsight-backend/models"
	"github.com/heatsight/heatsight-backend/repositories"
	"github.com/heatsight/heatsight-backend/usecases/executor_factory"
	"github.com/heatsight/heatsight-backend/utils"
)

// RetrospectHandler loads the authoritative daily export. Each row carries
// its own warehouse UUID, so this is the loader that creates buildings and
// primes coordinates for the rest of the batch. The three writes of one row
// (building, daily metrics, dashboard record) share a transaction: a
// building must never exist without its dashboard baseline.
type RetrospectHandler struct {
	executorFactory executor_factory.ExecutorFactory
	warehouse       WarehouseRepository
}

func NewRetrospectHandler(executorFactory executor_factory.ExecutorFactory, warehouse WarehouseRepository) *RetrospectHandler {
	return &RetrospectHandler{
		executorFactory: executorFactory,
		warehouse:       warehouse,
	}
}

func (h *RetrospectHandler) Process(ctx context.Context, filePath string) error {
	logger := utils.LoggerFromContext(ctx)
	fileName := filepath.Base(filePath)

	rows, err := ReadCsvRows(filePath)
	if err != nil {
		return err
	}

	processed, skipped := 0, 0

	for _, row := range rows {
		buildingName := row.Get("building_control").AsString()
		buildingUuid := row.Get("uuid").AsString()
		timePeriodRaw := row.Get("time_period").AsString()
		if buildingName == "" || buildingUuid == "" || timePeriodRaw == "" {
			logger.WarnContext(ctx, "skipping row with missing building, uuid or time period",
				"file", fileName)
			skipped++
			continue
		}
		if _, err := uuid.Parse(buildingUuid); err != nil {
			logger.WarnContext(ctx, "skipping row with malformed uuid",
				"file", fileName, "uuid", buildingUuid)
			skipped++
			continue
		}

		timePeriod, err := parseSlashDate(timePeriodRaw)
		if err != nil {
			logger.WarnContext(ctx, "skipping row with unparseable time period",
				"file", fileName, "time_period", timePeriodRaw)
			skipped++
			continue
		}

		err = h.executorFactory.Transaction(ctx, func(tx repositories.Executor) error {
			upsert := models.BuildingUpsert{
				Uuid: buildingUuid,
				Name: &buildingName,
			}
			if v := optionalFloat(row.Get("asset_latitude")); v.Valid {
				upsert.AssetLatitude = &v.Float64
			}
			if v := optionalFloat(row.Get("asset_longitude")); v.Valid {
				upsert.AssetLongitude = &v.Float64
			}
			if err := h.warehouse.UpsertBuilding(ctx, tx, upsert); err != nil {
				return err
			}

			err := h.warehouse.InsertDailyMetrics(ctx, tx, models.DailyMetrics{
				BuildingUuid: buildingUuid,
				TimePeriod:   timePeriod,
				Efficiency:   optionalFloat(row.Get("efficiency")),
				RankOverall:  optionalFloat(row.Get("rank_overall")),
			})
			if err != nil {
				return err
			}

			return h.warehouse.UpsertDashboardRow(ctx, tx, buildDashboardRow(row, buildingUuid, timePeriod))
		})
		if errors.Is(err, models.ConflictError) {
			// the name belongs to another uuid, loading this row would
			// silently re-home every metric of that building
			logger.WarnContext(ctx, "skipping row whose building name is registered under another uuid",
				"file", fileName, "building", buildingName, "uuid", buildingUuid)
			skipped++
			continue
		}
		if err != nil {
			return err
		}
		processed++
	}

	logger.InfoContext(ctx, "retrospect file processed",
		"file", fileName, "rows", processed, "skipped", skipped)
	return nil
}
