package ingestion

import (
	"context"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/heatsight/heatsight-backend/models"
	"github.com/heatsight/heatsight-backend/repositories"
	"github.com/heatsight/heatsight-backend/usecases/executor_factory"
	"github.com/heatsight/heatsight-backend/utils"
)

// OverviewHandler loads weather observations and refreshes static building
// attributes. Weather rows are valid without an asset name, and an unknown
// asset only downgrades the row to a pure weather observation, it never
// skips it.
type OverviewHandler struct {
	executorFactory executor_factory.ExecutorFactory
	warehouse       WarehouseRepository
}

func NewOverviewHandler(executorFactory executor_factory.ExecutorFactory, warehouse WarehouseRepository) *OverviewHandler {
	return &OverviewHandler{
		executorFactory: executorFactory,
		warehouse:       warehouse,
	}
}

func (h *OverviewHandler) Process(ctx context.Context, filePath string) error {
	logger := utils.LoggerFromContext(ctx)
	fileName := filepath.Base(filePath)

	rows, err := ReadCsvRows(filePath)
	if err != nil {
		return err
	}

	exec := h.executorFactory.NewExecutor()
	processed, skipped := 0, 0

	for _, row := range rows {
		timePeriodRaw := row.Get("timestamp_weather").AsString()
		if timePeriodRaw == "" {
			logger.WarnContext(ctx, "skipping row with missing weather timestamp", "file", fileName)
			skipped++
			continue
		}

		timePeriod, err := parseIsoDate(timePeriodRaw)
		if err != nil {
			logger.WarnContext(ctx, "skipping row with unparseable weather timestamp",
				"file", fileName, "timestamp_weather", timePeriodRaw)
			skipped++
			continue
		}

		assetName := row.Get("asset_name").AsString()
		if assetName != "" {
			if err := h.updateBuilding(ctx, exec, row, assetName); err != nil {
				return err
			}
		}

		err = h.warehouse.InsertWeatherData(ctx, exec, models.WeatherObservation{
			AssetName:          optionalString(row.Get("asset_name")),
			TimePeriod:         timePeriod,
			Cloudiness:         optionalFloat(row.Get("cloudiness")),
			OutdoorTemperature: optionalFloat(row.Get("outdoor_temperature")),
		})
		if err != nil {
			return err
		}
		processed++
	}

	logger.InfoContext(ctx, "overview file processed",
		"file", fileName, "rows", processed, "skipped", skipped)
	return nil
}

// updateBuilding refreshes the static attributes of the row's asset. An
// unknown asset is only logged: the weather observation itself still counts.
func (h *OverviewHandler) updateBuilding(ctx context.Context, exec repositories.Executor, row models.RawRow, assetName string) error {
	logger := utils.LoggerFromContext(ctx)

	buildingUuid, err := h.warehouse.GetUuidForBuilding(ctx, exec, assetName)
	if errors.Is(err, models.NotFoundError) {
		logger.WarnContext(ctx, "unknown asset, static building details not updated",
			"asset", assetName)
		return nil
	}
	if err != nil {
		return err
	}

	upsert := models.BuildingUpsert{
		Uuid: buildingUuid,
		Name: &assetName,
	}
	if v := row.Get("asset_type"); !v.IsAbsent() {
		s := v.AsString()
		upsert.AssetType = &s
	}
	if v := row.Get("asset_status"); !v.IsAbsent() {
		s := v.AsString()
		upsert.AssetStatus = &s
	}
	if active, ok := row.Get("asset_active").AsBool(); ok {
		upsert.AssetActive = &active
	}
	if v := optionalFloat(row.Get("asset_latitude")); v.Valid {
		upsert.AssetLatitude = &v.Float64
	}
	if v := optionalFloat(row.Get("asset_longitude")); v.Valid {
		upsert.AssetLongitude = &v.Float64
	}

	return h.warehouse.UpsertBuilding(ctx, exec, upsert)
}
