package ingestion

import (
	"context"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/heatsight/heatsight-backend/models"
	"github.com/heatsight/heatsight-backend/usecases/executor_factory"
	"github.com/heatsight/heatsight-backend/utils"
)

// DemandControlHandler loads daily demand and flow readings. Rows that name
// an unknown building are skipped: Demand_Control never creates buildings,
// that is Retrospect's job and Retrospect runs first.
type DemandControlHandler struct {
	executorFactory executor_factory.ExecutorFactory
	warehouse       WarehouseRepository
}

func NewDemandControlHandler(executorFactory executor_factory.ExecutorFactory, warehouse WarehouseRepository) *DemandControlHandler {
	return &DemandControlHandler{
		executorFactory: executorFactory,
		warehouse:       warehouse,
	}
}

func (h *DemandControlHandler) Process(ctx context.Context, filePath string) error {
	logger := utils.LoggerFromContext(ctx)
	fileName := filepath.Base(filePath)

	rows, err := ReadCsvRows(filePath)
	if err != nil {
		return err
	}

	exec := h.executorFactory.NewExecutor()
	processed, skipped := 0, 0

	for _, row := range rows {
		buildingName := row.Get("building_control").AsString()
		timePeriodRaw := row.Get("time_period").AsString()
		if buildingName == "" || timePeriodRaw == "" {
			logger.WarnContext(ctx, "skipping row with missing building or time period", "file", fileName)
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

		buildingUuid, err := h.warehouse.GetUuidForBuilding(ctx, exec, buildingName)
		if errors.Is(err, models.NotFoundError) {
			logger.WarnContext(ctx, "skipping row for unknown building",
				"file", fileName, "building", buildingName)
			skipped++
			continue
		}
		if err != nil {
			return err
		}

		err = h.warehouse.InsertDailyMetrics(ctx, exec, models.DailyMetrics{
			BuildingUuid:      buildingUuid,
			TimePeriod:        timePeriod,
			Demand:            optionalFloat(row.Get("demand")),
			Flow:              optionalFloat(row.Get("flow")),
			TemperatureSupply: optionalFloat(row.Get("temperature_supply")),
			TemperatureReturn: optionalFloat(row.Get("temperature_return")),
			CtrlActivity:      optionalFloat(row.Get("ctrl_activity")),
		})
		if err != nil {
			return err
		}
		processed++
	}

	logger.InfoContext(ctx, "demand control file processed",
		"file", fileName, "rows", processed, "skipped", skipped)
	return nil
}
