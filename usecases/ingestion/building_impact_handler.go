package ingestion

import (
	"context"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/heatsight/heatsight-backend/models"
	"github.com/heatsight/heatsight-backend/usecases/executor_factory"
	"github.com/heatsight/heatsight-backend/utils"
)

// BuildingImpactHandler loads monthly savings figures. The SEK columns
// arrive with thousands separators ("1,234.50") and the percentage
// column with a decimal comma ("12,5%"), so each goes through its own
// parser instead of the plain float coercion.
type BuildingImpactHandler struct {
	executorFactory executor_factory.ExecutorFactory
	warehouse       WarehouseRepository
}

func NewBuildingImpactHandler(executorFactory executor_factory.ExecutorFactory, warehouse WarehouseRepository) *BuildingImpactHandler {
	return &BuildingImpactHandler{
		executorFactory: executorFactory,
		warehouse:       warehouse,
	}
}

func (h *BuildingImpactHandler) Process(ctx context.Context, filePath string) error {
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

		savingTotalSek := optionalAmount(row.Get("saving_total_sek"))

		err = h.warehouse.InsertMonthlyMetrics(ctx, exec, models.MonthlyMetrics{
			BuildingUuid: buildingUuid,
			TimePeriod:   timePeriod,
			// the dashboard's headline impact figure is the total saving
			BuildingImpact:   savingTotalSek,
			SavingKwh:        optionalAmount(row.Get("saving_kwh")),
			SavingEnergyPerc: optionalPercent(row.Get("saving_energy")),
			SavingEnergySek:  optionalAmount(row.Get("saving_energy_sek")),
			SavingDemandSek:  optionalAmount(row.Get("saving_demand_sek")),
			SavingRtSek:      optionalAmount(row.Get("saving_rt_sek")),
			SavingVolumeSek:  optionalAmount(row.Get("saving_volume_sek")),
			SavingTotalSek:   savingTotalSek,
			IdtAvg:           optionalFloat(row.Get("idt_avg")),
			IdtWanted:        optionalFloat(row.Get("idt_wanted")),
		})
		if errors.Is(err, models.ConflictError) {
			// re-delivered batch: the month is already loaded for this building
			logger.WarnContext(ctx, "skipping already loaded monthly metrics row",
				"file", fileName, "building", buildingName, "time_period", timePeriodRaw)
			skipped++
			continue
		}
		if err != nil {
			return err
		}
		processed++
	}

	logger.InfoContext(ctx, "building impact file processed",
		"file", fileName, "rows", processed, "skipped", skipped)
	return nil
}
