package repositories

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/heatsight/heatsight-backend/models"
	"github.com/heatsight/heatsight-backend/repositories/dbmodels"
)

func (repo *WarehouseDbRepository) InsertDailyMetrics(ctx context.Context, exec Executor, metrics models.DailyMetrics) error {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_DAILY_METRICS).
		SetMap(dbmodels.DailyMetricsToMap(metrics))

	return ExecBuilder(ctx, exec, query)
}

// InsertMonthlyMetrics returns models.ConflictError when the building
// already has a row for the month, so an at-least-once re-delivery can be
// told apart from a real write failure.
func (repo *WarehouseDbRepository) InsertMonthlyMetrics(ctx context.Context, exec Executor, metrics models.MonthlyMetrics) error {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_MONTHLY_METRICS).
		SetMap(dbmodels.MonthlyMetricsToMap(metrics))

	err := ExecBuilder(ctx, exec, query)
	if IsUniqueViolationError(err) {
		return errors.Wrapf(models.ConflictError,
			"monthly metrics already loaded for building %s at %s",
			metrics.BuildingUuid, metrics.TimePeriod.Format("2006-01-02"))
	}
	return err
}

func (repo *WarehouseDbRepository) InsertWeatherData(ctx context.Context, exec Executor, observation models.WeatherObservation) error {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_WEATHER_DATA).
		SetMap(dbmodels.WeatherObservationToMap(observation))

	return ExecBuilder(ctx, exec, query)
}
