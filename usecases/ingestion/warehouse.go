package ingestion

import (
	"context"

	"github.com/heatsight/heatsight-backend/models"
	"github.com/heatsight/heatsight-backend/repositories"
)

// WarehouseRepository is the warehouse surface the file handlers write
// through. Every call takes the executor decided by the caller, so a handler
// can run several writes inside one transaction.
type WarehouseRepository interface {
	GetUuidForBuilding(ctx context.Context, exec repositories.Executor, name string) (string, error)
	UpsertBuilding(ctx context.Context, exec repositories.Executor, building models.BuildingUpsert) error
	InsertDailyMetrics(ctx context.Context, exec repositories.Executor, metrics models.DailyMetrics) error
	InsertMonthlyMetrics(ctx context.Context, exec repositories.Executor, metrics models.MonthlyMetrics) error
	InsertWeatherData(ctx context.Context, exec repositories.Executor, observation models.WeatherObservation) error
	UpsertDashboardRow(ctx context.Context, exec repositories.Executor, row models.DashboardRow) error
}
