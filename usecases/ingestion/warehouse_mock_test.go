package ingestion

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/heatsight/heatsight-backend/models"
	"github.com/heatsight/heatsight-backend/repositories"
)

type mockWarehouseRepository struct {
	mock.Mock
}

func (m *mockWarehouseRepository) GetUuidForBuilding(ctx context.Context, exec repositories.Executor, name string) (string, error) {
	args := m.Called(ctx, exec, name)
	return args.String(0), args.Error(1)
}

func (m *mockWarehouseRepository) UpsertBuilding(ctx context.Context, exec repositories.Executor, building models.BuildingUpsert) error {
	args := m.Called(ctx, exec, building)
	return args.Error(0)
}

func (m *mockWarehouseRepository) InsertDailyMetrics(ctx context.Context, exec repositories.Executor, metrics models.DailyMetrics) error {
	args := m.Called(ctx, exec, metrics)
	return args.Error(0)
}

func (m *mockWarehouseRepository) InsertMonthlyMetrics(ctx context.Context, exec repositories.Executor, metrics models.MonthlyMetrics) error {
	args := m.Called(ctx, exec, metrics)
	return args.Error(0)
}

func (m *mockWarehouseRepository) InsertWeatherData(ctx context.Context, exec repositories.Executor, observation models.WeatherObservation) error {
	args := m.Called(ctx, exec, observation)
	return args.Error(0)
}

func (m *mockWarehouseRepository) UpsertDashboardRow(ctx context.Context, exec repositories.Executor, row models.DashboardRow) error {
	args := m.Called(ctx, exec, row)
	return args.Error(0)
}
