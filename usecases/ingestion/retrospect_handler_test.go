package ingestion

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/heatsight/heatsight-backend/models"
	"github.com/heatsight/heatsight-backend/usecases/executor_factory"
)

const retrospectHeader = "Building (control),UUID,Time Period,Asset latitude,Asset longitude,Efficiency,Rank (overall),Most wanted,Demand (max)\n"

func TestRetrospectHandlerWritesBuildingMetricsAndDashboard(t *testing.T) {
	path := writeTempCsv(t, "Retrospect_2024-01-13.csv",
		retrospectHeader+
			"Main Street 1,1f7c1a6e-3f4b-4a6f-9a8e-2d5c9b7e4a10,1/13/2024,59.33,18.07,0.92,3,1,450.5\n")

	warehouse := new(mockWarehouseRepository)
	stub := executor_factory.NewExecutorFactoryStub()
	handler := NewRetrospectHandler(stub, warehouse)

	timePeriod := time.Date(2024, time.January, 13, 0, 0, 0, 0, time.UTC)

	warehouse.On("UpsertBuilding", mock.Anything, mock.Anything, mock.MatchedBy(func(b models.BuildingUpsert) bool {
		return b.Uuid == "1f7c1a6e-3f4b-4a6f-9a8e-2d5c9b7e4a10" &&
			b.Name != nil && *b.Name == "Main Street 1" &&
			b.AssetLatitude != nil && *b.AssetLatitude == 59.33 &&
			b.AssetLongitude != nil && *b.AssetLongitude == 18.07 &&
			b.AssetType == nil && b.AssetStatus == nil && b.AssetActive == nil
	})).Return(nil)
	warehouse.On("InsertDailyMetrics", mock.Anything, mock.Anything, models.DailyMetrics{
		BuildingUuid: "1f7c1a6e-3f4b-4a6f-9a8e-2d5c9b7e4a10",
		TimePeriod:   timePeriod,
		Efficiency:   null.FloatFrom(0.92),
		RankOverall:  null.FloatFrom(3),
	}).Return(nil)
	warehouse.On("UpsertDashboardRow", mock.Anything, mock.Anything, mock.MatchedBy(func(row models.DashboardRow) bool {
		return row.Uuid == "1f7c1a6e-3f4b-4a6f-9a8e-2d5c9b7e4a10" &&
			row.BuildingControl == "Main Street 1" &&
			row.TimePeriod.Equal(timePeriod) &&
			row.MostWanted == 1 &&
			row.DemandMax == 450.5 &&
			row.Efficiency == 0.92
	})).Return(nil)

	require.NoError(t, handler.Process(context.Background(), path))
	warehouse.AssertExpectations(t)
}

func TestRetrospectHandlerDefaultsMissingDashboardColumnsToZero(t *testing.T) {
	path := writeTempCsv(t, "Retrospect_2024-01-13.csv",
		retrospectHeader+
			"Main Street 1,1f7c1a6e-3f4b-4a6f-9a8e-2d5c9b7e4a10,1/13/2024,,,,,,\n")

	warehouse := new(mockWarehouseRepository)
	stub := executor_factory.NewExecutorFactoryStub()
	handler := NewRetrospectHandler(stub, warehouse)

	warehouse.On("UpsertBuilding", mock.Anything, mock.Anything, mock.MatchedBy(func(b models.BuildingUpsert) bool {
		// absent coordinates stay nil so existing values survive the upsert
		return b.AssetLatitude == nil && b.AssetLongitude == nil
	})).Return(nil)
	warehouse.On("InsertDailyMetrics", mock.Anything, mock.Anything, mock.MatchedBy(func(m models.DailyMetrics) bool {
		return !m.Efficiency.Valid && !m.RankOverall.Valid
	})).Return(nil)
	warehouse.On("UpsertDashboardRow", mock.Anything, mock.Anything, mock.MatchedBy(func(row models.DashboardRow) bool {
		return row.AssetLatitude == 0 && row.MostWanted == 0 && row.DemandMax == 0
	})).Return(nil)

	require.NoError(t, handler.Process(context.Background(), path))
	warehouse.AssertExpectations(t)
}

func TestRetrospectHandlerSkipsRowsMissingIdentity(t *testing.T) {
	path := writeTempCsv(t, "Retrospect_2024-01-13.csv",
		retrospectHeader+
			",1f7c1a6e-3f4b-4a6f-9a8e-2d5c9b7e4a10,1/13/2024,,,,,,\n"+
			"Main Street 1,,1/13/2024,,,,,,\n"+
			"Main Street 1,1f7c1a6e-3f4b-4a6f-9a8e-2d5c9b7e4a10,,,,,,,\n")

	warehouse := new(mockWarehouseRepository)
	stub := executor_factory.NewExecutorFactoryStub()
	handler := NewRetrospectHandler(stub, warehouse)

	require.NoError(t, handler.Process(context.Background(), path))
	warehouse.AssertNotCalled(t, "UpsertBuilding")
	warehouse.AssertNotCalled(t, "UpsertDashboardRow")
}

func TestRetrospectHandlerSkipsRowsWithMalformedUuid(t *testing.T) {
	path := writeTempCsv(t, "Retrospect_2024-01-13.csv",
		retrospectHeader+
			"Main Street 1,not-a-uuid,1/13/2024,,,,,,\n")

	warehouse := new(mockWarehouseRepository)
	stub := executor_factory.NewExecutorFactoryStub()
	handler := NewRetrospectHandler(stub, warehouse)

	require.NoError(t, handler.Process(context.Background(), path))
	warehouse.AssertNotCalled(t, "UpsertBuilding")
}

func TestRetrospectHandlerSkipsRowsWhoseNameBelongsToAnotherUuid(t *testing.T) {
	path := writeTempCsv(t, "Retrospect_2024-01-13.csv",
		retrospectHeader+
			"Main Street 1,1f7c1a6e-3f4b-4a6f-9a8e-2d5c9b7e4a10,1/13/2024,,,,,,\n"+
			"Main Street 2,7d2b9c4e-8a1f-4e6b-b3d7-5f0a2c8e6b91,1/13/2024,,,,,,\n")

	warehouse := new(mockWarehouseRepository)
	stub := executor_factory.NewExecutorFactoryStub()
	handler := NewRetrospectHandler(stub, warehouse)

	// the first name is already registered under a different uuid
	warehouse.On("UpsertBuilding", mock.Anything, mock.Anything, mock.MatchedBy(func(b models.BuildingUpsert) bool {
		return b.Uuid == "1f7c1a6e-3f4b-4a6f-9a8e-2d5c9b7e4a10"
	})).Return(errors.Wrap(models.ConflictError, "building name already registered under another uuid"))
	warehouse.On("UpsertBuilding", mock.Anything, mock.Anything, mock.MatchedBy(func(b models.BuildingUpsert) bool {
		return b.Uuid == "7d2b9c4e-8a1f-4e6b-b3d7-5f0a2c8e6b91"
	})).Return(nil)
	warehouse.On("InsertDailyMetrics", mock.Anything, mock.Anything, mock.MatchedBy(func(m models.DailyMetrics) bool {
		return m.BuildingUuid == "7d2b9c4e-8a1f-4e6b-b3d7-5f0a2c8e6b91"
	})).Return(nil)
	warehouse.On("UpsertDashboardRow", mock.Anything, mock.Anything, mock.MatchedBy(func(row models.DashboardRow) bool {
		return row.Uuid == "7d2b9c4e-8a1f-4e6b-b3d7-5f0a2c8e6b91"
	})).Return(nil)

	require.NoError(t, handler.Process(context.Background(), path))
	warehouse.AssertExpectations(t)
	warehouse.AssertNumberOfCalls(t, "UpsertDashboardRow", 1)
}

func TestRetrospectHandlerAbortsOnWriteError(t *testing.T) {
	path := writeTempCsv(t, "Retrospect_2024-01-13.csv",
		retrospectHeader+
			"Main Street 1,1f7c1a6e-3f4b-4a6f-9a8e-2d5c9b7e4a10,1/13/2024,59.33,18.07,0.92,3,1,450.5\n")

	warehouse := new(mockWarehouseRepository)
	stub := executor_factory.NewExecutorFactoryStub()
	handler := NewRetrospectHandler(stub, warehouse)

	warehouse.On("UpsertBuilding", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("connection lost"))

	assert.Error(t, handler.Process(context.Background(), path))
	warehouse.AssertNotCalled(t, "UpsertDashboardRow")
}
