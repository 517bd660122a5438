package ingestion

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/heatsight/heatsight-backend/models"
	"github.com/heatsight/heatsight-backend/usecases/executor_factory"
)

func TestOverviewHandlerUpdatesBuildingAndInsertsWeather(t *testing.T) {
	path := writeTempCsv(t, "Overview_2024-01-13.csv",
		"Asset name,Asset type,Asset status,Asset active,Asset latitude,Asset longitude,Timestamp (weather),Cloudiness,Outdoor temperature\n"+
			"Main Street 1,residential,active,1,59.33,18.07,2024-01-13T08:00:00,0.75,-4.2\n")

	warehouse := new(mockWarehouseRepository)
	stub := executor_factory.NewExecutorFactoryStub()
	handler := NewOverviewHandler(stub, warehouse)

	warehouse.On("GetUuidForBuilding", mock.Anything, mock.Anything, "Main Street 1").
		Return("uuid-1", nil)
	warehouse.On("UpsertBuilding", mock.Anything, mock.Anything, mock.MatchedBy(func(b models.BuildingUpsert) bool {
		return b.Uuid == "uuid-1" &&
			b.Name != nil && *b.Name == "Main Street 1" &&
			b.AssetType != nil && *b.AssetType == "residential" &&
			b.AssetStatus != nil && *b.AssetStatus == "active" &&
			b.AssetActive != nil && *b.AssetActive &&
			b.AssetLatitude != nil && *b.AssetLatitude == 59.33 &&
			b.AssetLongitude != nil && *b.AssetLongitude == 18.07
	})).Return(nil)
	warehouse.On("InsertWeatherData", mock.Anything, mock.Anything, models.WeatherObservation{
		AssetName:          null.StringFrom("Main Street 1"),
		TimePeriod:         time.Date(2024, time.January, 13, 8, 0, 0, 0, time.UTC),
		Cloudiness:         null.FloatFrom(0.75),
		OutdoorTemperature: null.FloatFrom(-4.2),
	}).Return(nil)

	require.NoError(t, handler.Process(context.Background(), path))
	warehouse.AssertExpectations(t)
}

func TestOverviewHandlerRecordsWeatherWithoutAssetName(t *testing.T) {
	path := writeTempCsv(t, "Overview_2024-01-13.csv",
		"Asset name,Timestamp (weather),Cloudiness,Outdoor temperature\n"+
			",2024-01-13T08:00:00,0.5,-2\n")

	warehouse := new(mockWarehouseRepository)
	stub := executor_factory.NewExecutorFactoryStub()
	handler := NewOverviewHandler(stub, warehouse)

	warehouse.On("InsertWeatherData", mock.Anything, mock.Anything, mock.MatchedBy(func(o models.WeatherObservation) bool {
		return !o.AssetName.Valid
	})).Return(nil)

	require.NoError(t, handler.Process(context.Background(), path))
	warehouse.AssertNotCalled(t, "GetUuidForBuilding")
	warehouse.AssertNotCalled(t, "UpsertBuilding")
}

func TestOverviewHandlerKeepsWeatherWhenAssetIsUnknown(t *testing.T) {
	path := writeTempCsv(t, "Overview_2024-01-13.csv",
		"Asset name,Timestamp (weather),Cloudiness,Outdoor temperature\n"+
			"Ghost House,2024-01-13T08:00:00,0.5,-2\n")

	warehouse := new(mockWarehouseRepository)
	stub := executor_factory.NewExecutorFactoryStub()
	handler := NewOverviewHandler(stub, warehouse)

	warehouse.On("GetUuidForBuilding", mock.Anything, mock.Anything, "Ghost House").
		Return("", errors.Wrap(models.NotFoundError, "building"))
	warehouse.On("InsertWeatherData", mock.Anything, mock.Anything, mock.MatchedBy(func(o models.WeatherObservation) bool {
		return o.AssetName.Valid && o.AssetName.String == "Ghost House"
	})).Return(nil)

	require.NoError(t, handler.Process(context.Background(), path))
	warehouse.AssertNotCalled(t, "UpsertBuilding")
	warehouse.AssertNumberOfCalls(t, "InsertWeatherData", 1)
}

func TestOverviewHandlerSkipsRowsWithoutTimestamp(t *testing.T) {
	path := writeTempCsv(t, "Overview_2024-01-13.csv",
		"Asset name,Timestamp (weather),Cloudiness\n"+
			"Main Street 1,,0.5\n")

	warehouse := new(mockWarehouseRepository)
	stub := executor_factory.NewExecutorFactoryStub()
	handler := NewOverviewHandler(stub, warehouse)

	require.NoError(t, handler.Process(context.Background(), path))
	warehouse.AssertNotCalled(t, "InsertWeatherData")
}
