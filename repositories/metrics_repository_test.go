package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatsight/heatsight-backend/models"
)

// anyArgs returns n pgxmock.AnyArg() matchers: pgxmock requires the argument
// count to be declared even when the values themselves are not asserted.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestInsertDailyMetrics(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWarehouseDbRepository()

	mock.ExpectExec("INSERT INTO daily_metrics").
		WithArgs(anyArgs(9)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.InsertDailyMetrics(context.Background(), mock, models.DailyMetrics{
		BuildingUuid: "uuid-1",
		TimePeriod:   time.Date(2024, time.January, 13, 0, 0, 0, 0, time.UTC),
		Demand:       null.FloatFrom(120.5),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertMonthlyMetricsMapsUniqueViolationToConflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWarehouseDbRepository()

	mock.ExpectExec("INSERT INTO monthly_metrics").
		WithArgs(anyArgs(12)...).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err = repo.InsertMonthlyMetrics(context.Background(), mock, models.MonthlyMetrics{
		BuildingUuid: "uuid-1",
		TimePeriod:   time.Date(2024, time.January, 13, 0, 0, 0, 0, time.UTC),
	})
	assert.True(t, errors.Is(err, models.ConflictError))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertWeatherDataAcceptsMissingAssetName(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWarehouseDbRepository()

	mock.ExpectExec("INSERT INTO weather_data").
		WithArgs(anyArgs(4)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.InsertWeatherData(context.Background(), mock, models.WeatherObservation{
		AssetName:          null.String{},
		TimePeriod:         time.Date(2024, time.January, 13, 8, 0, 0, 0, time.UTC),
		Cloudiness:         null.FloatFrom(0.5),
		OutdoorTemperature: null.FloatFrom(-2),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertDashboardRowOverwritesOnConflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWarehouseDbRepository()

	mock.ExpectExec("INSERT INTO dashboard_data .* ON CONFLICT \\(uuid, time_period\\) DO UPDATE SET .*efficiency = EXCLUDED.efficiency").
		WithArgs(anyArgs(89)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.UpsertDashboardRow(context.Background(), mock, models.DashboardRow{
		Uuid:       "uuid-1",
		TimePeriod: time.Date(2024, time.January, 13, 0, 0, 0, 0, time.UTC),
		Efficiency: 0.92,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
