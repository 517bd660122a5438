package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/heatsight/heatsight-backend/models"
	"github.com/heatsight/heatsight-backend/utils"
)

const TABLE_WEATHER_DATA = "weather_data"

type DBWeatherData struct {
	AssetName          null.String `db:"asset_name"`
	TimePeriod         time.Time   `db:"time_period"`
	Cloudiness         null.Float  `db:"cloudiness"`
	OutdoorTemperature null.Float  `db:"outdoor_temperature"`
}

var SelectWeatherDataColumns = utils.ColumnList[DBWeatherData]()

func WeatherObservationToMap(w models.WeatherObservation) map[string]any {
	return map[string]any{
		"asset_name":          w.AssetName,
		"time_period":         w.TimePeriod,
		"cloudiness":          w.Cloudiness,
		"outdoor_temperature": w.OutdoorTemperature,
	}
}
