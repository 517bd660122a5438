package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/heatsight/heatsight-backend/models"
	"github.com/heatsight/heatsight-backend/utils"
)

const TABLE_DAILY_METRICS = "daily_metrics"

type DBDailyMetrics struct {
	BuildingUuid      string     `db:"building_uuid"`
	TimePeriod        time.Time  `db:"time_period"`
	Demand            null.Float `db:"demand"`
	Flow              null.Float `db:"flow"`
	TemperatureSupply null.Float `db:"temperature_supply"`
	TemperatureReturn null.Float `db:"temperature_return"`
	CtrlActivity      null.Float `db:"ctrl_activity"`
	Efficiency        null.Float `db:"efficiency"`
	RankOverall       null.Float `db:"rank_overall"`
}

var SelectDailyMetricsColumns = utils.ColumnList[DBDailyMetrics]()

func DailyMetricsToMap(m models.DailyMetrics) map[string]any {
	return map[string]any{
		"building_uuid":      m.BuildingUuid,
		"time_period":        m.TimePeriod,
		"demand":             m.Demand,
		"flow":               m.Flow,
		"temperature_supply": m.TemperatureSupply,
		"temperature_return": m.TemperatureReturn,
		"ctrl_activity":      m.CtrlActivity,
		"efficiency":         m.Efficiency,
		"rank_overall":       m.RankOverall,
	}
}
