package models

import (
	"time"

	"github.com/guregu/null/v5"
)

// DailyMetrics is one day of operational readings for one building. Fed by
// Demand_Control (demand, flow, temperatures, control activity) and by
// Retrospect (efficiency, overall rank).
type DailyMetrics struct {
	BuildingUuid      string
	TimePeriod        time.Time
	Demand            null.Float
	Flow              null.Float
	TemperatureSupply null.Float
	TemperatureReturn null.Float
	CtrlActivity      null.Float
	Efficiency        null.Float
	RankOverall       null.Float
}

// MonthlyMetrics is one month of savings figures for one building, from
// Building_Impact. The SEK and percentage fields keep "value absent"
// distinct from a parsed zero: a missing saving is not a zero saving.
type MonthlyMetrics struct {
	BuildingUuid     string
	TimePeriod       time.Time
	BuildingImpact   null.Float
	SavingKwh        null.Float
	SavingEnergyPerc null.Float
	SavingEnergySek  null.Float
	SavingDemandSek  null.Float
	SavingRtSek      null.Float
	SavingVolumeSek  null.Float
	SavingTotalSek   null.Float
	IdtAvg           null.Float
	IdtWanted        null.Float
}

// WeatherObservation is one weather reading from an Overview export. The
// asset name is optional: weather rows are recorded even when they are not
// attached to a known building.
type WeatherObservation struct {
	AssetName          null.String
	TimePeriod         time.Time
	Cloudiness         null.Float
	OutdoorTemperature null.Float
}
