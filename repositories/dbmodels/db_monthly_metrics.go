package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/heatsight/heatsight-backend/models"
	"github.com/heatsight/heatsight-backend/utils"
)

const TABLE_MONTHLY_METRICS = "monthly_metrics"

type DBMonthlyMetrics struct {
	BuildingUuid     string     `db:"building_uuid"`
	TimePeriod       time.Time  `db:"time_period"`
	BuildingImpact   null.Float `db:"building_impact"`
	SavingKwh        null.Float `db:"saving_kwh"`
	SavingEnergyPerc null.Float `db:"saving_energy_perc"`
	SavingEnergySek  null.Float `db:"saving_energy_sek"`
	SavingDemandSek  null.Float `db:"saving_demand_sek"`
	SavingRtSek      null.Float `db:"saving_rt_sek"`
	SavingVolumeSek  null.Float `db:"saving_volume_sek"`
	SavingTotalSek   null.Float `db:"saving_total_sek"`
	IdtAvg           null.Float `db:"idt_avg"`
	IdtWanted        null.Float `db:"idt_wanted"`
}

var SelectMonthlyMetricsColumns = utils.ColumnList[DBMonthlyMetrics]()

func MonthlyMetricsToMap(m models.MonthlyMetrics) map[string]any {
	return map[string]any{
		"building_uuid":      m.BuildingUuid,
		"time_period":        m.TimePeriod,
		"building_impact":    m.BuildingImpact,
		"saving_kwh":         m.SavingKwh,
		"saving_energy_perc": m.SavingEnergyPerc,
		"saving_energy_sek":  m.SavingEnergySek,
		"saving_demand_sek":  m.SavingDemandSek,
		"saving_rt_sek":      m.SavingRtSek,
		"saving_volume_sek":  m.SavingVolumeSek,
		"saving_total_sek":   m.SavingTotalSek,
		"idt_avg":            m.IdtAvg,
		"idt_wanted":         m.IdtWanted,
	}
}
