package ingestion

import (
	"time"

	"github.com/heatsight/heatsight-backend/models"
)

// buildDashboardRow maps a Retrospect row onto the wide dashboard record.
// Every numeric column is NOT NULL in the warehouse, so unparseable cells
// coerce to 0 here instead of being skipped.
func buildDashboardRow(row models.RawRow, buildingUuid string, timePeriod time.Time) models.DashboardRow {
	return models.DashboardRow{
		BuildingControl: row.Get("building_control").AsString(),
		PropertyMeter:   row.Get("property_meter").AsString(),
		CustomerGroup:   row.Get("customer_group").AsString(),
		GeoGroup:        row.Get("geo_group").AsString(),
		TypeGroup:       row.Get("type_group").AsString(),
		GenericGroup:    row.Get("generic_group").AsString(),
		Uuid:            buildingUuid,
		AssetLatitude:   row.Get("asset_latitude").AsFloat(),
		AssetLongitude:  row.Get("asset_longitude").AsFloat(),
		TimePeriod:      timePeriod,

		MostWanted:   row.Get("most_wanted").AsInt(),
		RankOverall:  row.Get("rank_overall").AsInt(),
		RankNetwork:  row.Get("rank_network").AsFloat(),
		RankCustomer: row.Get("rank_customer").AsFloat(),

		OverflowAbs:  row.Get("overflow_abs").AsFloat(),
		OverflowRel:  row.Get("overflow_rel").AsFloat(),
		OverflowSpec: row.Get("overflow_spec").AsFloat(),

		EnergyAbs:   row.Get("energy_abs").AsFloat(),
		VolumeAbs:   row.Get("volume_abs").AsFloat(),
		VolumeSpec:  row.Get("volume_spec").AsFloat(),
		VolumeTrend: row.Get("volume_trend").AsFloat(),

		FlowDim:    row.Get("flow_dim").AsFloat(),
		DemandSig:  row.Get("demand_sig").AsFloat(),
		DemandFlex: row.Get("demand_flex").AsFloat(),
		DemandK:    row.Get("demand_k").AsFloat(),
		DemandMax:  row.Get("demand_max").AsFloat(),
		DemandDim:  row.Get("demand_dim").AsFloat(),

		DtAbs:   row.Get("dt_abs").AsFloat(),
		DtVw:    row.Get("dt_vw").AsFloat(),
		DtIdeal: row.Get("dt_ideal").AsFloat(),
		DtTrend: row.Get("dt_trend").AsFloat(),
		DtSrd:   row.Get("dt_srd").AsFloat(),

		RtAbs:   row.Get("rt_abs").AsFloat(),
		RtVw:    row.Get("rt_vw").AsFloat(),
		RtTrend: row.Get("rt_trend").AsFloat(),
		RtSrd:   row.Get("rt_srd").AsFloat(),
		RtFlex:  row.Get("rt_flex").AsFloat(),

		Ntu:           row.Get("ntu").AsFloat(),
		NtuSrd:        row.Get("ntu_srd").AsFloat(),
		Lmtd:          row.Get("lmtd").AsFloat(),
		Efficiency:    row.Get("efficiency").AsFloat(),
		EfficiencySrd: row.Get("efficiency_srd").AsFloat(),
		SupplyAbs:     row.Get("supply_abs").AsFloat(),
		SupplyFlex:    row.Get("supply_flex").AsFloat(),

		FaultPrimLoss: row.Get("fault_prim_loss").AsFloat(),
		FaultSmirch:   row.Get("fault_smirch").AsFloat(),
		FaultHeatSys:  row.Get("fault_heat_sys").AsInt(),
		FaultValve:    row.Get("fault_valve").AsFloat(),
		FaultTransfer: row.Get("fault_transfer").AsFloat(),

		DataQualityMissingOdt:       row.Get("data_quality_missing_odt").AsFloat(),
		DataQualityMissingSupply:    row.Get("data_quality_missing_supply").AsFloat(),
		DataQualityMissingReturn:    row.Get("data_quality_missing_return").AsFloat(),
		DataQualityMissingFlow:      row.Get("data_quality_missing_flow").AsFloat(),
		DataQualityMissingEnergy:    row.Get("data_quality_missing_energy").AsFloat(),
		DataQualityMissingVolume:    row.Get("data_quality_missing_volume").AsFloat(),
		DataQualityMissingDemand:    row.Get("data_quality_missing_demand").AsFloat(),
		DataQualityMissingReturnSec: row.Get("data_quality_missing_return_sec").AsFloat(),
		DataQualityMissingSupplySec: row.Get("data_quality_missing_supply_sec").AsFloat(),

		DataQualityOutlierOdt:       row.Get("data_quality_outlier_odt").AsInt(),
		DataQualityOutlierSupply:    row.Get("data_quality_outlier_supply").AsInt(),
		DataQualityOutlierReturn:    row.Get("data_quality_outlier_return").AsInt(),
		DataQualityOutlierFlow:      row.Get("data_quality_outlier_flow").AsInt(),
		DataQualityOutlierEnergy:    row.Get("data_quality_outlier_energy").AsInt(),
		DataQualityOutlierVolume:    row.Get("data_quality_outlier_volume").AsInt(),
		DataQualityOutlierDemand:    row.Get("data_quality_outlier_demand").AsInt(),
		DataQualityOutlierReturnSec: row.Get("data_quality_outlier_return_sec").AsInt(),
		DataQualityOutlierSupplySec: row.Get("data_quality_outlier_supply_sec").AsInt(),

		DataQualityFrozenOdt:       row.Get("data_quality_frozen_odt").AsInt(),
		DataQualityFrozenSupply:    row.Get("data_quality_frozen_supply").AsFloat(),
		DataQualityFrozenReturn:    row.Get("data_quality_frozen_return").AsFloat(),
		DataQualityFrozenFlow:      row.Get("data_quality_frozen_flow").AsFloat(),
		DataQualityFrozenEnergy:    row.Get("data_quality_frozen_energy").AsFloat(),
		DataQualityFrozenVolume:    row.Get("data_quality_frozen_volume").AsFloat(),
		DataQualityFrozenDemand:    row.Get("data_quality_frozen_demand").AsFloat(),
		DataQualityFrozenReturnSec: row.Get("data_quality_frozen_return_sec").AsInt(),
		DataQualityFrozenSupplySec: row.Get("data_quality_frozen_supply_sec").AsInt(),

		PrimlossRank: row.Get("primloss_rank").AsFloat(),
		SmirchRank:   row.Get("smirch_rank").AsFloat(),
		HeatsysRank:  row.Get("heatsys_rank").AsInt(),
		ValveRank:    row.Get("valve_rank").AsInt(),
		TransferRank: row.Get("transfer_rank").AsInt(),

		XSum:      row.Get("x_sum").AsInt(),
		YSum:      row.Get("y_sum").AsInt(),
		VectorLen: row.Get("vector_len").AsFloat(),
		SupplyPos: row.Get("supply_pos").AsFloat(),
		DtPos:     row.Get("dt_pos").AsInt(),
		RtPos:     row.Get("rt_pos").AsInt(),
		NtuPos:    row.Get("ntu_pos").AsInt(),
		EffPos:    row.Get("eff_pos").AsInt(),
	}
}
