package dbmodels

import "github.com/heatsight/heatsight-backend/models"

const TABLE_DASHBOARD_DATA = "dashboard_data"

// DashboardRowToMap flattens the wide dashboard record into its column map.
// The upsert builder derives both the insert columns and the conflict-update
// set from this map, so the model struct stays the single source of truth.
func DashboardRowToMap(r models.DashboardRow) map[string]any {
	return map[string]any{
		"building_control": r.BuildingControl,
		"property_meter":   r.PropertyMeter,
		"customer_group":   r.CustomerGroup,
		"geo_group":        r.GeoGroup,
		"type_group":       r.TypeGroup,
		"generic_group":    r.GenericGroup,
		"uuid":             r.Uuid,
		"asset_latitude":   r.AssetLatitude,
		"asset_longitude":  r.AssetLongitude,
		"time_period":      r.TimePeriod,

		"most_wanted":   r.MostWanted,
		"rank_overall":  r.RankOverall,
		"rank_network":  r.RankNetwork,
		"rank_customer": r.RankCustomer,

		"overflow_abs":  r.OverflowAbs,
		"overflow_rel":  r.OverflowRel,
		"overflow_spec": r.OverflowSpec,

		"energy_abs":   r.EnergyAbs,
		"volume_abs":   r.VolumeAbs,
		"volume_spec":  r.VolumeSpec,
		"volume_trend": r.VolumeTrend,

		"flow_dim":    r.FlowDim,
		"demand_sig":  r.DemandSig,
		"demand_flex": r.DemandFlex,
		"demand_k":    r.DemandK,
		"demand_max":  r.DemandMax,
		"demand_dim":  r.DemandDim,

		"dt_abs":   r.DtAbs,
		"dt_vw":    r.DtVw,
		"dt_ideal": r.DtIdeal,
		"dt_trend": r.DtTrend,
		"dt_srd":   r.DtSrd,

		"rt_abs":   r.RtAbs,
		"rt_vw":    r.RtVw,
		"rt_trend": r.RtTrend,
		"rt_srd":   r.RtSrd,
		"rt_flex":  r.RtFlex,

		"ntu":            r.Ntu,
		"ntu_srd":        r.NtuSrd,
		"lmtd":           r.Lmtd,
		"efficiency":     r.Efficiency,
		"efficiency_srd": r.EfficiencySrd,
		"supply_abs":     r.SupplyAbs,
		"supply_flex":    r.SupplyFlex,

		"fault_prim_loss": r.FaultPrimLoss,
		"fault_smirch":    r.FaultSmirch,
		"fault_heat_sys":  r.FaultHeatSys,
		"fault_valve":     r.FaultValve,
		"fault_transfer":  r.FaultTransfer,

		"data_quality_missing_odt":        r.DataQualityMissingOdt,
		"data_quality_missing_supply":     r.DataQualityMissingSupply,
		"data_quality_missing_return":     r.DataQualityMissingReturn,
		"data_quality_missing_flow":       r.DataQualityMissingFlow,
		"data_quality_missing_energy":     r.DataQualityMissingEnergy,
		"data_quality_missing_volume":     r.DataQualityMissingVolume,
		"data_quality_missing_demand":     r.DataQualityMissingDemand,
		"data_quality_missing_return_sec": r.DataQualityMissingReturnSec,
		"data_quality_missing_supply_sec": r.DataQualityMissingSupplySec,

		"data_quality_outlier_odt":        r.DataQualityOutlierOdt,
		"data_quality_outlier_supply":     r.DataQualityOutlierSupply,
		"data_quality_outlier_return":     r.DataQualityOutlierReturn,
		"data_quality_outlier_flow":       r.DataQualityOutlierFlow,
		"data_quality_outlier_energy":     r.DataQualityOutlierEnergy,
		"data_quality_outlier_volume":     r.DataQualityOutlierVolume,
		"data_quality_outlier_demand":     r.DataQualityOutlierDemand,
		"data_quality_outlier_return_sec": r.DataQualityOutlierReturnSec,
		"data_quality_outlier_supply_sec": r.DataQualityOutlierSupplySec,

		"data_quality_frozen_odt":        r.DataQualityFrozenOdt,
		"data_quality_frozen_supply":     r.DataQualityFrozenSupply,
		"data_quality_frozen_return":     r.DataQualityFrozenReturn,
		"data_quality_frozen_flow":       r.DataQualityFrozenFlow,
		"data_quality_frozen_energy":     r.DataQualityFrozenEnergy,
		"data_quality_frozen_volume":     r.DataQualityFrozenVolume,
		"data_quality_frozen_demand":     r.DataQualityFrozenDemand,
		"data_quality_frozen_return_sec": r.DataQualityFrozenReturnSec,
		"data_quality_frozen_supply_sec": r.DataQualityFrozenSupplySec,

		"primloss_rank": r.PrimlossRank,
		"smirch_rank":   r.SmirchRank,
		"heatsys_rank":  r.HeatsysRank,
		"valve_rank":    r.ValveRank,
		"transfer_rank": r.TransferRank,

		"x_sum":      r.XSum,
		"y_sum":      r.YSum,
		"vector_len": r.VectorLen,
		"supply_pos": r.SupplyPos,
		"dt_pos":     r.DtPos,
		"rt_pos":     r.RtPos,
		"ntu_pos":    r.NtuPos,
		"eff_pos":    r.EffPos,
	}
}
