package models

import "time"

// DashboardRow is the full wide time-series record backing the dashboard,
// one row per (uuid, time_period). Retrospect exports are the authoritative
// source. All numeric columns are NOT NULL in the warehouse: unparseable
// source cells coerce to 0 by policy, and an unparseable time period falls
// back to the epoch.
type DashboardRow struct {
	BuildingControl string
	PropertyMeter   string
	CustomerGroup   string
	GeoGroup        string
	TypeGroup       string
	GenericGroup    string
	Uuid            string
	AssetLatitude   float64
	AssetLongitude  float64
	TimePeriod      time.Time

	MostWanted   int
	RankOverall  int
	RankNetwork  float64
	RankCustomer float64

	OverflowAbs  float64
	OverflowRel  float64
	OverflowSpec float64

	EnergyAbs   float64
	VolumeAbs   float64
	VolumeSpec  float64
	VolumeTrend float64

	FlowDim    float64
	DemandSig  float64
	DemandFlex float64
	DemandK    float64
	DemandMax  float64
	DemandDim  float64

	DtAbs   float64
	DtVw    float64
	DtIdeal float64
	DtTrend float64
	DtSrd   float64

	RtAbs   float64
	RtVw    float64
	RtTrend float64
	RtSrd   float64
	RtFlex  float64

	Ntu           float64
	NtuSrd        float64
	Lmtd          float64
	Efficiency    float64
	EfficiencySrd float64
	SupplyAbs     float64
	SupplyFlex    float64

	FaultPrimLoss float64
	FaultSmirch   float64
	FaultHeatSys  int
	FaultValve    float64
	FaultTransfer float64

	DataQualityMissingOdt       float64
	DataQualityMissingSupply    float64
	DataQualityMissingReturn    float64
	DataQualityMissingFlow      float64
	DataQualityMissingEnergy    float64
	DataQualityMissingVolume    float64
	DataQualityMissingDemand    float64
	DataQualityMissingReturnSec float64
	DataQualityMissingSupplySec float64

	DataQualityOutlierOdt       int
	DataQualityOutlierSupply    int
	DataQualityOutlierReturn    int
	DataQualityOutlierFlow      int
	DataQualityOutlierEnergy    int
	DataQualityOutlierVolume    int
	DataQualityOutlierDemand    int
	DataQualityOutlierReturnSec int
	DataQualityOutlierSupplySec int

	DataQualityFrozenOdt       int
	DataQualityFrozenSupply    float64
	DataQualityFrozenReturn    float64
	DataQualityFrozenFlow      float64
	DataQualityFrozenEnergy    float64
	DataQualityFrozenVolume    float64
	DataQualityFrozenDemand    float64
	DataQualityFrozenReturnSec int
	DataQualityFrozenSupplySec int

	PrimlossRank float64
	SmirchRank   float64
	HeatsysRank  int
	ValveRank    int
	TransferRank int

	XSum      int
	YSum      int
	VectorLen float64
	SupplyPos float64
	DtPos     int
	RtPos     int
	NtuPos    int
	EffPos    int
}
