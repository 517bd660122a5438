package models

// FileType is one of the four categories an exported CSV file is classified
// into by filename substring match. Files matching none are rejected.
type FileType string

const (
	FileTypeBuildingImpact FileType = "Building_Impact"
	FileTypeDemandControl  FileType = "Demand_Control"
	FileTypeOverview       FileType = "Overview"
	FileTypeRetrospect     FileType = "Retrospect"
)

// RequiredFileTypes is the closed set of file types a batch needs before it
// is processed. The order here is the classification order, not the
// processing order.
var RequiredFileTypes = []FileType{
	FileTypeBuildingImpact,
	FileTypeDemandControl,
	FileTypeOverview,
	FileTypeRetrospect,
}

// ProcessingOrder is the fixed order loaders run within a complete batch.
// Retrospect goes first: it establishes building coordinates and the
// dashboard baseline the other loaders' lookups depend on.
var ProcessingOrder = []FileType{
	FileTypeRetrospect,
	FileTypeDemandControl,
	FileTypeOverview,
	FileTypeBuildingImpact,
}

// DefaultBatchKey groups files whose names carry no YYYY-MM-DD date.
const DefaultBatchKey = "default-batch"

// BatchFiles maps each required file type to the path of the most recently
// seen file of that type for one batch key.
type BatchFiles map[FileType]string
