package dbmodels

import (
	"github.com/guregu/null/v5"

	"github.com/heatsight/heatsight-backend/models"
	"github.com/heatsight/heatsight-backend/utils"
)

const TABLE_BUILDINGS = "buildings"

type DBBuilding struct {
	Uuid           string      `db:"uuid"`
	Name           string      `db:"name"`
	AssetType      null.String `db:"asset_type"`
	AssetStatus    null.String `db:"asset_status"`
	AssetActive    null.Bool   `db:"asset_active"`
	AssetLatitude  null.Float  `db:"asset_latitude"`
	AssetLongitude null.Float  `db:"asset_longitude"`
}

var SelectBuildingColumns = utils.ColumnList[DBBuilding]()

func AdaptBuilding(db DBBuilding) (models.Building, error) {
	return models.Building{
		Uuid:           db.Uuid,
		Name:           db.Name,
		AssetType:      db.AssetType,
		AssetStatus:    db.AssetStatus,
		AssetActive:    db.AssetActive,
		AssetLatitude:  db.AssetLatitude,
		AssetLongitude: db.AssetLongitude,
	}, nil
}

// BuildingUpsertToMap returns the column map for an insert/upsert. Absent
// optional fields map to NULL so the upsert's COALESCE keeps existing values.
func BuildingUpsertToMap(b models.BuildingUpsert) map[string]any {
	return map[string]any{
		"uuid":            b.Uuid,
		"name":            b.Name,
		"asset_type":      b.AssetType,
		"asset_status":    b.AssetStatus,
		"asset_active":    b.AssetActive,
		"asset_latitude":  b.AssetLatitude,
		"asset_longitude": b.AssetLongitude,
	}
}
