package models

import "github.com/guregu/null/v5"

// Building is the static registry entry of one heating system, keyed by the
// warehouse UUID. Every non-Overview record resolves its building through
// this table.
type Building struct {
	Uuid           string
	Name           string
	AssetType      null.String
	AssetStatus    null.String
	AssetActive    null.Bool
	AssetLatitude  null.Float
	AssetLongitude null.Float
}

// BuildingUpsert carries the static attributes of a building. Nil pointers
// leave the existing column untouched on update, so partial sources
// (Retrospect only knows coordinates, Overview knows type and status) can
// both feed the same row.
type BuildingUpsert struct {
	Uuid           string
	Name           *string
	AssetType      *string
	AssetStatus    *string
	AssetActive    *bool
	AssetLatitude  *float64
	AssetLongitude *float64
}
