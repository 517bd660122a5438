package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/heatsight/heatsight-backend/models"
	"github.com/heatsight/heatsight-backend/repositories/dbmodels"
)

const buildingUuidCacheSize = 4096

// WarehouseDbRepository implements all warehouse reads and writes of the
// ingestion pipeline.
type WarehouseDbRepository struct {
	buildingUuidCache *lru.Cache[string, string]
}

func NewWarehouseDbRepository() *WarehouseDbRepository {
	// error is only returned for a non-positive size
	cache, _ := lru.New[string, string](buildingUuidCacheSize)
	return &WarehouseDbRepository{
		buildingUuidCache: cache,
	}
}

// GetUuidForBuilding resolves a building name to its warehouse UUID, or
// models.NotFoundError when the building is unknown. The same name repeats
// for every row of a file, so positive results are cached. Negative results
// are not: a building created later in the same batch must become visible.
func (repo *WarehouseDbRepository) GetUuidForBuilding(ctx context.Context, exec Executor, name string) (string, error) {
	if uuid, ok := repo.buildingUuidCache.Get(name); ok {
		return uuid, nil
	}

	query := NewQueryBuilder().
		Select(dbmodels.SelectBuildingColumns...).
		From(dbmodels.TABLE_BUILDINGS).
		Where(squirrel.Eq{"name": name})

	building, err := SqlToModel(ctx, exec, query, dbmodels.AdaptBuilding)
	if err != nil {
		return "", err
	}

	repo.buildingUuidCache.Add(name, building.Uuid)
	return building.Uuid, nil
}

// UpsertBuilding inserts or updates a building keyed by uuid. Fields left
// nil in the upsert keep their current value: sources only know a subset of
// the building's attributes each.
func (repo *WarehouseDbRepository) UpsertBuilding(ctx context.Context, exec Executor, building models.BuildingUpsert) error {
	updateClauses := make([]string, 0, len(dbmodels.SelectBuildingColumns))
	for _, column := range dbmodels.SelectBuildingColumns {
		if column == "uuid" {
			continue
		}
		updateClauses = append(updateClauses, fmt.Sprintf("%s = COALESCE(EXCLUDED.%s, %s.%s)",
			column, column, dbmodels.TABLE_BUILDINGS, column))
	}

	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_BUILDINGS).
		SetMap(dbmodels.BuildingUpsertToMap(building)).
		Suffix(fmt.Sprintf("ON CONFLICT (uuid) DO UPDATE SET %s", strings.Join(updateClauses, ", ")))

	err := ExecBuilder(ctx, exec, query)
	// the uuid conflict is handled above, so a unique violation here is the
	// name column: the same building name under a different uuid
	if IsUniqueViolationError(err) {
		return errors.Wrapf(models.ConflictError,
			"building name already registered under another uuid")
	}
	return err
}
