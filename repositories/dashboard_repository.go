package repositories

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/heatsight/heatsight-backend/models"
	"github.com/heatsight/heatsight-backend/repositories/dbmodels"
)

// UpsertDashboardRow writes the full wide dashboard record, keyed by
// (uuid, time_period). Retrospect is the authoritative source for this
// table, so on conflict every non-key column is overwritten.
func (repo *WarehouseDbRepository) UpsertDashboardRow(ctx context.Context, exec Executor, row models.DashboardRow) error {
	rowMap := dbmodels.DashboardRowToMap(row)

	columns := make([]string, 0, len(rowMap))
	for column := range rowMap {
		if column == "uuid" || column == "time_period" {
			continue
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	updateClauses := make([]string, 0, len(columns))
	for _, column := range columns {
		updateClauses = append(updateClauses, fmt.Sprintf("%s = EXCLUDED.%s", column, column))
	}

	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_DASHBOARD_DATA).
		SetMap(rowMap).
		Suffix(fmt.Sprintf("ON CONFLICT (uuid, time_period) DO UPDATE SET %s",
			strings.Join(updateClauses, ", ")))

	return ExecBuilder(ctx, exec, query)
}
