package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heatsight/heatsight-backend/models"
)

func TestBatchTrackerCompletesOnFourthType(t *testing.T) {
	tracker := NewBatchTracker()

	assert.False(t, tracker.Register("2024-01-13", models.FileTypeRetrospect, "/in/Retrospect_2024-01-13.csv"))
	assert.False(t, tracker.Register("2024-01-13", models.FileTypeOverview, "/in/Overview_2024-01-13.csv"))
	assert.False(t, tracker.Register("2024-01-13", models.FileTypeDemandControl, "/in/Demand_Control_2024-01-13.csv"))
	assert.True(t, tracker.Register("2024-01-13", models.FileTypeBuildingImpact, "/in/Building_Impact_2024-01-13.csv"))
}

func TestBatchTrackerNeverCompletesOnRepeatedType(t *testing.T) {
	tracker := NewBatchTracker()

	assert.False(t, tracker.Register("2024-01-13", models.FileTypeRetrospect, "/in/a.csv"))
	assert.False(t, tracker.Register("2024-01-13", models.FileTypeRetrospect, "/in/b.csv"))
	assert.False(t, tracker.Register("2024-01-13", models.FileTypeRetrospect, "/in/c.csv"))
	assert.False(t, tracker.Register("2024-01-13", models.FileTypeRetrospect, "/in/d.csv"))
	assert.Equal(t, 1, tracker.Pending())
}

func TestBatchTrackerLastPathWinsBeforeCompletion(t *testing.T) {
	tracker := NewBatchTracker()

	tracker.Register("2024-01-13", models.FileTypeRetrospect, "/in/old.csv")
	tracker.Register("2024-01-13", models.FileTypeRetrospect, "/in/new.csv")
	tracker.Register("2024-01-13", models.FileTypeOverview, "/in/overview.csv")
	tracker.Register("2024-01-13", models.FileTypeDemandControl, "/in/demand.csv")
	tracker.Register("2024-01-13", models.FileTypeBuildingImpact, "/in/impact.csv")

	files, ok := tracker.Take("2024-01-13")
	assert.True(t, ok)
	assert.Equal(t, "/in/new.csv", files[models.FileTypeRetrospect])
}

func TestBatchTrackerKeepsBatchesIndependent(t *testing.T) {
	tracker := NewBatchTracker()

	tracker.Register("2024-01-13", models.FileTypeRetrospect, "/in/r1.csv")
	tracker.Register("2024-01-14", models.FileTypeRetrospect, "/in/r2.csv")
	tracker.Register("2024-01-14", models.FileTypeOverview, "/in/o2.csv")
	tracker.Register("2024-01-14", models.FileTypeDemandControl, "/in/d2.csv")
	assert.True(t, tracker.Register("2024-01-14", models.FileTypeBuildingImpact, "/in/b2.csv"))
	assert.Equal(t, 2, tracker.Pending())
}

func TestBatchTrackerTakeRemovesTheBatch(t *testing.T) {
	tracker := NewBatchTracker()

	tracker.Register("2024-01-13", models.FileTypeRetrospect, "/in/r.csv")
	tracker.Register("2024-01-13", models.FileTypeOverview, "/in/o.csv")
	tracker.Register("2024-01-13", models.FileTypeDemandControl, "/in/d.csv")
	tracker.Register("2024-01-13", models.FileTypeBuildingImpact, "/in/b.csv")

	files, ok := tracker.Take("2024-01-13")
	assert.True(t, ok)
	assert.Len(t, files, 4)

	_, ok = tracker.Take("2024-01-13")
	assert.False(t, ok)
	assert.Equal(t, 0, tracker.Pending())
}
