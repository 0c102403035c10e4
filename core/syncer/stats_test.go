package syncer

import (
	"testing"
	"time"

	"catalog-sync/core/reconcile"

	"github.com/stretchr/testify/assert"
)

func TestStatistics_Add(t *testing.T) {
	total := Statistics{Processed: 2, Created: 1, ProcessingTime: time.Second}
	total.Add(Statistics{
		Processed:      1,
		UpToDate:       1,
		Created:        2,
		Removed:        3,
		Updated:        4,
		Reordered:      1,
		Failed:         1,
		ProcessingTime: time.Second,
	})

	assert.Equal(t, Statistics{
		Processed:      3,
		UpToDate:       1,
		Created:        3,
		Removed:        3,
		Updated:        4,
		Reordered:      1,
		Failed:         1,
		ProcessingTime: 2 * time.Second,
	}, total)
}

func TestCountActions(t *testing.T) {
	plan := &Plan{Actions: []reconcile.Action{
		fakeRemove{Key: "a"},
		fakeRemove{Key: "b"},
		fakeRename{Key: "c", Name: "C2"},
		fakeReorder{IDs: []string{"2", "1"}},
		fakeAdd{Key: "d", Index: 3},
	}}

	stats := countActions(plan)
	assert.Equal(t, 2, stats.Removed)
	assert.Equal(t, 1, stats.Updated)
	assert.Equal(t, 1, stats.Reordered)
	assert.Equal(t, 1, stats.Created)
}

func TestKindOf_DefaultsToUpdate(t *testing.T) {
	assert.Equal(t, KindUpdate, KindOf(struct{}{}))
	assert.Equal(t, KindRemove, KindOf(fakeRemove{Key: "a"}))
}
