package reconcile

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Concrete actions used by the test factory so assertions can compare
// whole action sequences by value.
type removeAction struct {
	Key string
}

type addAction struct {
	Key   string
	Index int
}

type reorderTestAction struct {
	IDs []string
}

type renameAction struct {
	Key  string
	Name string
}

// testItem is the opaque payload for both entries and drafts.
type testItem struct {
	Name string
}

// testFactory diffs on testItem.Name and records nothing.
type testFactory struct {
	collection string
	diffErr    error
}

func (f *testFactory) DiffActions(oldEntry Entry, newDraft Draft) ([]Action, error) {
	if f.diffErr != nil {
		return nil, f.diffErr
	}
	oldItem, _ := oldEntry.Item.(testItem)
	newItem, _ := newDraft.Item.(testItem)
	if oldItem.Name != newItem.Name {
		return []Action{renameAction{Key: oldEntry.Key, Name: newItem.Name}}, nil
	}
	return nil, nil
}

func (f *testFactory) RemoveAction(key string) Action {
	return removeAction{Key: key}
}

func (f *testFactory) AddAction(draft Draft, index int) Action {
	return addAction{Key: draft.Key, Index: index}
}

func (f *testFactory) ReorderAction(ids []string) Action {
	return reorderTestAction{IDs: ids}
}

func (f *testFactory) CollectionName() string {
	if f.collection != "" {
		return f.collection
	}
	return "test collection"
}

func entry(key, id string) Entry {
	return Entry{Key: key, ID: id, Item: testItem{Name: key}}
}

func draft(key string) Draft {
	return Draft{Key: key, Item: testItem{Name: key}}
}

func TestBuildActions_Identity(t *testing.T) {
	old := []Entry{entry("a", "1"), entry("b", "2"), entry("c", "3")}
	drafts := []Draft{draft("a"), draft("b"), draft("c")}

	actions, err := BuildActions(old, Present(drafts), &testFactory{})
	require.NoError(t, err)
	assert.Empty(t, actions)
}

func TestBuildActions_AbsentRemovesEverything(t *testing.T) {
	old := []Entry{entry("a", "1"), entry("b", "2")}

	actions, err := BuildActions(old, Absent(), &testFactory{})
	require.NoError(t, err)

	// One remove per old entry, in old-collection order, nothing else.
	assert.Equal(t, []Action{
		removeAction{Key: "a"},
		removeAction{Key: "b"},
	}, actions)
}

func TestBuildActions_PresentEmptyRemovesEverything(t *testing.T) {
	old := []Entry{entry("a", "1"), entry("b", "2")}

	actions, err := BuildActions(old, Present(nil), &testFactory{})
	require.NoError(t, err)

	assert.Equal(t, []Action{
		removeAction{Key: "a"},
		removeAction{Key: "b"},
	}, actions)
}

func TestBuildActions_PureAddition(t *testing.T) {
	drafts := []Draft{draft("x"), draft("y")}

	actions, err := BuildActions(nil, Present(drafts), &testFactory{})
	require.NoError(t, err)

	assert.Equal(t, []Action{
		addAction{Key: "x", Index: 0},
		addAction{Key: "y", Index: 1},
	}, actions)
}

func TestBuildActions_ReorderOnly(t *testing.T) {
	old := []Entry{entry("a", "1"), entry("b", "2")}
	drafts := []Draft{draft("b"), draft("a")}

	actions, err := BuildActions(old, Present(drafts), &testFactory{})
	require.NoError(t, err)

	// Exactly one reorder, no removes or adds.
	assert.Equal(t, []Action{
		reorderTestAction{IDs: []string{"2", "1"}},
	}, actions)
}

func TestBuildActions_MixedChangeOrderingContract(t *testing.T) {
	// Remove "a", flip "b" and "c", add "d": the sequence must be remove,
	// then one reorder over the surviving ids, then add at the final index.
	old := []Entry{entry("a", "1"), entry("b", "2"), entry("c", "3")}
	drafts := []Draft{draft("c"), draft("b"), draft("d")}

	actions, err := BuildActions(old, Present(drafts), &testFactory{})
	require.NoError(t, err)

	assert.Equal(t, []Action{
		removeAction{Key: "a"},
		reorderTestAction{IDs: []string{"3", "2"}},
		addAction{Key: "d", Index: 2},
	}, actions)
}

func TestBuildActions_RemovalAloneDoesNotReorder(t *testing.T) {
	// The post-removal baseline [2] already matches the drafts, so only
	// the remove and the add survive.
	old := []Entry{entry("a", "1"), entry("b", "2")}
	drafts := []Draft{draft("b"), draft("c")}

	actions, err := BuildActions(old, Present(drafts), &testFactory{})
	require.NoError(t, err)

	assert.Equal(t, []Action{
		removeAction{Key: "a"},
		addAction{Key: "c", Index: 1},
	}, actions)
}

func TestBuildActions_NoReorderWhenSurvivorsKeepOrder(t *testing.T) {
	// "a" is removed but "b" and "c" keep their relative order, so the
	// post-removal baseline already matches and no reorder is emitted.
	old := []Entry{entry("a", "1"), entry("b", "2"), entry("c", "3")}
	drafts := []Draft{draft("b"), draft("c")}

	actions, err := BuildActions(old, Present(drafts), &testFactory{})
	require.NoError(t, err)

	assert.Equal(t, []Action{
		removeAction{Key: "a"},
	}, actions)
}

func TestBuildActions_DuplicateKeyRejected(t *testing.T) {
	tests := []struct {
		name string
		old  []Entry
	}{
		{name: "empty old collection", old: nil},
		{name: "duplicates match existing entries", old: []Entry{entry("x", "1")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drafts := []Draft{draft("x"), draft("x")}

			actions, err := BuildActions(tt.old, Present(drafts), &testFactory{collection: "images of product 7"})
			assert.Nil(t, actions)

			var dup *DuplicateKeyError
			require.ErrorAs(t, err, &dup)
			assert.Equal(t, "x", dup.Key)
			assert.Equal(t, "images of product 7", dup.Collection)
		})
	}
}

func TestBuildActions_UnchangedPairSkippedAmongChanges(t *testing.T) {
	old := []Entry{
		{Key: "a", ID: "1", Item: testItem{Name: "same"}},
		{Key: "b", ID: "2", Item: testItem{Name: "old name"}},
	}
	drafts := []Draft{
		{Key: "a", Item: testItem{Name: "same"}},
		{Key: "b", Item: testItem{Name: "new name"}},
	}

	actions, err := BuildActions(old, Present(drafts), &testFactory{})
	require.NoError(t, err)

	// Only the changed pair yields an action.
	assert.Equal(t, []Action{
		renameAction{Key: "b", Name: "new name"},
	}, actions)
}

func TestBuildActions_AddIndexIsFinalPosition(t *testing.T) {
	// "n" sits between two existing entries: its index must be its place
	// in the full new collection, not its rank among added drafts.
	old := []Entry{entry("a", "1"), entry("b", "2")}
	drafts := []Draft{draft("a"), draft("n"), draft("b"), draft("m")}

	actions, err := BuildActions(old, Present(drafts), &testFactory{})
	require.NoError(t, err)

	assert.Equal(t, []Action{
		addAction{Key: "n", Index: 1},
		addAction{Key: "m", Index: 3},
	}, actions)
}

func TestBuildActions_UnkeyedElementsNeverMatch(t *testing.T) {
	// Unkeyed old entries are always removed and unkeyed drafts always
	// added. Two unkeyed drafts are not a duplicate-key collision.
	old := []Entry{
		{Key: "", ID: "1", Item: testItem{Name: "legacy"}},
		entry("b", "2"),
	}
	drafts := []Draft{
		draft("b"),
		{Key: "", Item: testItem{Name: "one"}},
		{Key: "", Item: testItem{Name: "two"}},
	}

	actions, err := BuildActions(old, Present(drafts), &testFactory{})
	require.NoError(t, err)

	assert.Equal(t, []Action{
		removeAction{Key: ""},
		addAction{Key: "", Index: 1},
		addAction{Key: "", Index: 2},
	}, actions)
}

func TestBuildActions_UnkeyedEntryExcludedFromReorderBaseline(t *testing.T) {
	// The unkeyed entry is removed, so the baseline is [2 3]; the drafts
	// flip it, which must surface as exactly one reorder.
	old := []Entry{
		{Key: "", ID: "1"},
		entry("b", "2"),
		entry("c", "3"),
	}
	drafts := []Draft{draft("c"), draft("b")}

	actions, err := BuildActions(old, Present(drafts), &testFactory{})
	require.NoError(t, err)

	assert.Equal(t, []Action{
		removeAction{Key: ""},
		reorderTestAction{IDs: []string{"3", "2"}},
	}, actions)
}

func TestBuildActions_DiffErrorPropagatesUnmodified(t *testing.T) {
	diffErr := fmt.Errorf("malformed draft field")
	factory := &testFactory{diffErr: diffErr}

	old := []Entry{entry("a", "1")}
	drafts := []Draft{draft("a")}

	actions, err := BuildActions(old, Present(drafts), factory)
	assert.Nil(t, actions)
	assert.True(t, errors.Is(err, diffErr))
}

func TestBuildActions_InputsNotMutated(t *testing.T) {
	old := []Entry{entry("a", "1"), entry("b", "2")}
	drafts := []Draft{draft("b")}

	_, err := BuildActions(old, Present(drafts), &testFactory{})
	require.NoError(t, err)

	assert.Equal(t, []Entry{entry("a", "1"), entry("b", "2")}, old)
	assert.Equal(t, []Draft{draft("b")}, drafts)
}
