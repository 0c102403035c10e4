package reconcile

import "slices"

// CollectionDescriber is an optional interface a factory may implement to
// name the collection it builds actions for. The name is carried by
// DuplicateKeyError to tell the caller which collection was rejected.
type CollectionDescriber interface {
	CollectionName() string
}

// BuildActions compares the old collection with the desired draft set and
// returns the action sequence that transforms one into the other. Applying
// the returned actions in order against a state equal to old yields a state
// equal to the drafts, up to fields the factory's element diff ignores.
//
// An absent draft set removes every old entry. Duplicate non-empty draft
// keys fail the whole call with a *DuplicateKeyError and no actions. Errors
// from the factory's element diff are propagated unmodified.
//
// Both input collections are read-only; the call allocates only transient
// indices and owns no state, so concurrent calls need no coordination.
func BuildActions(old []Entry, desired DraftSet, factory ActionFactory) ([]Action, error) {
	if !desired.IsPresent() {
		actions := make([]Action, 0, len(old))
		for _, entry := range old {
			actions = append(actions, factory.RemoveAction(entry.Key))
		}
		return actions, nil
	}

	drafts := desired.Drafts()

	draftIndex, err := indexDrafts(drafts, factory)
	if err != nil {
		return nil, err
	}
	oldIndex := indexEntries(old)

	// Fixed concatenation order: removes/updates, then the reorder, then
	// adds. A reorder can only reference ids that already exist, and adds
	// produce their ids remotely, so this order is a correctness invariant
	// rather than a convention.
	actions, removed, err := removeOrUpdateActions(old, draftIndex, factory)
	if err != nil {
		return nil, err
	}

	if reorder, ok := reorderAction(old, drafts, removed, factory); ok {
		actions = append(actions, reorder)
	}

	actions = append(actions, addActions(drafts, oldIndex, factory)...)

	return actions, nil
}

// indexDrafts maps draft keys to drafts, rejecting duplicate non-empty keys.
// Empty keys are never indexed: unkeyed drafts cannot match anything, and
// several unkeyed drafts in one call are not a collision.
func indexDrafts(drafts []Draft, factory ActionFactory) (map[string]Draft, error) {
	index := make(map[string]Draft, len(drafts))
	for _, draft := range drafts {
		if draft.Key == "" {
			continue
		}
		if _, exists := index[draft.Key]; exists {
			return nil, &DuplicateKeyError{Key: draft.Key, Collection: describeCollection(factory)}
		}
		index[draft.Key] = draft
	}
	return index, nil
}

// indexEntries maps keys to old entries, skipping unkeyed entries.
func indexEntries(old []Entry) map[string]Entry {
	index := make(map[string]Entry, len(old))
	for _, entry := range old {
		if entry.Key == "" {
			continue
		}
		index[entry.Key] = entry
	}
	return index
}

// removeOrUpdateActions walks the old collection in order. Entries without a
// same-keyed draft become remove actions; matched pairs delegate to the
// factory's element diff. The returned set holds the keys of removed entries
// so the reorder step can compute the post-removal baseline.
func removeOrUpdateActions(old []Entry, draftIndex map[string]Draft, factory ActionFactory) ([]Action, map[string]struct{}, error) {
	actions := make([]Action, 0, len(old))
	removed := make(map[string]struct{})

	for _, entry := range old {
		draft, matched := draftIndex[entry.Key]
		if !matched {
			removed[entry.Key] = struct{}{}
			actions = append(actions, factory.RemoveAction(entry.Key))
			continue
		}

		updates, err := factory.DiffActions(entry, draft)
		if err != nil {
			return nil, nil, err
		}
		actions = append(actions, updates...)
	}

	return actions, removed, nil
}

// reorderAction compares the id order of old entries surviving removal with
// the order the drafts imply and builds a single reorder action when they
// differ. Drafts without a matching old entry have no id yet and are left
// out of the target order entirely.
func reorderAction(old []Entry, drafts []Draft, removed map[string]struct{}, factory ActionFactory) (Action, bool) {
	keyToID := make(map[string]string, len(old))
	for _, entry := range old {
		if entry.Key != "" {
			keyToID[entry.Key] = entry.ID
		}
	}

	newOrder := make([]string, 0, len(drafts))
	for _, draft := range drafts {
		if id, ok := keyToID[draft.Key]; ok {
			newOrder = append(newOrder, id)
		}
	}

	oldOrder := make([]string, 0, len(old))
	for _, entry := range old {
		if _, gone := removed[entry.Key]; gone {
			continue
		}
		oldOrder = append(oldOrder, entry.ID)
	}

	if slices.Equal(oldOrder, newOrder) {
		return nil, false
	}
	return factory.ReorderAction(newOrder), true
}

// addActions builds one add action per draft with no counterpart in the old
// collection. The carried index is the draft's position within the full new
// collection, so the executor can place it after removals and the reorder
// have conceptually happened.
func addActions(drafts []Draft, oldIndex map[string]Entry, factory ActionFactory) []Action {
	var actions []Action
	for i, draft := range drafts {
		if _, exists := oldIndex[draft.Key]; exists {
			continue
		}
		actions = append(actions, factory.AddAction(draft, i))
	}
	return actions
}

func describeCollection(factory ActionFactory) string {
	if d, ok := factory.(CollectionDescriber); ok {
		return d.CollectionName()
	}
	return "draft collection"
}
