package reconcile

// Entry is an element of the existing (old) collection. Entries always carry
// the stable identifier assigned by the system that owns them.
type Entry struct {
	// Key is the matching key, unique within the collection. An empty key
	// means the entry is unmatchable: it can never pair with a draft and is
	// always removed.
	Key string

	// ID is the stable identifier of the entry. It is referenced by reorder
	// actions and is always present for existing entries.
	ID string

	// Item is the resource-specific payload. The core never inspects it;
	// it is passed through to the ActionFactory's element diff.
	Item any
}

// Draft is an element of the desired (new) collection. Drafts express
// intent and have no identifier until an add action is executed.
type Draft struct {
	// Key is the matching key. It must be unique across all drafts of one
	// reconciliation call; an empty key makes the draft unmatchable and it
	// is always added.
	Key string

	// Item is the resource-specific payload, opaque to the core.
	Item any
}

// Action is an opaque command built by an ActionFactory. The core only
// arranges actions; it never inspects or executes them.
type Action any

// DraftSet is the desired collection, which may be absent entirely.
// An absent set means "remove everything": a remove action is built for
// every old entry and nothing else.
type DraftSet struct {
	present bool
	drafts  []Draft
}

// Present wraps a concrete list of drafts as the desired collection.
func Present(drafts []Draft) DraftSet {
	return DraftSet{present: true, drafts: drafts}
}

// Absent returns the explicit "no desired collection" variant.
func Absent() DraftSet {
	return DraftSet{}
}

// IsPresent reports whether a desired collection was supplied.
func (s DraftSet) IsPresent() bool {
	return s.present
}

// Drafts returns the draft list. It is nil for an absent set.
func (s DraftSet) Drafts() []Draft {
	return s.drafts
}

// ActionFactory supplies the resource-specific halves of a reconciliation:
// the per-element diff and the builders for the three structural actions.
// Implementations must be deterministic and side-effect-free; the core may
// call them in any interleaving but always at most once per element.
type ActionFactory interface {
	// DiffActions compares a matched old entry and draft pair and returns
	// the update actions reflecting their field-level differences. An
	// unchanged pair returns an empty slice. Errors abort the whole
	// reconciliation and are propagated to the caller unmodified.
	DiffActions(oldEntry Entry, newDraft Draft) ([]Action, error)

	// RemoveAction builds the action that removes the entry with the given key.
	RemoveAction(key string) Action

	// AddAction builds the action that inserts the draft at the given index
	// within the full new collection.
	AddAction(draft Draft, index int) Action

	// ReorderAction builds the single action that rearranges existing
	// entries into the given id sequence.
	ReorderAction(ids []string) Action
}
