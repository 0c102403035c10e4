package reconcile

import "fmt"

// DuplicateKeyError is the only failure the core itself produces. It is
// returned when two or more drafts share the same non-empty key, before any
// action is built, so a failed call never yields a partial action list.
type DuplicateKeyError struct {
	// Key is the duplicated draft key.
	Key string

	// Collection describes the draft collection the duplicate was found in,
	// e.g. "assets of product 42". Factories can provide it by implementing
	// CollectionDescriber; otherwise a generic description is used.
	Collection string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q in %s: draft keys must be unique within their collection", e.Key, e.Collection)
}
