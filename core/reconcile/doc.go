// Package reconcile computes the minimal ordered sequence of actions that
// transforms an existing, uniquely-keyed ordered collection into a desired
// collection expressed as drafts.
//
// The package is the core of the sync pipeline: everything around it
// (draft loading, batching, action execution, statistics) is a thin shell.
// It is a pure function of its inputs, performs no I/O, and holds no state
// between calls, so any number of reconciliations may run concurrently.
//
// # Algorithm
//
// BuildActions runs four strictly ordered steps:
//
//  1. Index both collections by key and reject duplicate draft keys.
//  2. Walk the old collection in order: entries with no matching draft
//     produce a remove action, matched pairs are handed to the
//     ActionFactory's element diff which yields zero or more update actions.
//  3. Compare the id order of the surviving old entries with the order the
//     drafts imply and emit a single reorder action if they differ.
//  4. Emit one add action per draft that has no counterpart in the old
//     collection, carrying the draft's index in the full new collection.
//
// The output is the concatenation of steps 2, 3 and 4, in that order. The
// order is load-bearing: a reorder action may only reference ids that
// already exist, and new entries receive their id only after an add action
// executes remotely, so reorder must come after removals and before adds.
//
// # Adapters
//
// All resource-specific knowledge lives behind the ActionFactory interface:
// how two matched elements differ and what the concrete remove, add and
// reorder actions look like. See feature/assets and feature/images for the
// two factories shipped with this repository.
//
// # Usage Example
//
//	actions, err := reconcile.BuildActions(oldEntries, reconcile.Present(drafts), factory)
//	var dup *reconcile.DuplicateKeyError
//	if errors.As(err, &dup) {
//	    // drafts carried a duplicate key; no actions were built
//	}
package reconcile
