// Package syncer orchestrates reconciliation runs around the pure core in
// core/reconcile. It loads desired-state draft documents from object
// storage, loads the existing lists from the catalog database through the
// registered resources, computes action plans, optionally applies them, and
// aggregates statistics across runs.
//
// # Resources
//
// A Resource bundles everything the syncer needs to know about one ordered
// list field of a product: how to load its existing entries, how to parse
// its drafts out of the product's draft document, the reconcile factory for
// it, and how to apply a computed action sequence. feature/assets and
// feature/images each register one Resource.
//
// # Draft documents
//
// The desired state of a product lives in a single JSON object per product
// (e.g. drafts/products/42.json) whose top-level fields are named after
// resources:
//
//	{"assets": [...], "images": null}
//
// A field that is null or missing means the collection is absent, which the
// core treats as "remove everything". Documents are fetched through a
// TTL cache with singleflight stampede protection.
//
// # Concurrency
//
// Batch runs fan product ids out over a bounded worker pool. Each product's
// reconciliation is independent; a failure is counted and logged without
// affecting siblings.
package syncer
