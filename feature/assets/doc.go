// Package assets syncs the ordered media asset lists of catalog products.
//
// It provides the asset-specific half of the reconciliation: the concrete
// action types (remove, add, reorder, rename, set description/source/tags),
// the reconcile.ActionFactory that diffs a stored asset against its draft,
// the repository over the product_assets table, and the executor that
// applies an action sequence transactionally.
//
// The package registers itself with the syncer as the "assets" resource and
// exposes plan and sync HTTP endpoints.
package assets
