package syncer

import (
	"context"
	"encoding/json"

	"catalog-sync/core/reconcile"

	"gorm.io/gorm"
)

// Resource adapts one ordered list field of a product to the syncer.
// Implementations live under feature/ and own all resource-specific logic;
// the syncer only sequences them.
type Resource interface {
	// Name is the unique resource name, e.g. "assets". It doubles as the
	// field name of the resource inside a product draft document.
	Name() string

	// LoadEntries loads the existing list for a product from the database,
	// in stored order.
	LoadEntries(ctx context.Context, db *gorm.DB, productID string) ([]reconcile.Entry, error)

	// ParseDrafts decodes the resource's field of a draft document. raw is
	// nil when the field is missing or JSON null, which must map to the
	// absent draft set.
	ParseDrafts(productID string, raw json.RawMessage) (reconcile.DraftSet, error)

	// Factory returns the reconcile factory for one product's collection.
	Factory(productID string) reconcile.ActionFactory

	// Apply executes a computed action sequence against the database,
	// standing in for the remote system. Actions must be applied in order.
	Apply(ctx context.Context, db *gorm.DB, productID string, actions []reconcile.Action) error
}

// ActionKind classifies an action for statistics and reporting.
type ActionKind string

const (
	KindRemove  ActionKind = "remove"
	KindAdd     ActionKind = "add"
	KindReorder ActionKind = "reorder"
	KindUpdate  ActionKind = "update"
)

// KindedAction is implemented by feature action types so the syncer can
// count a plan without knowing concrete types. Actions that don't implement
// it are counted as updates.
type KindedAction interface {
	Kind() ActionKind
}

// KindOf classifies an action, defaulting to update for plain field actions.
func KindOf(a reconcile.Action) ActionKind {
	if k, ok := a.(KindedAction); ok {
		return k.Kind()
	}
	return KindUpdate
}
