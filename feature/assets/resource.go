package assets

import (
	"context"
	"encoding/json"
	"fmt"

	"catalog-sync/core/reconcile"
	"catalog-sync/feature/assets/models"

	"gorm.io/gorm"
)

// Resource adapts the asset list field to the syncer. It implements
// syncer.Resource.
type Resource struct{}

// NewResource creates the asset resource.
func NewResource() *Resource {
	return &Resource{}
}

// Name returns the resource name, which is also the draft document field.
func (Resource) Name() string {
	return "assets"
}

// LoadEntries loads the product's current asset list as reconcile entries.
func (Resource) LoadEntries(ctx context.Context, db *gorm.DB, productID string) ([]reconcile.Entry, error) {
	rows, err := LoadAssets(ctx, db, productID)
	if err != nil {
		return nil, err
	}
	return toEntries(rows), nil
}

// ParseDrafts decodes the assets field of a draft document. A nil field
// means the collection is absent and everything is removed.
func (Resource) ParseDrafts(productID string, raw json.RawMessage) (reconcile.DraftSet, error) {
	if raw == nil {
		return reconcile.Absent(), nil
	}

	var drafts []models.AssetDraft
	if err := json.Unmarshal(raw, &drafts); err != nil {
		return reconcile.DraftSet{}, fmt.Errorf("failed to parse asset drafts of product %s: %w", productID, err)
	}

	wrapped := make([]reconcile.Draft, 0, len(drafts))
	for _, d := range drafts {
		wrapped = append(wrapped, reconcile.Draft{Key: d.Key, Item: d})
	}
	return reconcile.Present(wrapped), nil
}

// Factory returns the asset action factory for one product.
func (Resource) Factory(productID string) reconcile.ActionFactory {
	return NewFactory(productID)
}

// Apply executes a computed plan.
func (Resource) Apply(ctx context.Context, db *gorm.DB, productID string, actions []reconcile.Action) error {
	return Apply(ctx, db, productID, actions)
}
