package assets

import (
	"fmt"

	"catalog-sync/core/reconcile"
	"catalog-sync/feature/assets/models"
)

// Factory builds asset actions for one product's collection. It implements
// reconcile.ActionFactory and carries no state beyond the product id used
// for error descriptions.
type Factory struct {
	productID string
}

// NewFactory creates a factory for the given product.
func NewFactory(productID string) *Factory {
	return &Factory{productID: productID}
}

// CollectionName implements reconcile.CollectionDescriber.
func (f *Factory) CollectionName() string {
	return "assets of product " + f.productID
}

// DiffActions compares a matched asset and draft field by field. The action
// order is fixed (name, description, source, tags) so plans are stable.
func (f *Factory) DiffActions(oldEntry reconcile.Entry, newDraft reconcile.Draft) ([]reconcile.Action, error) {
	asset, ok := oldEntry.Item.(models.ProductAsset)
	if !ok {
		return nil, fmt.Errorf("asset diff: unexpected entry payload %T", oldEntry.Item)
	}
	draft, ok := newDraft.Item.(models.AssetDraft)
	if !ok {
		return nil, fmt.Errorf("asset diff: unexpected draft payload %T", newDraft.Item)
	}

	var actions []reconcile.Action
	if asset.Name != draft.Name {
		actions = append(actions, ChangeAssetName{Key: asset.AssetKey, Name: draft.Name})
	}
	if asset.Description != draft.Description {
		actions = append(actions, SetAssetDescription{Key: asset.AssetKey, Description: draft.Description})
	}
	if asset.SourceURL != draft.SourceURL {
		actions = append(actions, SetAssetSource{Key: asset.AssetKey, SourceURL: draft.SourceURL})
	}
	if asset.Tags != models.JoinTags(draft.Tags) {
		actions = append(actions, SetAssetTags{Key: asset.AssetKey, Tags: draft.Tags})
	}
	return actions, nil
}

// RemoveAction implements reconcile.ActionFactory.
func (f *Factory) RemoveAction(key string) reconcile.Action {
	return RemoveAsset{Key: key}
}

// AddAction implements reconcile.ActionFactory.
func (f *Factory) AddAction(draft reconcile.Draft, index int) reconcile.Action {
	d, _ := draft.Item.(models.AssetDraft)
	return AddAsset{Draft: d, Position: index}
}

// ReorderAction implements reconcile.ActionFactory.
func (f *Factory) ReorderAction(ids []string) reconcile.Action {
	return ChangeAssetOrder{IDs: ids}
}
