package images

import (
	"fmt"

	"catalog-sync/core/reconcile"
	"catalog-sync/feature/images/models"
)

// Factory builds image actions for one product's gallery. It implements
// reconcile.ActionFactory.
type Factory struct {
	productID string
}

// NewFactory creates a factory for the given product.
func NewFactory(productID string) *Factory {
	return &Factory{productID: productID}
}

// CollectionName implements reconcile.CollectionDescriber.
func (f *Factory) CollectionName() string {
	return "images of product " + f.productID
}

// DiffActions compares a matched image and draft field by field, URL first.
func (f *Factory) DiffActions(oldEntry reconcile.Entry, newDraft reconcile.Draft) ([]reconcile.Action, error) {
	image, ok := oldEntry.Item.(models.ProductImage)
	if !ok {
		return nil, fmt.Errorf("image diff: unexpected entry payload %T", oldEntry.Item)
	}
	draft, ok := newDraft.Item.(models.ImageDraft)
	if !ok {
		return nil, fmt.Errorf("image diff: unexpected draft payload %T", newDraft.Item)
	}

	var actions []reconcile.Action
	if image.URL != draft.URL {
		actions = append(actions, SetImageURL{Label: image.Label, URL: draft.URL})
	}
	if image.AltText != draft.AltText {
		actions = append(actions, SetImageAltText{Label: image.Label, AltText: draft.AltText})
	}
	return actions, nil
}

// RemoveAction implements reconcile.ActionFactory.
func (f *Factory) RemoveAction(key string) reconcile.Action {
	return RemoveImage{Label: key}
}

// AddAction implements reconcile.ActionFactory.
func (f *Factory) AddAction(draft reconcile.Draft, index int) reconcile.Action {
	d, _ := draft.Item.(models.ImageDraft)
	return AddImage{Draft: d, Position: index}
}

// ReorderAction implements reconcile.ActionFactory.
func (f *Factory) ReorderAction(ids []string) reconcile.Action {
	return ChangeImageOrder{IDs: ids}
}
