package assets

import (
	"catalog-sync/core/syncer"
	"catalog-sync/feature/assets/models"
)

// The concrete actions the asset factory builds. They are immutable value
// types; the executor interprets them in sequence.

// RemoveAsset removes the asset with the given key from the product.
type RemoveAsset struct {
	Key string `json:"key"`
}

// Kind implements syncer.KindedAction.
func (RemoveAsset) Kind() syncer.ActionKind { return syncer.KindRemove }

// AddAsset inserts a drafted asset at Position within the final list.
type AddAsset struct {
	Draft    models.AssetDraft `json:"draft"`
	Position int               `json:"position"`
}

func (AddAsset) Kind() syncer.ActionKind { return syncer.KindAdd }

// ChangeAssetOrder rearranges the product's existing assets into the given
// id sequence. Only ids that already exist may appear.
type ChangeAssetOrder struct {
	IDs []string `json:"ids"`
}

func (ChangeAssetOrder) Kind() syncer.ActionKind { return syncer.KindReorder }

// ChangeAssetName renames the asset with the given key.
type ChangeAssetName struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

func (ChangeAssetName) Kind() syncer.ActionKind { return syncer.KindUpdate }

// SetAssetDescription replaces the asset's description.
type SetAssetDescription struct {
	Key         string `json:"key"`
	Description string `json:"description"`
}

func (SetAssetDescription) Kind() syncer.ActionKind { return syncer.KindUpdate }

// SetAssetSource replaces the asset's source URL.
type SetAssetSource struct {
	Key       string `json:"key"`
	SourceURL string `json:"source_url"`
}

func (SetAssetSource) Kind() syncer.ActionKind { return syncer.KindUpdate }

// SetAssetTags replaces the asset's tag list.
type SetAssetTags struct {
	Key  string   `json:"key"`
	Tags []string `json:"tags"`
}

func (SetAssetTags) Kind() syncer.ActionKind { return syncer.KindUpdate }
