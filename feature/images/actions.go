package images

import (
	"catalog-sync/core/syncer"
	"catalog-sync/feature/images/models"
)

// RemoveImage removes the image with the given label from the product.
type RemoveImage struct {
	Label string `json:"label"`
}

// Kind implements syncer.KindedAction.
func (RemoveImage) Kind() syncer.ActionKind { return syncer.KindRemove }

// AddImage inserts a drafted image at Position within the final gallery.
type AddImage struct {
	Draft    models.ImageDraft `json:"draft"`
	Position int               `json:"position"`
}

func (AddImage) Kind() syncer.ActionKind { return syncer.KindAdd }

// ChangeImageOrder rearranges the product's existing images into the given
// id sequence. Only ids that already exist may appear.
type ChangeImageOrder struct {
	IDs []string `json:"ids"`
}

func (ChangeImageOrder) Kind() syncer.ActionKind { return syncer.KindReorder }

// SetImageURL replaces the image's URL.
type SetImageURL struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

func (SetImageURL) Kind() syncer.ActionKind { return syncer.KindUpdate }

// SetImageAltText replaces the image's alternative text.
type SetImageAltText struct {
	Label   string `json:"label"`
	AltText string `json:"alt_text"`
}

func (SetImageAltText) Kind() syncer.ActionKind { return syncer.KindUpdate }
