package images

import (
	"testing"

	"catalog-sync/core/reconcile"
	"catalog-sync/feature/images/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imageEntry(label, id, url, alt string) reconcile.Entry {
	return reconcile.Entry{
		Key: label,
		ID:  id,
		Item: models.ProductImage{
			ID:      id,
			Label:   label,
			URL:     url,
			AltText: alt,
		},
	}
}

func imageDraft(label, url, alt string) reconcile.Draft {
	return reconcile.Draft{
		Key:  label,
		Item: models.ImageDraft{Label: label, URL: url, AltText: alt},
	}
}

func TestFactory_DiffActions(t *testing.T) {
	factory := NewFactory("42")

	tests := []struct {
		name     string
		entry    reconcile.Entry
		draft    reconcile.Draft
		expected []reconcile.Action
	}{
		{
			name:     "NoChanges",
			entry:    imageEntry("front", "1", "https://cdn.example.com/f.png", "Front"),
			draft:    imageDraft("front", "https://cdn.example.com/f.png", "Front"),
			expected: nil,
		},
		{
			name:  "URLChanged",
			entry: imageEntry("front", "1", "https://cdn.example.com/old.png", "Front"),
			draft: imageDraft("front", "https://cdn.example.com/new.png", "Front"),
			expected: []reconcile.Action{
				SetImageURL{Label: "front", URL: "https://cdn.example.com/new.png"},
			},
		},
		{
			name:  "BothFieldsChanged",
			entry: imageEntry("front", "1", "https://cdn.example.com/old.png", "Front"),
			draft: imageDraft("front", "https://cdn.example.com/new.png", "Front view"),
			expected: []reconcile.Action{
				SetImageURL{Label: "front", URL: "https://cdn.example.com/new.png"},
				SetImageAltText{Label: "front", AltText: "Front view"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions, err := factory.DiffActions(tt.entry, tt.draft)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actions)
		})
	}
}

func TestFactory_BadPayload(t *testing.T) {
	factory := NewFactory("42")

	_, err := factory.DiffActions(reconcile.Entry{Key: "front", Item: "nope"}, imageDraft("front", "", ""))
	assert.ErrorContains(t, err, "unexpected entry payload")

	_, err = factory.DiffActions(imageEntry("front", "1", "", ""), reconcile.Draft{Key: "front", Item: 7})
	assert.ErrorContains(t, err, "unexpected draft payload")
}

func TestFactory_WithBuildActions(t *testing.T) {
	factory := NewFactory("42")

	old := []reconcile.Entry{
		imageEntry("front", "1", "https://cdn.example.com/front.png", "Front"),
		imageEntry("side", "2", "https://cdn.example.com/side.png", "Side"),
	}
	desired := reconcile.Present([]reconcile.Draft{
		imageDraft("side", "https://cdn.example.com/side.png", "Side"),
		imageDraft("detail", "https://cdn.example.com/detail.png", "Detail"),
	})

	actions, err := reconcile.BuildActions(old, desired, factory)
	require.NoError(t, err)
	assert.Equal(t, []reconcile.Action{
		RemoveImage{Label: "front"},
		AddImage{Draft: models.ImageDraft{Label: "detail", URL: "https://cdn.example.com/detail.png", AltText: "Detail"}, Position: 1},
	}, actions)
}
