package assets

import (
	"encoding/json"
	"testing"

	"catalog-sync/feature/assets/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResource_ParseDrafts(t *testing.T) {
	resource := NewResource()

	t.Run("NilFieldIsAbsent", func(t *testing.T) {
		set, err := resource.ParseDrafts("42", nil)
		require.NoError(t, err)
		assert.False(t, set.IsPresent())
	})

	t.Run("EmptyListIsPresent", func(t *testing.T) {
		set, err := resource.ParseDrafts("42", json.RawMessage(`[]`))
		require.NoError(t, err)
		assert.True(t, set.IsPresent())
		assert.Empty(t, set.Drafts())
	})

	t.Run("DraftsKeepOrderAndPayload", func(t *testing.T) {
		raw := json.RawMessage(`[
			{"key": "front", "name": "Front view", "tags": ["hero", "web"]},
			{"key": "back", "name": "Back view", "source_url": "https://cdn.example.com/back.png"}
		]`)

		set, err := resource.ParseDrafts("42", raw)
		require.NoError(t, err)
		require.True(t, set.IsPresent())

		drafts := set.Drafts()
		require.Len(t, drafts, 2)
		assert.Equal(t, "front", drafts[0].Key)
		assert.Equal(t, "back", drafts[1].Key)

		first, ok := drafts[0].Item.(models.AssetDraft)
		require.True(t, ok)
		assert.Equal(t, "Front view", first.Name)
		assert.Equal(t, []string{"hero", "web"}, first.Tags)
	})

	t.Run("MalformedFieldFails", func(t *testing.T) {
		_, err := resource.ParseDrafts("42", json.RawMessage(`{"not": "a list"}`))
		assert.ErrorContains(t, err, "failed to parse asset drafts of product 42")
	})
}

func TestResource_Name(t *testing.T) {
	assert.Equal(t, "assets", NewResource().Name())
}
