package models

import "strings"

// TableName is the catalog table holding product asset lists.
const TableName = "product_assets"

// RequiredColumns are the columns the repository and executor depend on,
// verified by the schema preflight before a sync run.
var RequiredColumns = []string{
	"id", "product_id", "asset_key", "position",
	"name", "description", "source_url", "tags",
}

// ProductAsset is a row of the product_assets table: one element of a
// product's ordered asset list. ID is the stable identifier assigned when
// the asset was created; AssetKey is the sync matching key.
type ProductAsset struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	AssetKey    string `json:"asset_key"`
	Position    int    `json:"position"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SourceURL   string `json:"source_url"`
	Tags        string `json:"tags"` // comma-joined, normalized via JoinTags
}

// AssetDraft is the desired state of one asset as it appears in a product
// draft document. Drafts carry no id; one is assigned when the asset is
// created.
type AssetDraft struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	SourceURL   string   `json:"source_url"`
	Tags        []string `json:"tags"`
}

// JoinTags renders a tag list in the storage format used by the tags column.
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}
