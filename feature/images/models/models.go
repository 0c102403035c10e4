package models

// TableName is the catalog table holding product image lists.
const TableName = "product_images"

// RequiredColumns are the columns the repository and executor depend on,
// verified by the schema preflight before a sync run.
var RequiredColumns = []string{
	"id", "product_id", "label", "position", "url", "alt_text",
}

// ProductImage is a row of the product_images table: one element of a
// product's ordered image gallery. Label is the sync matching key.
type ProductImage struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Label     string `json:"label"`
	Position  int    `json:"position"`
	URL       string `json:"url"`
	AltText   string `json:"alt_text"`
}

// ImageDraft is the desired state of one image as it appears in a product
// draft document.
type ImageDraft struct {
	Label   string `json:"label"`
	URL     string `json:"url"`
	AltText string `json:"alt_text"`
}
