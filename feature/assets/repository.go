package assets

import (
	"context"
	"fmt"

	"catalog-sync/core/reconcile"
	"catalog-sync/feature/assets/models"

	"gorm.io/gorm"
)

// LoadAssets loads a product's asset list in stored order.
func LoadAssets(ctx context.Context, db *gorm.DB, productID string) ([]models.ProductAsset, error) {
	var rows []models.ProductAsset
	err := db.WithContext(ctx).
		Raw("SELECT id, product_id, asset_key, position, name, description, source_url, tags FROM "+models.TableName+" WHERE product_id = ? ORDER BY position", productID).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load assets for product %s: %w", productID, err)
	}
	return rows, nil
}

// toEntries converts rows into the core's entry shape. The full row rides
// along as the opaque payload so the factory can diff fields.
func toEntries(rows []models.ProductAsset) []reconcile.Entry {
	entries := make([]reconcile.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, reconcile.Entry{
			Key:  row.AssetKey,
			ID:   row.ID,
			Item: row,
		})
	}
	return entries
}
