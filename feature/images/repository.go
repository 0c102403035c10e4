package images

import (
	"context"
	"fmt"

	"catalog-sync/core/reconcile"
	"catalog-sync/feature/images/models"

	"gorm.io/gorm"
)

// LoadImages loads a product's image gallery in stored order.
func LoadImages(ctx context.Context, db *gorm.DB, productID string) ([]models.ProductImage, error) {
	var rows []models.ProductImage
	err := db.WithContext(ctx).
		Raw("SELECT id, product_id, label, position, url, alt_text FROM "+models.TableName+" WHERE product_id = ? ORDER BY position", productID).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load images for product %s: %w", productID, err)
	}
	return rows, nil
}

func toEntries(rows []models.ProductImage) []reconcile.Entry {
	entries := make([]reconcile.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, reconcile.Entry{
			Key:  row.Label,
			ID:   row.ID,
			Item: row,
		})
	}
	return entries
}
