package images

import (
	"context"
	"fmt"

	"catalog-sync/core/reconcile"
	"catalog-sync/feature/images/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Apply executes an action sequence for one product inside a transaction.
// The gallery is tracked in memory while actions run; a final pass persists
// only the positions that actually changed.
func Apply(ctx context.Context, db *gorm.DB, productID string, actions []reconcile.Action) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		list, err := LoadImages(ctx, tx, productID)
		if err != nil {
			return err
		}

		for _, action := range actions {
			switch a := action.(type) {
			case RemoveImage:
				if err := tx.Exec("DELETE FROM "+models.TableName+" WHERE product_id = ? AND label = ?", productID, a.Label).Error; err != nil {
					return fmt.Errorf("failed to remove image %q: %w", a.Label, err)
				}
				list = removeByLabel(list, a.Label)

			case SetImageURL:
				if err := updateField(tx, productID, a.Label, "url", a.URL); err != nil {
					return err
				}

			case SetImageAltText:
				if err := updateField(tx, productID, a.Label, "alt_text", a.AltText); err != nil {
					return err
				}

			case ChangeImageOrder:
				list = reorderByID(list, a.IDs)

			case AddImage:
				row := models.ProductImage{
					ID:        uuid.NewString(),
					ProductID: productID,
					Label:     a.Draft.Label,
					Position:  a.Position,
					URL:       a.Draft.URL,
					AltText:   a.Draft.AltText,
				}
				err := tx.Exec(
					"INSERT INTO "+models.TableName+" (id, product_id, label, position, url, alt_text) VALUES (?, ?, ?, ?, ?, ?)",
					row.ID, row.ProductID, row.Label, row.Position, row.URL, row.AltText,
				).Error
				if err != nil {
					return fmt.Errorf("failed to add image %q: %w", row.Label, err)
				}
				list = insertAt(list, row, a.Position)

			default:
				return fmt.Errorf("image executor: unsupported action %T", action)
			}
		}

		for i, row := range list {
			if row.Position == i {
				continue
			}
			if err := tx.Exec("UPDATE "+models.TableName+" SET position = ? WHERE product_id = ? AND id = ?", i, productID, row.ID).Error; err != nil {
				return fmt.Errorf("failed to reposition image %s: %w", row.ID, err)
			}
		}
		return nil
	})
}

func updateField(tx *gorm.DB, productID, label, column, value string) error {
	err := tx.Exec("UPDATE "+models.TableName+" SET "+column+" = ? WHERE product_id = ? AND label = ?", value, productID, label).Error
	if err != nil {
		return fmt.Errorf("failed to update %s of image %q: %w", column, label, err)
	}
	return nil
}

func removeByLabel(list []models.ProductImage, label string) []models.ProductImage {
	kept := list[:0]
	for _, row := range list {
		if row.Label != label {
			kept = append(kept, row)
		}
	}
	return kept
}

func reorderByID(list []models.ProductImage, ids []string) []models.ProductImage {
	byID := make(map[string]models.ProductImage, len(list))
	for _, row := range list {
		byID[row.ID] = row
	}

	ordered := make([]models.ProductImage, 0, len(list))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if row, ok := byID[id]; ok {
			ordered = append(ordered, row)
			seen[id] = struct{}{}
		}
	}
	for _, row := range list {
		if _, ok := seen[row.ID]; !ok {
			ordered = append(ordered, row)
		}
	}
	return ordered
}

func insertAt(list []models.ProductImage, row models.ProductImage, index int) []models.ProductImage {
	if index < 0 {
		index = 0
	}
	if index > len(list) {
		index = len(list)
	}
	list = append(list, models.ProductImage{})
	copy(list[index+1:], list[index:])
	list[index] = row
	return list
}
