package assets

import (
	"context"
	"fmt"

	"catalog-sync/core/reconcile"
	"catalog-sync/feature/assets/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Apply executes an action sequence for one product inside a transaction,
// standing in for the remote system that owns the asset lists. Actions are
// interpreted strictly in order; ids for added assets are assigned here,
// which is why a reorder can never reference an added asset.
func Apply(ctx context.Context, db *gorm.DB, productID string, actions []reconcile.Action) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		list, err := LoadAssets(ctx, tx, productID)
		if err != nil {
			return err
		}

		for _, action := range actions {
			switch a := action.(type) {
			case RemoveAsset:
				if err := tx.Exec("DELETE FROM "+models.TableName+" WHERE product_id = ? AND asset_key = ?", productID, a.Key).Error; err != nil {
					return fmt.Errorf("failed to remove asset %q: %w", a.Key, err)
				}
				list = removeByKey(list, a.Key)

			case ChangeAssetName:
				if err := updateField(tx, productID, a.Key, "name", a.Name); err != nil {
					return err
				}

			case SetAssetDescription:
				if err := updateField(tx, productID, a.Key, "description", a.Description); err != nil {
					return err
				}

			case SetAssetSource:
				if err := updateField(tx, productID, a.Key, "source_url", a.SourceURL); err != nil {
					return err
				}

			case SetAssetTags:
				if err := updateField(tx, productID, a.Key, "tags", models.JoinTags(a.Tags)); err != nil {
					return err
				}

			case ChangeAssetOrder:
				list = reorderByID(list, a.IDs)

			case AddAsset:
				row := models.ProductAsset{
					ID:          uuid.NewString(),
					ProductID:   productID,
					AssetKey:    a.Draft.Key,
					Position:    a.Position,
					Name:        a.Draft.Name,
					Description: a.Draft.Description,
					SourceURL:   a.Draft.SourceURL,
					Tags:        models.JoinTags(a.Draft.Tags),
				}
				if err := insertAsset(tx, row); err != nil {
					return err
				}
				list = insertAt(list, row, a.Position)

			default:
				return fmt.Errorf("asset executor: unsupported action %T", action)
			}
		}

		// Persist the final ordering. Rows already at their final position
		// are left untouched.
		for i, row := range list {
			if row.Position == i {
				continue
			}
			if err := tx.Exec("UPDATE "+models.TableName+" SET position = ? WHERE product_id = ? AND id = ?", i, productID, row.ID).Error; err != nil {
				return fmt.Errorf("failed to reposition asset %s: %w", row.ID, err)
			}
		}
		return nil
	})
}

func updateField(tx *gorm.DB, productID, key, column, value string) error {
	err := tx.Exec("UPDATE "+models.TableName+" SET "+column+" = ? WHERE product_id = ? AND asset_key = ?", value, productID, key).Error
	if err != nil {
		return fmt.Errorf("failed to update %s of asset %q: %w", column, key, err)
	}
	return nil
}

func insertAsset(tx *gorm.DB, row models.ProductAsset) error {
	err := tx.Exec(
		"INSERT INTO "+models.TableName+" (id, product_id, asset_key, position, name, description, source_url, tags) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		row.ID, row.ProductID, row.AssetKey, row.Position, row.Name, row.Description, row.SourceURL, row.Tags,
	).Error
	if err != nil {
		return fmt.Errorf("failed to add asset %q: %w", row.AssetKey, err)
	}
	return nil
}

// removeByKey drops every element with the given key. Unkeyed entries all
// share the empty key, so one remove clears them together; the duplicate
// removes the plan carries for them are then no-ops.
func removeByKey(list []models.ProductAsset, key string) []models.ProductAsset {
	kept := list[:0]
	for _, row := range list {
		if row.AssetKey != key {
			kept = append(kept, row)
		}
	}
	return kept
}

// reorderByID rearranges the working list into the given id sequence.
// Ids cover every surviving row by construction; anything unexpected keeps
// its relative order at the end rather than getting lost.
func reorderByID(list []models.ProductAsset, ids []string) []models.ProductAsset {
	byID := make(map[string]models.ProductAsset, len(list))
	for _, row := range list {
		byID[row.ID] = row
	}

	ordered := make([]models.ProductAsset, 0, len(list))
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

func insertAt(list []models.ProductAsset, row models.ProductAsset, index int) []models.ProductAsset {
	if index < 0 {
		index = 0
	}
	if index > len(list) {
		index = len(list)
	}
	list = append(list, models.ProductAsset{})
	copy(list[index+1:], list[index:])
	list[index] = row
	return list
}
