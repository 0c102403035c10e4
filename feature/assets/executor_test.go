package assets

import (
	"context"
	"regexp"
	"testing"

	"catalog-sync/core/reconcile"
	"catalog-sync/feature/assets/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func assetRows(rows ...models.ProductAsset) *sqlmock.Rows {
	result := sqlmock.NewRows([]string{"id", "product_id", "asset_key", "position", "name", "description", "source_url", "tags"})
	for _, r := range rows {
		result.AddRow(r.ID, r.ProductID, r.AssetKey, r.Position, r.Name, r.Description, r.SourceURL, r.Tags)
	}
	return result
}

func expectLoad(mock sqlmock.Sqlmock, rows *sqlmock.Rows) {
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, product_id, asset_key, position, name, description, source_url, tags FROM product_assets WHERE product_id = ? ORDER BY position")).
		WithArgs("42").
		WillReturnRows(rows)
}

func TestApply_MixedPlan(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	expectLoad(mock, assetRows(
		models.ProductAsset{ID: "1", ProductID: "42", AssetKey: "a", Position: 0},
		models.ProductAsset{ID: "2", ProductID: "42", AssetKey: "b", Position: 1},
		models.ProductAsset{ID: "3", ProductID: "42", AssetKey: "c", Position: 2},
	))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM product_assets WHERE product_id = ? AND asset_key = ?")).
		WithArgs("42", "a").
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE product_assets SET name = ? WHERE product_id = ? AND asset_key = ?")).
		WithArgs("B2", "42", "b").
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO product_assets (id, product_id, asset_key, position, name, description, source_url, tags) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")).
		WithArgs(sqlmock.AnyArg(), "42", "d", 2, "D", "", "", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	// After remove, reorder [3 2] and the add, only "c" moved: it lands at
	// final position 0.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE product_assets SET position = ? WHERE product_id = ? AND id = ?")).
		WithArgs(0, "42", "3").
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectCommit()

	actions := []reconcile.Action{
		RemoveAsset{Key: "a"},
		ChangeAssetName{Key: "b", Name: "B2"},
		ChangeAssetOrder{IDs: []string{"3", "2"}},
		AddAsset{Draft: models.AssetDraft{Key: "d", Name: "D"}, Position: 2},
	}

	require.NoError(t, Apply(context.Background(), db, "42", actions))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_RemoveAllKeepsNoRows(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	expectLoad(mock, assetRows(
		models.ProductAsset{ID: "1", ProductID: "42", AssetKey: "a", Position: 0},
		models.ProductAsset{ID: "2", ProductID: "42", AssetKey: "b", Position: 1},
	))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM product_assets WHERE product_id = ? AND asset_key = ?")).
		WithArgs("42", "a").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM product_assets WHERE product_id = ? AND asset_key = ?")).
		WithArgs("42", "b").
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectCommit()

	actions := []reconcile.Action{
		RemoveAsset{Key: "a"},
		RemoveAsset{Key: "b"},
	}

	require.NoError(t, Apply(context.Background(), db, "42", actions))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_UnsupportedActionRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	expectLoad(mock, assetRows())
	mock.ExpectRollback()

	err := Apply(context.Background(), db, "42", []reconcile.Action{struct{}{}})
	assert.ErrorContains(t, err, "unsupported action")
	assert.NoError(t, mock.ExpectationsWereMet())
}
