package database

import (
	"testing"

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

func showColumnsRows(fields ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	for _, f := range fields {
		rows.AddRow(f, "VARCHAR(255)", "YES", "", nil, "")
	}
	return rows
}

func TestGetTableColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `product_assets`").
		WillReturnRows(showColumnsRows("ID", "Asset_Key", "Position"))

	columns, err := GetTableColumns(db, "product_assets")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	// Fields and types are normalized to lowercase.
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "varchar(255)", columns[0].Type)
	assert.Equal(t, "asset_key", columns[1].Field)
}

func TestCheckColumns(t *testing.T) {
	t.Run("AllPresent", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SHOW COLUMNS FROM `product_assets`").
			WillReturnRows(showColumnsRows("id", "asset_key", "position"))

		missing, err := CheckColumns(db, "product_assets", []string{"id", "asset_key"})
		require.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("MissingColumn", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SHOW COLUMNS FROM `product_assets`").
			WillReturnRows(showColumnsRows("id"))

		missing, err := CheckColumns(db, "product_assets", []string{"id", "position"})
		require.NoError(t, err)
		assert.Equal(t, []string{"position"}, missing)
	})
}
