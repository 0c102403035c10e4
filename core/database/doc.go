// Package database handles catalog database connections and schema
// inspection.
//
// It wraps GORM to configure MySQL connections from the application's
// configuration, with strict connect and I/O timeouts so a dead database
// fails a sync run fast.
//
// # Schema Inspection
//
// The package also provides a small schema inspector used as a preflight
// check before sync runs: features verify that their tables exist and carry
// the columns their repositories select, turning a schema drift into a
// clear startup error instead of a failed reconciliation mid-batch.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "product_assets")
package database
