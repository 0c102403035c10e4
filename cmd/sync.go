package cmd

import (
	"fmt"
	"log"
	"os/signal"
	"strings"
	"syscall"

	"catalog-sync/core/config"
	"catalog-sync/core/database"
	"catalog-sync/core/logger"
	"catalog-sync/core/storage"
	"catalog-sync/core/syncer"
	"catalog-sync/feature/assets"
	assetmodels "catalog-sync/feature/assets/models"
	"catalog-sync/feature/images"
	imagemodels "catalog-sync/feature/images/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	syncDryRun   bool
	syncResource string
	syncWorkers  int
)

// requiredTables maps resource names to the table each executor writes,
// checked before a run so a schema drift fails fast instead of mid-batch.
var requiredTables = map[string]struct {
	table   string
	columns []string
}{
	"assets": {table: assetmodels.TableName, columns: assetmodels.RequiredColumns},
	"images": {table: imagemodels.TableName, columns: imagemodels.RequiredColumns},
}

// syncCmd reconciles products from the command line, without the HTTP
// surface. With no product ids it processes every product that has a
// draft document.
var syncCmd = &cobra.Command{
	Use:   "sync [productID...]",
	Short: "Reconcile products against their draft documents",
	Long: `Reconciles the list fields of catalog products against their draft
documents in object storage. Without product ids, every product with a
draft document is processed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to catalog database: %w", err)
		}

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		if syncWorkers > 0 {
			cfg.Sync.Workers = syncWorkers
		}

		s := syncer.New(db, store, cfg.Storage.Bucket, logg, cfg.Sync)
		s.Register(assets.NewResource())
		s.Register(images.NewResource())

		resources := s.ResourceNames()
		if syncResource != "" {
			resources = []string{syncResource}
		}

		if err := checkSchemas(db, resources); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		productIDs := args
		if len(productIDs) == 0 {
			productIDs, err = s.ListProductIDs(ctx)
			if err != nil {
				return err
			}
			logg.Info("Discovered draft documents", zap.Int("products", len(productIDs)))
		}

		var failed int
		for _, name := range resources {
			stats, err := s.Run(ctx, name, productIDs, syncer.Options{DryRun: syncDryRun})
			if err != nil {
				return err
			}
			failed += stats.Failed

			logg.Info("Sync run finished",
				zap.String("resource", name),
				zap.Bool("dry_run", syncDryRun),
				zap.Int("processed", stats.Processed),
				zap.Int("up_to_date", stats.UpToDate),
				zap.Int("created", stats.Created),
				zap.Int("removed", stats.Removed),
				zap.Int("updated", stats.Updated),
				zap.Int("reordered", stats.Reordered),
				zap.Int("failed", stats.Failed),
				zap.Duration("processing_time", stats.ProcessingTime),
			)
		}

		if failed > 0 {
			return fmt.Errorf("%d product collections failed to sync", failed)
		}
		return nil
	},
}

func checkSchemas(db *gorm.DB, resources []string) error {
	for _, name := range resources {
		req, ok := requiredTables[name]
		if !ok {
			return fmt.Errorf("unknown resource %q, expected one of: %s", name, strings.Join(resourceKeys(), ", "))
		}
		missing, err := database.CheckColumns(db, req.table, req.columns)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return fmt.Errorf("table %s is missing columns: %s", req.table, strings.Join(missing, ", "))
		}
	}
	return nil
}

func resourceKeys() []string {
	keys := make([]string, 0, len(requiredTables))
	for name := range requiredTables {
		keys = append(keys, name)
	}
	return keys
}

func init() {
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "compute plans without applying them")
	syncCmd.Flags().StringVar(&syncResource, "resource", "", "limit the run to one resource (assets, images)")
	syncCmd.Flags().IntVar(&syncWorkers, "workers", 0, "override the configured worker count")
	RootCmd.AddCommand(syncCmd)
}
