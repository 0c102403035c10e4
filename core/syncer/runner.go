package syncer

import (
	"context"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Run reconciles a batch of products for one resource across a bounded
// worker pool and returns the aggregated statistics. Individual product
// failures are logged and counted; they never abort sibling products.
func (s *Syncer) Run(ctx context.Context, resourceName string, productIDs []string, opts Options) (Statistics, error) {
	start := time.Now()

	workers := s.cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	var (
		mu    sync.Mutex
		total Statistics
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for _, productID := range productIDs {
		productID := productID
		group.Go(func() error {
			plan, stats, err := s.syncProduct(groupCtx, resourceName, productID, opts)
			if err != nil {
				s.logger.Error("Sync failed",
					zap.String("resource", resourceName),
					zap.String("product_id", productID),
					zap.Error(err),
				)
			} else if !plan.UpToDate() {
				s.logger.Info("Synced product",
					zap.String("resource", resourceName),
					zap.String("product_id", productID),
					zap.Int("actions", len(plan.Actions)),
					zap.Bool("dry_run", opts.DryRun),
				)
			}

			mu.Lock()
			total.Add(stats)
			mu.Unlock()
			// Errors are absorbed into stats so one product cannot cancel
			// the rest of the batch.
			return nil
		})
	}

	// Workers never return errors, so Wait only synchronizes. A caller
	// cancellation still surfaces after every in-flight product settled.
	_ = group.Wait()

	total.ProcessingTime = time.Since(start)
	s.addTotal(total)
	return total, ctx.Err()
}

func (s *Syncer) addTotal(stats Statistics) {
	s.mu.Lock()
	s.total.Add(stats)
	s.mu.Unlock()
}

func listOptions(prefix string) minio.ListObjectsOptions {
	return minio.ListObjectsOptions{
		Prefix:    prefix + "/",
		Recursive: true,
	}
}
