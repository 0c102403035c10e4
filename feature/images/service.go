package images

import (
	"context"

	"catalog-sync/core/syncer"

	"go.uber.org/zap"
)

// Service exposes image sync operations to the HTTP surface.
type Service struct {
	syncer *syncer.Syncer
	logger *zap.Logger
}

// NewService creates a new image service.
func NewService(s *syncer.Syncer, logger *zap.Logger) *Service {
	return &Service{syncer: s, logger: logger}
}

// Plan computes the action plan for a product's images without applying it.
func (s *Service) Plan(ctx context.Context, productID string) (*syncer.Plan, error) {
	return s.syncer.Plan(ctx, "images", productID)
}

// Sync reconciles a product's images. With dryRun the plan is computed but
// not applied.
func (s *Service) Sync(ctx context.Context, productID string, dryRun bool) (*syncer.Plan, syncer.Statistics, error) {
	return s.syncer.SyncProduct(ctx, "images", productID, syncer.Options{DryRun: dryRun})
}
