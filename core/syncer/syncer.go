package syncer

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"catalog-sync/core/reconcile"
	"catalog-sync/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Plan is the computed action sequence for one product's collection.
// Plans are reports; applying them is a separate, explicit step.
type Plan struct {
	// ProductID identifies the product the plan belongs to.
	ProductID string `json:"product_id"`

	// Resource is the name of the reconciled list field.
	Resource string `json:"resource"`

	// Actions is the ordered action sequence. Applying it in order against
	// the current state produces the drafted state.
	Actions []reconcile.Action `json:"actions"`

	// Summary tallies the actions by kind.
	Summary Statistics `json:"summary"`
}

// UpToDate reports whether the plan requires no changes.
func (p *Plan) UpToDate() bool {
	return len(p.Actions) == 0
}

// Options controls a sync run.
type Options struct {
	// DryRun computes plans without applying them.
	DryRun bool
}

// Syncer wires resources, the catalog database and draft storage together
// and keeps running totals across runs.
type Syncer struct {
	db     *gorm.DB
	logger *zap.Logger
	cfg    Config
	cache  *draftCache
	store  storage.Client
	bucket string

	resources map[string]Resource

	mu    sync.Mutex
	total Statistics
}

// New creates a Syncer. Resources are registered separately so features can
// plug themselves in at startup.
func New(db *gorm.DB, store storage.Client, bucket string, logger *zap.Logger, cfg Config) *Syncer {
	return &Syncer{
		db:        db,
		logger:    logger,
		cfg:       cfg,
		store:     store,
		bucket:    bucket,
		cache:     newDraftCache(store, bucket, time.Duration(cfg.CacheTTLSeconds)*time.Second),
		resources: make(map[string]Resource),
	}
}

// Register adds a resource. Registering two resources with the same name is
// a programming error and panics at startup.
func (s *Syncer) Register(r Resource) {
	if _, exists := s.resources[r.Name()]; exists {
		panic(fmt.Sprintf("syncer: resource %q registered twice", r.Name()))
	}
	s.resources[r.Name()] = r
}

// ResourceNames returns the names of all registered resources.
func (s *Syncer) ResourceNames() []string {
	names := make([]string, 0, len(s.resources))
	for name := range s.resources {
		names = append(names, name)
	}
	return names
}

// Plan computes the action plan for one product's resource without
// applying it.
func (s *Syncer) Plan(ctx context.Context, resourceName, productID string) (*Plan, error) {
	resource, ok := s.resources[resourceName]
	if !ok {
		return nil, fmt.Errorf("unknown resource %q", resourceName)
	}
	return s.plan(ctx, resource, productID)
}

// SyncProduct plans and, unless opts.DryRun is set, applies the plan for
// one product's resource. The run's statistics are merged into the totals.
func (s *Syncer) SyncProduct(ctx context.Context, resourceName, productID string, opts Options) (*Plan, Statistics, error) {
	start := time.Now()

	plan, stats, err := s.syncProduct(ctx, resourceName, productID, opts)
	stats.ProcessingTime = time.Since(start)
	s.addTotal(stats)
	return plan, stats, err
}

// Statistics returns the totals accumulated over every run of this Syncer.
func (s *Syncer) Statistics() Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// ListProductIDs lists the ids of all products that have a draft document,
// derived from the object names under the configured prefix.
func (s *Syncer) ListProductIDs(ctx context.Context) ([]string, error) {
	var ids []string
	for object := range s.store.ListObjects(ctx, s.bucket, listOptions(s.cfg.DraftPrefix)) {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list draft documents: %w", object.Err)
		}
		base := path.Base(object.Key)
		if !strings.HasSuffix(base, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(base, ".json"))
	}
	return ids, nil
}

func (s *Syncer) syncProduct(ctx context.Context, resourceName, productID string, opts Options) (*Plan, Statistics, error) {
	resource, ok := s.resources[resourceName]
	if !ok {
		return nil, Statistics{Failed: 1}, fmt.Errorf("unknown resource %q", resourceName)
	}

	plan, err := s.plan(ctx, resource, productID)
	if err != nil {
		return nil, Statistics{Processed: 1, Failed: 1}, err
	}

	stats := Statistics{Processed: 1}
	if plan.UpToDate() {
		stats.UpToDate = 1
		return plan, stats, nil
	}

	if opts.DryRun {
		return plan, stats, nil
	}

	if err := resource.Apply(ctx, s.db, productID, plan.Actions); err != nil {
		stats.Failed = 1
		return plan, stats, fmt.Errorf("failed to apply %s plan for product %s: %w", resourceName, productID, err)
	}
	s.cache.Invalidate(s.draftObjectName(productID))

	stats.Add(plan.Summary)
	return plan, stats, nil
}

func (s *Syncer) plan(ctx context.Context, resource Resource, productID string) (*Plan, error) {
	doc, err := s.cache.Get(ctx, s.draftObjectName(productID))
	if err != nil {
		return nil, err
	}

	drafts, err := resource.ParseDrafts(productID, doc.ResourceField(resource.Name()))
	if err != nil {
		return nil, err
	}

	entries, err := resource.LoadEntries(ctx, s.db, productID)
	if err != nil {
		return nil, err
	}

	actions, err := reconcile.BuildActions(entries, drafts, resource.Factory(productID))
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		ProductID: productID,
		Resource:  resource.Name(),
		Actions:   actions,
	}
	plan.Summary = countActions(plan)
	return plan, nil
}

func (s *Syncer) draftObjectName(productID string) string {
	return s.cfg.DraftPrefix + "/" + productID + ".json"
}
