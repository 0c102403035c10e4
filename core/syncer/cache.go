package syncer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"catalog-sync/core/storage"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/singleflight"
)

// DraftDocument is a parsed product draft document: resource name to the
// raw JSON of that resource's draft list. A missing or null field means the
// collection is absent.
type DraftDocument map[string]json.RawMessage

// ResourceField returns the raw drafts for a resource, nil when the field
// is missing or explicitly null.
func (d DraftDocument) ResourceField(name string) json.RawMessage {
	raw, ok := d[name]
	if !ok || string(raw) == "null" {
		return nil
	}
	return raw
}

type cachedDoc struct {
	doc   DraftDocument
	built time.Time
}

// draftCache is a TTL cache of parsed draft documents with singleflight
// stampede protection, so concurrent reconciliations of the same product
// fetch its document once.
type draftCache struct {
	mu      sync.RWMutex
	entries map[string]*cachedDoc
	sf      singleflight.Group
	ttl     time.Duration

	store  storage.Client
	bucket string
}

func newDraftCache(store storage.Client, bucket string, ttl time.Duration) *draftCache {
	return &draftCache{
		entries: make(map[string]*cachedDoc),
		ttl:     ttl,
		store:   store,
		bucket:  bucket,
	}
}

// Get returns the draft document stored under objectName, fetching and
// parsing it when not cached or expired.
func (c *draftCache) Get(ctx context.Context, objectName string) (DraftDocument, error) {
	if c.ttl > 0 {
		c.mu.RLock()
		entry, ok := c.entries[objectName]
		c.mu.RUnlock()
		if ok && time.Since(entry.built) <= c.ttl {
			return entry.doc, nil
		}
	}

	result, err, _ := c.sf.Do(objectName, func() (any, error) {
		// Double-check after winning the flight.
		if c.ttl > 0 {
			c.mu.RLock()
			entry, ok := c.entries[objectName]
			c.mu.RUnlock()
			if ok && time.Since(entry.built) <= c.ttl {
				return entry.doc, nil
			}
		}

		doc, err := c.fetch(ctx, objectName)
		if err != nil {
			return nil, err
		}

		if c.ttl > 0 {
			c.mu.Lock()
			c.entries[objectName] = &cachedDoc{doc: doc, built: time.Now()}
			c.mu.Unlock()
		}
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(DraftDocument), nil
}

// Invalidate drops the cached document for objectName. Called after a
// successful apply so the next plan sees fresh state.
func (c *draftCache) Invalidate(objectName string) {
	c.mu.Lock()
	delete(c.entries, objectName)
	c.mu.Unlock()
}

func (c *draftCache) fetch(ctx context.Context, objectName string) (DraftDocument, error) {
	reader, err := c.store.GetObject(ctx, c.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get draft document %s: %w", objectName, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read draft document %s: %w", objectName, err)
	}

	var doc DraftDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse draft document %s: %w", objectName, err)
	}
	return doc, nil
}
