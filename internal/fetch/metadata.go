package fetch

import (
	"context"
	"sync"

	"blogctl/internal/api"
	"blogctl/internal/logging"
	"blogctl/internal/models"

	"golang.org/x/sync/errgroup"
)

// MetadataSnapshot is the renderable state of a Metadata fetcher.
type MetadataSnapshot struct {
	Categories []models.Category
	Tags       []models.Tag
	Loading    bool
	Error      string
}

// Metadata fetches categories and tags concurrently. It succeeds partially:
// when one of the two calls fails, the other's data is still published and
// the failure only logs a warning; the error state is set only when both
// fail.
type Metadata struct {
	client *api.Client
	log    logging.Logger

	mu         sync.Mutex
	categories []models.Category
	tags       []models.Tag
	loading    bool
	err        string
}

func NewMetadata(client *api.Client, log logging.Logger) *Metadata {
	return &Metadata{client: client, log: log, loading: true}
}

// Fetch loads both lists.
func (m *Metadata) Fetch(ctx context.Context) {
	m.mu.Lock()
	m.loading = true
	m.err = ""
	m.mu.Unlock()

	var (
		catRes api.Result[[]models.Category]
		tagRes api.Result[[]models.Tag]
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		catRes = m.client.Categories(gctx)
		return nil
	})
	g.Go(func() error {
		tagRes = m.client.Tags(gctx)
		return nil
	})
	// The goroutines never return errors; results are inspected below so a
	// single failure stays partial instead of aborting the sibling call.
	_ = g.Wait()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false

	if catRes.Success {
		m.categories = catRes.Data
		if m.categories == nil {
			m.categories = []models.Category{}
		}
	} else {
		m.log.Warn(ctx, "failed to fetch categories", "error", catRes.Error)
	}

	if tagRes.Success {
		m.tags = tagRes.Data
		if m.tags == nil {
			m.tags = []models.Tag{}
		}
	} else {
		m.log.Warn(ctx, "failed to fetch tags", "error", tagRes.Error)
	}

	if !catRes.Success && !tagRes.Success {
		m.err = "Failed to fetch metadata"
	}
}

// Refetch re-loads both lists.
func (m *Metadata) Refetch(ctx context.Context) {
	m.Fetch(ctx)
}

// Snapshot returns a copy of the current state. Never-fetched slices come
// back empty, not nil.
func (m *Metadata) Snapshot() MetadataSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	categories := make([]models.Category, len(m.categories))
	copy(categories, m.categories)
	tags := make([]models.Tag, len(m.tags))
	copy(tags, m.tags)
	return MetadataSnapshot{Categories: categories, Tags: tags, Loading: m.loading, Error: m.err}
}
