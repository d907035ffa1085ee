package fetch

import (
	"context"
	"sync"

	"blogctl/internal/api"
	"blogctl/internal/logging"
	"blogctl/internal/models"
)

// LookupMode selects which detail endpoint a BlogDetail uses.
type LookupMode string

const (
	ByID   LookupMode = "id"
	BySlug LookupMode = "slug"
)

// DetailSnapshot is the renderable state of a BlogDetail.
type DetailSnapshot struct {
	Blog    *models.Blog
	Loading bool
	Error   string
}

// BlogDetail fetches a single post keyed by an identifier and a lookup mode.
// Changing the key or mode re-fetches. An empty key resolves to an idle,
// non-error state.
type BlogDetail struct {
	client *api.Client
	log    logging.Logger

	mu       sync.Mutex
	key      string
	mode     LookupMode
	blog     *models.Blog
	loading  bool
	err      string
	inFlight int
}

// NewBlogDetail builds a detail fetcher. Call Fetch (or SetKey) to load.
func NewBlogDetail(client *api.Client, log logging.Logger, key string, mode LookupMode) *BlogDetail {
	return &BlogDetail{
		client:  client,
		log:     log,
		key:     key,
		mode:    mode,
		loading: true,
	}
}

// SetKey changes the key/mode pair and re-fetches.
func (d *BlogDetail) SetKey(ctx context.Context, key string, mode LookupMode) {
	d.mu.Lock()
	d.key = key
	d.mode = mode
	d.mu.Unlock()
	d.Fetch(ctx)
}

// Refetch re-issues the detail call for the current key.
func (d *BlogDetail) Refetch(ctx context.Context) {
	d.Fetch(ctx)
}

// Fetch loads the post. With no key it completes immediately: loading goes
// false and no error is set.
func (d *BlogDetail) Fetch(ctx context.Context) {
	d.mu.Lock()
	key, mode := d.key, d.mode
	if key == "" {
		d.loading = false
		d.err = ""
		d.blog = nil
		d.mu.Unlock()
		return
	}
	d.loading = true
	d.err = ""
	d.inFlight++
	d.mu.Unlock()

	var res api.Result[models.Blog]
	if mode == BySlug {
		res = d.client.BlogBySlug(ctx, key)
	} else {
		res = d.client.BlogByID(ctx, key)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.inFlight--
	if d.inFlight == 0 {
		d.loading = false
	}

	if !res.Success {
		d.err = res.Error
		d.blog = nil
		return
	}
	blog := res.Data
	d.blog = &blog
}

// Snapshot returns a copy of the current state.
func (d *BlogDetail) Snapshot() DetailSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	var blog *models.Blog
	if d.blog != nil {
		b := *d.blog
		blog = &b
	}
	return DetailSnapshot{Blog: blog, Loading: d.loading, Error: d.err}
}
