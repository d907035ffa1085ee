package fetch

import (
	"context"
	"sync"

	"blogctl/internal/api"
	"blogctl/internal/logging"
	"blogctl/internal/models"
)

// ListSnapshot is the renderable state of a BlogList.
type ListSnapshot struct {
	Blogs      []models.Blog
	Loading    bool
	Error      string
	Page       int
	TotalPages int
	Total      int
}

// HasMore reports whether pages beyond the current one exist.
func (s ListSnapshot) HasMore() bool {
	return s.Page < s.TotalPages
}

// BlogList fetches paginated post listings. Refetch replaces the items;
// LoadMore appends the next page (the screen never re-derives pages).
type BlogList struct {
	client *api.Client
	log    logging.Logger

	mu         sync.Mutex
	params     models.ListParams
	blogs      []models.Blog
	loading    bool
	err        string
	page       int
	totalPages int
	total      int
	inFlight   int
}

// NewBlogList builds a list fetcher with persisted initial params. It starts
// in the loading state; call Refetch to populate it.
func NewBlogList(client *api.Client, log logging.Logger, initial models.ListParams) *BlogList {
	return &BlogList{
		client:  client,
		log:     log,
		params:  initial,
		loading: true,
	}
}

// Refetch merges override into the persisted params and re-issues the list
// call, replacing the current items.
func (l *BlogList) Refetch(ctx context.Context, override models.ListParams) {
	l.mu.Lock()
	l.params = l.params.Merge(override)
	params := l.params
	l.mu.Unlock()

	l.fetch(ctx, params, false)
}

// LoadMore requests the next page and appends it. It is a no-op — returning
// false — when the fetcher is already on the last page or a fetch is in
// flight.
func (l *BlogList) LoadMore(ctx context.Context) bool {
	l.mu.Lock()
	if l.inFlight > 0 || l.page >= l.totalPages {
		l.mu.Unlock()
		return false
	}
	l.params.Page = l.page + 1
	params := l.params
	l.mu.Unlock()

	l.fetch(ctx, params, true)
	return true
}

// HasMore reports whether LoadMore would have another page to ask for.
func (l *BlogList) HasMore() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page < l.totalPages
}

// Snapshot returns a copy of the current state.
func (l *BlogList) Snapshot() ListSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	blogs := make([]models.Blog, len(l.blogs))
	copy(blogs, l.blogs)
	return ListSnapshot{
		Blogs:      blogs,
		Loading:    l.loading,
		Error:      l.err,
		Page:       l.page,
		TotalPages: l.totalPages,
		Total:      l.total,
	}
}

func (l *BlogList) fetch(ctx context.Context, params models.ListParams, appendPage bool) {
	l.mu.Lock()
	l.loading = true
	l.err = ""
	l.inFlight++
	l.mu.Unlock()

	res := l.client.ListBlogs(ctx, params)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.inFlight--
	if l.inFlight == 0 {
		l.loading = false
	}

	if !res.Success {
		l.err = res.Error
		if !appendPage {
			l.blogs = nil
		}
		return
	}

	if appendPage {
		l.blogs = append(l.blogs, res.Data.Blogs...)
	} else {
		l.blogs = res.Data.Blogs
	}
	l.page = res.Data.Page
	l.totalPages = res.Data.TotalPages
	l.total = res.Data.Total
}
