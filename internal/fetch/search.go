package fetch

import (
	"context"
	"strings"
	"sync"
	"time"

	"blogctl/internal/api"
	"blogctl/internal/logging"
	"blogctl/internal/models"
)

// SearchSnapshot is the renderable state of a Searcher.
type SearchSnapshot struct {
	Query   string
	Results []models.Blog
	Loading bool
	Error   string
}

// Searcher debounces a changing query against the search endpoint. A query
// that is empty after trimming short-circuits to an empty result set without
// touching the network. Close must be called when the owning screen goes
// away, otherwise a scheduled timer may still fire.
type Searcher struct {
	client   *api.Client
	log      logging.Logger
	debounce time.Duration

	mu      sync.Mutex
	query   string
	results []models.Blog
	loading bool
	err     string
	timer   *time.Timer
	closed  bool
	wg      sync.WaitGroup
}

// NewSearcher builds a searcher. A non-positive debounce falls back to the
// original client's 300ms.
func NewSearcher(client *api.Client, log logging.Logger, debounce time.Duration) *Searcher {
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}
	return &Searcher{client: client, log: log, debounce: debounce}
}

// SetQuery records the query and schedules a search for when it has stopped
// changing for the debounce interval. Earlier pending searches are dropped.
func (s *Searcher) SetQuery(ctx context.Context, query string) {
	trimmed := strings.TrimSpace(query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.stopTimerLocked()
	s.query = trimmed

	if trimmed == "" {
		s.results = []models.Blog{}
		s.err = ""
		s.loading = false
		return
	}

	s.loading = true
	s.err = ""
	s.wg.Add(1)
	s.timer = time.AfterFunc(s.debounce, func() {
		defer s.wg.Done()
		s.run(ctx, trimmed)
	})
}

// Search runs immediately, bypassing the debounce. A whitespace-only query
// returns an empty success without a network call.
func (s *Searcher) Search(ctx context.Context, query string) api.Result[[]models.Blog] {
	trimmed := strings.TrimSpace(query)

	s.mu.Lock()
	s.stopTimerLocked()
	s.query = trimmed
	if trimmed == "" {
		s.results = []models.Blog{}
		s.err = ""
		s.loading = false
		s.mu.Unlock()
		return api.Result[[]models.Blog]{Success: true, Data: []models.Blog{}}
	}
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	res := s.client.SearchBlogs(ctx, trimmed, models.ListParams{})
	s.apply(trimmed, res)
	if !res.Success {
		return api.Result[[]models.Blog]{Error: res.Error}
	}
	return api.Result[[]models.Blog]{Success: true, Data: res.Data.Blogs}
}

// Clear resets query, results and error together.
func (s *Searcher) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
	s.query = ""
	s.results = []models.Blog{}
	s.err = ""
	s.loading = false
}

// Close drops any pending search and waits for a running one to finish.
func (s *Searcher) Close() {
	s.mu.Lock()
	s.closed = true
	s.stopTimerLocked()
	s.mu.Unlock()
	s.wg.Wait()
}

// Snapshot returns a copy of the current state.
func (s *Searcher) Snapshot() SearchSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	results := make([]models.Blog, len(s.results))
	copy(results, s.results)
	return SearchSnapshot{Query: s.query, Results: results, Loading: s.loading, Error: s.err}
}

// stopTimerLocked cancels a scheduled search. When Stop wins the race the
// timer callback never runs, so its WaitGroup slot is released here.
func (s *Searcher) stopTimerLocked() {
	if s.timer != nil && s.timer.Stop() {
		s.wg.Done()
	}
	s.timer = nil
}

func (s *Searcher) run(ctx context.Context, query string) {
	res := s.client.SearchBlogs(ctx, query, models.ListParams{})
	s.apply(query, res)
}

// apply writes a search outcome, unless the query moved on in the meantime.
func (s *Searcher) apply(query string, res api.Result[api.BlogPage]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.query != query {
		return
	}
	s.loading = false
	if !res.Success {
		s.err = res.Error
		s.results = []models.Blog{}
		return
	}
	s.err = ""
	s.results = res.Data.Blogs
}
