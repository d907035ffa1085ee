package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"testing"
	"time"

	"blogctl/internal/api"
	"blogctl/internal/logging"
	"blogctl/internal/models"
	"blogctl/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.New(srv.URL, &session.MemStore{})
}

// fixtureBlogs builds n posts with descending creation order and spread-out
// like counts.
func fixtureBlogs(n int) []models.Blog {
	blogs := make([]models.Blog, n)
	for i := 0; i < n; i++ {
		blogs[i] = models.Blog{
			ID:         fmt.Sprintf("b%02d", i),
			Title:      fmt.Sprintf("Post %02d", i),
			Slug:       fmt.Sprintf("post-%02d", i),
			Status:     models.StatusPublished,
			LikesCount: (i * 7) % 19,
		}
	}
	return blogs
}

// blogListHandler serves /api/blogs with page/limit/sortBy handling over a
// fixed fixture, the way the real backend would.
func blogListHandler(fixture []models.Blog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		blogs := make([]models.Blog, len(fixture))
		copy(blogs, fixture)

		q := r.URL.Query()
		if q.Get("sortBy") == "likesCount" {
			sort.SliceStable(blogs, func(i, j int) bool {
				if q.Get("sortOrder") == "asc" {
					return blogs[i].LikesCount < blogs[j].LikesCount
				}
				return blogs[i].LikesCount > blogs[j].LikesCount
			})
		}

		page, _ := strconv.Atoi(q.Get("page"))
		limit, _ := strconv.Atoi(q.Get("limit"))
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 10
		}

		start := (page - 1) * limit
		end := start + limit
		if start > len(blogs) {
			start = len(blogs)
		}
		if end > len(blogs) {
			end = len(blogs)
		}

		totalPages := (len(blogs) + limit - 1) / limit
		json.NewEncoder(w).Encode(map[string]any{
			"success":    true,
			"data":       blogs[start:end],
			"pagination": map[string]int{"page": page, "totalPages": totalPages, "total": len(blogs)},
		})
	})
}

func TestBlogList_PageOneOfTwentySortedByLikes(t *testing.T) {
	client := newTestClient(t, blogListHandler(fixtureBlogs(20)))
	list := NewBlogList(client, logging.NewNop(), models.ListParams{Page: 1, Limit: 9, SortBy: "likesCount", SortOrder: "desc"})

	list.Refetch(context.Background(), models.ListParams{})
	snap := list.Snapshot()

	require.Empty(t, snap.Error)
	require.Len(t, snap.Blogs, 9)
	for i := 1; i < len(snap.Blogs); i++ {
		assert.GreaterOrEqual(t, snap.Blogs[i-1].LikesCount, snap.Blogs[i].LikesCount)
	}
	assert.Equal(t, 20, snap.Total)
	assert.True(t, snap.HasMore())
	assert.False(t, snap.Loading)
}

func TestBlogList_NeverExceedsLimit(t *testing.T) {
	client := newTestClient(t, blogListHandler(fixtureBlogs(20)))
	for _, limit := range []int{1, 3, 9, 50} {
		list := NewBlogList(client, logging.NewNop(), models.ListParams{Limit: limit})
		list.Refetch(context.Background(), models.ListParams{})
		assert.LessOrEqual(t, len(list.Snapshot().Blogs), limit)
	}
}

func TestBlogList_LoadMoreAppends(t *testing.T) {
	client := newTestClient(t, blogListHandler(fixtureBlogs(20)))
	list := NewBlogList(client, logging.NewNop(), models.ListParams{Limit: 9})
	ctx := context.Background()

	list.Refetch(ctx, models.ListParams{})
	require.Len(t, list.Snapshot().Blogs, 9)

	require.True(t, list.LoadMore(ctx))
	snap := list.Snapshot()
	assert.Len(t, snap.Blogs, 18)
	assert.Equal(t, 2, snap.Page)

	require.True(t, list.LoadMore(ctx))
	snap = list.Snapshot()
	assert.Len(t, snap.Blogs, 20)
	assert.False(t, snap.HasMore())

	// On the last page LoadMore is a no-op.
	assert.False(t, list.LoadMore(ctx))
	assert.Len(t, list.Snapshot().Blogs, 20)
}

func TestBlogList_LoadMoreNoOpWhileInFlight(t *testing.T) {
	fixture := fixtureBlogs(20)
	inner := blogListHandler(fixture)
	release := make(chan struct{})
	gate := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			<-release
		}
		inner.ServeHTTP(w, r)
	})

	client := newTestClient(t, gate)
	list := NewBlogList(client, logging.NewNop(), models.ListParams{Limit: 9})
	ctx := context.Background()

	list.Refetch(ctx, models.ListParams{})

	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		close(started)
		list.LoadMore(ctx)
		close(done)
	}()
	<-started
	// Wait until the first LoadMore is actually blocked inside the handler.
	require.Eventually(t, func() bool { return list.Snapshot().Loading }, time.Second, time.Millisecond)

	assert.False(t, list.LoadMore(ctx))

	close(release)
	<-done
	assert.Len(t, list.Snapshot().Blogs, 18)
}

func TestBlogList_RefetchErrorClearsItems(t *testing.T) {
	failing := false
	fixture := blogListHandler(fixtureBlogs(5))
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"database down"}`))
			return
		}
		fixture.ServeHTTP(w, r)
	})

	client := newTestClient(t, handler)
	list := NewBlogList(client, logging.NewNop(), models.ListParams{})
	ctx := context.Background()

	list.Refetch(ctx, models.ListParams{})
	require.Len(t, list.Snapshot().Blogs, 5)

	failing = true
	list.Refetch(ctx, models.ListParams{})
	snap := list.Snapshot()
	assert.Equal(t, "database down", snap.Error)
	assert.Empty(t, snap.Blogs)
	assert.False(t, snap.Loading)
}

func TestBlogList_RefetchPersistsMergedParams(t *testing.T) {
	var lastCategory string
	fixture := blogListHandler(fixtureBlogs(5))
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastCategory = r.URL.Query().Get("category")
		fixture.ServeHTTP(w, r)
	})

	client := newTestClient(t, handler)
	list := NewBlogList(client, logging.NewNop(), models.ListParams{Limit: 9})
	ctx := context.Background()

	list.Refetch(ctx, models.ListParams{Category: "go"})
	assert.Equal(t, "go", lastCategory)

	// The override sticks across later refetches.
	list.Refetch(ctx, models.ListParams{})
	assert.Equal(t, "go", lastCategory)
}
