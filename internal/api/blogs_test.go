package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogctl/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBlogs_DecodesPageAndForwardsParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/blogs", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "9", q.Get("limit"))
		assert.Equal(t, "likesCount", q.Get("sortBy"))
		assert.Equal(t, "desc", q.Get("sortOrder"))

		resp := map[string]any{
			"success": true,
			"data": []map[string]any{
				{"_id": "1", "title": "First", "slug": "first"},
				{"_id": "2", "title": "Second", "slug": "second"},
			},
			"pagination": map[string]int{"page": 2, "totalPages": 3, "total": 20},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := New(srv.URL, &memStore{})
	res := c.ListBlogs(context.Background(), models.ListParams{Page: 2, Limit: 9, SortBy: "likesCount", SortOrder: "desc"})

	require.True(t, res.Success, res.Error)
	assert.Len(t, res.Data.Blogs, 2)
	assert.Equal(t, 2, res.Data.Page)
	assert.Equal(t, 3, res.Data.TotalPages)
	assert.Equal(t, 20, res.Data.Total)
	assert.True(t, res.Data.HasMore())
}

func TestListBlogs_UnexpectedShapeFailsLoudly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 200 with success:false is a shape the client refuses to guess at.
		w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	res := New(srv.URL, &memStore{}).ListBlogs(context.Background(), models.ListParams{})
	assert.False(t, res.Success)
	assert.Equal(t, "Failed to fetch blogs", res.Error)
}

func TestBlogBySlug_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Blog not found"}`))
	}))
	defer srv.Close()

	res := New(srv.URL, &memStore{}).BlogBySlug(context.Background(), "missing-post")
	assert.False(t, res.Success)
	assert.Equal(t, "Blog not found", res.Error)
}

func TestBlogByID_UsesAdminPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/blogs/admin/abc123", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"_id":"abc123","title":"Hello","status":"draft"}}`))
	}))
	defer srv.Close()

	res := New(srv.URL, &memStore{}).BlogByID(context.Background(), "abc123")
	require.True(t, res.Success, res.Error)
	assert.Equal(t, "Hello", res.Data.Title)
	assert.Equal(t, models.StatusDraft, res.Data.Status)
}

func TestCreateBlog_SendsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var p BlogPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		assert.Equal(t, "Go Generics", p.Title)
		assert.Equal(t, models.StatusPublished, p.Status)

		w.Write([]byte(`{"success":true,"data":{"_id":"n1","title":"Go Generics","slug":"go-generics","status":"published"}}`))
	}))
	defer srv.Close()

	res := New(srv.URL, &memStore{}).CreateBlog(context.Background(), BlogPayload{
		Title:   "Go Generics",
		Content: "A long look at type parameters.",
		Status:  models.StatusPublished,
	})
	require.True(t, res.Success, res.Error)
	assert.Equal(t, "go-generics", res.Data.Slug)
}

func TestDeleteBlog_And_ToggleLike(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodDelete:
			require.Equal(t, "/api/blogs/b7", r.URL.Path)
			w.Write([]byte(`{"success":true}`))
		case r.Method == http.MethodPost:
			require.Equal(t, "/api/blogs/b7/like", r.URL.Path)
			w.Write([]byte(`{"success":true,"data":{"liked":true,"likesCount":4}}`))
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, &memStore{})

	del := c.DeleteBlog(context.Background(), "b7")
	assert.True(t, del.Success, del.Error)

	like := c.ToggleLike(context.Background(), "b7")
	require.True(t, like.Success, like.Error)
	assert.True(t, like.Data.Liked)
	assert.Equal(t, 4, like.Data.LikesCount)
}

func TestTrendingBlogs_Defaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "5", q.Get("limit"))
		assert.Equal(t, "7d", q.Get("period"))
		fmt.Fprint(w, `{"success":true,"data":[{"_id":"t1","title":"Hot"}]}`)
	}))
	defer srv.Close()

	res := New(srv.URL, &memStore{}).TrendingBlogs(context.Background(), 0, "")
	require.True(t, res.Success, res.Error)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Hot", res.Data[0].Title)
}

func TestBlogsByAuthor_ForwardsAuthorPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/blogs/author/u42", r.URL.Path)
		fmt.Fprint(w, `{"success":true,"data":[{"_id":"1","title":"Mine"}],"pagination":{"page":1,"totalPages":1,"total":1}}`)
	}))
	defer srv.Close()

	res := New(srv.URL, &memStore{}).BlogsByAuthor(context.Background(), "u42", models.ListParams{})
	require.True(t, res.Success, res.Error)
	require.Len(t, res.Data.Blogs, 1)
	assert.Equal(t, "Mine", res.Data.Blogs[0].Title)
}

func TestRelatedBlogs_DefaultLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/blogs/b1/related", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		fmt.Fprint(w, `{"success":true,"data":[{"_id":"2","title":"Also good"}]}`)
	}))
	defer srv.Close()

	res := New(srv.URL, &memStore{}).RelatedBlogs(context.Background(), "b1", 0)
	require.True(t, res.Success, res.Error)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Also good", res.Data[0].Title)
}
