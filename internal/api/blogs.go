package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"blogctl/internal/models"
)

// BlogPage is one page of a blog listing together with its pagination
// bookkeeping.
type BlogPage struct {
	Blogs      []models.Blog
	Page       int
	TotalPages int
	Total      int
}

// HasMore reports whether pages beyond this one exist.
func (p BlogPage) HasMore() bool {
	return p.Page < p.TotalPages
}

// pageMeta is the pagination block of list responses.
type pageMeta struct {
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	Total      int `json:"total"`
}

// listEnvelope is the wire shape of every paginated blog listing.
type listEnvelope struct {
	Success    bool          `json:"success"`
	Data       []models.Blog `json:"data"`
	Pagination pageMeta      `json:"pagination"`
}

// detailEnvelope is the wire shape of single-blog responses.
type detailEnvelope struct {
	Success bool         `json:"success"`
	Data    *models.Blog `json:"data"`
}

var errBadEnvelope = errors.New("unexpected response shape")

func (e listEnvelope) page() (BlogPage, error) {
	if !e.Success {
		return BlogPage{}, errBadEnvelope
	}
	blogs := e.Data
	if blogs == nil {
		blogs = []models.Blog{}
	}
	return BlogPage{
		Blogs:      blogs,
		Page:       e.Pagination.Page,
		TotalPages: e.Pagination.TotalPages,
		Total:      e.Pagination.Total,
	}, nil
}

func (e detailEnvelope) blog() (models.Blog, error) {
	if !e.Success || e.Data == nil {
		return models.Blog{}, errBadEnvelope
	}
	return *e.Data, nil
}

// BlogPayload is the body of create and update requests.
type BlogPayload struct {
	Title    string             `json:"title"`
	Slug     string             `json:"slug,omitempty"`
	Excerpt  string             `json:"excerpt"`
	Content  string             `json:"content"`
	Category string             `json:"category,omitempty"`
	Tags     []string           `json:"tags,omitempty"`
	Images   []models.BlogImage `json:"images,omitempty"`
	Status   models.BlogStatus  `json:"status"`
	Featured bool               `json:"featured"`
}

// ListBlogs fetches one page of posts filtered and sorted by params.
func (c *Client) ListBlogs(ctx context.Context, params models.ListParams) Result[BlogPage] {
	var env listEnvelope
	if err := c.getJSON(ctx, "/api/blogs", params.Query(), &env); err != nil {
		return fail[BlogPage](err, "Failed to fetch blogs")
	}
	page, err := env.page()
	if err != nil {
		return fail[BlogPage](err, "Failed to fetch blogs")
	}
	return ok(page)
}

// FeaturedBlogs fetches the posts the backend marks as featured.
func (c *Client) FeaturedBlogs(ctx context.Context) Result[[]models.Blog] {
	var env listEnvelope
	if err := c.getJSON(ctx, "/api/blogs/featured", nil, &env); err != nil {
		return fail[[]models.Blog](err, "Failed to fetch featured blogs")
	}
	if !env.Success {
		return failMsg[[]models.Blog]("Failed to fetch featured blogs")
	}
	return ok(env.Data)
}

// TrendingBlogs fetches the currently trending posts. A zero limit defaults
// to 5, an empty period to "7d".
func (c *Client) TrendingBlogs(ctx context.Context, limit int, period string) Result[[]models.Blog] {
	if limit == 0 {
		limit = 5
	}
	if period == "" {
		period = "7d"
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("period", period)

	var env listEnvelope
	if err := c.getJSON(ctx, "/api/blogs/trending", q, &env); err != nil {
		return fail[[]models.Blog](err, "Failed to fetch trending blogs")
	}
	if !env.Success {
		return failMsg[[]models.Blog]("Failed to fetch trending blogs")
	}
	return ok(env.Data)
}

// SearchBlogs runs a full-text search. Relevance ranking is the backend's
// business; results arrive as a regular listing page.
func (c *Client) SearchBlogs(ctx context.Context, query string, params models.ListParams) Result[BlogPage] {
	q := params.Query()
	q.Set("q", query)

	var env listEnvelope
	if err := c.getJSON(ctx, "/api/blogs/search", q, &env); err != nil {
		return fail[BlogPage](err, "Failed to search blogs")
	}
	page, err := env.page()
	if err != nil {
		return fail[BlogPage](err, "Failed to search blogs")
	}
	return ok(page)
}

// BlogsByAuthor fetches one page of a single author's posts.
func (c *Client) BlogsByAuthor(ctx context.Context, authorID string, params models.ListParams) Result[BlogPage] {
	var env listEnvelope
	if err := c.getJSON(ctx, "/api/blogs/author/"+url.PathEscape(authorID), params.Query(), &env); err != nil {
		return fail[BlogPage](err, "Failed to fetch author blogs")
	}
	page, err := env.page()
	if err != nil {
		return fail[BlogPage](err, "Failed to fetch author blogs")
	}
	return ok(page)
}

// RelatedBlogs fetches posts the backend considers related to blogID.
func (c *Client) RelatedBlogs(ctx context.Context, blogID string, limit int) Result[[]models.Blog] {
	if limit == 0 {
		limit = 5
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var env listEnvelope
	if err := c.getJSON(ctx, "/api/blogs/"+url.PathEscape(blogID)+"/related", q, &env); err != nil {
		return fail[[]models.Blog](err, "Failed to fetch related blogs")
	}
	if !env.Success {
		return failMsg[[]models.Blog]("Failed to fetch related blogs")
	}
	return ok(env.Data)
}

// BlogByID fetches a post through the admin detail endpoint.
func (c *Client) BlogByID(ctx context.Context, id string) Result[models.Blog] {
	var env detailEnvelope
	if err := c.getJSON(ctx, "/api/blogs/admin/"+url.PathEscape(id), nil, &env); err != nil {
		return fail[models.Blog](err, "Failed to fetch blog")
	}
	blog, err := env.blog()
	if err != nil {
		return fail[models.Blog](err, "Failed to fetch blog")
	}
	return ok(blog)
}

// BlogBySlug fetches a published post by its public slug.
func (c *Client) BlogBySlug(ctx context.Context, slug string) Result[models.Blog] {
	var env detailEnvelope
	if err := c.getJSON(ctx, "/api/blogs/"+url.PathEscape(slug), nil, &env); err != nil {
		return fail[models.Blog](err, "Failed to fetch blog")
	}
	blog, err := env.blog()
	if err != nil {
		return fail[models.Blog](err, "Failed to fetch blog")
	}
	return ok(blog)
}

// CreateBlog creates a post and returns the server's copy.
func (c *Client) CreateBlog(ctx context.Context, payload BlogPayload) Result[models.Blog] {
	var env detailEnvelope
	if err := c.sendJSON(ctx, http.MethodPost, "/api/blogs", payload, &env); err != nil {
		return fail[models.Blog](err, "Failed to create blog")
	}
	blog, err := env.blog()
	if err != nil {
		return fail[models.Blog](err, "Failed to create blog")
	}
	return ok(blog)
}

// UpdateBlog replaces a post's fields and returns the updated copy.
func (c *Client) UpdateBlog(ctx context.Context, id string, payload BlogPayload) Result[models.Blog] {
	var env detailEnvelope
	if err := c.sendJSON(ctx, http.MethodPut, "/api/blogs/"+url.PathEscape(id), payload, &env); err != nil {
		return fail[models.Blog](err, "Failed to update blog")
	}
	blog, err := env.blog()
	if err != nil {
		return fail[models.Blog](err, "Failed to update blog")
	}
	return ok(blog)
}

// DeleteBlog removes a post.
func (c *Client) DeleteBlog(ctx context.Context, id string) Result[None] {
	if err := c.sendJSON(ctx, http.MethodDelete, "/api/blogs/"+url.PathEscape(id), nil, nil); err != nil {
		return fail[None](err, "Failed to delete blog")
	}
	return ok(None{})
}

// LikeState is the outcome of a like toggle.
type LikeState struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likesCount"`
}

// ToggleLike flips the caller's like on a post.
func (c *Client) ToggleLike(ctx context.Context, blogID string) Result[LikeState] {
	var env struct {
		Success bool      `json:"success"`
		Data    LikeState `json:"data"`
	}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/blogs/"+url.PathEscape(blogID)+"/like", nil, &env); err != nil {
		return fail[LikeState](err, "Failed to toggle like")
	}
	if !env.Success {
		return failMsg[LikeState]("Failed to toggle like")
	}
	return ok(env.Data)
}
