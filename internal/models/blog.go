// Package models defines the records exchanged with the blog platform API.
// The backend owns their persistence; local copies live only inside whichever
// fetcher retrieved them.
package models

import (
	"net/url"
	"strconv"
	"time"
)

// BlogStatus is the publication state of a post.
type BlogStatus string

const (
	StatusDraft     BlogStatus = "draft"
	StatusPublished BlogStatus = "published"
)

// Blog is a single post as returned by the API.
type Blog struct {
	ID            string      `json:"_id"`
	Title         string      `json:"title"`
	Slug          string      `json:"slug"`
	Excerpt       string      `json:"excerpt"`
	Content       string      `json:"content"`
	Category      *Category   `json:"category,omitempty"`
	Tags          []Tag       `json:"tags,omitempty"`
	Images        []BlogImage `json:"images,omitempty"`
	Status        BlogStatus  `json:"status"`
	Featured      bool        `json:"featured"`
	Views         int         `json:"views"`
	LikesCount    int         `json:"likesCount"`
	CommentsCount int         `json:"commentsCount"`
	Author        *User       `json:"author,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// BlogImage is a server-side image attachment of a post.
type BlogImage struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
	Caption string `json:"caption,omitempty"`
}

// Category groups posts. PostCount is denormalized by the server.
type Category struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	PostCount int    `json:"postCount"`
}

// Tag labels posts. PostCount is denormalized by the server.
type Tag struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	PostCount int    `json:"postCount"`
}

// ListParams are the filters accepted by the blog listing endpoints.
// Zero values mean "unset"; Query applies the server defaults.
type ListParams struct {
	Page      int
	Limit     int
	Category  string
	Search    string
	SortBy    string
	SortOrder string
}

// Merge returns p with the non-zero fields of override applied on top.
func (p ListParams) Merge(override ListParams) ListParams {
	if override.Page != 0 {
		p.Page = override.Page
	}
	if override.Limit != 0 {
		p.Limit = override.Limit
	}
	if override.Category != "" {
		p.Category = override.Category
	}
	if override.Search != "" {
		p.Search = override.Search
	}
	if override.SortBy != "" {
		p.SortBy = override.SortBy
	}
	if override.SortOrder != "" {
		p.SortOrder = override.SortOrder
	}
	return p
}

// Query encodes p as URL query parameters, filling in the defaults the
// original client sent: page 1, limit 10, newest first.
func (p ListParams) Query() url.Values {
	q := url.Values{}
	page, limit := p.Page, p.Limit
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	sortBy, sortOrder := p.SortBy, p.SortOrder
	if sortBy == "" {
		sortBy = "createdAt"
	}
	if sortOrder == "" {
		sortOrder = "desc"
	}
	q.Set("sortBy", sortBy)
	q.Set("sortOrder", sortOrder)
	return q
}
