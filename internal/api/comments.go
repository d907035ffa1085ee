package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"blogctl/internal/models"
)

type commentListEnvelope struct {
	Success bool             `json:"success"`
	Data    []models.Comment `json:"data"`
}

type commentEnvelope struct {
	Success bool            `json:"success"`
	Data    *models.Comment `json:"data"`
}

// Comments fetches one page of a post's comments. Zero page/limit take the
// server defaults (1 and 10).
func (c *Client) Comments(ctx context.Context, blogID string, page, limit int) Result[[]models.Comment] {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var env commentListEnvelope
	if err := c.getJSON(ctx, "/api/blogs/"+url.PathEscape(blogID)+"/comments", q, &env); err != nil {
		return fail[[]models.Comment](err, "Failed to fetch comments")
	}
	if !env.Success {
		return failMsg[[]models.Comment]("Failed to fetch comments")
	}
	comments := env.Data
	if comments == nil {
		comments = []models.Comment{}
	}
	return ok(comments)
}

// AddComment posts a new comment and returns the server's copy.
func (c *Client) AddComment(ctx context.Context, blogID, content string) Result[models.Comment] {
	payload := map[string]string{"content": content}
	var env commentEnvelope
	if err := c.sendJSON(ctx, http.MethodPost, "/api/blogs/"+url.PathEscape(blogID)+"/comments", payload, &env); err != nil {
		return fail[models.Comment](err, "Failed to add comment")
	}
	if !env.Success || env.Data == nil {
		return failMsg[models.Comment]("Failed to add comment")
	}
	return ok(*env.Data)
}

// UpdateComment edits an existing comment.
func (c *Client) UpdateComment(ctx context.Context, blogID, commentID, content string) Result[models.Comment] {
	payload := map[string]string{"content": content}
	path := "/api/blogs/" + url.PathEscape(blogID) + "/comments/" + url.PathEscape(commentID)
	var env commentEnvelope
	if err := c.sendJSON(ctx, http.MethodPut, path, payload, &env); err != nil {
		return fail[models.Comment](err, "Failed to update comment")
	}
	if !env.Success || env.Data == nil {
		return failMsg[models.Comment]("Failed to update comment")
	}
	return ok(*env.Data)
}

// DeleteComment removes a comment.
func (c *Client) DeleteComment(ctx context.Context, blogID, commentID string) Result[None] {
	path := "/api/blogs/" + url.PathEscape(blogID) + "/comments/" + url.PathEscape(commentID)
	if err := c.sendJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fail[None](err, "Failed to delete comment")
	}
	return ok(None{})
}
