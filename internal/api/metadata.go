package api

import (
	"context"

	"blogctl/internal/models"
)

// Categories fetches every category with its denormalized post count.
func (c *Client) Categories(ctx context.Context) Result[[]models.Category] {
	var env struct {
		Success bool              `json:"success"`
		Data    []models.Category `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/categories", nil, &env); err != nil {
		return fail[[]models.Category](err, "Failed to fetch categories")
	}
	if !env.Success {
		return failMsg[[]models.Category]("Failed to fetch categories")
	}
	return ok(env.Data)
}

// Tags fetches every tag with its denormalized post count.
func (c *Client) Tags(ctx context.Context) Result[[]models.Tag] {
	var env struct {
		Success bool         `json:"success"`
		Data    []models.Tag `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/tags", nil, &env); err != nil {
		return fail[[]models.Tag](err, "Failed to fetch tags")
	}
	if !env.Success {
		return failMsg[[]models.Tag]("Failed to fetch tags")
	}
	return ok(env.Data)
}
