package api

import (
	"context"
	"net/url"
	"time"

	"blogctl/internal/models"
)

// AnalyticsSummary is the site-wide counters block of the dashboard.
type AnalyticsSummary struct {
	TotalPosts    int `json:"totalPosts"`
	TotalViews    int `json:"totalViews"`
	TotalLikes    int `json:"totalLikes"`
	TotalComments int `json:"totalComments"`
}

// TrafficPoint is one day of traffic on the dashboard chart.
type TrafficPoint struct {
	Date     string `json:"date"`
	Views    int    `json:"views"`
	Visitors int    `json:"visitors"`
}

// SiteSettings is the editable site configuration blob.
type SiteSettings struct {
	SiteName        string `json:"siteName"`
	SiteDescription string `json:"siteDescription"`
	CommentsEnabled bool   `json:"commentsEnabled"`
}

// Activity is one entry of the recent-activity feed.
type Activity struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlogStats are the per-post counters shown to authors.
type BlogStats struct {
	Views    int `json:"views"`
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
}

func adminGet[T any](c *Client, ctx context.Context, path, fallback string) Result[T] {
	var env struct {
		Success bool `json:"success"`
		Data    T    `json:"data"`
	}
	if err := c.getJSON(ctx, path, nil, &env); err != nil {
		return fail[T](err, fallback)
	}
	if !env.Success {
		return failMsg[T](fallback)
	}
	return ok(env.Data)
}

// Analytics fetches the site-wide dashboard counters.
func (c *Client) Analytics(ctx context.Context) Result[AnalyticsSummary] {
	return adminGet[AnalyticsSummary](c, ctx, "/api/analytics", "Failed to fetch analytics")
}

// TrafficData fetches the dashboard traffic series.
func (c *Client) TrafficData(ctx context.Context) Result[[]TrafficPoint] {
	return adminGet[[]TrafficPoint](c, ctx, "/api/analytics/traffic", "Failed to fetch traffic data")
}

// Users lists registered users for the admin screen.
func (c *Client) Users(ctx context.Context) Result[[]models.User] {
	return adminGet[[]models.User](c, ctx, "/api/users", "Failed to fetch users")
}

// Settings fetches the site configuration.
func (c *Client) Settings(ctx context.Context) Result[SiteSettings] {
	return adminGet[SiteSettings](c, ctx, "/api/settings", "Failed to fetch settings")
}

// RecentActivity fetches the latest dashboard activity entries.
func (c *Client) RecentActivity(ctx context.Context) Result[[]Activity] {
	return adminGet[[]Activity](c, ctx, "/api/activities", "Failed to fetch recent activities")
}

// BlogAnalytics fetches per-post counters.
func (c *Client) BlogAnalytics(ctx context.Context, blogID string) Result[BlogStats] {
	return adminGet[BlogStats](c, ctx, "/api/blogs/"+url.PathEscape(blogID)+"/analytics", "Failed to fetch analytics")
}
