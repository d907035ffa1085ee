package cli

import (
	"context"
	"errors"
	"fmt"

	"blogctl/internal/fetch"
	"blogctl/internal/models"
)

func defaultListParams() models.ListParams {
	return models.ListParams{Page: 1, Limit: 9}
}

// List shows the first page of the listing, re-fetching with the persisted
// filters.
func (a *App) List(ctx context.Context) error {
	a.list.Refetch(ctx, models.ListParams{Page: 1})
	fmt.Fprintln(a.out, renderBlogList(a.list.Snapshot()))
	return nil
}

// More appends the next page to the listing. The fetcher refuses when a
// fetch is running or the last page is already shown.
func (a *App) More(ctx context.Context) error {
	if !a.list.LoadMore(ctx) {
		fmt.Fprintln(a.out, faintStyle.Render("Nothing more to load."))
		return nil
	}
	fmt.Fprintln(a.out, renderBlogList(a.list.Snapshot()))
	return nil
}

// Filter narrows the listing to a category and/or sort order.
func (a *App) Filter(ctx context.Context) error {
	category, err := getSimpleText(a.reader, "Category slug (empty for all)", a.out)
	if err != nil {
		return err
	}
	sortBy, err := getSimpleText(a.reader, "Sort by (createdAt, likesCount, views; empty keeps current)", a.out)
	if err != nil {
		return err
	}

	a.list.Refetch(ctx, models.ListParams{Page: 1, Category: category, SortBy: sortBy})
	fmt.Fprintln(a.out, renderBlogList(a.list.Snapshot()))
	return nil
}

// Read fetches one post by its public slug and renders it with its
// comments.
func (a *App) Read(ctx context.Context) error {
	slug, err := getSimpleText(a.reader, "Enter post slug", a.out)
	if err != nil {
		return err
	}
	return a.ReadSlug(ctx, slug)
}

// ReadSlug renders the post behind slug. Shared by the interactive "read"
// command and the one-shot subcommand.
func (a *App) ReadSlug(ctx context.Context, slug string) error {
	detail := fetch.NewBlogDetail(a.client, a.log, slug, fetch.BySlug)
	detail.Fetch(ctx)
	snap := detail.Snapshot()
	if snap.Error != "" {
		fmt.Fprintln(a.out, errorStyle.Render(snap.Error))
		return errors.New(snap.Error)
	}
	if snap.Blog == nil {
		fmt.Fprintln(a.out, faintStyle.Render("Nothing to show."))
		return nil
	}
	fmt.Fprintln(a.out, renderBlog(*snap.Blog))

	thread := fetch.NewCommentThread(a.client, a.log, snap.Blog.ID)
	thread.Fetch(ctx)
	fmt.Fprintln(a.out, renderComments(thread.Snapshot()))

	// Related posts are decoration; failures only get logged.
	if related := a.client.RelatedBlogs(ctx, snap.Blog.ID, 0); related.Success && len(related.Data) > 0 {
		fmt.Fprintln(a.out, headerStyle.Render("Related"))
		for _, b := range related.Data {
			fmt.Fprintln(a.out, renderBlogRow(b))
		}
	} else if !related.Success {
		a.log.Warn(ctx, "related blogs unavailable", "error", related.Error)
	}
	return nil
}

// Author lists the posts of one author.
func (a *App) Author(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter author id", a.out)
	if err != nil {
		return err
	}
	res := a.client.BlogsByAuthor(ctx, id, models.ListParams{})
	if !res.Success {
		fmt.Fprintln(a.out, errorStyle.Render(res.Error))
		return errors.New(res.Error)
	}
	if len(res.Data.Blogs) == 0 {
		fmt.Fprintln(a.out, faintStyle.Render("No posts."))
		return nil
	}
	for _, b := range res.Data.Blogs {
		fmt.Fprintln(a.out, renderBlogRow(b))
	}
	return nil
}

// Search prompts for a query and runs it immediately. Whitespace input
// yields an empty result without calling the backend.
func (a *App) Search(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Search for", a.out)
	if err != nil {
		return err
	}
	return a.SearchQuery(ctx, query)
}

// SearchQuery runs a single search without prompting.
func (a *App) SearchQuery(ctx context.Context, query string) error {
	res := a.searcher.Search(ctx, query)
	if !res.Success {
		fmt.Fprintln(a.out, errorStyle.Render(res.Error))
		return errors.New(res.Error)
	}
	if len(res.Data) == 0 {
		fmt.Fprintln(a.out, faintStyle.Render("No matches."))
		return nil
	}
	for _, b := range res.Data {
		fmt.Fprintln(a.out, renderBlogRow(b))
	}
	return nil
}

// Featured shows the posts the backend marks as featured.
func (a *App) Featured(ctx context.Context) error {
	res := a.client.FeaturedBlogs(ctx)
	if !res.Success {
		fmt.Fprintln(a.out, errorStyle.Render(res.Error))
		return errors.New(res.Error)
	}
	for _, b := range res.Data {
		fmt.Fprintln(a.out, renderBlogRow(b))
	}
	return nil
}

// Trending shows what is hot this week.
func (a *App) Trending(ctx context.Context) error {
	res := a.client.TrendingBlogs(ctx, 0, "")
	if !res.Success {
		fmt.Fprintln(a.out, errorStyle.Render(res.Error))
		return errors.New(res.Error)
	}
	for _, b := range res.Data {
		fmt.Fprintln(a.out, renderBlogRow(b))
	}
	return nil
}

// Like toggles the caller's like on a post.
func (a *App) Like(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter post id", a.out)
	if err != nil {
		return err
	}
	res := a.client.ToggleLike(ctx, id)
	if !res.Success {
		fmt.Fprintln(a.out, errorStyle.Render(res.Error))
		return errors.New(res.Error)
	}
	if res.Data.Liked {
		fmt.Fprintf(a.out, "Liked. %d likes now.\n", res.Data.LikesCount)
	} else {
		fmt.Fprintf(a.out, "Unliked. %d likes now.\n", res.Data.LikesCount)
	}
	return nil
}

// Comment adds a comment to a post.
func (a *App) Comment(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter post id", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Your comment:", a.out)
	if err != nil {
		return err
	}

	thread := fetch.NewCommentThread(a.client, a.log, id)
	res := thread.Add(ctx, content)
	if !res.Success {
		fmt.Fprintln(a.out, errorStyle.Render(res.Error))
		return errors.New(res.Error)
	}
	fmt.Fprintln(a.out, "Comment added.")
	return nil
}
