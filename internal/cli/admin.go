package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"blogctl/internal/fetch"
	"blogctl/internal/forms"
	"blogctl/internal/models"
)

// NewPost walks through the create form: fields, optional images, client
// validation, upload, create. Validation failures abort before anything
// touches the network.
func (a *App) NewPost(ctx context.Context) error {
	form := forms.NewBlogForm()

	var err error
	if form.Title, err = getSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if form.Excerpt, err = getSimpleText(a.reader, "Excerpt (optional)", a.out); err != nil {
		return err
	}
	if form.Content, err = GetMultiline(a.reader, "Content (markdown):", a.out); err != nil {
		return err
	}
	if err := a.promptTaxonomy(ctx, form); err != nil {
		return err
	}

	status, err := getSimpleText(a.reader, "Status (draft/published)", a.out)
	if err != nil {
		return err
	}
	if status != "" {
		form.Status = models.BlogStatus(status)
	}
	form.Featured, err = GetConfirm(a.reader, "Feature this post?", a.out)
	if err != nil {
		return err
	}

	if err := a.stageImages(form); err != nil {
		return err
	}

	if err := form.Validate(); err != nil {
		fmt.Fprintln(a.out, errorStyle.Render(err.Error()))
		return err
	}

	if err := a.uploadPending(ctx, form); err != nil {
		return err
	}

	mut := fetch.NewMutator(a.client, a.log)
	res := mut.Create(ctx, form.Payload())
	if !res.Success {
		fmt.Fprintln(a.out, errorStyle.Render("Create failed: "+res.Error))
		return errors.New(res.Error)
	}
	fmt.Fprintf(a.out, "Created %q (%s)\n", res.Data.Title, res.Data.Slug)
	return nil
}

// EditPost loads a post by id, offers every field with its current value
// and submits the update.
func (a *App) EditPost(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter post id", a.out)
	if err != nil {
		return err
	}

	detail := fetch.NewBlogDetail(a.client, a.log, id, fetch.ByID)
	detail.Fetch(ctx)
	snap := detail.Snapshot()
	if snap.Error != "" {
		fmt.Fprintln(a.out, errorStyle.Render(snap.Error))
		return errors.New(snap.Error)
	}
	if snap.Blog == nil {
		return nil
	}

	form := forms.FromBlog(*snap.Blog)
	if form.Title, err = GetOptionalText(a.reader, "Title", form.Title, a.out); err != nil {
		return err
	}
	if form.Excerpt, err = GetOptionalText(a.reader, "Excerpt", form.Excerpt, a.out); err != nil {
		return err
	}
	status, err := GetOptionalText(a.reader, "Status", string(form.Status), a.out)
	if err != nil {
		return err
	}
	form.Status = models.BlogStatus(status)

	replace, err := GetConfirm(a.reader, "Replace content?", a.out)
	if err != nil {
		return err
	}
	if replace {
		if form.Content, err = GetMultiline(a.reader, "Content (markdown):", a.out); err != nil {
			return err
		}
	}

	if err := a.stageImages(form); err != nil {
		return err
	}
	if err := form.Validate(); err != nil {
		fmt.Fprintln(a.out, errorStyle.Render(err.Error()))
		return err
	}
	if err := a.uploadPending(ctx, form); err != nil {
		return err
	}

	mut := fetch.NewMutator(a.client, a.log)
	res := mut.Update(ctx, id, form.Payload())
	if !res.Success {
		fmt.Fprintln(a.out, errorStyle.Render("Update failed: "+res.Error))
		return errors.New(res.Error)
	}
	fmt.Fprintf(a.out, "Updated %q\n", res.Data.Title)
	return nil
}

// DeletePost removes a post after an explicit confirmation.
func (a *App) DeletePost(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter post id", a.out)
	if err != nil {
		return err
	}
	confirmed, err := GetConfirm(a.reader, "Really delete "+id+"?", a.out)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(a.out, "Kept.")
		return nil
	}

	mut := fetch.NewMutator(a.client, a.log)
	res := mut.Delete(ctx, id)
	if !res.Success {
		fmt.Fprintln(a.out, errorStyle.Render("Delete failed: "+res.Error))
		return errors.New(res.Error)
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}

// Meta lists categories and tags. One side failing still shows the other.
func (a *App) Meta(ctx context.Context) error {
	meta := fetch.NewMetadata(a.client, a.log)
	meta.Fetch(ctx)
	snap := meta.Snapshot()
	if snap.Error != "" {
		fmt.Fprintln(a.out, errorStyle.Render(snap.Error))
		return errors.New(snap.Error)
	}

	fmt.Fprintln(a.out, headerStyle.Render("Categories"))
	for _, c := range snap.Categories {
		fmt.Fprintf(a.out, "  %s (%s) · %d posts\n", c.Name, c.Slug, c.PostCount)
	}
	fmt.Fprintln(a.out, headerStyle.Render("Tags"))
	for _, tag := range snap.Tags {
		fmt.Fprintf(a.out, "  %s (%s) · %d posts\n", tag.Name, tag.Slug, tag.PostCount)
	}
	return nil
}

// Dashboard shows the admin analytics screens. Each block that fails is
// reported inline; the rest still renders.
func (a *App) Dashboard(ctx context.Context) error {
	summary := a.client.Analytics(ctx)
	if !summary.Success {
		fmt.Fprintln(a.out, errorStyle.Render(summary.Error))
		return errors.New(summary.Error)
	}

	traffic := a.client.TrafficData(ctx)
	if !traffic.Success {
		fmt.Fprintln(a.out, errorStyle.Render(traffic.Error))
	}
	activities := a.client.RecentActivity(ctx)
	if !activities.Success {
		fmt.Fprintln(a.out, errorStyle.Render(activities.Error))
	}

	fmt.Fprintln(a.out, renderDashboard(summary.Data, traffic.Data, activities.Data))

	users := a.client.Users(ctx)
	if users.Success && len(users.Data) > 0 {
		fmt.Fprintln(a.out, headerStyle.Render("Users"))
		for _, u := range users.Data {
			fmt.Fprintf(a.out, "  %s <%s> %s\n", u.Name, u.Email, faintStyle.Render(u.Role))
		}
	}
	return nil
}

// Settings shows the current site configuration.
func (a *App) Settings(ctx context.Context) error {
	res := a.client.Settings(ctx)
	if !res.Success {
		fmt.Fprintln(a.out, errorStyle.Render(res.Error))
		return errors.New(res.Error)
	}

	fmt.Fprintln(a.out, headerStyle.Render(res.Data.SiteName))
	fmt.Fprintln(a.out, res.Data.SiteDescription)
	if res.Data.CommentsEnabled {
		fmt.Fprintln(a.out, faintStyle.Render("comments enabled"))
	} else {
		fmt.Fprintln(a.out, faintStyle.Render("comments disabled"))
	}
	return nil
}

// Stats shows the per-post counters for one post.
func (a *App) Stats(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter post id", a.out)
	if err != nil {
		return err
	}
	res := a.client.BlogAnalytics(ctx, id)
	if !res.Success {
		fmt.Fprintln(a.out, errorStyle.Render(res.Error))
		return errors.New(res.Error)
	}
	fmt.Fprintf(a.out, "views %d · likes %d · comments %d\n",
		res.Data.Views, res.Data.Likes, res.Data.Comments)
	return nil
}

// promptTaxonomy fetches categories and tags and lets the user pick.
func (a *App) promptTaxonomy(ctx context.Context, form *forms.BlogForm) error {
	meta := fetch.NewMetadata(a.client, a.log)
	meta.Fetch(ctx)
	snap := meta.Snapshot()

	if len(snap.Categories) > 0 {
		fmt.Fprintln(a.out, faintStyle.Render("Known categories:"))
		for _, c := range snap.Categories {
			fmt.Fprintf(a.out, "  %s  %s\n", c.ID, c.Name)
		}
	}
	category, err := getSimpleText(a.reader, "Category id (optional)", a.out)
	if err != nil {
		return err
	}
	form.Category = category

	tags, err := getSimpleText(a.reader, "Tag ids, comma separated (optional)", a.out)
	if err != nil {
		return err
	}
	for _, tag := range strings.Split(tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			form.Tags = append(form.Tags, tag)
		}
	}
	return nil
}

// stageImages prompts for local file paths until an empty line.
func (a *App) stageImages(form *forms.BlogForm) error {
	for {
		path, err := getSimpleText(a.reader, "Image file path (empty to finish)", a.out)
		if err != nil {
			return err
		}
		if path == "" {
			return nil
		}
		alt, err := getSimpleText(a.reader, "Alt text", a.out)
		if err != nil {
			return err
		}
		caption, err := getSimpleText(a.reader, "Caption (optional)", a.out)
		if err != nil {
			return err
		}
		if _, err := form.StageImage(path, alt, caption); err != nil {
			fmt.Fprintln(a.out, errorStyle.Render(err.Error()))
		}
	}
}

// uploadPending pushes staged files and promotes them onto the form.
func (a *App) uploadPending(ctx context.Context, form *forms.BlogForm) error {
	if len(form.Pending) == 0 {
		return nil
	}

	mut := fetch.NewMutator(a.client, a.log)
	res := mut.UploadImages(ctx, form.Pending)
	if !res.Success {
		fmt.Fprintln(a.out, errorStyle.Render("Upload failed: "+res.Error))
		return errors.New(res.Error)
	}
	form.PromoteUploaded(res.Data)
	fmt.Fprintf(a.out, "Uploaded %d image(s).\n", len(res.Data))
	return nil
}
