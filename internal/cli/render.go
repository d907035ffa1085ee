package cli

import (
	"fmt"
	"strings"

	"blogctl/internal/api"
	"blogctl/internal/fetch"
	"blogctl/internal/models"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	badgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

// renderBlogRow is one line of a listing: title, slug and counters.
func renderBlogRow(b models.Blog) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(b.Title))
	if b.Featured {
		sb.WriteString(" " + badgeStyle.Render("★"))
	}
	if b.Status == models.StatusDraft {
		sb.WriteString(" " + faintStyle.Render("[draft]"))
	}
	sb.WriteString("\n  ")
	meta := fmt.Sprintf("%s · %d views · %d likes · %d comments", b.Slug, b.Views, b.LikesCount, b.CommentsCount)
	if b.Category != nil {
		meta += " · " + b.Category.Name
	}
	sb.WriteString(faintStyle.Render(meta))
	return sb.String()
}

// renderBlogList prints a listing snapshot with its pagination footer.
func renderBlogList(snap fetch.ListSnapshot) string {
	if snap.Error != "" {
		return errorStyle.Render(snap.Error) + "\n" + faintStyle.Render("(type the command again to retry)")
	}
	if len(snap.Blogs) == 0 {
		return faintStyle.Render("No posts.")
	}

	var sb strings.Builder
	for _, b := range snap.Blogs {
		sb.WriteString(renderBlogRow(b))
		sb.WriteString("\n")
	}
	footer := fmt.Sprintf("page %d/%d · %d posts total", snap.Page, snap.TotalPages, snap.Total)
	if snap.HasMore() {
		footer += " · type 'more' to load the next page"
	}
	sb.WriteString(faintStyle.Render(footer))
	return sb.String()
}

// renderBlog renders a full post, pushing the rich-text body through the
// markdown renderer. Rendering failures fall back to the raw content.
func renderBlog(b models.Blog) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(b.Title) + "\n")

	meta := fmt.Sprintf("%s · %d views · %d likes", b.CreatedAt.Format("2006-01-02"), b.Views, b.LikesCount)
	if b.Author != nil {
		meta = b.Author.Name + " · " + meta
	}
	sb.WriteString(faintStyle.Render(meta) + "\n")

	if b.Excerpt != "" {
		sb.WriteString(faintStyle.Render(b.Excerpt) + "\n")
	}
	sb.WriteString("\n")

	body, err := renderMarkdown(b.Content)
	if err != nil {
		body = b.Content + "\n"
	}
	sb.WriteString(body)

	if len(b.Images) > 0 {
		sb.WriteString(headerStyle.Render("Images") + "\n")
		for _, img := range b.Images {
			line := img.URL
			if img.AltText != "" {
				line += " (" + img.AltText + ")"
			}
			sb.WriteString("  " + line + "\n")
		}
	}
	return sb.String()
}

func renderMarkdown(content string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	return r.Render(content)
}

// renderComments prints a comment thread snapshot.
func renderComments(snap fetch.CommentsSnapshot) string {
	if snap.Error != "" {
		return errorStyle.Render(snap.Error)
	}
	if len(snap.Comments) == 0 {
		return faintStyle.Render("No comments yet.")
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("Comments (%d)", len(snap.Comments))) + "\n")
	for _, c := range snap.Comments {
		author := "anonymous"
		if c.Author != nil {
			author = c.Author.Name
		}
		sb.WriteString(fmt.Sprintf("%s %s\n  %s\n",
			titleStyle.Render(author),
			faintStyle.Render(c.CreatedAt.Format("2006-01-02 15:04")),
			c.Content))
	}
	return sb.String()
}

// renderDashboard prints the admin overview blocks.
func renderDashboard(summary api.AnalyticsSummary, traffic []api.TrafficPoint, activities []api.Activity) string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render("Overview") + "\n")
	sb.WriteString(fmt.Sprintf("  posts %d · views %d · likes %d · comments %d\n",
		summary.TotalPosts, summary.TotalViews, summary.TotalLikes, summary.TotalComments))

	if len(traffic) > 0 {
		sb.WriteString(headerStyle.Render("Traffic") + "\n")
		for _, p := range traffic {
			sb.WriteString(fmt.Sprintf("  %s  %5d views  %5d visitors\n", p.Date, p.Views, p.Visitors))
		}
	}

	if len(activities) > 0 {
		sb.WriteString(headerStyle.Render("Recent activity") + "\n")
		for _, act := range activities {
			sb.WriteString(fmt.Sprintf("  %s %s\n", faintStyle.Render(act.CreatedAt.Format("01-02 15:04")), act.Message))
		}
	}
	return sb.String()
}
