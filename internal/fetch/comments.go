package fetch

import (
	"context"
	"sync"

	"blogctl/internal/api"
	"blogctl/internal/logging"
	"blogctl/internal/models"
)

// CommentsSnapshot is the renderable state of a CommentThread.
type CommentsSnapshot struct {
	Comments []models.Comment
	Loading  bool
	Error    string
}

// CommentThread fetches the flat comment list of one post and keeps the
// local copy in step with successful mutations: adds prepend, updates
// replace in place, deletes remove.
type CommentThread struct {
	client *api.Client
	log    logging.Logger
	blogID string

	mu       sync.Mutex
	comments []models.Comment
	loading  bool
	err      string
	inFlight int
}

func NewCommentThread(client *api.Client, log logging.Logger, blogID string) *CommentThread {
	return &CommentThread{client: client, log: log, blogID: blogID, loading: true}
}

// Fetch loads the thread. With no blog identifier it completes idle.
func (t *CommentThread) Fetch(ctx context.Context) {
	t.mu.Lock()
	blogID := t.blogID
	if blogID == "" {
		t.loading = false
		t.err = ""
		t.mu.Unlock()
		return
	}
	t.loading = true
	t.err = ""
	t.inFlight++
	t.mu.Unlock()

	res := t.client.Comments(ctx, blogID, 0, 0)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.inFlight--
	if t.inFlight == 0 {
		t.loading = false
	}
	if !res.Success {
		t.err = res.Error
		t.comments = []models.Comment{}
		return
	}
	t.comments = res.Data
}

// Refetch re-issues the comment listing.
func (t *CommentThread) Refetch(ctx context.Context) {
	t.Fetch(ctx)
}

// Add posts a comment and prepends the server's copy on success.
func (t *CommentThread) Add(ctx context.Context, content string) api.Result[models.Comment] {
	res := t.client.AddComment(ctx, t.blogID, content)
	if res.Success {
		t.mu.Lock()
		t.comments = append([]models.Comment{res.Data}, t.comments...)
		t.mu.Unlock()
	}
	return res
}

// Update edits a comment and swaps the local copy on success.
func (t *CommentThread) Update(ctx context.Context, commentID, content string) api.Result[models.Comment] {
	res := t.client.UpdateComment(ctx, t.blogID, commentID, content)
	if res.Success {
		t.mu.Lock()
		for i := range t.comments {
			if t.comments[i].ID == commentID {
				t.comments[i] = res.Data
			}
		}
		t.mu.Unlock()
	}
	return res
}

// Delete removes a comment locally once the server confirms.
func (t *CommentThread) Delete(ctx context.Context, commentID string) api.Result[api.None] {
	res := t.client.DeleteComment(ctx, t.blogID, commentID)
	if res.Success {
		t.mu.Lock()
		kept := t.comments[:0]
		for _, c := range t.comments {
			if c.ID != commentID {
				kept = append(kept, c)
			}
		}
		t.comments = kept
		t.mu.Unlock()
	}
	return res
}

// Snapshot returns a copy of the current state.
func (t *CommentThread) Snapshot() CommentsSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	comments := make([]models.Comment, len(t.comments))
	copy(comments, t.comments)
	return CommentsSnapshot{Comments: comments, Loading: t.loading, Error: t.err}
}
