package fetch

import (
	"context"
	"sync"

	"blogctl/internal/api"
	"blogctl/internal/logging"
	"blogctl/internal/models"
)

// Mutator runs create/update/delete/upload calls. It is stateless with
// respect to any listing: each call sets and clears its own loading/error
// and hands back the raw result; refreshing affected lists afterwards is
// the caller's job. No optimistic updates, no rollback.
type Mutator struct {
	client *api.Client
	log    logging.Logger

	mu      sync.Mutex
	loading bool
	err     string
}

func NewMutator(client *api.Client, log logging.Logger) *Mutator {
	return &Mutator{client: client, log: log}
}

// Loading reports whether a mutation is currently running.
func (m *Mutator) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Err returns the last mutation error, or "".
func (m *Mutator) Err() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// ClearError resets the error state.
func (m *Mutator) ClearError() {
	m.mu.Lock()
	m.err = ""
	m.mu.Unlock()
}

func (m *Mutator) begin() {
	m.mu.Lock()
	m.loading = true
	m.err = ""
	m.mu.Unlock()
}

func (m *Mutator) finish(errMsg string) {
	m.mu.Lock()
	m.loading = false
	m.err = errMsg
	m.mu.Unlock()
}

// Create creates a post.
func (m *Mutator) Create(ctx context.Context, payload api.BlogPayload) api.Result[models.Blog] {
	m.begin()
	res := m.client.CreateBlog(ctx, payload)
	m.finish(res.Error)
	return res
}

// Update replaces a post's fields.
func (m *Mutator) Update(ctx context.Context, id string, payload api.BlogPayload) api.Result[models.Blog] {
	m.begin()
	res := m.client.UpdateBlog(ctx, id, payload)
	m.finish(res.Error)
	return res
}

// Delete removes a post.
func (m *Mutator) Delete(ctx context.Context, id string) api.Result[api.None] {
	m.begin()
	res := m.client.DeleteBlog(ctx, id)
	m.finish(res.Error)
	return res
}

// ToggleLike flips a like. Like toggles are fire-and-observe: they do not
// touch the mutator's loading/error state.
func (m *Mutator) ToggleLike(ctx context.Context, blogID string) api.Result[api.LikeState] {
	return m.client.ToggleLike(ctx, blogID)
}

// UploadImages pushes staged files to the upload endpoint and marks the
// entries uploaded on success.
func (m *Mutator) UploadImages(ctx context.Context, images []*models.PendingImage) api.Result[[]models.BlogImage] {
	m.begin()
	res := m.client.UploadImages(ctx, images)
	m.finish(res.Error)
	if res.Success {
		for _, img := range images {
			img.MarkUploaded()
		}
	}
	return res
}
