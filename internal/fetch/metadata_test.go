package fetch

import (
	"context"
	"net/http"
	"testing"

	"blogctl/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_BothSucceed(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/categories":
			w.Write([]byte(`{"success":true,"data":[{"_id":"c1","name":"Go","slug":"go","postCount":7}]}`))
		case "/api/tags":
			w.Write([]byte(`{"success":true,"data":[{"_id":"t1","name":"testing","slug":"testing","postCount":3}]}`))
		}
	}))

	m := NewMetadata(client, logging.NewNop())
	m.Fetch(context.Background())
	snap := m.Snapshot()

	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Error)
	require.Len(t, snap.Categories, 1)
	require.Len(t, snap.Tags, 1)
	assert.Equal(t, "Go", snap.Categories[0].Name)
	assert.Equal(t, 3, snap.Tags[0].PostCount)
}

func TestMetadata_TagsFailIsPartialSuccess(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/categories":
			w.Write([]byte(`{"success":true,"data":[{"_id":"c1","name":"Go"}]}`))
		case "/api/tags":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"tags are down"}`))
		}
	}))

	m := NewMetadata(client, logging.NewNop())
	m.Fetch(context.Background())
	snap := m.Snapshot()

	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Error)
	require.Len(t, snap.Categories, 1)
	assert.Empty(t, snap.Tags)
}

func TestMetadata_BothFailSetsError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	m := NewMetadata(client, logging.NewNop())
	m.Fetch(context.Background())
	snap := m.Snapshot()

	assert.False(t, snap.Loading)
	assert.Equal(t, "Failed to fetch metadata", snap.Error)
	assert.Empty(t, snap.Categories)
	assert.Empty(t, snap.Tags)
}
