package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory TokenStore counting Clear calls.
type memStore struct {
	mu     sync.Mutex
	token  string
	clears int
}

func (m *memStore) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *memStore) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.clears++
	return nil
}

func (m *memStore) clearCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clears
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer srv.Close()

	store := &memStore{token: "tok-123"}
	c := New(srv.URL, store)

	res := c.Categories(context.Background())
	require.True(t, res.Success)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, &memStore{})
	c.Categories(context.Background())
	assert.Empty(t, gotAuth)
}

func TestClient_Unauthorized_ClearsTokenOnceAndFiresHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer srv.Close()

	store := &memStore{token: "stale"}
	c := New(srv.URL, store)
	hookCalls := 0
	c.OnUnauthorized(func() { hookCalls++ })

	// Must not panic and must surface the error branch, not a thrown error.
	res := c.Categories(context.Background())
	assert.False(t, res.Success)
	assert.Equal(t, "token expired", res.Error)

	assert.Equal(t, 1, store.clearCount())
	assert.Equal(t, 1, hookCalls)
	assert.Empty(t, store.Token())
}

func TestClient_ErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"message":"validation failed"}`, "validation failed"},
		{"error field", `{"error":"boom"}`, "boom"},
		{"empty body falls back", ``, "Failed to fetch categories"},
		{"non-json body falls back", `<html>oops</html>`, "Failed to fetch categories"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			res := New(srv.URL, &memStore{}).Categories(context.Background())
			assert.False(t, res.Success)
			assert.Equal(t, tt.want, res.Error)
		})
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	// Point at a closed server.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	res := New(srv.URL, &memStore{}).Categories(context.Background())
	assert.False(t, res.Success)
	assert.Equal(t, "Failed to fetch categories", res.Error)
}

func TestClient_MalformedResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":`)) // truncated JSON
	}))
	defer srv.Close()

	res := New(srv.URL, &memStore{}).Categories(context.Background())
	assert.False(t, res.Success)
	assert.Equal(t, "Failed to fetch categories", res.Error)
}
