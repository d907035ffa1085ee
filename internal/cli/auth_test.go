package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"blogctl/internal/api"
	"blogctl/internal/logging"
	"blogctl/internal/session"
)

func stubInputs(t *testing.T, lines []string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		line := lines[i%len(lines)]
		i++
		return line, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

func newTestApp(t *testing.T, handler http.HandlerFunc) (*App, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logging.NewNop()
	store := &session.MemStore{}
	client := api.New(srv.URL, store, api.WithLogger(log))

	var out bytes.Buffer
	return &App{
		log:     log,
		client:  client,
		session: session.New(client, store, log),
		reader:  bufio.NewReader(bytes.NewReader(nil)),
		out:     &out,
	}, &out
}

func TestLogin_Success(t *testing.T) {
	a, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "alice@example.org", body["email"])
		require.Equal(t, "secret", body["password"])

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"token": "tok-1",
				"user":  map[string]any{"_id": "u1", "name": "Alice", "role": "user"},
			},
		})
	})

	restore := stubInputs(t, []string{"alice@example.org"}, []byte("secret"))
	defer restore()

	require.NoError(t, a.Login(context.Background()))
	require.True(t, a.isLoggedIn())
	require.Contains(t, out.String(), "Welcome back, Alice")
}

func TestLogin_Failure(t *testing.T) {
	a, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	})

	restore := stubInputs(t, []string{"alice@example.org"}, []byte("wrong"))
	defer restore()

	require.Error(t, a.Login(context.Background()))
	require.False(t, a.isLoggedIn())
	require.Contains(t, out.String(), "Invalid credentials")
}

func TestRegister_Success(t *testing.T) {
	a, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"user": map[string]any{"_id": "u2"}})
	})

	restore := stubInputs(t, []string{"Bob", "bob@example.org"}, []byte("secret"))
	defer restore()

	require.NoError(t, a.Register(context.Background()))
	require.Contains(t, out.String(), "You can login now")
	// registration does not log the user in
	require.False(t, a.isLoggedIn())
}

func TestLogout_Idempotent(t *testing.T) {
	a, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"token": "tok-1",
				"user":  map[string]any{"_id": "u1", "name": "Alice", "role": "user"},
			},
		})
	})

	restore := stubInputs(t, []string{"alice@example.org"}, []byte("secret"))
	defer restore()
	require.NoError(t, a.Login(context.Background()))

	require.NoError(t, a.Logout(context.Background()))
	require.False(t, a.isLoggedIn())
	require.NoError(t, a.Logout(context.Background()))
	require.Contains(t, out.String(), "Logged out.")
}
