package session

import (
	"context"
	"sync"

	"blogctl/internal/api"
	"blogctl/internal/logging"
	"blogctl/internal/models"
)

// Home is the navigation target after logout.
const Home = "/"

// Session is the identity state shared by every screen. It verifies a stored
// token once at startup, exposes login/register/logout, and downgrades to
// unauthenticated whenever any API call hits a 401.
//
// States: unauthenticated(loading) -> authenticated | unauthenticated.
// While Loading is true, screens must not render protected content.
type Session struct {
	client   *api.Client
	store    api.TokenStore
	log      logging.Logger
	navigate func(target string)

	mu      sync.Mutex
	user    *models.User
	loading bool
}

// Option configures a Session.
type Option func(*Session)

// WithNavigator installs the function logout uses to send the UI home.
func WithNavigator(fn func(target string)) Option {
	return func(s *Session) { s.navigate = fn }
}

// New wires a session to the API client and registers the 401 downgrade
// hook. Call Init before rendering anything gated on identity.
func New(client *api.Client, store api.TokenStore, log logging.Logger, opts ...Option) *Session {
	s := &Session{
		client:   client,
		store:    store,
		log:      log,
		navigate: func(string) {},
		loading:  true,
	}
	for _, opt := range opts {
		opt(s)
	}
	client.OnUnauthorized(s.downgrade)
	return s
}

// Init performs the one-time startup check: if a token is persisted it is
// verified against the backend; any failure clears it. Loading is false once
// Init returns.
func (s *Session) Init(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	if s.store.Token() == "" {
		return
	}

	res := s.client.Verify(ctx)
	if !res.Success {
		s.log.Warn(ctx, "stored token rejected", "error", res.Error)
		if err := s.store.Clear(); err != nil {
			s.log.Warn(ctx, "clearing rejected token", "error", err)
		}
		return
	}

	s.mu.Lock()
	user := res.Data
	s.user = &user
	s.mu.Unlock()
}

// Login exchanges credentials for a token, persists it and stores the user.
func (s *Session) Login(ctx context.Context, email, password string) api.Result[models.User] {
	res := s.client.Login(ctx, email, password)
	if !res.Success {
		return api.Result[models.User]{Error: res.Error}
	}

	if err := s.store.Save(res.Data.Token); err != nil {
		s.log.Error(ctx, "persisting token", "error", err)
		return api.Result[models.User]{Error: "Failed to persist session"}
	}

	s.mu.Lock()
	user := res.Data.User
	s.user = &user
	s.mu.Unlock()

	return api.Result[models.User]{Success: true, Data: res.Data.User}
}

// Register creates an account. It does not log the new user in; a
// subsequent Login does that.
func (s *Session) Register(ctx context.Context, data models.RegisterData) api.Result[string] {
	return s.client.Register(ctx, data)
}

// Logout clears the persisted token and the in-memory user, then navigates
// home. It is synchronous, performs no server round trip, and is idempotent.
func (s *Session) Logout() {
	if err := s.store.Clear(); err != nil {
		s.log.Warn(context.Background(), "clearing token on logout", "error", err)
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	s.navigate(Home)
}

// User returns the current user, or nil when unauthenticated.
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Loading reports whether the startup check is still outstanding.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// IsAuthenticated reports whether a user is present.
func (s *Session) IsAuthenticated() bool {
	return s.User() != nil
}

// downgrade drops the in-memory user after the client saw a 401. The token
// is already cleared by the client at that point.
func (s *Session) downgrade() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}
