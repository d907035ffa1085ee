package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"blogctl/internal/api"
	"blogctl/internal/config"
	"blogctl/internal/fetch"
	"blogctl/internal/logging"
	"blogctl/internal/session"
)

// App wires the screens to the API client, the session and the fetchers.
// The list fetcher and the searcher live on the App so "more" and repeated
// searches keep their state across REPL commands.
type App struct {
	config   *config.Config
	log      logging.Logger
	client   *api.Client
	session  *session.Session
	list     *fetch.BlogList
	searcher *fetch.Searcher
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	store := session.NewFileStore(cfg.TokenFile)
	client := api.New(cfg.BaseURL, store,
		api.WithLogger(log),
		api.WithUploadTimeout(cfg.UploadTimeout),
	)
	sess := session.New(client, store, log)

	return &App{
		config:   cfg,
		log:      log,
		client:   client,
		session:  sess,
		list:     fetch.NewBlogList(client, log, defaultListParams()),
		searcher: fetch.NewSearcher(client, log, cfg.SearchDebounce),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

// Run verifies any stored session and drops into the interactive loop.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.session.Init(ctx)
	a.Root(ctx)
}

// Close releases background resources. Safe to call after Run.
func (a *App) Close() {
	a.searcher.Close()
}

// Session exposes the identity state to the command layer.
func (a *App) Session() *session.Session {
	return a.session
}

// Client exposes the API client to the command layer.
func (a *App) Client() *api.Client {
	return a.client
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}
