package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	List(ctx context.Context) error
	More(ctx context.Context) error
	Filter(ctx context.Context) error
	Read(ctx context.Context) error
	Search(ctx context.Context) error
	Featured(ctx context.Context) error
	Trending(ctx context.Context) error
	Author(ctx context.Context) error
	Meta(ctx context.Context) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Like(ctx context.Context) error
	Comment(ctx context.Context) error
	NewPost(ctx context.Context) error
	EditPost(ctx context.Context) error
	DeletePost(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Settings(ctx context.Context) error
	Stats(ctx context.Context) error
}

// requiresLogin reports whether cmd may only run with an authenticated
// session. Logout stays open because it is idempotent.
func requiresLogin(cmd string) bool {
	switch cmd {
	case "like", "comment", "new", "edit", "delete", "dashboard", "settings", "stats":
		return true
	}
	return false
}

// runREPL starts a simple read–eval–print loop for the blogctl client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. Account commands are refused until the user logs in.
// The loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - list | more    — browse the listing, page by page
//	  - filter         — narrow the listing by category / sort order
//	  - read           — render a post by slug, with comments
//	  - search         — full-text search
//	  - featured       — posts the backend marks as featured
//	  - trending       — this week's most popular posts
//	  - author         — posts by one author
//	  - meta           — categories and tags
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in, additionally:
//	  - like           — toggle a like on a post
//	  - comment        — comment on a post
//	  - new            — write a new post
//	  - edit           — edit a post
//	  - delete         — delete a post
//	  - dashboard      — admin analytics
//	  - settings       — site configuration
//	  - stats          — per-post counters
//	  - logout         — log out
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, out io.Writer) {
	for {
		fmt.Fprintf(out, "blogctl> %s > \n", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if requiresLogin(cmd) && !a.isLoggedIn() {
			fmt.Fprintln(out, "Please login first.")
			continue
		}

		switch cmd {
		case "help":
			fmt.Fprintln(out, "Available commands: (l)ist, more, filter, read, search, featured, trending, author, meta, exit")
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Account commands: like, comment, new, edit, delete, dashboard, settings, stats, logout")
			} else {
				fmt.Fprintln(out, "Account commands: register, login")
			}

		case "l", "list":
			_ = a.List(ctx)

		case "more":
			_ = a.More(ctx)

		case "filter":
			_ = a.Filter(ctx)

		case "read":
			_ = a.Read(ctx)

		case "search":
			_ = a.Search(ctx)

		case "featured":
			_ = a.Featured(ctx)

		case "trending":
			_ = a.Trending(ctx)

		case "author":
			_ = a.Author(ctx)

		case "meta":
			_ = a.Meta(ctx)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "like":
			_ = a.Like(ctx)

		case "comment":
			_ = a.Comment(ctx)

		case "new":
			_ = a.NewPost(ctx)

		case "edit":
			_ = a.EditPost(ctx)

		case "delete":
			_ = a.DeletePost(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "settings":
			_ = a.Settings(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}
