package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"blogctl/internal/cli"
	"blogctl/internal/config"
	"blogctl/internal/logging"
)

var (
	serverURL  string
	configPath string
	verbose    bool
)

// rootCmd starts the interactive shell when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "blogctl",
	Short: "Terminal client for the blog platform",
	Long: `blogctl is a terminal client for the blog platform backend.

Run without arguments to start the interactive shell: browse and search
posts, read them rendered in the terminal, and, once logged in, write,
edit and like posts, moderate comments and watch the analytics dashboard.

The server address comes from the BLOGCTL_API_URL environment variable,
a JSON config file, or the --server flag, in ascending priority.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, log, err := buildApp()
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		app.Run(ctx)
		return nil
	},
}

// listCmd prints the first page of published posts and exits.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List published posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return oneShot(func(ctx context.Context, app *cli.App) error {
			return app.List(ctx)
		})
	},
}

// readCmd renders a single post by slug.
var readCmd = &cobra.Command{
	Use:   "read [slug]",
	Short: "Read one post, rendered as markdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return oneShot(func(ctx context.Context, app *cli.App) error {
			return app.ReadSlug(ctx, args[0])
		})
	},
}

// searchCmd runs a single full-text search.
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search posts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return oneShot(func(ctx context.Context, app *cli.App) error {
			return app.SearchQuery(ctx, args[0])
		})
	},
}

func buildApp() (*cli.App, *logging.ZapLogger, error) {
	log, err := logging.NewLogger(verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	if serverURL != "" {
		cfg.BaseURL = serverURL
	}

	return cli.NewApp(cfg, log), log, nil
}

// oneShot builds the app, runs a single non-interactive command and tears
// everything down again.
func oneShot(fn func(context.Context, *cli.App) error) error {
	app, log, err := buildApp()
	if err != nil {
		return err
	}
	defer log.Sync()
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return fn(ctx, app)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "", "server base URL (overrides config and environment)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(listCmd, readCmd, searchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
