package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/devhub"
	"github.com/fwojciec/devhub/catalog"
	"github.com/fwojciec/devhub/fs"
	"github.com/fwojciec/devhub/fuzzy"
	"github.com/fwojciec/devhub/goldmark"
	"github.com/fwojciec/devhub/goquery"
	"github.com/fwojciec/devhub/htmltomarkdown"
	devhubhttp "github.com/fwojciec/devhub/http"
	"github.com/fwojciec/devhub/importer"
	"github.com/fwojciec/devhub/jwt"
	"github.com/fwojciec/devhub/readability"
	"github.com/fwojciec/devhub/rod"
	devhubslog "github.com/fwojciec/devhub/slog"
	"github.com/fwojciec/devhub/sqlite"
	"github.com/fwojciec/devhub/trafilatura"
	"github.com/fwojciec/devhub/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); the --db flag overrides it.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ActivePageService devhub.ActivePageService

	// closers run in reverse order on Close.
	closers []func() error
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var firstErr error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil
	if m.DB != nil {
		if err := m.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		m.DB = nil
	}
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("devhub"),
		kong.Description("Internal developer documentation portal."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'devhub --help' to see available commands")
	}

	if args[0] == "help" || slices.Contains(args, "--help") || slices.Contains(args, "-h") {
		helpArgs := append(slices.DeleteFunc(slices.Clone(args), isHelpArg), "--help")
		_, _ = parser.Parse(helpArgs)
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger, err := newLogger(stderr, cli.LogLevel, cli.LogFormat)
	if err != nil {
		return err
	}
	deps.Logger = logger

	if needsDB(cmd) {
		if cli.DB != "" {
			m.DBPath = cli.DB
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set DEVHUB_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.ActivePageService = devhubslog.NewLoggingActivePageService(sqlite.NewActivePageService(m.DB), logger)
		deps.Pages = m.ActivePageService
	}

	switch cmd {
	case "search":
		index := fuzzy.NewIndex(catalog.Items(), fuzzy.WithThreshold(cli.Search.SearchThreshold))
		deps.Searcher = devhubslog.NewLoggingSearcher(index, logger)

	case "token":
		if cli.JWTSecret == "" {
			fmt.Fprintln(stderr, "Hint: Set DEVHUB_JWT_SECRET to the secret the server verifies with")
			return devhub.Errorf(devhub.EINVALID, "jwt secret required")
		}
		deps.Tokens = jwt.NewTokenService(cli.JWTSecret, jwt.WithTTL(cli.Token.TTL))

	case "serve":
		srv, err := m.newServer(cli, logger)
		if err != nil {
			return err
		}
		deps.Server = srv

	case "import":
		im, err := m.newImporter(cli, logger, stderr)
		if err != nil {
			return err
		}
		deps.Importer = im
	}

	return kongCtx.Run(deps)
}

// newServer wires the HTTP server for the serve command.
func (m *Main) newServer(cli *CLI, logger *slog.Logger) (*devhubhttp.Server, error) {
	if info, err := os.Stat(cli.Content); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("content directory %q not found. Set DEVHUB_CONTENT or --content", cli.Content)
	}

	tree := catalog.Tree()
	if err := devhub.ValidateTree(tree); err != nil {
		return nil, fmt.Errorf("navigation tree: %s: %v", devhub.ErrorMessage(err), devhub.ErrorDetails(err))
	}

	index := fuzzy.NewIndex(catalog.Items(), fuzzy.WithThreshold(cli.Serve.SearchThreshold))
	resolver := fs.NewResolver(os.DirFS(cli.Content), yaml.NewParser())

	srv := devhubhttp.NewServer()
	srv.Addr = cli.Serve.Addr
	srv.Logger = logger
	srv.Searcher = devhubslog.NewLoggingSearcher(index, logger)
	srv.ActivePageService = m.ActivePageService
	srv.ContentResolver = devhubslog.NewLoggingResolver(resolver, logger)
	srv.Renderer = goldmark.NewRenderer()
	srv.Tree = tree
	srv.NavConfig = devhub.NavConfig{ForceExpanded: cli.Serve.ForceExpanded}
	srv.ReadOnly = cli.Serve.ReadOnly
	srv.DebugErrors = cli.Serve.DebugErrors

	if cli.JWTSecret != "" {
		srv.TokenService = jwt.NewTokenService(cli.JWTSecret)
	} else if !srv.ReadOnly {
		logger.Warn("no jwt secret configured, serving read-only")
		srv.ReadOnly = true
	}
	return srv, nil
}

// newImporter wires the import pipeline selected by the import flags.
func (m *Main) newImporter(cli *CLI, logger *slog.Logger, stderr io.Writer) (*importer.Importer, error) {
	c := cli.Import

	var fetcher devhub.Fetcher
	switch c.Fetcher {
	case "browser":
		f, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	default:
		fetcher = devhubhttp.NewFetcher()
	}
	m.closers = append(m.closers, fetcher.Close)

	var extractor devhub.Extractor
	switch c.Extractor {
	case "readability":
		extractor = readability.NewExtractor()
	case "selector":
		if strings.TrimSpace(c.Selector) == "" {
			return nil, devhub.Errorf(devhub.EINVALID, "--selector required with the selector extractor")
		}
		extractor = goquery.NewExtractor(c.Selector)
	default:
		extractor = trafilatura.NewExtractor()
	}

	if c.RPS <= 0 {
		return nil, devhub.Errorf(devhub.EINVALID, "--rps must be positive")
	}

	return &importer.Importer{
		Pages:       m.ActivePageService,
		Fetcher:     devhubslog.NewLoggingFetcher(fetcher, logger),
		Extractor:   extractor,
		Converter:   htmltomarkdown.NewConverter(),
		Store:       fs.NewFileStore(cli.Content, c.Section),
		RateLimiter: importer.NewDomainLimiter(c.RPS),
		Concurrency: c.Concurrency,
		Logger:      logger,
	}, nil
}

func needsDB(cmd string) bool {
	switch cmd {
	case "serve", "pages", "sync", "delete", "import":
		return true
	}
	return false
}

func isHelpArg(arg string) bool {
	return arg == "help" || arg == "--help" || arg == "-h"
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, devhub.Errorf(devhub.EINVALID, "unknown log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "devhub.db"
	}
	dir := filepath.Join(home, ".devhub")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "devhub.db")
}
