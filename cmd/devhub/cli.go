package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/devhub"
	devhubhttp "github.com/fwojciec/devhub/http"
	"github.com/fwojciec/devhub/importer"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Pages    devhub.ActivePageService
	Searcher devhub.Searcher
	Tokens   devhub.TokenService
	Importer *importer.Importer
	Server   *devhubhttp.Server
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB        string `name:"db" env:"DEVHUB_DB" help:"SQLite database path (default ~/.devhub/devhub.db)"`
	Content   string `env:"DEVHUB_CONTENT" default:"content" help:"Markdown content directory"`
	JWTSecret string `name:"jwt-secret" env:"DEVHUB_JWT_SECRET" help:"HMAC secret for bearer tokens"`
	LogLevel  string `env:"DEVHUB_LOG_LEVEL" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat string `env:"DEVHUB_LOG_FORMAT" default:"text" enum:"text,json" help:"Log format"`

	Serve  ServeCmd  `cmd:"" help:"Run the portal HTTP server"`
	Search SearchCmd `cmd:"" help:"Search the documentation catalog"`
	Token  TokenCmd  `cmd:"" help:"Issue a bearer token"`
	Pages  PagesCmd  `cmd:"" help:"List the active-page registry"`
	Sync   SyncCmd   `cmd:"" help:"Replace the active-page set from a JSON file"`
	Delete DeleteCmd `cmd:"" help:"Remove pages from the registry"`
	Import ImportCmd `cmd:"" help:"Import active pages into the content directory"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr            string   `env:"DEVHUB_ADDR" default:":3000" help:"Listen address"`
	ReadOnly        bool     `env:"DEVHUB_READ_ONLY" help:"Reject every registry mutation"`
	DebugErrors     bool     `env:"DEVHUB_DEBUG_ERRORS" help:"Expose internal error text in API responses"`
	SearchThreshold float64  `default:"0.3" help:"Fuzzy match strictness from 0 (exact) to 1"`
	ForceExpanded   []string `default:"/domains" help:"Sidebar sections that are always expanded"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query           string  `arg:"" help:"Search query"`
	Limit           int     `short:"n" default:"10" help:"Maximum number of results"`
	SearchThreshold float64 `default:"0.3" help:"Fuzzy match strictness from 0 (exact) to 1"`
}

// TokenCmd is the "token" subcommand.
type TokenCmd struct {
	Subject string        `required:"" help:"Token subject (user ID)"`
	Email   string        `help:"Email claim"`
	Role    string        `default:"regular" enum:"regular,paid,admin" help:"Role claim"`
	TTL     time.Duration `default:"24h" help:"Token lifetime"`
}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct {
	JSON bool `help:"Print the registry as JSON"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct {
	File string `arg:"" type:"existingfile" help:"JSON file with a page array or {\"pages\": [...]}"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	IDs   []string `arg:"" name:"id" help:"External page IDs"`
	Force bool     `help:"Confirm deletion"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Fetcher     string  `default:"http" enum:"http,browser" help:"Page fetcher (browser needs Chrome or Chromium)"`
	Extractor   string  `default:"trafilatura" enum:"trafilatura,readability,selector" help:"Main content extractor"`
	Selector    string  `default:"main" help:"CSS selector used by the selector extractor"`
	RPS         float64 `name:"rps" default:"1" help:"Requests per second per host"`
	Concurrency int     `short:"c" default:"4" help:"Concurrent fetch limit"`
	Section     string  `default:"imported" help:"Content subdirectory replaced by the import"`
}
