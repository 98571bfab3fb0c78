// Package http serves the portal over HTTP: rendered documentation pages,
// the search API used by the UI shell, and the active-page registry API.
// It also provides the Fetcher used by the page importer.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/devhub"
)

// DefaultShutdownTimeout bounds the graceful drain of in-flight requests.
const DefaultShutdownTimeout = 10 * time.Second

// Server is the portal HTTP server.
// Services are assigned after NewServer and before Handler or ListenAndServe.
type Server struct {
	server *http.Server

	// Addr is the TCP address to listen on, like ":8080".
	Addr string

	Logger *slog.Logger

	Searcher          devhub.Searcher
	ActivePageService devhub.ActivePageService
	ContentResolver   devhub.ContentResolver
	Renderer          devhub.Renderer
	TokenService      devhub.TokenService

	// Tree is the sidebar navigation tree.
	Tree      []devhub.TreeNode
	NavConfig devhub.NavConfig

	// ReadOnly rejects every mutation with 403 before any token check.
	ReadOnly bool

	// DebugErrors exposes internal error text in API responses.
	DebugErrors bool
}

// NewServer returns a Server with the default navigation config.
func NewServer() *Server {
	return &Server{
		server:    &http.Server{ReadHeaderTimeout: 10 * time.Second},
		Logger:    slog.Default(),
		NavConfig: devhub.DefaultNavConfig(),
	}
}

// Handler returns the routed handler wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)

	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/pages", s.handleListPages)
	mux.Handle("POST /api/pages", s.mutation(s.handleSyncPages))
	mux.Handle("DELETE /api/pages", s.mutation(s.handleDeletePages))
	mux.HandleFunc("GET /api/{rest...}", s.handleAPINotFound)

	mux.HandleFunc("GET /{path...}", s.handlePage)

	return s.logRequests(mux)
}

// ListenAndServe listens on Addr and serves until Shutdown is called.
// Returns nil after a graceful shutdown.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown is called.
func (s *Server) Serve(ln net.Listener) error {
	s.server.Handler = s.Handler()
	s.Logger.Info("listening", "addr", ln.Addr().String())
	if err := s.server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
// Safe to call from another goroutine while Serve is running.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleAPINotFound(w http.ResponseWriter, r *http.Request) {
	s.Error(w, r, devhub.Errorf(devhub.ENOTFOUND, "endpoint %s not found", r.URL.Path))
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		s.Logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
