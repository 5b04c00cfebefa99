// Package web serves the journal page: the week list on GET / and entry
// creation on POST /, plus the page script and a health check.
package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/lgastler/work-journal/internal/journal"
	"github.com/lgastler/work-journal/internal/logging"
	"github.com/lgastler/work-journal/internal/server/models"
	"github.com/lgastler/work-journal/internal/server/services"
)

// EntryService is what the page controller needs from the service layer.
type EntryService interface {
	Weeks(ctx context.Context) ([]journal.Week, error)
	Create(ctx context.Context, in services.CreateEntryInput) (*models.Entry, error)
	Ping(ctx context.Context) error
}

type HTTPServer struct {
	address         string
	entries         EntryService
	logger          logging.Logger
	shutdownTimeout time.Duration
	now             func() time.Time
}

func NewHTTPServer(a string, l logging.Logger, es EntryService, shutdownTimeout time.Duration) *HTTPServer {
	return &HTTPServer{
		address:         a,
		logger:          l.With("module", "http_server"),
		entries:         es,
		shutdownTimeout: shutdownTimeout,
		now:             time.Now,
	}
}

// Handler returns the routed handler with logging and panic recovery.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /{$}", s.handleCreate)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	return s.recoverer(s.requestLogger(mux))
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most the shutdown timeout.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *HTTPServer) serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}
