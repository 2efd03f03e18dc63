package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"askify/internal/config"
	"askify/internal/dubbing"
	"askify/internal/logger"
	"askify/internal/media"
	"askify/internal/notes"
	"askify/internal/teach"
)

// Server exposes the assistant over HTTP.
type Server struct {
	cfg     *config.Config
	logger  logger.Logger
	media   media.Service
	dubber  dubbing.Service
	notes   notes.Service
	teacher teach.Service

	httpServer *http.Server
}

// New wires the HTTP API on top of the pipeline services.
func New(cfg *config.Config, log logger.Logger, mediaSvc media.Service, dubber dubbing.Service, notesSvc notes.Service, teacher teach.Service) *Server {
	s := &Server{
		cfg:     cfg,
		logger:  log,
		media:   mediaSvc,
		dubber:  dubber,
		notes:   notesSvc,
		teacher: teacher,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/ask", s.handleAsk)
	mux.HandleFunc("/api/dub", s.handleDub)
	mux.HandleFunc("/api/dub_upload", s.handleDubUpload)
	mux.HandleFunc("/api/dub_status", s.handleDubStatus)
	mux.HandleFunc("/api/dub_download", s.handleDubDownload)
	mux.HandleFunc("/api/notes_docx", s.handleNotesDocx)

	s.httpServer = &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves the API until ctx is cancelled, then shuts down gracefully.
// It returns only once in-flight requests have drained (or the grace
// window elapsed).
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info(ctx, "API server listening on %s", s.cfg.Server.Addr)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
