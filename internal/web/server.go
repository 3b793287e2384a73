package web

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const (
	maxHeaderBytes    = 1 << 20
	readHeaderTimeout = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

// Server wraps an *http.Server to provide start/shutdown lifecycle.
type Server struct {
	httpServer *http.Server
}

// NewServer builds a server for the given port and handler.
func NewServer(port int, handler http.Handler) *Server {
	return &Server{httpServer: &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		MaxHeaderBytes:    maxHeaderBytes,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}}
}

// Addr returns the listen address.
func (s *Server) Addr() string { return s.httpServer.Addr }

// Run blocks serving requests until the server stops. It returns nil after
// a graceful Shutdown.
func (s *Server) Run() error {
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server, allowing in-flight requests to complete.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
