// Package api is the HTTP routing layer: it maps inbound paths and query
// parameters to gateway calls and owns status-code selection for errors.
package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/ammarcodes29/cryptoAPI/pkg/lcw"
	"github.com/ammarcodes29/cryptoAPI/pkg/logging"
	"github.com/ammarcodes29/cryptoAPI/pkg/metrics"
)

// Server serves the public crypto API.
type Server struct {
	addr    string
	svc     *lcw.Service
	title   string
	version string
	logger  zerolog.Logger
	srv     *http.Server
}

// NewServer creates a server for the given gateway service.
func NewServer(addr string, svc *lcw.Service, title, version string) *Server {
	s := &Server{
		addr:    addr,
		svc:     svc,
		title:   title,
		version: version,
		logger:  logging.NewLogger("api"),
	}

	s.srv = &http.Server{
		Addr:         addr,
		Handler:      s.requestLogger(s.routes()),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// routes builds the service mux.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /crypto/{symbol}", s.handleCoin)
	mux.HandleFunc("GET /crypto", s.handleList)
	mux.HandleFunc("GET /search", s.handleSearch)
	mux.HandleFunc("GET /market/overview", s.handleOverview)
	mux.Handle("GET /metrics", metrics.Handler())

	return mux
}

// Start serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error().Err(err).Msg("Server shutdown failed")
		}
	}()

	s.logger.Info().Str("addr", s.addr).Str("version", s.version).Msg("HTTP server starting")

	if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
