// Package server runs the emulator's HTTP listener with signal-driven
// graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/trippr-app/trippr-admin/internal/logger"
)

// Server wraps an http.Server and shuts it down gracefully on SIGINT,
// SIGTERM or SIGQUIT.
type Server struct {
	http   *http.Server
	logger *logger.Logger
}

func New(address string, handler http.Handler, log *logger.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:    address,
			Handler: handler,
		},
		logger: log,
	}
}

// Run blocks until the listener fails or a stop signal arrives. In-flight
// requests are drained before Run returns.
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	idleConnectionsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()

		if err := s.http.Shutdown(context.Background()); err != nil {
			s.logger.Error().Err(err).Msg("http server shutdown")
		}
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.http.Addr).Msg("emulator listening")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server shutdown gracefully")

	return nil
}
