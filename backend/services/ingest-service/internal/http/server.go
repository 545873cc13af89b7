package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Server wraps http.Server with optional TLS termination.
type Server struct {
	server   *http.Server
	certFile string
	keyFile  string
	logger   *zap.Logger
}

// NewServer builds a plain HTTP server.
func NewServer(addr string, handler http.Handler, logger *zap.Logger) *Server {
	return &Server{
		server: newHTTPServer(addr, handler),
		logger: logger,
	}
}

// NewTLSServer builds a server that terminates TLS with the given pair. This is
// the intended deployment; plain HTTP is the fallback when no pair is
// configured.
func NewTLSServer(addr, certFile, keyFile string, handler http.Handler, logger *zap.Logger) *Server {
	return &Server{
		server:   newHTTPServer(addr, handler),
		certFile: certFile,
		keyFile:  keyFile,
		logger:   logger,
	}
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Run starts the server and blocks until ctx is cancelled or serving fails.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		var err error
		if s.certFile != "" {
			s.logger.Info("starting https server", zap.String("addr", s.server.Addr))
			err = s.server.ListenAndServeTLS(s.certFile, s.keyFile)
		} else {
			s.logger.Info("starting http server", zap.String("addr", s.server.Addr))
			err = s.server.ListenAndServe()
		}
		errCh <- err
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
