package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/trainingken/site/internal/platform/logging"
	"github.com/trainingken/site/internal/platform/timeouts"
	webapp "github.com/trainingken/site/internal/services/web/app"
	module "github.com/trainingken/site/internal/services/web/module"
	"github.com/trainingken/site/internal/services/web/modules"
	"github.com/trainingken/site/internal/services/web/platform/httpx"
	"github.com/trainingken/site/internal/services/web/platform/observability"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	Content  module.ContentService
	Site     module.Site
	Logger   *zap.Logger
	// Modules overrides the default module set.
	Modules []module.Module
}

// Server hosts the site HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

// NewHandler builds the root handler wrapped with the shared middleware.
func NewHandler(config Config) (http.Handler, error) {
	if config.Content == nil {
		return nil, errors.New("content service is required")
	}
	logger := logging.OrNop(config.Logger)
	mods := config.Modules
	if len(mods) == 0 {
		mods = modules.Default()
	}
	root, err := webapp.BuildRootHandler(webapp.Config{
		Dependencies: module.Dependencies{
			Content: config.Content,
			Site:    config.Site,
			Logger:  logger,
		},
		Modules: mods,
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}
	return httpx.Chain(root,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.Tracing(),
		observability.RequestLogger(logger),
	), nil
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, err
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		logger: logging.OrNop(config.Logger),
	}, nil
}

// ListenAndServe serves HTTP until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is canceled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Info("web listening", zap.String("addr", listener.Addr().String()))
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops the server immediately.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		s.logger.Warn("close http server", zap.Error(err))
	}
}
