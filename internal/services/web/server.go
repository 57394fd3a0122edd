// Package web hosts the browser-facing service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/crackedpillars/chisel/internal/platform/timeouts"
	module "github.com/crackedpillars/chisel/internal/services/web/module"
	"github.com/crackedpillars/chisel/internal/services/web/modules"
	"github.com/crackedpillars/chisel/internal/services/web/platform/httpx"
	"github.com/crackedpillars/chisel/internal/services/web/routepath"
	webstatic "github.com/crackedpillars/chisel/internal/services/web/static"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr       string
	GoogleClientID string
	Content        module.ContentClient
	Auth           module.AuthClient
	Verifier       SessionVerifier
	Logger         *log.Logger
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds a root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	resolver := newSessionResolver(cfg.Verifier)
	deps := module.Dependencies{
		Logger:          logger,
		Content:         cfg.Content,
		Auth:            cfg.Auth,
		GoogleClientID:  cfg.GoogleClientID,
		ResolveIdentity: resolver.resolveIdentity,
	}

	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(webstatic.FS))))
	for _, m := range modules.Default() {
		mount, err := m.Mount(deps)
		if err != nil {
			return nil, fmt.Errorf("mount module %s: %w", m.ID(), err)
		}
		rootMux.Handle(mount.Prefix, mount.Handler)
		if trimmed := strings.TrimSuffix(mount.Prefix, "/"); trimmed != "" && trimmed != mount.Prefix {
			rootMux.Handle(trimmed, mount.Handler)
		}
	}

	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		withRequestIdentityState(),
		httpx.RequestLogger(logger),
	), nil
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or
// server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
