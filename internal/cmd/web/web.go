// Package web wires configuration and clients for the web command.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/crackedpillars/chisel/internal/authn"
	"github.com/crackedpillars/chisel/internal/content"
	"github.com/crackedpillars/chisel/internal/platform/config"
	"github.com/crackedpillars/chisel/internal/platform/otel"
	"github.com/crackedpillars/chisel/internal/platform/timeouts"
	webservice "github.com/crackedpillars/chisel/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr          string
	BackendBaseURL    string
	GoogleClientID    string
	GoogleUserInfoURL string
}

// ParseConfig reads the environment and then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	envCfg, err := config.ParseWeb()
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		HTTPAddr:          envCfg.HTTPAddr,
		BackendBaseURL:    envCfg.BackendBaseURL,
		GoogleClientID:    envCfg.GoogleClientID,
		GoogleUserInfoURL: envCfg.GoogleUserInfoURL,
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.BackendBaseURL, "backend-url", cfg.BackendBaseURL, "Content API base URL")
	fs.StringVar(&cfg.GoogleClientID, "google-client-id", cfg.GoogleClientID, "Google OAuth client id")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.BackendBaseURL = strings.TrimRight(strings.TrimSpace(cfg.BackendBaseURL), "/")
	return cfg, nil
}

// Run starts the web server and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "cracked-pillars-web")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		_ = shutdownTracing(context.Background())
	}()

	httpClient := &http.Client{Timeout: timeouts.BackendRequest}
	authClient := authn.NewClient(cfg.BackendBaseURL, cfg.GoogleUserInfoURL, httpClient)
	contentClient := content.NewClient(cfg.BackendBaseURL, httpClient)

	server, err := webservice.NewServer(ctx, webservice.Config{
		HTTPAddr:       cfg.HTTPAddr,
		GoogleClientID: cfg.GoogleClientID,
		Content:        contentClient,
		Auth:           authClient,
		Verifier:       authClient,
		Logger:         log.Default(),
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
