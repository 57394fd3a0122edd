// Package config loads startup configuration for Cracked Pillars binaries.
package config

import "strings"

// Web holds the web frontend configuration. Values are read once at
// startup from the environment and never re-read per request.
type Web struct {
	// HTTPAddr is the listen address for the browser-facing server.
	HTTPAddr string `env:"CRACKED_PILLARS_HTTP_ADDR" envDefault:"localhost:3000"`
	// BackendBaseURL is the content API base URL (items, abilities, tags, auth).
	BackendBaseURL string `env:"CRACKED_PILLARS_BACKEND_URL" envDefault:"http://localhost:8080"`
	// GoogleClientID identifies the OAuth client used by the login widget.
	GoogleClientID string `env:"CRACKED_PILLARS_GOOGLE_CLIENT_ID"`
	// GoogleUserInfoURL is the OAuth user-info endpoint. Overridable for tests.
	GoogleUserInfoURL string `env:"CRACKED_PILLARS_GOOGLE_USERINFO_URL" envDefault:"https://www.googleapis.com/oauth2/v3/userinfo"`
}

// ParseWeb loads the web configuration from environment variables.
func ParseWeb() (Web, error) {
	var cfg Web
	if err := ParseEnv(&cfg); err != nil {
		return Web{}, err
	}
	cfg.BackendBaseURL = strings.TrimRight(strings.TrimSpace(cfg.BackendBaseURL), "/")
	return cfg, nil
}
