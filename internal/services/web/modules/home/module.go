package home

import (
	"net/http"

	module "github.com/crackedpillars/chisel/internal/services/web/module"
	"github.com/crackedpillars/chisel/internal/services/web/routepath"
)

// Module provides the public landing page and the site-wide not-found
// fallback.
type Module struct{}

// New returns a home module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires home route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Home, Handler: mux}, nil
}
