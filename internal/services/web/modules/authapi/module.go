package authapi

import (
	"net/http"

	module "github.com/crackedpillars/chisel/internal/services/web/module"
	"github.com/crackedpillars/chisel/internal/services/web/routepath"
)

// Module provides the JSON auth endpoints the sign-in widget calls.
type Module struct{}

// New returns an authapi module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "authapi" }

// Mount wires auth route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.AuthPrefix, Handler: mux}, nil
}
