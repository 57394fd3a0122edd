package explore

import (
	"net/http"

	module "github.com/crackedpillars/chisel/internal/services/web/module"
	"github.com/crackedpillars/chisel/internal/services/web/routepath"
)

// Module provides the item browsing and tag editing routes.
type Module struct{}

// New returns an explore module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "explore" }

// Mount wires explore route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(deps.Content)
	h := newHandlers(svc, deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.ExplorePrefix + "/", Handler: mux}, nil
}
