package explore

import (
	"net/http"

	"github.com/crackedpillars/chisel/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.ExplorePrefix+"/{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ExplorePrefix, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ExploreFilter, h.handleFilter)
	mux.HandleFunc(http.MethodGet+" "+routepath.ExplorePrefix+"/{collection}/{slug}/suggest", h.handleSuggest)
	mux.HandleFunc(http.MethodPost+" "+routepath.ExplorePrefix+"/{collection}/{slug}/tags/add", h.handleAddTag)
	mux.HandleFunc(http.MethodPost+" "+routepath.ExplorePrefix+"/{collection}/{slug}/tags/remove", h.handleRemoveTag)
	mux.HandleFunc(routepath.ExplorePrefix+"/", h.handleNotFound)
}
