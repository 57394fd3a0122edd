package home

import (
	"net/http"

	module "github.com/crackedpillars/chisel/internal/services/web/module"
	"github.com/crackedpillars/chisel/internal/services/web/platform/i18n"
	"github.com/crackedpillars/chisel/internal/services/web/platform/pagerender"
	"github.com/crackedpillars/chisel/internal/services/web/platform/weberror"
	webtemplates "github.com/crackedpillars/chisel/internal/services/web/templates"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	copy := i18n.ForRequest(r)
	page := pagerender.Page{
		Fragment: webtemplates.Home(webtemplates.HomeView{Copy: copy}),
	}
	if err := pagerender.WritePage(w, r, h.deps, page); err != nil {
		weberror.WritePageError(w, r, h.deps, http.StatusInternalServerError, "")
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WritePageError(w, r, h.deps, http.StatusNotFound, "")
}
