package explore

import (
	stderrors "errors"
	"net/http"

	"github.com/a-h/templ"

	"github.com/crackedpillars/chisel/internal/authn"
	"github.com/crackedpillars/chisel/internal/content"
	module "github.com/crackedpillars/chisel/internal/services/web/module"
	apperrors "github.com/crackedpillars/chisel/internal/services/web/platform/errors"
	"github.com/crackedpillars/chisel/internal/services/web/platform/i18n"
	"github.com/crackedpillars/chisel/internal/services/web/platform/pagerender"
	"github.com/crackedpillars/chisel/internal/services/web/platform/weberror"
	webtemplates "github.com/crackedpillars/chisel/internal/services/web/templates"
	"github.com/crackedpillars/chisel/internal/tagfilter"
)

type handlers struct {
	service service
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	copy := i18n.ForRequest(r)
	identity := h.deps.ResolveRequestIdentity(r)
	editable := authn.CanEditTags(identity.Role)

	catalog := h.service.catalog(ctx)
	widget := tagfilter.New(catalogNames(catalog))
	items := h.service.results(ctx, nil)

	view := webtemplates.ExploreView{
		Filter:  filterView(widget, copy),
		Results: webtemplates.NewResultsView(items, editable, copy),
		Tags:    catalog,
		Copy:    copy,
	}
	page := pagerender.Page{
		Title:    copy.ExploreTitle,
		Fragment: webtemplates.Explore(view),
	}
	if err := pagerender.WritePage(w, r, h.deps, page); err != nil {
		weberror.WritePageError(w, r, h.deps, http.StatusInternalServerError, "")
	}
}

// handleFilter re-renders the filter panel from the submitted widget
// state. Selection changes also refresh the result grid out of band.
func (h handlers) handleFilter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	copy := i18n.ForRequest(r)
	if err := r.ParseForm(); err != nil {
		weberror.WriteBanner(w, r, http.StatusBadRequest, copy.ErrInternal)
		return
	}

	catalog := h.service.catalog(ctx)
	names := catalogNames(catalog)
	widget := tagfilter.New(names)
	for _, tag := range r.Form["selected"] {
		widget.Select(tag)
	}
	widget.SetQuery(r.Form.Get("query"))

	selectionChanged := false
	if tag := r.Form.Get("select"); tag != "" {
		widget.Select(tag)
		widget.SetQuery("")
		selectionChanged = true
	}
	if tag := r.Form.Get("deselect"); tag != "" {
		widget.Deselect(tag)
		selectionChanged = true
	}
	if r.Form.Get("clear") != "" {
		widget.Clear()
		selectionChanged = true
	}
	if !selectionChanged && r.Form.Get("submitted") != "" {
		// Enter commits typed text when it names a catalog tag.
		for _, name := range names {
			if name == widget.Query() {
				widget.Select(name)
				widget.SetQuery("")
				selectionChanged = true
				break
			}
		}
	}

	page := pagerender.Page{
		Fragment: webtemplates.Filter(filterView(widget, copy)),
	}
	if selectionChanged {
		identity := h.deps.ResolveRequestIdentity(r)
		editable := authn.CanEditTags(identity.Role)
		items := h.service.results(ctx, widget.Selected())
		results := webtemplates.NewResultsView(items, editable, copy)
		results.OOB = true
		page.Extras = []templ.Component{webtemplates.Results(results)}
	}
	if err := pagerender.WritePage(w, r, h.deps, page); err != nil {
		weberror.WriteBanner(w, r, http.StatusInternalServerError, copy.ErrInternal)
	}
}

func (h handlers) handleSuggest(w http.ResponseWriter, r *http.Request) {
	copy := i18n.ForRequest(r)
	if _, err := h.authorize(r); err != nil {
		weberror.WriteBanner(w, r, apperrors.HTTPStatus(err), h.bannerMessage(copy, err))
		return
	}
	kind, slug, ok := h.pathTarget(r)
	if !ok {
		h.handleNotFound(w, r)
		return
	}
	suggestions, err := h.service.suggest(r.Context(), kind, slug, r.URL.Query().Get("tag"))
	if err != nil {
		weberror.WriteBanner(w, r, apperrors.HTTPStatus(err), h.bannerMessage(copy, err))
		return
	}
	page := pagerender.Page{
		Fragment: webtemplates.Suggestions(webtemplates.SuggestionsView{
			KindPath:    kind.Collection(),
			Slug:        slug,
			Suggestions: suggestions,
		}),
	}
	if err := pagerender.WritePage(w, r, h.deps, page); err != nil {
		weberror.WriteBanner(w, r, http.StatusInternalServerError, copy.ErrInternal)
	}
}

func (h handlers) handleAddTag(w http.ResponseWriter, r *http.Request) {
	h.handleMutateTag(w, r, true)
}

func (h handlers) handleRemoveTag(w http.ResponseWriter, r *http.Request) {
	h.handleMutateTag(w, r, false)
}

func (h handlers) handleMutateTag(w http.ResponseWriter, r *http.Request, add bool) {
	copy := i18n.ForRequest(r)
	identity, err := h.authorize(r)
	if err != nil {
		weberror.WriteBanner(w, r, apperrors.HTTPStatus(err), h.bannerMessage(copy, err))
		return
	}
	kind, slug, ok := h.pathTarget(r)
	if !ok {
		h.handleNotFound(w, r)
		return
	}
	tag := r.PostFormValue("tag")
	var item content.Item
	if add {
		item, err = h.service.addTag(r.Context(), kind, slug, tag, identity.Token)
	} else {
		item, err = h.service.removeTag(r.Context(), kind, slug, tag, identity.Token)
	}
	if err != nil {
		weberror.WriteBanner(w, r, apperrors.HTTPStatus(err), h.bannerMessage(copy, err))
		return
	}
	page := pagerender.Page{
		Fragment: webtemplates.ItemCard(webtemplates.NewItemView(item, true, copy)),
	}
	if err := pagerender.WritePage(w, r, h.deps, page); err != nil {
		weberror.WriteBanner(w, r, http.StatusInternalServerError, copy.ErrInternal)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WritePageError(w, r, h.deps, http.StatusNotFound, "")
}

// authorize admits only signed-in viewers whose role may edit tags.
func (h handlers) authorize(r *http.Request) (authn.Identity, error) {
	identity := h.deps.ResolveRequestIdentity(r)
	if !identity.SignedIn() {
		return identity, apperrors.E(apperrors.KindUnauthorized, "")
	}
	if !authn.CanEditTags(identity.Role) {
		return identity, apperrors.E(apperrors.KindForbidden, "tag editing requires an editor role")
	}
	return identity, nil
}

func (h handlers) pathTarget(r *http.Request) (content.Kind, string, bool) {
	kind, ok := content.ParseCollection(r.PathValue("collection"))
	if !ok {
		return "", "", false
	}
	slug := r.PathValue("slug")
	if slug == "" {
		return "", "", false
	}
	return kind, slug, true
}

func (h handlers) bannerMessage(copy i18n.Copy, err error) string {
	var appErr apperrors.Error
	if stderrors.As(err, &appErr) {
		switch appErr.Kind {
		case apperrors.KindUnauthorized:
			return copy.ErrAuthRequired
		case apperrors.KindUnavailable:
			return copy.ErrUpdateTags
		}
	}
	return weberror.PublicMessage(copy, err)
}

func filterView(widget *tagfilter.Widget, copy i18n.Copy) webtemplates.FilterView {
	return webtemplates.FilterView{
		Query:       widget.Query(),
		Selected:    widget.Selected(),
		Recommended: widget.Recommended(),
		Copy:        copy,
	}
}
