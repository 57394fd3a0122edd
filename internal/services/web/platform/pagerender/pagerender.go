// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"html/template"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/crackedpillars/chisel/internal/authn"
	flashnotice "github.com/crackedpillars/chisel/internal/services/web/platform/flash"
	"github.com/crackedpillars/chisel/internal/services/web/platform/httpx"
	"github.com/crackedpillars/chisel/internal/services/web/platform/i18n"
	webtemplates "github.com/crackedpillars/chisel/internal/services/web/templates"
)

// RequestResolver resolves viewer state for the page chrome. This
// decouples platform rendering from the module-layer dependency type.
type RequestResolver interface {
	ResolveRequestIdentity(r *http.Request) authn.Identity
	SignInClientID() string
}

// Page describes a module page response for both full-page and HTMX
// flows. Extras render after the fragment, typically out-of-band
// swaps that refresh sibling regions.
type Page struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
	Extras     []templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage writes a module page. HTMX requests receive only the
// fragment and extras; full-page requests get the fragment wrapped in
// the site layout with the viewer's auth section and any pending flash
// notice.
func WritePage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}
	ctx := httpx.RequestContext(r)

	var buf bytes.Buffer
	if err := fragment.Render(ctx, &buf); err != nil {
		return err
	}
	for _, extra := range page.Extras {
		if extra == nil {
			continue
		}
		if err := extra.Render(ctx, &buf); err != nil {
			return err
		}
	}

	if httpx.IsHTMXRequest(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(statusCode)
		_, _ = w.Write(buf.Bytes())
		return nil
	}

	tag := i18n.ResolveTag(r)
	copy := i18n.ForTag(tag)
	identity := authn.Identity{}
	clientID := ""
	if resolver != nil {
		identity = resolver.ResolveRequestIdentity(r)
		clientID = resolver.SignInClientID()
	}
	layout := webtemplates.Layout(webtemplates.LayoutView{
		Title:   pageTitle(page.Title, copy),
		Lang:    tag.String(),
		Copy:    copy,
		Auth:    webtemplates.NewAuthView(identity, clientID),
		Notice:  resolveFlashNotice(w, r),
		Content: template.HTML(buf.String()),
	})

	var rendered bytes.Buffer
	if err := layout.Render(ctx, &rendered); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(rendered.Bytes())
	return nil
}

func pageTitle(title string, copy i18n.Copy) string {
	if title == "" {
		return copy.SiteTitle
	}
	return title + " | " + copy.SiteTitle
}

func resolveFlashNotice(w http.ResponseWriter, r *http.Request) *webtemplates.NoticeView {
	notice, ok := flashnotice.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	return &webtemplates.NoticeView{
		Kind:    string(notice.Kind),
		Message: notice.Message,
	}
}
