// Package templates renders the site's HTML pages and fragments.
// Template files are embedded and parsed once at startup; each
// exported constructor pairs a parsed template with its view model and
// returns a templ.Component the render layer can compose.
package templates

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

//go:embed files/*.tmpl
var files embed.FS

var pages = template.Must(template.ParseFS(files, "files/*.tmpl"))

func component(name string, view any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return pages.ExecuteTemplate(w, name, view)
	})
}

// Layout wraps already-rendered content in the site chrome.
func Layout(view LayoutView) templ.Component {
	return component("layout.html.tmpl", view)
}

// Home renders the landing page content.
func Home(view HomeView) templ.Component {
	return component("home.html.tmpl", view)
}

// Explore renders the full explore page content.
func Explore(view ExploreView) templ.Component {
	return component("explore.html.tmpl", view)
}

// Filter renders the tag filter panel fragment.
func Filter(view FilterView) templ.Component {
	return component("filter.html.tmpl", view)
}

// Results renders the filtered item grid fragment.
func Results(view ResultsView) templ.Component {
	return component("results.html.tmpl", view)
}

// ItemCard renders a single item card fragment.
func ItemCard(view ItemView) templ.Component {
	return component("item_card.html.tmpl", view)
}

// Suggestions renders the tag suggestion list for an item's add-tag
// input.
func Suggestions(view SuggestionsView) templ.Component {
	return component("suggestions.html.tmpl", view)
}

// Banner renders a notice fragment targeted at the page banner slot.
func Banner(view NoticeView) templ.Component {
	return component("banner.html.tmpl", view)
}

// ErrorPage renders a full error page body.
func ErrorPage(view ErrorView) templ.Component {
	return component("error.html.tmpl", view)
}
