package templates

import (
	"html/template"

	"github.com/crackedpillars/chisel/internal/authn"
	"github.com/crackedpillars/chisel/internal/content"
	"github.com/crackedpillars/chisel/internal/services/web/platform/i18n"
)

// AuthView drives the sign-in section of the layout header.
type AuthView struct {
	SignedIn       bool
	Email          string
	Role           string
	GoogleClientID string
}

// NewAuthView projects a resolved identity into the layout header.
func NewAuthView(id authn.Identity, googleClientID string) AuthView {
	return AuthView{
		SignedIn:       id.SignedIn(),
		Email:          id.Email,
		Role:           string(id.Role),
		GoogleClientID: googleClientID,
	}
}

// NoticeView is a single banner message.
type NoticeView struct {
	Kind    string
	Message string
}

// LayoutView is the full page chrome around rendered content.
type LayoutView struct {
	Title   string
	Lang    string
	Copy    i18n.Copy
	Auth    AuthView
	Notice  *NoticeView
	Content template.HTML
}

// HomeView drives the landing page.
type HomeView struct {
	Copy i18n.Copy
}

// FilterView drives the tag filter panel. Recommended tags follow
// catalog order and exclude already-selected tags.
type FilterView struct {
	Query       string
	Selected    []string
	Recommended []string
	Copy        i18n.Copy
}

// ItemView drives one item card. KindPath is the backend collection
// segment used to build edit endpoints for this card.
type ItemView struct {
	Name      string
	Slug      string
	KindPath  string
	KindLabel string
	WikiURL   string
	Tags      []string
	Editable  bool
	Copy      i18n.Copy
}

// NewItemView projects a content item into a card, with edit controls
// shown only for privileged viewers.
func NewItemView(item content.Item, editable bool, copy i18n.Copy) ItemView {
	label := copy.KindItem
	if item.Kind == content.KindAbility {
		label = copy.KindAbility
	}
	return ItemView{
		Name:      item.Name,
		Slug:      item.Slug,
		KindPath:  item.Kind.Collection(),
		KindLabel: label,
		WikiURL:   item.WikiURL,
		Tags:      item.Tags,
		Editable:  editable,
		Copy:      copy,
	}
}

// ResultsView drives the filtered item grid. OOB marks the fragment
// for an out-of-band swap so filter responses can refresh the grid in
// the same exchange.
type ResultsView struct {
	Items []ItemView
	Copy  i18n.Copy
	OOB   bool
}

// NewResultsView projects content items into cards.
func NewResultsView(items []content.Item, editable bool, copy i18n.Copy) ResultsView {
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, NewItemView(item, editable, copy))
	}
	return ResultsView{Items: views, Copy: copy}
}

// ExploreView drives the full explore page.
type ExploreView struct {
	Filter  FilterView
	Results ResultsView
	Tags    []content.Tag
	Copy    i18n.Copy
}

// SuggestionsView drives the tag suggestion list below an item's
// add-tag input.
type SuggestionsView struct {
	KindPath    string
	Slug        string
	Suggestions []string
}

// ErrorView drives the standalone error page.
type ErrorView struct {
	Status  int
	Message string
	Copy    i18n.Copy
}
