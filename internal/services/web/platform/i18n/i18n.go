// Package i18n resolves localized UI copy for web pages.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

// ResolveTag picks the best supported language tag for the request's
// Accept-Language header, defaulting to English.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return language.AmericanEnglish
	}
	header := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if header == "" {
		return language.AmericanEnglish
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return language.AmericanEnglish
	}
	_, index, _ := matcher.Match(tags...)
	return supported[index]
}

// Copy holds translatable copy for the site.
type Copy struct {
	SiteTitle          string
	Welcome            string
	ExploreLink        string
	ExploreTitle       string
	ExploreTagline     string
	FiltersHeading     string
	FilterPlaceholder  string
	FilterSubmit       string
	ClearTags          string
	TagsHelp           string
	TagsHelpIntro      string
	NoTagsAvailable    string
	NoResults          string
	WikiLink           string
	KindItem           string
	KindAbility        string
	SignIn             string
	SignOut            string
	AddTagPlaceholder  string
	AddTag             string
	RemoveTag          string
	UpdatingTags       string
	NoticeSignedOut    string
	ErrSignInFailed    string
	ErrSignInCancelled string
	ErrAuthRequired    string
	ErrUpdateTags      string
	ErrPageNotFound    string
	ErrInternal        string
}

// ForTag returns localized copy for the provided language tag.
func ForTag(tag language.Tag) Copy {
	loc := message.NewPrinter(normalizeTag(tag))
	return Copy{
		SiteTitle:          localizeWithFallback(loc, "site.title", "Cracked Pillars"),
		Welcome:            localizeWithFallback(loc, "home.welcome", "Welcome to Cracked Pillars"),
		ExploreLink:        localizeWithFallback(loc, "home.explore", "Explore"),
		ExploreTitle:       localizeWithFallback(loc, "explore.title", "Explore Items"),
		ExploreTagline:     localizeWithFallback(loc, "explore.tagline", "Discover and filter items and abilities from Pillars of Eternity II: Deadfire"),
		FiltersHeading:     localizeWithFallback(loc, "explore.filters", "Filters"),
		FilterPlaceholder:  localizeWithFallback(loc, "explore.filter_placeholder", "Start typing a tag..."),
		FilterSubmit:       localizeWithFallback(loc, "explore.filter_submit", "Filter"),
		ClearTags:          localizeWithFallback(loc, "explore.clear_tags", "Clear tags"),
		TagsHelp:           localizeWithFallback(loc, "explore.tags_help", "Tags Help"),
		TagsHelpIntro:      localizeWithFallback(loc, "explore.tags_help_intro", "Tags help you filter and find specific types of items and abilities. Each tag represents a category or property that items can have."),
		NoTagsAvailable:    localizeWithFallback(loc, "explore.no_tags", "No tags available at the moment."),
		NoResults:          localizeWithFallback(loc, "explore.no_results", "No items match the selected tags."),
		WikiLink:           localizeWithFallback(loc, "explore.wiki", "Wiki"),
		KindItem:           localizeWithFallback(loc, "explore.kind_item", "Item"),
		KindAbility:        localizeWithFallback(loc, "explore.kind_ability", "Ability"),
		SignIn:             localizeWithFallback(loc, "auth.sign_in", "Sign in"),
		SignOut:            localizeWithFallback(loc, "auth.sign_out", "Sign out"),
		AddTagPlaceholder:  localizeWithFallback(loc, "edit.add_tag_placeholder", "Add new tag..."),
		AddTag:             localizeWithFallback(loc, "edit.add_tag", "Add"),
		RemoveTag:          localizeWithFallback(loc, "edit.remove_tag", "Remove tag"),
		UpdatingTags:       localizeWithFallback(loc, "edit.updating", "Updating tags..."),
		NoticeSignedOut:    localizeWithFallback(loc, "auth.signed_out", "You have been signed out."),
		ErrSignInFailed:    localizeWithFallback(loc, "error.sign_in_failed", "Failed to sign in. Please try again."),
		ErrSignInCancelled: localizeWithFallback(loc, "error.sign_in_cancelled", "Sign-in was cancelled or failed. Please try again."),
		ErrAuthRequired:    localizeWithFallback(loc, "error.auth_required", "Authentication required to update tags"),
		ErrUpdateTags:      localizeWithFallback(loc, "error.update_tags", "Failed to update tags"),
		ErrPageNotFound:    localizeWithFallback(loc, "error.not_found", "Page not found"),
		ErrInternal:        localizeWithFallback(loc, "error.internal", "Something went wrong"),
	}
}

// ForRequest resolves localized copy straight from a request.
func ForRequest(r *http.Request) Copy {
	return ForTag(ResolveTag(r))
}

func normalizeTag(tag language.Tag) language.Tag {
	base, _ := tag.Base()
	portuguese, _ := language.Portuguese.Base()
	if base == portuguese {
		return language.BrazilianPortuguese
	}
	return language.AmericanEnglish
}

func localizeWithFallback(loc *message.Printer, key string, fallback string) string {
	if loc != nil {
		value := strings.TrimSpace(loc.Sprintf(key))
		if value != "" && value != key {
			return value
		}
	}
	return fallback
}
