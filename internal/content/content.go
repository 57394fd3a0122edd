// Package content provides the read-through client for the remote
// content API. The backend owns all persistent data; this package holds
// only transient copies that may become stale after edits by other
// users, which is why mutations are followed by a canonical refetch.
package content

import "strings"

// Kind distinguishes the two entity collections the backend exposes.
type Kind string

const (
	KindItem    Kind = "item"
	KindAbility Kind = "ability"
)

// Collection returns the backend path segment for the kind.
func (k Kind) Collection() string {
	if k == KindAbility {
		return "abilities"
	}
	return "items"
}

// ParseKind folds a raw kind string into a closed Kind value.
func ParseKind(raw string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "item":
		return KindItem, true
	case "ability":
		return KindAbility, true
	default:
		return "", false
	}
}

// ParseCollection folds a backend collection path segment into a Kind.
func ParseCollection(raw string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "items":
		return KindItem, true
	case "abilities":
		return KindAbility, true
	default:
		return "", false
	}
}

// Item is a game item or ability. Tags preserve insertion order for
// display.
type Item struct {
	Name    string   `json:"name"`
	Slug    string   `json:"slug"`
	Tags    []string `json:"tags"`
	WikiURL string   `json:"wiki_url"`
	Kind    Kind     `json:"-"`
}

// HasTag reports whether the item already carries the tag.
func (i Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Tag describes one entry of the tag catalog. Immutable from the
// client's perspective.
type Tag struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
