// Package tagfilter implements the incremental tag search widget state.
// Filtering runs purely against the in-memory catalog; no network call
// ever originates here. The item-list refresh on submit is delegated to
// the caller.
package tagfilter

import "strings"

// Widget narrows a fixed tag catalog by free-text prefix while keeping
// an ordered selection. The catalog is immutable for the widget's
// lifetime.
type Widget struct {
	catalog  []string
	query    string
	selected []string
}

// New builds a widget over the candidate catalog.
func New(catalog []string) *Widget {
	return &Widget{catalog: append([]string(nil), catalog...)}
}

// SetQuery replaces the free-text query.
func (w *Widget) SetQuery(query string) {
	w.query = query
}

// Query returns the current free-text query.
func (w *Widget) Query() string {
	return w.query
}

// Select appends a tag to the selection. Duplicates are no-ops; the
// selection keeps insertion order.
func (w *Widget) Select(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return
	}
	for _, existing := range w.selected {
		if existing == tag {
			return
		}
	}
	w.selected = append(w.selected, tag)
}

// Deselect removes a tag from the selection; absent tags are no-ops.
func (w *Widget) Deselect(tag string) {
	for i, existing := range w.selected {
		if existing == tag {
			w.selected = append(w.selected[:i], w.selected[i+1:]...)
			return
		}
	}
}

// Clear resets the selection and query, restoring the full catalog as
// recommendations.
func (w *Widget) Clear() {
	w.selected = nil
	w.query = ""
}

// Selected returns the ordered selection.
func (w *Widget) Selected() []string {
	return append([]string(nil), w.selected...)
}

// Recommended returns catalog tags that start with the current query
// (case-sensitive exact prefix) and are not yet selected, in catalog
// order.
func (w *Widget) Recommended() []string {
	recommended := make([]string, 0, len(w.catalog))
	for _, tag := range w.catalog {
		if !strings.HasPrefix(tag, w.query) {
			continue
		}
		if w.isSelected(tag) {
			continue
		}
		recommended = append(recommended, tag)
	}
	return recommended
}

func (w *Widget) isSelected(tag string) bool {
	for _, existing := range w.selected {
		if existing == tag {
			return true
		}
	}
	return false
}

// SuggestForItem returns catalog tags usable as inline-edit suggestions
// for an item: everything not already carried by the item, narrowed by
// a case-insensitive prefix. An empty prefix suggests all unused tags.
func SuggestForItem(catalog []string, itemTags []string, prefix string) []string {
	used := make(map[string]struct{}, len(itemTags))
	for _, tag := range itemTags {
		used[tag] = struct{}{}
	}
	lowered := strings.ToLower(strings.TrimSpace(prefix))
	suggestions := make([]string, 0, len(catalog))
	for _, tag := range catalog {
		if _, ok := used[tag]; ok {
			continue
		}
		if lowered != "" && !strings.HasPrefix(strings.ToLower(tag), lowered) {
			continue
		}
		suggestions = append(suggestions, tag)
	}
	return suggestions
}
