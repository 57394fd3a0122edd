package explore

import (
	"context"
	"strings"

	"github.com/crackedpillars/chisel/internal/content"
	module "github.com/crackedpillars/chisel/internal/services/web/module"
	apperrors "github.com/crackedpillars/chisel/internal/services/web/platform/errors"
	"github.com/crackedpillars/chisel/internal/tagfilter"
)

type service struct {
	content module.ContentClient
}

func newService(client module.ContentClient) service {
	return service{content: client}
}

// catalog returns the tag catalog in backend order. A backend failure
// degrades to an empty catalog so pages still render.
func (s service) catalog(ctx context.Context) []content.Tag {
	if s.content == nil {
		return nil
	}
	tags, err := s.content.Tags(ctx)
	if err != nil {
		return nil
	}
	return tags
}

func catalogNames(tags []content.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}

// results resolves the item list for the current selection. An empty
// selection lists everything.
func (s service) results(ctx context.Context, selected []string) []content.Item {
	if s.content == nil {
		return nil
	}
	items, err := s.content.FilterByTags(ctx, selected)
	if err != nil {
		return nil
	}
	return items
}

// suggest returns catalog tags matching the prefix that the item does
// not already carry.
func (s service) suggest(ctx context.Context, kind content.Kind, slug, prefix string) ([]string, error) {
	if s.content == nil {
		return nil, apperrors.E(apperrors.KindUnavailable, "content backend unavailable")
	}
	item, err := s.content.Get(ctx, kind, slug)
	if err != nil {
		return nil, apperrors.E(apperrors.KindNotFound, "")
	}
	names := catalogNames(s.catalog(ctx))
	return tagfilter.SuggestForItem(names, item.Tags, prefix), nil
}

// addTag attaches a tag to an item and returns the canonical item
// state afterwards. Adding an already-present tag is a no-op that
// skips the write entirely.
func (s service) addTag(ctx context.Context, kind content.Kind, slug, tag, token string) (content.Item, error) {
	return s.mutateTags(ctx, kind, slug, tag, token, true)
}

// removeTag detaches a tag, mirroring addTag's no-op and refetch
// contract.
func (s service) removeTag(ctx context.Context, kind content.Kind, slug, tag, token string) (content.Item, error) {
	return s.mutateTags(ctx, kind, slug, tag, token, false)
}

func (s service) mutateTags(ctx context.Context, kind content.Kind, slug, tag, token string, add bool) (content.Item, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return content.Item{}, apperrors.E(apperrors.KindInvalidInput, "empty tag")
	}
	if s.content == nil {
		return content.Item{}, apperrors.E(apperrors.KindUnavailable, "content backend unavailable")
	}
	item, err := s.content.Get(ctx, kind, slug)
	if err != nil {
		return content.Item{}, apperrors.E(apperrors.KindNotFound, "")
	}
	if item.HasTag(tag) == add {
		return item, nil
	}
	next := nextTagSet(item.Tags, tag, add)
	if err := s.content.UpdateTags(ctx, kind, slug, next, token); err != nil {
		return content.Item{}, apperrors.E(apperrors.KindUnavailable, "tag update rejected")
	}
	canonical, err := s.content.Get(ctx, kind, slug)
	if err != nil {
		return content.Item{}, apperrors.E(apperrors.KindUnavailable, "refetch after update failed")
	}
	return canonical, nil
}

func nextTagSet(tags []string, tag string, add bool) []string {
	next := make([]string, 0, len(tags)+1)
	for _, t := range tags {
		if !add && t == tag {
			continue
		}
		next = append(next, t)
	}
	if add {
		next = append(next, tag)
	}
	return next
}
