package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/crackedpillars/chisel/internal/platform/timeouts"
)

// Client calls the backend content API over HTTP/JSON.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
}

// NewClient builds a content client for the backend base URL. A nil
// httpClient falls back to a default client with the shared backend
// request timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeouts.BackendRequest}
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
		tracer:     otel.Tracer("crackedpillars/content"),
	}
}

// AllItems merges the item and ability listings into one slice. A
// failing ability fetch still returns the items already loaded so a
// partial backend outage degrades instead of emptying the page.
func (c *Client) AllItems(ctx context.Context) ([]Item, error) {
	ctx, span := c.tracer.Start(ctx, "content.AllItems")
	defer span.End()

	items, err := c.listCollection(ctx, KindItem)
	if err != nil {
		span.SetStatus(codes.Error, "items fetch failed")
		return nil, err
	}
	abilities, err := c.listCollection(ctx, KindAbility)
	if err != nil {
		span.SetStatus(codes.Error, "abilities fetch failed")
		return items, nil
	}
	return append(items, abilities...), nil
}

func (c *Client) listCollection(ctx context.Context, kind Kind) ([]Item, error) {
	var entries []Item
	if err := c.getJSON(ctx, "/"+kind.Collection(), &entries); err != nil {
		return nil, fmt.Errorf("list %s: %w", kind.Collection(), err)
	}
	for i := range entries {
		entries[i].Kind = kind
	}
	return entries, nil
}

// Tags fetches the full tag catalog. The backend historically returned
// either bare names or name/description objects; both decode to Tags.
func (c *Client) Tags(ctx context.Context) ([]Tag, error) {
	ctx, span := c.tracer.Start(ctx, "content.Tags")
	defer span.End()

	var raw []json.RawMessage
	if err := c.getJSON(ctx, "/tags", &raw); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	tags := make([]Tag, 0, len(raw))
	for _, entry := range raw {
		var name string
		if err := json.Unmarshal(entry, &name); err == nil {
			tags = append(tags, Tag{Name: name})
			continue
		}
		var tag Tag
		if err := json.Unmarshal(entry, &tag); err != nil {
			return nil, fmt.Errorf("decode tag entry: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// FilterByTags runs the conjunctive tag search. An empty tag list is
// answered locally with the full listing; filter semantics downstream
// are "and" so every returned entity carries all requested tags.
func (c *Client) FilterByTags(ctx context.Context, tags []string) ([]Item, error) {
	if len(tags) == 0 {
		return c.AllItems(ctx)
	}

	ctx, span := c.tracer.Start(ctx, "content.FilterByTags")
	defer span.End()

	query := url.Values{}
	for _, tag := range tags {
		query.Add("tags", tag)
	}
	query.Set("filter_logic", "and")

	var entries []struct {
		Item
		Type string `json:"type"`
	}
	if err := c.getJSON(ctx, "/indexed?"+query.Encode(), &entries); err != nil {
		span.SetStatus(codes.Error, "indexed fetch failed")
		return nil, fmt.Errorf("filter by tags: %w", err)
	}
	results := make([]Item, 0, len(entries))
	for _, entry := range entries {
		item := entry.Item
		if kind, ok := ParseKind(entry.Type); ok {
			item.Kind = kind
		} else {
			item.Kind = KindItem
		}
		results = append(results, item)
	}
	return results, nil
}

// Get refetches a single entity by slug; the canonical read after a
// mutation.
func (c *Client) Get(ctx context.Context, kind Kind, slug string) (Item, error) {
	ctx, span := c.tracer.Start(ctx, "content.Get")
	defer span.End()

	var item Item
	if err := c.getJSON(ctx, "/"+kind.Collection()+"/"+url.PathEscape(slug), &item); err != nil {
		span.SetStatus(codes.Error, "get failed")
		return Item{}, fmt.Errorf("get %s %q: %w", kind, slug, err)
	}
	item.Kind = kind
	return item, nil
}

// UpdateTags replaces an entity's full tag set. The bearer token gates
// the call backend-side; the caller must not invoke this without one.
func (c *Client) UpdateTags(ctx context.Context, kind Kind, slug string, tags []string, token string) error {
	ctx, span := c.tracer.Start(ctx, "content.UpdateTags")
	defer span.End()

	payload, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}
	endpoint := c.baseURL + "/" + kind.Collection() + "/" + url.PathEscape(slug) + "/tags"
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build tag update request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, "tag update failed")
		return fmt.Errorf("update tags: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, "tag update rejected")
		return fmt.Errorf("update tags status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(target)
}
