// Package module defines the web module contract shared by the server
// and its feature modules.
package module

import (
	"context"
	"log"
	"net/http"

	"github.com/crackedpillars/chisel/internal/authn"
	"github.com/crackedpillars/chisel/internal/content"
)

// ContentClient is the narrow backend content surface modules consume.
type ContentClient interface {
	AllItems(ctx context.Context) ([]content.Item, error)
	Tags(ctx context.Context) ([]content.Tag, error)
	FilterByTags(ctx context.Context, tags []string) ([]content.Item, error)
	Get(ctx context.Context, kind content.Kind, slug string) (content.Item, error)
	UpdateTags(ctx context.Context, kind content.Kind, slug string, tags []string, token string) error
}

// AuthClient is the narrow backend auth surface modules consume.
type AuthClient interface {
	FetchGoogleProfile(ctx context.Context, accessToken string) (authn.Profile, error)
	Login(ctx context.Context, profile authn.Profile) (authn.Identity, error)
	Logout(ctx context.Context) error
}

// ResolveIdentity resolves the verified viewer identity for a request.
// Anonymous requests yield a zero identity. Resolution is memoized per
// request so the layout and module handlers share one backend verify.
type ResolveIdentity func(*http.Request) authn.Identity

// Dependencies carries shared services into module mounts.
type Dependencies struct {
	Logger          *log.Logger
	Content         ContentClient
	Auth            AuthClient
	GoogleClientID  string
	ResolveIdentity ResolveIdentity
}

// ResolveRequestIdentity resolves the viewer identity, tolerating a
// missing resolver.
func (d Dependencies) ResolveRequestIdentity(r *http.Request) authn.Identity {
	if d.ResolveIdentity == nil {
		return authn.Identity{}
	}
	return d.ResolveIdentity(r)
}

// SignInClientID exposes the OAuth client id for the page chrome.
func (d Dependencies) SignInClientID() string {
	return d.GoogleClientID
}

// Mount describes where a module's handler attaches to the root mux.
// A prefix ending in "/" claims the whole subtree; the server also
// registers the bare prefix so both spellings route.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is a self-contained web feature with its own routes.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
