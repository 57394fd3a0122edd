package web

import (
	"context"
	"net/http"
	"sync"

	"github.com/crackedpillars/chisel/internal/authn"
	"github.com/crackedpillars/chisel/internal/services/web/platform/httpx"
	"github.com/crackedpillars/chisel/internal/services/web/platform/sessioncookie"
)

// SessionVerifier is the narrow auth surface needed for cookie
// verification.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (authn.Identity, bool)
}

type requestIdentityState struct {
	identityOnce sync.Once
	identity     authn.Identity
}

type requestIdentityStateKey struct{}

// sessionResolver validates session cookies and resolves the viewer
// identity, failing closed on any verification problem.
type sessionResolver struct {
	verifier SessionVerifier
}

func newSessionResolver(verifier SessionVerifier) sessionResolver {
	return sessionResolver{verifier: verifier}
}

func (r sessionResolver) resolveIdentityUncached(req *http.Request) authn.Identity {
	if req == nil || r.verifier == nil {
		return authn.Identity{}
	}
	token, ok := sessioncookie.Read(req)
	if !ok {
		return authn.Identity{}
	}
	identity, ok := r.verifier.Verify(req.Context(), token)
	if !ok {
		return authn.Identity{}
	}
	return identity
}

func (r sessionResolver) resolveIdentity(request *http.Request) authn.Identity {
	if state := requestIdentityStateFromRequest(request); state != nil {
		state.identityOnce.Do(func() {
			state.identity = r.resolveIdentityUncached(request)
		})
		return state.identity
	}
	return r.resolveIdentityUncached(request)
}

// withRequestIdentityState seeds per-request memoization so the layout
// and module handlers share a single backend verification.
func withRequestIdentityState() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r == nil {
				next.ServeHTTP(w, r)
				return
			}
			state := &requestIdentityState{}
			ctx := context.WithValue(r.Context(), requestIdentityStateKey{}, state)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func requestIdentityStateFromRequest(r *http.Request) *requestIdentityState {
	if r == nil {
		return nil
	}
	state, _ := r.Context().Value(requestIdentityStateKey{}).(*requestIdentityState)
	return state
}
