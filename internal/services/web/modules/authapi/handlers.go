package authapi

import (
	"encoding/json"
	"net/http"
	"strings"

	module "github.com/crackedpillars/chisel/internal/services/web/module"
	"github.com/crackedpillars/chisel/internal/services/web/platform/flash"
	"github.com/crackedpillars/chisel/internal/services/web/platform/httpx"
	"github.com/crackedpillars/chisel/internal/services/web/platform/i18n"
	"github.com/crackedpillars/chisel/internal/services/web/platform/sessioncookie"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

type loginRequest struct {
	AccessToken string `json:"access_token"`
}

type identityResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
	Role          string `json:"role,omitempty"`
}

// handleLogin exchanges a Google access token for a backend session.
// The session JWT never reaches page scripts; it travels only in the
// HTTP-only cookie.
func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if h.deps.Auth == nil {
		_ = httpx.WriteJSONError(w, http.StatusServiceUnavailable, "auth backend unavailable")
		return
	}
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, "invalid login payload")
		return
	}
	req.AccessToken = strings.TrimSpace(req.AccessToken)
	if req.AccessToken == "" {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, "missing access token")
		return
	}
	ctx := r.Context()
	profile, err := h.deps.Auth.FetchGoogleProfile(ctx, req.AccessToken)
	if err != nil {
		h.logf("login: google profile fetch failed: %v", err)
		_ = httpx.WriteJSONError(w, http.StatusUnauthorized, "sign-in rejected")
		return
	}
	identity, err := h.deps.Auth.Login(ctx, profile)
	if err != nil {
		h.logf("login: backend login failed: %v", err)
		_ = httpx.WriteJSONError(w, http.StatusBadGateway, "sign-in failed")
		return
	}
	sessioncookie.Write(w, identity.Token)
	_ = httpx.WriteJSON(w, http.StatusOK, identityResponse{
		Authenticated: true,
		Email:         identity.Email,
		Role:          string(identity.Role),
	})
}

// handleVerify reports the current session state. An invalid or
// expired session clears the cookie so the browser stops resending it.
func (h handlers) handleVerify(w http.ResponseWriter, r *http.Request) {
	identity := h.deps.ResolveRequestIdentity(r)
	if !identity.SignedIn() {
		if _, ok := sessioncookie.Read(r); ok {
			sessioncookie.Clear(w)
		}
		_ = httpx.WriteJSON(w, http.StatusUnauthorized, identityResponse{})
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, identityResponse{
		Authenticated: true,
		Email:         identity.Email,
		Role:          string(identity.Role),
	})
}

// handleLogout clears the session cookie. The backend logout call is
// best effort; the cookie is gone either way. A flash notice confirms
// the sign-out on the next full-page render.
func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if h.deps.Auth != nil {
		if err := h.deps.Auth.Logout(r.Context()); err != nil {
			h.logf("logout: backend call failed: %v", err)
		}
	}
	sessioncookie.Clear(w)
	flash.Write(w, r, flash.Notice{
		Kind:    flash.KindInfo,
		Message: i18n.ForRequest(r).NoticeSignedOut,
	})
	_ = httpx.WriteJSON(w, http.StatusOK, identityResponse{})
}

func (h handlers) logf(format string, args ...any) {
	if h.deps.Logger == nil {
		return
	}
	h.deps.Logger.Printf(format, args...)
}
