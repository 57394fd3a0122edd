package authn

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/crackedpillars/chisel/internal/platform/timeouts"
)

// Profile carries the verified Google user attributes forwarded to the
// backend login endpoint.
type Profile struct {
	Sub           string `json:"sub"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

// Client talks to the backend auth endpoints and the OAuth provider's
// user-info endpoint. All persistent auth state lives backend-side.
type Client struct {
	baseURL     string
	userInfoURL string
	httpClient  *http.Client
	tracer      trace.Tracer
	now         func() time.Time
}

// NewClient builds an auth client for the given backend base URL and
// provider user-info URL. A nil httpClient falls back to a default
// client with the shared backend request timeout.
func NewClient(baseURL, userInfoURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeouts.BackendRequest}
	}
	return &Client{
		baseURL:     strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		userInfoURL: strings.TrimSpace(userInfoURL),
		httpClient:  httpClient,
		tracer:      otel.Tracer("crackedpillars/authn"),
		now:         time.Now,
	}
}

// FetchGoogleProfile resolves verified profile attributes for a
// provider access token.
func (c *Client) FetchGoogleProfile(ctx context.Context, accessToken string) (Profile, error) {
	ctx, span := c.tracer.Start(ctx, "authn.FetchGoogleProfile")
	defer span.End()

	if strings.TrimSpace(accessToken) == "" {
		return Profile{}, errors.New("access token is required")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userInfoURL, nil)
	if err != nil {
		return Profile{}, fmt.Errorf("build user-info request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, "user-info request failed")
		return Profile{}, fmt.Errorf("fetch user info: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		span.SetStatus(codes.Error, "user-info rejected")
		return Profile{}, fmt.Errorf("user info status %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return Profile{}, fmt.Errorf("decode user info: %w", err)
	}
	if profile.Sub == "" {
		return Profile{}, errors.New("user info missing subject")
	}
	return profile, nil
}

// Login forwards a verified provider profile to the backend and returns
// the minted session identity.
func (c *Client) Login(ctx context.Context, profile Profile) (Identity, error) {
	ctx, span := c.tracer.Start(ctx, "authn.Login")
	defer span.End()

	payload, err := json.Marshal(profile)
	if err != nil {
		return Identity{}, fmt.Errorf("encode profile: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(payload))
	if err != nil {
		return Identity{}, fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, "login request failed")
		return Identity{}, fmt.Errorf("backend login: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		span.SetStatus(codes.Error, "login rejected")
		return Identity{}, fmt.Errorf("backend login status %d", resp.StatusCode)
	}

	var body struct {
		JWT   string `json:"jwt"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Identity{}, fmt.Errorf("decode login response: %w", err)
	}
	if strings.TrimSpace(body.JWT) == "" {
		return Identity{}, errors.New("backend login returned no token")
	}
	return Identity{Email: body.Email, Role: ParseRole(body.Role), Token: body.JWT}, nil
}

// Verify resolves an identity for a session token. Any failure, from
// transport errors to an expired token, yields anonymous (ok=false),
// never an error the page must surface.
func (c *Client) Verify(ctx context.Context, token string) (Identity, bool) {
	ctx, span := c.tracer.Start(ctx, "authn.Verify")
	defer span.End()

	token = strings.TrimSpace(token)
	if token == "" {
		return Identity{}, false
	}
	if TokenExpired(token, c.now()) {
		return Identity{}, false
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.SessionVerify)
	defer cancel()

	query := url.Values{}
	query.Set("auth_token", token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/verify?"+query.Encode(), nil)
	if err != nil {
		return Identity{}, false
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, "verify request failed")
		return Identity{}, false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Identity{}, false
	}

	var body struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Identity{}, false
	}
	return Identity{Email: body.Email, Role: ParseRole(body.Role), Token: token}, true
}

// Logout notifies the backend that the session ended. Best effort: the
// caller clears the cookie regardless.
func (c *Client) Logout(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "authn.Logout")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/logout", nil)
	if err != nil {
		return fmt.Errorf("build logout request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend logout: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("backend logout status %d", resp.StatusCode)
	}
	return nil
}
