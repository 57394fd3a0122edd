package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsHTTPS(t *testing.T) {
	t.Parallel()

	plain := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	if IsHTTPS(plain) {
		t.Error("plain request treated as HTTPS")
	}

	secure := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	secure.TLS = &tls.ConnectionState{}
	if !IsHTTPS(secure) {
		t.Error("TLS request not treated as HTTPS")
	}
}

func TestForwardedProtoRequiresPolicy(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")

	if IsHTTPS(req) {
		t.Error("forwarded proto honored without policy opt-in")
	}
	if !IsHTTPSWithPolicy(req, SchemePolicy{TrustForwardedProto: true}) {
		t.Error("forwarded proto ignored despite policy opt-in")
	}
}
