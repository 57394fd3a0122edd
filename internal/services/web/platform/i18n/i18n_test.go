package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagDefaultsToEnglish(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := ResolveTag(req); got != language.AmericanEnglish {
		t.Fatalf("ResolveTag() = %v", got)
	}

	req.Header.Set("Accept-Language", "not a header ;;;")
	if got := ResolveTag(req); got != language.AmericanEnglish {
		t.Fatalf("ResolveTag(malformed) = %v", got)
	}
}

func TestResolveTagMatchesPortuguese(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en;q=0.8")
	if got := ResolveTag(req); got != language.BrazilianPortuguese {
		t.Fatalf("ResolveTag() = %v", got)
	}
}

func TestForTagFallsBackToEnglishCopy(t *testing.T) {
	t.Parallel()

	copy := ForTag(language.AmericanEnglish)
	if copy.SiteTitle != "Cracked Pillars" {
		t.Fatalf("SiteTitle = %q", copy.SiteTitle)
	}
	if copy.ErrSignInFailed == "" || copy.ErrAuthRequired == "" {
		t.Fatal("error copy missing")
	}
}
