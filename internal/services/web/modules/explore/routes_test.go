package explore

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/crackedpillars/chisel/internal/authn"
	"github.com/crackedpillars/chisel/internal/content"
	module "github.com/crackedpillars/chisel/internal/services/web/module"
)

func mountModule(t *testing.T, fake *fakeContent, identity authn.Identity) http.Handler {
	t.Helper()
	deps := module.Dependencies{
		Content: fake,
		ResolveIdentity: func(*http.Request) authn.Identity {
			return identity
		},
	}
	mount, err := New().Mount(deps)
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	return mount.Handler
}

func editor() authn.Identity {
	return authn.Identity{Email: "editor@example.com", Role: authn.RoleEditor, Token: "jwt-token"}
}

func TestExplorePageListsItems(t *testing.T) {
	t.Parallel()

	fake := newFakeContent(sword())
	fake.tags = []content.Tag{{Name: "fire", Description: "Deals burn damage"}}
	handler := mountModule(t, fake, authn.Identity{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/explore", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Fine Sword") {
		t.Error("page missing item name")
	}
	if !strings.Contains(body, "Deals burn damage") {
		t.Error("page missing tag catalog description")
	}
	if strings.Contains(body, "tag-add") {
		t.Error("anonymous viewer should not see edit controls")
	}
}

func TestExplorePageShowsEditControlsForEditor(t *testing.T) {
	t.Parallel()

	handler := mountModule(t, newFakeContent(sword()), editor())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/explore", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "tag-add") {
		t.Error("editor should see edit controls")
	}
	if !strings.Contains(body, `class="htmx-indicator tag-updating"`) {
		t.Error("edit controls should carry an in-flight indicator")
	}
	if !strings.Contains(body, "Updating tags...") {
		t.Error("indicator missing its copy")
	}
}

func TestExplorePageHidesUpdateIndicatorForAnonymous(t *testing.T) {
	t.Parallel()

	handler := mountModule(t, newFakeContent(sword()), authn.Identity{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/explore", nil))

	if strings.Contains(rec.Body.String(), "Updating tags...") {
		t.Error("read-only cards should not render the edit indicator")
	}
}

func TestExplorePageRendersFilterSubmit(t *testing.T) {
	t.Parallel()

	handler := mountModule(t, newFakeContent(sword()), authn.Identity{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/explore", nil))

	if !strings.Contains(rec.Body.String(), `class="filter-submit"`) {
		t.Error("filter form should render a submit button")
	}
}

func TestFilterRecommendsByCaseSensitivePrefix(t *testing.T) {
	t.Parallel()

	fake := newFakeContent(sword())
	fake.tags = []content.Tag{{Name: "fire"}, {Name: "frost"}, {Name: "Frenzy"}, {Name: "melee"}}
	handler := mountModule(t, fake, authn.Identity{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/explore/filter?query=fr", nil)
	req.Header.Set("HX-Request", "true")
	handler.ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, ">frost<") {
		t.Error("expected frost recommendation")
	}
	if strings.Contains(body, ">Frenzy<") {
		t.Error("prefix match must be case sensitive")
	}
	if strings.Contains(body, ">melee<") {
		t.Error("melee does not match the prefix")
	}
}

func TestFilterSelectRefreshesResultsOutOfBand(t *testing.T) {
	t.Parallel()

	staff := content.Item{Name: "Frost Staff", Slug: "frost-staff", Tags: []string{"frost"}, Kind: content.KindAbility}
	fake := newFakeContent(sword(), staff)
	fake.tags = []content.Tag{{Name: "fire"}, {Name: "frost"}}
	handler := mountModule(t, fake, authn.Identity{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/explore/filter?"+url.Values{"select": {"frost"}}.Encode(), nil)
	req.Header.Set("HX-Request", "true")
	handler.ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `hx-swap-oob="true"`) {
		t.Error("selection change should refresh results out of band")
	}
	if !strings.Contains(body, "Frost Staff") {
		t.Error("results should contain the matching ability")
	}
	if strings.Contains(body, "Fine Sword") {
		t.Error("results should exclude items without the selected tag")
	}
	if !strings.Contains(body, `name="selected" value="frost"`) {
		t.Error("selected tag should persist as a hidden input")
	}
}

func TestFilterClearResetsSelection(t *testing.T) {
	t.Parallel()

	fake := newFakeContent(sword())
	fake.tags = []content.Tag{{Name: "fire"}}
	handler := mountModule(t, fake, authn.Identity{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/explore/filter?selected=fire&clear=1", nil)
	req.Header.Set("HX-Request", "true")
	handler.ServeHTTP(rec, req)

	if strings.Contains(rec.Body.String(), `name="selected"`) {
		t.Error("clear should drop all selected tags")
	}
}

func TestAddTagRequiresAuthentication(t *testing.T) {
	t.Parallel()

	handler := mountModule(t, newFakeContent(sword()), authn.Identity{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/explore/items/fine-sword/tags/add", strings.NewReader("tag=frost"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got := rec.Header().Get("HX-Retarget"); got != "#banner" {
		t.Errorf("HX-Retarget = %q, want #banner", got)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Authentication required to update tags") {
		t.Error("banner missing auth message")
	}
	if !strings.Contains(body, `aria-label="Close banner"`) {
		t.Error("banner must be dismissible")
	}
}

func TestAddTagForbiddenForViewer(t *testing.T) {
	t.Parallel()

	viewer := authn.Identity{Email: "viewer@example.com", Role: authn.RoleViewer, Token: "jwt-token"}
	handler := mountModule(t, newFakeContent(sword()), viewer)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/explore/items/fine-sword/tags/add", strings.NewReader("tag=frost"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestAddTagRendersCanonicalCard(t *testing.T) {
	t.Parallel()

	fake := newFakeContent(sword())
	handler := mountModule(t, fake, editor())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/explore/items/fine-sword/tags/add", strings.NewReader("tag=frost"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `id="card-items-fine-sword"`) {
		t.Error("response should be the item card fragment")
	}
	if !strings.Contains(body, "frost") {
		t.Error("card should show the newly added tag")
	}
	if len(fake.updates) != 1 {
		t.Fatalf("updates = %d, want 1", len(fake.updates))
	}
}

func TestRemoveTagFailureKeepsBanner(t *testing.T) {
	t.Parallel()

	fake := newFakeContent(sword())
	fake.updateErr = http.ErrHandlerTimeout
	handler := mountModule(t, fake, editor())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/explore/items/fine-sword/tags/remove", strings.NewReader("tag=fire"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if got := rec.Header().Get("HX-Retarget"); got != "#banner" {
		t.Errorf("HX-Retarget = %q, want #banner", got)
	}
	if !strings.Contains(rec.Body.String(), "Failed to update tags") {
		t.Error("banner missing update failure message")
	}
}

func TestSuggestMatchesCaseInsensitively(t *testing.T) {
	t.Parallel()

	fake := newFakeContent(sword())
	fake.tags = []content.Tag{{Name: "Frenzy"}, {Name: "frost"}}
	handler := mountModule(t, fake, editor())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/explore/items/fine-sword/suggest?tag=FR", nil)
	req.Header.Set("HX-Request", "true")
	handler.ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "Frenzy") || !strings.Contains(body, "frost") {
		t.Errorf("expected both catalog matches, got %q", body)
	}
}

func TestUnknownCollectionIsNotFound(t *testing.T) {
	t.Parallel()

	handler := mountModule(t, newFakeContent(sword()), editor())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/explore/spells/fire-bolt/tags/add", strings.NewReader("tag=frost"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
