package home

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/trainingken/site/internal/content"
	module "github.com/trainingken/site/internal/services/web/module"
	"github.com/trainingken/site/internal/services/web/routepath"
)

func TestModuleIDReturnsHome(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "home" {
		t.Fatalf("ID() = %q, want %q", got, "home")
	}
}

func TestMountRequiresContent(t *testing.T) {
	t.Parallel()

	if _, err := New().Mount(module.Dependencies{}); err == nil {
		t.Fatalf("expected error without content service")
	}
}

func TestMountServesHomepage(t *testing.T) {
	t.Parallel()

	fake := &fakeContent{view: content.HomeView{
		Hero:  content.Hero{Title: "阿Ken教練", Image: content.Image{URL: "https://cdn.example/hero.jpg"}},
		Posts: []content.PostSummary{{Title: "第一篇", Slug: "first", Excerpt: "..."}},
	}}
	mount, err := New().Mount(module.Dependencies{Content: fake, Site: module.Site{BookingURL: "https://forms.example"}})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.Root {
		t.Fatalf("Prefix = %q, want %q", mount.Prefix, routepath.Root)
	}

	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Root, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if fake.calls.Load() != 1 {
		t.Fatalf("Home calls = %d, want 1", fake.calls.Load())
	}
	body := rr.Body.String()
	for _, want := range []string{
		"<h1 class=\"hero-title\">阿Ken教練</h1>",
		`id="blog"`,
		`href="/blog/first"`,
		`<meta property="og:image" content="https://cdn.example/hero.jpg">`,
		`href="https://forms.example"`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}

func TestMountServesEnglishWhenRequested(t *testing.T) {
	t.Parallel()

	mount, err := New().Mount(module.Dependencies{Content: &fakeContent{}})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, routepath.Root, nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	mount.Handler.ServeHTTP(rr, req)
	body := rr.Body.String()
	if !strings.Contains(body, `<html lang="en-US">`) || !strings.Contains(body, ">About</a>") {
		t.Fatalf("body not localized to English: %q", body)
	}
}
