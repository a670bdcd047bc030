package blog

import (
	"net/http"
	"net/http/httptest"
	"testing"

	module "github.com/trainingken/site/internal/services/web/module"
	"github.com/trainingken/site/internal/services/web/routepath"
)

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(module.Dependencies{}))
}

func TestRegisterRoutesPathAndMethodContracts(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(module.Dependencies{Content: &fakeContent{post: contentFixture()}}))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{name: "index get", method: http.MethodGet, path: routepath.Blog, wantStatus: http.StatusOK},
		{name: "index head", method: http.MethodHead, path: routepath.Blog, wantStatus: http.StatusOK},
		{name: "post get", method: http.MethodGet, path: routepath.BlogPost("a"), wantStatus: http.StatusOK},
		{name: "nested path", method: http.MethodGet, path: routepath.BlogPrefix + "a/b", wantStatus: http.StatusNotFound},
		{name: "bare prefix redirects", method: http.MethodGet, path: routepath.BlogRoot, wantStatus: http.StatusMovedPermanently},
		{name: "bare prefix post rejected", method: http.MethodPost, path: routepath.BlogRoot, wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, HEAD"},
		{name: "index post rejected", method: http.MethodPost, path: routepath.Blog, wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, HEAD"},
		{name: "post put rejected", method: http.MethodPut, path: routepath.BlogPost("a"), wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, HEAD"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if tc.wantAllow != "" {
				if got := rr.Header().Get("Allow"); got != tc.wantAllow {
					t.Fatalf("Allow = %q, want %q", got, tc.wantAllow)
				}
			}
		})
	}
}

func TestBareBlogPathRedirectsPermanentlyWithQuery(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(module.Dependencies{Content: &fakeContent{}}))

	for path, want := range map[string]string{
		routepath.BlogRoot:             routepath.BlogPrefix,
		routepath.BlogRoot + "?lang=en": routepath.BlogPrefix + "?lang=en",
	} {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusMovedPermanently {
			t.Fatalf("GET %s status = %d, want %d", path, rr.Code, http.StatusMovedPermanently)
		}
		if got := rr.Header().Get("Location"); got != want {
			t.Fatalf("GET %s Location = %q, want %q", path, got, want)
		}
	}
}
