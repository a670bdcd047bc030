package home

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
	registerRoutes(mux, newHandlers(module.Dependencies{Content: &fakeContent{}}))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
		wantBody   string
	}{
		{name: "home get", method: http.MethodGet, path: routepath.Root, wantStatus: http.StatusOK},
		{name: "home head", method: http.MethodHead, path: routepath.Root, wantStatus: http.StatusOK},
		{name: "health", method: http.MethodGet, path: routepath.Health, wantStatus: http.StatusOK, wantBody: "OK"},
		{name: "unknown path", method: http.MethodGet, path: "/missing", wantStatus: http.StatusNotFound},
		{name: "home post rejected", method: http.MethodPost, path: routepath.Root, wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, HEAD"},
		{name: "health delete rejected", method: http.MethodDelete, path: routepath.Health, wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, HEAD"},
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
			if tc.wantBody != "" {
				if got := rr.Body.String(); got != tc.wantBody {
					t.Fatalf("body = %q, want %q", got, tc.wantBody)
				}
			}
		})
	}
}
