package pagerender

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"

	module "github.com/trainingken/site/internal/services/web/module"
	webtemplates "github.com/trainingken/site/internal/services/web/templates"
)

func TestChromeResolvesLanguageAndPath(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/blog/?lang=en", nil)
	rr := httptest.NewRecorder()
	pc := Chrome(rr, req, module.Site{BookingURL: "https://forms.example"})
	if pc.Lang != "en-US" {
		t.Fatalf("Lang = %q, want en-US", pc.Lang)
	}
	if pc.AltLang != "zh-TW" {
		t.Fatalf("AltLang = %q, want zh-TW", pc.AltLang)
	}
	if pc.CurrentPath != "/blog/" {
		t.Fatalf("CurrentPath = %q, want /blog/", pc.CurrentPath)
	}
	if pc.Site.BookingURL != "https://forms.example" {
		t.Fatalf("Site = %+v", pc.Site)
	}
	if pc.Year < 2024 {
		t.Fatalf("Year = %d", pc.Year)
	}
	if cookies := rr.Result().Cookies(); len(cookies) != 1 || cookies[0].Value != "en-US" {
		t.Fatalf("cookies = %v, want persisted language", cookies)
	}
}

func TestChromeDefaultsToTraditionalChinese(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	pc := Chrome(rr, req, module.Site{})
	if pc.Lang != "zh-TW" || pc.AltLang != "en-US" {
		t.Fatalf("Lang/AltLang = %q/%q, want zh-TW/en-US", pc.Lang, pc.AltLang)
	}
	if cookies := rr.Result().Cookies(); len(cookies) != 0 {
		t.Fatalf("cookies = %v, want none", cookies)
	}
}

func TestWritePageRendersLayoutWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	pc := Chrome(rr, req, module.Site{})
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p id="page-body">hello</p>`)
		return err
	})
	err := WritePage(rr, req, pc, Page{
		Meta:       webtemplates.PageMeta{Title: "測試"},
		StatusCode: http.StatusAccepted,
		Body:       body,
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}
	got := rr.Body.String()
	if !strings.Contains(got, `<p id="page-body">hello</p>`) || !strings.Contains(got, "<title>測試 | Ken教練-柏瑋</title>") {
		t.Fatalf("body = %q", got)
	}
}

func TestWritePageDefaultsStatusAndBody(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	if err := WritePage(rr, req, webtemplates.PageContext{}, Page{}); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestWritePageLeavesResponseUntouchedOnRenderError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	boom := errors.New("boom")
	body := templ.ComponentFunc(func(context.Context, io.Writer) error { return boom })
	if err := WritePage(rr, req, webtemplates.PageContext{}, Page{Body: body}); !errors.Is(err, boom) {
		t.Fatalf("WritePage() error = %v, want %v", err, boom)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("body written on failure: %q", rr.Body.String())
	}
}
