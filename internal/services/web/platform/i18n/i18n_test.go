package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestResolveTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		cookie  string
		accept  string
		want    language.Tag
		persist bool
	}{
		{name: "default", url: "/", want: Default()},
		{name: "query", url: "/?lang=en", want: language.AmericanEnglish, persist: true},
		{name: "unsupported query", url: "/?lang=fr", accept: "en-GB", want: language.AmericanEnglish},
		{name: "cookie", url: "/", cookie: "en-US", accept: "zh-TW", want: language.AmericanEnglish},
		{name: "query beats cookie", url: "/?lang=zh-TW", cookie: "en-US", want: Default(), persist: true},
		{name: "accept language", url: "/", accept: "en-US,en;q=0.9", want: language.AmericanEnglish},
		{name: "accept traditional chinese", url: "/", accept: "zh-Hant-TW", want: Default()},
		{name: "accept unsupported", url: "/", accept: "de-DE", want: Default()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			tag, persist := ResolveTag(req)
			if tag != tc.want {
				t.Fatalf("tag = %v, want %v", tag, tc.want)
			}
			if persist != tc.persist {
				t.Fatalf("persist = %v, want %v", persist, tc.persist)
			}
		})
	}
}

func TestResolveLocalizerPersistsExplicitChoice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	loc, tag := ResolveLocalizer(rr, httptest.NewRequest(http.MethodGet, "/?lang=en-US", nil))
	if tag != language.AmericanEnglish {
		t.Fatalf("tag = %v, want en-US", tag)
	}
	if got := loc.Sprintf("nav.about"); got != "About" {
		t.Fatalf("nav.about = %q, want About", got)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookieName || cookies[0].Value != "en-US" {
		t.Fatalf("cookies = %+v, want language cookie", cookies)
	}
}

func TestAlternate(t *testing.T) {
	t.Parallel()

	if got := Alternate(Default()); got != language.AmericanEnglish {
		t.Fatalf("Alternate(zh-TW) = %v", got)
	}
	if got := Alternate(language.AmericanEnglish); got != Default() {
		t.Fatalf("Alternate(en-US) = %v", got)
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	if got := FormatDate(message.NewPrinter(Default()), ts); got != "2024/5/2" {
		t.Fatalf("zh FormatDate() = %q, want next day in Taipei", got)
	}
	if got := FormatDate(message.NewPrinter(language.AmericanEnglish), ts); got != "May 2, 2024" {
		t.Fatalf("en FormatDate() = %q", got)
	}
	if got := FormatDate(nil, ts); got != "2024/5/2" {
		t.Fatalf("FormatDate(nil) = %q", got)
	}
}
