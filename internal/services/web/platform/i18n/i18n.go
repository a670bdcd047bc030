// Package i18n resolves the request language and formats localized values.
package i18n

import (
	"net/http"
	"strings"
	"time"

	_ "github.com/trainingken/site/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "tk_lang"

	dateKey           = "format.date"
	defaultDateLayout = "2006/1/2"
)

// Localizer provides translated strings.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

var (
	traditionalChinese = language.MustParse("zh-TW")
	supported          = []language.Tag{traditionalChinese, language.AmericanEnglish}
	matcher            = language.NewMatcher(supported)
)

// siteZone is the coach's local time; Taiwan has no daylight saving.
var siteZone = time.FixedZone("Asia/Taipei", 8*60*60)

// Supported returns the supported language tags, default first.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default returns the default language tag.
func Default() language.Tag { return traditionalChinese }

// ParseTag matches value against the supported languages.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return Default(), false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Default(), false
	}
	return supported[idx], true
}

// ResolveTag determines the best language tag for the request. The bool
// reports whether an explicit lang query param should be persisted.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}
	if tag, ok := ParseTag(r.URL.Query().Get(LangParam)); ok {
		return tag, true
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, confidence := matcher.Match(tags...)
			if confidence != language.No {
				return supported[idx], false
			}
		}
	}
	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer resolves the request language, persisting an explicit
// choice, and returns a printer for it.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (*message.Printer, language.Tag) {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return message.NewPrinter(tag), tag
}

// Alternate returns the language offered by the language switch.
func Alternate(tag language.Tag) language.Tag {
	if tag == traditionalChinese {
		return language.AmericanEnglish
	}
	return traditionalChinese
}

// FormatDate renders t in the site time zone using the locale's layout.
func FormatDate(loc Localizer, t time.Time) string {
	layout := defaultDateLayout
	if loc != nil {
		if localized := strings.TrimSpace(loc.Sprintf(dateKey)); localized != "" && localized != dateKey {
			layout = localized
		}
	}
	return t.In(siteZone).Format(layout)
}
