package templates

import (
	"strings"

	"github.com/trainingken/site/internal/services/web/module"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang        string
	AltLang     string
	Loc         Localizer
	CurrentPath string
	Site        module.Site
	Year        int
}

// PageMeta describes one rendered document.
type PageMeta struct {
	// Title is the page title; blank uses the site default title.
	Title       string
	Description string
	Image       string
	// Type is the Open Graph object type, "website" when blank.
	Type string
}

// DocumentTitle renders the browser title for meta.
func DocumentTitle(loc Localizer, meta PageMeta) string {
	title := strings.TrimSpace(meta.Title)
	if title == "" {
		return T(loc, "meta.default_title")
	}
	return T(loc, "meta.title_template", title)
}
