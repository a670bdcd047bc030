package templates

import (
	"context"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/trainingken/site/internal/platform/markup"
	"github.com/trainingken/site/internal/services/web/routepath"
)

// Layout renders the document shell around the children in ctx.
func Layout(pc PageContext, meta PageMeta) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		loc := pc.Loc
		lang := pc.Lang
		if lang == "" {
			lang = "zh-TW"
		}
		description := strings.TrimSpace(meta.Description)
		if description == "" {
			description = T(loc, "meta.description")
		}
		ogType := meta.Type
		if ogType == "" {
			ogType = "website"
		}
		ogTitle := strings.TrimSpace(meta.Title)
		if ogTitle == "" {
			ogTitle = T(loc, "meta.og_title")
		}
		ogDescription := strings.TrimSpace(meta.Description)
		if ogDescription == "" {
			ogDescription = T(loc, "meta.og_description")
		}

		m.Raw("<!DOCTYPE html>")
		m.Raw("<html")
		m.Attr("lang", lang)
		m.Raw(">")
		m.Raw(`<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.Elem("title", "", DocumentTitle(loc, meta))
		metaTag(m, "name", "description", description)
		metaTag(m, "name", "keywords", T(loc, "meta.keywords"))
		metaTag(m, "property", "og:title", ogTitle)
		metaTag(m, "property", "og:description", ogDescription)
		metaTag(m, "property", "og:site_name", T(loc, "meta.site_name"))
		metaTag(m, "property", "og:locale", T(loc, "meta.og_locale"))
		metaTag(m, "property", "og:type", ogType)
		if image := strings.TrimSpace(meta.Image); image != "" {
			m.Raw("<meta")
			m.Attr("property", "og:image")
			m.URL("content", image)
			m.Raw(">")
		}
		m.Raw(`<link rel="stylesheet"`)
		m.Attr("href", routepath.Static("site.css"))
		m.Raw("></head><body>")

		navbar(m, pc)
		m.Open("main", "site-main")
		m.Render(ctx, templ.GetChildren(ctx))
		m.Close("main")

		m.Open("footer", "site-footer")
		m.Text(T(loc, "footer.copyright", strconv.Itoa(pc.Year)))
		m.Close("footer")
		m.Raw("</body></html>")
	})
}

func metaTag(m *markup.Writer, attrName, attrValue, content string) {
	if strings.TrimSpace(content) == "" {
		return
	}
	m.Raw("<meta")
	m.Attr(attrName, attrValue)
	m.Attr("content", content)
	m.Raw(">")
}

func navbar(m *markup.Writer, pc PageContext) {
	loc := pc.Loc
	m.Open("header", "site-header")
	m.Open("div", "container nav")

	m.Raw(`<a class="brand" href="/">`)
	m.Text(T(loc, "nav.brand"))
	if suffix := T(loc, "nav.brand_suffix"); suffix != "" && suffix != "nav.brand_suffix" {
		m.Elem("span", "brand-suffix", suffix)
	}
	m.Raw("</a>")

	m.Raw(`<input type="checkbox" id="nav-toggle" class="nav-toggle"><label for="nav-toggle" class="nav-burger" aria-label="menu"><span></span></label>`)
	m.Open("nav", "nav-links")
	for _, item := range []struct{ href, key string }{
		{routepath.About, "nav.about"},
		{routepath.Services, "nav.services"},
		{routepath.Testimonials, "nav.testimonials"},
		{routepath.BlogSection, "nav.blog"},
	} {
		m.Link("nav-link", item.href, T(loc, item.key))
	}
	if pc.Site.BookingURL != "" {
		m.ExternalLink("nav-cta", pc.Site.BookingURL, T(loc, "nav.book"))
	}
	if pc.AltLang != "" {
		m.Raw(`<a class="nav-lang"`)
		m.Attr("hreflang", pc.AltLang)
		m.URL("href", routepath.WithLang(pc.CurrentPath, pc.AltLang))
		m.Raw(">")
		m.Text(T(loc, "nav.language"))
		m.Raw("</a>")
	}
	m.Close("nav")

	m.Close("div")
	m.Close("header")
}
