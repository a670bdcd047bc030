package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/trainingken/site/internal/content"
	"github.com/trainingken/site/internal/content/portabletext"
	"github.com/trainingken/site/internal/platform/markup"
	webi18n "github.com/trainingken/site/internal/services/web/platform/i18n"
	"github.com/trainingken/site/internal/services/web/routepath"
)

const authorSuffix = " | "

// BlogIndex renders the blog listing body.
func BlogIndex(pc PageContext, posts []content.PostSummary) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		loc := pc.Loc
		m.Open("section", "blog-header")
		m.Open("div", "container")
		m.Elem("h1", "page-title", T(loc, "blog.title"))
		m.Elem("p", "page-subtitle", T(loc, "blog.subtitle"))
		m.Raw(`<nav class="crumbs" aria-label="breadcrumb">`)
		m.Link("crumb", routepath.Root, T(loc, "blog.crumb.home"))
		m.Raw(` <span class="crumb-sep">/</span> `)
		m.Elem("span", "crumb crumb-current", T(loc, "blog.crumb.all"))
		m.Raw("</nav>")
		m.Close("div")
		m.Close("section")

		m.Open("section", "section")
		m.Open("div", "container")
		if len(posts) == 0 {
			m.Elem("p", "empty", T(loc, "blog.empty"))
		} else {
			m.Open("div", "card-grid")
			for _, post := range posts {
				postCard(m, pc, post)
			}
			m.Close("div")
		}
		m.Close("div")
		m.Close("section")
	})
}

func postCard(m *markup.Writer, pc PageContext, post content.PostSummary) {
	loc := pc.Loc
	href := routepath.BlogPost(post.Slug)
	m.Open("article", "card post-card")
	m.Raw(`<a class="post-thumb"`)
	m.URL("href", href)
	m.Raw(">")
	if post.Image.Present() {
		m.Img("post-image", post.Image.URL, post.Title)
	} else {
		m.Elem("div", "post-image-placeholder", T(loc, "blog.no_image"))
	}
	m.Raw("</a>")
	m.Open("div", "post-body")
	date := T(loc, "blog.recent")
	if post.HasDate() {
		date = webi18n.FormatDate(loc, post.PublishedAt)
	}
	m.Elem("p", "post-date", date)
	m.Open("h3", "post-title")
	m.Link("", href, post.Title)
	m.Close("h3")
	m.Elem("p", "post-excerpt", post.Excerpt)
	m.Link("post-more", href, T(loc, "blog.read_more"))
	m.Close("div")
	m.Close("article")
}

// BlogPost renders one blog article body.
func BlogPost(pc PageContext, post content.PostDetail) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		loc := pc.Loc
		if post.Image.Present() {
			m.Raw(`<header class="article-hero article-hero-image"`)
			m.Attr("style", "background-image: url('"+string(templ.URL(post.Image.URL))+"')")
			m.Raw(">")
		} else {
			m.Open("header", "article-hero")
		}
		m.Open("div", "container article-hero-inner")
		m.Link("back-link", routepath.Blog, T(loc, "blog.detail.back"))
		m.Elem("h1", "article-title", post.Title)
		date := T(loc, "blog.detail.recent")
		if post.HasDate() {
			date = webi18n.FormatDate(loc, post.PublishedAt)
		}
		m.Elem("p", "article-meta", date+authorSuffix+T(loc, "blog.detail.author"))
		m.Close("div")
		m.Close("header")

		m.Open("article", "container article")
		m.Render(ctx, portabletext.Render(post.Body, portabletext.ArticleRules(portabletext.AssetURL)))
		m.Close("article")

		m.Open("footer", "container article-footer")
		m.Link("btn btn-ghost", routepath.Blog, T(loc, "blog.detail.more"))
		m.Link("btn btn-ghost", routepath.Root, T(loc, "blog.detail.home"))
		m.Close("footer")
	})
}
