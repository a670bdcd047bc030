// Package routepath centralizes site route paths.
package routepath

import "net/url"

const (
	Root         = "/"
	Health       = "/up"
	StaticPrefix = "/static/"
	BlogPrefix   = "/blog/"
	Blog         = BlogPrefix
	BlogRoot     = "/blog"
)

// Homepage section anchors linked from the navigation bar.
const (
	About        = "/#about"
	Services     = "/#services"
	Testimonials = "/#testimonials"
	BlogSection  = "/#blog"
)

// BlogPost returns the detail path for a post slug.
func BlogPost(slug string) string {
	return BlogPrefix + url.PathEscape(slug)
}

// Static returns the path of an embedded static asset.
func Static(name string) string {
	return StaticPrefix + name
}

// WithLang appends a language selection to path.
func WithLang(path, lang string) string {
	if path == "" {
		path = Root
	}
	return path + "?" + url.Values{"lang": []string{lang}}.Encode()
}
