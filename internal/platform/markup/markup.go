// Package markup writes escaped HTML for hand-built templ components.
package markup

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Writer writes HTML to an underlying writer, keeping the first write error.
// After a failure every call is a no-op.
type Writer struct {
	w   io.Writer
	err error
}

// New returns a Writer over w.
func New(w io.Writer) *Writer { return &Writer{w: w} }

// Err returns the first write or render error.
func (m *Writer) Err() error { return m.err }

// Raw writes s unescaped.
func (m *Writer) Raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// Text writes s with HTML escaping.
func (m *Writer) Text(s string) {
	m.Raw(templ.EscapeString(s))
}

// Attr writes a leading space and an escaped name="value" pair.
func (m *Writer) Attr(name, value string) {
	m.Raw(" " + name + `="`)
	m.Text(value)
	m.Raw(`"`)
}

// URL writes a URL attribute.
func (m *Writer) URL(name, value string) {
	m.Attr(name, string(templ.URL(value)))
}

// Open writes a start tag with an optional class.
func (m *Writer) Open(tag, class string) {
	m.Raw("<" + tag)
	if class != "" {
		m.Attr("class", class)
	}
	m.Raw(">")
}

func (m *Writer) Close(tag string) {
	m.Raw("</" + tag + ">")
}

// Elem writes an element holding escaped text.
func (m *Writer) Elem(tag, class, text string) {
	m.Open(tag, class)
	m.Text(text)
	m.Close(tag)
}

// OpenLink writes an anchor start tag. External links open in a new tab.
func (m *Writer) OpenLink(class, href string, external bool) {
	m.Raw("<a")
	if class != "" {
		m.Attr("class", class)
	}
	m.URL("href", href)
	if external {
		m.Raw(` target="_blank" rel="noopener noreferrer"`)
	}
	m.Raw(">")
}

func (m *Writer) Link(class, href, label string) {
	m.OpenLink(class, href, false)
	m.Text(label)
	m.Close("a")
}

// ExternalLink writes a link that opens href in a new tab.
func (m *Writer) ExternalLink(class, href, label string) {
	m.OpenLink(class, href, true)
	m.Text(label)
	m.Close("a")
}

// Img writes a lazily loaded image.
func (m *Writer) Img(class, src, alt string) {
	m.Raw("<img")
	if class != "" {
		m.Attr("class", class)
	}
	m.URL("src", src)
	m.Attr("alt", alt)
	m.Raw(` loading="lazy">`)
}

// Render writes a child component in place.
func (m *Writer) Render(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

// Component adapts fn to a templ component writing through a Writer.
func Component(fn func(ctx context.Context, m *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := New(w)
		fn(ctx, m)
		return m.err
	})
}
