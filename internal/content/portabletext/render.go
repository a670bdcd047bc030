package portabletext

import (
	"context"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/trainingken/site/internal/platform/markup"
)

var decorators = map[string]string{
	"strong":         "strong",
	"em":             "em",
	"code":           "code",
	"underline":      "u",
	"strike-through": "s",
}

// Render returns a component that writes blocks as markup.
func Render(blocks []Block, rules Rules) templ.Component {
	return markup.Component(func(_ context.Context, hw *markup.Writer) {
		for i := 0; i < len(blocks); {
			b := blocks[i]
			switch {
			case b.IsListItem():
				i = renderList(hw, blocks, i, b.listLevel(), rules)
				continue
			case b.IsText():
				renderTextBlock(hw, b, rules)
			case b.Type == TypeImage:
				renderImage(hw, b, rules)
			}
			i++
		}
	})
}

// renderList writes one list starting at blocks[start] and returns the index
// of the first block after it. Deeper items nest inside the open item.
func renderList(hw *markup.Writer, blocks []Block, start, level int, rules Rules) int {
	kind := blocks[start].ListItem
	container := rules.list(kind)
	hw.Open(container.Tag, container.Class)
	itemOpen := false
	i := start
	for i < len(blocks) {
		b := blocks[i]
		if !b.IsListItem() || b.listLevel() < level {
			break
		}
		if b.listLevel() > level {
			if !itemOpen {
				hw.Raw("<li>")
				itemOpen = true
			}
			i = renderList(hw, blocks, i, b.listLevel(), rules)
			continue
		}
		if b.ListItem != kind {
			break
		}
		if itemOpen {
			hw.Raw("</li>")
		}
		hw.Raw("<li>")
		itemOpen = true
		renderSpans(hw, b)
		i++
	}
	if itemOpen {
		hw.Raw("</li>")
	}
	hw.Close(container.Tag)
	return i
}

func renderTextBlock(hw *markup.Writer, b Block, rules Rules) {
	el := rules.style(b.Style)
	hw.Open(el.Tag, el.Class)
	renderSpans(hw, b)
	hw.Close(el.Tag)
}

func renderSpans(hw *markup.Writer, b Block) {
	defs := make(map[string]MarkDef, len(b.MarkDefs))
	for _, def := range b.MarkDefs {
		defs[def.Key] = def
	}
	for _, span := range b.Children {
		if span.Type != "" && span.Type != TypeSpan {
			continue
		}
		closers := make([]string, 0, len(span.Marks))
		for _, mark := range span.Marks {
			if tag, ok := decorators[mark]; ok {
				hw.Raw("<" + tag + ">")
				closers = append(closers, "</"+tag+">")
				continue
			}
			def, ok := defs[mark]
			if !ok || def.Type != "link" {
				continue
			}
			href, ok := SafeHref(def.Href)
			if !ok {
				continue
			}
			hw.OpenLink("", href, isExternal(href))
			closers = append(closers, "</a>")
		}
		lines := strings.Split(span.Text, "\n")
		for idx, line := range lines {
			if idx > 0 {
				hw.Raw("<br>")
			}
			hw.Text(line)
		}
		for idx := len(closers) - 1; idx >= 0; idx-- {
			hw.Raw(closers[idx])
		}
	}
}

func renderImage(hw *markup.Writer, b Block, rules Rules) {
	if b.Asset == nil || rules.ImageURL == nil {
		return
	}
	src, ok := rules.ImageURL(*b.Asset)
	if !ok || strings.TrimSpace(src) == "" {
		return
	}
	alt := strings.TrimSpace(b.Alt)
	if alt == "" {
		alt = rules.ImageAlt
	}
	frame := rules.ImageFrame
	if frame.Tag != "" {
		hw.Open(frame.Tag, frame.Class)
	}
	hw.Img(rules.ImageClass, src, alt)
	if frame.Tag != "" {
		hw.Close(frame.Tag)
	}
}

// SafeHref reports whether href may be emitted as a link target. Site
// relative paths, fragments and http, https, mailto and tel URLs are allowed.
// Protocol-relative hrefs are rejected.
func SafeHref(href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", false
	}
	if strings.HasPrefix(href, "//") || strings.HasPrefix(href, `/\`) {
		return "", false
	}
	if strings.HasPrefix(href, "/") || strings.HasPrefix(href, "#") {
		return href, true
	}
	u, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		if u.Host == "" {
			return "", false
		}
		return href, true
	case "mailto", "tel":
		return href, true
	default:
		return "", false
	}
}

func isExternal(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}
