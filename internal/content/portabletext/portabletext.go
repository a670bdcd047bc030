// Package portabletext decodes and renders Sanity portable text.
//
// A body is a sequence of typed blocks. Text blocks carry spans with
// decorator marks and annotation keys; image blocks carry an asset
// reference. Rendering maps each node type to markup through Rules.
package portabletext

import "strings"

// Block node types and styles understood by the renderer.
const (
	TypeBlock = "block"
	TypeImage = "image"
	TypeSpan  = "span"

	StyleNormal     = "normal"
	StyleBlockquote = "blockquote"

	ListBullet = "bullet"
	ListNumber = "number"
)

// Block is one top-level portable text node.
type Block struct {
	Type     string    `json:"_type"`
	Key      string    `json:"_key,omitempty"`
	Style    string    `json:"style,omitempty"`
	ListItem string    `json:"listItem,omitempty"`
	Level    int       `json:"level,omitempty"`
	Children []Span    `json:"children,omitempty"`
	MarkDefs []MarkDef `json:"markDefs,omitempty"`
	Asset    *AssetRef `json:"asset,omitempty"`
	Alt      string    `json:"alt,omitempty"`
}

// Span is an inline text run.
type Span struct {
	Type  string   `json:"_type"`
	Key   string   `json:"_key,omitempty"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// MarkDef defines an annotation referenced from span marks by key.
type MarkDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href,omitempty"`
}

// AssetRef points at an uploaded asset.
type AssetRef struct {
	Ref string `json:"_ref"`
	URL string `json:"url,omitempty"`
}

// IsText reports whether b is a text block.
func (b Block) IsText() bool { return b.Type == TypeBlock }

// IsListItem reports whether b belongs to a list.
func (b Block) IsListItem() bool { return b.IsText() && strings.TrimSpace(b.ListItem) != "" }

func (b Block) listLevel() int {
	if b.Level < 1 {
		return 1
	}
	return b.Level
}

// Text concatenates the block's span text.
func (b Block) Text() string {
	var sb strings.Builder
	for _, child := range b.Children {
		if child.Type != "" && child.Type != TypeSpan {
			continue
		}
		sb.WriteString(child.Text)
	}
	return sb.String()
}

// PlainText flattens text blocks, separating blocks with a blank line.
// Non-text blocks such as images contribute nothing.
func PlainText(blocks []Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if !b.IsText() {
			continue
		}
		parts = append(parts, b.Text())
	}
	return strings.Join(parts, "\n\n")
}

// HasContent reports whether blocks would render anything.
func HasContent(blocks []Block) bool {
	for _, b := range blocks {
		switch b.Type {
		case TypeBlock:
			if strings.TrimSpace(b.Text()) != "" {
				return true
			}
		case TypeImage:
			if b.Asset != nil {
				return true
			}
		}
	}
	return false
}
