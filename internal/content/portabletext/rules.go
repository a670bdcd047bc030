package portabletext

// Element is a tag with an optional class attribute.
type Element struct {
	Tag   string
	Class string
}

// Rules maps portable text node types to markup.
type Rules struct {
	// Styles maps a block style to its element. Missing styles fall back
	// to the "normal" entry.
	Styles map[string]Element
	// Lists maps a list item kind to its container element.
	Lists map[string]Element
	// ImageURL resolves an image block asset. Reporting false omits the image.
	ImageURL func(AssetRef) (string, bool)
	// ImageFrame wraps each rendered image.
	ImageFrame Element
	ImageClass string
	// ImageAlt is used when the block has no alt text.
	ImageAlt string
}

var defaultStyles = map[string]Element{
	StyleNormal:     {Tag: "p"},
	"h1":            {Tag: "h1"},
	"h2":            {Tag: "h2"},
	"h3":            {Tag: "h3"},
	"h4":            {Tag: "h4"},
	StyleBlockquote: {Tag: "blockquote"},
}

var defaultLists = map[string]Element{
	ListBullet: {Tag: "ul"},
	ListNumber: {Tag: "ol"},
}

// ProseRules renders plain semantic markup. Used for short rich-text fields.
func ProseRules() Rules {
	return Rules{Styles: defaultStyles, Lists: defaultLists, ImageFrame: Element{Tag: "figure"}}
}

// ArticleRules renders long-form post bodies.
func ArticleRules(imageURL func(AssetRef) (string, bool)) Rules {
	return Rules{
		Styles: map[string]Element{
			StyleNormal:     {Tag: "p", Class: "article-p"},
			"h1":            {Tag: "h2", Class: "article-h2"},
			"h2":            {Tag: "h2", Class: "article-h2"},
			"h3":            {Tag: "h3", Class: "article-h3"},
			"h4":            {Tag: "h4", Class: "article-h4"},
			StyleBlockquote: {Tag: "blockquote", Class: "article-quote"},
		},
		Lists: map[string]Element{
			ListBullet: {Tag: "ul", Class: "article-list"},
			ListNumber: {Tag: "ol", Class: "article-list article-list-number"},
		},
		ImageURL:   imageURL,
		ImageFrame: Element{Tag: "figure", Class: "article-figure"},
		ImageClass: "article-image",
		ImageAlt:   "文章圖片",
	}
}

func (r Rules) style(name string) Element {
	if el, ok := r.Styles[name]; ok && el.Tag != "" {
		return el
	}
	if el, ok := r.Styles[StyleNormal]; ok && el.Tag != "" {
		return el
	}
	return Element{Tag: "p"}
}

func (r Rules) list(kind string) Element {
	if el, ok := r.Lists[kind]; ok && el.Tag != "" {
		return el
	}
	if kind == ListNumber {
		return Element{Tag: "ol"}
	}
	return Element{Tag: "ul"}
}

// AssetURL resolves an image from the URL already attached to its asset.
func AssetURL(ref AssetRef) (string, bool) {
	if u := ref.URL; u != "" {
		return u, true
	}
	return "", false
}
