package content

import (
	"github.com/trainingken/site/internal/content/portabletext"
)

const (
	excerptLength = 100
	excerptSuffix = "..."
)

// Excerpt returns the first 100 characters of the body text followed by an
// ellipsis. The suffix is always appended, even to short or empty bodies.
func Excerpt(body []portabletext.Block) string {
	runes := []rune(portabletext.PlainText(body))
	if len(runes) > excerptLength {
		runes = runes[:excerptLength]
	}
	return string(runes) + excerptSuffix
}
