package templates

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/trainingken/site/internal/platform/markup"
	"github.com/trainingken/site/internal/services/web/routepath"
)

const (
	errorNotFoundPrefix    = "error.not_found"
	errorUnavailablePrefix = "error.unavailable"
	errorInternalPrefix    = "error.internal"
	errorHomeKey           = "error.home"
)

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	return T(loc, errorKeyPrefix(statusCode)+".title")
}

// ErrorState renders the error page body. A blank messageKey uses the
// status default.
func ErrorState(statusCode int, messageKey string, loc Localizer) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		if messageKey == "" {
			messageKey = errorKeyPrefix(statusCode) + ".body"
		}
		m.Open("section", "section error-state")
		m.Open("div", "container")
		m.Elem("p", "error-code", http.StatusText(normalizeErrorStatus(statusCode)))
		m.Elem("h1", "page-title", ErrorPageTitle(statusCode, loc))
		m.Elem("p", "error-body", T(loc, messageKey))
		m.Link("btn btn-primary", routepath.Root, T(loc, errorHomeKey))
		m.Close("div")
		m.Close("section")
	})
}

func errorKeyPrefix(statusCode int) string {
	switch normalizeErrorStatus(statusCode) {
	case http.StatusNotFound:
		return errorNotFoundPrefix
	case http.StatusServiceUnavailable:
		return errorUnavailablePrefix
	default:
		return errorInternalPrefix
	}
}

func normalizeErrorStatus(statusCode int) int {
	switch statusCode {
	case http.StatusNotFound, http.StatusServiceUnavailable:
		return statusCode
	default:
		return http.StatusInternalServerError
	}
}
