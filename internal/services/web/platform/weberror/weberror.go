// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/trainingken/site/internal/platform/logging"
	module "github.com/trainingken/site/internal/services/web/module"
	apperrors "github.com/trainingken/site/internal/services/web/platform/errors"
	"github.com/trainingken/site/internal/services/web/platform/httpx"
	"github.com/trainingken/site/internal/services/web/platform/pagerender"
	webi18n "github.com/trainingken/site/internal/services/web/platform/i18n"
	webtemplates "github.com/trainingken/site/internal/services/web/templates"
)

// ShouldRenderErrorPage reports whether status should use the error page.
func ShouldRenderErrorPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteErrorPage writes a localized error page. A blank messageKey uses the
// status default.
func WriteErrorPage(w http.ResponseWriter, r *http.Request, statusCode int, messageKey string, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderErrorPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}

	pc := pagerender.Chrome(w, r, deps.Site)
	page := pagerender.Page{
		Meta:       webtemplates.PageMeta{Title: webtemplates.ErrorPageTitle(statusCode, pc.Loc)},
		StatusCode: statusCode,
		Body:       webtemplates.ErrorState(statusCode, messageKey, pc.Loc),
	}
	if err := pagerender.WritePage(w, r, pc, page); err != nil {
		logging.OrNop(deps.Logger).Error("render error page", zap.Error(err))
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response. Server
// failures are logged; their text never reaches the response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		logging.OrNop(deps.Logger).Warn("request failed",
			zap.String("path", requestPath(r)),
			zap.String("request_id", requestID(r)),
			zap.Int("status", statusCode),
			zap.Error(err),
		)
	}
	if ShouldRenderErrorPage(statusCode) {
		WriteErrorPage(w, r, statusCode, apperrors.LocalizationKey(err), deps)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}

func requestID(r *http.Request) string {
	if r == nil {
		return ""
	}
	return r.Header.Get(httpx.RequestIDHeader)
}
