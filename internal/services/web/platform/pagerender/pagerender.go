// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/a-h/templ"

	module "github.com/trainingken/site/internal/services/web/module"
	"github.com/trainingken/site/internal/services/web/platform/httpx"
	webi18n "github.com/trainingken/site/internal/services/web/platform/i18n"
	webtemplates "github.com/trainingken/site/internal/services/web/templates"
)

// Page describes a full-document module response.
type Page struct {
	Meta       webtemplates.PageMeta
	StatusCode int
	Body       templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// Chrome resolves the request language and builds the shared layout context.
func Chrome(w http.ResponseWriter, r *http.Request, site module.Site) webtemplates.PageContext {
	loc, tag := webi18n.ResolveLocalizer(w, r)
	path := "/"
	if r != nil && r.URL != nil && r.URL.Path != "" {
		path = r.URL.Path
	}
	return webtemplates.PageContext{
		Lang:        tag.String(),
		AltLang:     webi18n.Alternate(tag).String(),
		Loc:         loc,
		CurrentPath: path,
		Site:        site,
		Year:        time.Now().Year(),
	}
}

// WritePage renders page inside the site layout. Nothing is written when
// rendering fails, so callers can still send an error response.
func WritePage(w http.ResponseWriter, r *http.Request, pc webtemplates.PageContext, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = emptyComponent{}
	}

	var buf bytes.Buffer
	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	if err := webtemplates.Layout(pc, page.Meta).Render(ctx, &buf); err != nil {
		return err
	}
	return httpx.WriteHTML(w, statusCode, buf.Bytes())
}
