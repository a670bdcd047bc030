package home

import (
	"net/http"

	module "github.com/trainingken/site/internal/services/web/module"
	"github.com/trainingken/site/internal/services/web/platform/httpx"
	"github.com/trainingken/site/internal/services/web/platform/pagerender"
	"github.com/trainingken/site/internal/services/web/platform/weberror"
	webtemplates "github.com/trainingken/site/internal/services/web/templates"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	view := h.deps.Content.Home(httpx.RequestContext(r))
	pc := pagerender.Chrome(w, r, h.deps.Site)
	if err := pagerender.WritePage(w, r, pc, pagerender.Page{
		Meta: webtemplates.PageMeta{Image: view.Hero.Image.URL},
		Body: webtemplates.HomePage(pc, view),
	}); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, "OK")
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteErrorPage(w, r, http.StatusNotFound, "", h.deps)
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.deps)
}
