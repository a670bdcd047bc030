package blog

import (
	"errors"
	"net/http"

	"github.com/trainingken/site/internal/content"
	"github.com/trainingken/site/internal/content/portabletext"
	module "github.com/trainingken/site/internal/services/web/module"
	apperrors "github.com/trainingken/site/internal/services/web/platform/errors"
	"github.com/trainingken/site/internal/services/web/platform/httpx"
	"github.com/trainingken/site/internal/services/web/platform/pagerender"
	"github.com/trainingken/site/internal/services/web/platform/weberror"
	"github.com/trainingken/site/internal/services/web/routepath"
	webtemplates "github.com/trainingken/site/internal/services/web/templates"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	posts := h.deps.Content.Posts(httpx.RequestContext(r))
	pc := pagerender.Chrome(w, r, h.deps.Site)
	if err := pagerender.WritePage(w, r, pc, pagerender.Page{
		Meta: webtemplates.PageMeta{
			Title:       webtemplates.T(pc.Loc, "blog.title"),
			Description: webtemplates.T(pc.Loc, "blog.subtitle"),
		},
		Body: webtemplates.BlogIndex(pc, posts),
	}); err != nil {
		h.writeError(w, r, err)
	}
}

// handleIndexRedirect moves the bare prefix to the index, keeping the query.
func (h handlers) handleIndexRedirect(w http.ResponseWriter, r *http.Request) {
	target := routepath.BlogPrefix
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusMovedPermanently)
}

func (h handlers) handlePost(w http.ResponseWriter, r *http.Request) {
	post, err := h.deps.Content.Post(httpx.RequestContext(r), r.PathValue("slug"))
	if err != nil {
		h.writeError(w, r, contentError(err))
		return
	}
	pc := pagerender.Chrome(w, r, h.deps.Site)
	if err := pagerender.WritePage(w, r, pc, pagerender.Page{
		Meta: webtemplates.PageMeta{
			Title:       post.Title,
			Description: postDescription(post),
			Image:       post.Image.URL,
			Type:        "article",
		},
		Body: webtemplates.BlogPost(pc, post),
	}); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteErrorPage(w, r, http.StatusNotFound, "", h.deps)
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.deps)
}

func postDescription(post content.PostDetail) string {
	if !portabletext.HasContent(post.Body) {
		return ""
	}
	return content.Excerpt(post.Body)
}

// contentError maps content failures onto web error kinds.
func contentError(err error) error {
	switch {
	case errors.Is(err, content.ErrNotFound):
		return apperrors.Wrap(apperrors.KindNotFound, "error.not_found.body", err)
	case errors.Is(err, content.ErrUnavailable):
		return apperrors.Wrap(apperrors.KindUnavailable, "error.unavailable.body", err)
	default:
		return err
	}
}
