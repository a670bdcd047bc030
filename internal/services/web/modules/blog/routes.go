package blog

import (
	"net/http"

	"github.com/trainingken/site/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.BlogRoot, h.handleIndexRedirect)
	mux.HandleFunc(http.MethodGet+" "+routepath.BlogPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.BlogPrefix+"{slug}", h.handlePost)
	mux.HandleFunc(http.MethodGet+" "+routepath.BlogPrefix+"{slug}/{rest...}", h.handleNotFound)
}
