package app

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/trainingken/site/internal/services/web/routepath"
	"github.com/trainingken/site/internal/services/web/static"
)

var staticFS fs.FS = static.FS

// BuildRootHandler composes a root mux from the configured modules and the
// embedded static assets.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	if len(cfg.Modules) == 0 {
		return nil, fmt.Errorf("at least one module is required")
	}
	composer := Composer{}
	return composer.Compose(ComposeInput{
		Dependencies: cfg.Dependencies,
		Modules:      cfg.Modules,
		Static:       http.FileServer(http.FS(staticFS)),
		StaticPrefix: routepath.StaticPrefix,
	})
}
