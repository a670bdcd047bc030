// Package blog serves the post listing and post detail pages.
package blog

import (
	"errors"
	"net/http"

	module "github.com/trainingken/site/internal/services/web/module"
	"github.com/trainingken/site/internal/services/web/routepath"
)

// Module provides blog routes.
type Module struct{}

// New returns a blog module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "blog" }

// Mount wires blog route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Content == nil {
		return module.Mount{}, errors.New("content service is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.BlogPrefix, Handler: mux}, nil
}
