// Package home serves the marketing homepage and the health check.
package home

import (
	"errors"
	"net/http"

	module "github.com/trainingken/site/internal/services/web/module"
	"github.com/trainingken/site/internal/services/web/routepath"
)

// Module provides the root routes.
type Module struct{}

// New returns a home module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires home route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Content == nil {
		return module.Mount{}, errors.New("content service is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
