package app

import module "github.com/trainingken/site/internal/services/web/module"

// Config captures the composition inputs for the web root handler.
type Config struct {
	Dependencies module.Dependencies
	Modules      []module.Module
}
