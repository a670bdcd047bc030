package modules

import (
	"github.com/trainingken/site/internal/services/web/modules/blog"
	"github.com/trainingken/site/internal/services/web/modules/home"
)

// Default returns the site's web modules.
func Default() []Module {
	return []Module{
		home.New(),
		blog.New(),
	}
}
