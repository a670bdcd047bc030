// Package modules defines web module registry helpers.
package modules

import module "github.com/trainingken/site/internal/services/web/module"

// Module aliases the module interface contract.
type Module = module.Module
