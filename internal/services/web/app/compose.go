// Package app composes web modules into the root handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/trainingken/site/internal/services/web/module"
)

// ComposeInput carries modules and the shared dependencies they mount with.
type ComposeInput struct {
	Dependencies module.Dependencies
	Modules      []module.Module
	// Static serves embedded assets under routepath.StaticPrefix when set.
	Static http.Handler
	// StaticPrefix is the mount point for Static.
	StaticPrefix string
}

// Composer builds the root mux from module mounts.
type Composer struct{}

// Compose builds a root HTTP handler from modules.
func (Composer) Compose(input ComposeInput) (http.Handler, error) {
	return Compose(input)
}

// Compose builds a root HTTP handler from modules.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	if input.Static != nil {
		prefix := strings.TrimSpace(input.StaticPrefix)
		if err := validatePrefix(prefix); err != nil {
			return nil, fmt.Errorf("static assets have invalid prefix %q: %w", input.StaticPrefix, err)
		}
		seen[prefix] = "static"
		root.Handle(prefix, http.StripPrefix(prefix, input.Static))
	}

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature, input.Dependencies)
		if err != nil {
			return nil, err
		}
		if previous, ok := seen[prefix]; ok {
			return nil, fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
		}
		seen[prefix] = feature.ID()
		root.Handle(prefix, mount.Handler)
		// The module owns its bare prefix so the mux never redirects on its behalf.
		if bare := strings.TrimSuffix(prefix, "/"); bare != "" {
			root.Handle(bare, mount.Handler)
		}
	}

	return root, nil
}

func resolveMount(feature module.Module, deps module.Dependencies) (module.Mount, string, error) {
	mount, err := feature.Mount(deps)
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := normalizePrefix(mount.Prefix)
	if err := validatePrefix(prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

// normalizePrefix trims whitespace and adds the trailing slash that subtree
// patterns need.
func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" || strings.HasSuffix(prefix, "/") {
		return prefix
	}
	return prefix + "/"
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}
