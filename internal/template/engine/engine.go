// Package engine renders a single template against a data context. The
// templating language itself is delegated to a Renderer implementation.
package engine

import (
	"github.com/tacogips/promptgen/internal/data"
)

// Renderer renders template source. Implementations must not retain vars.
type Renderer interface {
	// Render renders source, identified by name for error messages.
	// Includes are resolved through resolver.
	Render(name string, source []byte, resolver Resolver, vars data.Context) (string, error)
}

// Resolver maps an include reference to a readable file path.
type Resolver interface {
	Resolve(ref string) (string, error)
}
