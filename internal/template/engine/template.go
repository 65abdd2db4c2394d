package engine

import (
	"os"
	"path/filepath"

	"github.com/tacogips/promptgen/internal/data"
	"github.com/tacogips/promptgen/internal/debug"
)

// RenderTemplate reads the template at relPath under sourceRoot and renders
// it with vars. Includes resolve against sourceRoot. Every failure,
// including reading the template, is returned as a *RenderError.
func RenderTemplate(r Renderer, sourceRoot, relPath string, vars data.Context) (string, error) {
	path := filepath.Join(sourceRoot, relPath)
	source, err := os.ReadFile(path)
	if err != nil {
		return "", &RenderError{Template: relPath, Cause: err}
	}

	debug.Debug("[engine] Rendering %s (%d bytes)", relPath, len(source))
	out, err := r.Render(filepath.ToSlash(relPath), source, NewFileResolver(sourceRoot), vars)
	if err != nil {
		return "", &RenderError{Template: relPath, Cause: err}
	}
	return out, nil
}
