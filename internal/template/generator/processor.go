package generator

import (
	"github.com/tacogips/promptgen/internal/data"
	"github.com/tacogips/promptgen/internal/template/engine"
)

// Processor renders a single template.
type Processor interface {
	// Process renders tmpl with vars. Failures are *engine.RenderError.
	Process(tmpl Template, vars data.Context) (string, error)
}

// TemplateProcessor renders templates through an engine.Renderer, resolving
// includes against the source root.
type TemplateProcessor struct {
	renderer   engine.Renderer
	sourceRoot string
}

// NewTemplateProcessor creates a TemplateProcessor.
func NewTemplateProcessor(renderer engine.Renderer, sourceRoot string) *TemplateProcessor {
	return &TemplateProcessor{renderer: renderer, sourceRoot: sourceRoot}
}

// Process renders tmpl with vars.
func (p *TemplateProcessor) Process(tmpl Template, vars data.Context) (string, error) {
	return engine.RenderTemplate(p.renderer, p.sourceRoot, tmpl.RelPath, vars)
}
