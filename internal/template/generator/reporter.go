package generator

import (
	"fmt"
	"io"
)

// Collision records two templates rendering to the same output file.
type Collision struct {
	// OutputPath is the shared output file.
	OutputPath string
	// Previous is the template that wrote OutputPath first.
	Previous string
	// Current is the template that overwrote it.
	Current string
}

// Reporter receives progress and per-template problems during a run.
type Reporter interface {
	TemplatesNotFound(dir string)
	Generating(outputPath string)
	RenderFailed(template string, err error)
	Collision(c Collision)
}

// TemplatesNotFoundLine formats the missing templates directory notice.
func TemplatesNotFoundLine(dir string) string {
	return fmt.Sprintf("Templates directory not found: %s", dir)
}

// GeneratingLine formats the progress line printed before a template renders.
func GeneratingLine(outputPath string) string {
	return fmt.Sprintf("Generating %s...", outputPath)
}

// RenderFailedLine formats a per-template render failure.
func RenderFailedLine(template string, err error) string {
	return fmt.Sprintf("Error rendering %s: %v", template, err)
}

// CollisionLine formats an output path collision warning.
func CollisionLine(c Collision) string {
	return fmt.Sprintf("Warning: %s and %s both render to %s; %s wins",
		c.Previous, c.Current, c.OutputPath, c.Current)
}

var (
	_ Reporter = NopReporter{}
	_ Reporter = (*TextReporter)(nil)
)

// NopReporter discards every event.
type NopReporter struct{}

func (NopReporter) TemplatesNotFound(string)   {}
func (NopReporter) Generating(string)          {}
func (NopReporter) RenderFailed(string, error) {}
func (NopReporter) Collision(Collision)        {}

// TextReporter writes one plain line per event.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter creates a TextReporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// TemplatesNotFound writes the missing templates directory notice.
func (r *TextReporter) TemplatesNotFound(dir string) {
	fmt.Fprintln(r.w, TemplatesNotFoundLine(dir))
}

// Generating writes the progress line for outputPath.
func (r *TextReporter) Generating(outputPath string) {
	fmt.Fprintln(r.w, GeneratingLine(outputPath))
}

// RenderFailed writes the render error line for template.
func (r *TextReporter) RenderFailed(template string, err error) {
	fmt.Fprintln(r.w, RenderFailedLine(template, err))
}

// Collision writes the collision warning.
func (r *TextReporter) Collision(c Collision) {
	fmt.Fprintln(r.w, CollisionLine(c))
}
