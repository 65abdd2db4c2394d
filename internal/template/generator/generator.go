package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/tacogips/promptgen/internal/config"
	"github.com/tacogips/promptgen/internal/data"
	"github.com/tacogips/promptgen/internal/debug"
	"github.com/tacogips/promptgen/internal/template/engine"
)

// Generator renders discovered templates and writes their output.
type Generator interface {
	// Generate renders and writes every template in opts.Templates.
	// A template that fails to render is reported and skipped; any other
	// failure stops the run and is returned.
	Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error)
}

// GenerateOptions configures a generation run.
type GenerateOptions struct {
	// Config supplies the output root and suffixes.
	Config *config.Config

	// Templates are the templates to process, in order.
	Templates []Template

	// Data is the variable context shared by every template.
	Data data.Context

	// Reporter receives progress lines. Nil discards them.
	Reporter Reporter

	// DryRun renders templates without writing output.
	DryRun bool
}

// DryRunFile is an output that would have been written in dry-run mode.
type DryRunFile struct {
	// Path is the output file path.
	Path string
	// Template is the source template relative to the source root.
	Template string
	// Content is the rendered output.
	Content string
	// Exists indicates the output file already exists.
	Exists bool
}

// GenerateResult contains the outcome of a run.
type GenerateResult struct {
	// Files are the output paths written, in write order. A path appears
	// once per write, so collisions show up as duplicates.
	Files []string

	// Errors are the render failures, one per failed template.
	Errors []*engine.RenderError

	// Collisions lists templates that overwrote an earlier template's output.
	Collisions []Collision

	// DryRunFiles is populated only in dry-run mode.
	DryRunFiles []DryRunFile

	// TemplatesMissing is set when the templates directory does not exist.
	TemplatesMissing bool
}

var _ Generator = (*DefaultGenerator)(nil)

// DefaultGenerator implements Generator.
type DefaultGenerator struct {
	processor Processor
	writer    Writer
}

// NewGenerator creates a DefaultGenerator.
func NewGenerator(processor Processor, writer Writer) *DefaultGenerator {
	return &DefaultGenerator{
		processor: processor,
		writer:    writer,
	}
}

// Generate renders and writes every template in opts.Templates.
func (g *DefaultGenerator) Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	cfg := opts.Config
	reporter := opts.Reporter
	if reporter == nil {
		reporter = NopReporter{}
	}

	debug.Debug("[generator] Starting generation: templates=%d, outputRoot=%s, dryRun=%v",
		len(opts.Templates), cfg.OutputRoot, opts.DryRun)

	result := &GenerateResult{}

	if !opts.DryRun && !g.writer.Exists(cfg.OutputRoot) {
		if err := g.writer.CreateDir(cfg.OutputRoot); err != nil {
			return nil, err
		}
	}

	owners := make(map[string]string, len(opts.Templates))
	for _, tmpl := range opts.Templates {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		outputPath := OutputPath(cfg.OutputRoot, tmpl.Name, cfg.TemplateSuffix, cfg.OutputSuffix)
		reporter.Generating(outputPath)

		rendered, err := g.processor.Process(tmpl, opts.Data)
		if err != nil {
			var renderErr *engine.RenderError
			if !errors.As(err, &renderErr) {
				renderErr = &engine.RenderError{Template: tmpl.RelPath, Cause: err}
			}
			debug.Debug("[generator] Render failed for %s: %v", tmpl.RelPath, renderErr.Cause)
			result.Errors = append(result.Errors, renderErr)
			reporter.RenderFailed(tmpl.RelPath, renderErr.Cause)
			continue
		}

		if opts.DryRun {
			result.DryRunFiles = append(result.DryRunFiles, DryRunFile{
				Path:     outputPath,
				Template: tmpl.RelPath,
				Content:  rendered,
				Exists:   g.writer.Exists(outputPath),
			})
		} else {
			if err := g.writer.WriteFile(outputPath, []byte(rendered)); err != nil {
				return result, err
			}
			result.Files = append(result.Files, outputPath)
		}

		// Only a template whose output was produced owns the path, so a
		// failed render never displaces the earlier file.
		if prev, ok := owners[outputPath]; ok {
			c := Collision{OutputPath: outputPath, Previous: prev, Current: tmpl.RelPath}
			result.Collisions = append(result.Collisions, c)
			reporter.Collision(c)
		}
		owners[outputPath] = tmpl.RelPath
	}

	debug.Debug("[generator] Generation complete: written=%d, renderErrors=%d, collisions=%d",
		len(result.Files), len(result.Errors), len(result.Collisions))
	return result, nil
}

// validateOptions validates GenerateOptions.
func validateOptions(opts GenerateOptions) error {
	if opts.Config == nil {
		return fmt.Errorf("config cannot be nil")
	}
	if opts.Config.OutputRoot == "" {
		return fmt.Errorf("output directory cannot be empty")
	}
	if opts.Data == nil {
		return fmt.Errorf("data context cannot be nil")
	}
	return nil
}
