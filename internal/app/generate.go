package app

import (
	"context"
	"errors"
	"os"

	"github.com/tacogips/promptgen/internal/config"
	"github.com/tacogips/promptgen/internal/data"
	"github.com/tacogips/promptgen/internal/debug"
	"github.com/tacogips/promptgen/internal/template/engine"
	"github.com/tacogips/promptgen/internal/template/generator"
)

// GenerateOptions contains options for a generation run.
type GenerateOptions struct {
	// Config is the resolved configuration.
	Config *config.Config
	// Reporter receives progress lines. Nil discards them.
	Reporter generator.Reporter
	// DryRun renders templates without writing output.
	DryRun bool
	// Renderer overrides the template engine. Nil uses Liquid.
	Renderer engine.Renderer
	// Writer overrides the output writer. Nil writes to the filesystem.
	Writer generator.Writer
}

// Generate runs the pipeline: check the templates directory, load the data
// context once, discover templates, then render and write each one.
//
// A missing templates directory is reported and returns a result with
// TemplatesMissing set and no error. Render failures are collected in the
// result. Everything else is returned as an *AppError.
func Generate(ctx context.Context, opts GenerateOptions) (*generator.GenerateResult, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, NewAppError(ConfigFailed, "configuration is required", nil)
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = generator.NopReporter{}
	}

	debug.DebugSection("Generate")
	debug.DebugValue("source_root", cfg.SourceRoot)
	debug.DebugValue("output_root", cfg.OutputRoot)

	exists, err := dirExists(cfg.TemplatesRoot)
	if err != nil {
		return nil, NewAppError(DiscoveryFailed, "failed to inspect templates directory", err)
	}
	if !exists {
		reporter.TemplatesNotFound(cfg.TemplatesRoot)
		return &generator.GenerateResult{TemplatesMissing: true}, nil
	}

	vars, err := data.Load(cfg.DataFile)
	if err != nil {
		return nil, NewAppError(DataLoadFailed, "failed to load data", err)
	}

	templates, err := discoverTemplates(cfg)
	if err != nil {
		return nil, err
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = engine.NewLiquidRenderer(cfg.MaxIncludeDepth)
	}
	writer := opts.Writer
	if writer == nil {
		writer = generator.NewFileWriter()
	}

	gen := generator.NewGenerator(generator.NewTemplateProcessor(renderer, cfg.SourceRoot), writer)
	result, err := gen.Generate(ctx, generator.GenerateOptions{
		Config:    cfg,
		Templates: templates,
		Data:      vars,
		Reporter:  reporter,
		DryRun:    opts.DryRun,
	})
	if err != nil {
		return result, NewAppError(GenerateFailed, "generation failed", err)
	}
	return result, nil
}

func discoverTemplates(cfg *config.Config) ([]generator.Template, error) {
	templates, err := generator.Discover(generator.DiscoverOptions{
		TemplatesRoot:  cfg.TemplatesRoot,
		SourceRoot:     cfg.SourceRoot,
		Suffix:         cfg.TemplateSuffix,
		IgnorePatterns: cfg.IgnorePatterns,
	})
	if err != nil {
		return nil, NewAppError(DiscoveryFailed, "failed to discover templates", err)
	}
	return templates, nil
}

// dirExists reports whether path is an existing directory. A path that
// exists but is not a directory counts as missing.
func dirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
