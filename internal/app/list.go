package app

import (
	"github.com/tacogips/promptgen/internal/config"
	"github.com/tacogips/promptgen/internal/template/generator"
)

// ListEntry pairs a template with the output file it renders to.
type ListEntry struct {
	// Template is the path relative to the source root.
	Template string `json:"template"`
	// Output is the output file path.
	Output string `json:"output"`
}

// ListResult contains the discovered templates.
type ListResult struct {
	// Entries are in discovery order.
	Entries []ListEntry `json:"entries"`
	// Collisions lists entries whose output is shared with an earlier entry.
	Collisions []generator.Collision `json:"-"`
	// TemplatesMissing is set when the templates directory does not exist.
	TemplatesMissing bool `json:"templates_missing"`
}

// List discovers templates and computes their output paths without
// loading data or rendering.
func List(cfg *config.Config) (*ListResult, error) {
	if cfg == nil {
		return nil, NewAppError(ConfigFailed, "configuration is required", nil)
	}

	exists, err := dirExists(cfg.TemplatesRoot)
	if err != nil {
		return nil, NewAppError(DiscoveryFailed, "failed to inspect templates directory", err)
	}
	if !exists {
		return &ListResult{TemplatesMissing: true}, nil
	}

	templates, err := discoverTemplates(cfg)
	if err != nil {
		return nil, err
	}

	result := &ListResult{Entries: make([]ListEntry, 0, len(templates))}
	owners := make(map[string]string, len(templates))
	for _, tmpl := range templates {
		out := generator.OutputPath(cfg.OutputRoot, tmpl.Name, cfg.TemplateSuffix, cfg.OutputSuffix)
		if prev, ok := owners[out]; ok {
			result.Collisions = append(result.Collisions, generator.Collision{
				OutputPath: out,
				Previous:   prev,
				Current:    tmpl.RelPath,
			})
		}
		owners[out] = tmpl.RelPath
		result.Entries = append(result.Entries, ListEntry{Template: tmpl.RelPath, Output: out})
	}
	return result, nil
}
