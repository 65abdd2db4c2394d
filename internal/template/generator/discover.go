package generator

import (
	"io/fs"
	"path/filepath"

	"github.com/tacogips/promptgen/internal/debug"
)

// Template is a discovered template file.
type Template struct {
	// Path is the absolute file path.
	Path string
	// RelPath is the path relative to the source root, e.g. templates/a.liquid.
	RelPath string
	// Name is the base file name.
	Name string
}

// DiscoverOptions configures Discover.
type DiscoverOptions struct {
	// TemplatesRoot is walked recursively.
	TemplatesRoot string
	// SourceRoot is the base for Template.RelPath.
	SourceRoot string
	// Suffix selects template files.
	Suffix string
	// IgnorePatterns exclude matching templates (matched against the path
	// relative to TemplatesRoot).
	IgnorePatterns []string
}

// Discover lists template files under opts.TemplatesRoot. Directories are
// always descended into. Results follow the walk order; callers must not
// depend on it. Any walk error aborts discovery.
func Discover(opts DiscoverOptions) ([]Template, error) {
	var templates []Template

	err := filepath.WalkDir(opts.TemplatesRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return newGeneratorError(GeneratorDiscoveryFailed, "failed to walk templates directory", path, err)
		}
		if d.IsDir() || !IsTemplateFile(d.Name(), opts.Suffix) {
			return nil
		}

		inTree, err := filepath.Rel(opts.TemplatesRoot, path)
		if err != nil {
			return newGeneratorError(GeneratorPathError, "template outside templates directory", path, err)
		}
		if ShouldIgnoreFile(inTree, opts.IgnorePatterns) {
			return nil
		}

		rel, err := filepath.Rel(opts.SourceRoot, path)
		if err != nil {
			return newGeneratorError(GeneratorPathError, "template outside source root", path, err)
		}

		templates = append(templates, Template{Path: path, RelPath: rel, Name: d.Name()})
		return nil
	})
	if err != nil {
		return nil, err
	}

	debug.Debug("[generator] Discovered %d template(s) under %s", len(templates), opts.TemplatesRoot)
	return templates, nil
}
