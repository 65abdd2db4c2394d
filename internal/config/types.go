package config

// Config is the resolved configuration for a generation run. It is computed
// once at process start and passed to every stage of the pipeline.
type Config struct {
	// SourceRoot is the directory holding templates, partials and the data file.
	SourceRoot string
	// OutputRoot is the directory rendered files are written to.
	OutputRoot string
	// TemplatesRoot is searched recursively for templates.
	TemplatesRoot string
	// DataFile is the optional data context file.
	DataFile string
	// ConfigFile is the promptgen.yaml that was applied, empty if none.
	ConfigFile string
	// TemplateSuffix selects template files by name.
	TemplateSuffix string
	// OutputSuffix replaces TemplateSuffix in output file names.
	OutputSuffix string
	// IgnorePatterns are glob patterns for template names to skip.
	IgnorePatterns []string
	// MaxIncludeDepth is the maximum nested include depth.
	MaxIncludeDepth int
}

// FileConfig represents promptgen.yaml. Every field is optional; relative
// paths are resolved against the source root.
type FileConfig struct {
	// TemplatesDir is the templates directory.
	TemplatesDir string `yaml:"templates_dir"`
	// DataFile is the data context file (.json, .yaml or .yml).
	DataFile string `yaml:"data_file"`
	// OutputDir overrides the output directory (default: parent of source root).
	OutputDir string `yaml:"output_dir"`
	// TemplateSuffix is the template file suffix.
	TemplateSuffix string `yaml:"template_suffix"`
	// OutputSuffix is the rendered file suffix.
	OutputSuffix string `yaml:"output_suffix"`
	// IgnorePatterns are glob patterns for template names to skip.
	IgnorePatterns []string `yaml:"ignore_patterns"`
	// MaxIncludeDepth is the maximum nested include depth.
	MaxIncludeDepth int `yaml:"max_include_depth"`
}
