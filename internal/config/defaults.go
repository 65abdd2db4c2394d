package config

// Default layout of a source root.
const (
	DefaultTemplatesDir    = "templates"
	DefaultDataFile        = "data.json"
	DefaultTemplateSuffix  = ".liquid"
	DefaultOutputSuffix    = ".md"
	DefaultMaxIncludeDepth = 10

	// FileName is the optional configuration file looked up in the source root.
	FileName = "promptgen.yaml"

	// EnvRoot overrides the source root when no --root flag is given.
	EnvRoot = "PROMPTGEN_ROOT"
)

// DefaultFileConfig returns the configuration used when no promptgen.yaml exists.
// No ignore patterns are set: every file with the template suffix is a
// template unless promptgen.yaml says otherwise.
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		TemplatesDir:    DefaultTemplatesDir,
		DataFile:        DefaultDataFile,
		TemplateSuffix:  DefaultTemplateSuffix,
		OutputSuffix:    DefaultOutputSuffix,
		MaxIncludeDepth: DefaultMaxIncludeDepth,
	}
}
