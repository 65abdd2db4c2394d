package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagRoot    = "root"
	FlagConfig  = "config"
	FlagDryRun  = "dry-run"
	FlagJSON    = "json"
	FlagNoColor = "no-color"
	FlagQuiet   = "quiet"
	FlagDebug   = "debug"

	// Flag descriptions
	DescRoot    = "Source root holding templates/, partials/ and data.json (default: executable directory, or $PROMPTGEN_ROOT)"
	DescConfig  = "Path to promptgen.yaml (default: <root>/promptgen.yaml if present)"
	DescDryRun  = "Render templates without writing output files"
	DescJSON    = "Output as JSON"
	DescNoColor = "Disable colored output"
	DescQuiet   = "Suppress progress output"
	DescDebug   = "Enable debug logging"
)
