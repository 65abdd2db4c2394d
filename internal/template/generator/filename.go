package generator

import (
	"path/filepath"
	"strings"
)

// OutputName maps a template file name to its output file name by replacing
// templateSuffix with outputSuffix. A name that is only the suffix keeps it,
// so ".liquid" becomes ".liquid.md".
func OutputName(name, templateSuffix, outputSuffix string) string {
	base := strings.TrimSuffix(name, templateSuffix)
	if base == "" || base == name {
		base = name
	}
	return base + outputSuffix
}

// OutputPath returns the output file for a template. Only the base name is
// used, so the output namespace is flat: templates in different
// subdirectories with the same name map to the same path.
func OutputPath(outputRoot, templateName, templateSuffix, outputSuffix string) string {
	return filepath.Join(outputRoot, OutputName(filepath.Base(templateName), templateSuffix, outputSuffix))
}
