package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validate checks a resolved configuration.
func Validate(cfg *Config) error {
	file := cfg.ConfigFile

	if cfg.SourceRoot == "" {
		return newFieldError(file, "source_root", "source root cannot be empty")
	}
	if err := validateSuffix(file, "template_suffix", cfg.TemplateSuffix); err != nil {
		return err
	}
	if err := validateSuffix(file, "output_suffix", cfg.OutputSuffix); err != nil {
		return err
	}
	if cfg.TemplateSuffix == cfg.OutputSuffix {
		return newFieldError(file, "output_suffix", "must differ from template_suffix")
	}
	if cfg.MaxIncludeDepth < 1 {
		return newFieldError(file, "max_include_depth", "max include depth must be at least 1")
	}
	for _, pattern := range cfg.IgnorePatterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return newFieldError(file, "ignore_patterns", fmt.Sprintf("invalid glob %q", pattern))
		}
	}
	return nil
}

func validateSuffix(file, field, suffix string) error {
	if !strings.HasPrefix(suffix, ".") || len(suffix) < 2 {
		return newFieldError(file, field, fmt.Sprintf("suffix %q must start with '.'", suffix))
	}
	if strings.ContainsAny(suffix, `/\`) {
		return newFieldError(file, field, fmt.Sprintf("suffix %q must not contain path separators", suffix))
	}
	return nil
}
