package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/tacogips/promptgen/internal/debug"
	"gopkg.in/yaml.v3"
)

// ResolveOptions carries explicit overrides for Resolve.
type ResolveOptions struct {
	// Root overrides the source root. Empty means PROMPTGEN_ROOT, then the
	// executable's directory.
	Root string
	// ConfigFile is an explicit promptgen.yaml path. When set, the file must exist.
	ConfigFile string
}

// Resolve computes the run configuration from the install location and
// the given overrides.
func Resolve(opts ResolveOptions) (*Config, error) {
	root, err := resolveRoot(opts.Root)
	if err != nil {
		return nil, err
	}
	debug.Debug("[config] Source root: %s", root)

	var fc *FileConfig
	configFile := opts.ConfigFile
	if configFile != "" {
		if configFile, err = filepath.Abs(configFile); err != nil {
			return nil, newConfigError(ConfigInvalid, opts.ConfigFile, "failed to resolve path", err)
		}
		fc, err = LoadFile(configFile)
	} else {
		configFile = filepath.Join(root, FileName)
		fc, err = LoadFileOrDefault(configFile)
		if _, statErr := os.Stat(configFile); statErr != nil {
			configFile = ""
		}
	}
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		SourceRoot:      root,
		OutputRoot:      filepath.Dir(root),
		TemplatesRoot:   underRoot(root, fc.TemplatesDir),
		DataFile:        underRoot(root, fc.DataFile),
		ConfigFile:      configFile,
		TemplateSuffix:  fc.TemplateSuffix,
		OutputSuffix:    fc.OutputSuffix,
		IgnorePatterns:  fc.IgnorePatterns,
		MaxIncludeDepth: fc.MaxIncludeDepth,
	}
	if fc.OutputDir != "" {
		cfg.OutputRoot = underRoot(root, fc.OutputDir)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ExecutableDir returns the directory of the running executable with
// symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", newConfigError(ConfigRootUnresolved, "", "cannot locate executable", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

func resolveRoot(root string) (string, error) {
	if root == "" {
		root = os.Getenv(EnvRoot)
	}
	if root == "" {
		return ExecutableDir()
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", newConfigError(ConfigRootUnresolved, root, "failed to resolve absolute path", err)
	}
	return abs, nil
}

// underRoot joins a relative path onto root and keeps absolute paths as is.
func underRoot(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

// LoadFile loads promptgen.yaml from path. Unknown keys are rejected.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newConfigError(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, newConfigError(ConfigInvalid, path, "failed to read configuration file", err)
	}

	var fc FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, newConfigError(ConfigInvalid, path, "invalid YAML", err)
	}

	mergeFileConfig(&fc, DefaultFileConfig())
	debug.Debug("[config] Loaded %s", path)
	return &fc, nil
}

// LoadFileOrDefault loads promptgen.yaml or returns defaults if it doesn't exist.
func LoadFileOrDefault(path string) (*FileConfig, error) {
	fc, err := LoadFile(path)
	if err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) && cfgErr.Type == ConfigNotFound {
			return DefaultFileConfig(), nil
		}
		return nil, err
	}
	return fc, nil
}

// mergeFileConfig fills zero-valued fields of fc from defaults.
func mergeFileConfig(fc, defaults *FileConfig) {
	if fc.TemplatesDir == "" {
		fc.TemplatesDir = defaults.TemplatesDir
	}
	if fc.DataFile == "" {
		fc.DataFile = defaults.DataFile
	}
	if fc.TemplateSuffix == "" {
		fc.TemplateSuffix = defaults.TemplateSuffix
	}
	if fc.OutputSuffix == "" {
		fc.OutputSuffix = defaults.OutputSuffix
	}
	if fc.IgnorePatterns == nil {
		fc.IgnorePatterns = defaults.IgnorePatterns
	}
	if fc.MaxIncludeDepth == 0 {
		fc.MaxIncludeDepth = defaults.MaxIncludeDepth
	}
}
