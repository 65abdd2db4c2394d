package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFileConfig(t *testing.T) {
	fc := DefaultFileConfig()

	assert.Equal(t, "templates", fc.TemplatesDir)
	assert.Equal(t, "data.json", fc.DataFile)
	assert.Equal(t, ".liquid", fc.TemplateSuffix)
	assert.Equal(t, ".md", fc.OutputSuffix)
	assert.Equal(t, 10, fc.MaxIncludeDepth)
	assert.Empty(t, fc.OutputDir)
	assert.Empty(t, fc.IgnorePatterns)
}

func TestResolve_Defaults(t *testing.T) {
	root := filepath.Join(t.TempDir(), "src")
	require.NoError(t, os.MkdirAll(root, 0755))

	cfg, err := Resolve(ResolveOptions{Root: root})
	require.NoError(t, err)

	assert.Equal(t, root, cfg.SourceRoot)
	assert.Equal(t, filepath.Dir(root), cfg.OutputRoot)
	assert.Equal(t, filepath.Join(root, "templates"), cfg.TemplatesRoot)
	assert.Equal(t, filepath.Join(root, "data.json"), cfg.DataFile)
	assert.Empty(t, cfg.ConfigFile)
}

func TestResolve_EnvRoot(t *testing.T) {
	root := t.TempDir()
	t.Setenv(EnvRoot, root)

	cfg, err := Resolve(ResolveOptions{})
	require.NoError(t, err)
	assert.Equal(t, root, cfg.SourceRoot)
}

func TestResolve_ExecutableDirFallback(t *testing.T) {
	t.Setenv(EnvRoot, "")

	cfg, err := Resolve(ResolveOptions{})
	require.NoError(t, err)

	dir, err := ExecutableDir()
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.SourceRoot)
	assert.Equal(t, filepath.Dir(dir), cfg.OutputRoot)
}

func TestResolve_FileOverrides(t *testing.T) {
	root := t.TempDir()
	content := `templates_dir: prompts
data_file: vars.yaml
output_dir: ../out
template_suffix: .tpl
output_suffix: .txt
max_include_depth: 3
`
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(content), 0644))

	cfg, err := Resolve(ResolveOptions{Root: root})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, FileName), cfg.ConfigFile)
	assert.Equal(t, filepath.Join(root, "prompts"), cfg.TemplatesRoot)
	assert.Equal(t, filepath.Join(root, "vars.yaml"), cfg.DataFile)
	assert.Equal(t, filepath.Join(filepath.Dir(root), "out"), cfg.OutputRoot)
	assert.Equal(t, ".tpl", cfg.TemplateSuffix)
	assert.Equal(t, ".txt", cfg.OutputSuffix)
	assert.Equal(t, 3, cfg.MaxIncludeDepth)
	assert.Empty(t, cfg.IgnorePatterns)
}

func TestLoadFile_PartialsDirUnknown(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("partials_dir: fragments\n"), 0644))

	_, err := LoadFile(path)
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr), "expected ConfigError, got %v", err)
	assert.Equal(t, ConfigInvalid, cfgErr.Type)
}

func TestResolve_ExplicitConfigMissing(t *testing.T) {
	root := t.TempDir()

	_, err := Resolve(ResolveOptions{Root: root, ConfigFile: filepath.Join(root, "nope.yaml")})
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ConfigNotFound, cfgErr.Type)
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantErr  bool
		wantType ConfigErrorType
		check    func(t *testing.T, fc *FileConfig)
	}{
		{
			name:    "empty file uses defaults",
			content: "",
			check: func(t *testing.T, fc *FileConfig) {
				assert.Equal(t, DefaultFileConfig(), fc)
			},
		},
		{
			name:    "ignore patterns replace defaults",
			content: "ignore_patterns: [\"draft-*\"]\n",
			check: func(t *testing.T, fc *FileConfig) {
				assert.Equal(t, []string{"draft-*"}, fc.IgnorePatterns)
			},
		},
		{
			name:     "unknown key",
			content:  "templates_directory: x\n",
			wantErr:  true,
			wantType: ConfigInvalid,
		},
		{
			name:     "malformed yaml",
			content:  "templates_dir: [unterminated\n",
			wantErr:  true,
			wantType: ConfigInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			fc, err := LoadFile(path)
			if tt.wantErr {
				var cfgErr *ConfigError
				require.True(t, errors.As(err, &cfgErr), "expected ConfigError, got %v", err)
				assert.Equal(t, tt.wantType, cfgErr.Type)
				return
			}
			require.NoError(t, err)
			tt.check(t, fc)
		})
	}
}

func TestLoadFileOrDefault_Missing(t *testing.T) {
	fc, err := LoadFileOrDefault(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, DefaultFileConfig(), fc)
}

func TestConfigError_Error(t *testing.T) {
	err := &ConfigError{
		Type:    ConfigValidationFailed,
		File:    "promptgen.yaml",
		Field:   "output_suffix",
		Message: "must differ from template_suffix",
	}
	assert.Equal(t, "config promptgen.yaml: output_suffix: must differ from template_suffix", err.Error())

	cause := errors.New("boom")
	wrapped := newConfigError(ConfigInvalid, "", "failed", cause)
	assert.Equal(t, "config: failed: boom", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}
