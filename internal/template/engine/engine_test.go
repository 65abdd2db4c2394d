package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tacogips/promptgen/internal/data"
)

// writeTree creates files under a new temp root and returns the root.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func TestLiquidRenderer_Render(t *testing.T) {
	vars := data.Context{
		"name":    "World",
		"enabled": true,
		"tags":    []any{"a", "b"},
		"user":    map[string]any{"role": "admin"},
	}

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"variable", "Hello, {{ name }}!", "Hello, World!"},
		{"undefined variable renders empty", "Hello, {{ missing }}!", "Hello, !"},
		{"nested value", "role={{ user.role }}", "role=admin"},
		{"conditional", "{% if enabled %}on{% else %}off{% endif %}", "on"},
		{"loop", "{% for t in tags %}{{ t }};{% endfor %}", "a;b;"},
		{"filter", "{{ name | upcase }}", "WORLD"},
		{"static text", "no placeholders", "no placeholders"},
	}

	r := NewLiquidRenderer(0)
	resolver := NewFileResolver(t.TempDir())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render("test.liquid", []byte(tt.source), resolver, vars)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLiquidRenderer_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"unterminated block", "{% if enabled %}never closed"},
		{"unknown tag", "{% frobnicate %}"},
		{"undefined filter", "{{ name | nosuchfilter }}"},
	}

	r := NewLiquidRenderer(0)
	resolver := NewFileResolver(t.TempDir())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Render("bad.liquid", []byte(tt.source), resolver, data.Context{"name": "x"})
			assert.Error(t, err)
		})
	}
}

func TestLiquidRenderer_Include(t *testing.T) {
	root := writeTree(t, map[string]string{
		"partials/header.liquid": "# {{ title }}\n",
		"partials/outer.liquid":  "[{% include 'partials/inner.liquid' %}]",
		"partials/inner.liquid":  "inner {{ title }}",
	})
	r := NewLiquidRenderer(10)
	resolver := NewFileResolver(root)
	vars := data.Context{"title": "Doc"}

	got, err := r.Render("templates/a.liquid", []byte("{% include 'partials/header.liquid' %}body"), resolver, vars)
	require.NoError(t, err)
	assert.Equal(t, "# Doc\nbody", got)

	// nested includes resolve against the same root, not the including file
	got, err = r.Render("templates/b.liquid", []byte("{% include 'partials/outer.liquid' %}"), resolver, vars)
	require.NoError(t, err)
	assert.Equal(t, "[inner Doc]", got)
}

func TestLiquidRenderer_IncludeErrors(t *testing.T) {
	root := writeTree(t, map[string]string{
		"partials/loop.liquid": "{% include 'partials/loop.liquid' %}",
		"partials/a.liquid":    "{% include 'partials/b.liquid' %}",
		"partials/b.liquid":    "{% include 'partials/c.liquid' %}",
		"partials/c.liquid":    "deep",
	})

	tests := []struct {
		name     string
		maxDepth int
		source   string
		wantMsg  string
	}{
		{"missing partial", 10, "{% include 'partials/missing.liquid' %}", "partials/missing.liquid"},
		{"escapes root", 10, "{% include '../secret.liquid' %}", "escapes include root"},
		{"non-string argument", 10, "{% include 42 %}", "must be a string"},
		{"circular", 10, "{% include 'partials/loop.liquid' %}", "circular include"},
		{"too deep", 2, "{% include 'partials/a.liquid' %}", "maximum include depth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewLiquidRenderer(tt.maxDepth)
			_, err := r.Render("t.liquid", []byte(tt.source), NewFileResolver(root), data.Context{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	// depth 3 is enough for a -> b -> c
	got, err := NewLiquidRenderer(3).Render("t.liquid", []byte("{% include 'partials/a.liquid' %}"), NewFileResolver(root), data.Context{})
	require.NoError(t, err)
	assert.Equal(t, "deep", got)
}

func TestFileResolver_Resolve(t *testing.T) {
	root := writeTree(t, map[string]string{"partials/p.liquid": "x"})
	r := NewFileResolver(root)

	path, err := r.Resolve("partials/p.liquid")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "partials", "p.liquid"), path)

	tests := []struct {
		ref      string
		wantType IncludeErrorType
	}{
		{"", IncludeInvalid},
		{"  ", IncludeInvalid},
		{"../x.liquid", IncludeOutsideRoot},
		{"partials/../../x.liquid", IncludeOutsideRoot},
		{"/etc/passwd", IncludeOutsideRoot},
		{"partials/none.liquid", IncludeNotFound},
		{"partials", IncludeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			_, err := r.Resolve(tt.ref)
			var incErr *IncludeError
			require.True(t, errors.As(err, &incErr), "expected IncludeError, got %v", err)
			assert.Equal(t, tt.wantType, incErr.Type)
		})
	}
}

type stubRenderer struct {
	out string
	err error
	got []byte
}

func (s *stubRenderer) Render(name string, source []byte, resolver Resolver, vars data.Context) (string, error) {
	s.got = source
	return s.out, s.err
}

func TestRenderTemplate(t *testing.T) {
	root := writeTree(t, map[string]string{"templates/greet.liquid": "Hello, {{ name }}!"})

	t.Run("success", func(t *testing.T) {
		out, err := RenderTemplate(NewLiquidRenderer(0), root, filepath.Join("templates", "greet.liquid"), data.Context{"name": "World"})
		require.NoError(t, err)
		assert.Equal(t, "Hello, World!", out)
	})

	t.Run("renderer error is wrapped", func(t *testing.T) {
		cause := errors.New("engine exploded")
		stub := &stubRenderer{err: cause}

		_, err := RenderTemplate(stub, root, filepath.Join("templates", "greet.liquid"), data.Context{})
		var renderErr *RenderError
		require.True(t, errors.As(err, &renderErr))
		assert.Equal(t, filepath.Join("templates", "greet.liquid"), renderErr.Template)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "Hello, {{ name }}!", string(stub.got))
	})

	t.Run("missing template", func(t *testing.T) {
		_, err := RenderTemplate(&stubRenderer{}, root, "templates/none.liquid", data.Context{})
		var renderErr *RenderError
		require.True(t, errors.As(err, &renderErr))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
