// Package data loads the variable context shared by every template render.
package data

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tacogips/promptgen/internal/debug"
	"gopkg.in/yaml.v3"
)

// Context maps variable names to JSON-compatible values. It is read-only
// once loaded.
type Context map[string]any

// DataError reports an unreadable or malformed data file.
type DataError struct {
	// File is the data file path.
	File string
	// Message describes the failure.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *DataError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("data file %s: %s: %v", e.File, e.Message, e.Cause)
	}
	return fmt.Sprintf("data file %s: %s", e.File, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *DataError) Unwrap() error {
	return e.Cause
}

// Load reads the data context from path. A missing file yields an empty
// context. Files ending in .yaml or .yml are decoded as YAML, anything else
// as JSON. The top level must be a mapping.
func Load(path string) (Context, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			debug.Debug("[data] No data file at %s, using empty context", path)
			return Context{}, nil
		}
		return nil, &DataError{File: path, Message: "failed to read", Cause: err}
	}

	var ctx Context
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		ctx, err = decodeYAML(raw)
	default:
		ctx, err = decodeJSON(raw)
	}
	if err != nil {
		return nil, &DataError{File: path, Message: "failed to parse", Cause: err}
	}
	if ctx == nil {
		ctx = Context{}
	}

	debug.Debug("[data] Loaded %d top-level key(s) from %s", len(ctx), path)
	return ctx, nil
}

func decodeJSON(raw []byte) (Context, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected content after top-level value")
	}
	return asContext(normalizeNumbers(v))
}

// normalizeNumbers replaces json.Number values with int64 when the number
// is integral and fits, float64 otherwise. Integers then render without an
// exponent or precision loss.
func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeNumbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = normalizeNumbers(e)
		}
		return t
	default:
		return v
	}
}

func decodeYAML(raw []byte) (Context, error) {
	var v any
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	if v == nil {
		return Context{}, nil
	}
	return asContext(v)
}

func asContext(v any) (Context, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level value must be an object, got %T", v)
	}
	return Context(m), nil
}
