package engine

import (
	"strings"

	"github.com/osteele/liquid"
	"github.com/osteele/liquid/render"
	"github.com/tacogips/promptgen/internal/data"
	"github.com/tacogips/promptgen/internal/debug"
)

// DefaultMaxIncludeDepth is used when LiquidRenderer is built with a
// non-positive depth.
const DefaultMaxIncludeDepth = 10

// LiquidRenderer renders Liquid templates. Its include tag resolves every
// reference through the Resolver, so nested includes share one root rather
// than resolving relative to the including file.
type LiquidRenderer struct {
	maxIncludeDepth int
}

// NewLiquidRenderer creates a LiquidRenderer.
func NewLiquidRenderer(maxIncludeDepth int) *LiquidRenderer {
	if maxIncludeDepth <= 0 {
		maxIncludeDepth = DefaultMaxIncludeDepth
	}
	return &LiquidRenderer{maxIncludeDepth: maxIncludeDepth}
}

// Render parses and renders source. Undefined variables render as empty.
func (r *LiquidRenderer) Render(name string, source []byte, resolver Resolver, vars data.Context) (string, error) {
	engine := liquid.NewEngine()
	inc := &includeState{max: r.maxIncludeDepth, resolver: resolver}
	engine.RegisterTag("include", inc.tag)

	tpl, serr := engine.ParseTemplateLocation(source, name, 1)
	if serr != nil {
		return "", serr
	}
	out, serr := tpl.RenderString(liquid.Bindings(vars))
	if serr != nil {
		return "", serr
	}
	return out, nil
}

// includeState tracks the include chain of one Render call. Includes are
// rendered synchronously, so the stack mirrors the nesting.
type includeState struct {
	max      int
	resolver Resolver
	stack    []string
}

func (s *includeState) tag(ctx render.Context) (string, error) {
	args := strings.TrimSpace(ctx.TagArgs())
	value, err := ctx.EvaluateString(args)
	if err != nil {
		return "", &IncludeError{Type: IncludeInvalid, Ref: args, Message: "cannot evaluate include argument", Cause: err}
	}
	ref, ok := value.(string)
	if !ok {
		return "", &IncludeError{Type: IncludeInvalid, Ref: args, Message: "include argument must be a string"}
	}

	if len(s.stack) >= s.max {
		return "", &IncludeError{Type: MaxIncludeDepth, Ref: ref, Message: "maximum include depth exceeded"}
	}

	path, err := s.resolver.Resolve(ref)
	if err != nil {
		return "", err
	}
	for _, p := range s.stack {
		if p == path {
			return "", &IncludeError{
				Type:    CircularInclude,
				Ref:     ref,
				Message: "circular include: " + strings.Join(append(s.stack, path), " -> "),
			}
		}
	}

	debug.Debug("[engine] Including %s (depth %d)", path, len(s.stack)+1)
	s.stack = append(s.stack, path)
	defer func() { s.stack = s.stack[:len(s.stack)-1] }()

	return ctx.RenderFile(path, map[string]interface{}{})
}
