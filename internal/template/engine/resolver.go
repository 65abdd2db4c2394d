package engine

import (
	"os"
	"path/filepath"
	"strings"
)

// FileResolver resolves include references as paths relative to Root.
// References may not be absolute or escape Root.
type FileResolver struct {
	Root string
}

// NewFileResolver creates a FileResolver rooted at root.
func NewFileResolver(root string) FileResolver {
	return FileResolver{Root: filepath.Clean(root)}
}

// Resolve returns the path of ref under Root.
func (r FileResolver) Resolve(ref string) (string, error) {
	if strings.TrimSpace(ref) == "" {
		return "", &IncludeError{Type: IncludeInvalid, Ref: ref, Message: "empty include path"}
	}

	rel := filepath.Clean(filepath.FromSlash(ref))
	if filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &IncludeError{Type: IncludeOutsideRoot, Ref: ref, Message: "path escapes include root"}
	}

	path := filepath.Join(r.Root, rel)
	info, err := os.Stat(path)
	if err != nil {
		return "", &IncludeError{Type: IncludeNotFound, Ref: ref, Message: "file not found", Cause: err}
	}
	if info.IsDir() {
		return "", &IncludeError{Type: IncludeNotFound, Ref: ref, Message: "path is a directory"}
	}
	return path, nil
}
