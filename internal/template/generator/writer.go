package generator

import (
	"bytes"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/natefinch/atomic"
	"github.com/tacogips/promptgen/internal/debug"
)

// Writer writes rendered output to the filesystem.
type Writer interface {
	// WriteFile creates or truncates path with content.
	WriteFile(path string, content []byte) error

	// CreateDir creates a directory and any necessary parent directories.
	CreateDir(path string) error

	// Exists checks if a file or directory exists at the given path.
	Exists(path string) bool
}

// FileWriter implements Writer for filesystem operations.
type FileWriter struct {
	mode os.FileMode
}

// NewFileWriter creates a FileWriter giving new files mode 0644.
func NewFileWriter() *FileWriter {
	return &FileWriter{mode: 0644}
}

// WriteFile replaces path with content via a temporary file and rename.
// Existing files keep their permissions.
func (w *FileWriter) WriteFile(path string, content []byte) error {
	existed := w.Exists(path)

	if err := atomic.WriteFile(path, bytes.NewReader(content)); err != nil {
		return newGeneratorError(GeneratorWriteFailed, "failed to write output", path, err)
	}
	if !existed {
		if err := os.Chmod(path, w.mode); err != nil {
			return newGeneratorError(GeneratorWriteFailed, "failed to set permissions", path, err)
		}
	}

	debug.Debug("[generator] Wrote %s (%s)", path, humanize.Bytes(uint64(len(content))))
	return nil
}

// CreateDir creates a directory and any necessary parent directories.
func (w *FileWriter) CreateDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return newGeneratorError(GeneratorWriteFailed, "failed to create directory", path, err)
	}
	return nil
}

// Exists checks if a file or directory exists at the given path.
func (w *FileWriter) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
