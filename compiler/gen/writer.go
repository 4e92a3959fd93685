package gen

import (
	"os"
	"path/filepath"
)

// Writer persists emitted files under a single output directory, one file
// per table. Writes overwrite unconditionally; there is no merge or diff.
type Writer struct {
	dir string
}

// NewWriter creates a Writer rooted at dir. The directory is created on
// the first write.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// Write stores content under the writer's directory, creating the
// directory (recursively) if absent and replacing any existing file.
func (w *Writer) Write(name, content string) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(w.dir, name), []byte(content), 0o644)
}
