package datapack

import (
	"io"
	"os"
	"path/filepath"
)

// FSWriter creates files under a root directory on the real filesystem.
type FSWriter struct {
	Root string
}

// NewFSWriter returns a Writer rooted at root. root and any intermediate
// directories are created lazily: each Create call creates the missing
// parent directories of the file it creates.
func NewFSWriter(root string) *FSWriter {
	return &FSWriter{Root: root}
}

func (w *FSWriter) Create(path string) (io.WriteCloser, error) {
	full := filepath.Join(w.Root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return nil, err
	}
	return os.Create(full)
}
