package datapack

import (
	"bytes"
	"io"
	"sync"
)

// MemWriter is an in-memory Writer, used by tests that check the exact text
// the code generator emits without touching the real filesystem.
type MemWriter struct {
	mu    sync.Mutex
	Files map[string][]byte
}

// NewMemWriter returns an empty in-memory Writer.
func NewMemWriter() *MemWriter {
	return &MemWriter{Files: make(map[string][]byte)}
}

func (w *MemWriter) Create(path string) (io.WriteCloser, error) {
	return &memFile{w: w, path: path}, nil
}

// File returns the bytes written to path, or ("", false) if no file at path
// has been closed yet; a file's content is recorded when it is closed.
func (w *MemWriter) File(path string) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	b, ok := w.Files[path]
	return string(b), ok
}

type memFile struct {
	w    *MemWriter
	path string
	buf  bytes.Buffer
}

func (f *memFile) Write(p []byte) (int, error) { return f.buf.Write(p) }

func (f *memFile) Close() error {
	f.w.mu.Lock()
	defer f.w.mu.Unlock()
	f.w.Files[f.path] = append([]byte(nil), f.buf.Bytes()...)
	return nil
}
