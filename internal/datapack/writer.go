// Package datapack writes the on-disk layout of a Minecraft data pack: the
// pack.mcmeta descriptor, the vanilla load-tag, the namespace's own
// .load.mcfunction, and the per-function .mcfunction files the code
// generator produces. Every write goes through the Writer interface so the
// code generator and CLI never call os directly, which keeps compilation
// testable in memory.
package datapack

import "io"

// Writer creates files at datapack-relative paths. Implementations must
// create any missing parent directories.
type Writer interface {
	// Create creates (or truncates) the file at path and returns a handle
	// to write its content. The caller must Close it.
	Create(path string) (io.WriteCloser, error)
}
