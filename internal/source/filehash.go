// Package source defines FileHash, Flint's opaque per-file identifier, and
// the Loader interface that abstracts concrete disk I/O (spec.md §1: "the
// concrete disk I/O (abstracted as 'load source by path')" is an external
// collaborator, not part of the core).
package source

import (
	"path/filepath"

	"github.com/cespare/xxhash/v2"
)

// FileHash is an opaque identifier for an imported source file. Equality
// is by canonical path; the precomputed hash is only a fast-path
// short-circuit (mirrors the teacher's FileID/StringRef fast-hash-then-
// compare pattern), never the sole equality criterion.
type FileHash struct {
	path string
	hash uint64
}

// Empty is the sentinel FileHash ("no file"), used in synthetic
// diagnostics that are not anchored to any real file.
var Empty = FileHash{}

// New canonicalizes path (Abs + Clean) and derives a FileHash from it.
func New(path string) FileHash {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	return FileHash{path: abs, hash: xxhash.Sum64String(abs)}
}

func (f FileHash) Path() string  { return f.path }
func (f FileHash) IsEmpty() bool { return f.path == "" }

// Equal implements the FileHash equality-by-path contract (spec.md §3).
func (f FileHash) Equal(other FileHash) bool {
	if f.hash != other.hash {
		return false
	}
	return f.path == other.path
}

func (f FileHash) String() string { return f.path }

// Loader abstracts concrete disk I/O: given a path, return its contents.
// DiskLoader below is the os.ReadFile-backed implementation; the core
// only depends on this interface, per spec.md §1's external collaborator
// boundary.
type Loader interface {
	Load(path string) ([]byte, error)
}

// DiskLoader is the default Loader, reading from the local filesystem.
type DiskLoader struct{}

func (DiskLoader) Load(path string) ([]byte, error) {
	return readFile(path)
}
