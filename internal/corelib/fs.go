package corelib

import (
	"errors"
	"io/fs"
	"os"
)

var errLibraryNotFound = errors.New("library not found in any search root")

func osRootFS(root string) fs.FS {
	return os.DirFS(root)
}
