package stack

import (
	"path"
	"path/filepath"
	"strings"
)

// FileReference identifies a resolved file by its canonical path relative to
// the files root. Two references are equal iff their paths are equal, so the
// type can be compared with == and used as a map key.
type FileReference struct {
	path string
}

// NewFileReference builds a reference from a path. OS separators become
// forward slashes, the path is cleaned and any leading slash is dropped.
func NewFileReference(p string) FileReference {
	p = filepath.ToSlash(strings.TrimSpace(p))
	if p == "" {
		return FileReference{}
	}
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	return FileReference{path: p}
}

// Path returns the canonical full path
func (r FileReference) Path() string {
	return r.path
}

// IsZero reports whether the reference was never set
func (r FileReference) IsZero() bool {
	return r.path == ""
}

func (r FileReference) String() string {
	return r.path
}
