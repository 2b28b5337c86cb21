// Package files resolves user-supplied file names to references under a root directory.
package files

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/beekhof/file-stack/pkg/stack"
)

var (
	// ErrNotFound is returned when a name does not point at an existing regular file
	ErrNotFound = errors.New("file not found")
	// ErrAccessDenied is returned for names outside the root or files that cannot be read
	ErrAccessDenied = errors.New("access denied")
	// ErrNotAccepted is returned when the file extension is not in the accepted list
	ErrNotAccepted = errors.New("file type not accepted")
)

// File is a resolved file under the root
type File struct {
	Ref     stack.FileReference
	Name    string
	Ext     string
	Type    Type
	Size    int64
	ModTime time.Time
}

// Resolver looks file names up in FS. AcceptTypes limits which extensions
// resolve; an empty list accepts everything.
type Resolver struct {
	Root        string
	AcceptTypes []string
	FS          fs.StatFS
}

// NewResolver creates a resolver over the directory root
func NewResolver(root string, acceptTypes []string) *Resolver {
	return &Resolver{
		Root:        root,
		AcceptTypes: acceptTypes,
		FS:          os.DirFS(root).(fs.StatFS),
	}
}

// ResolveEncoded resolves a URL path-encoded name. The name is decoded
// exactly once before lookup.
func (r *Resolver) ResolveEncoded(name string) (File, error) {
	decoded, err := url.PathUnescape(strings.TrimSpace(name))
	if err != nil {
		return File{}, fmt.Errorf("invalid encoded name %q: %w", name, ErrNotFound)
	}
	return r.Resolve(decoded)
}

// Resolve turns a name into a File. The name is used as given; a literal
// '%' is part of the file name.
func (r *Resolver) Resolve(name string) (File, error) {
	name = filepath.ToSlash(strings.TrimSpace(name))
	if name == "" {
		return File{}, fmt.Errorf("empty file name: %w", ErrNotFound)
	}

	cleaned := path.Clean(strings.TrimPrefix(name, "/"))
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") || !fs.ValidPath(cleaned) {
		return File{}, fmt.Errorf("%s is outside the files root: %w", name, ErrAccessDenied)
	}

	info, err := r.FS.Stat(cleaned)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return File{}, fmt.Errorf("failed to stat %s: %w", cleaned, ErrAccessDenied)
		}
		return File{}, fmt.Errorf("failed to stat %s: %w", cleaned, ErrNotFound)
	}
	if !info.Mode().IsRegular() {
		return File{}, fmt.Errorf("%s is not a regular file: %w", cleaned, ErrNotFound)
	}

	ext := Extension(cleaned)
	if !r.Accepts(ext) {
		return File{}, fmt.Errorf("%s has extension %q: %w", cleaned, ext, ErrNotAccepted)
	}

	return File{
		Ref:     stack.NewFileReference(cleaned),
		Name:    path.Base(cleaned),
		Ext:     ext,
		Type:    TypeOf(ext),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// Accepts reports whether files with extension ext may be resolved
func (r *Resolver) Accepts(ext string) bool {
	if len(r.AcceptTypes) == 0 {
		return true
	}
	for _, accepted := range r.AcceptTypes {
		if strings.EqualFold(strings.TrimPrefix(accepted, "."), ext) {
			return true
		}
	}
	return false
}

// Walk lists the paths of every accepted regular file under the root
func (r *Resolver) Walk() ([]string, error) {
	var paths []string
	err := fs.WalkDir(r.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && r.Accepts(Extension(p)) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", r.Root, err)
	}
	return paths, nil
}
