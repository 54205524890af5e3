// Package resource maps resource names to files found on a list of search
// paths.
package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"sort"
)

var (
	// ErrInvalidPath is returned for search paths that are not valid fs.FS
	// paths.
	ErrInvalidPath = errors.New("resource: invalid search path")
	// ErrNotFound is returned when a name is not in the index.
	ErrNotFound = errors.New("resource: not found")
)

// Index resolves resource names against its search paths. A name is the
// slash-separated path of a file relative to the search path it was found
// on. When two paths hold the same name, the path added first wins.
//
// The index is only rebuilt by Reindex; files added afterwards stay
// invisible until the next call.
type Index struct {
	fsys  fs.FS
	paths []string
	files map[string]string
}

// NewIndex creates an index over fsys with the given search paths.
func NewIndex(fsys fs.FS, paths ...string) (*Index, error) {
	idx := &Index{fsys: fsys, files: make(map[string]string)}
	for _, p := range paths {
		if err := idx.AddPath(p); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

// AddPath appends a search path. Adding a path twice is a no-op.
func (idx *Index) AddPath(p string) error {
	p = path.Clean(p)
	if !fs.ValidPath(p) {
		return fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	if !slices.Contains(idx.paths, p) {
		idx.paths = append(idx.paths, p)
	}
	return nil
}

// Paths returns the search paths in lookup order.
func (idx *Index) Paths() []string {
	return slices.Clone(idx.paths)
}

// Reindex rescans every search path. Paths that do not exist are skipped.
func (idx *Index) Reindex() error {
	files := make(map[string]string)
	for _, root := range idx.paths {
		err := fs.WalkDir(idx.fsys, root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				if p == root && errors.Is(err, fs.ErrNotExist) {
					return fs.SkipDir
				}
				return err
			}
			if d.IsDir() {
				return nil
			}
			name := p
			if root != "." {
				name = p[len(root)+1:]
			}
			if _, seen := files[name]; !seen {
				files[name] = p
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to index %s: %w", root, err)
		}
	}
	idx.files = files
	return nil
}

// Locate returns the fs path the name resolves to.
func (idx *Index) Locate(name string) (string, error) {
	p, ok := idx.files[path.Clean(name)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return p, nil
}

// Open opens the named resource.
func (idx *Index) Open(name string) (fs.File, error) {
	p, err := idx.Locate(name)
	if err != nil {
		return nil, err
	}
	return idx.fsys.Open(p)
}

// ReadFile reads the named resource.
func (idx *Index) ReadFile(name string) ([]byte, error) {
	p, err := idx.Locate(name)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(idx.fsys, p)
}

// Names returns every indexed name, sorted.
func (idx *Index) Names() []string {
	names := make([]string, 0, len(idx.files))
	for n := range idx.files {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of indexed files.
func (idx *Index) Len() int {
	return len(idx.files)
}
