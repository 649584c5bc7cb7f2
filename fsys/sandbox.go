// Package fsys gives writers a filesystem scoped to a single base directory.
// Every operation resolves its target's real path and refuses to act outside
// the base, so a writer handed hostile sheet names or option values cannot
// touch anything beyond its own working folder.
package fsys

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// Sentinel error kinds, distinguishable with errors.Is. They are never
// retried here - the writer treats them as fatal for the current write.
var (
	// ErrOutsideBase marks operations whose target resolves outside the
	// sandbox base directory.
	ErrOutsideBase = errors.New("path is outside of the base folder")
	// ErrNotResolved marks operations whose target cannot be resolved to a
	// real path at all.
	ErrNotResolved = errors.New("path cannot be resolved")
)

// Sandbox performs filesystem operations restricted to one base directory
// established at construction.
type Sandbox struct {
	base string // canonical real path of the base directory
}

// New creates a sandbox rooted at base, which must be an existing directory.
func New(base string) (*Sandbox, error) {
	real, err := realPath(base)
	if err != nil {
		return nil, err
	}
	fi, err := os.Stat(real)
	if err != nil {
		return nil, fmt.Errorf("unable to access base folder '%s': %w", base, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("base folder '%s' is not a directory", base)
	}
	return &Sandbox{base: real}, nil
}

// NewTemp creates a uniquely named working folder under parent (or the OS
// temp directory when parent is empty) and returns a sandbox rooted there.
// Each writer session gets its own folder so concurrent writers never share
// state on disk.
func NewTemp(parent string) (*Sandbox, error) {
	if len(parent) == 0 {
		parent = os.TempDir()
	}
	dir := filepath.Join(parent, "openspout-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("unable to create working folder '%s': %w", dir, err)
	}
	return New(dir)
}

// BaseFolder returns the canonical path the sandbox is rooted at.
func (s *Sandbox) BaseFolder() string {
	return s.base
}

// CreateFolder creates a folder under parent and returns its path.
func (s *Sandbox) CreateFolder(parent, name string) (string, error) {
	if err := s.guard(parent); err != nil {
		return "", err
	}
	dir := filepath.Join(parent, name)
	if err := os.Mkdir(dir, 0700); err != nil {
		return "", fmt.Errorf("unable to create folder '%s': %w", dir, err)
	}
	return dir, nil
}

// CreateFile creates a file with the given contents under parent and returns
// its path. An existing file is overwritten.
func (s *Sandbox) CreateFile(parent, name string, contents []byte) (string, error) {
	if err := s.guard(parent); err != nil {
		return "", err
	}
	fname := filepath.Join(parent, name)
	if err := os.WriteFile(fname, contents, 0600); err != nil {
		return "", fmt.Errorf("unable to create file '%s': %w", fname, err)
	}
	return fname, nil
}

// DeleteFile removes the file at path. A missing file is a no-op, not an
// error.
func (s *Sandbox) DeleteFile(path string) error {
	if _, err := os.Lstat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := s.guard(path); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("unable to delete file '%s': %w", path, err)
	}
	return nil
}

// DeleteFolderRecursively removes the folder at path with everything in it,
// children before parents. Failures on individual entries are aggregated and
// do not stop the rest of the tree from being cleaned up.
func (s *Sandbox) DeleteFolderRecursively(path string) error {
	if err := s.guard(path); err != nil {
		return err
	}
	return removeTree(path)
}

func removeTree(dir string) (err error) {
	entries, er := os.ReadDir(dir)
	if er != nil {
		return fmt.Errorf("unable to read folder '%s': %w", dir, er)
	}
	for _, e := range entries {
		sub := filepath.Join(dir, e.Name())
		if e.IsDir() {
			err = multierr.Append(err, removeTree(sub))
			continue
		}
		if er := os.Remove(sub); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to delete file '%s': %w", sub, er))
		}
	}
	if er := os.Remove(dir); er != nil {
		err = multierr.Append(err, fmt.Errorf("unable to delete folder '%s': %w", dir, er))
	}
	return
}

// guard rejects targets that do not resolve to a real path under the base
// directory.
func (s *Sandbox) guard(path string) error {
	real, err := realPath(path)
	if err != nil {
		return err
	}
	if real != s.base && !strings.HasPrefix(real, s.base+string(os.PathSeparator)) {
		return fmt.Errorf("'%s' (real path '%s', base '%s'): %w", path, real, s.base, ErrOutsideBase)
	}
	return nil
}

func realPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("'%s': %w: %v", path, ErrNotResolved, err)
	}
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("'%s': %w: %v", path, ErrNotResolved, err)
	}
	return real, nil
}
