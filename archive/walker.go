// Package archive builds a Walk abstraction on top of "archive/zip", used to
// inspect produced report archives.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strings"
)

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. The archive argument contains path to archive passed to
// Walk. The file argument is the zip.File structure for file in archive
// which satisfies match condition. If an error is returned, processing
// stops.
type WalkFunc func(archive string, file *zip.File) error

// Walk walks all the files in the archive whose names start with pattern,
// calling walkFn for each item. Entries with path traversal components
// ("..") or absolute paths stop the walk to prevent Zip Slip attacks.
func Walk(archive, pattern string, walkFn WalkFunc) error {

	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if !f.FileInfo().IsDir() && strings.HasPrefix(name, pattern) {
			if err := walkFn(archive, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadFile returns the contents of a single entry visited by Walk.
func ReadFile(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Names lists entry names in the archive with the given prefix, in archive
// order.
func Names(archive, pattern string) ([]string, error) {
	var names []string
	err := Walk(archive, pattern, func(_ string, f *zip.File) error {
		names = append(names, f.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
