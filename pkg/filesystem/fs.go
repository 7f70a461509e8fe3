// Package filesystem provides the filesystem scaffy rewrites templates on.
//
// The core never touches disk; commands receive an FS so tests can run on
// an in-memory tree.
package filesystem

import (
	"io/fs"
	"path/filepath"
)

// FS is the set of file operations a scaffolding run needs.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(name string) error
	// Walk visits root and everything below it in lexical order.
	Walk(root string, fn filepath.WalkFunc) error
}

// Exists reports whether name can be stat'ed.
func Exists(fsys FS, name string) bool {
	_, err := fsys.Stat(name)
	return err == nil
}
