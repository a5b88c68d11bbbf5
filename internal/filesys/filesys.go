// Package filesys provides the file system abstraction used by the rdgate
// configuration loader. It defines a small read-only interface and an
// implementation that delegates to the standard library, making it easier to
// test code that checks for declared certificate files on disk.
package filesys

import (
	"io/fs"
	"os"
)

// FS is the tiny surface the configuration loader needs.
// It is intentionally read-only: the loader never creates or modifies files,
// it only reads configuration text and probes declared certificate paths.
type FS interface {
	Stat(string) (fs.FileInfo, error)
	ReadFile(string) ([]byte, error)
}

// OS returns a file system implementation that delegates to the standard
// library.
func OS() OsFS {
	return OsFS{}
}

// OsFS implements FS against the local disk.
// All methods delegate to the standard library.
type OsFS struct{}

func (OsFS) Stat(p string) (fs.FileInfo, error) { return os.Stat(p) }
func (OsFS) ReadFile(p string) ([]byte, error)  { return os.ReadFile(p) }

var _ FS = OsFS{}

// Exists reports whether path names an existing file or directory.
// Any Stat error counts as "does not exist"; the loader treats an
// unreadable certificate path the same as a missing one.
func Exists(fsys FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}
