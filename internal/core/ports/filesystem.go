// Package ports defines the core interfaces for the application.
package ports

import "io/fs"

// FileSystem is the read-only view of the disk the lookup engine runs against.
// Any call may fail with an I/O error.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether anything is present at path.
	Exists(path string) (bool, error)

	// Stat returns file info for path, following symlinks.
	Stat(path string) (fs.FileInfo, error)

	// ReadDir lists the entries of the directory at path, sorted by name.
	ReadDir(path string) ([]fs.FileInfo, error)
}
