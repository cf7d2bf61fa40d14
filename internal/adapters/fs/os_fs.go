package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
)

// OSFileSystem resolves every path against Root. An empty Root means the
// working directory.
type OSFileSystem struct {
	Root string
}

func NewOSFileSystem(root string) *OSFileSystem {
	return &OSFileSystem{Root: root}
}

func (fs *OSFileSystem) path(name string) string {
	if fs.Root == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(fs.Root, name)
}

func (fs *OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(fs.path(name))
}

func (fs *OSFileSystem) ReadDir(name string) ([]iofs.DirEntry, error) {
	return os.ReadDir(fs.path(name))
}

func (fs *OSFileSystem) FileExists(name string) bool {
	info, err := os.Stat(fs.path(name))
	return err == nil && !info.IsDir()
}

func (fs *OSFileSystem) WriteFile(name string, data []byte, perm iofs.FileMode) error {
	return os.WriteFile(fs.path(name), data, perm)
}

func (fs *OSFileSystem) MkdirAll(name string, perm iofs.FileMode) error {
	return os.MkdirAll(fs.path(name), perm)
}

func (fs *OSFileSystem) Remove(name string) error {
	return os.Remove(fs.path(name))
}

func (fs *OSFileSystem) RemoveAll(name string) error {
	return os.RemoveAll(fs.path(name))
}
