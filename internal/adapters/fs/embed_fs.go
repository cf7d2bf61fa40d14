package fs

import (
	"errors"
	iofs "io/fs"
	"path"
)

var ErrReadOnly = errors.New("embedded filesystem is read-only")

// EmbedFileSystem exposes a read-only io/fs.FS, usually an embed.FS rooted at
// a subdirectory, through FileSystem.
type EmbedFileSystem struct {
	fs iofs.FS
}

func NewEmbedFileSystem(fsys iofs.FS) *EmbedFileSystem {
	return &EmbedFileSystem{fs: fsys}
}

func (fs *EmbedFileSystem) ReadFile(name string) ([]byte, error) {
	return iofs.ReadFile(fs.fs, clean(name))
}

func (fs *EmbedFileSystem) ReadDir(name string) ([]iofs.DirEntry, error) {
	return iofs.ReadDir(fs.fs, clean(name))
}

func (fs *EmbedFileSystem) FileExists(name string) bool {
	info, err := iofs.Stat(fs.fs, clean(name))
	return err == nil && !info.IsDir()
}

func (fs *EmbedFileSystem) WriteFile(name string, data []byte, perm iofs.FileMode) error {
	return ErrReadOnly
}

func (fs *EmbedFileSystem) MkdirAll(name string, perm iofs.FileMode) error {
	return ErrReadOnly
}

func (fs *EmbedFileSystem) Remove(name string) error {
	return ErrReadOnly
}

func clean(name string) string {
	name = path.Clean("/" + name)
	if name == "/" {
		return "."
	}
	return name[1:]
}
