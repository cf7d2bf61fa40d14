package usecase

import (
	iofs "io/fs"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/medconnect/landing/internal/core"
)

type fakeAssets struct {
	files    map[string][]byte
	manifest *core.Manifest
	readErr  error
}

func newFakeAssets() *fakeAssets {
	files := map[string][]byte{
		"styles.css": []byte("body{}"),
		"motion.js":  []byte("void 0"),
	}
	return &fakeAssets{files: files, manifest: core.BuildManifest(files)}
}

func (f *fakeAssets) URL(name string) string   { return f.manifest.URL(name) }
func (f *fakeAssets) Manifest() *core.Manifest { return f.manifest }

func (f *fakeAssets) Read(name string) ([]byte, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	data, ok := f.files[name]
	if !ok {
		return nil, iofs.ErrNotExist
	}
	return data, nil
}

type memFS struct {
	mu       sync.Mutex
	files    map[string][]byte
	dirs     map[string]bool
	writeErr error
}

func newMemFS() *memFS {
	return &memFS{files: make(map[string][]byte), dirs: make(map[string]bool)}
}

func (m *memFS) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path]
	if !ok {
		return nil, iofs.ErrNotExist
	}
	return data, nil
}

func (m *memFS) ReadDir(path string) ([]iofs.DirEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.dirs[path] {
		return nil, iofs.ErrNotExist
	}
	var entries []iofs.DirEntry
	for name, data := range m.files {
		if filepath.Dir(name) == path {
			entries = append(entries, iofs.FileInfoToDirEntry(memFile{name: filepath.Base(name), size: len(data)}))
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (m *memFS) FileExists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[path]
	return ok
}

func (m *memFS) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.files[path] = data
	return nil
}

func (m *memFS) MkdirAll(path string, perm iofs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path] = true
	return nil
}

func (m *memFS) Remove(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, path)
	return nil
}

type memFile struct {
	name string
	size int
}

func (f memFile) Name() string        { return f.name }
func (f memFile) Size() int64         { return int64(f.size) }
func (f memFile) Mode() iofs.FileMode { return 0o644 }
func (f memFile) ModTime() time.Time  { return time.Time{} }
func (f memFile) IsDir() bool         { return false }
func (f memFile) Sys() any            { return nil }
