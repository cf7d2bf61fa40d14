package assets

import (
	"errors"
	"fmt"

	"github.com/medconnect/landing/internal/adapters/fs"
	"github.com/medconnect/landing/internal/core"
)

const (
	StylesName = "styles.css"
	ScriptName = "motion.js"
)

var ErrAssetNotFound = errors.New("asset not found")

// Names lists every asset the page needs.
func Names() []string {
	return []string{StylesName, ScriptName}
}

// Resolver serves asset bytes and their fingerprinted names. A live resolver
// re-reads its source on every call so edits show up without a restart; the
// manifest is still the one computed at construction.
type Resolver struct {
	source   fs.FileSystem
	live     bool
	files    map[string][]byte
	manifest *core.Manifest
}

func NewResolver(source fs.FileSystem, live bool) (*Resolver, error) {
	files := make(map[string][]byte, len(Names()))
	for _, name := range Names() {
		data, err := source.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read asset %s: %w", name, err)
		}
		files[name] = data
	}

	return &Resolver{
		source:   source,
		live:     live,
		files:    files,
		manifest: core.BuildManifest(files),
	}, nil
}

// NewEmbeddedResolver is the production resolver over the compiled-in assets.
func NewEmbeddedResolver() (*Resolver, error) {
	return NewResolver(Embedded(), false)
}

func (r *Resolver) Manifest() *core.Manifest {
	return r.manifest
}

func (r *Resolver) Live() bool {
	return r.live
}

func (r *Resolver) URL(name string) string {
	return r.manifest.URL(name)
}

// Read returns the bytes of a logical asset name.
func (r *Resolver) Read(name string) ([]byte, error) {
	if _, ok := r.files[name]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}
	if r.live {
		data, err := r.source.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read asset %s: %w", name, err)
		}
		return data, nil
	}
	return r.files[name], nil
}

// Open resolves a requested file name, fingerprinted or plain, and returns
// its logical name and bytes.
func (r *Resolver) Open(file string) (string, []byte, error) {
	if err := core.ValidateAssetName(file); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrAssetNotFound, err)
	}
	name, ok := r.manifest.Resolve(file)
	if !ok {
		return "", nil, fmt.Errorf("%w: %s", ErrAssetNotFound, file)
	}
	data, err := r.Read(name)
	if err != nil {
		return "", nil, err
	}
	return name, data, nil
}
