package core

import (
	"encoding/json"
	"path"
	"sort"
	"strings"
)

type ManifestEntry struct {
	// File is the fingerprinted name served under AssetsPrefix.
	File        string `json:"file"`
	Hash        string `json:"hash"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
}

// Manifest maps logical asset names ("styles.css") to their fingerprinted
// files. It is built once at startup and never mutated afterwards.
type Manifest struct {
	Version string                   `json:"version"`
	Entries map[string]ManifestEntry `json:"entries"`
}

const AssetsPrefix = "/assets/"

func BuildManifest(files map[string][]byte) *Manifest {
	m := &Manifest{Entries: make(map[string]ManifestEntry, len(files))}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var all []byte
	for _, name := range names {
		data := files[name]
		hash := HashContent(data)
		m.Entries[name] = ManifestEntry{
			File:        FingerprintName(name, hash),
			Hash:        hash,
			ContentType: GetContentType(name),
			Size:        len(data),
		}
		all = append(all, name...)
		all = append(all, hash...)
	}
	m.Version = HashContent(all)

	return m
}

func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// URL returns the public path of a logical asset, falling back to the plain
// name when the manifest does not know it.
func (m *Manifest) URL(name string) string {
	if m != nil {
		if e, ok := m.Entries[name]; ok {
			return AssetsPrefix + e.File
		}
	}
	return AssetsPrefix + name
}

// Resolve maps a requested file name, fingerprinted or not, back to its
// logical asset name.
func (m *Manifest) Resolve(file string) (string, bool) {
	if m == nil {
		return "", false
	}
	file = strings.TrimPrefix(path.Clean("/"+file), "/")
	if _, ok := m.Entries[file]; ok {
		return file, true
	}
	for name, e := range m.Entries {
		if e.File == file {
			return name, true
		}
	}
	return "", false
}

// Stale reports whether file is a fingerprinted copy of a known asset that
// is no longer the current one, e.g. left behind by an earlier export.
func (m *Manifest) Stale(file string) bool {
	if m == nil {
		return false
	}
	for name, e := range m.Entries {
		if e.File == file {
			return false
		}
		ext := extOf(name)
		stem := name[:len(name)-len(ext)] + "."
		if len(file) < len(stem)+len(ext) || !strings.HasPrefix(file, stem) || !strings.HasSuffix(file, ext) {
			continue
		}
		if isHash(file[len(stem) : len(file)-len(ext)]) {
			return true
		}
	}
	return false
}

func isHash(s string) bool {
	if len(s) != hashLen {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

func (m *Manifest) Names() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.Entries))
	for name := range m.Entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
