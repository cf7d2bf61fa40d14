package core

import (
	"fmt"
	"path/filepath"
	"strings"
)

func NormalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path != "/" && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// ValidateAssetName rejects names that could escape the assets directory.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("asset name cannot be empty")
	}

	if strings.Contains(name, "..") {
		return fmt.Errorf("asset name cannot contain parent directory references")
	}

	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("asset name cannot contain path separators")
	}

	if strings.ContainsAny(name, "?#*") {
		return fmt.Errorf("asset name cannot contain query, fragment or wildcard characters")
	}

	return nil
}

// ExportPaths lists where an export writes its files, relative to outDir.
type ExportPaths struct {
	OutDir    string
	IndexPath string
	AssetsDir string
	Manifest  string
}

func CalculateExportPaths(outDir string) ExportPaths {
	assetsDir := filepath.Join(outDir, strings.Trim(AssetsPrefix, "/"))
	return ExportPaths{
		OutDir:    outDir,
		IndexPath: filepath.Join(outDir, "index.html"),
		AssetsDir: assetsDir,
		Manifest:  filepath.Join(assetsDir, "manifest.json"),
	}
}
