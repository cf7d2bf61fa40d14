package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/medconnect/landing/internal/core"
)

type ExportInput struct {
	OutDir string
	Render core.RenderMode
}

type ExportedFile struct {
	Path string
	Size int
}

type ExportOutput struct {
	Paths core.ExportPaths
	Files []ExportedFile
	// Removed lists stale fingerprinted assets deleted from the assets dir.
	Removed []string
	Error   error
}

// DocumentRenderer renders the full page document for a render mode.
type DocumentRenderer interface {
	RenderDocument(ctx context.Context, render core.RenderMode) ([]byte, error)
}

type ExportService struct {
	fs     FileSystem
	pages  DocumentRenderer
	assets AssetSource
}

func NewExportService(fs FileSystem, pages DocumentRenderer, assets AssetSource) *ExportService {
	return &ExportService{
		fs:     fs,
		pages:  pages,
		assets: assets,
	}
}

// ExportStatic writes index.html, every fingerprinted asset and the asset
// manifest under input.OutDir, then removes fingerprinted assets left over
// from earlier exports. It stops before the next file once ctx is done.
func (s *ExportService) ExportStatic(ctx context.Context, input ExportInput) ExportOutput {
	if input.OutDir == "" {
		return ExportOutput{Error: fmt.Errorf("missing export directory")}
	}

	paths := core.CalculateExportPaths(input.OutDir)
	out := ExportOutput{Paths: paths}

	if err := s.fs.MkdirAll(paths.AssetsDir, 0o755); err != nil {
		out.Error = fmt.Errorf("failed to create %s: %w", paths.AssetsDir, err)
		return out
	}

	html, err := s.pages.RenderDocument(ctx, input.Render)
	if err != nil {
		out.Error = err
		return out
	}
	if err := s.write(&out, paths.IndexPath, html); err != nil {
		out.Error = err
		return out
	}

	manifest := s.assets.Manifest()
	for _, name := range manifest.Names() {
		if err := ctx.Err(); err != nil {
			out.Error = err
			return out
		}

		data, err := s.assets.Read(name)
		if err != nil {
			out.Error = err
			return out
		}
		target := filepath.Join(paths.AssetsDir, manifest.Entries[name].File)
		if err := s.write(&out, target, data); err != nil {
			out.Error = err
			return out
		}
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		out.Error = fmt.Errorf("failed to encode asset manifest: %w", err)
		return out
	}
	if err := s.write(&out, paths.Manifest, data); err != nil {
		out.Error = err
		return out
	}

	out.Error = s.prune(&out, paths.AssetsDir, manifest)
	return out
}

func (s *ExportService) prune(out *ExportOutput, dir string, manifest *core.Manifest) error {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !manifest.Stale(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if err := s.fs.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
		out.Removed = append(out.Removed, path)
	}
	return nil
}

func (s *ExportService) write(out *ExportOutput, path string, data []byte) error {
	if err := s.fs.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	out.Files = append(out.Files, ExportedFile{Path: path, Size: len(data)})
	return nil
}
