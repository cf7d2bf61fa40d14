package commands

import (
	"bytes"
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/medconnect/landing/internal/adapters/fs"
	"github.com/medconnect/landing/internal/core"
	"github.com/medconnect/landing/internal/inspect"
	"github.com/medconnect/landing/internal/usecase"
)

var errDoctorFailed = errors.New("doctor found problems")

func doctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor [dir]",
		Short: "Check an exported site against the page outline",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := cfg.ExportDir
			if len(args) > 0 {
				dir = args[0]
			}
			abs, err := filepath.Abs(dir)
			if err != nil {
				out.PrintHeader("MedConnect doctor")
				out.PrintError("Failed to resolve directory: %v", err)
				return err
			}

			out.PrintHeader("MedConnect doctor: " + abs)
			if !runDoctor(out, fs.NewOSFileSystem(abs)) {
				return errDoctorFailed
			}
			out.PrintDone("All checks passed")
			return nil
		},
	}
	return cmd
}

// runDoctor checks an export rooted at fsys. Stale or unknown files in the
// assets dir are reported but do not fail the check.
func runDoctor(o usecase.CLIOutput, fsys fs.FileSystem) bool {
	paths := core.CalculateExportPaths("")
	ok := true

	data, err := fsys.ReadFile(paths.Manifest)
	if err != nil {
		o.PrintError("Missing asset manifest: %v", err)
		return false
	}
	manifest, err := core.ParseManifest(data)
	if err != nil {
		o.PrintError("Unreadable asset manifest: %v", err)
		return false
	}

	o.PrintStep("", "Assets")
	for _, name := range manifest.Names() {
		entry := manifest.Entries[name]
		asset, err := fsys.ReadFile(filepath.Join(paths.AssetsDir, entry.File))
		switch {
		case err != nil:
			o.PrintError("%s: %v", entry.File, err)
			ok = false
		case core.HashContent(asset) != entry.Hash:
			o.PrintError("%s: content does not match its fingerprint", entry.File)
			ok = false
		default:
			o.PrintSuccess("%s", entry.File)
		}
	}
	checkExtraAssets(o, fsys, paths, manifest)

	o.PrintStep("", "Page")
	index, err := fsys.ReadFile(paths.IndexPath)
	if err != nil {
		o.PrintError("Missing index.html: %v", err)
		return false
	}
	outline, err := inspect.VerifyDocument(bytes.NewReader(index))
	if err != nil {
		o.PrintError("%v", err)
		return false
	}
	o.PrintSuccess("index.html (%s, %d sections)", outline.Render, len(outline.Sections))
	return ok
}

func checkExtraAssets(o usecase.CLIOutput, fsys fs.FileSystem, paths core.ExportPaths, manifest *core.Manifest) {
	entries, err := fsys.ReadDir(paths.AssetsDir)
	if err != nil {
		o.PrintWarning("Could not list %s: %v", paths.AssetsDir, err)
		return
	}

	var untracked []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == filepath.Base(paths.Manifest) {
			continue
		}
		if manifest.Stale(name) {
			o.PrintWarning("%s: stale fingerprint, re-run export to remove it", name)
			continue
		}
		if _, known := manifest.Resolve(name); !known {
			untracked = append(untracked, name)
		}
	}

	if len(untracked) > 0 {
		o.PrintWarning("%d untracked files in %s:", len(untracked), paths.AssetsDir)
		for _, name := range untracked {
			o.PrintFile(name)
		}
	}
}
