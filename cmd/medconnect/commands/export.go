package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/medconnect/landing/internal/adapters/cli"
	"github.com/medconnect/landing/internal/adapters/fs"
	"github.com/medconnect/landing/internal/inspect"
)

var errExportFailed = errors.New("export failed")

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write index.html and its assets to a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			out.PrintHeader("MedConnect export")

			app, err := newApp()
			if err != nil {
				out.PrintError("%v", err)
				return err
			}
			defer app.Stop()

			report := cli.NewExportReport(cmd.OutOrStdout(), out, cfg.ExportDir)

			if clean, _ := cmd.Flags().GetBool("clean"); clean {
				step := report.StartStep("Clean " + cfg.ExportDir)
				err := fs.NewOSFileSystem("").RemoveAll(cfg.ExportDir)
				report.EndStep(step, err)
				if err != nil {
					report.Render()
					return errExportFailed
				}
			}

			step := report.StartStep(fmt.Sprintf("Render %s page and assets", cfg.Render))
			result := app.Export(cmd.Context(), cfg.ExportDir, cfg.Render)
			report.EndStep(step, result.Error)
			for _, f := range result.Files {
				report.AddFile(f.Path, f.Size)
			}

			if result.Error == nil {
				step = report.StartStep("Verify page outline")
				report.EndStep(step, verifyIndex(result.Paths.IndexPath))
			}
			if cfg.Dev {
				report.AddWarning("exported in dev mode; assets were read from " + cfg.AssetsDir)
			}

			report.Render()
			if len(result.Removed) > 0 {
				out.PrintStep("", "Removed %d stale assets:", len(result.Removed))
				for _, path := range result.Removed {
					out.PrintFile(path)
				}
			}
			if report.HasFailures() {
				return errExportFailed
			}
			return nil
		},
	}

	cmd.Flags().String("out", "", "output directory (default dist)")
	cmd.Flags().String("render", "", "render mode of the exported page: client or ssr")
	cmd.Flags().Bool("clean", false, "remove the output directory before exporting")
	return cmd
}

func verifyIndex(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = inspect.VerifyDocument(f)
	return err
}
