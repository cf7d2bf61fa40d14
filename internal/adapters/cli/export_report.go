package cli

import (
	"fmt"
	"io"
	"time"
)

type ExportStep struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Success   bool
	Error     string
}

type cliOutputWithColors interface {
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
}

type ExportFile struct {
	Path string
	Size int
}

type ExportReport struct {
	w           io.Writer
	colors      cliOutputWithColors
	steps       []*ExportStep
	files       []ExportFile
	warnings    []string
	startTime   time.Time
	outputDir   string
	hasFailures bool
}

func NewExportReport(w io.Writer, colors cliOutputWithColors, outputDir string) *ExportReport {
	return &ExportReport{
		w:         w,
		colors:    colors,
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

// StartStep records a running step. The returned step stays valid for
// EndStep however many steps are started in between.
func (r *ExportReport) StartStep(name string) *ExportStep {
	step := &ExportStep{
		Name:      name,
		StartTime: time.Now(),
	}
	r.steps = append(r.steps, step)
	return step
}

func (r *ExportReport) EndStep(step *ExportStep, err error) {
	step.EndTime = time.Now()
	step.Success = err == nil
	if err != nil {
		step.Error = err.Error()
		r.hasFailures = true
	}
}

func (r *ExportReport) AddFile(path string, size int) {
	r.files = append(r.files, ExportFile{Path: path, Size: size})
}

func (r *ExportReport) AddWarning(message string) {
	r.warnings = append(r.warnings, message)
}

func (r *ExportReport) HasFailures() bool {
	return r.hasFailures
}

func (r *ExportReport) Render() {
	duration := time.Since(r.startTime)

	for _, step := range r.steps {
		status := r.colors.Green("✓")
		if !step.Success {
			status = r.colors.Red("✗")
		}
		fmt.Fprintf(r.w, "  %s %s\n", status, step.Name)
		if step.Error != "" {
			fmt.Fprintf(r.w, "      • %s\n", step.Error)
		}
	}

	if len(r.files) > 0 {
		fmt.Fprintln(r.w)
		for _, f := range r.files {
			fmt.Fprintf(r.w, "    %s %s\n", f.Path, r.colors.Gray(formatSize(f.Size)))
		}
	}

	if len(r.warnings) > 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintf(r.w, "  "+r.colors.Yellow("⚠ ")+"Warnings (%d):\n", len(r.warnings))
		for _, w := range r.warnings {
			fmt.Fprintf(r.w, "      • %s\n", w)
		}
	}

	fmt.Fprintln(r.w)
	if r.hasFailures {
		fmt.Fprintf(r.w, "  %s\n", r.colors.Red(fmt.Sprintf("Export failed after %s", formatDuration(duration))))
	} else {
		fmt.Fprintf(r.w, "  "+r.colors.Green("✓ ")+"Export complete in %s\n", formatDuration(duration))
	}

	if r.outputDir != "" {
		fmt.Fprintf(r.w, "\n  %s\n", r.colors.Gray("Output: "+r.outputDir))
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

func formatSize(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f kB", float64(n)/1024)
}
