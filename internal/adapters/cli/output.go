package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type Output struct {
	out   io.Writer
	err   io.Writer
	green *color.Color
	yel   *color.Color
	red   *color.Color
	gray  *color.Color
}

func NewOutput() *Output {
	return NewOutputTo(color.Output, color.Error)
}

// NewOutputTo writes to out and err. Colours follow color.NoColor, which is
// set when stdout is not a terminal.
func NewOutputTo(out, err io.Writer) *Output {
	return &Output{
		out:   out,
		err:   err,
		green: color.New(color.FgGreen),
		yel:   color.New(color.FgYellow),
		red:   color.New(color.FgRed),
		gray:  color.New(color.FgHiBlack),
	}
}

func (o *Output) DisableColors() {
	for _, c := range []*color.Color{o.green, o.yel, o.red, o.gray} {
		c.DisableColor()
	}
}

func (o *Output) Green(text string) string  { return o.green.Sprint(text) }
func (o *Output) Yellow(text string) string { return o.yel.Sprint(text) }
func (o *Output) Red(text string) string    { return o.red.Sprint(text) }
func (o *Output) Gray(text string) string   { return o.gray.Sprint(text) }

func (o *Output) PrintHeader(msg string) {
	fmt.Fprintln(o.out, msg)
	fmt.Fprintln(o.out)
}

func (o *Output) PrintStep(emoji, msg string, args ...any) {
	prefix := "  "
	if emoji != "" {
		prefix += emoji + " "
	}
	fmt.Fprintf(o.out, prefix+msg+"\n", args...)
}

func (o *Output) PrintSuccess(msg string, args ...any) {
	fmt.Fprintf(o.out, "  %s%s\n", o.Green("✓ "), fmt.Sprintf(msg, args...))
}

func (o *Output) PrintWarning(msg string, args ...any) {
	fmt.Fprintf(o.out, "  %s%s\n", o.Yellow("⚠ "), fmt.Sprintf(msg, args...))
}

func (o *Output) PrintError(msg string, args ...any) {
	fmt.Fprintf(o.err, "  %s%s\n", o.Red("✗ "), fmt.Sprintf(msg, args...))
}

func (o *Output) PrintFile(path string) {
	fmt.Fprintf(o.out, "    %s\n", path)
}

func (o *Output) PrintDone(msg string) {
	fmt.Fprintln(o.out, msg)
}
