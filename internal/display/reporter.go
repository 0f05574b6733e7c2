package display

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode selects when diagnostics are colourised.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a colour mode string. The empty string is auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	default:
		return "", fmt.Errorf("invalid color mode %q, must be one of: auto, always, never", s)
	}
}

// Reporter writes diagnostics meant for a human on the error channel.
type Reporter interface {
	// Error reports a failure.
	Error(msg string)
	// Warn reports something unexpected that did not stop the run.
	Warn(msg string)
}

// StreamReporter writes one line per diagnostic to a writer.
type StreamReporter struct {
	out   io.Writer
	fail  *color.Color
	warn  *color.Color
	mutex sync.Mutex
}

// NewReporter creates a StreamReporter writing to out.
func NewReporter(out io.Writer, mode ColorMode) *StreamReporter {
	fail := color.New(color.FgRed)
	warn := color.New(color.FgYellow)

	// Per-instance overrides leave the package-level color.NoColor untouched.
	if useColor(out, mode) {
		fail.EnableColor()
		warn.EnableColor()
	} else {
		fail.DisableColor()
		warn.DisableColor()
	}

	return &StreamReporter{out: out, fail: fail, warn: warn}
}

// useColor resolves mode against the writer.
func useColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Error writes msg in red.
func (r *StreamReporter) Error(msg string) {
	r.write(r.fail, msg)
}

// Warn writes msg in yellow.
func (r *StreamReporter) Warn(msg string) {
	r.write(r.warn, msg)
}

func (r *StreamReporter) write(c *color.Color, msg string) {
	if r.out == nil {
		return
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	fmt.Fprintln(r.out, c.Sprint(msg))
}
