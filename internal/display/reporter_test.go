package display

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ColorMode
		wantErr bool
	}{
		{input: "", want: ColorAuto},
		{input: "auto", want: ColorAuto},
		{input: "always", want: ColorAlways},
		{input: "never", want: ColorNever},
		{input: "sometimes", wantErr: true},
		{input: "ALWAYS", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColorMode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseColorMode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestReporterError_NoColor(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, ColorNever)

	r.Error("File 'missing.txt' not found, exiting...")

	if got := buf.String(); got != "File 'missing.txt' not found, exiting...\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestReporterError_AlwaysColor(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, ColorAlways)

	r.Error("Pattern 'x' is not present in file 'a.txt'.")

	output := buf.String()
	// Should contain red color code
	if !strings.Contains(output, "\x1b[31m") {
		t.Errorf("Expected red ANSI color code in output, got %q", output)
	}
	if !strings.Contains(output, "Pattern 'x' is not present in file 'a.txt'.") {
		t.Errorf("Expected message in output, got %q", output)
	}
	// Should end with reset code
	if !strings.Contains(output, "\x1b[0m") {
		t.Errorf("Expected ANSI reset code in output, got %q", output)
	}
}

func TestReporterWarn_AlwaysColor(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, ColorAlways)

	r.Warn("careful")

	// Should contain yellow color code
	if !strings.Contains(buf.String(), "\x1b[33m") {
		t.Errorf("Expected yellow ANSI color code in output, got %q", buf.String())
	}
}

func TestReporterAuto_NonTerminal(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, ColorAuto)

	r.Error("plain")

	if buf.String() != "plain\n" {
		t.Errorf("expected uncoloured output for a buffer, got %q", buf.String())
	}
}

func TestUseColor(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if useColor(f, ColorAuto) {
		t.Error("regular file should not be coloured in auto mode")
	}
	if !useColor(f, ColorAlways) {
		t.Error("always mode should colour any writer")
	}
	if useColor(os.Stderr, ColorNever) {
		t.Error("never mode should not colour")
	}

	t.Setenv("NO_COLOR", "1")
	if useColor(os.Stderr, ColorAuto) {
		t.Error("NO_COLOR should disable auto colour")
	}
}

func TestReporterNilWriter(t *testing.T) {
	r := NewReporter(nil, ColorAlways)
	// Must not panic
	r.Error("dropped")
	r.Warn("dropped")
}
