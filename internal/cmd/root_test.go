package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	if cmd == nil {
		t.Fatal("Root command should not be nil")
	}

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("--help returned error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "pgrep") {
		t.Errorf("Help text should contain 'pgrep', got: %s", output)
	}
	if !strings.Contains(output, "CASE_INSENSITIVE") {
		t.Errorf("Help text should mention CASE_INSENSITIVE, got: %s", output)
	}
	for _, flag := range []string{"--ignore-case", "--case-sensitive", "--fixed-strings", "--config", "--color", "--log-file"} {
		if !strings.Contains(output, flag) {
			t.Errorf("Help text should list %s, got: %s", flag, output)
		}
	}
}

func TestRootCommandUse(t *testing.T) {
	cmd := NewRootCommand()
	if !strings.HasPrefix(cmd.Use, "pgrep") {
		t.Errorf("Expected Use to start with 'pgrep', got '%s'", cmd.Use)
	}
	if len(cmd.Commands()) != 0 {
		t.Errorf("Expected no subcommands, got %d", len(cmd.Commands()))
	}
}

func TestVersionFlag(t *testing.T) {
	cmd := NewRootCommand()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("--version returned error: %v", err)
	}
	if !strings.Contains(buf.String(), Version) {
		t.Errorf("Version output should contain %q, got: %s", Version, buf.String())
	}
}
