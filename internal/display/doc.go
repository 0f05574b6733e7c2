// Package display writes user-facing diagnostics to the error channel.
//
// Diagnostics are written through a Reporter so that callers never touch
// terminal colour state directly:
//
//	reporter := display.NewReporter(os.Stderr, display.ColorAuto)
//	reporter.Error("File 'notes.txt' not found, exiting...")
//
// Errors are red and warnings yellow when colour is enabled. The text is
// identical with colour off, which is what tests assert against:
//
//	var buf bytes.Buffer
//	display.NewReporter(&buf, display.ColorNever).Error("boom")
//	// buf.String() == "boom\n"
//
// Colour modes are "auto" (only when the writer is a terminal and NO_COLOR is
// unset), "always" and "never".
package display
