// Package output prints styled messages for the quill CLI.
//
// Commands report through this package instead of writing to stdout
// directly, so the look of every message lives in one place.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	out         io.Writer = os.Stdout
	verboseMode bool
)

// SetOutput redirects all messages to w. A nil w restores stdout.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	out = w
}

// Writer returns the current destination for messages.
func Writer() io.Writer {
	return out
}

// SetVerbose enables or disables Verbose messages.
func SetVerbose(v bool) {
	verboseMode = v
}

// IsVerbose reports whether Verbose messages are printed.
func IsVerbose() bool {
	return verboseMode
}

// Success prints a completed operation.
//
//	output.Success("Generated 4 files from plugin model")
func Success(msg string) {
	fmt.Fprintln(out, successStyle.Render("✨ "+msg))
}

// Error prints a failure that needs the user's attention.
func Error(msg string) {
	fmt.Fprintln(out, errorStyle.Render("❌ "+msg))
}

// Warn prints something that did not stop the command.
func Warn(msg string) {
	fmt.Fprintln(out, warnStyle.Render("⚠️  "+msg))
}

// Info prints a status update.
func Info(msg string) {
	fmt.Fprintln(out, infoStyle.Render("ℹ️  "+msg))
}

// Step prints an indented sub-item in gray.
//
//	output.Step("models/user.go")
func Step(msg string) {
	fmt.Fprintln(out, stepStyle.Render("   "+msg))
}

// Verbose prints a debug message only in verbose mode.
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(out, stepStyle.Render("🔍 "+msg))
	}
}
