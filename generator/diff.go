package generator

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/term"
)

// DiffOptions configures how diffs are generated and displayed.
// All fields are optional with sensible defaults.
type DiffOptions struct {
	// ContextLines is the number of unchanged lines shown around changes.
	// Default: 3
	ContextLines int

	// Color styles added, removed and hunk header lines.
	Color bool

	// MaxWidth truncates long lines. Zero uses the terminal width when
	// stdout is a terminal and leaves lines alone otherwise.
	MaxWidth int
}

var (
	diffAddStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("green"))
	diffRemoveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("red"))
	diffHunkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	diffHeaderStyle = lipgloss.NewStyle().Bold(true)
)

// Diff returns a unified diff between the existing and generated contents
// of path. Identical input yields "".
func Diff(path string, existing, generated []byte, opts *DiffOptions) string {
	if opts == nil {
		opts = &DiffOptions{}
	}
	if bytes.Equal(existing, generated) {
		return ""
	}
	if isBinary(existing) || isBinary(generated) {
		return fmt.Sprintf("Binary files a/%s and b/%s differ\n", path, path)
	}

	contextLines := opts.ContextLines
	if contextLines <= 0 {
		contextLines = 3
	}
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(existing)),
		B:        difflib.SplitLines(string(generated)),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  contextLines,
	})
	if err != nil {
		return fmt.Sprintf("diff unavailable for %s: %v\n", path, err)
	}

	width := opts.MaxWidth
	if width == 0 {
		width = terminalWidth()
	}

	var b strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		body := strings.TrimSuffix(line, "\n")
		if width > 0 {
			body = truncateLine(body, width)
		}
		if opts.Color {
			body = styleDiffLine(body)
		}
		b.WriteString(body)
		b.WriteByte('\n')
	}
	return b.String()
}

func styleDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return diffHeaderStyle.Render(line)
	case strings.HasPrefix(line, "@@"):
		return diffHunkStyle.Render(line)
	case strings.HasPrefix(line, "+"):
		return diffAddStyle.Render(line)
	case strings.HasPrefix(line, "-"):
		return diffRemoveStyle.Render(line)
	default:
		return line
	}
}

// isBinary reports whether data looks binary (NUL in the first 8000 bytes)
func isBinary(data []byte) bool {
	if len(data) > 8000 {
		data = data[:8000]
	}
	return bytes.IndexByte(data, 0) >= 0
}

func truncateLine(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}
