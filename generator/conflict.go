package generator

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/simonhull/quill/input"
)

// ConflictResolution represents what to do with an existing file
type ConflictResolution int

const (
	Skip ConflictResolution = iota
	Overwrite
	ShowDiff
	Cancel
)

func (r ConflictResolution) String() string {
	switch r {
	case Skip:
		return "skip"
	case Overwrite:
		return "overwrite"
	case ShowDiff:
		return "diff"
	default:
		return "cancel"
	}
}

// ConflictStrategy decides what happens to a destination that exists with
// different contents.
type ConflictStrategy interface {
	Resolve(path string, existing, newer []byte) (ConflictResolution, error)
}

// Resolver applies a ConflictStrategy
type Resolver struct {
	strategy ConflictStrategy
}

var (
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("white")).Bold(true)
)

// NewResolver creates a resolver for the --force, --skip and --diff flags.
// With none set conflicts are resolved interactively.
func NewResolver(force, skip, diff bool) (*Resolver, error) {
	if force && (skip || diff) {
		return nil, fmt.Errorf("--force cannot be combined with --skip or --diff")
	}
	if skip && diff {
		return nil, fmt.Errorf("--skip cannot be combined with --diff")
	}

	var s ConflictStrategy
	switch {
	case force:
		s = ForceStrategy{}
	case skip:
		s = SkipStrategy{}
	case diff:
		s = &DiffStrategy{Out: os.Stdout, Next: &InteractiveStrategy{}}
	default:
		s = &InteractiveStrategy{}
	}
	return &Resolver{strategy: s}, nil
}

// NewResolverWith wraps a custom strategy.
func NewResolverWith(s ConflictStrategy) *Resolver {
	return &Resolver{strategy: s}
}

// ResolveConflict determines what to do with a file that already exists.
func (r *Resolver) ResolveConflict(path string, existing, newer []byte) (ConflictResolution, error) {
	return r.strategy.Resolve(path, existing, newer)
}

// ForceStrategy always overwrites
type ForceStrategy struct{}

func (ForceStrategy) Resolve(string, []byte, []byte) (ConflictResolution, error) {
	return Overwrite, nil
}

// SkipStrategy always keeps the existing file
type SkipStrategy struct{}

func (SkipStrategy) Resolve(string, []byte, []byte) (ConflictResolution, error) {
	return Skip, nil
}

// DiffStrategy prints the diff, then lets Next decide.
// Long diffs are paged in a viewport when stdout is a terminal.
type DiffStrategy struct {
	Out  io.Writer
	Next ConflictStrategy
}

func (s *DiffStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	diff := Diff(path, existing, newer, &DiffOptions{Color: true})

	if strings.Count(diff, "\n") > 20 && isTerminal(os.Stdout) {
		p := tea.NewProgram(newDiffViewerModel(path, diff), tea.WithAltScreen())
		final, err := p.Run()
		if err != nil {
			return Cancel, fmt.Errorf("failed to show diff: %w", err)
		}
		if final.(diffViewerModel).cancelled {
			return Cancel, nil
		}
	} else {
		fmt.Fprint(s.Out, diff)
	}

	return s.Next.Resolve(path, existing, newer)
}

// InteractiveStrategy asks the user. A terminal gets a keyboard menu;
// anything else gets a plain y/N question on stdin.
type InteractiveStrategy struct{}

func (s *InteractiveStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	if !isTerminal(os.Stdin) {
		if input.Confirm(fmt.Sprintf("Overwrite %s?", path), false) {
			return Overwrite, nil
		}
		return Skip, nil
	}

	for {
		p := tea.NewProgram(newConflictMenuModel(path, len(existing), len(newer)))
		final, err := p.Run()
		if err != nil {
			return Cancel, fmt.Errorf("failed to show menu: %w", err)
		}

		m := final.(conflictMenuModel)
		if m.selected == nil {
			return Cancel, nil
		}
		if *m.selected != ShowDiff {
			return *m.selected, nil
		}

		// show the diff, then ask again
		viewer := &DiffStrategy{Out: os.Stdout, Next: SkipStrategy{}}
		if res, err := viewer.Resolve(path, existing, newer); err != nil || res == Cancel {
			return res, err
		}
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// conflictMenuModel is the bubbletea model for the conflict menu
type conflictMenuModel struct {
	path     string
	oldSize  int
	newSize  int
	choices  []string
	cursor   int
	selected *ConflictResolution
}

var menuResolutions = []ConflictResolution{ShowDiff, Skip, Overwrite, Cancel}

func newConflictMenuModel(path string, oldSize, newSize int) conflictMenuModel {
	return conflictMenuModel{
		path:    path,
		oldSize: oldSize,
		newSize: newSize,
		choices: []string{
			"Show diff and decide",
			"Skip (keep existing file)",
			"Overwrite (replace with generated file)",
			"Cancel",
		},
	}
}

func (m conflictMenuModel) Init() tea.Cmd {
	return nil
}

func (m conflictMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case "enter":
		res := menuResolutions[m.cursor]
		m.selected = &res
		return m, tea.Quit
	}
	return m, nil
}

func (m conflictMenuModel) View() string {
	var b strings.Builder

	b.WriteString(warningStyle.Render("⚠️  File conflict: ") + titleStyle.Render(m.path) + "\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("    existing %s, generated %s", formatFileSize(int64(m.oldSize)), formatFileSize(int64(m.newSize)))) + "\n\n")
	b.WriteString(mutedStyle.Render("    [↑/↓] Navigate    [Enter] Select    [q] Cancel") + "\n\n")

	for i, choice := range m.choices {
		if m.cursor == i {
			b.WriteString("    " + selectedStyle.Render("> "+choice) + "\n")
		} else {
			b.WriteString("      " + choice + "\n")
		}
	}
	return b.String()
}

// diffViewerModel pages a long diff
type diffViewerModel struct {
	path      string
	diff      string
	viewport  viewport.Model
	ready     bool
	cancelled bool
}

func newDiffViewerModel(path, diff string) diffViewerModel {
	return diffViewerModel{path: path, diff: diff}
}

func (m diffViewerModel) Init() tea.Cmd {
	return nil
}

func (m diffViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "q", "esc", "enter":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		const chrome = 4 // header and footer lines
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chrome)
			m.viewport.SetContent(m.diff)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chrome
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m diffViewerModel) View() string {
	if !m.ready {
		return "Loading diff..."
	}
	header := titleStyle.Render("Diff: "+m.path) + "\n"
	footer := "\n" + mutedStyle.Render(fmt.Sprintf("%3.f%%  [↑/↓/pgup/pgdn] Scroll    [q] Back    [ctrl+c] Cancel", m.viewport.ScrollPercent()*100))
	return header + m.viewport.View() + footer
}

// formatFileSize formats file size in human-readable format
func formatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
