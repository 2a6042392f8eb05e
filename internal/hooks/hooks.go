// Package hooks runs a plugin's after commands once its files are written.
package hooks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options configures a Runner
type Options struct {
	Dir     string    // Working directory for every command
	Stdout  io.Writer // Default: os.Stdout
	Stderr  io.Writer // Default: os.Stderr
	Env     []string  // Additional environment variables
	Spinner bool      // Show a spinner instead of command output
}

// Runner runs shell commands one after another.
type Runner struct {
	opts Options
	log  zerolog.Logger

	// For mocking in tests
	commandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// New creates a runner
func New(opts Options) *Runner {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return &Runner{
		opts:        opts,
		log:         log.With().Str("component", "hooks").Logger(),
		commandFunc: exec.CommandContext,
	}
}

// RunAll runs commands in order and stops at the first failure.
func (r *Runner) RunAll(ctx context.Context, commands []string) error {
	for _, command := range commands {
		var err error
		if r.opts.Spinner {
			err = r.runWithSpinner(ctx, command)
		} else {
			err = r.Run(ctx, command, r.opts.Stdout, r.opts.Stderr)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Run executes one command line with sh -c.
func (r *Runner) Run(ctx context.Context, command string, stdout, stderr io.Writer) error {
	cmd := r.commandFunc(ctx, "sh", "-c", command)
	cmd.Dir = r.opts.Dir
	if len(r.opts.Env) > 0 {
		cmd.Env = append(os.Environ(), r.opts.Env...)
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	r.log.Debug().Str("command", command).Str("dir", r.opts.Dir).Msg("running hook")
	start := time.Now()

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s cancelled: %w", command, ctxErr)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 127 {
			return fmt.Errorf("%s: command not found", command)
		}
		return fmt.Errorf("%s failed: %w", command, err)
	}

	r.log.Debug().Str("command", command).Dur("duration", time.Since(start)).Msg("hook finished")
	return nil
}

// runWithSpinner discards command output and shows progress on stderr
func (r *Runner) runWithSpinner(ctx context.Context, command string) error {
	p := tea.NewProgram(newSpinnerModel(command), tea.WithOutput(r.opts.Stderr), tea.WithInput(nil))
	finished := make(chan struct{})
	go func() {
		_, _ = p.Run()
		close(finished)
	}()

	err := r.Run(ctx, command, io.Discard, io.Discard)
	p.Send(spinnerDoneMsg{err: err})
	<-finished
	return err
}

// spinnerModel is the bubbletea model for the spinner
type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
	err     error
}

type spinnerDoneMsg struct {
	err error
}

func newSpinnerModel(message string) *spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return &spinnerModel{spinner: s, message: message}
}

func (m *spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *spinnerModel) View() string {
	if m.done {
		if m.err != nil {
			return fmt.Sprintf("❌ %s\n", m.message)
		}
		return fmt.Sprintf("✅ %s\n", m.message)
	}
	return fmt.Sprintf("%s %s...", m.spinner.View(), m.message)
}
