package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// ErrCancelled is returned by Write when conflict resolution was cancelled.
var ErrCancelled = errors.New("generation cancelled")

// Action is what Write does with one artifact
type Action int

const (
	ActionCreate Action = iota
	ActionOverwrite
	ActionUnchanged
	ActionSkip
)

func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "Create"
	case ActionOverwrite:
		return "Overwrite"
	case ActionUnchanged:
		return "Unchanged"
	default:
		return "Skip"
	}
}

// PlannedWrite is the decision taken for one artifact
type PlannedWrite struct {
	Artifact *Artifact
	Action   Action
}

// Description returns a human-readable line, e.g. "Create app/user.rb (120 bytes)".
func (p PlannedWrite) Description() string {
	return fmt.Sprintf("%s %s", p.Action, p.Artifact)
}

// WriteOptions configures Write
type WriteOptions struct {
	DryRun   bool
	Resolver *Resolver   // Consulted when a destination exists with other contents; nil overwrites
	Out      io.Writer   // Progress output (defaults to os.Stdout)
	Mode     fs.FileMode // Default: 0644
}

// WriteResult lists what happened to every artifact, in order.
type WriteResult struct {
	Planned []PlannedWrite
}

// Count returns how many artifacts received action a.
func (r *WriteResult) Count(a Action) int {
	n := 0
	for _, p := range r.Planned {
		if p.Action == a {
			n++
		}
	}
	return n
}

// Write flushes artifacts to fsys.
//
// Every artifact is planned first: new paths are created, identical files
// are left alone, and differing files go through the resolver. A cancelled
// resolution aborts before anything is written. All writes are then
// committed in one Transaction unless DryRun is set.
func Write(ctx context.Context, fsys afero.Fs, artifacts []*Artifact, opts WriteOptions) (*WriteResult, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Mode == 0 {
		opts.Mode = 0644
	}

	// Phase 1: plan
	result := &WriteResult{Planned: make([]PlannedWrite, 0, len(artifacts))}
	for _, art := range artifacts {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		action, err := plan(fsys, art, opts.Resolver)
		if err != nil {
			return result, err
		}
		result.Planned = append(result.Planned, PlannedWrite{Artifact: art, Action: action})
	}

	// Phase 2: commit or report
	tx := NewTransaction(fsys)
	for _, p := range result.Planned {
		if p.Action == ActionCreate || p.Action == ActionOverwrite {
			tx.AddFile(p.Artifact.Path, p.Artifact.Contents, opts.Mode)
		}
	}

	if !opts.DryRun {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := tx.Commit(); err != nil {
			return result, fmt.Errorf("write failed: %w", err)
		}
	}

	for _, p := range result.Planned {
		report(opts.Out, p, opts.DryRun)
	}
	return result, nil
}

func plan(fsys afero.Fs, art *Artifact, resolver *Resolver) (Action, error) {
	info, err := fsys.Stat(art.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return ActionCreate, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", art.Path, err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("cannot write %s: is a directory", art.Path)
	}

	existing, err := afero.ReadFile(fsys, art.Path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", art.Path, err)
	}
	if bytes.Equal(existing, art.Contents) {
		return ActionUnchanged, nil
	}
	if resolver == nil {
		return ActionOverwrite, nil
	}

	res, err := resolver.ResolveConflict(art.Relative(), existing, art.Contents)
	if err != nil {
		return 0, fmt.Errorf("resolving conflict for %s: %w", art.Path, err)
	}
	switch res {
	case Overwrite:
		return ActionOverwrite, nil
	case Skip:
		return ActionSkip, nil
	default:
		return 0, ErrCancelled
	}
}

func report(w io.Writer, p PlannedWrite, dryRun bool) {
	mark := "✓"
	if p.Action == ActionUnchanged || p.Action == ActionSkip {
		mark = "•"
	}
	if dryRun {
		fmt.Fprintf(w, "%s [DRY RUN] %s\n", mark, p.Description())
		return
	}
	fmt.Fprintf(w, "%s %s\n", mark, p.Description())
}
