package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Transaction is a set of file writes that are committed together.
// A failed commit restores overwritten files and removes created ones.
type Transaction struct {
	fs         afero.Fs
	operations []fileOperation
	applied    []appliedWrite
	committed  bool
}

// fileOperation represents a single staged write
type fileOperation struct {
	path    string
	content []byte
	mode    os.FileMode
}

// appliedWrite remembers what a path held before it was written
type appliedWrite struct {
	path     string
	existed  bool
	previous []byte
	mode     os.FileMode
}

// NewTransaction creates a transaction writing to fsys
func NewTransaction(fsys afero.Fs) *Transaction {
	return &Transaction{fs: fsys}
}

// AddFile stages a file write (doesn't write yet)
func (t *Transaction) AddFile(path string, content []byte, mode os.FileMode) {
	t.operations = append(t.operations, fileOperation{path: path, content: content, mode: mode})
}

// Len returns the number of staged writes.
func (t *Transaction) Len() int {
	return len(t.operations)
}

// Commit writes all staged files. On the first failure everything written
// so far is rolled back and the error is returned.
func (t *Transaction) Commit() error {
	if t.committed {
		return fmt.Errorf("transaction already committed")
	}

	for _, op := range t.operations {
		if err := t.apply(op); err != nil {
			if rbErr := t.Rollback(); rbErr != nil {
				return errors.Join(err, rbErr)
			}
			return err
		}
	}

	t.committed = true
	return nil
}

func (t *Transaction) apply(op fileOperation) error {
	prev := appliedWrite{path: op.path, mode: op.mode}
	if info, err := t.fs.Stat(op.path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("cannot write %s: is a directory", op.path)
		}
		data, err := afero.ReadFile(t.fs, op.path)
		if err != nil {
			return fmt.Errorf("failed to back up %s: %w", op.path, err)
		}
		prev.existed, prev.previous, prev.mode = true, data, info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", op.path, err)
	}

	dir := filepath.Dir(op.path)
	if err := t.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if err := afero.WriteFile(t.fs, op.path, op.content, op.mode); err != nil {
		return fmt.Errorf("failed to write file %s: %w", op.path, err)
	}

	t.applied = append(t.applied, prev)
	return nil
}

// Rollback undoes every write applied by an uncommitted transaction, newest
// first. It is a no-op after a successful Commit, so it is safe to defer.
func (t *Transaction) Rollback() error {
	if t.committed {
		return nil
	}

	var errs []error
	for i := len(t.applied) - 1; i >= 0; i-- {
		w := t.applied[i]
		var err error
		if w.existed {
			err = afero.WriteFile(t.fs, w.path, w.previous, w.mode)
		} else {
			err = t.fs.Remove(w.path)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to roll back %s: %w", w.path, err))
		}
	}
	t.applied = nil
	return errors.Join(errs...)
}
