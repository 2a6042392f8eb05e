package generator

import (
	"bytes"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolver_FlagValidation(t *testing.T) {
	tests := []struct {
		name             string
		force, skip, dif bool
		wantErr          bool
		wantStrategy     any
	}{
		{name: "force", force: true, wantStrategy: ForceStrategy{}},
		{name: "skip", skip: true, wantStrategy: SkipStrategy{}},
		{name: "diff", dif: true, wantStrategy: &DiffStrategy{}},
		{name: "interactive", wantStrategy: &InteractiveStrategy{}},
		{name: "force and skip", force: true, skip: true, wantErr: true},
		{name: "force and diff", force: true, dif: true, wantErr: true},
		{name: "skip and diff", skip: true, dif: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewResolver(tt.force, tt.skip, tt.dif)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantStrategy, r.strategy)
		})
	}
}

func TestForceAndSkipStrategies(t *testing.T) {
	force, err := NewResolver(true, false, false)
	require.NoError(t, err)
	res, err := force.ResolveConflict("a", []byte("1"), []byte("2"))
	require.NoError(t, err)
	assert.Equal(t, Overwrite, res)

	skip, err := NewResolver(false, true, false)
	require.NoError(t, err)
	res, err = skip.ResolveConflict("a", []byte("1"), []byte("2"))
	require.NoError(t, err)
	assert.Equal(t, Skip, res)
}

type fixedStrategy struct {
	res   ConflictResolution
	err   error
	calls int
}

func (f *fixedStrategy) Resolve(string, []byte, []byte) (ConflictResolution, error) {
	f.calls++
	return f.res, f.err
}

func TestDiffStrategy_PrintsThenDelegates(t *testing.T) {
	var out bytes.Buffer
	next := &fixedStrategy{res: Overwrite}
	s := &DiffStrategy{Out: &out, Next: next}

	res, err := s.Resolve("user.rb", []byte("old\n"), []byte("new\n"))
	require.NoError(t, err)

	assert.Equal(t, Overwrite, res)
	assert.Equal(t, 1, next.calls)
	assert.Contains(t, out.String(), "old")
	assert.Contains(t, out.String(), "new")
}

func TestDiffStrategy_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	s := &DiffStrategy{Out: &bytes.Buffer{}, Next: &fixedStrategy{res: Cancel, err: boom}}

	_, err := s.Resolve("f", []byte("a\n"), []byte("b\n"))
	assert.ErrorIs(t, err, boom)
}

func TestConflictMenuModel_Navigation(t *testing.T) {
	m := newConflictMenuModel("app/user.rb", 10, 2048)

	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	next, _ := m.Update(up)
	m = next.(conflictMenuModel)
	assert.Equal(t, 0, m.cursor, "cursor stays at top")

	for i := 0; i < 5; i++ {
		next, _ = m.Update(down)
		m = next.(conflictMenuModel)
	}
	assert.Equal(t, 3, m.cursor, "cursor stops at bottom")

	next, _ = m.Update(up)
	m = next.(conflictMenuModel)
	next, cmd := m.Update(enter)
	m = next.(conflictMenuModel)

	require.NotNil(t, m.selected)
	assert.Equal(t, Overwrite, *m.selected)
	assert.NotNil(t, cmd)

	view := m.View()
	assert.Contains(t, view, "app/user.rb")
	assert.Contains(t, view, "2.0 KB")
}

func TestConflictMenuModel_Quit(t *testing.T) {
	m := newConflictMenuModel("f", 0, 0)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, next.(conflictMenuModel).selected)
	assert.NotNil(t, cmd)
}

func TestDiffViewerModel(t *testing.T) {
	m := newDiffViewerModel("f", "+a\n-b\n")
	assert.Equal(t, "Loading diff...", m.View())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(diffViewerModel)
	assert.True(t, m.ready)
	assert.Contains(t, m.View(), "Diff: f")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, next.(diffViewerModel).cancelled)
}

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "512 B", formatFileSize(512))
	assert.Equal(t, "1.5 KB", formatFileSize(1536))
	assert.Equal(t, "1.0 MB", formatFileSize(1<<20))
}

func TestConflictResolutionString(t *testing.T) {
	assert.Equal(t, "overwrite", Overwrite.String())
	assert.Equal(t, "skip", Skip.String())
	assert.Equal(t, "cancel", Cancel.String())
}
