package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff_Identical(t *testing.T) {
	assert.Equal(t, "", Diff("a.txt", []byte("same\n"), []byte("same\n"), nil))
}

func TestDiff_Unified(t *testing.T) {
	old := []byte("line1\nline2\nline3\n")
	newer := []byte("line1\nchanged\nline3\n")

	diff := Diff("app/user.rb", old, newer, &DiffOptions{MaxWidth: -1})

	assert.Contains(t, diff, "--- a/app/user.rb")
	assert.Contains(t, diff, "+++ b/app/user.rb")
	assert.Contains(t, diff, "@@")
	assert.Contains(t, diff, "-line2")
	assert.Contains(t, diff, "+changed")
	assert.Contains(t, diff, " line1")
}

func TestDiff_ContextLines(t *testing.T) {
	var oldLines, newLines []string
	for i := 0; i < 20; i++ {
		oldLines = append(oldLines, "same")
		newLines = append(newLines, "same")
	}
	oldLines[10] = "old"
	newLines[10] = "new"

	diff := Diff("f", []byte(strings.Join(oldLines, "\n")+"\n"), []byte(strings.Join(newLines, "\n")+"\n"),
		&DiffOptions{ContextLines: 1, MaxWidth: -1})

	assert.Equal(t, 2, strings.Count(diff, " same\n"))
}

func TestDiff_Binary(t *testing.T) {
	diff := Diff("img.png", []byte{0x89, 0x00}, []byte{0x89, 0x01}, nil)
	assert.Equal(t, "Binary files a/img.png and b/img.png differ\n", diff)
}

func TestDiff_Truncates(t *testing.T) {
	diff := Diff("f", []byte("a\n"), []byte(strings.Repeat("x", 50)+"\n"), &DiffOptions{MaxWidth: 10})
	assert.Contains(t, diff, "+xxxxxx...")
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 10)
	}
}

func TestTruncateLine(t *testing.T) {
	assert.Equal(t, "abc", truncateLine("abc", 5))
	assert.Equal(t, "ab...", truncateLine("abcdefgh", 5))
	assert.Equal(t, "ab", truncateLine("abcdefgh", 2))
	assert.Equal(t, "héllo", truncateLine("héllo", 5))
}
