package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinesIdenticalFrames(t *testing.T) {
	t.Parallel()

	frame := "Form Builder\nForm\nSubmit\n"
	require.Empty(t, Lines(frame, frame, "before", "after"))
}

func TestLinesSingleLineChange(t *testing.T) {
	t.Parallel()

	before := "Form\n[Add Element +]\nSubmit\n"
	after := "Form\n[Close Sidebar -]\nSubmit\n"

	result, stat := LinesWithStat(before, after, "#0", "#1 toggle palette")
	require.Contains(t, result, "--- #0")
	require.Contains(t, result, "+++ #1 toggle palette")
	require.Contains(t, result, "-[Add Element +]")
	require.Contains(t, result, "+[Close Sidebar -]")
	require.Contains(t, result, " Form")
	require.Equal(t, Stat{Added: 1, Removed: 1}, stat)
}

func TestLinesInsertedBlock(t *testing.T) {
	t.Parallel()

	before := "Form\nSubmit\n"
	after := "Form\nEmail\n[Enter your email]\nSubmit\n"

	result, stat := LinesWithStat(before, after, "a", "b")
	require.Equal(t, 2, stat.Added)
	require.Zero(t, stat.Removed)
	require.Contains(t, result, "+Email")
	require.Contains(t, result, "@@ -1,2 +1,4 @@")
}

func TestLinesTruncation(t *testing.T) {
	t.Parallel()

	var before, after strings.Builder
	for i := 0; i < 3000; i++ {
		before.WriteString("old line\n")
		if i%2 == 0 {
			after.WriteString("new line\n")
		} else {
			after.WriteString("old line\n")
		}
	}

	result := Lines(before.String(), after.String(), "before", "after")
	require.Contains(t, result, truncateMessage)
}
