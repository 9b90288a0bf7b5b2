package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated, exceeds 2,000 lines) ..."
)

// Stat summarises how many lines a diff adds and removes.
type Stat struct {
	Added   int
	Removed int
}

// Lines generates a line-level unified diff between two rendered frames.
// Returns an empty string if the frames are identical.
func Lines(before, after, beforeLabel, afterLabel string) string {
	out, _ := compute(before, after, beforeLabel, afterLabel)
	return out
}

// LinesWithStat is Lines plus the added/removed line counts.
func LinesWithStat(before, after, beforeLabel, afterLabel string) (string, Stat) {
	return compute(before, after, beforeLabel, afterLabel)
}

func compute(before, after, beforeLabel, afterLabel string) (string, Stat) {
	var stat Stat
	if before == after {
		return "", stat
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(before), countLines(after))

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				stat.Removed++
			case diffmatchpatch.DiffInsert:
				stat.Added++
			}
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		return strings.Join(lines[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n", stat
	}
	return result, stat
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if strings.HasSuffix(text, "\n") {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func countLines(text string) int {
	return len(splitLines(text))
}
