package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines returns a line diff of from and to. Each line of the result is
// prefixed by "+ ", "- " or two spaces.
func Lines(from, to string) string {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	buf := &strings.Builder{}
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				buf.WriteByte('\n')
			}
		}
	}
	return buf.String()
}
