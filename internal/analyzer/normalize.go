package analyzer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalizeLines applies NFKC and collapses whitespace while keeping the
// newline structure intact: each line has its inner whitespace reduced to
// single spaces and is trimmed, and leading/trailing blank lines are dropped.
// Line-oriented extractors (name, position, section spans) and the structure
// line-count bonus run over this form.
func normalizeLines(text string) string {
	text = norm.NFKC.String(text)
	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.Join(strings.Fields(line), " ")
	}
	start, end := 0, len(out)
	for start < end && out[start] == "" {
		start++
	}
	for end > start && out[end-1] == "" {
		end--
	}
	return strings.Join(out[start:end], "\n")
}

// flatten collapses all whitespace runs, newlines included, to single spaces.
// Substring and regex matching that may span line breaks runs over this form.
func flatten(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
