package extract

import (
	"strconv"
	"strings"
)

// SplitSteps detects a single string holding concatenated numbered steps
// ("1. Do X.2. Do Y.") and splits it into one string per step. Each
// marker after the first must immediately follow sentence-ending
// punctuation, so "gas mark 2. Bake" is not treated as structure. A
// string that does not begin with "1. " is never split, and a split that
// yields fewer than two steps returns the input unchanged.
func SplitSteps(s string) []string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "1. ") {
		return []string{s}
	}

	starts := []int{0}
	from := 0
	for next := 2; ; next++ {
		idx := findMarker(trimmed, strconv.Itoa(next)+". ", from)
		if idx < 0 {
			break
		}
		starts = append(starts, idx)
		from = idx
	}

	if len(starts) < 2 {
		return []string{s}
	}

	steps := make([]string, 0, len(starts))
	for i, start := range starts {
		end := len(trimmed)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		if step := strings.TrimSpace(trimmed[start:end]); step != "" {
			steps = append(steps, step)
		}
	}
	if len(steps) < 2 {
		return []string{s}
	}
	return steps
}

// findMarker locates the next occurrence of marker at or after from that
// is immediately preceded by sentence-ending punctuation.
func findMarker(s, marker string, from int) int {
	for from < len(s) {
		idx := strings.Index(s[from:], marker)
		if idx < 0 {
			return -1
		}
		abs := from + idx
		if abs > 0 && isSentenceEnd(s[abs-1]) {
			return abs
		}
		// Tolerate a single space between the punctuation and the marker.
		if abs > 1 && s[abs-1] == ' ' && isSentenceEnd(s[abs-2]) {
			return abs
		}
		from = abs + len(marker)
	}
	return -1
}

func isSentenceEnd(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}
