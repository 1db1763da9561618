package source

import (
	"bufio"
	"html"
	"io"
	"strings"
)

// TextConverter handles plain text files: each paragraph becomes a
// block, and short label lines become headings so the heading-scan
// strategies can find the sections.
type TextConverter struct{}

func (c *TextConverter) Convert(r io.Reader, filename string) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return textToMarkup(lines), nil
}

// sectionWords are labels that plain-text recipes use as section
// dividers even without a trailing colon.
var sectionWords = []string{
	"ingredients", "instructions", "directions", "steps", "method",
	"preparation", "notes", "nutrition",
}

// textToMarkup builds simple markup from text lines: section labels
// become h2 elements, everything else a paragraph per line. Blank lines
// are dropped.
func textToMarkup(lines []string) string {
	var buf strings.Builder
	buf.WriteString("<html><body>\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isSectionLabel(line) {
			buf.WriteString("<h2>" + html.EscapeString(line) + "</h2>\n")
		} else {
			buf.WriteString("<p>" + html.EscapeString(line) + "</p>\n")
		}
	}
	buf.WriteString("</body></html>\n")
	return buf.String()
}

// isSectionLabel reports whether a short line is a known section word,
// with or without a trailing colon. Group labels like "For the sauce:"
// stay inline; the extraction side marks those itself.
func isSectionLabel(line string) bool {
	if len(line) > 40 {
		return false
	}
	lower := strings.ToLower(strings.TrimSuffix(line, ":"))
	for _, word := range sectionWords {
		if lower == word {
			return true
		}
	}
	return false
}
