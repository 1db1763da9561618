package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// classContains reports whether any class token on n contains the given
// substring (case-insensitive). Class conventions in the wild are loose,
// so substring matching beats exact token matching here.
func classContains(n *html.Node, substr string) bool {
	return strings.Contains(strings.ToLower(attr(n, "class")), substr)
}

// textContent returns all text under n, whitespace-squashed.
func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return squashSpace(buf.String())
}

// squashSpace collapses runs of whitespace into single spaces and trims.
func squashSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// walkNodes visits every node under root in document order. The visitor
// returns false to stop descending into the current node's children.
func walkNodes(root *html.Node, visit func(*html.Node) bool) {
	if root == nil {
		return
	}
	if !visit(root) {
		return
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		walkNodes(c, visit)
	}
}

// findFirst returns the first node in document order matching pred.
func findFirst(root *html.Node, pred func(*html.Node) bool) *html.Node {
	var found *html.Node
	walkNodes(root, func(n *html.Node) bool {
		if found != nil {
			return false
		}
		if pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

// headingLevel returns 1-6 for h1-h6 elements, 0 otherwise.
func headingLevel(n *html.Node) int {
	if n.Type != html.ElementNode {
		return 0
	}
	switch n.Data {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

// isHeadingStyled reports whether a node reads as a heading: a native
// heading element, or any element using a heading-ish class convention.
// Tag identity alone is not trusted because framework-rendered pages put
// headings in generic containers.
func isHeadingStyled(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	if headingLevel(n) > 0 {
		return true
	}
	class := strings.ToLower(attr(n, "class"))
	for _, hint := range []string{"heading", "header", "title", "section-name"} {
		if strings.Contains(class, hint) {
			return true
		}
	}
	return false
}

// isHiddenNode reports whether a node is hidden via attribute, inline
// style, or a hide-me class convention.
func isHiddenNode(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if attr(n, "hidden") != "" || attr(n, "aria-hidden") == "true" {
		return true
	}
	style := strings.ToLower(attr(n, "style"))
	if strings.Contains(style, "display:none") || strings.Contains(style, "display: none") {
		return true
	}
	class := strings.ToLower(attr(n, "class"))
	return strings.Contains(class, "hidden") || strings.Contains(class, "sr-only") ||
		strings.Contains(class, "screen-reader")
}

// blockTags are elements treated as block-level when deciding whether a
// container holds further structure or is itself a text leaf.
var blockTags = map[string]bool{
	"div": true, "p": true, "ul": true, "ol": true, "li": true,
	"section": true, "article": true, "table": true, "tbody": true,
	"tr": true, "td": true, "dl": true, "dt": true, "dd": true,
	"blockquote": true, "figure": true, "fieldset": true,
}

// hasBlockChildren reports whether n contains block-level element children.
func hasBlockChildren(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && blockTags[c.Data] {
			return true
		}
	}
	return false
}
