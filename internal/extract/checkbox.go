package extract

import (
	"strings"

	"golang.org/x/net/html"

	"recipeclip/internal/ingredient"
	"recipeclip/internal/recipe"
)

// extractCheckboxRows recovers ingredient lines from shopping-style
// checkbox rows: a checkbox input paired with sibling text containers.
// Each row's first text line is the quantity and name; a second,
// non-hidden line is a preparation note. Group headers are attributed by
// walking backward to the nearest heading-styled element and emitted once
// per group.
func extractCheckboxRows(doc *html.Node) []string {
	var lines []string
	var lastHeader string

	walkNodes(doc, func(n *html.Node) bool {
		if !isCheckboxInput(n) {
			return true
		}
		row := n.Parent
		if row == nil {
			return true
		}

		main, note := rowText(row, n)
		if main == "" {
			return true
		}

		if header := precedingHeader(row); header != "" && header != lastHeader {
			lastHeader = header
			lines = append(lines, recipe.MarkHeader(header))
		}

		line := main
		if note != "" {
			line += ", " + note
		}
		lines = append(lines, expandCompoundRow(line)...)
		return false
	})

	return lines
}

func isCheckboxInput(n *html.Node) bool {
	return isElement(n, "input") && strings.EqualFold(attr(n, "type"), "checkbox")
}

// rowText reads a row's text containers, skipping the checkbox itself.
// Child texts are joined with an inserted space so markup-split pieces
// ("2 lbs" + "chicken") come back as "2 lbs chicken", not "2 lbschicken".
// The second non-hidden container, if any, is the preparation note.
func rowText(row, checkbox *html.Node) (string, string) {
	var texts []string
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if c == checkbox || isHiddenNode(c) {
			continue
		}
		if t := joinedText(c); t != "" {
			texts = append(texts, t)
		}
	}
	switch len(texts) {
	case 0:
		return "", ""
	case 1:
		return texts[0], ""
	default:
		return texts[0], texts[1]
	}
}

// joinedText concatenates each child node's text with a space between
// pieces, then squashes whitespace.
func joinedText(n *html.Node) string {
	if n.Type == html.TextNode {
		return squashSpace(n.Data)
	}
	if n.Type != html.ElementNode {
		return ""
	}
	var parts []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isHiddenNode(c) {
			continue
		}
		if t := joinedText(c); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// precedingHeader walks backward over a row's preceding siblings,
// skipping divider elements, to the nearest heading-styled element. Rows
// nested one level down check their parent's preceding siblings too.
func precedingHeader(row *html.Node) string {
	if h := headerAmongPreceding(row); h != "" {
		return h
	}
	if row.Parent != nil {
		return headerAmongPreceding(row.Parent)
	}
	return ""
}

func headerAmongPreceding(n *html.Node) string {
	for sib := n.PrevSibling; sib != nil; sib = sib.PrevSibling {
		if sib.Type != html.ElementNode {
			continue
		}
		if isDivider(sib) {
			continue
		}
		if isHeadingStyled(sib) {
			t := textContent(sib)
			if t != "" && len(t) <= 80 {
				return t
			}
			return ""
		}
		// A non-divider, non-heading element means this row opens its
		// own run of content with no label.
		if isCheckboxRowLike(sib) {
			return ""
		}
	}
	return ""
}

func isDivider(n *html.Node) bool {
	if isElement(n, "hr") || isElement(n, "br") {
		return true
	}
	return n.Type == html.ElementNode && textContent(n) == ""
}

func isCheckboxRowLike(n *html.Node) bool {
	return findFirst(n, isCheckboxInput) != nil
}

// expandCompoundRow turns a row packing several items behind one
// quantity ("1 tsp salt, pepper, garlic powder (each)") into one line
// per item, each receiving the shared quantity and unit. Expansion
// applies when the note says "each" or when the tail splits into three
// or more short items.
func expandCompoundRow(line string) []string {
	p := ingredient.Parse(line)
	if p.Quantity == nil {
		return []string{line}
	}

	explicitEach := strings.Contains(strings.ToLower(p.PrepNote), "each")

	// The comma that separated the parsed note may itself be an item
	// separator; rejoin before splitting the tail.
	tail := p.Name
	if p.PrepNote != "" && !explicitEach {
		tail += ", " + p.PrepNote
	}
	items := splitCompoundTail(tail)

	expand := false
	if explicitEach && len(items) > 1 {
		expand = true
	} else if len(items) >= 3 && allShort(items, 30) {
		expand = true
	}
	if !expand {
		return []string{line}
	}

	prefix := ingredient.FormatQuantity(*p.Quantity)
	if p.Unit != "" {
		prefix += " " + p.Unit
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, prefix+" "+item)
	}
	return out
}

// splitCompoundTail splits a name on commas and ampersands, trimming a
// trailing "and" conjunction.
func splitCompoundTail(name string) []string {
	raw := strings.FieldsFunc(name, func(r rune) bool {
		return r == ',' || r == '&'
	})
	var items []string
	for _, item := range raw {
		item = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(item), "and "))
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func allShort(items []string, max int) bool {
	for _, item := range items {
		if len(item) > max {
			return false
		}
	}
	return true
}
