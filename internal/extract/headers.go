package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"recipeclip/internal/recipe"
)

// reQuantityUnit matches a number followed by a known measurement word
// anywhere in a line. A line like "2 cups flour:" is an ingredient that
// happens to end with a colon, never a section header.
var reQuantityUnit = regexp.MustCompile(`(?i)\d[\d\s/.\-]*\s*(cups?|tablespoons?|tbsp|teaspoons?|tsp|ounces?|oz|pounds?|lbs?|grams?|g\b|kg|ml|liters?|litres?|l\b|cloves?|cans?|jars?|packages?|pinch|sticks?|slices?)\b`)

var reForPrefix = regexp.MustCompile(`(?i)^for (the )?\S`)

// MarkSectionHeaders promotes ingredient-list entries that read as
// sub-recipe labels ("For the sauce:") to header pseudo-entries. It runs
// over every extracted list, whichever strategy produced it.
func MarkSectionHeaders(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = markHeaderLine(line)
	}
	return out
}

func markHeaderLine(line string) string {
	if recipe.IsHeader(line) {
		return line
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > 80 {
		return line
	}
	if trimmed[0] >= '0' && trimmed[0] <= '9' {
		return line
	}
	if reQuantityUnit.MatchString(trimmed) {
		return line
	}
	if strings.HasSuffix(trimmed, ":") {
		return recipe.MarkHeader(trimmed)
	}
	if len(trimmed) <= 50 && reForPrefix.MatchString(trimmed) {
		return recipe.MarkHeader(trimmed + ":")
	}
	return line
}

// ingredientGroup is one grouped-ingredient container found on the page.
type ingredientGroup struct {
	header string
	count  int
}

// groupContainerHints are class fragments used by common recipe-plugin
// markup for grouped ingredient lists (WP Recipe Maker, Tasty Recipes,
// Create, and the generic *-ingredient-group convention).
var groupContainerHints = []string{
	"wprm-recipe-ingredient-group",
	"tasty-recipes-ingredients-body",
	"mv-create-ingredients-group",
	"ingredient-group",
	"ingredients-section",
}

// MergeGroupHeaders re-interleaves section headers into a flat ingredient
// list extracted from structured data, which never carries grouping.
// Plugin group containers are count-matched against the flat list: each
// group's header is inserted, then its item-count worth of consecutive
// flat entries assigned to it. Leftover flat items past the last group
// are appended ungrouped. Fewer than two usable groups leaves the list
// untouched.
func MergeGroupHeaders(doc *html.Node, flat []string) []string {
	groups := findIngredientGroups(doc)
	if len(groups) < 2 {
		return flat
	}

	merged := make([]string, 0, len(flat)+len(groups))
	next := 0
	for _, g := range groups {
		if next >= len(flat) {
			break
		}
		merged = append(merged, recipe.MarkHeader(g.header))
		for i := 0; i < g.count && next < len(flat); i++ {
			merged = append(merged, flat[next])
			next++
		}
	}
	merged = append(merged, flat[next:]...)
	return merged
}

func findIngredientGroups(doc *html.Node) []ingredientGroup {
	var groups []ingredientGroup
	walkNodes(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode || !isGroupContainer(n) {
			return true
		}
		header := groupHeaderText(n)
		count := countGroupItems(n)
		if header != "" && count > 0 {
			groups = append(groups, ingredientGroup{header: header, count: count})
		}
		return false // containers do not nest
	})
	return groups
}

func isGroupContainer(n *html.Node) bool {
	class := strings.ToLower(attr(n, "class"))
	if class == "" {
		return false
	}
	for _, hint := range groupContainerHints {
		if strings.Contains(class, hint) {
			return true
		}
	}
	return false
}

// groupHeaderText finds the group's label: the first heading-styled
// descendant, or an element whose class names it a group name/header.
func groupHeaderText(group *html.Node) string {
	label := findFirst(group, func(n *html.Node) bool {
		if n == group || n.Type != html.ElementNode {
			return false
		}
		if isHeadingStyled(n) || isElement(n, "strong") {
			return true
		}
		class := strings.ToLower(attr(n, "class"))
		return strings.Contains(class, "group-name") || strings.Contains(class, "group-header")
	})
	if label == nil {
		return ""
	}
	text := textContent(label)
	if len(text) > 80 {
		return ""
	}
	return text
}

func countGroupItems(group *html.Node) int {
	count := 0
	walkNodes(group, func(n *html.Node) bool {
		if isElement(n, "li") {
			count++
			return false
		}
		return true
	})
	return count
}
