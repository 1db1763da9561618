package extract

import (
	"golang.org/x/net/html"

	"recipeclip/internal/recipe"
)

// Section heading synonyms and the sections that terminate content
// collection. All matching is lowercase substring containment over short
// heading text.
var (
	ingredientSynonyms  = []string{"ingredients", "what you'll need", "what you need", "shopping list"}
	instructionSynonyms = []string{"instructions", "directions", "steps", "method", "preparation", "how to make"}
	stopSynonyms        = []string{
		"nutrition", "notes", "equipment", "video", "faq", "tips",
		"storage", "substitutions", "variations", "related", "comments",
		"reviews", "you may also like", "more recipes",
	}
)

// extractGeneric is the last-resort strategy for pages rendered entirely
// as generic containers: no structured data, no semantic markup, no
// class conventions. It runs two independent heuristics with the same
// short-circuit discipline as the dispatcher itself: heading-proximity
// leaf-text collection first, then checkbox-row extraction. A single
// recovered line either way is too weak a signal, so fewer than two
// ingredient lines and fewer than two instruction lines means nil.
func extractGeneric(doc *html.Node, srcURL string) *recipe.Recipe {
	ingredients := headingScan(doc, ingredientSynonyms)
	if len(ingredients) == 0 {
		ingredients = extractCheckboxRows(doc)
	}
	instructions := headingScan(doc, instructionSynonyms)

	ingredients = filterIngredientLines(ingredients)
	instructions = filterInstructionLines(instructions)
	if len(ingredients) < 2 && len(instructions) < 2 {
		return nil
	}

	rec := &recipe.Recipe{
		Title:        findPageTitle(doc),
		Image:        findPageImage(doc),
		Ingredients:  ingredients,
		Instructions: instructions,
	}
	times := findLabeledTimes(doc)
	rec.PrepTime = times["prep"]
	rec.CookTime = times["cook"]
	rec.TotalTime = times["total"]
	return rec
}

// headingScan finds the first heading-styled node naming the wanted
// section and walks forward from it collecting leaf text. When the
// heading has no following siblings with content, collection falls back
// to the heading's parent's remaining siblings.
func headingScan(doc *html.Node, synonyms []string) []string {
	heading := findSectionHeading(doc, synonyms)
	if heading == nil {
		return nil
	}
	lines := collectSiblings(heading.NextSibling, synonyms)
	if len(lines) == 0 && heading.Parent != nil {
		lines = collectSiblings(heading.Parent.NextSibling, synonyms)
	}
	return lines
}

// findSectionHeading scans every node once for the first heading-styled
// node whose short direct text names the section. Heading-ness is judged
// by native level or class convention, never by tag identity alone.
func findSectionHeading(doc *html.Node, synonyms []string) *html.Node {
	return findFirst(doc, func(n *html.Node) bool {
		if !isHeadingStyled(n) {
			return false
		}
		t := textContent(n)
		return t != "" && len(t) < 50 && matchesSynonym(t, synonyms)
	})
}

// collectSiblings walks a sibling chain gathering leaf text, stopping at
// the next heading-level element or at text naming any recipe section or
// stop section.
func collectSiblings(start *html.Node, ownSynonyms []string) []string {
	var lines []string
	for sib := start; sib != nil; sib = sib.NextSibling {
		if sib.Type == html.ElementNode {
			if isHeadingStyled(sib) {
				break
			}
			t := textContent(sib)
			if len(t) < 50 && isSectionBoundary(t) {
				break
			}
		}
		collectLeafText(sib, &lines)
	}
	return lines
}

// isSectionBoundary reports whether short text names another section:
// either recipe section's synonyms, or a stop section like nutrition or
// notes.
func isSectionBoundary(text string) bool {
	if text == "" {
		return false
	}
	return matchesSynonym(text, ingredientSynonyms) ||
		matchesSynonym(text, instructionSynonyms) ||
		matchesSynonym(text, stopSynonyms)
}

// collectLeafText gathers display text from a subtree: containers with
// further block-level structure are recursed into, while nodes without
// block children contribute their full text as one line.
func collectLeafText(n *html.Node, out *[]string) {
	switch n.Type {
	case html.TextNode:
		if t := squashSpace(n.Data); t != "" {
			*out = append(*out, t)
		}
		return
	case html.ElementNode:
	default:
		return
	}

	switch n.Data {
	case "script", "style", "noscript", "nav", "button", "form", "iframe", "svg":
		return
	}
	if isHiddenNode(n) {
		return
	}

	if hasBlockChildren(n) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && isHeadingStyled(c) {
				continue
			}
			collectLeafText(c, out)
		}
		return
	}
	if t := textContent(n); t != "" {
		*out = append(*out, t)
	}
}
