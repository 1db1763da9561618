package extract

import (
	"strings"

	"golang.org/x/net/html"

	"recipeclip/internal/recipe"
)

// extractHeuristic is the class/heading scan for pages that carry no
// machine-readable data but still follow list and heading conventions.
// Tier one trusts class names on list items; tier two finds a section
// heading and reads the list that follows it. Either way the collected
// lines go through the shared filters, and fewer than two surviving
// lines on both sides means no find.
func extractHeuristic(doc *html.Node, srcURL string) *recipe.Recipe {
	ingredients := classedListItems(doc, ingredientClassHints, instructionClassHints)
	if len(ingredients) == 0 {
		ingredients = listAfterHeading(doc, ingredientSynonyms)
	}

	instructions := classedListItems(doc, instructionClassHints, ingredientClassHints)
	if len(instructions) == 0 {
		instructions = listAfterHeading(doc, instructionSynonyms)
	}

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

var ingredientClassHints = []string{"ingredient"}

var instructionClassHints = []string{"instruction", "direction", "preparation-step", "recipe-step", "method-step"}

// classedListItems collects li texts whose own class (or whose list's
// class) matches one of the wanted hints and none of the excluded ones.
// The exclusion guards against "ingredient" matching inside
// "instructions-with-ingredients" style compound names.
func classedListItems(doc *html.Node, want, exclude []string) []string {
	var lines []string
	walkNodes(doc, func(n *html.Node) bool {
		if !isElement(n, "li") {
			return true
		}
		class := strings.ToLower(attr(n, "class"))
		if n.Parent != nil {
			class += " " + strings.ToLower(attr(n.Parent, "class"))
		}
		if !containsAny(class, want) || containsAny(class, exclude) {
			return true
		}
		if t := textContent(n); t != "" {
			lines = append(lines, t)
		}
		return false
	})
	return lines
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// listAfterHeading finds the first native heading whose text matches a
// section synonym and reads the next list among its following siblings,
// stopping at another heading.
func listAfterHeading(doc *html.Node, synonyms []string) []string {
	heading := findFirst(doc, func(n *html.Node) bool {
		if headingLevel(n) == 0 {
			return false
		}
		t := textContent(n)
		return len(t) < 50 && matchesSynonym(t, synonyms)
	})
	if heading == nil {
		return nil
	}

	for sib := heading.NextSibling; sib != nil; sib = sib.NextSibling {
		if headingLevel(sib) > 0 {
			break
		}
		if list := findList(sib); list != nil {
			return listItemTexts(list)
		}
	}
	// Wrapped heading: the list lives beside the heading's parent.
	if heading.Parent != nil {
		for sib := heading.Parent.NextSibling; sib != nil; sib = sib.NextSibling {
			if headingLevel(sib) > 0 {
				break
			}
			if list := findList(sib); list != nil {
				return listItemTexts(list)
			}
		}
	}
	return nil
}

func findList(n *html.Node) *html.Node {
	if n.Type != html.ElementNode {
		return nil
	}
	return findFirst(n, func(c *html.Node) bool {
		return isElement(c, "ul") || isElement(c, "ol")
	})
}

func listItemTexts(list *html.Node) []string {
	var lines []string
	walkNodes(list, func(n *html.Node) bool {
		if isElement(n, "li") {
			if t := textContent(n); t != "" {
				lines = append(lines, t)
			}
			return false
		}
		return true
	})
	return lines
}

// matchesSynonym reports whether short heading text names one of the
// section synonyms.
func matchesSynonym(text string, synonyms []string) bool {
	lower := strings.ToLower(text)
	for _, syn := range synonyms {
		if strings.Contains(lower, syn) {
			return true
		}
	}
	return false
}
