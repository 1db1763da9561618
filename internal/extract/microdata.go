package extract

import (
	"strings"

	"golang.org/x/net/html"

	"recipeclip/internal/ingredient"
	"recipeclip/internal/recipe"
)

// extractMicrodata recovers a recipe from itemscope/itemprop annotations:
// a container typed schema.org/Recipe whose descendants carry property
// attributes. A matched container with no ingredients and no instructions
// is not a find.
func extractMicrodata(doc *html.Node, srcURL string) *recipe.Recipe {
	scope := findFirst(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		itemtype := strings.ToLower(attr(n, "itemtype"))
		return strings.Contains(itemtype, "schema.org/recipe")
	})
	if scope == nil {
		return nil
	}

	rec := &recipe.Recipe{}
	walkNodes(scope, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		prop := attr(n, "itemprop")
		if prop == "" {
			return true
		}
		switch strings.ToLower(prop) {
		case "name":
			// Only the recipe's own name; nested scopes (author, video)
			// carry their own name props.
			if rec.Title == "" && !insideNestedScope(n, scope) {
				rec.Title = textContent(n)
			}
		case "recipeingredient", "ingredients":
			if line := propText(n); line != "" {
				rec.Ingredients = append(rec.Ingredients, line)
			}
			return false
		case "recipeinstructions", "instructions":
			rec.Instructions = append(rec.Instructions, instructionItems(n)...)
			return false
		case "image", "photo":
			if rec.Image == "" {
				rec.Image = imageSource(n)
			}
		case "preptime":
			if rec.PrepTime == "" {
				rec.PrepTime = NormalizeDuration(propValue(n))
			}
		case "cooktime":
			if rec.CookTime == "" {
				rec.CookTime = NormalizeDuration(propValue(n))
			}
		case "totaltime":
			if rec.TotalTime == "" {
				rec.TotalTime = NormalizeDuration(propValue(n))
			}
		case "recipeyield", "yield":
			if rec.Servings == "" {
				rec.Servings = ingredient.ParseServings(propValue(n))
			}
		case "author":
			if rec.Author == "" {
				rec.Author = authorText(n)
			}
			return false
		case "recipecuisine":
			if rec.Cuisine == "" {
				rec.Cuisine = propText(n)
			}
		}
		return true
	})

	if !rec.HasContent() {
		return nil
	}
	rec.Instructions = filterInstructionLines(rec.Instructions)
	return rec
}

// insideNestedScope reports whether n sits inside an itemscope below top.
func insideNestedScope(n, top *html.Node) bool {
	for p := n.Parent; p != nil && p != top; p = p.Parent {
		if p.Type == html.ElementNode {
			if _, ok := lookupAttr(p, "itemscope"); ok {
				return true
			}
		}
	}
	return false
}

func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// propValue prefers a machine-readable content/datetime attribute over
// the element's display text.
func propValue(n *html.Node) string {
	if v := attr(n, "content"); v != "" {
		return v
	}
	if v := attr(n, "datetime"); v != "" {
		return v
	}
	return textContent(n)
}

func propText(n *html.Node) string {
	if v := attr(n, "content"); v != "" {
		return squashSpace(v)
	}
	return textContent(n)
}

// instructionItems reads an instruction property: list children become
// one step each, anything else is one blob handed to the step splitter.
func instructionItems(n *html.Node) []string {
	var items []string
	walkNodes(n, func(c *html.Node) bool {
		if isElement(c, "li") {
			if t := textContent(c); t != "" {
				items = append(items, t)
			}
			return false
		}
		return true
	})
	if len(items) > 0 {
		return items
	}
	if t := textContent(n); t != "" {
		return SplitSteps(t)
	}
	return nil
}

func imageSource(n *html.Node) string {
	for _, key := range []string{"src", "content", "href"} {
		if v := attr(n, key); v != "" {
			return v
		}
	}
	return ""
}

// authorText handles both a plain author property and a nested Person
// scope carrying its own name property.
func authorText(n *html.Node) string {
	if nested := findFirst(n, func(c *html.Node) bool {
		return c != n && c.Type == html.ElementNode && strings.EqualFold(attr(c, "itemprop"), "name")
	}); nested != nil {
		return textContent(nested)
	}
	return propText(n)
}
