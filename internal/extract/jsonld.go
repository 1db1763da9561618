package extract

import (
	"encoding/json"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"recipeclip/internal/ingredient"
	"recipeclip/internal/recipe"
)

// extractJSONLD recovers a recipe from embedded JSON-LD blocks. Each
// block is decoded tolerantly: syntactically invalid blocks contribute
// nothing and scanning moves to the next one.
func extractJSONLD(doc *html.Node, srcURL string) *recipe.Recipe {
	for _, block := range jsonLDBlocks(doc) {
		var data any
		if err := json.Unmarshal([]byte(block), &data); err != nil {
			continue
		}
		node, siblings := findRecipeNode(data, nil)
		if node == nil {
			continue
		}
		if rec := recipeFromNode(node, siblings); rec != nil {
			return rec
		}
	}
	return nil
}

// jsonLDBlocks collects the text of every ld+json script in the page.
func jsonLDBlocks(doc *html.Node) []string {
	var blocks []string
	walkNodes(doc, func(n *html.Node) bool {
		if isElement(n, "script") && strings.Contains(strings.ToLower(attr(n, "type")), "ld+json") {
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				blocks = append(blocks, n.FirstChild.Data)
			}
			return false
		}
		return true
	})
	return blocks
}

// findRecipeNode walks a decoded JSON-LD value looking for a node typed
// Recipe. It is a recursive descent over a generic tree: wrapper arrays
// are scanned element-wise, and @graph indirection descends with the
// graph's node list carried along as siblings so references elsewhere in
// the graph ("author": {"@id": ...}) can be resolved later.
func findRecipeNode(v any, siblings []any) (map[string]any, []any) {
	switch val := v.(type) {
	case []any:
		for _, item := range val {
			if node, sibs := findRecipeNode(item, val); node != nil {
				return node, sibs
			}
		}
	case map[string]any:
		if hasType(val, "Recipe") {
			return val, siblings
		}
		if graph, ok := val["@graph"].([]any); ok {
			for _, item := range graph {
				if node, sibs := findRecipeNode(item, graph); node != nil {
					return node, sibs
				}
			}
		}
	}
	return nil, nil
}

// hasType reports whether a node's @type (string or array) names t.
func hasType(node map[string]any, t string) bool {
	switch typ := node["@type"].(type) {
	case string:
		return strings.EqualFold(typ, t)
	case []any:
		for _, item := range typ {
			if s, ok := item.(string); ok && strings.EqualFold(s, t) {
				return true
			}
		}
	}
	return false
}

// recipeFromNode maps a Recipe-typed node onto the record. A node whose
// ingredient and instruction lists are both empty is not a recipe find.
func recipeFromNode(node map[string]any, siblings []any) *recipe.Recipe {
	rec := &recipe.Recipe{
		Title:        stringValue(node["name"]),
		Image:        imageValue(node["image"]),
		Ingredients:  ingredientList(node),
		Instructions: instructionList(node["recipeInstructions"]),
		PrepTime:     NormalizeDuration(stringValue(node["prepTime"])),
		CookTime:     NormalizeDuration(stringValue(node["cookTime"])),
		TotalTime:    NormalizeDuration(stringValue(node["totalTime"])),
		Servings:     ingredient.ParseServings(stringValue(node["recipeYield"])),
		Author:       authorValue(node["author"], siblings),
		Cuisine:      firstStringValue(node["recipeCuisine"]),
	}
	if !rec.HasContent() {
		return nil
	}
	return rec
}

func ingredientList(node map[string]any) []string {
	lines := stringList(node["recipeIngredient"])
	if len(lines) == 0 {
		lines = stringList(node["ingredients"])
	}
	return lines
}

// instructionList flattens the many shapes recipeInstructions takes in
// the wild: a single string, an array of strings, HowToStep objects, or
// HowToSection objects whose names become header-less step groups.
func instructionList(v any) []string {
	var steps []string
	var collect func(any)
	collect = func(v any) {
		switch val := v.(type) {
		case string:
			steps = append(steps, SplitSteps(squashSpace(val))...)
		case []any:
			for _, item := range val {
				collect(item)
			}
		case map[string]any:
			if items, ok := val["itemListElement"]; ok {
				collect(items)
				return
			}
			if text := stringValue(val["text"]); text != "" {
				steps = append(steps, squashSpace(text))
			}
		}
	}
	collect(v)

	out := steps[:0]
	for _, s := range steps {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// stringValue coerces a JSON-LD scalar field to a string. Numbers come
// back in their shortest decimal form.
func stringValue(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []any:
		if len(val) > 0 {
			return stringValue(val[0])
		}
	case map[string]any:
		return stringValue(val["name"])
	}
	return ""
}

// firstStringValue is stringValue restricted to string-bearing shapes,
// used for fields where a numeric value would be meaningless.
func firstStringValue(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case []any:
		if len(val) > 0 {
			return firstStringValue(val[0])
		}
	}
	return ""
}

func stringList(v any) []string {
	var out []string
	switch val := v.(type) {
	case string:
		if s := squashSpace(val); s != "" {
			out = append(out, s)
		}
	case []any:
		for _, item := range val {
			if s := squashSpace(stringValue(item)); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// imageValue handles image as URL string, array of URLs, or an
// ImageObject with a url field.
func imageValue(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case []any:
		if len(val) > 0 {
			return imageValue(val[0])
		}
	case map[string]any:
		if u := stringValue(val["url"]); u != "" {
			return u
		}
		return stringValue(val["contentUrl"])
	}
	return ""
}

// authorValue resolves the author field: a plain string, a Person node
// with a name, an array of either, or an @id reference pointing at a node
// elsewhere in the same graph.
func authorValue(v any, siblings []any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case []any:
		for _, item := range val {
			if name := authorValue(item, siblings); name != "" {
				return name
			}
		}
	case map[string]any:
		if name := stringValue(val["name"]); name != "" {
			return name
		}
		if id, ok := val["@id"].(string); ok {
			return resolveReference(id, siblings)
		}
	}
	return ""
}

// resolveReference finds a node by @id among the graph siblings and
// returns its name.
func resolveReference(id string, siblings []any) string {
	for _, item := range siblings {
		node, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if nodeID, _ := node["@id"].(string); nodeID == id {
			return stringValue(node["name"])
		}
	}
	return ""
}
