package extract

import (
	"regexp"
	"strings"

	"recipeclip/internal/recipe"
)

// uiNoise is a fixed vocabulary of navigation and widget labels that leak
// into scraped content on framework-rendered pages.
var uiNoise = []string{
	"print recipe", "pin recipe", "jump to recipe", "jump to video",
	"save recipe", "rate this recipe", "leave a review", "read more",
	"cook mode", "prevent your screen", "us customary", "metric",
	"advertisement", "sign up", "subscribe", "newsletter", "follow us",
	"share on", "facebook", "pinterest", "instagram", "twitter",
	"watch the video", "scroll to", "skip to", "log in", "sign in",
	"add to cart", "shop now", "affiliate",
}

// actionVerbs open instruction sentences. An ingredient candidate that
// starts with one is mis-scoped instruction leakage and is dropped.
var actionVerbs = []string{
	"preheat", "combine", "stir", "whisk", "bake", "cook", "heat",
	"mix", "add", "pour", "place", "remove", "transfer", "serve",
	"drain", "simmer", "bring", "reduce", "fold", "beat", "season",
	"garnish", "sprinkle", "cover", "uncover", "let", "allow",
	"set aside", "repeat", "divide", "arrange", "roast", "grill",
	"saute", "sauté", "sear", "melt", "chill", "refrigerate", "freeze",
	"knead", "roll", "spread", "flip", "toss", "blend", "puree",
	"process", "microwave", "boil", "steam", "broil", "rest", "cool",
	"meanwhile", "once", "when", "using",
}

const (
	minIngredientLen  = 3
	maxIngredientLen  = 150
	minInstructionLen = 10
	maxInstructionLen = 1000
)

// isUINoise reports whether a line is site furniture rather than content.
func isUINoise(line string) bool {
	lower := strings.ToLower(line)
	for _, noise := range uiNoise {
		if strings.Contains(lower, noise) {
			return true
		}
	}
	return false
}

// startsWithActionVerb reports whether a line opens with a cooking verb.
func startsWithActionVerb(line string) bool {
	first, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(line)), " ")
	first = strings.TrimRight(first, ",.;:")
	for _, verb := range actionVerbs {
		if first == verb {
			return true
		}
	}
	return false
}

// filterIngredientLines applies the length, noise, and verb filters to
// candidate ingredient lines and deduplicates case-insensitively, keeping
// first occurrences. Header pseudo-entries bypass the content filters.
func filterIngredientLines(lines []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, line := range lines {
		line = squashSpace(line)
		if recipe.IsHeader(line) {
			if !seen[strings.ToLower(line)] {
				seen[strings.ToLower(line)] = true
				out = append(out, line)
			}
			continue
		}
		if len(line) < minIngredientLen || len(line) > maxIngredientLen {
			continue
		}
		if isUINoise(line) || startsWithActionVerb(line) {
			continue
		}
		key := strings.ToLower(line)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, line)
	}
	return out
}

var reStepMarker = regexp.MustCompile(`(?i)^(?:step\s*\d+[:.)]?\s*|\d+[.)]\s+)`)

// filterInstructionLines splits concatenated numbered blobs, strips
// leading step markers, and applies the length, noise, and dedup passes.
func filterInstructionLines(lines []string) []string {
	var split []string
	for _, line := range lines {
		split = append(split, SplitSteps(squashSpace(line))...)
	}

	var out []string
	seen := make(map[string]bool)
	for _, line := range split {
		line = strings.TrimSpace(reStepMarker.ReplaceAllString(strings.TrimSpace(line), ""))
		if len(line) < minInstructionLen || len(line) > maxInstructionLen {
			continue
		}
		if isUINoise(line) {
			continue
		}
		key := strings.ToLower(line)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, line)
	}
	return out
}
