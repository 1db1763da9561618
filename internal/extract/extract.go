// Package extract recovers normalized recipe records from arbitrary page
// markup. Four strategies run in fixed priority order (structured data,
// semantic markup, class/heading heuristics, generic text walking) and
// the first to produce content wins outright. Partial results are never
// merged across strategies; heuristic content from different strategies
// is not comparable in confidence.
package extract

import (
	"strings"

	"golang.org/x/net/html"

	"recipeclip/internal/recipe"
)

// strategyFunc is one extraction strategy: a pure function over the
// document tree that returns nil when it finds nothing.
type strategyFunc func(doc *html.Node, srcURL string) *recipe.Recipe

type strategy struct {
	name string
	fn   strategyFunc
}

var strategies = []strategy{
	{"jsonld", extractJSONLD},
	{"microdata", extractMicrodata},
	{"heuristic", extractHeuristic},
	{"generic", extractGeneric},
}

// FromHTML parses markup once and extracts a recipe from the resulting
// tree. The URL is kept for attribution only; nothing is ever fetched.
// The only outcomes are a record with content or nil; no failure inside
// any strategy escapes as a panic or error.
func FromHTML(markup, srcURL string) *recipe.Recipe {
	if strings.TrimSpace(markup) == "" {
		return nil
	}
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil
	}
	return FromDocument(doc, srcURL)
}

// FromDocument runs the strategy chain over an already-parsed tree.
func FromDocument(doc *html.Node, srcURL string) *recipe.Recipe {
	for _, s := range strategies {
		rec := runStrategy(s.fn, doc, srcURL)
		if rec == nil {
			continue
		}
		enrich(doc, rec, s.name)
		rec.Ingredients = MarkSectionHeaders(rec.Ingredients)
		rec.SourceURL = srcURL
		return rec
	}
	return nil
}

// runStrategy isolates a strategy behind a recover boundary: a panic on
// pathological markup means that strategy found nothing, never a crash.
func runStrategy(fn strategyFunc, doc *html.Node, srcURL string) (rec *recipe.Recipe) {
	defer func() {
		if r := recover(); r != nil {
			rec = nil
		}
	}()
	return fn(doc, srcURL)
}

// enrich back-fills fields the winning strategy left unset using cheaper
// whole-document scans. For structured-data winners, whose ingredient
// lists arrive flat, it also merges plugin group headers back in. The
// asymmetry (microdata winners never get the merge) matches the
// long-standing behavior downstream fixtures depend on.
func enrich(doc *html.Node, rec *recipe.Recipe, winner string) {
	if rec.Servings == "" {
		rec.Servings = findServings(doc)
	}
	if rec.Author == "" {
		rec.Author = findAuthor(doc)
	}
	if winner == "jsonld" {
		rec.Ingredients = MergeGroupHeaders(doc, rec.Ingredients)
	}
}
