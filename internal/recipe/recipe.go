// Package recipe defines the shared data model for extracted recipes.
// All other packages depend on recipe; recipe depends on nothing.
package recipe

import "strings"

// HeaderPrefix marks an ingredient-list entry as a section label
// ("## For the sauce:") rather than a real ingredient. Header entries are
// first-class members of an ingredient list but must never be fed to the
// ingredient parser or categorizer as real items.
const HeaderPrefix = "## "

// Recipe is a normalized recipe record produced by extraction.
// A Recipe is only ever handed to a caller when it has at least one
// ingredient or one instruction.
type Recipe struct {
	Title        string   `json:"title"`
	Image        string   `json:"image,omitempty"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	PrepTime     string   `json:"prep_time,omitempty"`
	CookTime     string   `json:"cook_time,omitempty"`
	TotalTime    string   `json:"total_time,omitempty"`
	Servings     string   `json:"servings,omitempty"`
	Author       string   `json:"author,omitempty"`
	Cuisine      string   `json:"cuisine,omitempty"`
	SourceURL    string   `json:"source_url,omitempty"`
}

// HasContent reports whether the record carries any extracted content.
func (r *Recipe) HasContent() bool {
	return len(r.Ingredients) > 0 || len(r.Instructions) > 0
}

// ParsedIngredient is one decomposed ingredient line.
// Unit is set only when Quantity is set. Name never includes the
// preparation note once parsed.
type ParsedIngredient struct {
	Quantity *float64 `json:"quantity"`
	Unit     string   `json:"unit,omitempty"`
	Name     string   `json:"name"`
	PrepNote string   `json:"prep_note,omitempty"`
	Original string   `json:"original"`
}

// IsHeader reports whether an ingredient-list entry is a section header
// pseudo-entry.
func IsHeader(entry string) bool {
	return strings.HasPrefix(entry, HeaderPrefix)
}

// MarkHeader turns a label into a header pseudo-entry.
func MarkHeader(label string) string {
	return HeaderPrefix + label
}

// HeaderLabel strips the header marker from a pseudo-entry.
func HeaderLabel(entry string) string {
	return strings.TrimPrefix(entry, HeaderPrefix)
}

// Category is a grocery-aisle bucket for a parsed ingredient.
type Category string

const (
	CategoryProduce   Category = "Produce"
	CategoryMeat      Category = "Meat & Seafood"
	CategoryDairy     Category = "Dairy & Eggs"
	CategoryDryGoods  Category = "Dry Goods & Baking"
	CategorySpices    Category = "Spices & Seasonings"
	CategoryOils      Category = "Oils & Condiments"
	CategoryCanned    Category = "Canned & Jarred"
	CategoryGrains    Category = "Grains & Pasta"
	CategoryNuts      Category = "Nuts & Seeds"
	CategoryBeverages Category = "Beverages"
	CategoryAlcohol   Category = "Alcohol"
	CategoryOther     Category = "Other"
)

// DisplayOrder is the fixed order groups are presented in. It is
// independent of the categorizer's match-priority order.
var DisplayOrder = []Category{
	CategoryProduce,
	CategoryMeat,
	CategoryDairy,
	CategoryDryGoods,
	CategorySpices,
	CategoryOils,
	CategoryCanned,
	CategoryGrains,
	CategoryNuts,
	CategoryBeverages,
	CategoryAlcohol,
	CategoryOther,
}

// GroupItem ties a grouped ingredient back to its position in the source
// list, so check/toggle state owned by callers survives grouping.
type GroupItem struct {
	OriginalIndex int              `json:"original_index"`
	Raw           string           `json:"raw"`
	Parsed        ParsedIngredient `json:"parsed"`
}

// Group is one grocery-aisle bucket of a flat ingredient list. Groups are
// built fresh per request and never persisted.
type Group struct {
	Category Category    `json:"category"`
	Items    []GroupItem `json:"items"`
}
