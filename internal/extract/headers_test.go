package extract

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"recipeclip/internal/recipe"
)

func TestMarkSectionHeaders_ColonSuffix(t *testing.T) {
	lines := MarkSectionHeaders([]string{"For the sauce:", "2 cups flour"})
	if !recipe.IsHeader(lines[0]) {
		t.Errorf("expected %q to be marked, got %q", "For the sauce:", lines[0])
	}
	if recipe.IsHeader(lines[1]) {
		t.Errorf("ingredient line must not be marked: %q", lines[1])
	}
}

func TestMarkSectionHeaders_ForPrefixSynthesizesColon(t *testing.T) {
	lines := MarkSectionHeaders([]string{"For the topping"})
	if lines[0] != recipe.MarkHeader("For the topping:") {
		t.Errorf("expected synthesized colon, got %q", lines[0])
	}
}

func TestMarkSectionHeaders_QuantityLineNotMarked(t *testing.T) {
	lines := MarkSectionHeaders([]string{"2 cups flour, sifted:"})
	if recipe.IsHeader(lines[0]) {
		t.Errorf("line with quantity+unit must not become a header: %q", lines[0])
	}
}

func TestMarkSectionHeaders_DigitLedNotMarked(t *testing.T) {
	lines := MarkSectionHeaders([]string{"350 degree oven:"})
	if recipe.IsHeader(lines[0]) {
		t.Errorf("digit-led line must not become a header: %q", lines[0])
	}
}

func TestMarkSectionHeaders_LongLineNotMarked(t *testing.T) {
	long := strings.Repeat("a very long label ", 6) + ":"
	lines := MarkSectionHeaders([]string{long})
	if recipe.IsHeader(lines[0]) {
		t.Errorf("over-length line must not become a header")
	}
}

func TestMarkSectionHeaders_AlreadyMarkedUntouched(t *testing.T) {
	in := recipe.MarkHeader("For the glaze:")
	lines := MarkSectionHeaders([]string{in})
	if lines[0] != in {
		t.Errorf("already-marked entry changed: %q", lines[0])
	}
}

const groupedDoc = `<html><body>
<div class="wprm-recipe-ingredient-group">
  <h4 class="wprm-recipe-group-name">For the crust</h4>
  <ul><li>flour</li><li>butter</li></ul>
</div>
<div class="wprm-recipe-ingredient-group">
  <h4 class="wprm-recipe-group-name">For the filling</h4>
  <ul><li>apples</li><li>sugar</li><li>cinnamon</li></ul>
</div>
</body></html>`

func TestMergeGroupHeaders_CountMatching(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(groupedDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	flat := []string{"2 cups flour", "1 stick butter", "4 apples", "1 cup sugar", "1 tsp cinnamon"}
	merged := MergeGroupHeaders(doc, flat)

	want := []string{
		recipe.MarkHeader("For the crust"),
		"2 cups flour", "1 stick butter",
		recipe.MarkHeader("For the filling"),
		"4 apples", "1 cup sugar", "1 tsp cinnamon",
	}
	if len(merged) != len(want) {
		t.Fatalf("expected %d entries, got %d: %v", len(want), len(merged), merged)
	}
	for i, w := range want {
		if merged[i] != w {
			t.Errorf("entry %d: expected %q, got %q", i, w, merged[i])
		}
	}
}

func TestMergeGroupHeaders_LeftoversAppended(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(groupedDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	flat := []string{"flour", "butter", "apples", "sugar", "cinnamon", "whipped cream"}
	merged := MergeGroupHeaders(doc, flat)
	if merged[len(merged)-1] != "whipped cream" {
		t.Errorf("leftover item should be appended ungrouped, got %v", merged)
	}
}

func TestMergeGroupHeaders_SingleGroupLeavesListUntouched(t *testing.T) {
	single := `<html><body><div class="wprm-recipe-ingredient-group">
	<h4>Everything</h4><ul><li>flour</li></ul></div></body></html>`
	doc, err := html.Parse(strings.NewReader(single))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	flat := []string{"flour"}
	merged := MergeGroupHeaders(doc, flat)
	if len(merged) != 1 || merged[0] != "flour" {
		t.Errorf("fewer than two groups must leave the list untouched, got %v", merged)
	}
}
