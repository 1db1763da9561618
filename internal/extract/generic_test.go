package extract

import (
	"strings"
	"testing"
)

func TestExtractGeneric_DivSoupWithStyledHeadings(t *testing.T) {
	doc := mustParse(t, `<html><body>
<div class="section-title">Ingredients</div>
<div>
  <div>2 cups flour</div>
  <div>1 cup sugar</div>
  <div>3 eggs</div>
</div>
<div class="section-title">Instructions</div>
<div>
  <div>Cream the butter and sugar together.</div>
  <div>Fold in the flour in two additions.</div>
</div>
<div class="section-title">Nutrition</div>
<div><div>Calories: 300</div></div>
</body></html>`)
	rec := extractGeneric(doc, "u")
	if rec == nil {
		t.Fatal("expected a recipe, got nil")
	}
	if len(rec.Ingredients) != 3 {
		t.Errorf("ingredients: got %v", rec.Ingredients)
	}
	if len(rec.Instructions) != 2 {
		t.Errorf("instructions: got %v", rec.Instructions)
	}
	for _, line := range rec.Ingredients {
		if strings.Contains(line, "Calories") {
			t.Errorf("collection ran past the nutrition section: %v", rec.Ingredients)
		}
	}
}

func TestExtractGeneric_StopsAtBoundarySection(t *testing.T) {
	doc := mustParse(t, `<html><body>
<div class="heading">Ingredients</div>
<div>2 cups flour</div>
<div>1 cup sugar</div>
<div class="plain">Notes</div>
<div>Keeps for a week in a tin.</div>
</body></html>`)
	rec := extractGeneric(doc, "u")
	if rec == nil {
		t.Fatal("expected a recipe, got nil")
	}
	for _, line := range rec.Ingredients {
		if strings.Contains(line, "Keeps for a week") {
			t.Errorf("collection ran past the notes boundary: %v", rec.Ingredients)
		}
	}
	if len(rec.Ingredients) != 2 {
		t.Errorf("ingredients: got %v", rec.Ingredients)
	}
}

func TestExtractGeneric_HiddenAndNoiseFiltered(t *testing.T) {
	doc := mustParse(t, `<html><body>
<div class="title">Ingredients</div>
<div>
  <div>2 cups flour</div>
  <div style="display:none">tracking pixel text</div>
  <div>1 cup sugar</div>
  <div>Print Recipe</div>
  <div>1 cup sugar</div>
</div>
</body></html>`)
	rec := extractGeneric(doc, "u")
	if rec == nil {
		t.Fatal("expected a recipe, got nil")
	}
	if len(rec.Ingredients) != 2 {
		t.Errorf("expected hidden, noise and duplicate lines dropped, got %v", rec.Ingredients)
	}
}

func TestExtractCheckboxRows_SplitMarkupJoined(t *testing.T) {
	doc := mustParse(t, `<html><body>
<div><input type="checkbox"><span><span>2 lbs</span><span>chicken</span></span></div>
<div><input type="checkbox"><span>1 cup rice</span></div>
</body></html>`)
	lines := extractCheckboxRows(doc)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %v", lines)
	}
	if lines[0] != "2 lbs chicken" {
		t.Errorf("split markup must rejoin with a space, got %q", lines[0])
	}
}

func TestExtractCheckboxRows_NoteAppended(t *testing.T) {
	doc := mustParse(t, `<html><body>
<div>
  <input type="checkbox">
  <span>1 onion</span>
  <span>finely diced</span>
</div>
</body></html>`)
	lines := extractCheckboxRows(doc)
	if len(lines) != 1 || lines[0] != "1 onion, finely diced" {
		t.Errorf("second container should append as a note, got %v", lines)
	}
}

func TestExtractCheckboxRows_HeaderAttributedOnce(t *testing.T) {
	doc := mustParse(t, `<html><body>
<div>
  <h4>For the sauce</h4>
  <div><input type="checkbox"><span>2 tbsp soy sauce</span></div>
  <div><input type="checkbox"><span>1 tbsp honey</span></div>
</div>
</body></html>`)
	lines := extractCheckboxRows(doc)
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 items, got %v", lines)
	}
	if lines[0] != "## For the sauce" {
		t.Errorf("header line: got %q", lines[0])
	}
	if lines[1] != "2 tbsp soy sauce" || lines[2] != "1 tbsp honey" {
		t.Errorf("items: got %v", lines[1:])
	}
}

func TestExpandCompoundRow_EachNote(t *testing.T) {
	lines := expandCompoundRow("1 tsp salt & pepper, each")
	want := []string{"1 tsp salt", "1 tsp pepper"}
	if len(lines) != 2 || lines[0] != want[0] || lines[1] != want[1] {
		t.Errorf("got %v, want %v", lines, want)
	}
}

func TestExpandCompoundRow_ThreeShortItems(t *testing.T) {
	lines := expandCompoundRow("1 tsp salt, pepper, garlic powder")
	want := []string{"1 tsp salt", "1 tsp pepper", "1 tsp garlic powder"}
	if len(lines) != 3 {
		t.Fatalf("got %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestExpandCompoundRow_TwoItemsKeptWhole(t *testing.T) {
	lines := expandCompoundRow("1 onion, finely diced")
	if len(lines) != 1 || lines[0] != "1 onion, finely diced" {
		t.Errorf("a plain note row must not expand, got %v", lines)
	}
}

func TestExtractGeneric_CheckboxFallbackForIngredients(t *testing.T) {
	doc := mustParse(t, `<html><body>
<div><input type="checkbox"><span>2 cups flour</span></div>
<div><input type="checkbox"><span>1 cup sugar</span></div>
<div><input type="checkbox"><span>3 eggs</span></div>
</body></html>`)
	rec := extractGeneric(doc, "u")
	if rec == nil {
		t.Fatal("expected a recipe from checkbox rows, got nil")
	}
	if len(rec.Ingredients) != 3 {
		t.Errorf("ingredients: got %v", rec.Ingredients)
	}
}
