package extract

import "testing"

func TestExtractHeuristic_ClassedLists(t *testing.T) {
	doc := mustParse(t, `<html><body>
<h1>Garlic Noodles</h1>
<ul class="wprm-recipe-ingredients">
  <li class="wprm-recipe-ingredient">8 oz noodles</li>
  <li class="wprm-recipe-ingredient">6 cloves garlic</li>
  <li class="wprm-recipe-ingredient">3 tbsp butter</li>
</ul>
<ol class="wprm-recipe-instructions">
  <li class="wprm-recipe-instruction">Boil the noodles until just tender.</li>
  <li class="wprm-recipe-instruction">Toss with the garlic butter off the heat.</li>
</ol>
</body></html>`)
	rec := extractHeuristic(doc, "u")
	if rec == nil {
		t.Fatal("expected a recipe, got nil")
	}
	if len(rec.Ingredients) != 3 {
		t.Errorf("ingredients: got %v", rec.Ingredients)
	}
	if len(rec.Instructions) != 2 {
		t.Errorf("instructions: got %v", rec.Instructions)
	}
	if rec.Title != "Garlic Noodles" {
		t.Errorf("title: got %q", rec.Title)
	}
}

func TestExtractHeuristic_CompoundClassNotMistakenForIngredient(t *testing.T) {
	doc := mustParse(t, `<html><body>
<ul class="recipe-ingredients">
  <li>8 oz noodles</li>
  <li>6 cloves garlic</li>
</ul>
<ol class="instructions-with-ingredients">
  <li>Boil the noodles until just tender.</li>
  <li>Toss with the garlic butter off the heat.</li>
</ol>
</body></html>`)
	rec := extractHeuristic(doc, "u")
	if rec == nil {
		t.Fatal("expected a recipe, got nil")
	}
	for _, line := range rec.Ingredients {
		if line == "Boil the noodles until just tender." {
			t.Errorf("compound instruction class leaked into ingredients: %v", rec.Ingredients)
		}
	}
	if len(rec.Ingredients) != 2 {
		t.Errorf("ingredients: got %v", rec.Ingredients)
	}
}

func TestExtractHeuristic_HeadingThenList(t *testing.T) {
	doc := mustParse(t, `<html><body>
<h2>Ingredients</h2>
<ul>
  <li>2 cups flour</li>
  <li>1 tsp salt</li>
</ul>
<h2>Directions</h2>
<ol>
  <li>Whisk the dry ingredients together.</li>
  <li>Fold in the wet ingredients gently.</li>
</ol>
</body></html>`)
	rec := extractHeuristic(doc, "u")
	if rec == nil {
		t.Fatal("expected a recipe, got nil")
	}
	if len(rec.Ingredients) != 2 {
		t.Errorf("ingredients: got %v", rec.Ingredients)
	}
	if len(rec.Instructions) != 2 {
		t.Errorf("instructions: got %v", rec.Instructions)
	}
}

func TestExtractHeuristic_WrappedHeadingFallsBackToParentSiblings(t *testing.T) {
	doc := mustParse(t, `<html><body>
<div class="section-head"><h3>Ingredients</h3></div>
<div><ul>
  <li>1 cup rice</li>
  <li>2 cups water</li>
</ul></div>
</body></html>`)
	rec := extractHeuristic(doc, "u")
	if rec == nil {
		t.Fatal("expected a recipe, got nil")
	}
	if len(rec.Ingredients) != 2 {
		t.Errorf("ingredients: got %v", rec.Ingredients)
	}
}

func TestExtractHeuristic_SingleItemListIsNoFind(t *testing.T) {
	doc := mustParse(t, `<html><body>
<h2>Ingredients</h2>
<ul><li>1 cup flour</li></ul>
</body></html>`)
	if rec := extractHeuristic(doc, "u"); rec != nil {
		t.Errorf("one surviving line on each side must be nil, got %+v", rec)
	}
}

func TestExtractHeuristic_ListStopsAtNextHeading(t *testing.T) {
	doc := mustParse(t, `<html><body>
<h2>Ingredients</h2>
<h2>Comments</h2>
<ul>
  <li>Loved this one!</li>
  <li>Came out great.</li>
</ul>
</body></html>`)
	rec := extractHeuristic(doc, "u")
	if rec != nil && len(rec.Ingredients) > 0 {
		t.Errorf("list beyond the next heading must not be read: %v", rec.Ingredients)
	}
}
