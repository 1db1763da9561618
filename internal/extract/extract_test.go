package extract

import "testing"

func TestFromHTML_EmptyMarkupIsNil(t *testing.T) {
	if rec := FromHTML("", "https://example.com"); rec != nil {
		t.Errorf("empty markup must be nil, got %+v", rec)
	}
	if rec := FromHTML("   \n\t ", "https://example.com"); rec != nil {
		t.Errorf("blank markup must be nil, got %+v", rec)
	}
}

func TestFromHTML_NothingRecognizableIsNil(t *testing.T) {
	markup := `<html><body><h1>About Us</h1><p>We write about travel.</p></body></html>`
	if rec := FromHTML(markup, "u"); rec != nil {
		t.Errorf("non-recipe page must be nil, got %+v", rec)
	}
}

func TestFromHTML_StructuredDataWinsOverMarkup(t *testing.T) {
	markup := `<html><head><script type="application/ld+json">
{"@type": "Recipe", "name": "From JSON-LD",
 "recipeIngredient": ["1 cup a", "1 cup b"],
 "recipeInstructions": ["Do the first thing.", "Do the second thing."]}
</script></head><body>
<div itemscope itemtype="https://schema.org/Recipe">
  <h1 itemprop="name">From Microdata</h1>
  <li itemprop="recipeIngredient">1 cup c</li>
  <li itemprop="recipeIngredient">1 cup d</li>
</div>
</body></html>`
	rec := FromHTML(markup, "u")
	if rec == nil {
		t.Fatal("expected a recipe, got nil")
	}
	if rec.Title != "From JSON-LD" {
		t.Errorf("structured data must win, got title %q", rec.Title)
	}
	if len(rec.Ingredients) != 2 || rec.Ingredients[0] != "1 cup a" {
		t.Errorf("winner's ingredients must be kept whole, got %v", rec.Ingredients)
	}
}

func TestFromHTML_NoCrossStrategyMerge(t *testing.T) {
	// The microdata block has instructions the JSON-LD block lacks; the
	// winner's gaps stay gaps rather than being filled from a lower
	// strategy's content lists.
	markup := `<html><head><script type="application/ld+json">
{"@type": "Recipe", "name": "Ingredients Only",
 "recipeIngredient": ["1 cup a", "1 cup b"]}
</script></head><body>
<div itemscope itemtype="https://schema.org/Recipe">
  <span itemprop="name">Other</span>
  <div itemprop="recipeInstructions"><li>Stir everything together well.</li></div>
</div>
</body></html>`
	rec := FromHTML(markup, "u")
	if rec == nil {
		t.Fatal("expected a recipe, got nil")
	}
	if rec.Title != "Ingredients Only" {
		t.Errorf("title: got %q", rec.Title)
	}
	if len(rec.Instructions) != 0 {
		t.Errorf("instructions must not be merged in from a lower strategy: %v", rec.Instructions)
	}
}

func TestFromHTML_EnrichmentBackfillsServingsAndAuthor(t *testing.T) {
	markup := `<html><head><script type="application/ld+json">
{"@type": "Recipe", "name": "Plain",
 "recipeIngredient": ["1 cup a", "1 cup b"],
 "recipeInstructions": ["Do the only thing there is."]}
</script></head><body>
<span class="recipe-servings">Servings: 6</span>
<span class="author-name">Riley Stone</span>
</body></html>`
	rec := FromHTML(markup, "u")
	if rec == nil {
		t.Fatal("expected a recipe, got nil")
	}
	if rec.Servings != "6" {
		t.Errorf("servings should be back-filled from the page, got %q", rec.Servings)
	}
	if rec.Author != "Riley Stone" {
		t.Errorf("author should be back-filled from the page, got %q", rec.Author)
	}
}

func TestFromHTML_GroupHeadersMergedForStructuredData(t *testing.T) {
	markup := `<html><head><script type="application/ld+json">
{"@type": "Recipe", "name": "Layered",
 "recipeIngredient": ["1 cup flour", "2 eggs", "1 cup cream", "2 tbsp sugar"],
 "recipeInstructions": ["Make the base first.", "Then make the topping."]}
</script></head><body>
<div class="wprm-recipe-ingredient-group">
  <h4 class="wprm-recipe-group-name">For the base</h4>
  <ul><li>1 cup flour</li><li>2 eggs</li></ul>
</div>
<div class="wprm-recipe-ingredient-group">
  <h4 class="wprm-recipe-group-name">For the topping</h4>
  <ul><li>1 cup cream</li><li>2 tbsp sugar</li></ul>
</div>
</body></html>`
	rec := FromHTML(markup, "u")
	if rec == nil {
		t.Fatal("expected a recipe, got nil")
	}
	want := []string{
		"## For the base", "1 cup flour", "2 eggs",
		"## For the topping", "1 cup cream", "2 tbsp sugar",
	}
	if len(rec.Ingredients) != len(want) {
		t.Fatalf("got %v, want %v", rec.Ingredients, want)
	}
	for i := range want {
		if rec.Ingredients[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, rec.Ingredients[i], want[i])
		}
	}
}

func TestFromHTML_NoGroupMergeForMicrodataWinner(t *testing.T) {
	markup := `<html><body>
<div itemscope itemtype="https://schema.org/Recipe">
  <span itemprop="name">Layered</span>
  <span itemprop="recipeIngredient">1 cup flour</span>
  <span itemprop="recipeIngredient">2 eggs</span>
  <div itemprop="recipeInstructions"><li>Mix it all together well.</li></div>
</div>
<div class="wprm-recipe-ingredient-group">
  <h4 class="wprm-recipe-group-name">For the base</h4>
  <ul><li>1 cup flour</li><li>2 eggs</li></ul>
</div>
<div class="wprm-recipe-ingredient-group">
  <h4 class="wprm-recipe-group-name">For the topping</h4>
  <ul><li>1 cup cream</li><li>2 tbsp sugar</li></ul>
</div>
</body></html>`
	rec := FromHTML(markup, "u")
	if rec == nil {
		t.Fatal("expected a recipe, got nil")
	}
	for _, line := range rec.Ingredients {
		if line == "## For the base" {
			t.Errorf("group merge must not apply to a microdata winner: %v", rec.Ingredients)
		}
	}
}

func TestFromHTML_SourceURLAttached(t *testing.T) {
	markup := `<html><head><script type="application/ld+json">
{"@type": "Recipe", "name": "Anything",
 "recipeIngredient": ["1 cup a", "1 cup b"],
 "recipeInstructions": ["Do the only thing there is."]}
</script></head><body></body></html>`
	rec := FromHTML(markup, "https://example.com/page")
	if rec == nil {
		t.Fatal("expected a recipe, got nil")
	}
	if rec.SourceURL != "https://example.com/page" {
		t.Errorf("source url: got %q", rec.SourceURL)
	}
}

func TestFromHTML_SectionHeadersMarkedOnWinner(t *testing.T) {
	markup := `<html><head><script type="application/ld+json">
{"@type": "Recipe", "name": "Sectioned",
 "recipeIngredient": ["For the crust:", "1 cup flour", "4 tbsp butter"],
 "recipeInstructions": ["Do the only thing there is."]}
</script></head><body></body></html>`
	rec := FromHTML(markup, "u")
	if rec == nil {
		t.Fatal("expected a recipe, got nil")
	}
	if rec.Ingredients[0] != "## For the crust:" {
		t.Errorf("colon-suffixed label must be marked, got %q", rec.Ingredients[0])
	}
}
