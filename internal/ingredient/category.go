package ingredient

import (
	"strings"

	"recipeclip/internal/recipe"
)

// categoryMatch pairs a category with its keyword list. The slice order is
// the match-priority order, which deliberately differs from display order:
// categories prone to false positives against Produce (oils, canned goods,
// spices) are checked first, because matching is plain substring
// containment and "tomato paste" must not land in Produce via "tomato".
type categoryMatch struct {
	category recipe.Category
	keywords []string
}

var matchOrder = []categoryMatch{
	// Produce names that contain another category's keyword ("eggplant"
	// contains "egg") are claimed before that category gets a look.
	{recipe.CategoryProduce, []string{"eggplant"}},
	{recipe.CategoryOils, []string{
		"oil", "vinegar", "mayonnaise", "mayo", "mustard", "ketchup",
		"soy sauce", "tamari", "fish sauce", "hot sauce", "sriracha",
		"worcestershire", "hoisin", "teriyaki", "barbecue sauce", "bbq sauce",
		"dressing", "honey", "maple syrup", "molasses", "tahini", "relish",
	}},
	{recipe.CategoryCanned, []string{
		"canned", "can of", "tomato paste", "tomato sauce", "crushed tomatoes",
		"diced tomatoes", "tomato puree", "coconut milk", "coconut cream",
		"broth", "stock", "bouillon", "beans", "chickpeas", "lentils",
		"olives", "capers", "artichoke", "pumpkin puree", "salsa", "jarred",
		"jam", "jelly", "marmalade", "peanut butter", "almond butter",
		"anchovy", "anchovies", "chipotles in adobo", "soup",
	}},
	{recipe.CategorySpices, []string{
		"salt", "black pepper", "white pepper", "peppercorn", "cayenne",
		"paprika", "cumin", "coriander", "turmeric", "curry powder",
		"chili powder", "chile powder", "red pepper flakes", "chili flakes",
		"cinnamon", "nutmeg", "clove", "allspice", "cardamom", "ginger powder",
		"ground ginger", "oregano", "thyme", "rosemary", "sage", "bay lea",
		"basil", "dried", "italian seasoning", "garlic powder", "onion powder",
		"vanilla extract", "cream of tartar", "seasoning", "spice",
	}},
	{recipe.CategoryNuts, []string{
		"almond", "walnut", "pecan", "cashew", "pistachio", "hazelnut",
		"macadamia", "peanut", "pine nut", "sesame seed", "chia seed",
		"flax", "sunflower seed", "pumpkin seed", "pepitas",
	}},
	{recipe.CategoryGrains, []string{
		"pasta", "spaghetti", "penne", "macaroni", "fettuccine", "linguine",
		"noodle", "rice", "quinoa", "couscous", "barley", "farro", "bulgur",
		"oats", "oatmeal", "tortilla", "bread", "baguette", "bun", "pita",
		"cracker", "breadcrumb", "panko", "cereal", "polenta", "grits",
	}},
	{recipe.CategoryMeat, []string{
		"chicken", "beef", "pork", "lamb", "turkey", "duck", "veal",
		"bacon", "sausage", "ham", "prosciutto", "salami", "chorizo",
		"steak", "ground meat", "brisket", "ribs", "meatball",
		"fish", "salmon", "tuna", "cod", "halibut", "tilapia", "trout",
		"shrimp", "prawn", "scallop", "crab", "lobster", "mussel", "clam",
		"oyster", "squid", "calamari",
	}},
	{recipe.CategoryDairy, []string{
		"milk", "cream", "half-and-half", "half and half", "butter",
		"cheese", "cheddar", "mozzarella", "parmesan", "feta", "ricotta",
		"gouda", "brie", "yogurt", "yoghurt", "sour cream", "creme fraiche",
		"egg", "buttermilk", "ghee",
	}},
	{recipe.CategoryDryGoods, []string{
		"flour", "sugar", "brown sugar", "powdered sugar", "baking powder",
		"baking soda", "yeast", "cornstarch", "corn starch", "cornmeal",
		"cocoa", "chocolate", "shortening", "gelatin", "sprinkles",
		"food coloring", "extract", "stevia", "sweetener",
	}},
	{recipe.CategoryAlcohol, []string{
		"wine", "beer", "rum", "vodka", "bourbon", "whiskey", "whisky",
		"brandy", "tequila", "sherry", "marsala", "vermouth", "liqueur",
		"sake", "mirin",
	}},
	{recipe.CategoryBeverages, []string{
		"coffee", "espresso", "juice", "soda", "cola", "lemonade",
		"green tea", "black tea", "tea bag", "sparkling water", "cider",
	}},
	{recipe.CategoryProduce, []string{
		"onion", "garlic", "shallot", "scallion", "leek", "tomato", "potato",
		"carrot", "celery", "pepper", "jalapeno", "jalapeño", "cucumber",
		"zucchini", "squash", "eggplant", "broccoli", "cauliflower",
		"spinach", "kale", "lettuce", "arugula", "cabbage", "chard",
		"mushroom", "avocado", "corn", "peas", "green bean", "asparagus",
		"beet", "radish", "turnip", "sweet potato", "ginger", "lemongrass",
		"cilantro", "parsley", "mint", "dill", "chive", "apple", "banana",
		"orange", "lemon", "lime", "berr", "strawberr", "blueberr",
		"raspberr", "grape", "mango", "pineapple", "peach", "pear", "plum",
		"cherry", "melon", "kiwi", "pomegranate", "fig", "date",
	}},
}

// Categorize classifies an ingredient name into a grocery category.
// First keyword match in priority order wins; no match means Other.
func Categorize(name string) recipe.Category {
	lower := strings.ToLower(name)
	for _, m := range matchOrder {
		for _, kw := range m.keywords {
			if strings.Contains(lower, kw) {
				return m.category
			}
		}
	}
	return recipe.CategoryOther
}

// GroupIngredients buckets a flat ingredient list by category, preserving
// each item's original index, and returns groups in display order with
// empty categories omitted. Section-header pseudo-entries are skipped;
// their indices stay reserved so callers can still walk the flat list.
func GroupIngredients(lines []string) []recipe.Group {
	buckets := make(map[recipe.Category][]recipe.GroupItem)
	for i, raw := range lines {
		if recipe.IsHeader(raw) || strings.TrimSpace(raw) == "" {
			continue
		}
		parsed := Parse(raw)
		cat := Categorize(parsed.Name)
		buckets[cat] = append(buckets[cat], recipe.GroupItem{
			OriginalIndex: i,
			Raw:           raw,
			Parsed:        parsed,
		})
	}

	groups := make([]recipe.Group, 0, len(buckets))
	for _, cat := range recipe.DisplayOrder {
		if items := buckets[cat]; len(items) > 0 {
			groups = append(groups, recipe.Group{Category: cat, Items: items})
		}
	}
	return groups
}
