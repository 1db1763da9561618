package ingredient

import "strings"

// knownUnits is the fixed unit vocabulary, including plurals and common
// abbreviations. A token following a quantity is consumed as a unit only
// if it appears here; anything else stays part of the ingredient name.
var knownUnits = map[string]bool{
	"cup": true, "cups": true, "c": true,
	"tablespoon": true, "tablespoons": true, "tbsp": true, "tbs": true, "tbsps": true,
	"teaspoon": true, "teaspoons": true, "tsp": true, "tsps": true,
	"ounce": true, "ounces": true, "oz": true,
	"pound": true, "pounds": true, "lb": true, "lbs": true,
	"gram": true, "grams": true, "g": true,
	"kilogram": true, "kilograms": true, "kg": true,
	"milliliter": true, "milliliters": true, "millilitre": true, "millilitres": true, "ml": true,
	"liter": true, "liters": true, "litre": true, "litres": true, "l": true,
	"quart": true, "quarts": true, "qt": true, "qts": true,
	"pint": true, "pints": true, "pt": true,
	"gallon": true, "gallons": true, "gal": true,
	"pinch": true, "pinches": true,
	"dash": true, "dashes": true,
	"clove": true, "cloves": true,
	"can": true, "cans": true,
	"jar": true, "jars": true,
	"package": true, "packages": true, "pkg": true,
	"slice": true, "slices": true,
	"stick": true, "sticks": true,
	"bunch": true, "bunches": true,
	"head": true, "heads": true,
	"sprig": true, "sprigs": true,
	"stalk": true, "stalks": true,
	"piece": true, "pieces": true,
	"handful": true, "handfuls": true,
}

// isUnitToken reports whether a raw token belongs to the unit vocabulary.
// A trailing period ("tbsp.") is ignored.
func isUnitToken(token string) bool {
	return knownUnits[strings.ToLower(strings.TrimSuffix(token, "."))]
}
