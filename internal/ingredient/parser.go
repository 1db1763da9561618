// Package ingredient decomposes raw ingredient lines into quantity, unit,
// name, and preparation note, and classifies parsed ingredients into
// grocery-aisle categories.
package ingredient

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"recipeclip/internal/recipe"
)

// vulgarFractions maps single-glyph fractions to fixed decimal spellings.
// Decimal text (not float formatting) keeps thirds and sixths stable.
var vulgarFractions = map[rune]string{
	'¼': "0.25", '½': "0.5", '¾': "0.75",
	'⅓': "0.333", '⅔': "0.667",
	'⅛': "0.125", '⅜': "0.375", '⅝': "0.625", '⅞': "0.875",
	'⅕': "0.2", '⅖': "0.4", '⅗': "0.6", '⅘': "0.8",
	'⅙': "0.167", '⅚': "0.833",
}

// Quantity grammar, tried in priority order: mixed number, range (first
// number wins), fraction, plain number. The decimal-mixed form exists so
// normalized glyphs ("1½" -> "1 0.5") still parse as mixed numbers.
var (
	reMixed    = regexp.MustCompile(`^(\d+)\s+(\d+)\s*/\s*(\d+)\b`)
	reMixedDec = regexp.MustCompile(`^(\d+)\s+(0?\.\d+)`)
	reRange    = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*[-–—]\s*\d+(?:\.\d+)?\b`)
	reFraction = regexp.MustCompile(`^(\d+)\s*/\s*(\d+)\b`)
	reNumber   = regexp.MustCompile(`^(\d+(?:\.\d+)?)\b`)
)

// Parse decomposes one raw ingredient line. It never fails: lines with no
// recognizable quantity come back with a nil Quantity and the whole line
// (minus any preparation note) as the name.
func Parse(raw string) recipe.ParsedIngredient {
	p := recipe.ParsedIngredient{Original: raw}
	line := strings.TrimSpace(raw)

	// Section headers pass through untouched.
	if recipe.IsHeader(line) {
		p.Name = line
		return p
	}

	line = normalizeFractions(line)

	qty, rest, ok := consumeQuantity(line)
	if ok {
		p.Quantity = &qty
		if unit, after, matched := consumeUnit(rest); matched {
			p.Unit = unit
			rest = after
		}
	} else {
		rest = line
	}

	p.Name, p.PrepNote = splitPrepNote(rest)
	return p
}

// normalizeFractions replaces vulgar fraction glyphs with decimal text,
// inserting a space when the glyph directly follows a digit so "1½"
// parses as the mixed number "1 0.5".
func normalizeFractions(s string) string {
	if !strings.ContainsFunc(s, func(r rune) bool { _, ok := vulgarFractions[r]; return ok }) {
		return s
	}
	var b strings.Builder
	var prev rune
	for _, r := range s {
		if dec, ok := vulgarFractions[r]; ok {
			if prev >= '0' && prev <= '9' {
				b.WriteByte(' ')
			}
			b.WriteString(dec)
		} else {
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}

func consumeQuantity(line string) (float64, string, bool) {
	if m := reMixed.FindStringSubmatch(line); m != nil {
		whole, _ := strconv.ParseFloat(m[1], 64)
		num, _ := strconv.ParseFloat(m[2], 64)
		den, _ := strconv.ParseFloat(m[3], 64)
		if den != 0 {
			return whole + num/den, rest(line, m[0]), true
		}
	}
	if m := reMixedDec.FindStringSubmatch(line); m != nil {
		whole, _ := strconv.ParseFloat(m[1], 64)
		frac, _ := strconv.ParseFloat(m[2], 64)
		return whole + frac, rest(line, m[0]), true
	}
	if m := reRange.FindStringSubmatch(line); m != nil {
		first, _ := strconv.ParseFloat(m[1], 64)
		return first, rest(line, m[0]), true
	}
	if m := reFraction.FindStringSubmatch(line); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		if den != 0 {
			return num / den, rest(line, m[0]), true
		}
	}
	if m := reNumber.FindStringSubmatch(line); m != nil {
		n, _ := strconv.ParseFloat(m[1], 64)
		return n, rest(line, m[0]), true
	}
	return 0, line, false
}

func rest(line, matched string) string {
	return strings.TrimSpace(line[len(matched):])
}

// consumeUnit takes the next token as a unit only when it belongs to the
// known-unit vocabulary. The token is kept as written so rebuilt lines
// keep the source's plural/abbreviation. A following "of" is dropped
// ("2 cups of flour" -> "flour").
func consumeUnit(s string) (string, string, bool) {
	token, after, _ := strings.Cut(s, " ")
	if token == "" || !isUnitToken(token) {
		return "", s, false
	}
	after = strings.TrimSpace(after)
	if lower := strings.ToLower(after); lower == "of" {
		after = ""
	} else if strings.HasPrefix(lower, "of ") {
		after = strings.TrimSpace(after[3:])
	}
	return token, after, true
}

// splitPrepNote separates a preparation note from the name. A trailing
// parenthetical wins ("green onion (, sliced)" -> note "sliced"); a
// parenthetical embedded mid-string, like a can-size annotation, stays in
// the name. Otherwise the line splits at the first comma not nested
// inside parentheses.
func splitPrepNote(s string) (string, string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ""
	}

	if strings.HasSuffix(s, ")") {
		if open := matchingOpen(s); open >= 0 {
			note := strings.TrimSpace(s[open+1 : len(s)-1])
			note = strings.TrimSpace(strings.TrimLeft(note, ",;"))
			if note != "" {
				return strings.TrimSpace(s[:open]), note
			}
		}
	}

	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				name := strings.TrimSpace(s[:i])
				note := strings.TrimSpace(s[i+1:])
				if note != "" {
					return name, note
				}
				return name, ""
			}
		}
	}
	return s, ""
}

// matchingOpen returns the index of the "(" matching a final ")", or -1.
func matchingOpen(s string) int {
	depth := 0
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case ')':
			depth++
		case '(':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// displayFractions are the common fractions a scaled quantity snaps to
// when within 0.05: eighths, quarters, thirds, halves.
var displayFractions = []struct {
	value float64
	text  string
}{
	{0.125, "1/8"},
	{0.25, "1/4"},
	{1.0 / 3.0, "1/3"},
	{0.375, "3/8"},
	{0.5, "1/2"},
	{0.625, "5/8"},
	{2.0 / 3.0, "2/3"},
	{0.75, "3/4"},
	{0.875, "7/8"},
}

// FormatQuantity renders a quantity for display: snapped to a common
// fraction when close enough, a bare whole number when the remainder is
// negligible, otherwise two decimals with trailing zeros stripped.
func FormatQuantity(v float64) string {
	whole := math.Floor(v)
	frac := v - whole

	for _, f := range displayFractions {
		if math.Abs(frac-f.value) < 0.05 {
			if whole > 0 {
				return strconv.FormatFloat(whole, 'f', -1, 64) + " " + f.text
			}
			return f.text
		}
	}
	if frac < 0.01 {
		return strconv.FormatFloat(whole, 'f', -1, 64)
	}
	rounded := math.Round(v*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// Scale multiplies a parsed ingredient's quantity by ratio and rebuilds a
// display line. A ratio of 1 returns the original line untouched.
// Quantity-less ingredients come back unchanged apart from the
// preparation note being re-appended with a comma.
func Scale(p recipe.ParsedIngredient, ratio float64) string {
	if p.Quantity == nil {
		if p.PrepNote != "" {
			return p.Name + ", " + p.PrepNote
		}
		return p.Name
	}
	if ratio == 1 {
		return p.Original
	}

	parts := make([]string, 0, 3)
	parts = append(parts, FormatQuantity(*p.Quantity*ratio))
	if p.Unit != "" {
		parts = append(parts, p.Unit)
	}
	if p.Name != "" {
		parts = append(parts, p.Name)
	}
	line := strings.Join(parts, " ")
	if p.PrepNote != "" {
		line += ", " + p.PrepNote
	}
	return line
}

var reDigits = regexp.MustCompile(`\d+`)

// ParseServings extracts the first run of digits from a servings string
// ("Serves 4 to 6" -> "4"). No digits yields the empty string.
func ParseServings(text string) string {
	return reDigits.FindString(text)
}
