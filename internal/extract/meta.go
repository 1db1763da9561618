package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"recipeclip/internal/ingredient"
)

var (
	reISODuration = regexp.MustCompile(`(?i)^P(?:(\d+)D)?T?(?:(\d+(?:\.\d+)?)H)?(?:(\d+)M)?(?:(\d+)S)?$`)
	reHours       = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:hours?|hrs?|h\b)`)
	reMinutes     = regexp.MustCompile(`(?i)(\d+)\s*(?:minutes?|mins?|m\b)`)
	reBareNumber  = regexp.MustCompile(`^\d+$`)
)

// NormalizeDuration turns a loosely-typed duration value ("PT90M",
// "1 hour 30 minutes", "45 mins", a bare minute count) into the canonical
// hour/minute ISO form: "PT1H30M", "PT45M", "PT2H". No recoverable hours
// or minutes yields "", never "PT".
func NormalizeDuration(value string) string {
	s := strings.TrimSpace(value)
	if s == "" {
		return ""
	}

	if m := reISODuration.FindStringSubmatch(s); m != nil {
		days, _ := strconv.Atoi(zeroIfEmpty(m[1]))
		hours, _ := strconv.ParseFloat(zeroIfEmpty(m[2]), 64)
		minutes, _ := strconv.Atoi(zeroIfEmpty(m[3]))
		total := days*24*60 + int(hours*60) + minutes
		return formatDuration(total)
	}

	if reBareNumber.MatchString(s) {
		n, _ := strconv.Atoi(s)
		return formatDuration(n)
	}

	total := 0
	if m := reHours.FindStringSubmatch(s); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		total += int(h * 60)
	}
	if m := reMinutes.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		total += n
	}
	return formatDuration(total)
}

// formatDuration renders total minutes as "PT1H30M" style, dropping
// zero components entirely.
func formatDuration(totalMinutes int) string {
	if totalMinutes <= 0 {
		return ""
	}
	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("PT%dH%dM", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("PT%dH", hours)
	default:
		return fmt.Sprintf("PT%dM", minutes)
	}
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

var reServingsLabel = regexp.MustCompile(`(?i)\b(?:servings?|serves|yield)\b`)

// findServings scans the whole document for a servings value: elements
// using a servings/yield class or itemprop first, then short label text
// carrying digits ("Servings: 4").
func findServings(doc *html.Node) string {
	var byClass, byLabel string
	walkNodes(doc, func(n *html.Node) bool {
		if byClass != "" || n.Type != html.ElementNode {
			return byClass == ""
		}
		prop := strings.ToLower(attr(n, "itemprop"))
		if prop == "recipeyield" || classContains(n, "servings") || classContains(n, "recipe-yield") {
			if v := ingredient.ParseServings(firstShortText(n)); v != "" {
				byClass = v
				return false
			}
		}
		if byLabel == "" {
			if t := textContent(n); len(t) < 40 && reServingsLabel.MatchString(t) {
				byLabel = ingredient.ParseServings(t)
			}
		}
		return true
	})
	if byClass != "" {
		return byClass
	}
	return byLabel
}

// firstShortText returns the node's text when reasonably short, also
// checking a content attribute (meta-style markup).
func firstShortText(n *html.Node) string {
	if c := attr(n, "content"); c != "" {
		return c
	}
	if t := textContent(n); len(t) < 60 {
		return t
	}
	return ""
}

var reByPrefix = regexp.MustCompile(`(?i)^by[:\s]+`)

// findAuthor scans for an author attribution: the author meta tag, a
// rel=author link, or an element using an author class convention.
func findAuthor(doc *html.Node) string {
	if m := findFirst(doc, func(n *html.Node) bool {
		return isElement(n, "meta") && strings.EqualFold(attr(n, "name"), "author")
	}); m != nil {
		if v := cleanAuthor(attr(m, "content")); v != "" {
			return v
		}
	}

	node := findFirst(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		if isElement(n, "a") && strings.Contains(attr(n, "rel"), "author") {
			return true
		}
		return classContains(n, "author-name") || classContains(n, "recipe-author") ||
			classContains(n, "post-author")
	})
	if node == nil {
		return ""
	}
	return cleanAuthor(textContent(node))
}

func cleanAuthor(s string) string {
	s = squashSpace(reByPrefix.ReplaceAllString(strings.TrimSpace(s), ""))
	if len(s) == 0 || len(s) > 80 {
		return ""
	}
	return s
}

// findPageTitle recovers a recipe title without structured data: the
// first h1, then a heading-classed element, then the <title> tag with any
// site identity ("Best Brownies - Some Blog") cut off.
func findPageTitle(doc *html.Node) string {
	if h1 := findFirst(doc, func(n *html.Node) bool { return isElement(n, "h1") }); h1 != nil {
		if t := textContent(h1); t != "" && len(t) <= 200 {
			return t
		}
	}

	if hd := findFirst(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		return classContains(n, "recipe-title") || classContains(n, "recipe-name") ||
			classContains(n, "entry-title") || classContains(n, "post-title")
	}); hd != nil {
		if t := textContent(hd); t != "" && len(t) <= 120 {
			return t
		}
	}

	title := findFirst(doc, func(n *html.Node) bool { return isElement(n, "title") })
	if title == nil {
		return ""
	}
	return stripSiteIdentity(textContent(title))
}

// stripSiteIdentity removes a trailing "- Site Name" style suffix from a
// document title.
func stripSiteIdentity(title string) string {
	for _, sep := range []string{" | ", " - ", " – ", " — ", " :: "} {
		if idx := strings.Index(title, sep); idx > 0 {
			title = title[:idx]
			break
		}
	}
	return strings.TrimSpace(title)
}

// imageNoise filters out site furniture when scanning embedded images.
var imageNoise = []string{"logo", "icon", "avatar", "sprite", "badge", "pixel", "banner", "button", "gravatar", "advert"}

// findPageImage picks a plausible recipe photo: the og:image meta tag
// first, then the first embedded image that passes a size and
// src-pattern filter.
func findPageImage(doc *html.Node) string {
	if m := findFirst(doc, func(n *html.Node) bool {
		return isElement(n, "meta") && strings.EqualFold(attr(n, "property"), "og:image")
	}); m != nil {
		if src := strings.TrimSpace(attr(m, "content")); src != "" {
			return src
		}
	}

	img := findFirst(doc, func(n *html.Node) bool {
		if !isElement(n, "img") {
			return false
		}
		src := attr(n, "src")
		if src == "" || strings.HasPrefix(src, "data:") {
			return false
		}
		lower := strings.ToLower(src + " " + attr(n, "class") + " " + attr(n, "alt"))
		for _, noise := range imageNoise {
			if strings.Contains(lower, noise) {
				return false
			}
		}
		return imageBigEnough(n)
	})
	if img == nil {
		return ""
	}
	return attr(img, "src")
}

// imageBigEnough rejects images declaring themselves smaller than a
// plausible recipe photo. Missing dimensions pass.
func imageBigEnough(n *html.Node) bool {
	for _, key := range []string{"width", "height"} {
		v := attr(n, key)
		if v == "" {
			continue
		}
		if px, err := strconv.Atoi(strings.TrimSuffix(v, "px")); err == nil && px < 200 {
			return false
		}
	}
	return true
}

var timeLabels = []struct {
	label string
	field string
}{
	{"prep time", "prep"},
	{"cook time", "cook"},
	{"total time", "total"},
}

// findLabeledTimes scans for "Prep Time: 15 mins" style label-adjacent
// text and returns canonical durations keyed by prep/cook/total.
func findLabeledTimes(doc *html.Node) map[string]string {
	times := make(map[string]string)
	walkNodes(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode || len(times) == len(timeLabels) {
			return len(times) != len(timeLabels)
		}
		t := textContent(n)
		if len(t) == 0 || len(t) > 60 {
			return true
		}
		lower := strings.ToLower(t)
		for _, tl := range timeLabels {
			if times[tl.field] != "" || !strings.HasPrefix(lower, tl.label) {
				continue
			}
			rest := lower[len(tl.label):]
			if containsOtherLabel(rest) {
				// A wrapper holding several labels; descend instead.
				continue
			}
			if d := NormalizeDuration(t[len(tl.label):]); d != "" {
				times[tl.field] = d
			}
		}
		return true
	})
	return times
}

func containsOtherLabel(lower string) bool {
	for _, tl := range timeLabels {
		if strings.Contains(lower, tl.label) {
			return true
		}
	}
	return false
}
