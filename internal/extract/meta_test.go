package extract

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestNormalizeDuration(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"PT1H30M", "PT1H30M"},
		{"PT90M", "PT1H30M"},
		{"PT45M", "PT45M"},
		{"PT2H", "PT2H"},
		{"pt30m", "PT30M"},
		{"1 hour 30 minutes", "PT1H30M"},
		{"90 minutes", "PT1H30M"},
		{"45 min", "PT45M"},
		{"2 hrs", "PT2H"},
		{"45", "PT45M"},
		{"1.5 hours", "PT1H30M"},
		{"", ""},
		{"overnight", ""},
		{"PT0M", ""},
	}
	for _, c := range cases {
		if got := NormalizeDuration(c.in); got != c.want {
			t.Errorf("NormalizeDuration(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func mustParse(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestFindServings_ClassConvention(t *testing.T) {
	doc := mustParse(t, `<html><body><span class="recipe-servings">Serves 6</span></body></html>`)
	if got := findServings(doc); got != "6" {
		t.Errorf("expected %q, got %q", "6", got)
	}
}

func TestFindServings_LabelText(t *testing.T) {
	doc := mustParse(t, `<html><body><div><span>Servings: 8</span></div></body></html>`)
	if got := findServings(doc); got != "8" {
		t.Errorf("expected %q, got %q", "8", got)
	}
}

func TestFindServings_Absent(t *testing.T) {
	doc := mustParse(t, `<html><body><p>A lovely dinner.</p></body></html>`)
	if got := findServings(doc); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestFindAuthor_MetaTag(t *testing.T) {
	doc := mustParse(t, `<html><head><meta name="author" content="Jordan Smith"></head><body></body></html>`)
	if got := findAuthor(doc); got != "Jordan Smith" {
		t.Errorf("expected %q, got %q", "Jordan Smith", got)
	}
}

func TestFindAuthor_ClassWithByPrefix(t *testing.T) {
	doc := mustParse(t, `<html><body><span class="recipe-author">By Jordan Smith</span></body></html>`)
	if got := findAuthor(doc); got != "Jordan Smith" {
		t.Errorf("expected %q, got %q", "Jordan Smith", got)
	}
}

func TestFindPageTitle_H1Wins(t *testing.T) {
	doc := mustParse(t, `<html><head><title>Best Brownies - Some Blog</title></head>
<body><h1>Fudgy Brownies</h1></body></html>`)
	if got := findPageTitle(doc); got != "Fudgy Brownies" {
		t.Errorf("expected %q, got %q", "Fudgy Brownies", got)
	}
}

func TestFindPageTitle_SiteIdentityStripped(t *testing.T) {
	doc := mustParse(t, `<html><head><title>Best Brownies - Some Blog</title></head><body></body></html>`)
	if got := findPageTitle(doc); got != "Best Brownies" {
		t.Errorf("expected %q, got %q", "Best Brownies", got)
	}
}

func TestFindPageImage_OGImageFirst(t *testing.T) {
	doc := mustParse(t, `<html><head><meta property="og:image" content="https://example.com/hero.jpg"></head>
<body><img src="https://example.com/logo.png"></body></html>`)
	if got := findPageImage(doc); got != "https://example.com/hero.jpg" {
		t.Errorf("expected og:image, got %q", got)
	}
}

func TestFindPageImage_FiltersNoise(t *testing.T) {
	doc := mustParse(t, `<html><body>
<img src="https://example.com/logo.png">
<img src="https://example.com/tiny.jpg" width="50">
<img src="https://example.com/stew.jpg" width="800">
</body></html>`)
	if got := findPageImage(doc); got != "https://example.com/stew.jpg" {
		t.Errorf("expected the large photo, got %q", got)
	}
}

func TestFindLabeledTimes(t *testing.T) {
	doc := mustParse(t, `<html><body>
<div><span>Prep Time: 15 mins</span><span>Cook Time: 1 hour 5 mins</span></div>
</body></html>`)
	times := findLabeledTimes(doc)
	if times["prep"] != "PT15M" {
		t.Errorf("prep: expected PT15M, got %q", times["prep"])
	}
	if times["cook"] != "PT1H5M" {
		t.Errorf("cook: expected PT1H5M, got %q", times["cook"])
	}
}
