package goquery

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/lisaross/site2context"
)

// defaultContentSelector is used when analysis finds no convincing
// candidate.
const defaultContentSelector = `main[role="main"]`

// boilerplateElements are tags excluded wholesale when they appear
// anywhere in the sampled pages.
var boilerplateElements = map[string]bool{
	"header": true, "footer": true, "nav": true, "aside": true,
	"script": true, "style": true, "noscript": true, "iframe": true,
	"form": true, "button": true, "input": true, "select": true,
}

// boilerplateClassIndicators mark class names that usually wrap chrome
// rather than content.
var boilerplateClassIndicators = []string{
	"navbar", "nav", "menu", "sidebar", "footer", "banner", "breadcrumb",
	"advertisement", "social", "share", "cookie", "popup", "modal",
}

// contentClassIndicators score class names that usually wrap main content.
var contentClassIndicators = map[string]float64{
	"content":   2,
	"main":      2,
	"article":   1.5,
	"container": 1,
}

// Analyzer accumulates structure observations over sampled HTML files and
// proposes a configuration: the best-scoring content selector plus the
// union of boilerplate selectors seen.
type Analyzer struct {
	selectorScores map[string]float64
	excludes       map[string]bool
	samples        int
}

// NewAnalyzer creates an empty Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		selectorScores: make(map[string]float64),
		excludes:       make(map[string]bool),
	}
}

// Samples returns how many pages have been observed.
func (a *Analyzer) Samples() int {
	return a.samples
}

// Observe analyzes one HTML page and folds its findings into the
// accumulated scores.
func (a *Analyzer) Observe(rawHTML string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return site2context.Errorf(site2context.EINVALID, "failed to parse HTML: %v", err)
	}

	a.observeContent(doc)
	a.observeBoilerplate(doc)
	a.samples++
	return nil
}

// observeContent scores candidate content containers. The score combines
// text volume, element-type diversity, and semantic bonuses for main,
// article, role attributes, and content-like class names.
func (a *Analyzer) observeContent(doc *goquery.Document) {
	doc.Find("main, article, section, div").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len(text) < 50 {
			return
		}

		paragraphs := sel.Find("p").Length()
		headings := sel.Find("h1, h2, h3, h4, h5, h6").Length()
		links := sel.Find("a").Length()
		images := sel.Find("img").Length()
		lists := sel.Find("ul, ol").Length()

		diversity := 0.0
		for _, n := range []int{paragraphs, headings, links, images, lists} {
			if n > 0 {
				diversity++
			}
		}
		diversity /= 5

		score := min(float64(len(text))/1000, 5)
		score += diversity * 3

		tag := goquery.NodeName(sel)
		role, _ := sel.Attr("role")
		switch tag {
		case "main":
			score += 3
			if role == "main" {
				score += 2
			}
		case "article":
			score += 2
		case "section":
			score++
		}

		classes := classList(sel)
		classScore := 0.0
		var significant string
		for _, cls := range classes {
			lower := strings.ToLower(cls)
			for indicator, points := range contentClassIndicators {
				if strings.Contains(lower, indicator) {
					classScore += points
					if significant == "" {
						significant = cls
					}
				}
			}
		}
		score += min(classScore, 3)

		selector := tag
		if role != "" {
			selector += `[role="` + role + `"]`
		}
		if significant != "" && validSelector(selector+"."+significant) {
			selector += "." + significant
		}
		if !validSelector(selector) {
			return
		}

		if score > a.selectorScores[selector] {
			a.selectorScores[selector] = score
		}
	})
}

// observeBoilerplate collects element and class selectors worth excluding.
func (a *Analyzer) observeBoilerplate(doc *goquery.Document) {
	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		tag := goquery.NodeName(sel)
		if boilerplateElements[tag] {
			a.excludes[tag] = true
		}
		for _, cls := range classList(sel) {
			lower := strings.ToLower(cls)
			for _, indicator := range boilerplateClassIndicators {
				if strings.Contains(lower, indicator) && validSelector("."+cls) {
					a.excludes["."+cls] = true
					break
				}
			}
		}
	})
}

// Config builds a configuration from the accumulated analysis. Exclude
// selectors are sorted for deterministic output.
func (a *Analyzer) Config(inputDir, outputDir string) *site2context.Config {
	best := defaultContentSelector
	bestScore := 5.0 // candidates below this keep the default
	for selector, score := range a.selectorScores {
		if score > bestScore || (score == bestScore && selector < best) {
			best = selector
			bestScore = score
		}
	}

	excludes := make([]string, 0, len(a.excludes))
	for sel := range a.excludes {
		excludes = append(excludes, sel)
	}
	sort.Strings(excludes)

	return &site2context.Config{
		InputDir:         inputDir,
		OutputDir:        outputDir,
		ContentSelector:  best,
		ExcludeSelectors: excludes,
		PreserveLinks:    true,
		PreserveImages:   true,
		MaxDepth:         3,
	}
}

// validSelector reports whether s parses as a CSS selector. Class names
// seen in the wild (Tailwind's "lg:flex" and similar) do not form valid
// selectors without escaping, and a generated config must stay loadable.
func validSelector(s string) bool {
	_, err := cascadia.ParseGroup(s)
	return err == nil
}

// classList returns the class attribute split into individual names.
func classList(sel *goquery.Selection) []string {
	attr, ok := sel.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(attr)
}
