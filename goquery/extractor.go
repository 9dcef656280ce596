// Package goquery implements CSS-selector based content extraction and the
// HTML analysis behind config generation.
package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/lisaross/site2context"
	"golang.org/x/net/html"
)

// Ensure Extractor implements site2context.Extractor at compile time.
var _ site2context.Extractor = (*Extractor)(nil)

// Extractor selects the main content of a page using configured CSS
// selectors. Content selectors are tried in order and the first match wins;
// when none match the whole <body> is used and the result is flagged as a
// low-confidence extraction.
type Extractor struct {
	selectors   []string
	excludes    []string
	frontmatter map[string]string
}

// NewExtractor creates an Extractor from a configuration. All selectors are
// compiled up front so syntax errors surface before any file is processed.
func NewExtractor(cfg *site2context.Config) (*Extractor, error) {
	selectors := cfg.ContentSelectors()
	if len(selectors) == 0 {
		return nil, site2context.Errorf(site2context.EINVALID, "content selector required")
	}
	for _, s := range selectors {
		if _, err := cascadia.ParseGroup(s); err != nil {
			return nil, site2context.Errorf(site2context.EINVALID, "invalid content selector %q: %v", s, err)
		}
	}
	for _, s := range cfg.ExcludeSelectors {
		if _, err := cascadia.ParseGroup(s); err != nil {
			return nil, site2context.Errorf(site2context.EINVALID, "invalid exclude selector %q: %v", s, err)
		}
	}
	for field, s := range cfg.Frontmatter {
		if _, err := cascadia.ParseGroup(s); err != nil {
			return nil, site2context.Errorf(site2context.EINVALID, "invalid frontmatter selector %q for field %q: %v", s, field, err)
		}
	}

	return &Extractor{
		selectors:   selectors,
		excludes:    cfg.ExcludeSelectors,
		frontmatter: cfg.Frontmatter,
	}, nil
}

// Extract processes raw HTML and returns the selected content.
func (e *Extractor) Extract(rawHTML string) (*site2context.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, site2context.Errorf(site2context.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, site2context.Errorf(site2context.EINVALID, "failed to parse HTML: %v", err)
	}

	// Frontmatter fields come from the whole document; titles and dates
	// often live outside the content container.
	fields := make(map[string]string)
	for name, sel := range e.frontmatter {
		if m := doc.Find(sel).First(); m.Length() > 0 {
			if text := strings.TrimSpace(m.Text()); text != "" {
				fields[name] = text
			}
		}
	}

	var content *goquery.Selection
	for _, sel := range e.selectors {
		if m := doc.Find(sel).First(); m.Length() > 0 {
			content = m
			break
		}
	}

	fallback := false
	if content == nil {
		content = doc.Find("body").First()
		fallback = true
	}
	if content.Length() == 0 {
		return nil, site2context.Errorf(site2context.EINVALID, "document has no body")
	}

	// Excluded subtrees are removed before rendering. A selector that
	// matches nothing is not an error.
	for _, sel := range e.excludes {
		content.Find(sel).Remove()
	}

	title := fields["title"]
	if title == "" {
		if h := content.Find("h1").First(); h.Length() > 0 {
			title = strings.TrimSpace(h.Text())
		}
	}
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	contentHTML, err := renderSelection(content)
	if err != nil {
		return nil, err
	}

	return &site2context.ExtractResult{
		Title:            title,
		Fields:           fields,
		ContentHTML:      contentHTML,
		UsedBodyFallback: fallback,
	}, nil
}

// renderSelection renders the outer HTML of the first node in a selection.
func renderSelection(sel *goquery.Selection) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, sel.Nodes[0]); err != nil {
		return "", err
	}
	return buf.String(), nil
}
