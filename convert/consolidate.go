package convert

import (
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/lisaross/site2context"
)

// Document is the result of consolidating page results into one markdown
// document with a metadata sidecar.
type Document struct {
	Markdown string
	Meta     Metadata
}

// Metadata describes a consolidated document. It is written next to the
// document as JSON so downstream tooling can inspect what went in.
type Metadata struct {
	Title         string        `json:"title"`
	Source        string        `json:"source"`
	DateProcessed time.Time     `json:"date_processed"`
	DocumentType  string        `json:"document_type"`
	TotalSections int           `json:"total_sections"`
	Sections      []SectionMeta `json:"sections"`
	Failures      []Failure     `json:"failures,omitempty"`
}

// SectionMeta describes one page's section in the consolidated document.
type SectionMeta struct {
	Name        string   `json:"name"`
	Path        string   `json:"path"`
	Size        int      `json:"size"`
	ContentHash string   `json:"content_hash"`
	Headings    []string `json:"headings,omitempty"`
}

// Consolidator merges page results into a single document: a title block
// with document metadata and a content overview, then one section per
// successful page in walk order, each prefixed with a frontmatter-like
// metadata block. Failed pages contribute no section; they are listed in
// the metadata failures instead.
type Consolidator struct {
	// Title heads the consolidated document.
	Title string

	// Source names the site the pages came from.
	Source string

	// Now is the clock recorded in the metadata. Overridable in tests.
	Now func() time.Time
}

// NewConsolidator creates a Consolidator named after the source site.
func NewConsolidator(source string) *Consolidator {
	return &Consolidator{
		Title:  strings.ToUpper(source),
		Source: source,
		Now:    time.Now,
	}
}

// Consolidate builds the document from results in their given order.
func (c *Consolidator) Consolidate(results []*site2context.PageResult) *Document {
	now := time.Now()
	if c.Now != nil {
		now = c.Now()
	}

	meta := Metadata{
		Title:         c.Title,
		Source:        c.Source,
		DateProcessed: now,
		DocumentType:  "Website Content",
	}

	var sections strings.Builder
	for _, result := range results {
		if result.Err != nil {
			meta.Failures = append(meta.Failures, Failure{
				Path:   result.SourcePath,
				Reason: result.Err.Error(),
			})
			continue
		}

		name := sectionName(result)
		body := strings.TrimSpace(result.Markdown)

		sm := SectionMeta{
			Name:        name,
			Path:        filepath.ToSlash(result.OutputPath),
			Size:        len(body),
			ContentHash: ContentHash(body),
		}
		for _, s := range site2context.ExtractSections(result.Markdown) {
			sm.Headings = append(sm.Headings, s.Title)
		}
		meta.Sections = append(meta.Sections, sm)

		sections.WriteString("## ")
		sections.WriteString(name)
		sections.WriteString("\n\n---\ntitle: ")
		sections.WriteString(name)
		sections.WriteString("\nsource: ")
		sections.WriteString(sourcePathOf(result))
		for _, field := range sortedFieldNames(result.Fields) {
			sections.WriteString("\n")
			sections.WriteString(field)
			sections.WriteString(": ")
			sections.WriteString(result.Fields[field])
		}
		sections.WriteString("\n---\n\n")
		sections.WriteString(body)
		sections.WriteString("\n\n---\n\n")
	}
	meta.TotalSections = len(meta.Sections)

	var doc strings.Builder
	doc.WriteString("# ")
	doc.WriteString(c.Title)
	doc.WriteString("\n\n## Document Metadata\n\n")
	doc.WriteString("- **title**: " + meta.Title + "\n")
	doc.WriteString("- **source**: " + meta.Source + "\n")
	doc.WriteString("- **date_processed**: " + now.Format(time.RFC3339) + "\n")
	doc.WriteString("- **document_type**: " + meta.DocumentType + "\n")
	doc.WriteString("- **total_sections**: " + strconv.Itoa(meta.TotalSections) + "\n")
	doc.WriteString("\n## Content Overview\n\n")
	for _, sm := range meta.Sections {
		doc.WriteString("- " + sm.Name + "\n")
	}
	doc.WriteString("\n---\n\n")
	doc.WriteString(sections.String())

	return &Document{
		Markdown: doc.String(),
		Meta:     meta,
	}
}

// sectionName prefers the extracted title, falling back to a readable form
// of the file name (underscores and hyphens become spaces, words are
// capitalized).
func sectionName(result *site2context.PageResult) string {
	if result.Title != "" {
		return result.Title
	}

	base := path.Base(sourcePathOf(result))
	base = strings.TrimSuffix(base, path.Ext(base))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)

	words := strings.Fields(base)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	if len(words) == 0 {
		return "Untitled"
	}
	return strings.Join(words, " ")
}

// sourcePathOf returns the best available source path for display.
func sourcePathOf(result *site2context.PageResult) string {
	if result.SourcePath != "" {
		return filepath.ToSlash(result.SourcePath)
	}
	return filepath.ToSlash(result.OutputPath)
}

func sortedFieldNames(fields map[string]string) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		if name == "title" || name == "source" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
