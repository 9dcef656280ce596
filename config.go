package site2context

import "strings"

// Config holds the extraction and conversion settings for one site.
// It is immutable once loaded; CLI flag overrides are applied by the
// loader before validation.
type Config struct {
	// InputDir is the root of the HTML tree to convert.
	InputDir string

	// OutputDir is the root the mirrored markdown tree is written to.
	OutputDir string

	// ContentSelector is a comma-separated list of CSS selectors tried in
	// order; the first selector with a match identifies the main content.
	ContentSelector string

	// ExcludeSelectors identify subtrees removed from the selected content
	// before conversion.
	ExcludeSelectors []string

	// PreserveLinks keeps href attributes through conversion. When false,
	// anchors are reduced to their text.
	PreserveLinks bool

	// PreserveImages keeps img src attributes through conversion.
	PreserveImages bool

	// MaxDepth bounds the walk by path components relative to InputDir.
	// A file at InputDir/a/b.html has depth 2. Zero means unbounded.
	MaxDepth int

	// Frontmatter maps frontmatter field names to CSS selectors; the text
	// of the first match per selector is recorded as page metadata.
	Frontmatter map[string]string

	// ConsolidatedOutput is where the merged document is written.
	ConsolidatedOutput string
}

// Validate returns an error if the configuration cannot be processed.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return Errorf(EINVALID, "input directory required")
	}
	if c.OutputDir == "" {
		return Errorf(EINVALID, "output directory required")
	}
	if strings.TrimSpace(c.ContentSelector) == "" {
		return Errorf(EINVALID, "content selector required")
	}
	if c.MaxDepth < 0 {
		return Errorf(EINVALID, "max depth must not be negative")
	}
	return nil
}

// ContentSelectors splits the comma-separated content selector list,
// trimming whitespace and dropping empty entries.
func (c *Config) ContentSelectors() []string {
	parts := strings.Split(c.ContentSelector, ",")
	selectors := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}
