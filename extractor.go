package site2context

// ExtractResult holds the selected content of one HTML page.
type ExtractResult struct {
	// Title is the page title. Comes from the configured frontmatter map,
	// the first heading of the selected content, or the <title> element,
	// in that order.
	Title string

	// Fields holds metadata extracted per the configured frontmatter
	// field map. Fields whose selector matched nothing are absent.
	Fields map[string]string

	// ContentHTML is the selected main content with excluded subtrees
	// removed, rendered back to HTML.
	ContentHTML string

	// UsedBodyFallback is true when no content selector matched and the
	// whole <body> was selected instead.
	UsedBodyFallback bool
}

// Extractor isolates the main content of an HTML page using configured
// CSS selectors.
type Extractor interface {
	// Extract processes raw HTML and returns the selected content.
	// A page with no matching content selector is not an error; the body
	// is used and the result is flagged as a low-confidence extraction.
	Extract(html string) (*ExtractResult, error)
}
