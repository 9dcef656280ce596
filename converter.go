package site2context

// Converter converts an HTML fragment to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	// Output is deterministic for identical input.
	Convert(html string) (string, error)
}
