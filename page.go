package site2context

import "context"

// PageResult records the outcome of processing one HTML file. Exactly one
// PageResult exists per walked file, whether processing succeeded or not.
type PageResult struct {
	// SourcePath is the HTML file path relative to the input root.
	SourcePath string

	// OutputPath is the mirrored markdown path relative to the output root.
	OutputPath string

	// Title is the extracted page title.
	Title string

	// Fields holds frontmatter metadata extracted per the configured
	// field map.
	Fields map[string]string

	// Markdown is the converted page body.
	Markdown string

	// LowConfidence marks pages where no content selector matched and the
	// whole body was used instead.
	LowConfidence bool

	// Err is non-nil when processing failed. Failed pages produce no
	// output file and are omitted from consolidation.
	Err error
}

// Succeeded reports whether the page was processed without error.
func (r *PageResult) Succeeded() bool {
	return r.Err == nil
}

// WalkEntry identifies one HTML file produced by a Walker.
type WalkEntry struct {
	// Path is the full path to the HTML file.
	Path string

	// RelPath is the path relative to the input root.
	RelPath string

	// OutPath is RelPath with the .html/.htm extension replaced by .md.
	OutPath string
}

// WalkFunc is called once per discovered HTML file, in walk order.
// Returning io/fs.SkipAll stops the walk early without error; any other
// non-nil error aborts the walk.
type WalkFunc func(entry WalkEntry) error

// Walker enumerates HTML files under an input root.
// Implementations hide traversal order, extension matching, and the
// depth bound.
type Walker interface {
	Walk(ctx context.Context, fn WalkFunc) error
}

// ResultWriter persists a successfully converted page.
type ResultWriter interface {
	WriteResult(ctx context.Context, result *PageResult) error
}
