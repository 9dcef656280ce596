package convert

import (
	"fmt"
	"strings"

	"github.com/lisaross/site2context"
)

// Failure records one failed file with its reason.
type Failure struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Report aggregates per-file outcomes of a pipeline run. It is owned by
// the pipeline and updated in walk order only.
type Report struct {
	Processed     int
	Succeeded     int
	Failed        int
	LowConfidence int

	// Bytes is the total size of converted markdown.
	Bytes int

	// Failures lists failed files with reasons, in walk order.
	Failures []Failure
}

// Add folds one page result into the report.
func (r *Report) Add(result *site2context.PageResult) {
	r.Processed++
	if result.Err != nil {
		r.Failed++
		r.Failures = append(r.Failures, Failure{
			Path:   result.SourcePath,
			Reason: result.Err.Error(),
		})
		return
	}
	r.Succeeded++
	r.Bytes += len(result.Markdown)
	if result.LowConfidence {
		r.LowConfidence++
	}
}

// Summary renders a one-line human-readable summary.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Processed %d files: %d converted (%s)", r.Processed, r.Succeeded, FormatBytes(r.Bytes))
	if r.LowConfidence > 0 {
		fmt.Fprintf(&b, ", %d low-confidence", r.LowConfidence)
	}
	fmt.Fprintf(&b, ", %d failed", r.Failed)
	return b.String()
}
