package fs

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/lisaross/site2context"
	"gopkg.in/yaml.v3"
)

// Ensure Writer implements site2context.ResultWriter at compile time.
var _ site2context.ResultWriter = (*Writer)(nil)

// Writer writes page results as markdown files under a base directory,
// mirroring the input tree.
type Writer struct {
	baseDir string

	// written maps output paths to the source that produced them, so a
	// second source mapping to the same output (a.htm vs a.html) fails
	// instead of silently overwriting the first.
	written map[string]string

	// Now is the clock used for the conversion date in frontmatter.
	// Overridable in tests.
	Now func() time.Time
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, written: make(map[string]string), Now: time.Now}
}

// WriteResult writes a successful page result to disk, creating parent
// directories as needed.
func (w *Writer) WriteResult(ctx context.Context, result *site2context.PageResult) error {
	if result.Err != nil {
		return site2context.Errorf(site2context.EINVALID, "refusing to write failed page %q", result.SourcePath)
	}
	if result.OutputPath == "" {
		return site2context.Errorf(site2context.EINVALID, "page output path required")
	}
	if prev, ok := w.written[result.OutputPath]; ok {
		return site2context.Errorf(site2context.EINVALID, "output path %q already written from %q", result.OutputPath, prev)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, result.OutputPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content := FormatResult(result, w.Now())
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return err
	}
	w.written[result.OutputPath] = result.SourcePath
	return nil
}

// FormatResult formats a page result with YAML frontmatter. Extracted
// fields are emitted in sorted order so output is deterministic.
func FormatResult(result *site2context.PageResult, now time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: ")
	b.WriteString(yamlValue(result.Title))
	b.WriteString("\nsource: ")
	b.WriteString(yamlValue(filepath.ToSlash(result.SourcePath)))

	names := make([]string, 0, len(result.Fields))
	for name := range result.Fields {
		if name == "title" || name == "source" || name == "converted" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString("\n")
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(yamlValue(result.Fields[name]))
	}

	b.WriteString("\nconverted: ")
	b.WriteString(now.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(result.Markdown)
	if !strings.HasSuffix(result.Markdown, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}

// yamlValue renders a string as a YAML scalar, quoting it when it contains
// characters that would otherwise break the frontmatter (": ", "#", ...).
func yamlValue(s string) string {
	out, err := yaml.Marshal(s)
	if err != nil {
		return s
	}
	return strings.TrimSuffix(string(out), "\n")
}
