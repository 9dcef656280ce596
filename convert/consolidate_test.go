package convert_test

import (
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/lisaross/site2context"
	"github.com/lisaross/site2context/convert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedConsolidator() *convert.Consolidator {
	c := convert.NewConsolidator("example.com")
	c.Now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return c
}

func TestConsolidator_Consolidate(t *testing.T) {
	t.Parallel()

	t.Run("one metadata-prefixed section per successful page, in order", func(t *testing.T) {
		t.Parallel()

		results := []*site2context.PageResult{
			{SourcePath: "index.html", OutputPath: "index.md", Title: "Home", Markdown: "# Home\n\nWelcome\n"},
			{SourcePath: "blog/post.html", OutputPath: "blog/post.md", Title: "Post", Markdown: "# Post\n\nBody\n"},
		}

		doc := fixedConsolidator().Consolidate(results)

		assert.Equal(t, 2, doc.Meta.TotalSections)
		assert.Equal(t, 2, strings.Count(doc.Markdown, "\nsource: "))

		homeIdx := strings.Index(doc.Markdown, "## Home")
		postIdx := strings.Index(doc.Markdown, "## Post")
		require.GreaterOrEqual(t, homeIdx, 0)
		require.Greater(t, postIdx, homeIdx)

		assert.Contains(t, doc.Markdown, "---\ntitle: Home\nsource: index.html\n---")
		assert.Contains(t, doc.Markdown, "---\ntitle: Post\nsource: blog/post.html\n---")
		assert.Contains(t, doc.Markdown, "Welcome")
		assert.Contains(t, doc.Markdown, "Body")
	})

	t.Run("failed pages contribute zero sections", func(t *testing.T) {
		t.Parallel()

		results := []*site2context.PageResult{
			{SourcePath: "ok.html", OutputPath: "ok.md", Title: "OK", Markdown: "fine\n"},
			{SourcePath: "broken.html", OutputPath: "broken.md", Err: errors.New("parse error")},
		}

		doc := fixedConsolidator().Consolidate(results)

		assert.Equal(t, 1, doc.Meta.TotalSections)
		assert.NotContains(t, doc.Markdown, "broken.html")
		require.Len(t, doc.Meta.Failures, 1)
		assert.Equal(t, "broken.html", doc.Meta.Failures[0].Path)
		assert.Equal(t, "parse error", doc.Meta.Failures[0].Reason)
	})

	t.Run("title block carries document metadata and overview", func(t *testing.T) {
		t.Parallel()

		results := []*site2context.PageResult{
			{SourcePath: "a.html", OutputPath: "a.md", Title: "Alpha", Markdown: "a\n"},
		}

		doc := fixedConsolidator().Consolidate(results)

		assert.True(t, strings.HasPrefix(doc.Markdown, "# EXAMPLE.COM\n"))
		assert.Contains(t, doc.Markdown, "## Document Metadata")
		assert.Contains(t, doc.Markdown, "- **source**: example.com")
		assert.Contains(t, doc.Markdown, "- **date_processed**: 2024-06-01T12:00:00Z")
		assert.Contains(t, doc.Markdown, "- **total_sections**: 1")
		assert.Contains(t, doc.Markdown, "## Content Overview\n\n- Alpha\n")
	})

	t.Run("derives section names from file names when title missing", func(t *testing.T) {
		t.Parallel()

		results := []*site2context.PageResult{
			{SourcePath: "about-our_team.html", OutputPath: "about-our_team.md", Markdown: "x\n"},
		}

		doc := fixedConsolidator().Consolidate(results)

		assert.Contains(t, doc.Markdown, "## About Our Team")
	})

	t.Run("capitalizes multi-byte initial runes in derived names", func(t *testing.T) {
		t.Parallel()

		results := []*site2context.PageResult{
			{SourcePath: "émigré-stories.html", OutputPath: "émigré-stories.md", Markdown: "x\n"},
		}

		doc := fixedConsolidator().Consolidate(results)

		assert.Contains(t, doc.Markdown, "## Émigré Stories")
		assert.True(t, utf8.ValidString(doc.Markdown))
	})

	t.Run("extra fields appear in section metadata blocks sorted", func(t *testing.T) {
		t.Parallel()

		results := []*site2context.PageResult{
			{
				SourcePath: "p.html",
				OutputPath: "p.md",
				Title:      "P",
				Fields:     map[string]string{"date": "2024-01-02", "author": "Jane"},
				Markdown:   "x\n",
			},
		}

		doc := fixedConsolidator().Consolidate(results)

		assert.Contains(t, doc.Markdown, "---\ntitle: P\nsource: p.html\nauthor: Jane\ndate: 2024-01-02\n---")
	})

	t.Run("metadata records section sizes, hashes, and headings", func(t *testing.T) {
		t.Parallel()

		body := "# Main\n\n## Sub\n\ntext\n"
		results := []*site2context.PageResult{
			{SourcePath: "p.html", OutputPath: "p.md", Title: "P", Markdown: body},
		}

		doc := fixedConsolidator().Consolidate(results)

		require.Len(t, doc.Meta.Sections, 1)
		sm := doc.Meta.Sections[0]
		assert.Equal(t, "P", sm.Name)
		assert.Equal(t, "p.md", sm.Path)
		assert.Equal(t, len(strings.TrimSpace(body)), sm.Size)
		assert.Equal(t, convert.ContentHash(strings.TrimSpace(body)), sm.ContentHash)
		assert.Equal(t, []string{"Main", "Sub"}, sm.Headings)
	})

	t.Run("empty input yields empty overview", func(t *testing.T) {
		t.Parallel()

		doc := fixedConsolidator().Consolidate(nil)

		assert.Equal(t, 0, doc.Meta.TotalSections)
		assert.Contains(t, doc.Markdown, "- **total_sections**: 0")
	})
}

func TestContentHash(t *testing.T) {
	t.Parallel()

	t.Run("is stable", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, convert.ContentHash("abc"), convert.ContentHash("abc"))
	})

	t.Run("differs for different content", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, convert.ContentHash("abc"), convert.ContentHash("abd"))
	})
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bytes int
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{2 * 1024 * 1024, "2.0 MB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, convert.FormatBytes(tt.bytes))
	}
}
