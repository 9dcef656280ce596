package htmltomarkdown_test

import (
	"testing"

	"github.com/lisaross/site2context"
	"github.com/lisaross/site2context/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements site2context.Converter at compile time.
var _ site2context.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Title</h1><h2>Subtitle</h2><p>Body text.</p>`

		conv := htmltomarkdown.NewConverter(true, true)
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "## Subtitle")
		assert.Contains(t, md, "Body text.")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>First</li><li>Second</li></ul><ol><li>One</li><li>Two</li></ol>`

		conv := htmltomarkdown.NewConverter(true, true)
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- First")
		assert.Contains(t, md, "- Second")
		assert.Contains(t, md, "1. One")
		assert.Contains(t, md, "2. Two")
	})

	t.Run("converts emphasis", func(t *testing.T) {
		t.Parallel()

		html := `<p><strong>bold</strong> and <em>italic</em></p>`

		conv := htmltomarkdown.NewConverter(true, true)
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "**bold**")
		assert.Contains(t, md, "*italic*")
	})

	t.Run("preserves links when enabled", func(t *testing.T) {
		t.Parallel()

		html := `<p>Visit <a href="https://example.com">Example</a> now.</p>`

		conv := htmltomarkdown.NewConverter(true, true)
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[Example](https://example.com)")
	})

	t.Run("strips links when disabled", func(t *testing.T) {
		t.Parallel()

		html := `<p>Visit <a href="https://example.com">Example</a> now.</p>`

		conv := htmltomarkdown.NewConverter(false, true)
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.NotContains(t, md, "https://example.com")
		assert.NotContains(t, md, "[Example](")
		assert.Contains(t, md, "Example")
	})

	t.Run("strips images when disabled", func(t *testing.T) {
		t.Parallel()

		html := `<p>Look:</p><img src="https://example.com/pic.png" alt="pic">`

		conv := htmltomarkdown.NewConverter(true, false)
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.NotContains(t, md, "https://example.com/pic.png")
	})

	t.Run("keeps images when enabled", func(t *testing.T) {
		t.Parallel()

		html := `<img src="https://example.com/pic.png" alt="pic">`

		conv := htmltomarkdown.NewConverter(true, true)
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "https://example.com/pic.png")
	})

	t.Run("is deterministic for identical input and flags", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Title</h1><p>Some <a href="/x">link</a> and <strong>bold</strong>.</p><ul><li>a</li><li>b</li></ul>`

		conv := htmltomarkdown.NewConverter(true, true)
		first, err := conv.Convert(html)
		require.NoError(t, err)
		second, err := conv.Convert(html)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("unwraps container divs", func(t *testing.T) {
		t.Parallel()

		html := `<div class="main-content"><h1>Title</h1><p>Body</p></div>`

		conv := htmltomarkdown.NewConverter(true, true)
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Title\n\nBody")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter(true, true)
		_, err := conv.Convert("  ")

		require.Error(t, err)
		assert.Equal(t, site2context.EINVALID, site2context.ErrorCode(err))
	})
}
