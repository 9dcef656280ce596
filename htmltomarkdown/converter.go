// Package htmltomarkdown converts HTML fragments to Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/lisaross/site2context"
)

// Ensure Converter implements site2context.Converter at compile time.
var _ site2context.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown, applying
// the link/image preservation policy. When preservation is off the
// corresponding href/src attributes are stripped before conversion, so
// anchors collapse to their text and images disappear from the output.
type Converter struct {
	conv           *converter.Converter
	preserveLinks  bool
	preserveImages bool
}

// NewConverter creates a new Converter.
func NewConverter(preserveLinks, preserveImages bool) *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{
		conv:           conv,
		preserveLinks:  preserveLinks,
		preserveImages: preserveImages,
	}
}

// Convert transforms HTML content into Markdown. Output is deterministic
// for identical input and flags.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", site2context.Errorf(site2context.EINVALID, "empty HTML input")
	}

	if !c.preserveLinks || !c.preserveImages {
		stripped, err := c.stripAttributes(html)
		if err != nil {
			return "", err
		}
		html = stripped
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result) + "\n", nil
}

// stripAttributes removes href/src attributes per the preservation flags.
func (c *Converter) stripAttributes(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", site2context.Errorf(site2context.EINVALID, "failed to parse HTML: %v", err)
	}

	if !c.preserveLinks {
		doc.Find("a[href]").RemoveAttr("href")
	}
	if !c.preserveImages {
		doc.Find("img[src]").RemoveAttr("src")
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return html, nil
	}
	return body.Html()
}
