package mock

import "github.com/lisaross/site2context"

var _ site2context.Converter = (*Converter)(nil)

// Converter is a mock implementation of site2context.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
