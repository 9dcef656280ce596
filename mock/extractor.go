// Package mock provides function-field test doubles for the domain
// interfaces.
package mock

import "github.com/lisaross/site2context"

var _ site2context.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of site2context.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*site2context.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*site2context.ExtractResult, error) {
	return e.ExtractFn(html)
}
