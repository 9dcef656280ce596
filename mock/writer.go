package mock

import (
	"context"

	"github.com/lisaross/site2context"
)

var _ site2context.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of site2context.ResultWriter.
type ResultWriter struct {
	WriteResultFn func(ctx context.Context, result *site2context.PageResult) error
}

func (w *ResultWriter) WriteResult(ctx context.Context, result *site2context.PageResult) error {
	return w.WriteResultFn(ctx, result)
}
