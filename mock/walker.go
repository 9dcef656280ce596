package mock

import (
	"context"
	"errors"
	"io/fs"

	"github.com/lisaross/site2context"
)

var _ site2context.Walker = (*Walker)(nil)

// Walker is a mock implementation of site2context.Walker.
type Walker struct {
	WalkFn func(ctx context.Context, fn site2context.WalkFunc) error
}

func (w *Walker) Walk(ctx context.Context, fn site2context.WalkFunc) error {
	return w.WalkFn(ctx, fn)
}

// StaticWalker walks a fixed list of entries, the common case in tests.
func StaticWalker(entries ...site2context.WalkEntry) *Walker {
	return &Walker{
		WalkFn: func(ctx context.Context, fn site2context.WalkFunc) error {
			for _, entry := range entries {
				if err := fn(entry); err != nil {
					if errors.Is(err, fs.SkipAll) {
						return nil
					}
					return err
				}
			}
			return nil
		},
	}
}
