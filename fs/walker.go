// Package fs provides filesystem traversal and markdown persistence.
package fs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lisaross/site2context"
)

// Ensure Walker implements site2context.Walker at compile time.
var _ site2context.Walker = (*Walker)(nil)

// Walker enumerates .html/.htm files under a root directory, depth-first in
// lexical order, bounded by a maximum depth in path components.
type Walker struct {
	root     string
	maxDepth int
}

// NewWalker creates a Walker. maxDepth zero means unbounded; a file at
// root/a/b.html has depth 2.
func NewWalker(root string, maxDepth int) *Walker {
	return &Walker{root: root, maxDepth: maxDepth}
}

// Walk calls fn once per HTML file within the depth bound, in walk order.
// fn may return fs.SkipAll to stop early without error.
func (w *Walker) Walk(ctx context.Context, fn site2context.WalkFunc) error {
	info, err := os.Stat(w.root)
	if os.IsNotExist(err) {
		return site2context.Errorf(site2context.ENOTFOUND, "input directory %q not found", w.root)
	} else if err != nil {
		return err
	}
	if !info.IsDir() {
		return site2context.Errorf(site2context.EINVALID, "input path %q is not a directory", w.root)
	}

	return filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(w.root, path)
		if err != nil {
			return err
		}

		if d.IsDir() {
			// Files inside a directory at the depth bound would exceed it.
			if w.maxDepth > 0 && rel != "." && pathDepth(rel) >= w.maxDepth {
				return fs.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".html" && ext != ".htm" {
			return nil
		}
		if w.maxDepth > 0 && pathDepth(rel) > w.maxDepth {
			return nil
		}

		return fn(site2context.WalkEntry{
			Path:    path,
			RelPath: rel,
			OutPath: strings.TrimSuffix(rel, filepath.Ext(rel)) + ".md",
		})
	})
}

// pathDepth counts the components of a relative path.
func pathDepth(rel string) int {
	return strings.Count(rel, string(filepath.Separator)) + 1
}
