package fs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lisaross/site2context"
	"gopkg.in/yaml.v3"
)

// ReadTree loads an existing markdown output tree back into page results,
// in walk order, parsing the frontmatter written by Writer. It lets the
// consolidate command run without re-converting anything.
func ReadTree(ctx context.Context, dir string) ([]*site2context.PageResult, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, site2context.Errorf(site2context.ENOTFOUND, "output directory %q not found; run convert first", dir)
	} else if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, site2context.Errorf(site2context.EINVALID, "output path %q is not a directory", dir)
	}

	var results []*site2context.PageResult
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || strings.ToLower(filepath.Ext(path)) != ".md" {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		result := parseResult(rel, string(data))
		results = append(results, result)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// parseResult splits a markdown file into frontmatter and body. Files
// without frontmatter are kept with their full content as the body.
func parseResult(relPath, content string) *site2context.PageResult {
	result := &site2context.PageResult{
		OutputPath: relPath,
		Markdown:   content,
	}

	rest, ok := strings.CutPrefix(content, "---\n")
	if !ok {
		return result
	}
	front, body, ok := strings.Cut(rest, "\n---\n")
	if !ok {
		return result
	}

	fields := make(map[string]string)
	if err := yaml.Unmarshal([]byte(front), &fields); err != nil {
		return result
	}

	result.Title = fields["title"]
	result.SourcePath = fields["source"]
	delete(fields, "title")
	delete(fields, "source")
	delete(fields, "converted")
	result.Fields = fields
	result.Markdown = strings.TrimLeft(body, "\n")
	return result
}
