package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lisaross/site2context"
	s2cfs "github.com/lisaross/site2context/fs"
	"github.com/lisaross/site2context/goquery"
	"github.com/lisaross/site2context/yaml"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	cfg, err := generateConfig(deps, c.InputDir, c.Sample)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", site2context.ErrorMessage(err))
		return err
	}

	output := c.Output
	if output == "" {
		output = filepath.Join(c.InputDir, "config.yaml")
	}

	if err := yaml.SaveConfig(output, cfg); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", site2context.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Configuration written to %s\n", output)
	fmt.Fprintf(deps.Stdout, "  content selector: %s\n", cfg.ContentSelector)
	fmt.Fprintf(deps.Stdout, "  exclude selectors: %d\n", len(cfg.ExcludeSelectors))
	return nil
}

// generateConfig samples up to sampleLimit HTML files under inputDir and
// derives a configuration from them.
func generateConfig(deps *Dependencies, inputDir string, sampleLimit int) (*site2context.Config, error) {
	analyzer := goquery.NewAnalyzer()
	walker := s2cfs.NewWalker(inputDir, 0)

	err := walker.Walk(deps.Ctx, func(entry site2context.WalkEntry) error {
		if sampleLimit > 0 && analyzer.Samples() >= sampleLimit {
			return fs.SkipAll
		}
		raw, err := os.ReadFile(entry.Path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", entry.RelPath, err)
			return nil
		}
		if err := analyzer.Observe(string(raw)); err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", entry.RelPath, site2context.ErrorMessage(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if analyzer.Samples() == 0 {
		return nil, site2context.Errorf(site2context.EINVALID, "no HTML files found under %q", inputDir)
	}

	outputDir := filepath.Join(inputDir, "markdown_output")
	return analyzer.Config(inputDir, outputDir), nil
}
