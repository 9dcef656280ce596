package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lisaross/site2context"
	"github.com/lisaross/site2context/convert"
	s2cfs "github.com/lisaross/site2context/fs"
	"github.com/lisaross/site2context/yaml"
)

// Run executes the consolidate command.
func (c *ConsolidateCmd) Run(deps *Dependencies) error {
	cfg, err := yaml.LoadConfig(c.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", site2context.ErrorMessage(err))
		return err
	}
	if c.Output != "" {
		cfg.ConsolidatedOutput = c.Output
	}

	if err := runConsolidation(deps, cfg, nil); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", site2context.ErrorMessage(err))
		return err
	}
	return nil
}

// runConsolidation merges page results into the consolidated document and
// writes it with its metadata sidecar. When results is nil the output tree
// is read back from disk, so consolidation works standalone.
func runConsolidation(deps *Dependencies, cfg *site2context.Config, results []*site2context.PageResult) error {
	if results == nil {
		loaded, err := s2cfs.ReadTree(deps.Ctx, cfg.OutputDir)
		if err != nil {
			return err
		}
		results = loaded
	}

	consolidator := convert.NewConsolidator(filepath.Base(filepath.Clean(cfg.InputDir)))
	doc := consolidator.Consolidate(results)

	outPath := cfg.ConsolidatedOutput
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, []byte(doc.Markdown), 0644); err != nil {
		return err
	}

	metaPath := strings.TrimSuffix(outPath, ".md") + ".meta.json"
	meta, err := json.MarshalIndent(doc.Meta, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(metaPath, meta, 0644); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Consolidated %d sections into %s (%s)\n",
		doc.Meta.TotalSections, outPath, convert.FormatBytes(len(doc.Markdown)))
	if len(doc.Meta.Failures) > 0 {
		fmt.Fprintf(deps.Stdout, "  %d failed pages omitted\n", len(doc.Meta.Failures))
	}
	return nil
}
