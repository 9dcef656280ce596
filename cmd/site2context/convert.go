package main

import (
	"fmt"

	"github.com/lisaross/site2context"
	"github.com/lisaross/site2context/convert"
	s2cfs "github.com/lisaross/site2context/fs"
	"github.com/lisaross/site2context/goquery"
	"github.com/lisaross/site2context/htmltomarkdown"
	s2cslog "github.com/lisaross/site2context/slog"
	"github.com/lisaross/site2context/yaml"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	cfg, err := yaml.LoadConfig(c.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", site2context.ErrorMessage(err))
		return err
	}
	applyOverrides(cfg, c.Input, c.Output, c.MaxDepth)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", site2context.ErrorMessage(err))
		return err
	}

	_, report, err := runConversion(deps, cfg)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", site2context.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, report.Summary())
	if report.Failed > 0 {
		return site2context.Errorf(site2context.EINTERNAL, "%d of %d files failed", report.Failed, report.Processed)
	}
	return nil
}

// applyOverrides applies CLI flag overrides to a loaded config. A negative
// maxDepth means "not set".
func applyOverrides(cfg *site2context.Config, input, output string, maxDepth int) {
	if input != "" {
		cfg.InputDir = input
	}
	if output != "" {
		cfg.OutputDir = output
	}
	if maxDepth >= 0 {
		cfg.MaxDepth = maxDepth
	}
}

// runConversion wires the pipeline from a validated config and runs it,
// returning the per-file results alongside the report.
func runConversion(deps *Dependencies, cfg *site2context.Config) ([]*site2context.PageResult, *convert.Report, error) {
	extractor, err := goquery.NewExtractor(cfg)
	if err != nil {
		return nil, nil, err
	}

	pipeline := &convert.Pipeline{
		Walker:    s2cfs.NewWalker(cfg.InputDir, cfg.MaxDepth),
		Extractor: s2cslog.NewLoggingExtractor(extractor, deps.Logger),
		Converter: htmltomarkdown.NewConverter(cfg.PreserveLinks, cfg.PreserveImages),
		Writer:    s2cfs.NewWriter(cfg.OutputDir),
	}

	progress := func(event convert.ProgressEvent) {
		switch event.Type {
		case convert.ProgressConverted, convert.ProgressFallback:
			fmt.Fprintf(deps.Stdout, "  converted %s\n", event.Path)
		case convert.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %v\n", event.Path, event.Err)
		}
	}

	results, report, err := pipeline.Run(deps.Ctx, progress)
	if err != nil {
		return nil, nil, err
	}
	return results, report, nil
}
