package main

import (
	"fmt"
	"path/filepath"

	"github.com/lisaross/site2context"
	"github.com/lisaross/site2context/yaml"
)

// Run executes the process command: generate, convert, and consolidate in
// sequence, sharing one generated config. Per-file conversion failures do
// not stop consolidation; they surface through the exit status at the end.
func (c *ProcessCmd) Run(deps *Dependencies) error {
	configPath := c.Config
	if configPath == "" {
		configPath = filepath.Join(c.InputDir, "config.yaml")
	}

	fmt.Fprintln(deps.Stdout, "Generating configuration...")
	cfg, err := generateConfig(deps, c.InputDir, c.Sample)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", site2context.ErrorMessage(err))
		return err
	}
	if c.MaxDepth >= 0 {
		cfg.MaxDepth = c.MaxDepth
	}
	if err := yaml.SaveConfig(configPath, cfg); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", site2context.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Configuration written to %s\n", configPath)

	// Reload so the loader's defaults (consolidated output path) and
	// selector validation apply exactly as they would for convert.
	cfg, err = yaml.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", site2context.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Converting HTML to markdown...")
	results, report, err := runConversion(deps, cfg)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", site2context.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, report.Summary())

	// Consolidate from the in-memory results so failed pages keep their
	// errors and reach the metadata failure list.
	fmt.Fprintln(deps.Stdout, "Consolidating markdown files...")
	if err := runConsolidation(deps, cfg, results); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", site2context.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Processing complete.")
	if report.Failed > 0 {
		return site2context.Errorf(site2context.EINTERNAL, "%d of %d files failed", report.Failed, report.Processed)
	}
	return nil
}
