// Package yaml loads and saves site2context configuration files.
package yaml

import (
	"os"
	"path/filepath"

	"github.com/andybalholm/cascadia"
	"github.com/lisaross/site2context"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk representation of a configuration. Preservation
// flags are pointers so that an absent field defaults to true rather than
// the zero value.
type fileConfig struct {
	InputDir           string            `yaml:"input_dir"`
	OutputDir          string            `yaml:"output_dir"`
	ContentSelector    string            `yaml:"content_selector"`
	ExcludeSelectors   []string          `yaml:"exclude_selectors,omitempty"`
	PreserveLinks      *bool             `yaml:"preserve_links,omitempty"`
	PreserveImages     *bool             `yaml:"preserve_images,omitempty"`
	MaxDepth           int               `yaml:"max_depth,omitempty"`
	Frontmatter        map[string]string `yaml:"frontmatter,omitempty"`
	ConsolidatedOutput string            `yaml:"consolidated_output,omitempty"`
}

// LoadConfig reads, defaults, and validates a configuration file.
// Selector syntax errors are reported here so they are fatal before any
// file is processed.
func LoadConfig(path string) (*site2context.Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, site2context.Errorf(site2context.ENOTFOUND, "config file %q not found", path)
	} else if err != nil {
		return nil, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, site2context.Errorf(site2context.EINVALID, "failed to parse config %q: %v", path, err)
	}

	cfg := &site2context.Config{
		InputDir:           fc.InputDir,
		OutputDir:          fc.OutputDir,
		ContentSelector:    fc.ContentSelector,
		ExcludeSelectors:   fc.ExcludeSelectors,
		PreserveLinks:      fc.PreserveLinks == nil || *fc.PreserveLinks,
		PreserveImages:     fc.PreserveImages == nil || *fc.PreserveImages,
		MaxDepth:           fc.MaxDepth,
		Frontmatter:        fc.Frontmatter,
		ConsolidatedOutput: fc.ConsolidatedOutput,
	}
	setDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateSelectors(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig writes a configuration as YAML, creating parent directories.
func SaveConfig(path string, cfg *site2context.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	fc := fileConfig{
		InputDir:           cfg.InputDir,
		OutputDir:          cfg.OutputDir,
		ContentSelector:    cfg.ContentSelector,
		ExcludeSelectors:   cfg.ExcludeSelectors,
		PreserveLinks:      &cfg.PreserveLinks,
		PreserveImages:     &cfg.PreserveImages,
		MaxDepth:           cfg.MaxDepth,
		Frontmatter:        cfg.Frontmatter,
		ConsolidatedOutput: cfg.ConsolidatedOutput,
	}

	data, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// setDefaults fills in values derivable from the required fields.
func setDefaults(cfg *site2context.Config) {
	if cfg.ConsolidatedOutput == "" && cfg.OutputDir != "" {
		cfg.ConsolidatedOutput = filepath.Clean(cfg.OutputDir) + "_consolidated.md"
	}
}

// validateSelectors compiles every configured CSS selector and reports the
// first syntax error.
func validateSelectors(cfg *site2context.Config) error {
	for _, s := range cfg.ContentSelectors() {
		if _, err := cascadia.ParseGroup(s); err != nil {
			return site2context.Errorf(site2context.EINVALID, "invalid content selector %q: %v", s, err)
		}
	}
	for _, s := range cfg.ExcludeSelectors {
		if _, err := cascadia.ParseGroup(s); err != nil {
			return site2context.Errorf(site2context.EINVALID, "invalid exclude selector %q: %v", s, err)
		}
	}
	for field, s := range cfg.Frontmatter {
		if _, err := cascadia.ParseGroup(s); err != nil {
			return site2context.Errorf(site2context.EINVALID, "invalid frontmatter selector %q for field %q: %v", s, field, err)
		}
	}
	return nil
}
