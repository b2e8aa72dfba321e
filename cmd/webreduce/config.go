package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/webreduce"
	"gopkg.in/yaml.v3"
)

// loadConfig returns the default configuration, overlaid with the YAML
// file at path when one is given. Only keys present in the file replace
// their defaults.
func loadConfig(path string) (*webreduce.Config, error) {
	cfg := webreduce.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	var file webreduce.Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	if file.RetainTags != nil {
		cfg.RetainTags = file.RetainTags
	}
	if file.SkipTags != nil {
		cfg.SkipTags = file.SkipTags
	}
	if file.TableTag != "" {
		cfg.TableTag = file.TableTag
	}
	if file.AllowedLinkSchemes != nil {
		cfg.AllowedLinkSchemes = file.AllowedLinkSchemes
	}
	cfg.ExpandSubpages = file.ExpandSubpages

	return cfg, nil
}
