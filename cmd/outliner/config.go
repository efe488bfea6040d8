package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/outliner/layout"
)

// config holds the batch run settings. Flags override values from the
// YAML file, and defaults() fills whatever is left.
type config struct {
	// Input is the directory scanned for *.pdf documents.
	Input string `yaml:"input"`

	// Output is the directory outline JSON files are written to.
	Output string `yaml:"output"`

	// BaselinePages is the number of leading pages sampled when
	// detecting the body-text font size.
	BaselinePages int `yaml:"baseline_pages"`

	// MinConfidence is the heading acceptance score.
	MinConfidence float64 `yaml:"min_confidence"`

	// Compact disables pretty-printed JSON output.
	Compact bool `yaml:"compact"`
}

func (c *config) defaults() {
	def := layout.DefaultConfig()
	if c.Input == "" {
		c.Input = "input"
	}
	if c.Output == "" {
		c.Output = "output"
	}
	if c.BaselinePages <= 0 {
		c.BaselinePages = def.BaselinePages
	}
	if c.MinConfidence <= 0 {
		c.MinConfidence = def.MinConfidence
	}
}

// loadConfig reads a YAML configuration file. An empty path yields the
// defaults.
func loadConfig(path string) (config, error) {
	var c config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return config{}, fmt.Errorf("parsing config: %w", err)
		}
	}
	c.defaults()
	return c, nil
}
