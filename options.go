package outliner

import "github.com/tsawler/outliner/layout"

// Options holds configuration for outline extraction.
type Options struct {
	config layout.Config
}

// defaultOptions returns the default extraction options.
func defaultOptions() Options {
	return Options{config: layout.DefaultConfig()}
}

// clone creates a copy of Options.
func (o Options) clone() Options {
	return Options{config: o.config}
}

// Config returns a new Extractor using the given detection
// configuration. Zero-valued fields fall back to the defaults.
func (e *Extractor) Config(config layout.Config) *Extractor {
	newExt := e.clone()
	newExt.options.config = config
	return newExt
}

// BaselinePages returns a new Extractor that samples the first n pages
// when detecting the body-text font size.
func (e *Extractor) BaselinePages(n int) *Extractor {
	newExt := e.clone()
	newExt.options.config.BaselinePages = n
	return newExt
}

// MinConfidence returns a new Extractor with the given heading
// acceptance score.
func (e *Extractor) MinConfidence(score float64) *Extractor {
	newExt := e.clone()
	newExt.options.config.MinConfidence = score
	return newExt
}
