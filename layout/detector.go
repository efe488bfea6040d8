package layout

import (
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/source"
	"github.com/tsawler/outliner/text"
)

// Config holds the tunable cutoffs for outline detection. Scoring
// weights are fixed (see score.go); the config covers the sampling
// window and the threshold ratios.
type Config struct {
	// BaselinePages is the number of leading pages sampled for the
	// font baseline (default: 3)
	BaselinePages int

	// FallbackBaseline is the body font size assumed when the sampled
	// pages contain no text (default: 12)
	FallbackBaseline float64

	// TitleSizeRatio is the baseline multiple a page-one line must
	// exceed to qualify as a title candidate when not bold (default: 1.2)
	TitleSizeRatio float64

	// MinConfidence is the score a line must exceed to become a
	// heading candidate (default: 0.4)
	MinConfidence float64

	// H1Ratio, H2Ratio and H3Ratio are the baseline multiples defining
	// the level size thresholds (defaults: 1.4, 1.2, 1.1)
	H1Ratio float64
	H2Ratio float64
	H3Ratio float64
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		BaselinePages:    3,
		FallbackBaseline: 12,
		TitleSizeRatio:   1.2,
		MinConfidence:    0.4,
		H1Ratio:          1.4,
		H2Ratio:          1.2,
		H3Ratio:          1.1,
	}
}

// Thresholds holds the font-size cutoffs for the three heading levels,
// monotonically H1 >= H2 >= H3.
type Thresholds struct {
	H1, H2, H3 float64
}

// Context carries the per-document analysis state shared by the
// pipeline stages. It is built once per document and never mutated.
type Context struct {
	// Baseline is the document's inferred body-text font size
	Baseline float64

	// Thresholds are the level size cutoffs derived from the baseline
	Thresholds Thresholds

	// Title is the detected title in folded (normalized, lowercased)
	// form, used to keep the title out of the heading stream
	Title string

	// PageCount is the document's page count
	PageCount int
}

// Detector infers document outlines. A single Detector may be reused
// across documents; it holds no per-document state.
type Detector struct {
	config Config
}

// NewDetector creates a detector with default configuration
func NewDetector() *Detector {
	return &Detector{config: DefaultConfig()}
}

// NewDetectorWithConfig creates a detector with custom configuration.
// Zero-valued fields are filled from the defaults.
func NewDetectorWithConfig(config Config) *Detector {
	def := DefaultConfig()
	if config.BaselinePages <= 0 {
		config.BaselinePages = def.BaselinePages
	}
	if config.FallbackBaseline <= 0 {
		config.FallbackBaseline = def.FallbackBaseline
	}
	if config.TitleSizeRatio <= 0 {
		config.TitleSizeRatio = def.TitleSizeRatio
	}
	if config.MinConfidence <= 0 {
		config.MinConfidence = def.MinConfidence
	}
	if config.H1Ratio <= 0 {
		config.H1Ratio = def.H1Ratio
	}
	if config.H2Ratio <= 0 {
		config.H2Ratio = def.H2Ratio
	}
	if config.H3Ratio <= 0 {
		config.H3Ratio = def.H3Ratio
	}
	return &Detector{config: config}
}

// SizeThresholds derives the level cutoffs from a baseline font size
func (d *Detector) SizeThresholds(baseline float64) Thresholds {
	return Thresholds{
		H1: baseline * d.config.H1Ratio,
		H2: baseline * d.config.H2Ratio,
		H3: baseline * d.config.H3Ratio,
	}
}

// AnalyzeContext builds the per-document context: baseline, thresholds
// and folded title.
func (d *Detector) AnalyzeContext(src source.Source) (Context, string, error) {
	baseline, err := d.DetectBaseline(src)
	if err != nil {
		return Context{}, "", err
	}

	title, err := d.DetectTitle(src, baseline)
	if err != nil {
		return Context{}, "", err
	}

	return Context{
		Baseline:   baseline,
		Thresholds: d.SizeThresholds(baseline),
		Title:      text.Fold(title),
		PageCount:  src.PageCount(),
	}, title, nil
}

// Outline runs the full pipeline over a document and returns its
// inferred outline. Processing is single-pass and synchronous; no state
// survives the call.
func (d *Detector) Outline(src source.Source) (model.DocumentOutline, error) {
	ctx, title, err := d.AnalyzeContext(src)
	if err != nil {
		return model.DocumentOutline{}, err
	}

	candidates, err := d.classify(src, ctx)
	if err != nil {
		return model.DocumentOutline{}, err
	}
	candidates = dedupeAndSort(candidates)

	outline, err := d.filterByContent(src, candidates, ctx)
	if err != nil {
		return model.DocumentOutline{}, err
	}

	return model.DocumentOutline{Title: title, Outline: outline}, nil
}
