package outliner

import (
	"fmt"

	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/source"
)

// Extractor provides a fluent interface for outline extraction. Each
// configuration method returns a new Extractor instance, so chains are
// safe to fork and reuse.
type Extractor struct {
	// Source
	filename string
	src      source.Source

	// Lifecycle
	ownsSource   bool // true if we opened the source and should close it
	sourceOpened bool // true if the source has been opened

	// Configuration
	options Options

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with copied options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		src:          e.src,
		ownsSource:   e.ownsSource,
		sourceOpened: e.sourceOpened,
		options:      e.options.clone(),
		err:          e.err,
	}
}

// ensureSource opens the source if not already open.
func (e *Extractor) ensureSource() error {
	if e.sourceOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	src, err := source.OpenPDF(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	e.src = src
	e.ownsSource = true
	e.sourceOpened = true
	return nil
}

// Close releases resources associated with the Extractor. It is safe
// to call Close multiple times.
func (e *Extractor) Close() error {
	if !e.ownsSource {
		return nil
	}
	if closer, ok := e.src.(interface{ Close() error }); ok {
		err := closer.Close()
		e.src = nil
		e.ownsSource = false
		e.sourceOpened = false
		return err
	}
	return nil
}

// Outline is a terminal operation: it runs the full inference pipeline
// over the document and returns its outline. A source opened by the
// Extractor is closed before returning, on every path.
func (e *Extractor) Outline() (model.DocumentOutline, error) {
	if e.err != nil {
		return model.DocumentOutline{}, e.err
	}
	if err := e.ensureSource(); err != nil {
		return model.DocumentOutline{}, err
	}
	defer e.Close()

	detector := layout.NewDetectorWithConfig(e.options.config)
	result, err := detector.Outline(e.src)
	if err != nil {
		return model.DocumentOutline{}, fmt.Errorf("inferring outline: %w", err)
	}
	return result, nil
}

// Title is a terminal operation: it runs only the baseline and title
// stages and returns the document's best-guess title.
func (e *Extractor) Title() (string, error) {
	if e.err != nil {
		return "", e.err
	}
	if err := e.ensureSource(); err != nil {
		return "", err
	}
	defer e.Close()

	detector := layout.NewDetectorWithConfig(e.options.config)
	baseline, err := detector.DetectBaseline(e.src)
	if err != nil {
		return "", fmt.Errorf("detecting baseline: %w", err)
	}
	title, err := detector.DetectTitle(e.src, baseline)
	if err != nil {
		return "", fmt.Errorf("detecting title: %w", err)
	}
	return title, nil
}
