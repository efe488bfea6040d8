package layout

import (
	"unicode/utf8"

	"github.com/tsawler/outliner/model"
)

// Scoring weights and ratios. Each signal contributes independently;
// the sum is capped at 1.0.
const (
	// sizeLargeRatio and sizeMediumRatio are the baseline multiples
	// separating the two size signal tiers
	sizeLargeRatio  = 1.3
	sizeMediumRatio = 1.1

	// weightSizeLarge rewards lines well above body size
	weightSizeLarge = 0.3

	// weightSizeMedium rewards lines moderately above body size
	weightSizeMedium = 0.2

	// weightBold rewards bold lines
	weightBold = 0.2

	// weightPattern rewards lines matching a heading shape
	weightPattern = 0.3

	// weightLength rewards lines of heading-typical length
	weightLength = 0.1

	// goodLengthMin and goodLengthMax bound the heading-typical length
	goodLengthMin = 5
	goodLengthMax = 100

	// maxConfidence is the score cap
	maxConfidence = 1.0
)

// Score computes the heading confidence of a line against the document
// baseline: a pure, weighted additive combination of the size, bold,
// pattern and length signals, capped at 1.0.
func Score(line model.Line, baseline float64) float64 {
	confidence := sizeSignal(line.Size, baseline)

	if line.Bold() {
		confidence += weightBold
	}
	if matchesHeadingPattern(line.Text) {
		confidence += weightPattern
	}
	if goodHeadingLength(line.Text) {
		confidence += weightLength
	}

	if confidence > maxConfidence {
		confidence = maxConfidence
	}
	return confidence
}

// sizeSignal returns the size contribution: the large tier for sizes
// clearly above body text, the medium tier for sizes slightly above,
// zero otherwise.
func sizeSignal(size, baseline float64) float64 {
	switch {
	case size > baseline*sizeLargeRatio:
		return weightSizeLarge
	case size > baseline*sizeMediumRatio:
		return weightSizeMedium
	default:
		return 0
	}
}

// goodHeadingLength reports whether the trimmed line length falls in
// the typical heading range.
func goodHeadingLength(line string) bool {
	n := utf8.RuneCountInString(line)
	return n >= goodLengthMin && n <= goodLengthMax
}
