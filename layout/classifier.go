package layout

import (
	"unicode/utf8"

	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/source"
	"github.com/tsawler/outliner/text"
)

// candidate is a heading before content-presence filtering. It still
// carries the confidence and position stripped from the final output,
// and its page index is 0-based.
type candidate struct {
	level      model.HeadingLevel
	text       string
	page       int
	confidence float64
	bbox       model.BBox
}

// metadataSkipWords are front-matter field labels that masquerade as
// headings on document data sheets. They are only skipped past page
// one; on the first page they may legitimately head a section.
var metadataSkipWords = map[string]bool{
	"overview":   true,
	"version":    true,
	"date":       true,
	"remarks":    true,
	"identifier": true,
	"reference":  true,
}

const (
	candidateMinLength = 3
	candidateMaxLength = 200
)

// classify walks every line of every page and collects heading
// candidates with their confidence and level.
func (d *Detector) classify(src source.Source, ctx Context) ([]candidate, error) {
	var candidates []candidate

	for page := 0; page < ctx.PageCount; page++ {
		lines, err := source.PageLines(src, page)
		if err != nil {
			return nil, err
		}

		var prev *candidate
		for _, line := range lines {
			folded := text.Fold(line.Text)

			if metadataSkipWords[folded] && page != 0 {
				continue
			}
			if folded == ctx.Title {
				continue
			}

			line.Confidence = Score(line, ctx.Baseline)
			if !d.isCandidate(line, ctx.Thresholds) {
				continue
			}

			// Continuation special case: a bare "syllabus" line extends
			// the preceding heading instead of starting a new one.
			if prev != nil && folded == "syllabus" {
				prev.text = text.Normalize(prev.text + " " + line.Text)
				continue
			}

			candidates = append(candidates, candidate{
				level:      assignLevel(line, ctx.Thresholds),
				text:       text.Normalize(line.Text),
				page:       page,
				confidence: line.Confidence,
				bbox:       line.BBox,
			})
			prev = &candidates[len(candidates)-1]
		}
	}

	return candidates, nil
}

// isCandidate applies the acceptance gate: plausible length, prominence
// by size or by shape, and sufficient confidence.
func (d *Detector) isCandidate(line model.Line, th Thresholds) bool {
	n := utf8.RuneCountInString(line.Text)
	if n < candidateMinLength || n > candidateMaxLength {
		return false
	}

	meetsSize := line.Size >= th.H3
	meetsPattern := matchesHeadingPattern(line.Text)

	return (meetsSize || meetsPattern) && line.Confidence > d.config.MinConfidence
}
