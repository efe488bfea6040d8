package layout

import (
	"github.com/tsawler/outliner/source"
)

// DetectBaseline scans the document's leading pages and returns the
// most frequent line font size as the body-text baseline. Documents
// with no text degrade to the configured fallback; the result is
// always positive.
func (d *Detector) DetectBaseline(src source.Source) (float64, error) {
	pages := src.PageCount()
	if pages > d.config.BaselinePages {
		pages = d.config.BaselinePages
	}

	counts := make(map[float64]int)
	for page := 0; page < pages; page++ {
		lines, err := source.PageLines(src, page)
		if err != nil {
			return 0, err
		}
		for _, line := range lines {
			if line.Text == "" || line.Size <= 0 {
				continue
			}
			counts[line.Size]++
		}
	}

	if len(counts) == 0 {
		return d.config.FallbackBaseline, nil
	}

	// Most frequent size wins; ties go to the smaller size, since body
	// text runs smaller than display text.
	var (
		baseline float64
		best     int
	)
	for size, n := range counts {
		if n > best || (n == best && size < baseline) {
			baseline = size
			best = n
		}
	}
	return baseline, nil
}
