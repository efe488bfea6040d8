package layout

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/source"
)

// proseMinLength is the line length beyond which non-uppercase text
// counts as paragraph prose.
const proseMinLength = 40

// filterByContent keeps only headings that introduce something: child
// headings nearby, or real content (prose, a list, an image/table)
// before the next heading. Retained headings are emitted with 1-based
// page numbers; confidence and position are dropped here.
func (d *Detector) filterByContent(src source.Source, candidates []candidate, ctx Context) ([]model.Heading, error) {
	result := make([]model.Heading, 0, len(candidates))

	for i, c := range candidates {
		var next *candidate
		if i+1 < len(candidates) {
			next = &candidates[i+1]
		}

		keep := hasChildren(candidates, i)
		if !keep {
			var err error
			keep, err = d.hasContentAfter(src, c, next, ctx)
			if err != nil {
				return nil, err
			}
		}
		if !keep {
			continue
		}

		result = append(result, model.Heading{
			Level: c.level,
			Text:  c.text,
			Page:  c.page + 1,
		})
	}

	return result, nil
}

// hasChildren reports whether any later heading within one page of the
// candidate sits at a deeper level. The scan stops at the first heading
// past that window.
func hasChildren(candidates []candidate, i int) bool {
	c := candidates[i]
	for j := i + 1; j < len(candidates); j++ {
		if candidates[j].page > c.page+1 {
			break
		}
		if candidates[j].level.Depth() > c.level.Depth() {
			return true
		}
	}
	return false
}

// hasContentAfter scans the pages between a heading and its successor
// (or one page past the heading when it is the last) for substantive
// material: a prose line, a bullet or numbered list item, or an
// embedded image/table block. Lines repeating the heading itself and
// lines that look like headings don't count.
func (d *Detector) hasContentAfter(src source.Source, c candidate, next *candidate, ctx Context) (bool, error) {
	startPage := c.page
	endPage := c.page + 1
	if next != nil {
		endPage = next.page
	} else if last := ctx.PageCount - 1; endPage > last {
		endPage = last
	}

	folded := strings.ToLower(c.text)

	for page := startPage; page <= endPage; page++ {
		blocks, err := src.PageBlocks(page)
		if err != nil {
			return false, err
		}

		for _, block := range blocks {
			if block.Kind == model.BlockImageOrTable {
				return true, nil
			}

			for _, line := range block.Lines {
				lineText := strings.TrimSpace(line.Text)
				if lineText == "" {
					continue
				}
				if strings.Contains(strings.ToLower(lineText), folded) {
					continue
				}
				if matchesHeadingPattern(lineText) {
					continue
				}

				if isProse(lineText) || bulletRe.MatchString(lineText) || numListRe.MatchString(lineText) {
					return true, nil
				}
			}
		}
	}

	return false, nil
}

// isProse reports whether a line reads as paragraph text: long enough,
// and not fully uppercase.
func isProse(line string) bool {
	return utf8.RuneCountInString(line) > proseMinLength && !isAllUpper(line)
}

// isAllUpper reports whether the line has cased letters and every one
// of them is uppercase.
func isAllUpper(line string) bool {
	hasCased := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}
