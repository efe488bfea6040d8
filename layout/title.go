package layout

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/source"
	"github.com/tsawler/outliner/text"
)

// UnknownTitle is returned when no title candidate is found anywhere.
const UnknownTitle = "Unknown Title"

// titleSkipWords disqualify a page-one line from being a title when any
// of them occurs in it.
var titleSkipWords = []string{
	"copyright", "version", "page", "©", "confidential",
	"draft", "revision", "date", "author",
}

// tocPrefixes disqualify a bookmark label from serving as the title.
var tocPrefixes = []string{"table of contents", "contents", "toc"}

const (
	titleMinLength = 4
	titleMaxLength = 150
)

// DetectTitle returns the document's best-guess title. Structural
// metadata is consulted first; failing that, page one is scanned for
// large or bold lines and the top one or two candidates are composed.
// DetectTitle never fails to produce a title: with no candidates it
// returns UnknownTitle.
func (d *Detector) DetectTitle(src source.Source, baseline float64) (string, error) {
	if title, ok := titleFromMetadata(src); ok {
		return title, nil
	}
	return d.titleFromFirstPage(src, baseline)
}

// titleFromMetadata takes the first bookmark label, unless it is a
// table-of-contents entry or too short to be a title.
func titleFromMetadata(src source.Source) (string, bool) {
	items := source.Metadata(src)
	if len(items) == 0 {
		return "", false
	}

	label := text.Normalize(items[0].Label)
	if utf8.RuneCountInString(label) <= 3 {
		return "", false
	}
	folded := strings.ToLower(label)
	for _, prefix := range tocPrefixes {
		if strings.HasPrefix(folded, prefix) {
			return "", false
		}
	}
	return label, true
}

// titleFromFirstPage scans page one for title candidates, orders them
// by descending font size with the topmost winning ties, and joins the
// top two. Two candidates cover titles split across a large line and a
// subtitle line.
func (d *Detector) titleFromFirstPage(src source.Source, baseline float64) (string, error) {
	if src.PageCount() == 0 {
		return UnknownTitle, nil
	}

	lines, err := source.PageLines(src, 0)
	if err != nil {
		return "", err
	}

	var candidates []model.Line
	for _, line := range lines {
		if d.isPotentialTitle(line, baseline) {
			candidates = append(candidates, line)
		}
	}
	if len(candidates) == 0 {
		return UnknownTitle, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Size != candidates[j].Size {
			return candidates[i].Size > candidates[j].Size
		}
		return candidates[i].BBox.Top() < candidates[j].BBox.Top()
	})

	parts := []string{candidates[0].Text}
	if len(candidates) > 1 {
		parts = append(parts, candidates[1].Text)
	}
	return text.Normalize(strings.Join(parts, "  ")), nil
}

// isPotentialTitle gates a page-one line on length, skip words, and
// prominence (size above the title ratio, or bold). Lines carrying a
// numbering prefix are section headings, not titles, however large
// they render.
func (d *Detector) isPotentialTitle(line model.Line, baseline float64) bool {
	normalized := text.Normalize(line.Text)
	n := utf8.RuneCountInString(normalized)
	if n < titleMinLength || n > titleMaxLength {
		return false
	}
	if _, numbered := numberingLevel(normalized); numbered {
		return false
	}

	folded := strings.ToLower(normalized)
	for _, skip := range titleSkipWords {
		if strings.Contains(folded, skip) {
			return false
		}
	}

	return line.Size > baseline*d.config.TitleSizeRatio || line.Bold()
}
