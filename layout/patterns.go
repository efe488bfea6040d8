package layout

import (
	"regexp"
	"strings"

	"github.com/tsawler/outliner/model"
)

// Pattern is a named heading-shape regex. Matching is case-insensitive
// and anchored at the start of the line.
type Pattern struct {
	Name string
	Re   *regexp.Regexp
}

// headingPatterns are the shapes that mark a line as heading-like for
// classification. Order matches match priority for reporting; matching
// stops at the first hit.
var headingPatterns = []Pattern{
	{"numbered", regexp.MustCompile(`(?i)^\d+\.?\s+[A-Z]`)},
	{"sub-numbered", regexp.MustCompile(`(?i)^\d+\.\d+\.?\s+`)},
	{"keyword", regexp.MustCompile(`(?i)^(Chapter|Section|Part)\s+\d+`)},
	{"all-caps", regexp.MustCompile(`(?i)^[A-Z][A-Z\s]{2,}$`)},
	{"title-case", regexp.MustCompile(`(?i)^[A-Z][a-z]+(\s+[A-Z][a-z]*)*$`)},
	{"section-name", regexp.MustCompile(`(?i)^(Abstract|Introduction|Conclusion|References|Bibliography|Acknowledgments?)$`)},
}

// matchesHeadingPattern reports whether the trimmed line matches any
// heading shape.
func matchesHeadingPattern(line string) bool {
	_, ok := matchHeadingPattern(line)
	return ok
}

// matchHeadingPattern returns the name of the first matching heading
// shape.
func matchHeadingPattern(line string) (string, bool) {
	line = strings.TrimSpace(line)
	for _, p := range headingPatterns {
		if p.Re.MatchString(line) {
			return p.Name, true
		}
	}
	return "", false
}

// numberingHint pairs a numbering-prefix regex with the level it
// implies. Level assignment checks these independently of the
// classification shapes above, most specific numbering first, so
// "1.1 Background" resolves to H2 even though the single-numeral
// prefix also matches it.
type numberingHint struct {
	Name  string
	Re    *regexp.Regexp
	Level model.HeadingLevel
}

var numberingHints = []numberingHint{
	{"sub-sub-numbered", regexp.MustCompile(`^\d+\.\d+\.\d+\.?\s+`), model.HeadingLevel3},
	{"sub-numbered", regexp.MustCompile(`^\d+\.\d+\.?\s+`), model.HeadingLevel2},
	{"numbered", regexp.MustCompile(`^\d+\.?\s+`), model.HeadingLevel1},
}

// numberingLevel returns the level implied by the line's numbering
// prefix, if it has one.
func numberingLevel(line string) (model.HeadingLevel, bool) {
	line = strings.TrimSpace(line)
	for _, h := range numberingHints {
		if h.Re.MatchString(line) {
			return h.Level, true
		}
	}
	return model.HeadingLevelUnknown, false
}

// Content-presence scan patterns: a bullet marker or a list number
// followed by text marks a line as list content.
var (
	bulletRe  = regexp.MustCompile(`^\s*[\x{2022}\-\*]\s+\S+`)
	numListRe = regexp.MustCompile(`^\s*\(?\d+[\.\)]\s+\S+`)
)
