package text

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// stripControls removes the ASCII control characters that survive text
// extraction: 0x00-0x08, 0x0B, 0x0C, 0x0E-0x1F and 0x7F. Tab, newline
// and carriage return are left alone; they are whitespace and handled
// by the collapse step.
var stripControls = runes.Remove(runes.Predicate(func(r rune) bool {
	switch {
	case r >= 0x00 && r <= 0x08:
		return true
	case r == 0x0B || r == 0x0C:
		return true
	case r >= 0x0E && r <= 0x1F:
		return true
	case r == 0x7F:
		return true
	}
	return false
}))

// Normalize cleans a piece of extracted text for output: invalid UTF-8
// sequences are dropped, control characters are stripped, and runs of
// whitespace collapse to a single space with the ends trimmed.
// Normalize is idempotent.
func Normalize(s string) string {
	s = strings.ToValidUTF8(s, "")

	cleaned, _, err := transform.String(stripControls, s)
	if err == nil {
		s = cleaned
	}

	return strings.Join(strings.Fields(s), " ")
}

// Fold returns the canonical form used for case-insensitive text
// comparison throughout the pipeline: normalized, then lowercased.
func Fold(s string) string {
	return strings.ToLower(Normalize(s))
}
