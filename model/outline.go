package model

// HeadingLevel represents the hierarchical level of a heading (H1-H3)
type HeadingLevel int

const (
	HeadingLevelUnknown HeadingLevel = iota
	HeadingLevel1                    // H1 - Main section
	HeadingLevel2                    // H2 - Subsection
	HeadingLevel3                    // H3 - Sub-subsection
)

// String returns a string representation of the heading level
func (l HeadingLevel) String() string {
	switch l {
	case HeadingLevel1:
		return "H1"
	case HeadingLevel2:
		return "H2"
	case HeadingLevel3:
		return "H3"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so levels serialize as
// "H1".."H3" in JSON output.
func (l HeadingLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Depth returns the numeric depth of the level (1 for H1, 3 for H3).
// Deeper levels compare numerically greater.
func (l HeadingLevel) Depth() int {
	return int(l)
}

// Heading is one entry of a document outline. Page is 1-based; the
// pipeline converts from its internal 0-based indexing at the point of
// emission.
type Heading struct {
	// Level is the heading level (H1-H3)
	Level HeadingLevel `json:"level"`

	// Text is the normalized heading text
	Text string `json:"text"`

	// Page is the 1-based page number where the heading appears
	Page int `json:"page"`
}

// DocumentOutline is the per-document result: a best-guess title plus
// the ranked heading list.
type DocumentOutline struct {
	// Title is the normalized document title, "Unknown Title" when no
	// candidate was found
	Title string `json:"title"`

	// Outline is the validated, leveled, deduplicated heading list in
	// page/position order
	Outline []Heading `json:"outline"`
}

// ErrorTitle is the title of the sentinel result for documents that
// could not be processed.
const ErrorTitle = "Error"

// ErrorOutline returns the defined sentinel result for an unrecoverable
// per-document failure. The outline is empty but non-nil so it
// serializes as [] rather than null.
func ErrorOutline() DocumentOutline {
	return DocumentOutline{Title: ErrorTitle, Outline: []Heading{}}
}

// OutlineItem is one entry of a document's structural metadata
// (bookmarks / embedded table of contents), when the backend exposes it.
type OutlineItem struct {
	// Level is the nesting depth, 1-based
	Level int

	// Label is the entry's display text
	Label string

	// Page is the 1-based destination page, or -1 when the backend
	// cannot resolve it
	Page int
}
