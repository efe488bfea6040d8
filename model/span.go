package model

import "strings"

// StyleFlags is a bitmask of font style indicators attached to a span.
// The bit layout follows the common extractor convention where bold is
// bit 4.
type StyleFlags int

const (
	// FlagBold marks text rendered in a bold face
	FlagBold StyleFlags = 1 << 4
)

// Bold reports whether the bold bit is set
func (f StyleFlags) Bold() bool {
	return f&FlagBold != 0
}

// Span represents a run of text with uniform font size and style,
// as produced by a page/text extraction backend. Spans are immutable
// once created.
type Span struct {
	// Text is the span's text content
	Text string

	// Size is the font size in points
	Size float64

	// Flags is the style bitmask
	Flags StyleFlags

	// BBox is the span's bounding box
	BBox BBox
}

// Bold reports whether the span is rendered bold
func (s Span) Bold() bool {
	return s.Flags.Bold()
}

// Line represents one or more spans merged by shared visual row.
type Line struct {
	// Text is the joined, trimmed text of the line's spans
	Text string

	// Size is the maximum font size among the line's spans
	Size float64

	// Flags is the OR of all span flags
	Flags StyleFlags

	// BBox is the first non-empty span's bounding box
	BBox BBox

	// Confidence is the heading confidence score in [0,1], filled in
	// by classification. Zero until scored.
	Confidence float64
}

// Bold reports whether any span in the line is bold
func (l Line) Bold() bool {
	return l.Flags.Bold()
}

// MergeSpans merges spans sharing a visual row into a single Line.
// Empty spans are skipped; the merged text is the space-joined span
// texts, the size is the maximum span size, the flags are OR'd, and
// the bounding box is the first non-empty span's. Returns ok=false
// when the merged text is shorter than 2 characters.
func MergeSpans(spans []Span) (Line, bool) {
	var (
		parts []string
		line  Line
		first = true
	)

	for _, s := range spans {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		parts = append(parts, text)
		if s.Size > line.Size {
			line.Size = s.Size
		}
		line.Flags |= s.Flags
		if first {
			line.BBox = s.BBox
			first = false
		}
	}

	line.Text = strings.TrimSpace(strings.Join(parts, " "))
	if len(line.Text) < 2 {
		return Line{}, false
	}
	return line, true
}

// BlockKind identifies the kind of content a page block holds.
type BlockKind int

const (
	// BlockText holds line-grouped text
	BlockText BlockKind = iota

	// BlockImageOrTable holds embedded non-text content (image, table
	// or figure); its lines are empty
	BlockImageOrTable
)

// String returns a string representation of the block kind
func (k BlockKind) String() string {
	switch k {
	case BlockText:
		return "text"
	case BlockImageOrTable:
		return "image_or_table"
	default:
		return "unknown"
	}
}

// Block is a page region: either a group of text lines or an embedded
// image/table placeholder.
type Block struct {
	// Kind identifies the block's content type
	Kind BlockKind

	// Lines are the block's text lines, in reading order. Empty for
	// non-text blocks.
	Lines []Line
}

// TextBlock is a convenience constructor for a text block
func TextBlock(lines ...Line) Block {
	return Block{Kind: BlockText, Lines: lines}
}

// ImageBlock is a convenience constructor for an image/table block
func ImageBlock() Block {
	return Block{Kind: BlockImageOrTable}
}
