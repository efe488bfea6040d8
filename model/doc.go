// Package model provides the data types shared across the outline
// inference pipeline.
//
// This package defines both the input side (positioned text as produced
// by a page/text extraction backend) and the output side, the inferred
// document outline.
//
// # Input types
//
// Text arrives as [Span] values: runs of text with a uniform font size and
// style, positioned by a [BBox]. Spans sharing a visual row are merged
// into a [Line] via [MergeSpans]. Lines are grouped into [Block] values,
// each tagged with a [BlockKind] so that non-text content (images, tables)
// is visible to the content-presence filter without being decoded.
//
// # Output types
//
// The pipeline produces a [DocumentOutline]: a title plus an ordered list
// of [Heading] entries, each carrying a [HeadingLevel] (H1-H3) and a
// 1-based page number. [ErrorOutline] is the defined sentinel for
// documents that could not be processed at all.
package model
