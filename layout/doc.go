// Package layout infers a document's structural outline from positioned
// text: a best-guess title plus a leveled, validated heading list.
//
// The [Detector] runs a staged pipeline once per document:
//
//  1. Font baseline: the modal font size over a bounded page prefix
//     becomes the document's body-text size.
//  2. Title detection: structural metadata first, then a scan of page
//     one for large or bold lines.
//  3. Size thresholds: H1/H2/H3 cutoffs as fixed multiples of the
//     baseline.
//  4. Candidate classification: a weighted additive confidence score
//     per line, combining size, boldness, pattern matches and length.
//  5. Level assignment: numbering patterns take precedence over size,
//     most specific numbering first.
//  6. Dedupe and sort: unique (text, page) pairs in page/position order.
//  7. Content-presence filtering: headings that introduce no prose,
//     list, image/table or child headings are dropped.
//
// Shared per-document state (baseline, thresholds, normalized title) is
// carried in an immutable [Context] built once and passed into every
// stage, keeping the stages independently testable.
//
// Usage:
//
//	detector := layout.NewDetector()
//	outline, err := detector.Outline(src)
//
// Scoring weights and size ratios are named constants (see score.go) so
// each signal can be exercised in isolation; detection cutoffs are
// configurable through [Config].
package layout
