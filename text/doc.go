// Package text provides text cleanup for outline output.
//
// Extracted text arrives with layout artifacts: runs of whitespace from
// positioned fragments, stray control characters, and occasionally byte
// sequences that are not valid UTF-8. [Normalize] repairs all three, and
// is applied to the title and to every retained heading before output.
//
// [Fold] builds the canonical lowercased form used for the pipeline's
// case-insensitive comparisons.
package text
