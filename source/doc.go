// Package source defines the page/text extraction contract consumed by
// the outline pipeline, and provides two implementations of it.
//
// The pipeline never parses a document format itself. It sees documents
// through the [Source] interface: a page count plus, per page, an ordered
// list of [model.Block] values holding line-grouped positioned text.
// Backends that can read a document's structural metadata (bookmarks or
// an embedded table of contents) additionally implement
// [OutlineMetadataProvider].
//
// # Implementations
//
//   - [Memory] serves pre-built pages. It backs tests and callers that
//     already hold positioned text from another extractor.
//   - [PDF] reads a PDF file through github.com/ledongthuc/pdf, grouping
//     its per-row text cells into spans and lines.
package source
