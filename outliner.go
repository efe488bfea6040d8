// Package outliner infers a document's structural outline, a title
// plus a leveled list of section headings with page numbers, from its
// positioned text, without relying on explicit structural metadata.
//
// Basic usage:
//
//	result, err := outliner.Open("report.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.Title)
//	for _, h := range result.Outline {
//	    fmt.Printf("%s %s (p.%d)\n", h.Level, h.Text, h.Page)
//	}
//
// Text from another extractor can be fed in through a source:
//
//	src := source.NewMemory(pages...)
//	result, err := outliner.FromSource(src).Outline()
//
// With options:
//
//	result, err := outliner.Open("report.pdf").
//	    BaselinePages(5).
//	    MinConfidence(0.5).
//	    Outline()
//
// For finer control the lower-level layout package is also available.
package outliner

import (
	"github.com/tsawler/outliner/source"
)

// Open prepares a PDF file for outline extraction and returns an
// Extractor for fluent configuration. The file is opened lazily by the
// terminal operations, which also close it; Close only needs to be
// called explicitly when no terminal operation runs.
//
// Example:
//
//	result, err := outliner.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource creates an Extractor over an already-built source. The
// caller keeps ownership of the source and is responsible for closing
// it when it needs closing.
//
// Example:
//
//	src, err := source.OpenPDF("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer src.Close()
//	result, err := outliner.FromSource(src).Outline()
func FromSource(src source.Source) *Extractor {
	return &Extractor{
		src:          src,
		sourceOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	result := outliner.Must(outliner.Open("document.pdf").Outline())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
