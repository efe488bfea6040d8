package source

import "github.com/tsawler/outliner/model"

// Source is the extraction contract the pipeline consumes. Page indexes
// are 0-based; implementations report content in reading order.
type Source interface {
	// PageCount returns the number of pages in the document
	PageCount() int

	// PageBlocks returns the blocks of the given page, each holding
	// line-grouped text or marking embedded image/table content
	PageBlocks(pageIndex int) ([]model.Block, error)
}

// OutlineMetadataProvider is an optional capability for sources that can
// read the document's structural metadata (bookmarks / embedded table of
// contents). An empty slice is a valid response.
type OutlineMetadataProvider interface {
	OutlineMetadata() []model.OutlineItem
}

// PageLines flattens a page's text blocks into a single ordered line
// sequence. Non-text blocks contribute nothing.
func PageLines(src Source, pageIndex int) ([]model.Line, error) {
	blocks, err := src.PageBlocks(pageIndex)
	if err != nil {
		return nil, err
	}

	var lines []model.Line
	for _, b := range blocks {
		if b.Kind != model.BlockText {
			continue
		}
		lines = append(lines, b.Lines...)
	}
	return lines, nil
}

// Metadata returns the source's outline metadata when it exposes any,
// and nil otherwise.
func Metadata(src Source) []model.OutlineItem {
	if p, ok := src.(OutlineMetadataProvider); ok {
		return p.OutlineMetadata()
	}
	return nil
}
