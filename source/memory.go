package source

import (
	"fmt"

	"github.com/tsawler/outliner/model"
)

// Memory is an in-memory Source serving pre-built pages. It is the
// natural bridge for callers that already hold positioned text from
// another extractor, and the fixture type for tests.
type Memory struct {
	pages    [][]model.Block
	metadata []model.OutlineItem
}

// NewMemory creates a Memory source from per-page block lists
func NewMemory(pages ...[]model.Block) *Memory {
	return &Memory{pages: pages}
}

// SetOutlineMetadata attaches structural metadata (bookmarks) to the
// source and returns it for chaining.
func (m *Memory) SetOutlineMetadata(items []model.OutlineItem) *Memory {
	m.metadata = items
	return m
}

// PageCount returns the number of pages
func (m *Memory) PageCount() int {
	return len(m.pages)
}

// PageBlocks returns the blocks of the given page
func (m *Memory) PageBlocks(pageIndex int) ([]model.Block, error) {
	if pageIndex < 0 || pageIndex >= len(m.pages) {
		return nil, fmt.Errorf("page index %d out of range [0,%d)", pageIndex, len(m.pages))
	}
	return m.pages[pageIndex], nil
}

// OutlineMetadata returns the attached metadata, if any
func (m *Memory) OutlineMetadata() []model.OutlineItem {
	return m.metadata
}
