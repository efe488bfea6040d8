package source

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/outliner/model"
)

// defaultPageHeight is used when a page carries no usable MediaBox
// (US Letter in points).
const defaultPageHeight = 792

// PDF is a Source backed by a PDF file, read through
// github.com/ledongthuc/pdf. The extractor reports text grouped by
// visual row with per-cell font name, size and position, which maps
// directly onto spans and lines. It does not surface embedded images,
// so all blocks are text blocks.
type PDF struct {
	file   *os.File
	reader *pdf.Reader
}

// OpenPDF opens a PDF file. The returned source must be closed when done.
func OpenPDF(filename string) (*PDF, error) {
	f, r, err := pdf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	return &PDF{file: f, reader: r}, nil
}

// Close releases the underlying file handle. It is safe to call Close
// multiple times.
func (p *PDF) Close() error {
	if p.file == nil {
		return nil
	}
	err := p.file.Close()
	p.file = nil
	return err
}

// PageCount returns the number of pages
func (p *PDF) PageCount() int {
	return p.reader.NumPage()
}

// PageBlocks returns the page's text as a single block of lines, one
// line per visual row. Pages that fail to extract degrade to an empty
// block list rather than failing the document.
func (p *PDF) PageBlocks(pageIndex int) ([]model.Block, error) {
	if pageIndex < 0 || pageIndex >= p.reader.NumPage() {
		return nil, fmt.Errorf("page index %d out of range [0,%d)", pageIndex, p.reader.NumPage())
	}

	page := p.reader.Page(pageIndex + 1)
	if page.V.IsNull() {
		return nil, nil
	}

	rows, err := page.GetTextByRow()
	if err != nil {
		// Skip pages that fail to extract
		return nil, nil
	}

	height := mediaBoxHeight(page)

	var lines []model.Line
	for _, row := range rows {
		spans := rowSpans(row, height)
		if line, ok := model.MergeSpans(spans); ok {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, nil
	}
	return []model.Block{model.TextBlock(lines...)}, nil
}

// OutlineMetadata maps the PDF bookmark tree to a flat item list in
// depth-first order. Destination pages are not resolved by the reader,
// so Page is always -1.
func (p *PDF) OutlineMetadata() []model.OutlineItem {
	var items []model.OutlineItem
	var walk func(o pdf.Outline, level int)
	walk = func(o pdf.Outline, level int) {
		title := strings.TrimSpace(o.Title)
		if title != "" {
			items = append(items, model.OutlineItem{Level: level, Label: title, Page: -1})
		}
		for _, child := range o.Child {
			walk(child, level+1)
		}
	}
	for _, top := range p.reader.Outline().Child {
		walk(top, 1)
	}
	return items
}

// rowSpans groups a row's text cells into font-homogeneous spans.
// Cells sharing font name and size merge into one span; the span's box
// runs from the first cell's left edge to the last cell's right edge.
// The row's PDF Y coordinate (origin bottom-left) is flipped to reading
// order against the page height.
func rowSpans(row *pdf.Row, pageHeight float64) []model.Span {
	var spans []model.Span
	var (
		cur     strings.Builder
		font    string
		size    float64
		x0, x1  float64
		started bool
	)

	flush := func() {
		if !started {
			return
		}
		y := pageHeight - float64(row.Position)
		spans = append(spans, model.Span{
			Text:  cur.String(),
			Size:  size,
			Flags: fontFlags(font),
			BBox:  model.NewBBox(x0, y-size, x1, y),
		})
		cur.Reset()
		started = false
	}

	for _, cell := range row.Content {
		if started && (cell.Font != font || cell.FontSize != size) {
			flush()
		}
		if !started {
			font = cell.Font
			size = cell.FontSize
			x0 = cell.X
			started = true
		}
		cur.WriteString(cell.S)
		x1 = cell.X + cell.W
	}
	flush()

	return spans
}

// fontFlags derives style flags from a font name. PDF extraction has no
// style bitmask; bold faces are recognized by name.
func fontFlags(font string) model.StyleFlags {
	lower := strings.ToLower(font)
	for _, marker := range []string{"bold", "black", "heavy", "semibold", "demibold"} {
		if strings.Contains(lower, marker) {
			return model.FlagBold
		}
	}
	return 0
}

// mediaBoxHeight reads the page height from the MediaBox, falling back
// to US Letter when absent.
func mediaBoxHeight(page pdf.Page) float64 {
	box := page.V.Key("MediaBox")
	if box.IsNull() || box.Len() < 4 {
		return defaultPageHeight
	}
	height := box.Index(3).Float64() - box.Index(1).Float64()
	if height <= 0 {
		return defaultPageHeight
	}
	return height
}
