package source

import (
	"testing"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/outliner/model"
)

func makeLine(text string, size float64, y float64) model.Line {
	return model.Line{
		Text: text,
		Size: size,
		BBox: model.NewBBox(72, y, 400, y+size),
	}
}

func TestMemorySource(t *testing.T) {
	src := NewMemory(
		[]model.Block{model.TextBlock(makeLine("Introduction", 18, 100))},
		[]model.Block{
			model.TextBlock(makeLine("Background", 14, 80)),
			model.ImageBlock(),
			model.TextBlock(makeLine("architecture diagram caption", 12, 300)),
		},
	)

	if got := src.PageCount(); got != 2 {
		t.Fatalf("PageCount() = %d, want 2", got)
	}

	blocks, err := src.PageBlocks(1)
	if err != nil {
		t.Fatalf("PageBlocks(1) error: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("PageBlocks(1) returned %d blocks, want 3", len(blocks))
	}
	if blocks[1].Kind != model.BlockImageOrTable {
		t.Errorf("block 1 kind = %v, want image_or_table", blocks[1].Kind)
	}

	if _, err := src.PageBlocks(2); err == nil {
		t.Error("PageBlocks(2) succeeded on a 2-page source")
	}
	if _, err := src.PageBlocks(-1); err == nil {
		t.Error("PageBlocks(-1) succeeded")
	}
}

func TestPageLinesFlattensTextBlocks(t *testing.T) {
	src := NewMemory([]model.Block{
		model.TextBlock(makeLine("Results", 16, 50)),
		model.ImageBlock(),
		model.TextBlock(makeLine("first paragraph of results", 12, 90)),
	})

	lines, err := PageLines(src, 0)
	if err != nil {
		t.Fatalf("PageLines error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("PageLines returned %d lines, want 2 (image block skipped)", len(lines))
	}
	if lines[0].Text != "Results" || lines[1].Text != "first paragraph of results" {
		t.Errorf("lines out of order: %q, %q", lines[0].Text, lines[1].Text)
	}
}

func TestMetadata(t *testing.T) {
	plain := NewMemory(nil)
	if got := Metadata(plain); got != nil {
		t.Errorf("Metadata on empty source = %v, want nil", got)
	}

	items := []model.OutlineItem{{Level: 1, Label: "User Guide", Page: -1}}
	src := NewMemory(nil).SetOutlineMetadata(items)
	got := Metadata(src)
	if len(got) != 1 || got[0].Label != "User Guide" {
		t.Errorf("Metadata = %v, want the attached items", got)
	}
}

func TestRowSpansGroupsByFont(t *testing.T) {
	row := &pdf.Row{
		Position: 700,
		Content: pdf.TextHorizontal{
			{Font: "Helvetica-Bold", FontSize: 16, X: 72, W: 10, S: "1."},
			{Font: "Helvetica-Bold", FontSize: 16, X: 84, W: 90, S: " Introduction"},
			{Font: "Helvetica", FontSize: 12, X: 180, W: 40, S: " (draft)"},
		},
	}

	spans := rowSpans(row, 792)
	if len(spans) != 2 {
		t.Fatalf("rowSpans produced %d spans, want 2", len(spans))
	}

	if spans[0].Text != "1. Introduction" {
		t.Errorf("span 0 text = %q", spans[0].Text)
	}
	if !spans[0].Bold() {
		t.Error("span 0 should be bold (Helvetica-Bold)")
	}
	if spans[0].Size != 16 {
		t.Errorf("span 0 size = %v, want 16", spans[0].Size)
	}
	if spans[0].BBox.X0 != 72 || spans[0].BBox.X1 != 174 {
		t.Errorf("span 0 bbox = %+v", spans[0].BBox)
	}
	// Y flipped to reading order: top of page = 0
	if spans[0].BBox.Y1 != 92 {
		t.Errorf("span 0 bottom = %v, want 92 (792-700)", spans[0].BBox.Y1)
	}

	if spans[1].Bold() {
		t.Error("span 1 should not be bold")
	}
	if spans[1].Size != 12 {
		t.Errorf("span 1 size = %v, want 12", spans[1].Size)
	}
}

func TestFontFlags(t *testing.T) {
	tests := []struct {
		font string
		bold bool
	}{
		{"Helvetica", false},
		{"Helvetica-Bold", true},
		{"ABCDEF+TimesNewRoman,BoldItalic", true},
		{"Arial-Black", true},
		{"OpenSans-SemiBold", true},
		{"Georgia-Italic", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := fontFlags(tt.font).Bold(); got != tt.bold {
			t.Errorf("fontFlags(%q).Bold() = %v, want %v", tt.font, got, tt.bold)
		}
	}
}
