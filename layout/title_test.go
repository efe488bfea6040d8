package layout

import (
	"testing"

	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/source"
)

func TestDetectTitleFromMetadata(t *testing.T) {
	src := source.NewMemory(textPage()).SetOutlineMetadata([]model.OutlineItem{
		{Level: 1, Label: "  Deep   Learning Handbook ", Page: -1},
		{Level: 2, Label: "Preface", Page: -1},
	})

	title, err := NewDetector().DetectTitle(src, 12)
	if err != nil {
		t.Fatalf("DetectTitle error: %v", err)
	}
	if title != "Deep Learning Handbook" {
		t.Errorf("title = %q, want normalized first bookmark label", title)
	}
}

func TestDetectTitleRejectsBadMetadata(t *testing.T) {
	tests := []struct {
		name  string
		label string
	}{
		{"table of contents label", "Table of Contents"},
		{"contents label", "Contents"},
		{"toc label", "TOC of the document"},
		{"too short", "API"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := source.NewMemory(textPage(
				boldLine("Fallback Cover Headline", 24, 40),
			)).SetOutlineMetadata([]model.OutlineItem{{Level: 1, Label: tt.label, Page: -1}})

			title, err := NewDetector().DetectTitle(src, 12)
			if err != nil {
				t.Fatalf("DetectTitle error: %v", err)
			}
			if title != "Fallback Cover Headline" {
				t.Errorf("title = %q, want fallback to the page-one scan", title)
			}
		})
	}
}

func TestDetectTitleComposesTopTwoCandidates(t *testing.T) {
	src := source.NewMemory(textPage(
		textLine("This paragraph sits above the title for some reason.", 12, 20),
		textLine("Compiler Construction", 24, 60),
		textLine("Principles and Practice", 18, 90),
		textLine("A Third Large Line", 16, 120),
	))

	title, err := NewDetector().DetectTitle(src, 12)
	if err != nil {
		t.Fatalf("DetectTitle error: %v", err)
	}
	if title != "Compiler Construction Principles and Practice" {
		t.Errorf("title = %q, want the two largest lines joined", title)
	}
}

func TestDetectTitleTieBrokenByPosition(t *testing.T) {
	src := source.NewMemory(textPage(
		textLine("Second Line Here", 20, 150),
		textLine("First Line Here", 20, 30),
	))

	title, err := NewDetector().DetectTitle(src, 12)
	if err != nil {
		t.Fatalf("DetectTitle error: %v", err)
	}
	if title != "First Line Here Second Line Here" {
		t.Errorf("title = %q; among equal sizes the topmost line must lead", title)
	}
}

func TestIsPotentialTitle(t *testing.T) {
	d := NewDetector()
	tests := []struct {
		name     string
		line     model.Line
		expected bool
	}{
		{"large line", textLine("Systems Design Primer", 20, 40), true},
		{"bold small line", boldLine("Systems Design Primer", 12, 40), true},
		{"plain body line", textLine("Systems Design Primer", 12, 40), false},
		{"too short", textLine("Got", 24, 40), false},
		{"copyright line", boldLine("Copyright 2024 Acme Corp", 24, 40), false},
		{"draft watermark", textLine("DRAFT - internal only", 24, 40), false},
		{"version line", boldLine("Version 2.1 of this guide", 24, 40), false},
		{"page number line", boldLine("Title Page 3 of 12", 24, 40), false},
		{"skip word embedded", boldLine("Homepage Design Guide", 24, 40), false},
		{"numbered heading", boldLine("1. Introduction", 24, 40), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.isPotentialTitle(tt.line, 12); got != tt.expected {
				t.Errorf("isPotentialTitle(%q) = %v, want %v", tt.line.Text, got, tt.expected)
			}
		})
	}
}

func TestDetectTitleUnknown(t *testing.T) {
	tests := []struct {
		name string
		src  *source.Memory
	}{
		{"no pages", source.NewMemory()},
		{"no candidates", source.NewMemory(textPage(
			textLine("just some ordinary body text on the first page.", 12, 40),
		))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, err := NewDetector().DetectTitle(tt.src, 12)
			if err != nil {
				t.Fatalf("DetectTitle error: %v", err)
			}
			if title != UnknownTitle {
				t.Errorf("title = %q, want %q", title, UnknownTitle)
			}
		})
	}
}
