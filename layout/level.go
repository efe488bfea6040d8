package layout

import "github.com/tsawler/outliner/model"

// assignLevel determines the heading level of an accepted candidate.
// A numbering prefix decides outright, most specific first: "2.3.1"
// is H3 whatever its font size. Lines without numbering fall back to
// the size thresholds, bottoming out at H3.
func assignLevel(line model.Line, th Thresholds) model.HeadingLevel {
	if level, ok := numberingLevel(line.Text); ok {
		return level
	}

	switch {
	case line.Size >= th.H1:
		return model.HeadingLevel1
	case line.Size >= th.H2:
		return model.HeadingLevel2
	default:
		return model.HeadingLevel3
	}
}
