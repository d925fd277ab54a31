package buffer

// Pos points into the document by (line, col) in code units.
// Line and Col are 0-based.
type Pos struct {
	Line int
	Col  int
}

// Range is a selection in document coordinates: [Start, End).
// Start and End may be given in either order; see NormalizeRange.
type Range struct {
	Start Pos
	End   Pos
}

func ComparePos(a, b Pos) int {
	if a.Line < b.Line {
		return -1
	}
	if a.Line > b.Line {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

// NormalizeRange swaps Start and End when the range is given backwards.
func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func rangeOf(lineStart, colStart, lineEnd, colEnd int) Range {
	return NormalizeRange(Range{
		Start: Pos{Line: lineStart, Col: colStart},
		End:   Pos{Line: lineEnd, Col: colEnd},
	})
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
