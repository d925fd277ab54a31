package grapheme

import (
	"testing"
	"unicode/utf16"
)

func units(s string) []uint16 { return utf16.Encode([]rune(s)) }

func TestWords_CoverLine(t *testing.T) {
	line := units("héllo, 😀 wörld")
	segs := Words(line)
	if len(segs) == 0 {
		t.Fatalf("expected segments")
	}
	next := 0
	for i, s := range segs {
		if s.Start != next || s.End <= s.Start {
			t.Fatalf("segment %d=%+v breaks coverage at %d", i, s, next)
		}
		next = s.End
	}
	if next != len(line) {
		t.Fatalf("segments end at %d, want %d", next, len(line))
	}
	if Words(nil) != nil {
		t.Fatalf("expected no segments for an empty line")
	}
}

func TestWordBoundaries(t *testing.T) {
	line := units("hello  world")
	cases := []struct {
		name string
		fn   func([]uint16, int) int
		col  int
		want int
	}{
		{name: "prev from eol", fn: PrevWordBoundary, col: 12, want: 7},
		{name: "prev skips spaces", fn: PrevWordBoundary, col: 7, want: 0},
		{name: "prev mid word", fn: PrevWordBoundary, col: 9, want: 7},
		{name: "prev at sol", fn: PrevWordBoundary, col: 0, want: 0},
		{name: "next from sol", fn: NextWordBoundary, col: 0, want: 5},
		{name: "next skips spaces", fn: NextWordBoundary, col: 5, want: 12},
		{name: "next mid word", fn: NextWordBoundary, col: 2, want: 5},
		{name: "next at eol", fn: NextWordBoundary, col: 12, want: 12},
		{name: "clamps", fn: NextWordBoundary, col: 99, want: 12},
	}
	for _, tc := range cases {
		if got := tc.fn(line, tc.col); got != tc.want {
			t.Fatalf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestNextWordBoundary_SurrogatePairs(t *testing.T) {
	line := units("x 😀 y")
	if got := NextWordBoundary(line, 1); got != 4 {
		t.Fatalf("next=%d, want 4", got)
	}
	if got := PrevWordBoundary(line, 4); got != 2 {
		t.Fatalf("prev=%d, want 2", got)
	}
}

func TestCellWidth(t *testing.T) {
	cases := []struct {
		text string
		col  int
		want int
	}{
		{text: "abc", col: 2, want: 2},
		{text: "a\tb", col: 3, want: 5},
		{text: "日本", col: 2, want: 4},
		{text: "😀x", col: 2, want: 2},
		{text: "e\u0301", col: 2, want: 1},
		{text: "abc", col: 0, want: 0},
	}
	for _, tc := range cases {
		if got := CellWidth(units(tc.text), tc.col, 4); got != tc.want {
			t.Fatalf("CellWidth(%q,%d)=%d, want %d", tc.text, tc.col, got, tc.want)
		}
	}
}

func TestIsSpace(t *testing.T) {
	if !IsSpace("\t ") {
		t.Fatalf("tab+space should be space")
	}
	if IsSpace("a") || IsSpace("") {
		t.Fatalf("letters and empty strings are not space")
	}
}

func TestCells(t *testing.T) {
	line := units("a\t😀e\u0301")
	cells := Cells(line, 4)

	want := []Cell{
		{Col: 0, Units: 1, Width: 1, Text: "a"},
		{Col: 1, Units: 1, Width: 3, Text: "   "},
		{Col: 2, Units: 2, Width: 2, Text: "😀"},
		{Col: 4, Units: 2, Width: 1, Text: "e\u0301"},
	}
	if len(cells) != len(want) {
		t.Fatalf("len=%d, want %d: %+v", len(cells), len(want), cells)
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Fatalf("cells[%d]=%+v, want %+v", i, cells[i], want[i])
		}
	}
	if got := CellWidth(line, len(line), 4); got != 7 {
		t.Fatalf("CellWidth=%d, want 7", got)
	}
	if Cells(nil, 4) != nil {
		t.Fatalf("Cells(nil) should be nil")
	}
}
