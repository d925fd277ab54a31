// Package grapheme segments UTF-16 lines into words and terminal cells.
//
// Results are expressed in code-unit columns so they line up with cursor
// positions.
package grapheme

import (
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Segment is one word-segmentation unit of a line: [Start, End) in code units.
type Segment struct {
	Start int
	End   int
	Space bool
}

// Words splits line on Unicode word boundaries (UAX #29).
func Words(line []uint16) []Segment {
	if len(line) == 0 {
		return nil
	}
	text := string(utf16.Decode(line))

	var out []Segment
	col := 0
	state := -1
	for len(text) > 0 {
		var word string
		word, text, state = uniseg.FirstWordInString(text, state)
		n := unitLen(word)
		out = append(out, Segment{Start: col, End: col + n, Space: IsSpace(word)})
		col += n
	}
	return out
}

// PrevWordBoundary skips whitespace to the left of col, then the word before it.
func PrevWordBoundary(line []uint16, col int) int {
	col = clamp(col, len(line))
	segs := Words(line)

	k := len(segs) - 1
	for k >= 0 && segs[k].Start >= col {
		k--
	}
	for k >= 0 && segs[k].Space {
		col = segs[k].Start
		k--
	}
	if k >= 0 {
		col = segs[k].Start
	}
	return col
}

// NextWordBoundary skips whitespace to the right of col, then the next word.
func NextWordBoundary(line []uint16, col int) int {
	col = clamp(col, len(line))
	segs := Words(line)

	k := 0
	for k < len(segs) && segs[k].End <= col {
		k++
	}
	for k < len(segs) && segs[k].Space {
		col = segs[k].End
		k++
	}
	if k < len(segs) {
		col = segs[k].End
	}
	return col
}

// CellWidth returns the number of terminal cells taken by the first col code
// units of line. Tabs advance to the next multiple of tabWidth.
func CellWidth(line []uint16, col, tabWidth int) int {
	col = clamp(col, len(line))
	if col == 0 {
		return 0
	}

	g := uniseg.NewGraphemes(string(utf16.Decode(line[:col])))
	cells := 0
	for g.Next() {
		cells += clusterWidth(g.Str(), cells, tabWidth)
	}
	return cells
}

// Cell is one grapheme cluster laid out on screen. Col and Units locate it in
// the line; Text is what to draw (tabs already expanded to spaces).
type Cell struct {
	Col   int
	Units int
	Width int
	Text  string
}

// Cells lays out line as terminal cells.
func Cells(line []uint16, tabWidth int) []Cell {
	if len(line) == 0 {
		return nil
	}

	var (
		out   []Cell
		col   int
		cells int
	)
	g := uniseg.NewGraphemes(string(utf16.Decode(line)))
	for g.Next() {
		cluster := g.Str()
		w := clusterWidth(cluster, cells, tabWidth)
		text := cluster
		if cluster == "\t" {
			text = strings.Repeat(" ", w)
		}
		n := unitLen(cluster)
		out = append(out, Cell{Col: col, Units: n, Width: w, Text: text})
		col += n
		cells += w
	}
	return out
}

func clusterWidth(cluster string, visualCol, tabWidth int) int {
	if cluster == "\t" {
		if tabWidth <= 0 {
			tabWidth = 4
		}
		return tabWidth - visualCol%tabWidth
	}

	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}

// IsSpace reports whether all runes in s are Unicode whitespace.
func IsSpace(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func unitLen(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

func clamp(col, max int) int {
	if col < 0 {
		return 0
	}
	if col > max {
		return max
	}
	return col
}
