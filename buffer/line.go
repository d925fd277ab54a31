package buffer

import (
	"strings"
	"unicode/utf16"
)

// UnitSize is the width of one code unit in bytes.
const UnitSize = 2

// lineBreak is the code unit that separates lines in inserted text. It is
// never stored inside a line.
const lineBreak uint16 = '\n'

// Line is a read-only view of one line's code units, without terminator.
//
// A view stays valid until the next mutating call on the buffer it came from.
// Empty lines are nil on every backend.
type Line []uint16

func (l Line) Len() int { return len(l) }

func (l Line) String() string {
	return string(utf16.Decode(l))
}

// encode converts UTF-8 text to code units.
func encode(text string) []uint16 {
	if text == "" {
		return nil
	}
	return utf16.Encode([]rune(text))
}

// splitUnits splits code units on line breaks. The result always has at least
// one (possibly empty) segment.
func splitUnits(units []uint16) [][]uint16 {
	out := make([][]uint16, 0, 1)
	start := 0
	for i, u := range units {
		if u == lineBreak {
			out = append(out, units[start:i:i])
			start = i + 1
		}
	}
	return append(out, units[start:len(units):len(units)])
}

// LineSource is the read-only line access renderers and parsers consume.
type LineSource interface {
	Line(line int) (Line, error)
	LineCount() int
	LineLen(line int) int
}

// Text joins all lines of src with '\n'.
func Text(src LineSource) string {
	var sb strings.Builder
	for i := 0; i < src.LineCount(); i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		l, err := src.Line(i)
		if err != nil {
			break
		}
		sb.WriteString(l.String())
	}
	return sb.String()
}

// Lines returns every line of src as a Go string.
func Lines(src LineSource) []string {
	out := make([]string, 0, src.LineCount())
	for i := 0; i < src.LineCount(); i++ {
		l, err := src.Line(i)
		if err != nil {
			break
		}
		out = append(out, l.String())
	}
	return out
}
