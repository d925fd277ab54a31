package cursor

import (
	"slices"
	"unicode/utf16"
)

// SingleLine is an editable one-line string with a column, for prompt-style
// input. It tracks no byte offsets and produces no EditDelta.
//
// Columns are code units, as in Cursor. Moves and erases step over surrogate
// pairs as one.
type SingleLine struct {
	text []uint16
	col  int
}

// NewSingleLine returns a prompt holding text with the column at its end.
func NewSingleLine(text string) *SingleLine {
	s := &SingleLine{}
	s.SetText(text)
	return s
}

func (s *SingleLine) Text() string { return string(utf16.Decode(s.text)) }

func (s *SingleLine) Column() int { return s.col }

func (s *SingleLine) Len() int { return len(s.text) }

// SetText replaces the content and moves the column to the end.
func (s *SingleLine) SetText(text string) {
	s.text = singleLineUnits(text)
	s.col = len(s.text)
}

// Insert inserts text at the column. Line breaks are dropped.
func (s *SingleLine) Insert(text string) {
	ins := singleLineUnits(text)
	if len(ins) == 0 {
		return
	}
	s.text = slices.Insert(s.text, s.col, ins...)
	s.col += len(ins)
}

// EraseLeft deletes the code point before the column and reports whether it
// did.
func (s *SingleLine) EraseLeft() bool {
	if s.col == 0 {
		return false
	}
	from := prevUnit(s.text, s.col)
	s.text = slices.Delete(s.text, from, s.col)
	s.col = from
	return true
}

// EraseRight deletes the code point after the column and reports whether it
// did.
func (s *SingleLine) EraseRight() bool {
	if s.col == len(s.text) {
		return false
	}
	s.text = slices.Delete(s.text, s.col, nextUnit(s.text, s.col))
	return true
}

func (s *SingleLine) MoveLeft() {
	if s.col > 0 {
		s.col = prevUnit(s.text, s.col)
	}
}

func (s *SingleLine) MoveRight() {
	if s.col < len(s.text) {
		s.col = nextUnit(s.text, s.col)
	}
}

func (s *SingleLine) MoveToStart() { s.col = 0 }

func (s *SingleLine) MoveToEnd() { s.col = len(s.text) }

func (s *SingleLine) Clear() {
	s.text = s.text[:0]
	s.col = 0
}

func singleLineUnits(text string) []uint16 {
	out := make([]uint16, 0, len(text))
	for _, u := range utf16.Encode([]rune(text)) {
		if u == '\n' || u == '\r' {
			continue
		}
		out = append(out, u)
	}
	return out
}
