package cursor

import (
	"github.com/iw2rmb/textcore/buffer"
	"github.com/iw2rmb/textcore/internal/grapheme"
)

type MoveUnit int

const (
	MoveChar MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

// Move applies m and reports whether the position changed. Navigation never
// produces an EditDelta.
func (c *Cursor) Move(m Move) bool {
	next := c.moveCursor(c.pos, m)
	if next == c.pos {
		return false
	}
	c.pos = next
	return true
}

func (c *Cursor) MoveLeft() { c.Move(Move{Unit: MoveChar, Dir: DirLeft}) }
func (c *Cursor) MoveRight() { c.Move(Move{Unit: MoveChar, Dir: DirRight}) }
func (c *Cursor) MoveUp() { c.Move(Move{Unit: MoveLine, Dir: DirUp}) }
func (c *Cursor) MoveDown() { c.Move(Move{Unit: MoveLine, Dir: DirDown}) }
func (c *Cursor) MoveWordLeft() { c.Move(Move{Unit: MoveWord, Dir: DirLeft}) }
func (c *Cursor) MoveWordRight() { c.Move(Move{Unit: MoveWord, Dir: DirRight}) }
func (c *Cursor) MoveToStartOfLine() { c.Move(Move{Unit: MoveLine, Dir: DirHome}) }
func (c *Cursor) MoveToEndOfLine() { c.Move(Move{Unit: MoveLine, Dir: DirEnd}) }
func (c *Cursor) MoveToStartOfFile() { c.Move(Move{Unit: MoveDoc, Dir: DirHome}) }
func (c *Cursor) MoveToEndOfFile() { c.Move(Move{Unit: MoveDoc, Dir: DirEnd}) }

// PageUp moves n lines up, stopping at the first line. n <= 0 is a no-op.
func (c *Cursor) PageUp(n int) { c.moveLines(-max(n, 0)) }

// PageDown moves n lines down, stopping at the last line. n <= 0 is a no-op.
func (c *Cursor) PageDown(n int) { c.moveLines(max(n, 0)) }

func (c *Cursor) moveCursor(p buffer.Pos, m Move) buffer.Pos {
	switch m.Unit {
	case MoveChar:
		return c.moveChar(p, m.Dir)
	case MoveWord:
		return c.moveWord(p, m.Dir)
	case MoveLine:
		return c.moveLine(p, m.Dir)
	case MoveDoc:
		return c.moveDoc(p, m.Dir)
	default:
		return p
	}
}

func (c *Cursor) moveChar(p buffer.Pos, dir MoveDir) buffer.Pos {
	line, col := p.Line, p.Col

	switch dir {
	case DirLeft:
		if col > 0 {
			return buffer.Pos{Line: line, Col: c.prevCol(line, col)}
		}
		if line == 0 {
			return p
		}
		return buffer.Pos{Line: line - 1, Col: c.buf.LineLen(line - 1)}
	case DirRight:
		if col < c.buf.LineLen(line) {
			return buffer.Pos{Line: line, Col: c.nextCol(line, col)}
		}
		if line == c.lastLine() {
			return p
		}
		return buffer.Pos{Line: line + 1, Col: 0}
	default:
		return c.moveLine(p, dir)
	}
}

// Word moves stay on the current line; at a line edge they fall back to a
// character move so repeated presses cross line boundaries.
func (c *Cursor) moveWord(p buffer.Pos, dir MoveDir) buffer.Pos {
	line, err := c.buf.Line(p.Line)
	if err != nil {
		return p
	}

	switch dir {
	case DirLeft:
		if p.Col == 0 {
			return c.moveChar(p, DirLeft)
		}
		return buffer.Pos{Line: p.Line, Col: grapheme.PrevWordBoundary(line, p.Col)}
	case DirRight:
		if p.Col == len(line) {
			return c.moveChar(p, DirRight)
		}
		return buffer.Pos{Line: p.Line, Col: grapheme.NextWordBoundary(line, p.Col)}
	default:
		return c.moveLine(p, dir)
	}
}

func (c *Cursor) moveLine(p buffer.Pos, dir MoveDir) buffer.Pos {
	switch dir {
	case DirHome:
		return buffer.Pos{Line: p.Line, Col: 0}
	case DirEnd:
		return buffer.Pos{Line: p.Line, Col: c.buf.LineLen(p.Line)}
	case DirUp:
		return c.verticalTarget(p, -1)
	case DirDown:
		return c.verticalTarget(p, 1)
	case DirLeft, DirRight:
		return c.moveChar(p, dir)
	default:
		return p
	}
}

func (c *Cursor) moveDoc(p buffer.Pos, dir MoveDir) buffer.Pos {
	last := c.lastLine()

	switch dir {
	case DirHome, DirUp:
		return buffer.Pos{Line: 0, Col: 0}
	case DirEnd, DirDown:
		return buffer.Pos{Line: last, Col: c.buf.LineLen(last)}
	default:
		return p
	}
}

func (c *Cursor) moveLines(n int) {
	c.pos = c.verticalTarget(c.pos, n)
}

// verticalTarget moves n lines (negative is up), clamped to the document.
// The column is clamped to the target line's length and not remembered.
//
// TODO: keep a desired column across consecutive vertical moves so passing
// through a short line does not lose the original column.
func (c *Cursor) verticalTarget(p buffer.Pos, n int) buffer.Pos {
	line := p.Line + n
	if line < 0 {
		line = 0
	}
	if last := c.lastLine(); line > last {
		line = last
	}
	if line == p.Line {
		return p
	}
	return buffer.Pos{Line: line, Col: min(p.Col, c.buf.LineLen(line))}
}

// prevCol steps one code point left of col, keeping surrogate pairs whole.
func (c *Cursor) prevCol(line, col int) int {
	l, err := c.buf.Line(line)
	if err != nil {
		return col - 1
	}
	return prevUnit(l, col)
}

// nextCol steps one code point right of col, keeping surrogate pairs whole.
func (c *Cursor) nextCol(line, col int) int {
	l, err := c.buf.Line(line)
	if err != nil {
		return col + 1
	}
	return nextUnit(l, col)
}

func prevUnit(units []uint16, col int) int {
	if col >= 2 && col <= len(units) && isLowSurrogate(units[col-1]) && isHighSurrogate(units[col-2]) {
		return col - 2
	}
	return col - 1
}

func nextUnit(units []uint16, col int) int {
	if col+1 < len(units) && isHighSurrogate(units[col]) && isLowSurrogate(units[col+1]) {
		return col + 2
	}
	return col + 1
}

func isHighSurrogate(u uint16) bool { return u >= 0xD800 && u < 0xDC00 }

func isLowSurrogate(u uint16) bool { return u >= 0xDC00 && u < 0xE000 }
