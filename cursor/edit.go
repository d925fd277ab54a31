package cursor

import (
	"fmt"

	"github.com/iw2rmb/textcore/buffer"
)

// Insert inserts text at the cursor and moves the cursor to just after it.
func (c *Cursor) Insert(text string) (buffer.EditDelta, error) {
	d, err := c.buf.Insert(c.pos.Line, c.pos.Col, text)
	if err != nil {
		return buffer.EditDelta{}, fmt.Errorf("insert at cursor: %w", err)
	}
	return c.commit("insert", d, d.NewEnd), nil
}

// NewLine inserts a single line break at the cursor.
func (c *Cursor) NewLine() (buffer.EditDelta, error) {
	return c.Insert("\n")
}

// EraseLeft deletes the code point before the cursor (both halves of a
// surrogate pair). At column 0 it joins the line with the previous one. It is
// a no-op at the start of the document.
func (c *Cursor) EraseLeft() (buffer.EditDelta, error) {
	p := c.pos

	var (
		d   buffer.EditDelta
		err error
	)
	switch {
	case p.Col > 0:
		d, err = c.buf.Erase(p.Line, c.prevCol(p.Line, p.Col), p.Line, p.Col)
	case p.Line > 0:
		prev := p.Line - 1
		d, err = c.buf.Erase(prev, c.buf.LineLen(prev), p.Line, 0)
	default:
		return c.noop(), nil
	}
	if err != nil {
		return buffer.EditDelta{}, fmt.Errorf("erase left: %w", err)
	}
	return c.commit("erase left", d, d.Start), nil
}

// EraseRight deletes the code point after the cursor (both halves of a
// surrogate pair). At the end of a line it joins the next line. It is a no-op
// at the end of the document.
func (c *Cursor) EraseRight() (buffer.EditDelta, error) {
	p := c.pos

	var (
		d   buffer.EditDelta
		err error
	)
	switch {
	case p.Col < c.buf.LineLen(p.Line):
		d, err = c.buf.Erase(p.Line, p.Col, p.Line, c.nextCol(p.Line, p.Col))
	case p.Line < c.lastLine():
		d, err = c.buf.Erase(p.Line, p.Col, p.Line+1, 0)
	default:
		return c.noop(), nil
	}
	if err != nil {
		return buffer.EditDelta{}, fmt.Errorf("erase right: %w", err)
	}
	return c.commit("erase right", d, d.Start), nil
}

// EraseRange deletes between a and b, given in any order (e.g. selection
// anchor and head). The cursor moves to the start of the range.
func (c *Cursor) EraseRange(a, b buffer.Pos) (buffer.EditDelta, error) {
	d, err := c.buf.Erase(a.Line, a.Col, b.Line, b.Col)
	if err != nil {
		return buffer.EditDelta{}, fmt.Errorf("erase range: %w", err)
	}
	if d.IsEmpty() {
		return d, nil
	}
	return c.commit("erase range", d, d.Start), nil
}

// Clear resets the buffer to one empty line, the cursor to (0, 0) and drops
// the document name.
func (c *Cursor) Clear() buffer.EditDelta {
	d := c.buf.Clear()
	c.name = ""
	return c.commit("clear", d, buffer.Pos{})
}

// Load replaces the document with text under name and puts the cursor at the
// start. It returns the clear and insert deltas in order.
func (c *Cursor) Load(name, text string) ([]buffer.EditDelta, error) {
	cleared := c.Clear()
	inserted, err := c.buf.Insert(0, 0, text)
	if err != nil {
		return []buffer.EditDelta{cleared}, fmt.Errorf("load %q: %w", name, err)
	}
	c.name = name
	log.Infof("loaded %q: %d lines", name, c.buf.LineCount())
	return []buffer.EditDelta{cleared, inserted}, nil
}

// commit moves the cursor to next and stamps it into the delta's NewEnd.
func (c *Cursor) commit(op string, d buffer.EditDelta, next buffer.Pos) buffer.EditDelta {
	c.pos = next
	d.NewEnd = next
	log.Debugf("%s: bytes [%d,%d)->[%d,%d) cursor=%d:%d", op,
		d.StartByte, d.OldEndByte, d.StartByte, d.NewEndByte, next.Line, next.Col)
	return d
}

func (c *Cursor) noop() buffer.EditDelta {
	off := c.ByteOffset()
	return buffer.EditDelta{
		StartByte:  off,
		OldEndByte: off,
		NewEndByte: off,
		Start:      c.pos,
		OldEnd:     c.pos,
		NewEnd:     c.pos,
	}
}
