package cursor

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/iw2rmb/textcore/buffer"
)

var log = commonlog.GetLogger("textcore.cursor")

// Cursor owns one TextBuffer and a position inside it.
//
// The position always satisfies 0 <= Line < LineCount and
// 0 <= Col <= LineLen(Line).
type Cursor struct {
	buf  buffer.TextBuffer
	pos  buffer.Pos
	name string
}

// New takes ownership of buf. The caller must not keep using buf directly.
// A nil buf gets an empty contiguous buffer.
func New(buf buffer.TextBuffer) *Cursor {
	if buf == nil {
		buf = buffer.NewContiguous()
	}
	return &Cursor{buf: buf}
}

// NewBackend returns a cursor over a fresh buffer of the given backend.
func NewBackend(kind buffer.Backend) *Cursor {
	return New(buffer.New(kind))
}

func (c *Cursor) Position() buffer.Pos { return c.pos }

// Name is the optional document name. Clear resets it.
func (c *Cursor) Name() string { return c.name }

func (c *Cursor) SetName(name string) { c.name = name }

// SetPosition moves the cursor to (line, col). It fails with
// buffer.ErrOutOfRange instead of clamping.
func (c *Cursor) SetPosition(line, col int) error {
	if line < 0 || line >= c.buf.LineCount() {
		return fmt.Errorf("set position line %d of %d: %w", line, c.buf.LineCount(), buffer.ErrOutOfRange)
	}
	if col < 0 || col > c.buf.LineLen(line) {
		return fmt.Errorf("set position col %d of %d on line %d: %w", col, c.buf.LineLen(line), line, buffer.ErrOutOfRange)
	}
	c.pos = buffer.Pos{Line: line, Col: col}
	return nil
}

// Lines exposes the document read-only.
func (c *Cursor) Lines() buffer.LineSource { return readOnly{src: c.buf} }

// Inspect returns debug introspection for the owned buffer, when supported.
func (c *Cursor) Inspect() (buffer.Inspector, bool) {
	insp, ok := c.buf.(buffer.Inspector)
	return insp, ok
}

// ByteOffset returns the absolute byte offset of the cursor.
func (c *Cursor) ByteOffset() int {
	return c.buf.ByteOffset(c.pos.Line, c.pos.Col)
}

func (c *Cursor) lastLine() int { return c.buf.LineCount() - 1 }

// readOnly hides the mutating half of the owned buffer.
type readOnly struct {
	src buffer.TextBuffer
}

func (r readOnly) Line(line int) (buffer.Line, error) { return r.src.Line(line) }
func (r readOnly) LineCount() int { return r.src.LineCount() }
func (r readOnly) LineLen(line int) int { return r.src.LineLen(line) }

func (r readOnly) ByteOffset(line, col int) int {
	return r.src.ByteOffset(line, col)
}
