package cursor

import (
	"errors"
	"reflect"
	"testing"

	"github.com/iw2rmb/textcore/buffer"
)

func eachBackend(t *testing.T, fn func(t *testing.T, kind buffer.Backend)) {
	t.Helper()
	for _, kind := range []buffer.Backend{buffer.Contiguous, buffer.Segmented} {
		t.Run(kind.String(), func(t *testing.T) { fn(t, kind) })
	}
}

func newCursor(kind buffer.Backend, text string) *Cursor {
	return New(buffer.NewFromText(kind, text))
}

func at(line, col int) buffer.Pos { return buffer.Pos{Line: line, Col: col} }

func mustSet(t *testing.T, c *Cursor, line, col int) {
	t.Helper()
	if err := c.SetPosition(line, col); err != nil {
		t.Fatalf("set position (%d,%d): %v", line, col, err)
	}
}

func assertPos(t *testing.T, c *Cursor, want buffer.Pos) {
	t.Helper()
	if got := c.Position(); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func assertText(t *testing.T, c *Cursor, want ...string) {
	t.Helper()
	if got := buffer.Lines(c.Lines()); !reflect.DeepEqual(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}
}

func TestCursor_NewStartsAtOrigin(t *testing.T) {
	c := New(nil)
	assertPos(t, c, at(0, 0))
	assertText(t, c, "")
	if insp, ok := c.Inspect(); !ok || insp.Backend() != buffer.Contiguous {
		t.Fatalf("nil buffer should default to a contiguous backend")
	}
}

func TestCursor_SetPosition(t *testing.T) {
	eachBackend(t, func(t *testing.T, kind buffer.Backend) {
		c := newCursor(kind, "abc\nd")

		mustSet(t, c, 0, 3)
		assertPos(t, c, at(0, 3))
		mustSet(t, c, 1, 1)
		assertPos(t, c, at(1, 1))

		for _, p := range []buffer.Pos{at(2, 0), at(-1, 0), at(1, 2), at(0, -1)} {
			if err := c.SetPosition(p.Line, p.Col); !errors.Is(err, buffer.ErrOutOfRange) {
				t.Fatalf("SetPosition(%v): err=%v, want ErrOutOfRange", p, err)
			}
		}
		assertPos(t, c, at(1, 1))
	})
}

func TestCursor_MoveDownClampsColumn(t *testing.T) {
	eachBackend(t, func(t *testing.T, kind buffer.Backend) {
		c := newCursor(kind, "abcdef\nxy")
		mustSet(t, c, 0, 5)

		c.MoveDown()
		assertPos(t, c, at(1, 2))

		// The clamped column is not remembered.
		c.MoveUp()
		assertPos(t, c, at(0, 2))
	})
}

func TestCursor_VerticalMovesStopAtEdges(t *testing.T) {
	eachBackend(t, func(t *testing.T, kind buffer.Backend) {
		c := newCursor(kind, "ab\ncd")
		mustSet(t, c, 0, 1)
		c.MoveUp()
		assertPos(t, c, at(0, 1))

		mustSet(t, c, 1, 1)
		c.MoveDown()
		assertPos(t, c, at(1, 1))
	})
}

func TestCursor_HorizontalMovesCrossLines(t *testing.T) {
	eachBackend(t, func(t *testing.T, kind buffer.Backend) {
		c := newCursor(kind, "ab\ncd")

		c.MoveLeft()
		assertPos(t, c, at(0, 0))

		mustSet(t, c, 0, 2)
		c.MoveRight()
		assertPos(t, c, at(1, 0))
		c.MoveLeft()
		assertPos(t, c, at(0, 2))

		mustSet(t, c, 1, 2)
		c.MoveRight()
		assertPos(t, c, at(1, 2))
	})
}

func TestCursor_JumpToBounds(t *testing.T) {
	eachBackend(t, func(t *testing.T, kind buffer.Backend) {
		c := newCursor(kind, "abc\ndefg\nhi")
		mustSet(t, c, 1, 2)

		c.MoveToEndOfLine()
		assertPos(t, c, at(1, 4))
		c.MoveToStartOfLine()
		assertPos(t, c, at(1, 0))
		c.MoveToEndOfFile()
		assertPos(t, c, at(2, 2))
		c.MoveToStartOfFile()
		assertPos(t, c, at(0, 0))
	})
}

func TestCursor_Paging(t *testing.T) {
	eachBackend(t, func(t *testing.T, kind buffer.Backend) {
		c := newCursor(kind, "line0 long\n1\n2\n3\n4\nline5 long")
		mustSet(t, c, 0, 8)

		c.PageDown(2)
		assertPos(t, c, at(2, 1))

		c.PageDown(100)
		assertPos(t, c, at(5, 1))

		c.PageUp(0)
		assertPos(t, c, at(5, 1))

		c.PageUp(100)
		assertPos(t, c, at(0, 1))
	})
}

func TestCursor_PagingIgnoresNonPositiveCounts(t *testing.T) {
	eachBackend(t, func(t *testing.T, kind buffer.Backend) {
		c := newCursor(kind, "a\nb\nc\nd")
		mustSet(t, c, 2, 1)

		c.PageDown(-5)
		assertPos(t, c, at(2, 1))
		c.PageUp(-5)
		assertPos(t, c, at(2, 1))
		c.PageDown(0)
		assertPos(t, c, at(2, 1))
	})
}

func TestCursor_HorizontalMovesKeepSurrogatePairs(t *testing.T) {
	eachBackend(t, func(t *testing.T, kind buffer.Backend) {
		c := newCursor(kind, "a\U0001F600b")

		mustSet(t, c, 0, 1)
		c.MoveRight()
		assertPos(t, c, at(0, 3))
		c.MoveLeft()
		assertPos(t, c, at(0, 1))

		// From inside a pair, moves land on a pair boundary.
		mustSet(t, c, 0, 2)
		c.MoveRight()
		assertPos(t, c, at(0, 3))
		mustSet(t, c, 0, 2)
		c.MoveLeft()
		assertPos(t, c, at(0, 1))
	})
}

func TestCursor_Move_ReportsChange(t *testing.T) {
	c := newCursor(buffer.Contiguous, "ab")
	if c.Move(Move{Unit: MoveChar, Dir: DirLeft}) {
		t.Fatalf("move left at document start should not report a change")
	}
	if !c.Move(Move{Unit: MoveDoc, Dir: DirEnd}) {
		t.Fatalf("move to document end should report a change")
	}
	assertPos(t, c, at(0, 2))
	if c.Move(Move{Unit: MoveUnit(99), Dir: DirLeft}) {
		t.Fatalf("unknown unit should not move")
	}
}

func TestCursor_WordMoves(t *testing.T) {
	eachBackend(t, func(t *testing.T, kind buffer.Backend) {
		c := newCursor(kind, "foo bar\nbaz")

		c.MoveWordRight()
		assertPos(t, c, at(0, 3))
		c.MoveWordRight()
		assertPos(t, c, at(0, 7))
		c.MoveWordRight()
		assertPos(t, c, at(1, 0))
		c.MoveWordLeft()
		assertPos(t, c, at(0, 7))
		c.MoveWordLeft()
		assertPos(t, c, at(0, 4))
	})
}

func TestCursor_LinesIsReadOnly(t *testing.T) {
	c := newCursor(buffer.Segmented, "abc")
	if _, ok := c.Lines().(buffer.TextBuffer); ok {
		t.Fatalf("Lines() must not expose mutation")
	}
	if got := c.Lines().LineLen(0); got != 3 {
		t.Fatalf("LineLen=%d, want 3", got)
	}
}
