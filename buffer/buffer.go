package buffer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfRange reports a line or column outside the current document. It is
// a caller contract violation, never clamped silently.
var ErrOutOfRange = errors.New("position out of range")

// TextBuffer is the storage contract shared by all backends.
//
// Ranges passed to ByteCount and Erase may be given in either order; they are
// normalized before use. A zero-width range is a no-op, never an error.
type TextBuffer interface {
	LineSource

	// ByteOffset returns the absolute byte offset of (line, col). The column
	// is not validated against the line length.
	ByteOffset(line, col int) int
	// ByteCount returns the byte span between two positions.
	ByteCount(lineStart, colStart, lineEnd, colEnd int) int

	// Insert inserts text at (line, col). text may contain '\n'.
	Insert(line, col int, text string) (EditDelta, error)
	// Erase removes the addressed range, joining lines when it spans several.
	Erase(lineStart, colStart, lineEnd, colEnd int) (EditDelta, error)
	// Clear replaces all content with a single empty line.
	Clear() EditDelta
}

// Backend selects a TextBuffer implementation.
type Backend uint8

const (
	Contiguous Backend = iota
	Segmented
)

func (b Backend) String() string {
	switch b {
	case Contiguous:
		return "contiguous"
	case Segmented:
		return "segmented"
	default:
		return fmt.Sprintf("Backend(%d)", uint8(b))
	}
}

// ParseBackend maps a backend name to a Backend.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "contiguous":
		return Contiguous, nil
	case "segmented":
		return Segmented, nil
	default:
		return 0, fmt.Errorf("unknown buffer backend %q", name)
	}
}

// New returns an empty buffer (one empty line) of the given backend.
func New(kind Backend) TextBuffer {
	if kind == Segmented {
		return NewSegmented()
	}
	return NewContiguous()
}

// NewFromText returns a buffer of the given backend holding text.
func NewFromText(kind Backend, text string) TextBuffer {
	b := New(kind)
	if text != "" {
		// (0, 0) is always valid on an empty buffer.
		_, _ = b.Insert(0, 0, text)
	}
	return b
}

func outOfRange(op string, p Pos, lines int) error {
	return fmt.Errorf("%s at (%d, %d) in %d lines: %w", op, p.Line, p.Col, lines, ErrOutOfRange)
}

// checkPos validates p against src: 0 <= Line < LineCount and
// 0 <= Col <= LineLen(Line).
func checkPos(src LineSource, op string, p Pos) error {
	if p.Line < 0 || p.Line >= src.LineCount() {
		return outOfRange(op, p, src.LineCount())
	}
	if p.Col < 0 || p.Col > src.LineLen(p.Line) {
		return outOfRange(op, p, src.LineCount())
	}
	return nil
}
