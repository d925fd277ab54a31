package buffer

import (
	"fmt"
	"slices"
)

// Span locates one line inside the contiguous backing sequence.
type Span struct {
	Start int
	Len   int
}

// ContiguousBuffer stores the whole document in one code-unit sequence plus a
// line index. Line terminators are not stored; the index alone knows where one
// line ends and the next begins.
type ContiguousBuffer struct {
	units []uint16
	spans []Span
}

var _ TextBuffer = (*ContiguousBuffer)(nil)

func NewContiguous() *ContiguousBuffer {
	return &ContiguousBuffer{spans: []Span{{}}}
}

func (b *ContiguousBuffer) Line(line int) (Line, error) {
	if line < 0 || line >= len(b.spans) {
		return nil, fmt.Errorf("line %d of %d: %w", line, len(b.spans), ErrOutOfRange)
	}
	s := b.spans[line]
	if s.Len == 0 {
		return nil, nil
	}
	end := s.Start + s.Len
	return Line(b.units[s.Start:end:end]), nil
}

func (b *ContiguousBuffer) LineCount() int { return len(b.spans) }

func (b *ContiguousBuffer) LineLen(line int) int {
	if line < 0 || line >= len(b.spans) {
		return 0
	}
	return b.spans[line].Len
}

func (b *ContiguousBuffer) ByteOffset(line, col int) int {
	switch {
	case line <= 0:
		return col * UnitSize
	case line >= len(b.spans):
		return (len(b.units) + len(b.spans) + col) * UnitSize
	}
	// Every preceding line contributes its stored units plus one boundary.
	return (b.spans[line].Start + line + col) * UnitSize
}

func (b *ContiguousBuffer) ByteCount(lineStart, colStart, lineEnd, colEnd int) int {
	r := rangeOf(lineStart, colStart, lineEnd, colEnd)
	if r.IsEmpty() {
		return 0
	}
	return b.ByteOffset(r.End.Line, r.End.Col) - b.ByteOffset(r.Start.Line, r.Start.Col)
}

func (b *ContiguousBuffer) Insert(line, col int, text string) (EditDelta, error) {
	at := Pos{Line: line, Col: col}
	if err := checkPos(b, "insert", at); err != nil {
		return EditDelta{}, err
	}

	startByte := b.ByteOffset(line, col)
	ins := encode(text)
	if len(ins) == 0 {
		return emptyDelta(at, startByte), nil
	}

	segs := splitUnits(ins)
	stored := make([]uint16, 0, len(ins)-(len(segs)-1))
	for _, seg := range segs {
		stored = append(stored, seg...)
	}

	orig := b.spans[line]
	b.units = slices.Insert(b.units, orig.Start+col, stored...)

	var end Pos
	if len(segs) == 1 {
		b.spans[line].Len += len(stored)
		end = Pos{Line: line, Col: col + len(stored)}
	} else {
		suffix := orig.Len - col
		b.spans[line].Len = col + len(segs[0])

		added := make([]Span, 0, len(segs)-1)
		next := orig.Start + col + len(segs[0])
		for i, seg := range segs[1:] {
			n := len(seg)
			if i == len(segs)-2 {
				n += suffix
			}
			added = append(added, Span{Start: next, Len: n})
			next += n
		}
		b.spans = slices.Insert(b.spans, line+1, added...)

		last := segs[len(segs)-1]
		end = Pos{Line: line + len(segs) - 1, Col: len(last)}
	}

	b.shiftSpans(end.Line+1, len(stored))
	return insertDelta(at, startByte, end, len(ins)), nil
}

func (b *ContiguousBuffer) Erase(lineStart, colStart, lineEnd, colEnd int) (EditDelta, error) {
	r := rangeOf(lineStart, colStart, lineEnd, colEnd)
	if err := checkPos(b, "erase", r.Start); err != nil {
		return EditDelta{}, err
	}
	if err := checkPos(b, "erase", r.End); err != nil {
		return EditDelta{}, err
	}

	startByte := b.ByteOffset(r.Start.Line, r.Start.Col)
	if r.IsEmpty() {
		return emptyDelta(r.Start, startByte), nil
	}
	endByte := b.ByteOffset(r.End.Line, r.End.Col)

	from := b.spans[r.Start.Line].Start + r.Start.Col
	to := b.spans[r.End.Line].Start + r.End.Col
	removed := to - from
	b.units = slices.Delete(b.units, from, to)

	if r.Start.Line == r.End.Line {
		b.spans[r.Start.Line].Len -= removed
	} else {
		last := b.spans[r.End.Line]
		b.spans[r.Start.Line].Len = r.Start.Col + last.Len - r.End.Col
		b.spans = slices.Delete(b.spans, r.Start.Line+1, r.End.Line+1)
	}

	b.shiftSpans(r.Start.Line+1, -removed)
	return eraseDelta(r, startByte, endByte), nil
}

func (b *ContiguousBuffer) Clear() EditDelta {
	last := len(b.spans) - 1
	oldEnd := Pos{Line: last, Col: b.spans[last].Len}
	oldEndByte := b.ByteOffset(oldEnd.Line, oldEnd.Col)

	b.units = b.units[:0]
	b.spans = append(b.spans[:0], Span{})

	return EditDelta{
		OldEndByte: oldEndByte,
		OldEnd:     oldEnd,
	}
}

// shiftSpans moves the start of every span from index `from` on by delta.
func (b *ContiguousBuffer) shiftSpans(from, delta int) {
	if delta == 0 {
		return
	}
	for i := from; i < len(b.spans); i++ {
		b.spans[i].Start += delta
	}
}

// Spans returns a copy of the line index.
func (b *ContiguousBuffer) Spans() []Span {
	return append([]Span(nil), b.spans...)
}

func (b *ContiguousBuffer) Backend() Backend { return Contiguous }

func (b *ContiguousBuffer) Stats() Stats {
	return statsFor(len(b.spans), len(b.units))
}
