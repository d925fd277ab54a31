package buffer

import (
	"fmt"
	"slices"
)

// SegmentedBuffer stores one code-unit sequence per line.
type SegmentedBuffer struct {
	lines [][]uint16
}

var _ TextBuffer = (*SegmentedBuffer)(nil)

func NewSegmented() *SegmentedBuffer {
	return &SegmentedBuffer{lines: [][]uint16{nil}}
}

func (b *SegmentedBuffer) Line(line int) (Line, error) {
	if line < 0 || line >= len(b.lines) {
		return nil, fmt.Errorf("line %d of %d: %w", line, len(b.lines), ErrOutOfRange)
	}
	l := b.lines[line]
	if len(l) == 0 {
		return nil, nil
	}
	return Line(l[:len(l):len(l)]), nil
}

func (b *SegmentedBuffer) LineCount() int { return len(b.lines) }

func (b *SegmentedBuffer) LineLen(line int) int {
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	return len(b.lines[line])
}

func (b *SegmentedBuffer) ByteOffset(line, col int) int {
	units := col
	n := minInt(line, len(b.lines))
	for i := 0; i < n; i++ {
		units += len(b.lines[i]) + 1
	}
	return units * UnitSize
}

func (b *SegmentedBuffer) ByteCount(lineStart, colStart, lineEnd, colEnd int) int {
	r := rangeOf(lineStart, colStart, lineEnd, colEnd)
	if r.IsEmpty() {
		return 0
	}
	if r.Start.Line == r.End.Line {
		return (r.End.Col - r.Start.Col) * UnitSize
	}
	return b.ByteOffset(r.End.Line, r.End.Col) - b.ByteOffset(r.Start.Line, r.Start.Col)
}

func (b *SegmentedBuffer) Insert(line, col int, text string) (EditDelta, error) {
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
	if len(segs) == 1 {
		b.lines[line] = slices.Insert(b.lines[line], col, ins...)
		end := Pos{Line: line, Col: col + len(ins)}
		return insertDelta(at, startByte, end, len(ins)), nil
	}

	target := b.lines[line]
	suffix := append([]uint16(nil), target[col:]...)
	b.lines[line] = append(target[:col], segs[0]...)

	added := make([][]uint16, 0, len(segs)-1)
	for _, seg := range segs[1:] {
		added = append(added, append([]uint16(nil), seg...))
	}
	last := len(added) - 1
	endCol := len(added[last])
	added[last] = append(added[last], suffix...)
	b.lines = slices.Insert(b.lines, line+1, added...)

	end := Pos{Line: line + len(segs) - 1, Col: endCol}
	return insertDelta(at, startByte, end, len(ins)), nil
}

func (b *SegmentedBuffer) Erase(lineStart, colStart, lineEnd, colEnd int) (EditDelta, error) {
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
	endByte := startByte + b.ByteCount(r.Start.Line, r.Start.Col, r.End.Line, r.End.Col)

	if r.Start.Line == r.End.Line {
		b.lines[r.Start.Line] = slices.Delete(b.lines[r.Start.Line], r.Start.Col, r.End.Col)
		return eraseDelta(r, startByte, endByte), nil
	}

	first := b.lines[r.Start.Line][:r.Start.Col]
	merged := append(first, b.lines[r.End.Line][r.End.Col:]...)
	b.lines[r.Start.Line] = merged
	b.lines = slices.Delete(b.lines, r.Start.Line+1, r.End.Line+1)
	return eraseDelta(r, startByte, endByte), nil
}

func (b *SegmentedBuffer) Clear() EditDelta {
	last := len(b.lines) - 1
	oldEnd := Pos{Line: last, Col: len(b.lines[last])}
	oldEndByte := b.ByteOffset(oldEnd.Line, oldEnd.Col)

	b.lines = [][]uint16{nil}

	return EditDelta{
		OldEndByte: oldEndByte,
		OldEnd:     oldEnd,
	}
}

func (b *SegmentedBuffer) Backend() Backend { return Segmented }

func (b *SegmentedBuffer) Stats() Stats {
	units := 0
	for _, l := range b.lines {
		units += len(l)
	}
	return statsFor(len(b.lines), units)
}
