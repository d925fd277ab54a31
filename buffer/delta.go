package buffer

// EditDelta describes the effect of one mutation in byte offsets and
// (line, col) points, in the shape an incremental parser expects.
//
// Columns are code-unit counts, not bytes. A consumer bridging to a
// byte-oriented parser multiplies them by UnitSize.
//
// For a pure insertion Start == OldEnd and StartByte == OldEndByte. For a pure
// deletion NewEnd == Start and NewEndByte == StartByte.
type EditDelta struct {
	StartByte  int
	OldEndByte int
	NewEndByte int

	Start  Pos
	OldEnd Pos
	NewEnd Pos
}

// IsEmpty reports whether the delta describes a no-op.
func (d EditDelta) IsEmpty() bool {
	return d.Start == d.OldEnd && d.Start == d.NewEnd &&
		d.StartByte == d.OldEndByte && d.StartByte == d.NewEndByte
}

func emptyDelta(p Pos, byteOff int) EditDelta {
	return EditDelta{
		StartByte:  byteOff,
		OldEndByte: byteOff,
		NewEndByte: byteOff,
		Start:      p,
		OldEnd:     p,
		NewEnd:     p,
	}
}

func insertDelta(start Pos, startByte int, end Pos, insertedUnits int) EditDelta {
	return EditDelta{
		StartByte:  startByte,
		OldEndByte: startByte,
		NewEndByte: startByte + insertedUnits*UnitSize,
		Start:      start,
		OldEnd:     start,
		NewEnd:     end,
	}
}

func eraseDelta(r Range, startByte, endByte int) EditDelta {
	return EditDelta{
		StartByte:  startByte,
		OldEndByte: endByte,
		NewEndByte: startByte,
		Start:      r.Start,
		OldEnd:     r.End,
		NewEnd:     r.Start,
	}
}
