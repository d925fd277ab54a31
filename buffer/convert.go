package buffer

import "fmt"

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// DocByteLen returns the byte length of src, counting one code unit per line
// boundary.
func DocByteLen(src LineSource) int {
	units := src.LineCount() - 1
	for i := 0; i < src.LineCount(); i++ {
		units += src.LineLen(i)
	}
	return units * UnitSize
}

// PosFromByteOffset maps an absolute byte offset to a position. Offsets that
// fall inside a code unit are rejected in both modes.
func PosFromByteOffset(src LineSource, off int, mode OffsetClampMode) (Pos, error) {
	off, err := clampOffset(off, DocByteLen(src), mode)
	if err != nil {
		return Pos{}, err
	}
	if off%UnitSize != 0 {
		return Pos{}, fmt.Errorf("byte offset %d splits a code unit: %w", off, ErrOutOfRange)
	}

	units := off / UnitSize
	for line := 0; line < src.LineCount(); line++ {
		n := src.LineLen(line)
		if units <= n {
			return Pos{Line: line, Col: units}, nil
		}
		units -= n + 1
	}
	// Unreachable after clampOffset.
	return Pos{}, fmt.Errorf("byte offset %d: %w", off, ErrOutOfRange)
}

// ByteOffsetFromPos maps a position to its absolute byte offset. With
// OffsetClamp the position is clamped into the document first.
func ByteOffsetFromPos(src TextBuffer, p Pos, mode OffsetClampMode) (int, error) {
	switch mode {
	case OffsetError:
		if err := checkPos(src, "byte offset", p); err != nil {
			return 0, err
		}
	case OffsetClamp:
		p = ClampPos(src, p)
	default:
		return 0, fmt.Errorf("unknown clamp mode %d", mode)
	}
	return src.ByteOffset(p.Line, p.Col), nil
}

// ClampPos clamps p into the bounds of src.
func ClampPos(src LineSource, p Pos) Pos {
	line := clampInt(p.Line, 0, src.LineCount()-1)
	return Pos{Line: line, Col: clampInt(p.Col, 0, src.LineLen(line))}
}

func clampOffset(off, max int, mode OffsetClampMode) (int, error) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, fmt.Errorf("byte offset %d of %d: %w", off, max, ErrOutOfRange)
		}
		return off, nil
	case OffsetClamp:
		return clampInt(off, 0, max), nil
	default:
		return 0, fmt.Errorf("unknown clamp mode %d", mode)
	}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
