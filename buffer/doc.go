// Package buffer implements the line-indexed document storage behind a cursor.
//
// A document is an ordered sequence of lines of UTF-16 code units. There is
// always at least one line. Coordinates are 0-based (Line, Col) where Col
// counts code units. Byte offsets assume UnitSize bytes per code unit and one
// code unit for every line boundary.
//
// Two interchangeable backends implement TextBuffer: ContiguousBuffer (one
// backing sequence plus a line index) and SegmentedBuffer (one sequence per
// line). Every mutation returns an EditDelta describing its effect for an
// incremental parser.
package buffer
