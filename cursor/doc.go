// Package cursor implements navigation and editing over a buffer.TextBuffer.
//
// A Cursor exclusively owns its buffer. All mutation goes through the cursor
// so every edit yields a buffer.EditDelta for the incremental parser and the
// renderer's dirty tracking. Positions are (line, col) in code units.
//
// Cursor is not safe for concurrent use; callers serialize access.
package cursor
