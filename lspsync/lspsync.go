// Package lspsync turns EditDeltas into LSP textDocument/didChange payloads.
//
// LSP positions count UTF-16 code units, the same unit buffer columns use, so
// positions map across without conversion.
package lspsync

import (
	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/iw2rmb/textcore/buffer"
)

var log = commonlog.GetLogger("textcore.lspsync")

func Position(p buffer.Pos) protocol.Position {
	return protocol.Position{
		Line:      protocol.UInteger(p.Line),
		Character: protocol.UInteger(p.Col),
	}
}

// ChangeEvent describes d as an incremental change replacing Start..OldEnd
// with text. text must be what was inserted ("" for deletions).
func ChangeEvent(d buffer.EditDelta, text string) protocol.TextDocumentContentChangeEvent {
	length := protocol.UInteger((d.OldEndByte - d.StartByte) / buffer.UnitSize)
	return protocol.TextDocumentContentChangeEvent{
		Range: &protocol.Range{
			Start: Position(d.Start),
			End:   Position(d.OldEnd),
		},
		RangeLength: &length,
		Text:        text,
	}
}

// Tracker batches changes for one document between flushes.
type Tracker struct {
	uri     protocol.DocumentUri
	version protocol.Integer
	pending []any
}

func NewTracker(uri string) *Tracker {
	return &Tracker{uri: protocol.DocumentUri(uri)}
}

func (t *Tracker) URI() protocol.DocumentUri { return t.uri }

// Version is the version of the last flushed change set.
func (t *Tracker) Version() protocol.Integer { return t.version }

func (t *Tracker) Pending() int { return len(t.pending) }

// Record queues d. No-op deltas are dropped.
func (t *Tracker) Record(d buffer.EditDelta, text string) {
	if d.IsEmpty() {
		return
	}
	t.pending = append(t.pending, ChangeEvent(d, text))
}

// RecordFull replaces everything queued with a full-document sync. Use it
// after Load, where replaying the clear and insert deltas buys nothing.
func (t *Tracker) RecordFull(text string) {
	t.pending = append(t.pending[:0], protocol.TextDocumentContentChangeEventWhole{Text: text})
}

// Flush returns the queued changes as one didChange notification and bumps
// the version. ok is false when nothing was queued.
func (t *Tracker) Flush() (params protocol.DidChangeTextDocumentParams, ok bool) {
	if len(t.pending) == 0 {
		return params, false
	}
	t.version++
	params = protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: t.uri},
			Version:                t.version,
		},
		ContentChanges: t.pending,
	}
	log.Debugf("didChange %s v%d: %d changes", t.uri, t.version, len(t.pending))
	t.pending = nil
	return params, true
}
