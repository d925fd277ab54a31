// Package syntax keeps a tree-sitter tree in sync with a buffer by feeding it
// EditDeltas instead of reparsing from scratch.
//
// The buffer is read as UTF-16, so tree-sitter byte offsets line up with
// EditDelta byte offsets. Tree-sitter point columns are bytes; EditDelta
// columns are code units and are multiplied by buffer.UnitSize here.
package syntax

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/tliron/commonlog"

	"github.com/iw2rmb/textcore/buffer"
)

var log = commonlog.GetLogger("textcore.syntax")

// Session owns a parser and the latest tree for one document.
type Session struct {
	parser *sitter.Parser
	tree   *sitter.Tree
	edits  int
}

func NewSession(lang *sitter.Language) (*Session, error) {
	if lang == nil {
		return nil, errors.New("syntax: nil language")
	}
	parser := sitter.NewParser()
	parser.SetLanguage(lang)
	return &Session{parser: parser}, nil
}

// Parse parses src from scratch, dropping any previous tree.
func (s *Session) Parse(ctx context.Context, src buffer.LineSource) error {
	tree, err := s.parser.ParseInputCtx(ctx, nil, input(src))
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	s.replaceTree(tree)
	s.edits = 0
	return nil
}

// Edit applies d to the current tree. Call Reparse once the buffer reflects
// all recorded edits.
func (s *Session) Edit(d buffer.EditDelta) {
	if s.tree == nil || d.IsEmpty() {
		return
	}
	s.tree.Edit(EditInput(d))
	s.edits++
}

// Reparse brings the tree up to date with src, reusing unchanged subtrees.
func (s *Session) Reparse(ctx context.Context, src buffer.LineSource) error {
	if s.tree == nil {
		return s.Parse(ctx, src)
	}
	if s.edits == 0 {
		return nil
	}

	tree, err := s.parser.ParseInputCtx(ctx, s.tree, input(src))
	if err != nil {
		return fmt.Errorf("reparse: %w", err)
	}
	log.Debugf("reparsed after %d edits", s.edits)
	s.replaceTree(tree)
	s.edits = 0
	return nil
}

func (s *Session) replaceTree(tree *sitter.Tree) {
	if s.tree != nil && s.tree != tree {
		s.tree.Close()
	}
	s.tree = tree
}

func (s *Session) Tree() *sitter.Tree { return s.tree }

// Root returns the root node, or nil before the first parse.
func (s *Session) Root() *sitter.Node {
	if s.tree == nil {
		return nil
	}
	return s.tree.RootNode()
}

// RootType returns the root node type, or "" before the first parse.
func (s *Session) RootType() string {
	root := s.Root()
	if root == nil {
		return ""
	}
	return root.Type()
}

func (s *Session) HasErrors() bool {
	root := s.Root()
	return root != nil && root.HasError()
}

// Pending reports how many edits were recorded since the last parse.
func (s *Session) Pending() int { return s.edits }

func (s *Session) Close() error {
	if s.tree != nil {
		s.tree.Close()
		s.tree = nil
	}
	if s.parser != nil {
		s.parser.Close()
		s.parser = nil
	}
	return nil
}

// EditInput converts d into a tree-sitter edit.
func EditInput(d buffer.EditDelta) sitter.EditInput {
	return sitter.EditInput{
		StartIndex:  uint32(d.StartByte),
		OldEndIndex: uint32(d.OldEndByte),
		NewEndIndex: uint32(d.NewEndByte),
		StartPoint:  Point(d.Start),
		OldEndPoint: Point(d.OldEnd),
		NewEndPoint: Point(d.NewEnd),
	}
}

// Point converts a code-unit position into a tree-sitter point.
func Point(p buffer.Pos) sitter.Point {
	return sitter.Point{
		Row:    uint32(p.Line),
		Column: uint32(p.Col * buffer.UnitSize),
	}
}

// PosFromPoint converts a tree-sitter point back into a code-unit position.
func PosFromPoint(p sitter.Point) buffer.Pos {
	return buffer.Pos{
		Line: int(p.Row),
		Col:  int(p.Column) / buffer.UnitSize,
	}
}

// offsetter is implemented by buffers that can map positions to offsets
// without a scan.
type offsetter interface {
	ByteOffset(line, col int) int
}

// input serves src to tree-sitter as little-endian UTF-16, one line (plus its
// break) per read.
func input(src buffer.LineSource) sitter.Input {
	return sitter.Input{
		Encoding: sitter.InputEncodingUTF16,
		Read: func(offset uint32, at sitter.Point) []byte {
			p, ok := trustPoint(src, offset, at)
			if !ok {
				var err error
				p, err = buffer.PosFromByteOffset(src, int(offset), buffer.OffsetError)
				if err != nil {
					return nil
				}
			}
			return readFrom(src, p)
		},
	}
}

// trustPoint reports whether the point tree-sitter passed along matches offset.
func trustPoint(src buffer.LineSource, offset uint32, at sitter.Point) (buffer.Pos, bool) {
	p := PosFromPoint(at)
	if p.Line >= src.LineCount() || p.Col > src.LineLen(p.Line) {
		return p, false
	}
	o, ok := src.(offsetter)
	if !ok {
		return p, false
	}
	return p, o.ByteOffset(p.Line, p.Col) == int(offset)
}

func readFrom(src buffer.LineSource, p buffer.Pos) []byte {
	line, err := src.Line(p.Line)
	if err != nil {
		return nil
	}
	chunk := line[p.Col:]
	last := p.Line == src.LineCount()-1

	out := make([]byte, 0, (len(chunk)+1)*buffer.UnitSize)
	for _, u := range chunk {
		out = binary.LittleEndian.AppendUint16(out, u)
	}
	if !last {
		out = binary.LittleEndian.AppendUint16(out, '\n')
	}
	return out
}
