package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iw2rmb/textcore/buffer"
	"github.com/iw2rmb/textcore/internal/grapheme"
)

func (m model) renderContent() string {
	lines := m.cur.Lines()
	cur := m.cur.Position()
	digits := len(strconv.Itoa(lines.LineCount()))

	var sb strings.Builder
	for i := 0; i < lines.LineCount(); i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if m.cfg.ShowLineNumbers {
			num := fmt.Sprintf("%*d ", digits, i+1)
			if i == cur.Line {
				sb.WriteString(m.styles.LineNumActive.Render(num))
			} else {
				sb.WriteString(m.styles.LineNum.Render(num))
			}
		}

		line, err := lines.Line(i)
		if err != nil {
			continue
		}
		cursorCol := -1
		if i == cur.Line {
			cursorCol = cur.Col
		}
		sb.WriteString(m.renderLine(line, cursorCol))
	}
	return sb.String()
}

// renderLine draws line, highlighting the cell that starts at cursorCol. A
// cursor at end of line is drawn as a trailing blank.
func (m model) renderLine(line buffer.Line, cursorCol int) string {
	var sb strings.Builder
	for _, cell := range grapheme.Cells(line, m.cfg.TabWidth) {
		// A cursor inside a cluster highlights the whole cluster.
		if cursorCol >= cell.Col && cursorCol < cell.Col+cell.Units {
			sb.WriteString(m.styles.Cursor.Render(cell.Text))
			continue
		}
		sb.WriteString(m.styles.Text.Render(cell.Text))
	}
	if cursorCol == line.Len() {
		sb.WriteString(m.styles.Cursor.Render(" "))
	}
	return sb.String()
}

func (m model) renderStatus() string {
	pos := m.cur.Position()
	line, _ := m.cur.Lines().Line(pos.Line)
	cell := grapheme.CellWidth(line, pos.Col, m.cfg.TabWidth)

	name := m.cur.Name()
	if name == "" {
		name = "[untitled]"
	}
	parts := []string{
		name,
		fmt.Sprintf("%d:%d (cell %d, byte %d)", pos.Line+1, pos.Col+1, cell+1, m.cur.ByteOffset()),
		m.backendSummary(),
		fmt.Sprintf("%s %s", m.lastOp, formatDelta(m.lastDelta)),
		fmt.Sprintf("lsp v%d", m.lsp.Version()),
	}
	if m.parse != nil {
		tree := "ok"
		if m.parse.HasErrors() {
			tree = "errors"
		}
		parts = append(parts, "syntax "+tree)
	}

	style := m.styles.Status
	if m.status != "" {
		parts = append(parts, m.status)
		if m.statusErr {
			style = m.styles.StatusError
		}
	}
	bar := " " + strings.Join(parts, " │ ")
	if m.width > 0 {
		style = style.Width(m.width).MaxWidth(m.width)
	}
	return style.Render(bar)
}

func (m model) backendSummary() string {
	insp, ok := m.cur.Inspect()
	if !ok {
		return "?"
	}
	st := insp.Stats()
	return fmt.Sprintf("%s %dL %dB", insp.Backend(), st.Lines, st.Bytes)
}

func formatDelta(d buffer.EditDelta) string {
	return fmt.Sprintf("[%d,%d)->[%d,%d) %d:%d-%d:%d->%d:%d",
		d.StartByte, d.OldEndByte, d.StartByte, d.NewEndByte,
		d.Start.Line, d.Start.Col, d.OldEnd.Line, d.OldEnd.Col, d.NewEnd.Line, d.NewEnd.Col)
}
