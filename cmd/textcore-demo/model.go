package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/smacker/go-tree-sitter/golang"

	"github.com/iw2rmb/textcore/buffer"
	"github.com/iw2rmb/textcore/config"
	"github.com/iw2rmb/textcore/cursor"
	"github.com/iw2rmb/textcore/lspsync"
	"github.com/iw2rmb/textcore/syntax"
)

// configMsg carries a reloaded config from the watcher goroutine.
type configMsg struct{ cfg config.Config }

type configErrMsg struct{ err error }

type model struct {
	cfg    config.Config
	keys   keyMap
	styles styles

	cur   *cursor.Cursor
	parse *syntax.Session // nil for plain text
	lsp   *lspsync.Tracker

	viewport viewport.Model
	width    int
	height   int

	lastOp    string
	lastDelta buffer.EditDelta
	status    string
	statusErr bool
}

func newModel(cfg config.Config, name, text string) (model, error) {
	m := model{
		cfg:      cfg,
		keys:     defaultKeyMap(),
		styles:   defaultStyles(),
		cur:      cursor.NewBackend(cfg.BufferBackend()),
		lsp:      lspsync.NewTracker(documentURI(name)),
		viewport: viewport.New(0, 0),
	}

	deltas, err := m.cur.Load(name, text)
	if err != nil {
		return model{}, err
	}
	m.lastOp, m.lastDelta = "load", deltas[len(deltas)-1]
	m.lsp.RecordFull(buffer.Text(m.cur.Lines()))
	m.lsp.Flush()

	if err := m.setLanguage(cfg.Language); err != nil {
		return model{}, err
	}
	m.rebuildContent()
	return m, nil
}

func documentURI(name string) string {
	if name == "" {
		return "untitled:textcore"
	}
	if abs, err := filepath.Abs(name); err == nil {
		name = abs
	}
	return "file://" + filepath.ToSlash(name)
}

func (m *model) setLanguage(lang string) error {
	if m.parse != nil {
		_ = m.parse.Close()
		m.parse = nil
	}
	if lang != "go" {
		return nil
	}

	sess, err := syntax.NewSession(golang.GetLanguage())
	if err != nil {
		return err
	}
	if err := sess.Parse(context.Background(), m.cur.Lines()); err != nil {
		_ = sess.Close()
		return err
	}
	m.parse = sess
	return nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-1, 0)
		m.rebuildContent()
		m.followCursor()
		return m, nil
	case configMsg:
		m.applyConfig(msg.cfg)
		m.rebuildContent()
		return m, nil
	case configErrMsg:
		m.setStatus(msg.err.Error(), true)
		return m, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)
		m.rebuildContent()
		m.followCursor()
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) {
	c := m.cur
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.WordLeft):
		c.MoveWordLeft()
	case key.Matches(msg, m.keys.WordRight):
		c.MoveWordRight()
	case key.Matches(msg, m.keys.Left):
		c.MoveLeft()
	case key.Matches(msg, m.keys.Right):
		c.MoveRight()
	case key.Matches(msg, m.keys.Up):
		c.MoveUp()
	case key.Matches(msg, m.keys.Down):
		c.MoveDown()
	case key.Matches(msg, m.keys.DocStart):
		c.MoveToStartOfFile()
	case key.Matches(msg, m.keys.DocEnd):
		c.MoveToEndOfFile()
	case key.Matches(msg, m.keys.Home):
		c.MoveToStartOfLine()
	case key.Matches(msg, m.keys.End):
		c.MoveToEndOfLine()
	case key.Matches(msg, m.keys.PageUp):
		c.PageUp(m.cfg.PageSize)
	case key.Matches(msg, m.keys.PageDown):
		c.PageDown(m.cfg.PageSize)

	case key.Matches(msg, m.keys.Backspace):
		d, err := c.EraseLeft()
		m.apply("erase left", d, "", err)
	case key.Matches(msg, m.keys.Delete):
		d, err := c.EraseRight()
		m.apply("erase right", d, "", err)
	case key.Matches(msg, m.keys.Enter):
		d, err := c.NewLine()
		m.apply("newline", d, "\n", err)
	case key.Matches(msg, m.keys.Tab):
		d, err := c.Insert("\t")
		m.apply("insert", d, "\t", err)
	case key.Matches(msg, m.keys.Clear):
		m.apply("clear", c.Clear(), "", nil)

	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		text := string(msg.Runes)
		if text == "" {
			return
		}
		d, err := c.Insert(text)
		m.apply("insert", d, text, err)
	}
}

// apply forwards one edit to the parser and LSP collaborators.
func (m *model) apply(op string, d buffer.EditDelta, text string, err error) {
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if d.IsEmpty() {
		return
	}
	m.lastOp, m.lastDelta = op, d

	if m.parse != nil {
		m.parse.Edit(d)
		if err := m.parse.Reparse(context.Background(), m.cur.Lines()); err != nil {
			m.setStatus(err.Error(), true)
		}
	}
	m.lsp.Record(d, text)
	m.lsp.Flush()
}

func (m *model) applyConfig(cfg config.Config) {
	prev := m.cfg
	m.cfg = cfg
	if cfg.Language != prev.Language {
		if err := m.setLanguage(cfg.Language); err != nil {
			m.setStatus(err.Error(), true)
			return
		}
	}
	if cfg.Backend != prev.Backend {
		m.setStatus(fmt.Sprintf("backend %q applies on restart", cfg.Backend), false)
		return
	}
	m.setStatus("config reloaded", false)
}

func (m *model) setStatus(s string, isErr bool) {
	m.status, m.statusErr = s, isErr
}

func (m *model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row := m.cur.Position().Line
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
	} else if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

func (m model) View() string {
	return m.viewport.View() + "\n" + m.renderStatus()
}
