package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"cellmap/internal/system"
	"cellmap/internal/textview"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		if m.showHelp && m.helpW != m.width {
			return m, renderHelpCmd(m.width)
		}
		return m, nil
	case watchStartedMsg:
		m.watcher = msg.w
		m.watchCh = msg.ch
		return m, watchSubscribeCmd(m.watchCh)
	case fileChangedMsg:
		return m, tea.Batch(loadFileCmd(m.path), watchSubscribeCmd(m.watchCh))
	case fileLoadedMsg:
		if msg.err != nil {
			system.Logger.Debug("reload failed", "path", m.path, "err", msg.err)
			m.notice = "reload failed: " + msg.err.Error()
			m.failed = true
			return m, nil
		}
		m.view.SetLines(msg.lines)
		m.layout()
		m.refreshMatches()
		m.notice = "reloaded"
		m.failed = false
		return m, nil
	case helpRenderedMsg:
		m.helpOut = msg.out
		m.helpW = msg.width
		return m, nil
	case noticeMsg:
		m.notice = string(msg)
		m.failed = false
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		if m.showHelp {
			switch msg.String() {
			case "?", "esc", "q":
				m.showHelp = false
			}
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
	return m, tea.Quit
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v := m.view
	m.notice = ""
	m.failed = false
	switch {
	case key.Matches(msg, keys.Quit):
		return m.quit()
	case key.Matches(msg, keys.Help):
		m.showHelp = true
		if m.helpOut == "" || m.helpW != m.width {
			return m, renderHelpCmd(m.width)
		}
	case key.Matches(msg, keys.Filter):
		m.filtering = true
		m.filter.SetValue(m.pattern)
		m.filter.CursorEnd()
		m.layout()
		cmd := m.filter.Focus()
		return m, cmd
	case key.Matches(msg, keys.NextMatch):
		m.jumpToMatch()
	case key.Matches(msg, keys.TabDown):
		v.SetTabStride(v.TabStride() - 1)
		v.EnsureVisible()
	case key.Matches(msg, keys.TabUp):
		v.SetTabStride(v.TabStride() + 1)
		v.EnsureVisible()
	case key.Matches(msg, keys.SelUp):
		v.StartSelection()
		v.MoveUp()
	case key.Matches(msg, keys.SelDown):
		v.StartSelection()
		v.MoveDown()
	case key.Matches(msg, keys.SelLeft):
		v.StartSelection()
		v.MoveLeft()
	case key.Matches(msg, keys.SelRight):
		v.StartSelection()
		v.MoveRight()
	case key.Matches(msg, keys.Up):
		v.ClearSelection()
		v.MoveUp()
	case key.Matches(msg, keys.Down):
		v.ClearSelection()
		v.MoveDown()
	case key.Matches(msg, keys.Left):
		v.ClearSelection()
		v.MoveLeft()
	case key.Matches(msg, keys.Right):
		v.ClearSelection()
		v.MoveRight()
	case key.Matches(msg, keys.Home):
		v.ClearSelection()
		v.Home()
	case key.Matches(msg, keys.End):
		v.ClearSelection()
		v.End()
	case key.Matches(msg, keys.PageUp):
		v.ClearSelection()
		v.PageUp()
	case key.Matches(msg, keys.PageDown):
		v.ClearSelection()
		v.PageDown()
	}
	return m, nil
}

func (m model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.layout()
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		m.pattern = m.filter.Value()
		m.layout()
		if err := m.refreshMatches(); err != nil {
			m.notice = err.Error()
			m.failed = true
			return m, nil
		}
		m.jumpToMatch()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

// refreshMatches re-runs the current pattern over the buffer.
func (m *model) refreshMatches() error {
	if m.pattern == "" {
		m.matches = nil
		return nil
	}
	res, err := m.matcher.Find(m.pattern, m.lineStrings())
	if err != nil {
		m.matches = nil
		return err
	}
	m.matches = res
	return nil
}

// jumpToMatch moves to the first match after the cursor, wrapping around.
func (m *model) jumpToMatch() {
	if len(m.matches) == 0 {
		if m.pattern != "" {
			m.notice = fmt.Sprintf("no match for %q", m.pattern)
		}
		return
	}
	m.failed = false
	cur := m.view.Cursor()
	target := m.matches[0]
	for _, r := range m.matches {
		p := textview.Position{Line: r.Index, Char: max(r.FirstRune(), 0)}
		if cur.Less(p) {
			target = r
			break
		}
	}
	m.view.ClearSelection()
	m.view.MoveTo(textview.Position{Line: target.Index, Char: max(target.FirstRune(), 0)})
	m.notice = fmt.Sprintf("%d matches", len(m.matches))
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.filtering {
		return m, nil
	}
	v := m.view
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		for range 3 {
			v.MoveUp()
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		for range 3 {
			v.MoveDown()
		}
		return m, nil
	}
	z := zone.Get(textZone)
	if z == nil || !z.InBounds(msg) {
		return m, nil
	}
	x, y := z.Pos(msg)
	if x < 0 || y < 0 {
		return m, nil
	}
	pos, _ := v.CursorFromViewport(x, y)
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		v.ClearSelection()
		v.MoveTo(pos)
		v.StartSelection()
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		v.MoveTo(pos)
	}
	return m, nil
}
