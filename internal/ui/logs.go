package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/eventscout/internal/logtail"
)

// logView is the session log overlay.
type logView struct {
	visible   bool
	lines     []logtail.Line
	err       error
	filtering bool
	filter    textinput.Model
	viewport  viewport.Model
}

func newLogView() logView {
	ti := textinput.New()
	ti.Placeholder = "Filter logs..."
	ti.CharLimit = 100
	return logView{filter: ti, viewport: viewport.New(0, 0)}
}

func (l *logView) setLines(lines []logtail.Line, err error) {
	l.lines = lines
	l.err = err
}

func (l *logView) updateFilter(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.filter, cmd = l.filter.Update(msg)
	return cmd
}

// matching returns the lines that pass the filter.
func (l logView) matching() []logtail.Line {
	query := l.filter.Value()
	out := make([]logtail.Line, 0, len(l.lines))
	for _, line := range l.lines {
		if line.Matches(query) {
			out = append(out, line)
		}
	}
	return out
}

func (m Model) handleLogsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.logs.filtering {
		switch msg.String() {
		case "enter":
			m.logs.filtering = false
			m.logs.filter.Blur()
			return m, nil
		case "esc":
			m.logs.filtering = false
			m.logs.filter.Blur()
			m.logs.filter.SetValue("")
			return m, nil
		}
		return m, m.logs.updateFilter(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Filter):
		m.logs.filtering = true
		return m, m.logs.filter.Focus()
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Logs):
		m.logs.visible = false
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Top):
		m.logs.viewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.logs.viewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.logs.viewport, cmd = m.logs.viewport.Update(msg)
	return m, cmd
}

// syncLogViewport sizes the log viewport and refreshes its content, staying
// pinned to the bottom while the user has not scrolled up.
func (m *Model) syncLogViewport() {
	if !m.ready || !m.logs.visible {
		return
	}
	styles, bg := m.panelStyles(true)
	vp := &m.logs.viewport
	vp.Width = maxInt(m.width-2, 1)
	vp.Height = maxInt(m.height-5, 1)
	follow := vp.AtBottom() || vp.TotalLineCount() == 0
	vp.SetContent(m.renderLogContent(vp.Width, styles, bg))
	if follow {
		vp.GotoBottom()
	}
}

// renderLogs renders the log view in place of the search screen.
func (m Model) renderLogs() string {
	_, bg := m.panelStyles(true)
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)

	status := fmt.Sprintf("%d lines  %s", len(m.logs.lines), m.cfg.LogPath)
	if m.logs.filtering || m.logs.filter.Value() != "" {
		status = "filter: " + m.logs.filter.View()
	}
	content := m.logs.viewport.View() + "\n" + bg.FillLine(bg.Render(status, styles.FaintText), m.logs.viewport.Width)
	return m.renderBox("Session Log", content, m.width, maxInt(m.height-2, 3), true)
}

func (m Model) renderLogContent(width int, styles Styles, bg BgStyle) string {
	if m.logs.err != nil {
		return dangerBlock("Cannot read log: "+m.logs.err.Error(), width, styles, bg)
	}
	lines := m.logs.matching()
	if len(lines) == 0 {
		if m.logs.filter.Value() != "" {
			return placeholder("No log lines match the filter", width, styles, bg)
		}
		return placeholder("No log entries", width, styles, bg)
	}
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(bg.Render(fmt.Sprintf("%4d │ ", i+1), styles.FaintText))
		b.WriteString(bg.Render(truncate(strings.ReplaceAll(line.Text, "\t", "  "), maxInt(width-7, 1)), levelStyle(line.Level, styles)))
	}
	return b.String()
}

func levelStyle(level logtail.Level, styles Styles) lipgloss.Style {
	switch level {
	case logtail.LevelError:
		return styles.DangerText
	case logtail.LevelWarn:
		return styles.WarningText
	case logtail.LevelDebug:
		return styles.FaintText
	case logtail.LevelInfo:
		return styles.Text
	default:
		return styles.MutedText
	}
}
