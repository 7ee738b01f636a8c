package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.logs.visible {
		return m.handleLogsKey(msg)
	}
	if m.focus == focusForm {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Logs):
		m.logs.visible = true
		return m, loadLogsCmd(m.cfg.LogPath, logTailLines)
	case key.Matches(msg, m.keys.FocusForm):
		m.focus = focusForm
		return m, m.form.focusField(fieldKeyword)
	case key.Matches(msg, m.keys.NextPanel):
		return m, m.cycleFocus(1)
	case key.Matches(msg, m.keys.PrevPanel):
		return m, m.cycleFocus(-1)
	case key.Matches(msg, m.keys.OpenTickets):
		if d, ok := m.panels.detailLoaded(); ok && d.BuyURL != "" {
			return m, openURLCmd(d.BuyURL)
		}
		return m, nil
	case key.Matches(msg, m.keys.CopyTickets):
		if d, ok := m.panels.detailLoaded(); ok && d.BuyURL != "" {
			return m, copyURLCmd(d.BuyURL)
		}
		return m, nil
	case key.Matches(msg, m.keys.ToggleVenue):
		return m, m.withSpinner(m.toggleVenue())
	}

	switch m.focus {
	case focusResults:
		return m.handleResultsKey(msg)
	case focusDetail:
		return m.handleDetailKey(msg)
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m, m.withSpinner(m.submitSearch())
	case key.Matches(msg, m.keys.Escape):
		m.form.blur()
		m.focus = focusResults
		return m, nil
	case key.Matches(msg, m.keys.NextPanel):
		if cmd, ok := m.form.step(1); ok {
			return m, cmd
		}
		return m, m.cycleFocus(1)
	case key.Matches(msg, m.keys.PrevPanel):
		if cmd, ok := m.form.step(-1); ok {
			return m, cmd
		}
		return m, m.cycleFocus(-1)
	case key.Matches(msg, m.keys.NextField):
		cmd, _ := m.form.step(1)
		return m, cmd
	case key.Matches(msg, m.keys.PrevField):
		cmd, _ := m.form.step(-1)
		return m, cmd
	}
	return m, m.form.update(msg)
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	r := m.panels.results
	if r == nil || len(r.rows) == 0 {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		r.move(-1)
	case key.Matches(msg, m.keys.Down):
		r.move(1)
	case key.Matches(msg, m.keys.Top):
		r.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		r.cursor = len(r.rows) - 1
	case key.Matches(msg, m.keys.Open):
		if row, ok := r.selected(); ok {
			return m, m.withSpinner(m.showDetail(row.ID))
		}
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Open):
		// enter activates the disclosure control
		return m, m.withSpinner(m.toggleVenue())
	case key.Matches(msg, m.keys.Escape):
		m.focus = focusResults
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.detailViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.detailViewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

// cycleFocus moves focus around the ring form, results, detail, skipping
// hidden panels.
func (m *Model) cycleFocus(delta int) tea.Cmd {
	ring := []focusArea{focusForm}
	if m.panels.results != nil && m.panels.results.visible {
		ring = append(ring, focusResults)
	}
	if m.panels.detail != nil && m.panels.detail.visible {
		ring = append(ring, focusDetail)
	}
	idx := 0
	for i, f := range ring {
		if f == m.focus {
			idx = i
		}
	}
	n := len(ring)
	next := ring[((idx+delta)%n+n)%n]
	m.focus = next
	if next != focusForm {
		m.form.blur()
		return nil
	}
	if delta < 0 {
		return m.form.focusField(fieldAutoDetect)
	}
	return m.form.focusField(fieldKeyword)
}
