package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/eventscout/internal/search"
)

func (m Model) renderMain(body func() string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body(),
		m.renderStatusBar(),
	)
}

// panelStyles returns text styles painted on the panel background.
func (m Model) panelStyles(focused bool) (Styles, BgStyle) {
	bg := m.theme.Background
	if focused {
		bg = m.theme.FocusBg
	}
	return m.theme.Styles().WithBackground(bg), NewBgStyle(bg)
}

// renderSearch lays out the form above the results and detail panels.
func (m Model) renderSearch() string {
	d := m.layout()

	formFocused := m.focus == focusForm
	formStyles, _ := m.panelStyles(formFocused)
	form := m.renderBox("Search", m.form.view(formStyles, formFocused), m.width, d.formH, formFocused)

	resultsFocused := m.focus == focusResults
	results := m.renderBox(m.resultsTitle(),
		m.renderResults(d.resultsW-2, d.resultsH-2, resultsFocused),
		d.resultsW, d.resultsH, resultsFocused)

	body := results
	if m.panels.detail != nil && m.panels.detail.visible {
		detailFocused := m.focus == focusDetail
		detail := m.renderBox(m.detailTitle(), m.detailViewport.View(), d.detailW, d.detailH, detailFocused)
		if d.sideBySide {
			body = lipgloss.JoinHorizontal(lipgloss.Top, results, detail)
		} else {
			body = lipgloss.JoinVertical(lipgloss.Left, results, detail)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, form, body)
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	left := bg.Render("eventscout", styles.Logo)
	if m.busy() {
		left += bg.Spaces(2) + m.spinner.View() + bg.Render(" "+m.activity(), styles.AccentText)
	} else if m.phase != search.PhaseIdle {
		left += bg.Spaces(2) + bg.Render(m.phase.String(), m.phaseStyle(styles))
	}

	right := m.healthLabel(styles, bg) + bg.Spaces(2) + bg.Render(m.theme.Name, styles.FaintText) + bg.Spaces(1)
	return bg.SpreadLine(bg.Spaces(1)+left, right, m.width)
}

// activity names what the spinner is waiting for.
func (m Model) activity() string {
	if m.phase.Busy() {
		return m.phase.String()
	}
	if m.panels.detail != nil && m.panels.detail.loading {
		return "loading event"
	}
	return "loading venue"
}

func (m Model) phaseStyle(styles Styles) lipgloss.Style {
	switch m.phase {
	case search.PhaseFailed:
		return styles.DangerText
	case search.PhaseAborted:
		return styles.WarningText
	default:
		return styles.MutedText
	}
}

func (m Model) healthLabel(styles Styles, bg BgStyle) string {
	switch {
	case m.store == nil:
		return ""
	case !m.hasSnapshot || (!m.snapshot.HasHealth && m.snapshot.ConsecutiveFailures == 0):
		return bg.Render("backend …", styles.FaintText)
	case m.snapshot.IsOffline():
		return bg.Render("backend offline", styles.DangerText)
	case m.snapshot.Healthy():
		return bg.Render("backend ok", styles.SuccessText)
	default:
		return bg.Render("backend degraded", styles.WarningText)
	}
}

func (m Model) renderStatusBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	if m.flash.text != "" {
		style := styles.MutedText
		if m.flash.isError {
			style = styles.DangerText
		}
		return bg.FillLine(bg.Spaces(1)+bg.Render(m.flash.text, style), m.width)
	}

	var bindings []key.Binding
	switch {
	case m.logs.visible:
		bindings = []key.Binding{m.keys.Filter, m.keys.Escape, m.keys.Quit}
	case m.focus == focusForm:
		bindings = []key.Binding{m.keys.Submit, m.keys.NextPanel, m.keys.PrevOption, m.keys.Toggle, m.keys.Escape}
	default:
		bindings = m.keys.ShortHelp()
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, bg.Render(h.Key, styles.AccentText)+bg.Spaces(1)+bg.Render(h.Desc, styles.FaintText))
	}
	return bg.FillLine(bg.Spaces(1)+bg.Join(parts, "  "), m.width)
}

func (m Model) resultsTitle() string {
	r := m.panels.results
	if r == nil || !r.visible || len(r.rows) == 0 {
		return "Results"
	}
	return fmt.Sprintf("Results (%d)", len(r.rows))
}

func (m Model) detailTitle() string {
	if d, ok := m.panels.detailLoaded(); ok && d.Title != "" {
		return d.Title
	}
	return "Event"
}

// placeholder is a muted single line for empty panels.
func placeholder(text string, width int, styles Styles, bg BgStyle) string {
	lines := wrapWords(text, width)
	for i, l := range lines {
		lines[i] = bg.FillLine(bg.Render(l, styles.MutedText), width)
	}
	return strings.Join(lines, "\n")
}
