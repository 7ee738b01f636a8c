package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which results and detail stack.
	LayoutCompactWidth = 100

	// LayoutWideWidth is the minimum width to show the genre column.
	LayoutWideWidth = 80
)

const (
	// DefaultUIInterval is the default UI refresh interval.
	DefaultUIInterval = time.Second

	// logTailLines is how much of the session log the log view reads.
	logTailLines = 200
)

// layoutDims is the geometry of the search screen for the current size.
type layoutDims struct {
	formH      int
	bodyH      int
	sideBySide bool
	resultsW   int
	resultsH   int
	detailW    int
	detailH    int
}

func (m Model) layout() layoutDims {
	formLines := strings.Count(m.form.view(m.theme.Styles(), false), "\n") + 1
	d := layoutDims{formH: formLines + 2}
	// header + status bar
	d.bodyH = maxInt(m.height-2-d.formH, 4)

	detailVisible := m.panels.detail != nil && m.panels.detail.visible
	switch {
	case !detailVisible:
		d.resultsW, d.resultsH = m.width, d.bodyH
	case m.width >= LayoutCompactWidth:
		d.sideBySide = true
		d.resultsW = m.width * 45 / 100
		d.resultsH = d.bodyH
		d.detailW = m.width - d.resultsW
		d.detailH = d.bodyH
	default:
		d.resultsW, d.detailW = m.width, m.width
		d.resultsH = d.bodyH / 2
		d.detailH = d.bodyH - d.resultsH
	}
	return d
}

// renderBox draws a rounded border around content with title set into the
// top edge. Content is clipped to the inner area.
func (m Model) renderBox(title, content string, width, height int, focused bool) string {
	borderColor := m.theme.Border
	bg := m.theme.Background
	if focused {
		borderColor = m.theme.BorderFocus
		bg = m.theme.FocusBg
	}
	innerW := maxInt(width-2, 1)
	innerH := maxInt(height-2, 1)

	body := lipgloss.NewStyle().
		Width(innerW).
		Height(innerH).
		MaxHeight(innerH).
		Background(lipgloss.Color(bg)).
		Render(content)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Render(body)

	if title == "" {
		return box
	}
	lines := strings.Split(box, "\n")
	titleStyle := m.theme.Styles().MutedText
	if focused {
		titleStyle = m.theme.Styles().AccentText.Bold(true)
	}
	lines[0] = boxTop(title, width, lipgloss.NewStyle().Foreground(lipgloss.Color(borderColor)), titleStyle)
	return strings.Join(lines, "\n")
}

func boxTop(title string, width int, border, titleStyle lipgloss.Style) string {
	label := " " + truncate(title, maxInt(width-6, 1)) + " "
	fill := maxInt(width-3-lipgloss.Width(label), 0)
	return border.Render("╭─") + titleStyle.Render(label) + border.Render(strings.Repeat("─", fill)+"╮")
}
