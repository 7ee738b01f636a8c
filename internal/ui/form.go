package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/eventscout/internal/config"
	"github.com/five82/eventscout/internal/prefs"
	"github.com/five82/eventscout/internal/search"
)

type formField int

const (
	fieldKeyword formField = iota
	fieldDistance
	fieldCategory
	fieldLocation
	fieldAutoDetect
	fieldCount
)

var fieldLabels = [fieldCount]string{"Keyword", "Distance", "Category", "Location", "Auto-detect"}

// fieldByName maps the form names reported by validation to fields.
var fieldByName = map[string]formField{
	"keyword":    fieldKeyword,
	"distance":   fieldDistance,
	"category":   fieldCategory,
	"location":   fieldLocation,
	"autoDetect": fieldAutoDetect,
}

// searchForm is the criteria form: three text inputs, a category selector
// and the auto-detect checkbox.
type searchForm struct {
	keyword  textinput.Model
	distance textinput.Model
	location textinput.Model

	categories []string
	category   int
	autoDetect bool

	field     formField
	violation string
}

func newSearchForm(categories []string, p prefs.Prefs, defaultDistance float64) searchForm {
	if len(categories) == 0 {
		categories = []string{config.DefaultCategory}
	}
	f := searchForm{
		keyword:    newInput("Artist, team or event", 48),
		distance:   newInput(strconv.FormatFloat(defaultDistance, 'f', -1, 64), 8),
		location:   newInput("Address or city", 40),
		categories: categories,
		autoDetect: p.AutoDetect,
	}
	for i, c := range categories {
		if c == p.Category {
			f.category = i
		}
	}
	if !p.AutoDetect {
		f.location.SetValue(p.Location)
	}
	return f
}

func newInput(placeholder string, width int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.Width = width
	return ti
}

// criteria reads the current field values.
func (f searchForm) criteria(defaultDistance float64) search.Criteria {
	c := search.Criteria{
		Keyword:    f.keyword.Value(),
		Distance:   search.ParseDistance(f.distance.Value(), defaultDistance),
		Category:   f.categoryName(),
		AutoDetect: f.autoDetect,
	}
	if !f.autoDetect {
		c.RawLocation = f.location.Value()
	}
	return c
}

func (f searchForm) categoryName() string {
	if f.category < 0 || f.category >= len(f.categories) {
		return config.DefaultCategory
	}
	return f.categories[f.category]
}

// focusField moves the caret to field, skipping the disabled location input.
func (f *searchForm) focusField(field formField) tea.Cmd {
	if field == fieldLocation && f.autoDetect {
		field = fieldAutoDetect
	}
	f.field = field
	f.keyword.Blur()
	f.distance.Blur()
	f.location.Blur()
	if in := f.input(field); in != nil {
		return in.Focus()
	}
	return nil
}

func (f *searchForm) blur() {
	f.keyword.Blur()
	f.distance.Blur()
	f.location.Blur()
}

// step moves focus by delta and reports false when it would leave the form.
func (f *searchForm) step(delta int) (tea.Cmd, bool) {
	next := int(f.field) + delta
	if next == int(fieldLocation) && f.autoDetect {
		next += delta
	}
	if next < 0 || next >= int(fieldCount) {
		return nil, false
	}
	return f.focusField(formField(next)), true
}

func (f *searchForm) input(field formField) *textinput.Model {
	switch field {
	case fieldKeyword:
		return &f.keyword
	case fieldDistance:
		return &f.distance
	case fieldLocation:
		return &f.location
	default:
		return nil
	}
}

func (f *searchForm) cycleCategory(delta int) {
	n := len(f.categories)
	f.category = ((f.category+delta)%n + n) % n
}

// toggleAutoDetect flips the checkbox. Checking it clears and disables the
// location input.
func (f *searchForm) toggleAutoDetect() {
	f.autoDetect = !f.autoDetect
	if f.autoDetect {
		f.location.SetValue("")
		f.location.Blur()
	}
}

// showViolation focuses the offending field and keeps the message for display.
func (f *searchForm) showViolation(verr *search.ValidationError) tea.Cmd {
	f.violation = verr.Message
	if field, ok := fieldByName[verr.Field]; ok {
		return f.focusField(field)
	}
	return nil
}

// update forwards a message to the focused control.
func (f *searchForm) update(msg tea.Msg) tea.Cmd {
	keyMsg, isKey := msg.(tea.KeyMsg)
	switch f.field {
	case fieldCategory:
		if !isKey {
			return nil
		}
		switch keyMsg.String() {
		case "left", "h":
			f.cycleCategory(-1)
		case "right", "l", " ":
			f.cycleCategory(1)
		}
		return nil
	case fieldAutoDetect:
		if isKey && (keyMsg.String() == " " || keyMsg.String() == "x") {
			f.toggleAutoDetect()
		}
		return nil
	}
	in := f.input(f.field)
	if in == nil {
		return nil
	}
	if isKey {
		f.violation = ""
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return cmd
}

func (f searchForm) prefs(current prefs.Prefs) prefs.Prefs {
	current.Category = f.categoryName()
	current.AutoDetect = f.autoDetect
	current.Location = strings.TrimSpace(f.location.Value())
	if f.autoDetect {
		current.Location = ""
	}
	return current
}

// view renders one line per field plus the violation line.
func (f searchForm) view(styles Styles, focused bool) string {
	label := func(field formField) string {
		text := padRight(fieldLabels[field], 12)
		if focused && f.field == field {
			return styles.AccentText.Bold(true).Render("› " + text)
		}
		return styles.MutedText.Render("  " + text)
	}

	var b strings.Builder
	b.WriteString(label(fieldKeyword) + f.keyword.View() + "\n")
	b.WriteString(label(fieldDistance) + f.distance.View() + styles.FaintText.Render(" km") + "\n")

	cat := "‹ " + f.categoryName() + " ›"
	if focused && f.field == fieldCategory {
		b.WriteString(label(fieldCategory) + styles.AccentText.Render(cat) + "\n")
	} else {
		b.WriteString(label(fieldCategory) + styles.Text.Render(cat) + "\n")
	}

	if f.autoDetect {
		b.WriteString(label(fieldLocation) + styles.FaintText.Render("(using detected location)") + "\n")
	} else {
		b.WriteString(label(fieldLocation) + f.location.View() + "\n")
	}

	box := "[ ]"
	if f.autoDetect {
		box = "[x]"
	}
	b.WriteString(label(fieldAutoDetect) + styles.Text.Render(box+" Auto-detect my location"))

	if f.violation != "" {
		b.WriteString("\n" + styles.DangerText.Render("  "+f.violation))
	}
	return b.String()
}
