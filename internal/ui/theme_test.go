package ui

import (
	"testing"

	"github.com/five82/eventscout/internal/events"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 || names[0] != "Nightfox" {
		t.Fatalf("ThemeNames() = %v, want Nightfox first of 3", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Kanagawa" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Kanagawa", got)
	}
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want wrap to Nightfox", got)
	}
	if got := NextTheme("unknown"); got != "Nightfox" {
		t.Fatalf("NextTheme(unknown) = %q, want Nightfox", got)
	}
}

func TestGetTheme_FallsBackToNightfox(t *testing.T) {
	if got := GetTheme("Dracula").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Dracula).Name = %q, want Nightfox", got)
	}
}

func TestThemesDefineEveryBadgeColor(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, c := range []events.Color{events.ColorGreen, events.ColorRed, events.ColorBlack, events.ColorOrange} {
			if th.BadgeColors[c] == "" {
				t.Fatalf("theme %s has no colour for badge %q", name, c)
			}
		}
	}
}

func TestContrastText(t *testing.T) {
	if got := contrastText("#000000"); got != "#f5f5f5" {
		t.Fatalf("contrastText(black) = %q, want light text", got)
	}
	if got := contrastText("#f5f5f5"); got != "#101010" {
		t.Fatalf("contrastText(white) = %q, want dark text", got)
	}
	if got := contrastText("not-a-colour"); got != "#ffffff" {
		t.Fatalf("contrastText(invalid) = %q, want #ffffff", got)
	}
}
