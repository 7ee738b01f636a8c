package ui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"fits", "Jazz Night", 20, "Jazz Night"},
		{"trims", "  Jazz  ", 10, "Jazz"},
		{"ellipsis", "Jazz at the Philharmonic", 10, "Jazz at t…"},
		{"no limit", "Jazz", 0, "Jazz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.limit); got != tt.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTruncateWideGlyphs(t *testing.T) {
	got := truncate("東京ドーム公演", 7)
	if w := runewidth.StringWidth(got); w > 7 {
		t.Fatalf("truncate produced %q with width %d, want <= 7", got, w)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("truncate(%q) missing ellipsis", got)
	}
}

func TestFit(t *testing.T) {
	if got := fit("Jazz", 8); got != "Jazz    " {
		t.Fatalf("fit = %q, want padded to 8", got)
	}
	if w := runewidth.StringWidth(fit("The Blue Note Orchestra", 8)); w != 8 {
		t.Fatalf("fit width = %d, want 8", w)
	}
}

func TestWrapWords(t *testing.T) {
	got := wrapWords("Lakers vs. Warriors at Crypto.com Arena", 16)
	want := []string{"Lakers vs.", "Warriors at", "Crypto.com Arena"}
	if len(got) != len(want) {
		t.Fatalf("wrapWords = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
	if got := wrapWords("", 10); len(got) != 1 || got[0] != "" {
		t.Fatalf("wrapWords(empty) = %q, want one empty line", got)
	}
}
