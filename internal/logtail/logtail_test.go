package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "read all (0)", maxLines: 0, expected: expectedAll},
		{name: "read all (negative)", maxLines: -1, expected: expectedAll},
		{name: "read partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "read exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "read more than exists (20)", maxLines: 20, expected: expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "absent.log"), 10)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Level
	}{
		{name: "empty line", input: "", want: LevelUnknown},
		{name: "console info", input: "2026-10-17T10:00:00.000Z\tINFO\tsearch/orchestrator.go:88\tsearch submitted\t{\"search_id\": \"abc\"}", want: LevelInfo},
		{name: "console warn", input: "2026-10-17T10:00:00.000Z\tWARN\tgeo/resolver.go:61\tgeocoding failed", want: LevelWarn},
		{name: "json error", input: `{"level":"error","ts":1.7e9,"msg":"search failed"}`, want: LevelError},
		{name: "json debug", input: `{"level":"debug","msg":"request"}`, want: LevelDebug},
		{name: "malformed json", input: `{"level":`, want: LevelUnknown},
		{name: "plain text", input: "panic: something", want: LevelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLine(tt.input)
			if got.Level != tt.want {
				t.Errorf("ParseLine(%q).Level = %q, want %q", tt.input, got.Level, tt.want)
			}
			if got.Text != tt.input {
				t.Errorf("ParseLine(%q).Text = %q, want input unchanged", tt.input, got.Text)
			}
		})
	}
}

func TestReadLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "eventscout.log")
	body := "2026-10-17T10:00:00.000Z\tINFO\tsearch submitted\n" +
		"2026-10-17T10:00:01.000Z\tERROR\tsearch failed\n"
	if err := os.WriteFile(logPath, []byte(body), 0644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	lines, err := ReadLines(logPath, 200)
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("ReadLines() returned %d lines, want 2", len(lines))
	}
	if lines[0].Level != LevelInfo || lines[1].Level != LevelError {
		t.Fatalf("levels = %q, %q; want INFO, ERROR", lines[0].Level, lines[1].Level)
	}
}

func TestLineMatches(t *testing.T) {
	l := Line{Text: "2026-10-17 WARN geocoding failed for Springfield"}
	if !l.Matches("springfield") {
		t.Fatal("Matches should ignore case")
	}
	if !l.Matches("  ") {
		t.Fatal("blank query should match everything")
	}
	if l.Matches("venue") {
		t.Fatal("Matches(venue) = true, want false")
	}
}
