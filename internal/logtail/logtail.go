package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Level is the severity parsed from a log line.
type Level string

const (
	LevelUnknown Level = ""
	LevelDebug   Level = "DEBUG"
	LevelInfo    Level = "INFO"
	LevelWarn    Level = "WARN"
	LevelError   Level = "ERROR"
)

// Line is one log line with its parsed severity.
type Line struct {
	Text  string
	Level Level
}

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns the whole file.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var all []string
		for scanner.Scan() {
			all = append(all, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return all, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// ReadLines is Read followed by ParseLine on every line.
func ReadLines(path string, maxLines int) ([]Line, error) {
	raw, err := Read(path, maxLines)
	if err != nil {
		return nil, err
	}
	out := make([]Line, 0, len(raw))
	for _, r := range raw {
		out = append(out, ParseLine(r))
	}
	return out, nil
}

// ParseLine extracts the level from a zap console or JSON line.
func ParseLine(raw string) Line {
	line := Line{Text: raw}
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") {
		var entry struct {
			Level string `json:"level"`
		}
		if json.Unmarshal([]byte(trimmed), &entry) == nil {
			line.Level = normalizeLevel(entry.Level)
		}
		return line
	}
	// Console encoder: time<TAB>LEVEL<TAB>...
	fields := strings.SplitN(trimmed, "\t", 3)
	if len(fields) >= 2 {
		line.Level = normalizeLevel(fields[1])
	}
	return line
}

// Matches reports whether the line contains query, ignoring case.
func (l Line) Matches(query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Text), strings.ToLower(query))
}

func normalizeLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR", "DPANIC", "PANIC", "FATAL":
		return LevelError
	default:
		return LevelUnknown
	}
}
