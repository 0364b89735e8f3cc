package tui

import (
	"strings"
	"testing"
)

func TestEditRune(t *testing.T) {
	tests := []struct {
		name string
		text string
		key  string
		want string
	}{
		{"append", "tre", "e", "tree"},
		{"space", "tree", " ", "tree "},
		{"backspace", "tree", "backspace", "tre"},
		{"backspace empty", "", "backspace", ""},
		{"backspace multibyte", "café", "backspace", "caf"},
		{"ignore named key", "tree", "enter", "tree"},
		{"ignore ctrl", "tree", "ctrl+a", "tree"},
		{"unicode", "", "é", "é"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := editRune(tc.text, tc.key); got != tc.want {
				t.Errorf("editRune(%q, %q) = %q, want %q", tc.text, tc.key, got, tc.want)
			}
		})
	}
}

func TestEditRuneMaxLen(t *testing.T) {
	full := strings.Repeat("a", maxInputLen)
	if got := editRune(full, "b"); got != full {
		t.Errorf("expected input capped at %d runes", maxInputLen)
	}
}

func TestTruncateToHeight(t *testing.T) {
	s := "a\nb\nc\nd"
	if got := truncateToHeight(s, 2); got != "a\nb\n" {
		t.Errorf("truncateToHeight(2) = %q", got)
	}
	if got := truncateToHeight(s, 10); got != s {
		t.Errorf("truncateToHeight(10) = %q, want unchanged", got)
	}
	if got := truncateToHeight(s, 0); got != s {
		t.Errorf("truncateToHeight(0) = %q, want unchanged", got)
	}
}

func TestRenderSearchInput(t *testing.T) {
	if got := renderSearchInput("", false, 0); !strings.Contains(got, "search projects...") {
		t.Errorf("expected placeholder, got %q", got)
	}
	if got := renderSearchInput("tree", false, 0); !strings.Contains(got, "tree") {
		t.Errorf("expected active query, got %q", got)
	}
	if got := renderSearchInput("tr", true, 0); !strings.Contains(got, "tr") || !strings.Contains(got, "█") {
		t.Errorf("expected input with cursor, got %q", got)
	}
}
