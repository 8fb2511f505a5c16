package ui

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWrapLines(t *testing.T) {
	type tc struct {
		text     string
		maxWidth float64
		want     []string
	}

	// One unit per rune.
	width := func(s string) float64 { return float64(utf8.RuneCountInString(s)) }

	tests := map[string]tc{
		"empty":          {text: "", maxWidth: 10, want: nil},
		"fits one line":  {text: "a quiet harbour", maxWidth: 20, want: []string{"a quiet harbour"}},
		"wraps":          {text: "a quiet harbour town", maxWidth: 10, want: []string{"a quiet", "harbour", "town"}},
		"exact width":    {text: "ab cd", maxWidth: 5, want: []string{"ab cd"}},
		"long word kept": {text: "lighthousekeeper at sea", maxWidth: 6, want: []string{"lighthousekeeper", "at sea"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := wrapLines(strings.Fields(tt.text), tt.maxWidth, width)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("wrapLines() = %q, want %q", got, tt.want)
			}
		})
	}
}
