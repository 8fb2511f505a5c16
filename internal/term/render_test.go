package term

import (
	"image"
	"strings"
	"testing"

	"github.com/depeter/rightslide/internal/feed"
)

func TestTruncate(t *testing.T) {
	type tc struct {
		in   string
		n    int
		want string
	}

	tests := map[string]tc{
		"fits":      {in: "Heat", n: 10, want: "Heat"},
		"exact":     {in: "Heat", n: 4, want: "Heat"},
		"cut":       {in: "Northern Lights", n: 6, want: "North…"},
		"one":       {in: "Heat", n: 1, want: "…"},
		"zero":      {in: "Heat", n: 0, want: ""},
		"multibyte": {in: "Amélie Poulain", n: 4, want: "Amé…"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := truncate(tt.in, tt.n); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}

func TestCellRect(t *testing.T) {
	s := &slot{rect: image.Rect(40, 0, 60, 10), scale: 0.5}
	if got, want := cellRect(s, 20, 10), image.Rect(45, 2, 55, 7); got != want {
		t.Errorf("cellRect() = %v, want %v", got, want)
	}
	s.scale = 1
	if got := cellRect(s, 20, 10); got != s.rect {
		t.Errorf("unscaled cellRect() = %v, want %v", got, s.rect)
	}
}

func TestCanvas_DrawCard(t *testing.T) {
	c := newCanvas(12, 5)
	drawCard(c, image.Rect(1, 0, 11, 5), feed.Card{Title: "Heat", Subtitle: "1995"}, styleNone)

	lines := strings.Split(c.String(), "\n")
	want := []string{
		" ╭────────╮ ",
		" │ Heat   │ ",
		" │ 1995   │ ",
		" │        │ ",
		" ╰────────╯ ",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestSlotStyle(t *testing.T) {
	type tc struct {
		depth int
		alpha float64
		want  int
	}

	tests := map[string]tc{
		"active":          {depth: 0, alpha: 1, want: styleActive},
		"active fading":   {depth: 0, alpha: 0.3, want: styleActiveFaint},
		"candidate":       {depth: 2, alpha: 1, want: styleCandidate},
		"faded candidate": {depth: 1, alpha: 0.5, want: styleCandidateFaint},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := slotStyle(&slot{depth: tt.depth, alpha: tt.alpha}); got != tt.want {
				t.Errorf("slotStyle() = %d, want %d", got, tt.want)
			}
		})
	}
}
