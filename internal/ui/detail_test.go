package ui

import (
	"testing"

	"github.com/depeter/rightslide/internal/constants"
)

func TestFormatRuntime(t *testing.T) {
	const minute = constants.TicksPerMinute
	tests := map[string]struct {
		ticks int64
		want  string
	}{
		"minutes only": {ticks: 42 * minute, want: "42m"},
		"hours":        {ticks: 135 * minute, want: "2h 15m"},
		"exact hour":   {ticks: 60 * minute, want: "1h 0m"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := FormatRuntime(tt.ticks); got != tt.want {
				t.Errorf("FormatRuntime() = %q, want %q", got, tt.want)
			}
		})
	}
}
