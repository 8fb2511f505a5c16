package ui

import "testing"

func TestShouldRepeat(t *testing.T) {
	type tc struct {
		frames int
		want   bool
	}

	tests := map[string]tc{
		"just pressed":           {frames: 0, want: true},
		"held briefly":           {frames: 1, want: false},
		"before delay":           {frames: repeatDelay - 1, want: false},
		"first repeat":           {frames: repeatDelay, want: true},
		"between repeats":        {frames: repeatDelay + 1, want: false},
		"second repeat":          {frames: repeatDelay + repeatInterval, want: true},
		"long hold off interval": {frames: repeatDelay + 3*repeatInterval + 2, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := shouldRepeat(tt.frames); got != tt.want {
				t.Errorf("shouldRepeat(%d) = %v, want %v", tt.frames, got, tt.want)
			}
		})
	}
}

func TestPointInRect(t *testing.T) {
	if !PointInRect(10, 10, 0, 0, 10, 10) {
		t.Error("edge point excluded")
	}
	if PointInRect(11, 5, 0, 0, 10, 10) {
		t.Error("outside point included")
	}
}
