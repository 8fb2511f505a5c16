package carousel

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every error Config.Validate returns.
var ErrInvalidConfig = errors.New("invalid carousel config")

// Config holds the carousel knobs. It is copied into the Layout at
// construction and never changes afterwards.
type Config struct {
	// Loop treats the item sequence as cyclic.
	Loop bool
	// Paged advances at most one card per gesture.
	Paged bool

	AutoAdvance         bool
	AutoAdvanceInterval time.Duration

	// CandidateCount is how many trailing cards share the space to the right
	// of the active card.
	CandidateCount int
	// CandidateLastScale is the scale of the right-most candidate. Values
	// below 1 enable scaling.
	CandidateLastScale float64

	// ExitFade fades the active card once it has moved ExitFadeStart of its
	// width past the left edge, reaching ExitFadeEnd when fully out.
	ExitFade      bool
	ExitFadeStart float64
	ExitFadeEnd   float64

	// ExitShrink shrinks the active card as it leaves.
	ExitShrink bool

	// ViewportWidthOffset is added to the host's viewport width.
	ViewportWidthOffset int
}

func DefaultConfig() Config {
	return Config{
		AutoAdvanceInterval: 3 * time.Second,
		CandidateCount:      2,
		CandidateLastScale:  0.8,
		ExitFadeStart:       0.1,
		ExitFadeEnd:         0.6,
		ExitShrink:          true,
	}
}

// Validate reports the first knob outside its allowed range.
func (c Config) Validate() error {
	if c.CandidateLastScale <= 0 || c.CandidateLastScale > 1 {
		return fmt.Errorf("%w: candidate last scale %v not in (0,1]", ErrInvalidConfig, c.CandidateLastScale)
	}
	if c.ExitFadeStart < 0 || c.ExitFadeStart >= 1 {
		return fmt.Errorf("%w: exit fade start %v not in [0,1)", ErrInvalidConfig, c.ExitFadeStart)
	}
	if c.ExitFadeEnd < 0 || c.ExitFadeEnd > 1 {
		return fmt.Errorf("%w: exit fade end %v not in [0,1]", ErrInvalidConfig, c.ExitFadeEnd)
	}
	if c.CandidateCount < 0 {
		return fmt.Errorf("%w: negative candidate count %d", ErrInvalidConfig, c.CandidateCount)
	}
	if c.AutoAdvanceInterval < 0 {
		return fmt.Errorf("%w: negative auto-advance interval %v", ErrInvalidConfig, c.AutoAdvanceInterval)
	}
	return nil
}

// normalized clamps every knob into range so layout math never sees a value
// Validate would reject.
func (c Config) normalized() Config {
	if c.CandidateLastScale <= 0 || c.CandidateLastScale > 1 {
		c.CandidateLastScale = 1
	}
	if c.ExitFadeStart < 0 {
		c.ExitFadeStart = 0
	}
	if c.ExitFadeStart >= 1 {
		c.ExitFadeStart = 0
	}
	c.ExitFadeEnd = min(max(c.ExitFadeEnd, 0), 1)
	c.CandidateCount = max(c.CandidateCount, 0)
	c.AutoAdvanceInterval = max(c.AutoAdvanceInterval, 0)
	return c
}

// scaling reports whether candidates are drawn smaller than the active card.
func (c Config) scaling() bool {
	return c.CandidateLastScale < 1
}
