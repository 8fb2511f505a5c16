package carousel

import (
	"errors"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	type tc struct {
		mutate  func(*Config)
		wantErr bool
	}

	tests := map[string]tc{
		"defaults":                {mutate: func(*Config) {}},
		"no scaling":              {mutate: func(c *Config) { c.CandidateLastScale = 1 }},
		"zero scale":              {mutate: func(c *Config) { c.CandidateLastScale = 0 }, wantErr: true},
		"scale above one":         {mutate: func(c *Config) { c.CandidateLastScale = 1.2 }, wantErr: true},
		"fade start one":          {mutate: func(c *Config) { c.ExitFadeStart = 1 }, wantErr: true},
		"fade end negative":       {mutate: func(c *Config) { c.ExitFadeEnd = -0.1 }, wantErr: true},
		"negative candidates":     {mutate: func(c *Config) { c.CandidateCount = -1 }, wantErr: true},
		"negative interval":       {mutate: func(c *Config) { c.AutoAdvanceInterval = -time.Second }, wantErr: true},
		"zero candidates allowed": {mutate: func(c *Config) { c.CandidateCount = 0 }},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestConfig_NormalizedPassesValidate(t *testing.T) {
	bad := Config{
		CandidateCount:      -3,
		CandidateLastScale:  7,
		ExitFadeStart:       2,
		ExitFadeEnd:         -1,
		AutoAdvanceInterval: -time.Second,
	}
	n := bad.normalized()
	if err := n.Validate(); err != nil {
		t.Fatalf("normalized config invalid: %v", err)
	}
	if n.scaling() {
		t.Error("out-of-range scale should disable scaling")
	}
	if got := New(bad, nil).Config(); got != n {
		t.Errorf("New() config = %+v, want %+v", got, n)
	}
}
