package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/depeter/rightslide/internal/carousel"
)

// ErrNoServer is returned when a Jellyfin feed is requested but no server
// URL is configured.
var ErrNoServer = errors.New("no jellyfin server configured")

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Carousel CarouselConfig `toml:"carousel"`
	UI       UIConfig       `toml:"ui"`
	Cache    CacheConfig    `toml:"cache"`

	path string
}

type ServerConfig struct {
	URL      string `toml:"url"`
	Username string `toml:"username"`
	Token    string `toml:"token"`
	UserID   string `toml:"user_id"`
	// Limit caps how many featured items are fetched.
	Limit int `toml:"limit"`
}

type CarouselConfig struct {
	Loop                bool    `toml:"loop"`
	Paged               bool    `toml:"paged"`
	AutoAdvance         bool    `toml:"auto_advance"`
	AutoAdvanceInterval int     `toml:"auto_advance_interval_ms"`
	CandidateCount      int     `toml:"candidate_count"`
	CandidateLastScale  float64 `toml:"candidate_last_scale"`
	ExitFade            bool    `toml:"exit_fade"`
	ExitFadeStart       float64 `toml:"exit_fade_start"`
	ExitFadeEnd         float64 `toml:"exit_fade_end"`
	ExitShrink          bool    `toml:"exit_shrink"`
	ViewportWidthOffset int     `toml:"viewport_width_offset"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
	// CardWidth is the active card's width as a fraction of the window.
	CardWidth float64 `toml:"card_width"`
	Debug     bool    `toml:"debug"`
}

type CacheConfig struct {
	// Dir overrides the poster cache directory.
	Dir string `toml:"dir"`
}

func DefaultConfig() *Config {
	cc := carousel.DefaultConfig()
	return &Config{
		Server: ServerConfig{Limit: 20},
		Carousel: CarouselConfig{
			AutoAdvance:         true,
			AutoAdvanceInterval: int(cc.AutoAdvanceInterval / time.Millisecond),
			CandidateCount:      cc.CandidateCount,
			CandidateLastScale:  cc.CandidateLastScale,
			ExitFade:            true,
			ExitFadeStart:       cc.ExitFadeStart,
			ExitFadeEnd:         cc.ExitFadeEnd,
			ExitShrink:          cc.ExitShrink,
		},
		UI: UIConfig{
			Fullscreen: false,
			Width:      1280,
			Height:     720,
			CardWidth:  0.3,
		},
	}
}

// LayoutConfig converts the [carousel] section into layout knobs.
func (c *Config) LayoutConfig() carousel.Config {
	s := c.Carousel
	return carousel.Config{
		Loop:                s.Loop,
		Paged:               s.Paged,
		AutoAdvance:         s.AutoAdvance,
		AutoAdvanceInterval: time.Duration(s.AutoAdvanceInterval) * time.Millisecond,
		CandidateCount:      s.CandidateCount,
		CandidateLastScale:  s.CandidateLastScale,
		ExitFade:            s.ExitFade,
		ExitFadeStart:       s.ExitFadeStart,
		ExitFadeEnd:         s.ExitFadeEnd,
		ExitShrink:          s.ExitShrink,
		ViewportWidthOffset: s.ViewportWidthOffset,
	}
}

func (c *Config) Validate() error {
	if err := c.LayoutConfig().Validate(); err != nil {
		return err
	}
	if c.UI.CardWidth <= 0 || c.UI.CardWidth > 1 {
		return fmt.Errorf("%w: card width %v not in (0,1]", carousel.ErrInvalidConfig, c.UI.CardWidth)
	}
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", carousel.ErrInvalidConfig, c.UI.Width, c.UI.Height)
	}
	return nil
}

// HasServer reports whether a server URL is set.
func (c *Config) HasServer() bool {
	return c.Server.URL != ""
}

// RequireServer checks that a server is configured and signed in. Errors
// wrap ErrNoServer.
func (c *Config) RequireServer() error {
	if c.Server.URL == "" {
		return ErrNoServer
	}
	if c.Server.Token == "" {
		return fmt.Errorf("%w: no token for %s", ErrNoServer, c.Server.URL)
	}
	return nil
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "rightslide"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// CacheDir returns the poster cache directory.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rightslide", "images"), nil
}

func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads path over the defaults. A missing file yields the defaults;
// Save writes back to the same path.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path := c.path
	if path == "" {
		var err error
		if path, err = ConfigPath(); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
