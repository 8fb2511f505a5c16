package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/rightslide/assets/icon"
	"github.com/depeter/rightslide/internal/app"
	"github.com/depeter/rightslide/internal/cache"
	"github.com/depeter/rightslide/internal/carousel"
	"github.com/depeter/rightslide/internal/clock"
	"github.com/depeter/rightslide/internal/config"
	"github.com/depeter/rightslide/internal/jellyfin"
	"github.com/depeter/rightslide/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "config file (default $XDG_CONFIG_HOME/rightslide/config.toml)")
	user := flag.String("user", "", "Jellyfin username to sign in with")
	password := flag.String("password", "", "Jellyfin password")
	loop := flag.Bool("loop", false, "wrap around at either end")
	paged := flag.Bool("paged", false, "advance at most one card per swipe")
	auto := flag.Bool("auto", false, "advance automatically while idle")
	flag.Parse()

	// Load config
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Sign in when asked to; the token is saved for later runs.
	if *user != "" && cfg.HasServer() {
		c := jellyfin.NewClient(cfg.Server.URL)
		if err := c.Authenticate(ctx, *user, *password); err != nil {
			log.Fatalf("Login failed: %v", err)
		}
		cfg.Server.Username = *user
		cfg.Server.Token = c.Token()
		cfg.Server.UserID = c.UserID()
		if err := cfg.Save(); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	}

	// Only flags given on the command line override the file; they are not
	// saved.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "loop":
			cfg.Carousel.Loop = *loop
		case "paged":
			cfg.Carousel.Paged = *paged
		case "auto":
			cfg.Carousel.AutoAdvance = *auto
		}
	})

	// Jellyfin client, or the demo feed when no server is signed in
	var client *jellyfin.Client
	if err := cfg.RequireServer(); err != nil {
		log.Printf("%v; showing demo feed (pass -user to sign in)", err)
	} else {
		client = jellyfin.NewClient(cfg.Server.URL)
		client.SetToken(cfg.Server.Token, cfg.Server.UserID)
	}

	// Init fonts
	if err := ui.InitDefaultFonts(); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	// Init image cache
	var imgCache *cache.ImageCache
	if client != nil {
		cacheDir, err := cfg.CacheDir()
		if err != nil {
			log.Fatalf("Failed to resolve cache dir: %v", err)
		}
		if imgCache, err = cache.NewImageCache(cacheDir); err != nil {
			log.Fatalf("Failed to init image cache: %v", err)
		}
	}

	clk := clock.NewManual()
	var opts []carousel.Option
	if cfg.UI.Debug {
		opts = append(opts, carousel.WithLogger(log.Default()))
	}
	layout := carousel.New(cfg.LayoutConfig(), clk, opts...)

	game := app.NewGame(ctx, cfg, client, imgCache, layout, clk)

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("RightSlide")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
