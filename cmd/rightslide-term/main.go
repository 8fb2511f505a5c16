package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/depeter/rightslide/internal/carousel"
	"github.com/depeter/rightslide/internal/clock"
	"github.com/depeter/rightslide/internal/config"
	"github.com/depeter/rightslide/internal/feed"
	"github.com/depeter/rightslide/internal/jellyfin"
	"github.com/depeter/rightslide/internal/term"
)

func main() {
	configPath := flag.String("config", "", "config file (default $XDG_CONFIG_HOME/rightslide/config.toml)")
	demo := flag.Bool("demo", false, "show the demo feed even when a server is configured")
	loop := flag.Bool("loop", false, "wrap around at either end")
	paged := flag.Bool("paged", false, "advance at most one card per swipe")
	auto := flag.Bool("auto", false, "advance automatically while idle")
	flag.Parse()

	// The terminal belongs to the UI; logs go to a file or nowhere.
	var opts []carousel.Option
	if path := os.Getenv("RIGHTSLIDE_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "rightslide")
		if err != nil {
			fmt.Fprintln(os.Stderr, "debug log:", err)
			os.Exit(1)
		}
		defer f.Close()
		opts = append(opts, carousel.WithLogger(log.Default()))
	} else {
		log.SetOutput(io.Discard)
	}

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
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
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

	load := feed.Func(feed.Demo)
	if !*demo {
		if err := cfg.RequireServer(); err != nil {
			log.Printf("%v; showing demo feed", err)
		} else {
			client := jellyfin.NewClient(cfg.Server.URL)
			client.SetToken(cfg.Server.Token, cfg.Server.UserID)
			load = feed.Jellyfin(client, cfg.Server.Limit)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	clk := clock.NewManual()
	layout := carousel.New(cfg.LayoutConfig(), clk, opts...)
	model := term.New(ctx, layout, clk, load, cfg.UI.CardWidth)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
