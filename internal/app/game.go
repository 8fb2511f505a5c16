package app

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/rightslide/internal/cache"
	"github.com/depeter/rightslide/internal/carousel"
	"github.com/depeter/rightslide/internal/clock"
	"github.com/depeter/rightslide/internal/config"
	"github.com/depeter/rightslide/internal/feed"
	"github.com/depeter/rightslide/internal/jellyfin"
	"github.com/depeter/rightslide/internal/ui"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config   *config.Config
	Client   *jellyfin.Client // nil runs the demo feed
	Cache    *cache.ImageCache
	Images   *ui.ImageStore
	Screens  *ui.ScreenManager
	Clock    *clock.Manual
	Carousel *carousel.Layout

	Width, Height int
}

// NewGame creates the Game with all dependencies. client and imgCache may be
// nil; the carousel then shows generated placeholder cards.
func NewGame(ctx context.Context, cfg *config.Config, client *jellyfin.Client, imgCache *cache.ImageCache, layout *carousel.Layout, clk *clock.Manual) *Game {
	g := &Game{
		Config:   cfg,
		Client:   client,
		Cache:    imgCache,
		Images:   ui.NewImageStore(ctx, imgCache),
		Screens:  ui.NewScreenManager(),
		Clock:    clk,
		Carousel: layout,
		Width:    cfg.UI.Width,
		Height:   cfg.UI.Height,
	}

	load, title := feed.Demo, "Demo"
	if client != nil {
		load, title = feed.Jellyfin(client, cfg.Server.Limit), "Featured"
	}
	view := ui.NewCarouselView(layout, g.Images, cfg.UI.CardWidth)
	g.Screens.Push(ui.NewHomeScreen(ctx, title, load, view, g.Images))
	return g
}

func (g *Game) Update() error {
	// Timers fire here so auto-advance runs on the game goroutine.
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g.Clock.Advance(time.Second / time.Duration(tps))

	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	g.Images.Update()
	if err := g.Screens.Update(); err != nil {
		return err
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
	ui.DrawDebugOverlay(screen, g.Carousel)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Width, g.Height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
