package ui

import (
	"context"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/rightslide/internal/feed"
)

// FeedFunc loads the cards shown on the home carousel.
type FeedFunc = feed.Func

// HomeScreen shows the featured feed as a right-sliding carousel.
type HomeScreen struct {
	ctx    context.Context
	feed   FeedFunc
	title  string
	images *ImageStore
	view   *CarouselView

	loaded  bool
	loading bool
	pending []CardItem
	ready   bool
	loadErr error
	width   int
	height  int

	mu sync.Mutex
}

func NewHomeScreen(ctx context.Context, title string, feed FeedFunc, view *CarouselView, images *ImageStore) *HomeScreen {
	return &HomeScreen{
		ctx:    ctx,
		feed:   feed,
		title:  title,
		images: images,
		view:   view,
	}
}

func (hs *HomeScreen) Name() string { return "Home" }

// View returns the carousel the screen hosts.
func (hs *HomeScreen) View() *CarouselView { return hs.view }

func (hs *HomeScreen) OnEnter() {
	hs.mu.Lock()
	start := !hs.loaded && !hs.loading
	if start {
		hs.loading = true
	}
	hs.mu.Unlock()
	if start {
		go hs.loadData()
	}
}

func (hs *HomeScreen) OnExit() {}

// OnCover holds auto-advance while a detail screen is open.
func (hs *HomeScreen) OnCover() { hs.view.Layout().BeginInteraction() }

func (hs *HomeScreen) OnUncover() { hs.view.Layout().EndInteraction() }

func (hs *HomeScreen) loadData() {
	items, err := hs.feed(hs.ctx)
	if err != nil {
		log.Printf("Failed to load feed: %v", err)
	}

	hs.mu.Lock()
	hs.pending = items
	hs.ready = true
	hs.loadErr = err
	hs.loaded = err == nil
	hs.loading = false
	hs.mu.Unlock()
}

// applyLoaded hands a finished load to the carousel and reports whether the
// last load failed. The layout is only touched from the game goroutine.
func (hs *HomeScreen) applyLoaded() (failed bool) {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	if hs.ready {
		hs.ready = false
		if hs.loadErr == nil {
			hs.view.SetItems(hs.pending)
		}
		hs.pending = nil
	}
	return hs.loadErr != nil && !hs.loading
}

func (hs *HomeScreen) Update() (*ScreenTransition, error) {
	failed := hs.applyLoaded()

	if failed && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		hs.mu.Lock()
		hs.loadErr = nil
		hs.loading = true
		hs.mu.Unlock()
		go hs.loadData()
	}

	if hs.width > 0 {
		top := SectionPadding + FontSizeTitle + SectionPadding/2
		hs.view.SetBounds(SectionPadding, top, hs.width-SectionPadding, hs.height-top-SectionPadding)
	}

	var tr *ScreenTransition
	hs.view.OnSelect = func(index int) {
		if index < 0 || index >= len(hs.view.Items) {
			return
		}
		tr = &ScreenTransition{
			Type:   TransitionPush,
			Screen: NewDetailScreen(hs.view.Items[index], hs.images),
		}
	}

	dir, enter, _ := InputState()
	hs.view.Update(dir, enter)
	return tr, nil
}

func (hs *HomeScreen) Draw(dst *ebiten.Image) {
	b := dst.Bounds()
	hs.width, hs.height = b.Dx(), b.Dy()
	cx, cy := float64(hs.width)/2, float64(hs.height)/2

	DrawText(dst, "RightSlide", SectionPadding, SectionPadding/2, FontSizeTitle, ColorPrimary)

	hs.mu.Lock()
	loading, err := hs.loading, hs.loadErr
	hs.mu.Unlock()

	switch {
	case err != nil:
		DrawTextCentered(dst, "Failed to load feed: "+err.Error(), cx, cy, FontSizeBody, ColorError)
		DrawTextCentered(dst, "Press R to retry", cx, cy+FontSizeBody*2, FontSizeSmall, ColorTextMuted)
		return
	case loading && len(hs.view.Items) == 0:
		DrawTextCentered(dst, "Loading...", cx, cy, FontSizeHeading, ColorTextSecondary)
		return
	case len(hs.view.Items) == 0:
		DrawTextCentered(dst, "No media found", cx, cy, FontSizeHeading, ColorTextSecondary)
		return
	}

	hs.view.Draw(dst, hs.title)
}
