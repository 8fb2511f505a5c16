package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// DetailScreen shows the card chosen from the carousel.
type DetailScreen struct {
	item   CardItem
	images *ImageStore
	detail *DetailPanel
}

func NewDetailScreen(item CardItem, images *ImageStore) *DetailScreen {
	return &DetailScreen{
		item:   item,
		images: images,
		detail: NewDetailPanel(item),
	}
}

func (ds *DetailScreen) Name() string { return "Detail: " + ds.item.Title }

func (ds *DetailScreen) OnEnter() {}
func (ds *DetailScreen) OnExit()  {}

func (ds *DetailScreen) Update() (*ScreenTransition, error) {
	_, _, back := InputState()
	if back {
		return &ScreenTransition{Type: TransitionPop}, nil
	}
	return nil, nil
}

func (ds *DetailScreen) Draw(dst *ebiten.Image) {
	h := dst.Bounds().Dy() - SectionPadding*2
	ds.detail.Poster = ds.images.Card(ds.item, int(float64(h)/CardAspect), h)
	ds.detail.Draw(dst)
}
