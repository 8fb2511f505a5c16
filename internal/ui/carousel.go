package ui

import (
	"image"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/rightslide/internal/carousel"
	"github.com/depeter/rightslide/internal/feed"
	"github.com/depeter/rightslide/internal/scroll"
)

// CardItem is one entry of the carousel feed.
type CardItem = feed.Card

// cardView is the host-side handle for one attached slot.
type cardView struct {
	index int
	depth int
	rect  image.Rectangle
	scale float64
	alpha float64
}

// CarouselView hosts a carousel.Layout inside an ebiten frame loop. It owns
// the attached card views, feeds pointer and key input to the layout and
// draws the cards back to front.
type CarouselView struct {
	Items    []CardItem
	Current  int
	OnSelect func(index int)

	layout   *carousel.Layout
	scroller *scroll.Scroller
	images   *ImageStore
	pointer  PointerState

	views      []*cardView
	cardFrac   float64
	width      int
	height     int
	cardW      int
	cardH      int
	x, y       int
	needLayout bool
}

func NewCarouselView(layout *carousel.Layout, images *ImageStore, cardFrac float64) *CarouselView {
	v := &CarouselView{
		layout:   layout,
		images:   images,
		cardFrac: cardFrac,
		Current:  carousel.NoIndex,
	}
	v.scroller = scroll.New(layout)
	layout.Attach(v)
	return v
}

// Layout returns the carousel layout the view drives.
func (v *CarouselView) Layout() *carousel.Layout { return v.layout }

// SetItems swaps the feed.
func (v *CarouselView) SetItems(items []CardItem) {
	v.Items = items
	v.layout.ItemsChanged()
}

// SetBounds places the carousel inside a w x h area at (x, y). A change in
// size re-measures the cards and keeps the current index.
func (v *CarouselView) SetBounds(x, y, w, h int) {
	v.x, v.y = x, y
	if w == v.width && h == v.height {
		return
	}
	v.width, v.height = w, h
	cardW := int(float64(w) * v.cardFrac)
	cardH := int(float64(cardW) * CardAspect)
	if maxH := h - SectionTitleH - CaptionGap; cardH > maxH && maxH > 0 {
		cardH = maxH
		cardW = int(float64(cardH) / CardAspect)
	}
	v.cardW, v.cardH = max(cardW, 1), max(cardH, 1)

	keep := v.layout.CurrentIndex()
	v.layout.Detach()
	v.layout.Attach(v)
	v.layout.LayoutPass(len(v.Items), true)
	if keep > 0 {
		v.layout.JumpTo(keep)
	}
	v.layout.LayoutPass(len(v.Items), false)
}

// Update handles input and advances scroll animation. Call once per frame.
func (v *CarouselView) Update(dir Direction, enter bool) {
	px, py, phase := v.pointer.Poll()
	switch phase {
	case PointerDown:
		if PointInRect(px, py, float64(v.x), float64(v.y), float64(v.width), float64(v.height)) {
			v.scroller.Press(float64(px))
		}
	case PointerMove:
		v.scroller.Drag(float64(px))
	case PointerUp:
		if v.scroller.Dragging() && v.scroller.Release() {
			v.tap(px, py)
		}
	}

	if _, wy := MouseWheelDelta(); wy != 0 && !v.pointer.Active() {
		if wy < 0 {
			v.Step(1)
		} else {
			v.Step(-1)
		}
	}
	switch dir {
	case DirRight:
		v.Step(1)
	case DirLeft:
		v.Step(-1)
	}
	if enter && v.OnSelect != nil && v.Current != carousel.NoIndex {
		v.OnSelect(v.Current)
	}

	v.scroller.Update()
	if v.needLayout && v.width > 0 {
		v.needLayout = false
		v.layout.LayoutPass(len(v.Items), false)
	}
}

// Step animates d cards forward (positive) or back.
func (v *CarouselView) Step(d int) {
	n := len(v.Items)
	if n == 0 {
		return
	}
	target := v.layout.FirstVisibleIndex() + d
	if v.layout.Config().Loop {
		target = ((target % n) + n) % n
	} else {
		target = min(max(target, 0), n-1)
	}
	v.layout.SmoothScrollTo(target)
}

// tap selects the active card or scrolls a tapped candidate into place.
// x and y are screen coordinates.
func (v *CarouselView) tap(x, y int) {
	p := image.Pt(x-v.x, y-v.cardTop())
	for _, cv := range v.sortedViews(false) {
		if !p.In(scaledRect(cv.rect, cv.scale)) {
			continue
		}
		if cv.depth == 0 {
			if v.OnSelect != nil {
				v.OnSelect(cv.index)
			}
			return
		}
		v.layout.SmoothScrollTo(cv.index)
		return
	}
}

func (v *CarouselView) cardTop() int {
	return v.y + SectionTitleH
}

// sortedViews returns the attached views ordered by depth, front first
// unless backToFront is set.
func (v *CarouselView) sortedViews(backToFront bool) []*cardView {
	out := make([]*cardView, len(v.views))
	copy(out, v.views)
	sort.SliceStable(out, func(i, j int) bool {
		if backToFront {
			return out[i].depth > out[j].depth
		}
		return out[i].depth < out[j].depth
	})
	return out
}

func (v *CarouselView) Draw(dst *ebiten.Image, label string) {
	DrawText(dst, label, float64(v.x), float64(v.y), FontSizeHeading, ColorText)
	top := float64(v.cardTop())

	for _, cv := range v.sortedViews(true) {
		if cv.index < 0 || cv.index >= len(v.Items) || cv.alpha <= 0 {
			continue
		}
		item := v.Items[cv.index]
		img := v.images.Card(item, v.cardW, v.cardH)

		w, h := float64(cv.rect.Dx()), float64(cv.rect.Dy())
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
		// Scale about the card centre.
		op.GeoM.Translate(-w/2, -h/2)
		op.GeoM.Scale(cv.scale, cv.scale)
		op.GeoM.Translate(w/2, h/2)
		op.GeoM.Translate(float64(v.x+cv.rect.Min.X), top+float64(cv.rect.Min.Y))
		op.ColorScale.ScaleAlpha(float32(cv.alpha))
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(img, op)

		if cv.depth == 0 {
			v.drawActiveDecor(dst, cv, item, top)
		}
	}
}

func (v *CarouselView) drawActiveDecor(dst *ebiten.Image, cv *cardView, item CardItem, top float64) {
	r := scaledRect(cv.rect, cv.scale)
	x := float32(v.x + r.Min.X)
	y := float32(top) + float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	alpha := float32(cv.alpha)

	if item.Progress > 0 {
		vector.DrawFilledRect(dst, x, y+h-ProgressBarH, w, ProgressBarH, ColorOverlay, false)
		vector.DrawFilledRect(dst, x, y+h-ProgressBarH, w*float32(item.Progress), ProgressBarH, ColorPrimary, false)
	}
	if alpha >= 1 {
		vector.StrokeRect(dst, x, y, w, h, 2, ColorFocusBorder, false)
	}

	title := truncateText(item.Title, float64(v.cardW), FontSizeBody)
	DrawText(dst, title, float64(x), float64(y+h)+CaptionGap, FontSizeBody, ColorText)
}

// scaledRect is r shrunk by scale about its centre.
func scaledRect(r image.Rectangle, scale float64) image.Rectangle {
	if scale == 1 {
		return r
	}
	w, h := float64(r.Dx()), float64(r.Dy())
	dx := int(math.Round(w * (1 - scale) / 2))
	dy := int(math.Round(h * (1 - scale) / 2))
	return image.Rect(r.Min.X+dx, r.Min.Y+dy, r.Max.X-dx, r.Max.Y-dy)
}

// carousel.Host

func (v *CarouselView) ViewportWidth() int { return v.width }

func (v *CarouselView) AttachSlot(index, depth int) carousel.View {
	cv := &cardView{index: index, depth: depth, scale: 1, alpha: 1}
	v.views = append(v.views, cv)
	return cv
}

func (v *CarouselView) ReleaseSlot(view carousel.View) {
	cv := view.(*cardView)
	for i, x := range v.views {
		if x == cv {
			v.views = append(v.views[:i], v.views[i+1:]...)
			return
		}
	}
}

func (v *CarouselView) MeasureSlot(carousel.View) (int, int) { return v.cardW, v.cardH }

func (v *CarouselView) SetSlotRect(view carousel.View, r image.Rectangle) {
	view.(*cardView).rect = r
}

func (v *CarouselView) SetSlotVisual(view carousel.View, scale, alpha float64) {
	cv := view.(*cardView)
	cv.scale, cv.alpha = scale, alpha
}

func (v *CarouselView) SetSlotDepth(view carousel.View, depth int) {
	view.(*cardView).depth = depth
}

func (v *CarouselView) SmoothScrollBy(dx int) { v.scroller.SmoothScrollBy(dx) }

func (v *CarouselView) RequestLayout() { v.needLayout = true }

func (v *CarouselView) CurrentIndexChanged(index int) { v.Current = index }
