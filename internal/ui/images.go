package ui

import (
	"context"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/rightslide/internal/artwork"
	"github.com/depeter/rightslide/internal/cache"
)

// ImageStore turns cached downloads and generated placeholders into ebiten
// images. It must only be used from the game goroutine.
type ImageStore struct {
	ctx    context.Context
	cache  *cache.ImageCache
	images map[string]*ebiten.Image
	failed map[string]bool
}

// NewImageStore wraps c, which may be nil to use placeholders only.
func NewImageStore(ctx context.Context, c *cache.ImageCache) *ImageStore {
	return &ImageStore{
		ctx:    ctx,
		cache:  c,
		images: make(map[string]*ebiten.Image),
		failed: make(map[string]bool),
	}
}

// Update converts downloads that finished since the last frame.
func (s *ImageStore) Update() {
	if s.cache == nil {
		return
	}
	s.cache.Drain(func(r cache.Result) {
		if r.Err != nil {
			log.Printf("Failed to load image %s: %v", r.URL, r.Err)
			s.failed[r.URL] = true
			return
		}
		s.images[r.URL] = ebiten.NewImageFromImage(r.Image)
	})
}

// Card returns the artwork for item, requesting it on first use. Until the
// download lands, or when it fails, a generated placeholder is returned.
func (s *ImageStore) Card(item CardItem, w, h int) *ebiten.Image {
	if url := item.ImageURL; url != "" && s.cache != nil && !s.failed[url] {
		if img, ok := s.images[url]; ok {
			return img
		}
		if s.cache.Request(s.ctx, url) {
			if img := s.cache.Get(url); img != nil {
				eimg := ebiten.NewImageFromImage(img)
				s.images[url] = eimg
				return eimg
			}
		}
	}
	return s.placeholder(item, w, h)
}

func (s *ImageStore) placeholder(item CardItem, w, h int) *ebiten.Image {
	key := "placeholder:" + item.ID
	if img, ok := s.images[key]; ok {
		return img
	}
	pimg, err := artwork.Placeholder(item.Title, item.Subtitle, w, h)
	if err != nil {
		log.Printf("Failed to draw placeholder for %q: %v", item.Title, err)
		eimg := ebiten.NewImage(max(w, 1), max(h, 1))
		eimg.Fill(ColorSurface)
		s.images[key] = eimg
		return eimg
	}
	eimg := ebiten.NewImageFromImage(pimg)
	s.images[key] = eimg
	return eimg
}
