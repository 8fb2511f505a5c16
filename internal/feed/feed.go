// Package feed produces the cards a carousel shows, either from a Jellyfin
// server or from a built-in demo catalogue.
package feed

import (
	"context"
	"fmt"

	"github.com/depeter/rightslide/internal/jellyfin"
)

// Card is one entry of a carousel feed.
type Card struct {
	ID       string
	Title    string
	Subtitle string // year, episode info, etc.
	Overview string
	Rating   float32
	Runtime  int64 // ticks
	ImageURL string
	Progress float64 // watched fraction, 0 when not started
}

// Func loads a feed.
type Func func(ctx context.Context) ([]Card, error)

// Jellyfin returns a Func that loads up to limit featured items from client.
func Jellyfin(client *jellyfin.Client, limit int) Func {
	return func(ctx context.Context) ([]Card, error) {
		items, err := client.FeaturedItems(ctx, limit)
		if err != nil {
			return nil, fmt.Errorf("featured items: %w", err)
		}
		return FromMediaItems(client, items), nil
	}
}

// FromMediaItems converts Jellyfin items into cards with artwork URLs.
func FromMediaItems(client *jellyfin.Client, items []jellyfin.MediaItem) []Card {
	cards := make([]Card, len(items))
	for i, item := range items {
		cards[i] = Card{
			ID:       item.ID,
			Title:    item.Name,
			Subtitle: item.Subtitle(),
			Overview: item.Overview,
			Rating:   item.CommunityRating,
			Runtime:  item.RuntimeTicks,
			ImageURL: client.CardImageURL(item),
			Progress: item.Progress(),
		}
	}
	return cards
}
