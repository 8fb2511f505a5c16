package feed

import (
	"context"

	"github.com/depeter/rightslide/internal/constants"
)

const tick = constants.TicksPerMinute

var demoCards = []Card{
	{ID: "demo-1", Title: "Northern Lights", Subtitle: "2021", Rating: 7.8, Runtime: 112 * tick,
		Overview: "A research crew wintering above the Arctic Circle starts receiving signals from the aurora."},
	{ID: "demo-2", Title: "The Long Drift", Subtitle: "Sea Stories S01E03", Rating: 8.2, Runtime: 48 * tick, Progress: 0.4,
		Overview: "A storm separates the fleet and the smallest trawler is left to find its own way home."},
	{ID: "demo-3", Title: "Paper Engines", Subtitle: "2018", Rating: 6.9, Runtime: 97 * tick,
		Overview: "Two siblings build a working locomotive out of cardboard for the county fair."},
	{ID: "demo-4", Title: "Quiet Harbour", Subtitle: "2023", Rating: 7.1, Runtime: 124 * tick, Progress: 0.75,
		Overview: "A retired lighthouse keeper takes in a stranger who washed ashore without a name."},
	{ID: "demo-5", Title: "Glass City", Subtitle: "Skyline S02E01", Rating: 8.6, Runtime: 55 * tick,
		Overview: "The architects behind the tallest tower in the city fall out over one missing floor."},
	{ID: "demo-6", Title: "Saltwater Kids", Subtitle: "2015", Rating: 7.4, Runtime: 101 * tick,
		Overview: "A summer of sandcastles, sunburn and a treasure map nobody believes is real."},
	{ID: "demo-7", Title: "Iron & Ivy", Subtitle: "2020", Rating: 6.5, Runtime: 89 * tick,
		Overview: "A blacksmith and a gardener feud across the fence of two crumbling estates."},
}

// Demo returns a fixed catalogue with no artwork URLs, so cards render as
// generated placeholders. It never fails.
func Demo(context.Context) ([]Card, error) {
	out := make([]Card, len(demoCards))
	copy(out, demoCards)
	return out, nil
}
