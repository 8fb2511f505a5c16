package feed

import (
	"context"
	"testing"

	"github.com/depeter/rightslide/internal/jellyfin"
)

func TestFromMediaItems(t *testing.T) {
	client := jellyfin.NewClient("https://jf.local:8096")
	items := []jellyfin.MediaItem{
		{
			ID: "m1", Name: "Movie", Year: 2020, CommunityRating: 7.5,
			RuntimeTicks: 100, PlaybackPositionTicks: 25,
			ImageTags: map[string]string{"Primary": "tag"},
		},
		{ID: "e1", Name: "Pilot", Type: "Episode", SeriesID: "s1", SeriesName: "Show", IndexNumber: 1, ParentIndexNumber: 1},
	}

	cards := FromMediaItems(client, items)
	if len(cards) != 2 {
		t.Fatalf("got %d cards", len(cards))
	}

	m := cards[0]
	if m.ID != "m1" || m.Title != "Movie" || m.Subtitle != "2020" || m.Rating != 7.5 {
		t.Errorf("movie card %+v", m)
	}
	if m.Progress != 0.25 {
		t.Errorf("Progress = %v, want 0.25", m.Progress)
	}
	if m.ImageURL != client.CardImageURL(items[0]) || m.ImageURL == "" {
		t.Errorf("ImageURL = %q", m.ImageURL)
	}

	e := cards[1]
	if e.Subtitle != items[1].Subtitle() {
		t.Errorf("episode subtitle %q, want %q", e.Subtitle, items[1].Subtitle())
	}
}

func TestDemo(t *testing.T) {
	cards, err := Demo(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(cards) < 2 {
		t.Fatalf("demo feed has %d cards", len(cards))
	}
	seen := map[string]bool{}
	for _, c := range cards {
		if c.ID == "" || c.Title == "" || c.ImageURL != "" {
			t.Errorf("bad demo card %+v", c)
		}
		if seen[c.ID] {
			t.Errorf("duplicate id %s", c.ID)
		}
		seen[c.ID] = true
	}

	// Callers may mutate the result freely.
	cards[0].Title = "changed"
	again, _ := Demo(context.Background())
	if again[0].Title == "changed" {
		t.Error("Demo() shares its backing array")
	}
}
