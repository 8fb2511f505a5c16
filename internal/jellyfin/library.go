package jellyfin

import (
	"context"
	"fmt"
	"log"

	jellyfin "github.com/sj14/jellyfin-go/api"
)

// MediaItem is a simplified representation of a Jellyfin item.
type MediaItem struct {
	ID                    string
	Name                  string
	Type                  string // Movie, Series, Episode, Season, etc.
	Year                  int
	Overview              string
	RuntimeTicks          int64
	CommunityRating       float32
	ImageTags             map[string]string
	SeriesID              string
	SeriesName            string
	IndexNumber           int
	ParentIndexNumber     int
	PlaybackPositionTicks int64
}

// Progress returns the watched fraction in [0,1], or 0 when unknown.
func (m MediaItem) Progress() float64 {
	if m.RuntimeTicks <= 0 || m.PlaybackPositionTicks <= 0 {
		return 0
	}
	return min(float64(m.PlaybackPositionTicks)/float64(m.RuntimeTicks), 1)
}

// Subtitle is the secondary line shown under a card title.
func (m MediaItem) Subtitle() string {
	switch {
	case m.Type == "Episode" && m.SeriesName != "":
		return fmt.Sprintf("%s S%02dE%02d", m.SeriesName, m.ParentIndexNumber, m.IndexNumber)
	case m.Year > 0:
		return fmt.Sprintf("%d", m.Year)
	}
	return ""
}

var cardFields = []jellyfin.ItemFields{jellyfin.ITEMFIELDS_OVERVIEW, jellyfin.ITEMFIELDS_PRIMARY_IMAGE_ASPECT_RATIO}

// GetViews returns the user's media libraries (Movies, TV Shows, Music, etc.)
func (c *Client) GetViews(ctx context.Context) ([]MediaItem, error) {
	result, _, err := c.api.UserViewsAPI.GetUserViews(ctx).UserId(c.userID).Execute()
	if err != nil {
		return nil, fmt.Errorf("get views: %w", err)
	}
	return convertItems(result.Items), nil
}

// GetLatestMedia returns the latest items in a library.
func (c *Client) GetLatestMedia(ctx context.Context, parentID string, limit int) ([]MediaItem, error) {
	req := c.api.UserLibraryAPI.GetLatestMedia(ctx).
		UserId(c.userID).
		Limit(int32(limit)).
		Fields(cardFields).
		EnableImageTypes([]jellyfin.ImageType{jellyfin.IMAGETYPE_PRIMARY}).
		ImageTypeLimit(1)
	if parentID != "" {
		req = req.ParentId(parentID)
	}
	items, _, err := req.Execute()
	if err != nil {
		return nil, fmt.Errorf("get latest: %w", err)
	}
	return convertItems(items), nil
}

// GetResumeItems returns items the user can resume watching.
func (c *Client) GetResumeItems(ctx context.Context, limit int) ([]MediaItem, error) {
	result, _, err := c.api.ItemsAPI.GetResumeItems(ctx).
		UserId(c.userID).
		Limit(int32(limit)).
		Fields(cardFields).
		EnableImageTypes([]jellyfin.ImageType{jellyfin.IMAGETYPE_PRIMARY}).
		ImageTypeLimit(1).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("get resume: %w", err)
	}
	return convertItems(result.Items), nil
}

// GetNextUp returns next episodes to watch.
func (c *Client) GetNextUp(ctx context.Context, limit int) ([]MediaItem, error) {
	result, _, err := c.api.TvShowsAPI.GetNextUp(ctx).
		UserId(c.userID).
		Limit(int32(limit)).
		Fields(cardFields).
		EnableImageTypes([]jellyfin.ImageType{jellyfin.IMAGETYPE_PRIMARY}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("get next up: %w", err)
	}
	return convertItems(result.Items), nil
}

// FeaturedItems builds the carousel feed: resumable items, then next-up
// episodes, then the latest additions of every library. Sections that fail
// are logged and skipped; an error is returned only when nothing loaded.
func (c *Client) FeaturedItems(ctx context.Context, limit int) ([]MediaItem, error) {
	if err := c.signedIn(); err != nil {
		return nil, err
	}
	var (
		sections [][]MediaItem
		lastErr  error
	)
	add := func(what string, items []MediaItem, err error) {
		if err != nil {
			log.Printf("Failed to load %s: %v", what, err)
			lastErr = err
			return
		}
		sections = append(sections, items)
	}

	items, err := c.GetResumeItems(ctx, limit)
	add("resume items", items, err)
	items, err = c.GetNextUp(ctx, limit)
	add("next up", items, err)

	views, err := c.GetViews(ctx)
	add("views", nil, err)
	for _, view := range views {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		items, err := c.GetLatestMedia(ctx, view.ID, limit)
		add("latest "+view.Name, items, err)
	}

	featured := mergeFeatured(limit, sections...)
	if len(featured) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return featured, nil
}

// mergeFeatured concatenates sections in order, dropping repeated IDs and
// stopping at limit (limit <= 0 means no cap).
func mergeFeatured(limit int, sections ...[]MediaItem) []MediaItem {
	seen := make(map[string]bool)
	var out []MediaItem
	for _, section := range sections {
		for _, item := range section {
			if item.ID == "" || seen[item.ID] {
				continue
			}
			seen[item.ID] = true
			out = append(out, item)
			if limit > 0 && len(out) == limit {
				return out
			}
		}
	}
	return out
}

func convertItems(items []jellyfin.BaseItemDto) []MediaItem {
	result := make([]MediaItem, 0, len(items))
	for _, item := range items {
		result = append(result, convertBaseItemDto(&item))
	}
	return result
}

func convertBaseItemDto(item *jellyfin.BaseItemDto) MediaItem {
	mi := MediaItem{}
	if item.Id != nil {
		mi.ID = *item.Id
	}
	mi.Name = item.GetName()
	if item.Type != nil {
		mi.Type = string(*item.Type)
	}
	mi.Year = int(item.GetProductionYear())
	mi.Overview = item.GetOverview()
	mi.RuntimeTicks = item.GetRunTimeTicks()
	mi.CommunityRating = item.GetCommunityRating()

	if len(item.ImageTags) > 0 {
		mi.ImageTags = make(map[string]string)
		for k, v := range item.ImageTags {
			mi.ImageTags[k] = v
		}
	}
	mi.SeriesID = item.GetSeriesId()
	mi.SeriesName = item.GetSeriesName()
	mi.IndexNumber = int(item.GetIndexNumber())
	mi.ParentIndexNumber = int(item.GetParentIndexNumber())

	if item.UserData.IsSet() {
		if ud := item.UserData.Get(); ud != nil {
			mi.PlaybackPositionTicks = ud.GetPlaybackPositionTicks()
		}
	}
	return mi
}
