package jellyfin

import (
	"fmt"
	"net/url"
)

// ImageType represents different image types.
type ImageType string

const (
	ImagePrimary  ImageType = "Primary"
	ImageBackdrop ImageType = "Backdrop"
	ImageThumb    ImageType = "Thumb"
)

// GetImageURL constructs a URL for an item's image.
func (c *Client) GetImageURL(itemID string, imgType ImageType, maxWidth, maxHeight int) string {
	u := fmt.Sprintf("%s/Items/%s/Images/%s", c.serverURL, url.PathEscape(itemID), string(imgType))
	params := url.Values{}
	if maxWidth > 0 {
		params.Set("maxWidth", fmt.Sprintf("%d", maxWidth))
	}
	if maxHeight > 0 {
		params.Set("maxHeight", fmt.Sprintf("%d", maxHeight))
	}
	params.Set("quality", "90")
	return u + "?" + params.Encode()
}

// GetPosterURL returns the primary image URL sized for a carousel card.
func (c *Client) GetPosterURL(itemID string) string {
	return c.GetImageURL(itemID, ImagePrimary, 400, 600)
}

// CardImageURL picks the best image for an item: its own poster, falling
// back to the series poster for episodes. It returns "" when the item has
// no usable image.
func (c *Client) CardImageURL(item MediaItem) string {
	if _, ok := item.ImageTags[string(ImagePrimary)]; ok {
		return c.GetPosterURL(item.ID)
	}
	if item.SeriesID != "" {
		return c.GetPosterURL(item.SeriesID)
	}
	return ""
}
