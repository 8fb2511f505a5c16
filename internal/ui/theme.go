package ui

import "image/color"

// Dark theme colours, Jellyfin blue as the primary
var (
	ColorBackground    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF} // Jellyfin blue
	ColorAccent        = color.RGBA{R: 0xAA, G: 0x5C, B: 0xC3, A: 0xFF} // Purple accent
	ColorText          = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
	ColorFocusBorder   = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorError         = color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}
	ColorRatingGold    = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}
)

// Layout constants
const (
	// CardAspect is card height over width (2:3 posters).
	CardAspect = 1.5

	SectionPadding = 40
	SectionTitleH  = 36
	CaptionGap     = 12
	ProgressBarH   = 4

	FontSizeTitle   = 28
	FontSizeHeading = 22
	FontSizeBody    = 16
	FontSizeSmall   = 13
	FontSizeCaption = 11

	BackdropHeight = 400
)
