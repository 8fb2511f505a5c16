package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/rightslide/internal/constants"
)

// DetailPanel shows item metadata next to its poster.
type DetailPanel struct {
	Title    string
	Subtitle string
	Rating   string
	Runtime  string
	Overview string
	Progress float64
	Poster   *ebiten.Image
}

func NewDetailPanel(item CardItem) *DetailPanel {
	dp := &DetailPanel{
		Title:    item.Title,
		Subtitle: item.Subtitle,
		Overview: item.Overview,
		Progress: item.Progress,
	}
	if item.Runtime > 0 {
		dp.Runtime = FormatRuntime(item.Runtime)
	}
	if item.Rating > 0 {
		dp.Rating = fmt.Sprintf("★ %.1f", item.Rating)
	}
	return dp
}

func (dp *DetailPanel) Draw(dst *ebiten.Image) {
	b := dst.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())

	posterH := sh - SectionPadding*2
	posterW := posterH / CardAspect
	if dp.Poster != nil {
		op := &ebiten.DrawImageOptions{}
		pb := dp.Poster.Bounds()
		op.GeoM.Scale(posterW/float64(pb.Dx()), posterH/float64(pb.Dy()))
		op.GeoM.Translate(SectionPadding, SectionPadding)
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(dp.Poster, op)
	}
	if dp.Progress > 0 {
		y := float32(SectionPadding + posterH - ProgressBarH)
		vector.DrawFilledRect(dst, SectionPadding, y, float32(posterW), ProgressBarH, ColorOverlay, false)
		vector.DrawFilledRect(dst, SectionPadding, y, float32(posterW*dp.Progress), ProgressBarH, ColorPrimary, false)
	}

	x := SectionPadding*2 + posterW
	y := float64(SectionPadding)

	DrawText(dst, dp.Title, x, y, FontSizeTitle, ColorText)
	y += FontSizeTitle + 8

	meta := ""
	for _, part := range []string{dp.Subtitle, dp.Runtime} {
		if part == "" {
			continue
		}
		if meta != "" {
			meta += "  •  "
		}
		meta += part
	}
	if meta != "" {
		DrawText(dst, meta, x, y, FontSizeBody, ColorTextSecondary)
		y += FontSizeBody + 12
	}
	if dp.Rating != "" {
		DrawText(dst, dp.Rating, x, y, FontSizeBody, ColorRatingGold)
		y += FontSizeBody + 12
	}

	if dp.Overview != "" {
		maxW := sw - x - SectionPadding
		DrawTextWrapped(dst, dp.Overview, x, y, maxW, FontSizeBody, ColorTextSecondary)
	}

	DrawText(dst, "Esc to go back", x, sh-SectionPadding, FontSizeSmall, ColorTextMuted)
}

func FormatRuntime(ticks int64) string {
	minutes := ticks / constants.TicksPerMinute
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
