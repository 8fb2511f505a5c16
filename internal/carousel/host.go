package carousel

import "image"

// NoIndex marks the absence of an item index.
const NoIndex = -1

// View is a host-owned handle for one attached card. The layout compares
// views with ==, so hosts should hand out pointers.
type View any

// Host is the scrollable container the layout drives. All calls happen on
// the host's event goroutine, from inside a Layout method.
type Host interface {
	// ViewportWidth is the visible width in pixels.
	ViewportWidth() int

	// AttachSlot binds a view to item index at the given depth. Depth 0 is
	// the active card; larger depths are drawn further back.
	AttachSlot(index, depth int) View
	ReleaseSlot(v View)
	MeasureSlot(v View) (width, height int)
	SetSlotRect(v View, r image.Rectangle)
	SetSlotVisual(v View, scale, alpha float64)
	SetSlotDepth(v View, depth int)

	// SmoothScrollBy animates the content by dx pixels, feeding the
	// increments back through Layout.ScrollBy.
	SmoothScrollBy(dx int)
	// RequestLayout asks for a Layout.LayoutPass on the next frame.
	RequestLayout()

	CurrentIndexChanged(index int)
}

// Slot is one visible card produced by a fill.
type Slot struct {
	Index int
	Rect  image.Rectangle
	Scale float64
	Alpha float64
	Depth int
	View  View
}

// Snap is a settle decision: the index to rest on and the offset change
// needed to get there.
type Snap struct {
	Index    int
	Distance int
}
