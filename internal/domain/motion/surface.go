package motion

import "math"

// SurfaceMode selects what a drawing surface is sized against.
type SurfaceMode int

const (
	// SurfaceGlobal sizes against the viewport.
	SurfaceGlobal SurfaceMode = iota
	// SurfaceSection sizes against the hosting element's bounding box.
	SurfaceSection
)

// String returns a human-readable name for the mode.
func (m SurfaceMode) String() string {
	switch m {
	case SurfaceGlobal:
		return "global"
	case SurfaceSection:
		return "section"
	default:
		return "unknown"
	}
}

// Size is a box in CSS pixels together with the device pixel ratio it is
// displayed at.
type Size struct {
	Width  float64
	Height float64
	DPR    float64
}

// Device pixel ratio bounds for backing stores.
const (
	minDPR = 1.0
	maxDPR = 2.0
)

// Surface is a drawing surface whose backing store is scaled by the clamped
// device pixel ratio.
type Surface struct {
	Width       float64 // CSS px
	Height      float64 // CSS px
	Scale       float64
	PixelWidth  int
	PixelHeight int
}

// NewSurface computes the backing store for s. A missing or invalid DPR is
// treated as 1 and the ratio is clamped to [1, 2].
func NewSurface(s Size) Surface {
	dpr := s.DPR
	if math.IsNaN(dpr) || dpr <= 0 {
		dpr = minDPR
	}
	dpr = math.Max(minDPR, math.Min(maxDPR, dpr))

	w := math.Max(0, s.Width)
	h := math.Max(0, s.Height)

	return Surface{
		Width:       w,
		Height:      h,
		Scale:       dpr,
		PixelWidth:  int(math.Floor(w * dpr)),
		PixelHeight: int(math.Floor(h * dpr)),
	}
}
