// Package model defines the domain types shared by the catalog, asset and
// motion layers.
package model

// Point is a 2D position or offset in CSS pixels.
type Point struct {
	X float64
	Y float64
}

// Particle is a single animated dot in an ambient background field.
type Particle struct {
	Position Point
	Size     float64
	SpeedY   float64 // upward drift per frame
	DriftX   float64 // horizontal drift per frame
	Alpha    float64
}

// Slot is a viewport-relative anchor for a parallax layer, in percent of the
// viewport size. Any jitter is already applied.
type Slot struct {
	XPct float64
	YPct float64
}

// ParallaxLayer is a decorative hero image with depth-coupled motion.
// Depth runs from 0 (far) to 1 (near). Base is the offset from the viewport
// centre in pixels for the current viewport size.
type ParallaxLayer struct {
	ImageSrc string
	Depth    float64
	Slot     Slot
	Base     Point
	Scale    float64
	Opacity  float64
	Blur     float64 // px
	Rotation float64 // degrees
}

// SizeClass buckets a layer by depth for styling.
func (l ParallaxLayer) SizeClass() string {
	switch {
	case l.Depth >= 0.85:
		return "large"
	case l.Depth >= 0.6:
		return "medium"
	default:
		return "small"
	}
}

// Transform is the on-screen placement of a layer for one frame.
type Transform struct {
	Translate Point // offset from the viewport centre
	Rotation  float64
	Scale     float64
	Opacity   float64
	Blur      float64
}
