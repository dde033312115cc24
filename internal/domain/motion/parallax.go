package motion

import (
	"math"

	"github.com/ericfisherdev/liquorlocker/internal/domain/model"
)

// MaxLayers is the number of images sampled for the hero.
const MaxLayers = 4

// Depths assigned to sampled layers in order, far to near.
var Depths = [MaxLayers]float64{0.25, 0.45, 0.70, 1.00}

// fallbackDepth is used if more layers than Depths are ever requested.
const fallbackDepth = 0.6

// SlotAnchor is a quadrant anchor with its jitter amplitude in vw/vh.
type SlotAnchor struct {
	XPct     float64
	YPct     float64
	JitterVW float64
	JitterVH float64
}

// DefaultSlots are the four quadrant anchors around the hero copy:
// top-left, top-right, bottom-left, bottom-right.
var DefaultSlots = [MaxLayers]SlotAnchor{
	{XPct: 18, YPct: 28, JitterVW: 6, JitterVH: 4},
	{XPct: 82, YPct: 30, JitterVW: 6, JitterVH: 4},
	{XPct: 22, YPct: 72, JitterVW: 6, JitterVH: 4},
	{XPct: 78, YPct: 68, JitterVW: 6, JitterVH: 4},
}

// Motion coupling constants.
const (
	// SmoothingFactor is the per-frame first-order low-pass factor.
	SmoothingFactor = 0.08

	pointerSwayX = 24.0
	pointerSwayY = 16.0
	scrollSway   = 0.15
)

// Layer appearance ranges. Near layers are larger, more opaque and sharper.
const (
	scaleBase    = 0.95
	scaleDepth   = 0.35
	scaleJitter  = 0.08
	opacityBase  = 0.22
	opacityDepth = 0.55
	blurMax      = 4.5
	rotationMax  = 30.0
)

// Jitter resolves the anchor to a concrete slot, offset by up to the jitter
// amplitude in each direction. One vw is one percent of the viewport width.
func (a SlotAnchor) Jitter(rng Rand) model.Slot {
	return model.Slot{
		XPct: a.XPct + (rng.Float64()*2-1)*a.JitterVW,
		YPct: a.YPct + (rng.Float64()*2-1)*a.JitterVH,
	}
}

// SlotBase converts a slot into a pixel offset from the viewport centre.
func SlotBase(s model.Slot, vp Size) model.Point {
	return model.Point{
		X: s.XPct/100*vp.Width - vp.Width/2,
		Y: s.YPct/100*vp.Height - vp.Height/2,
	}
}

// NewLayers samples up to MaxLayers images and builds their layers for the
// viewport vp. Depths are assigned far to near in sample order; slots are
// assigned in random order. images is not modified.
func NewLayers(images []string, rng Rand, vp Size) []model.ParallaxLayer {
	pick := append([]string(nil), images...)
	rng.Shuffle(len(pick), func(i, j int) { pick[i], pick[j] = pick[j], pick[i] })
	if len(pick) > MaxLayers {
		pick = pick[:MaxLayers]
	}

	anchors := append([]SlotAnchor(nil), DefaultSlots[:len(pick)]...)
	rng.Shuffle(len(anchors), func(i, j int) { anchors[i], anchors[j] = anchors[j], anchors[i] })

	layers := make([]model.ParallaxLayer, 0, len(pick))
	for i, src := range pick {
		d := fallbackDepth
		if i < len(Depths) {
			d = Depths[i]
		}

		slot := anchors[i].Jitter(rng)
		layers = append(layers, model.ParallaxLayer{
			ImageSrc: src,
			Depth:    d,
			Slot:     slot,
			Base:     SlotBase(slot, vp),
			Scale:    scaleBase + d*scaleDepth + rng.Float64()*scaleJitter,
			Opacity:  opacityBase + d*opacityDepth,
			Blur:     (1 - d) * blurMax,
			Rotation: uniform(rng, -rotationMax, rotationMax),
		})
	}
	return layers
}

// Rebase recomputes base positions for a new viewport. Depth, scale,
// opacity, blur and rotation are left untouched.
func Rebase(layers []model.ParallaxLayer, vp Size) {
	for i := range layers {
		layers[i].Base = SlotBase(layers[i].Slot, vp)
	}
}

// PointerSway returns the pixel sway per unit of pointer offset for depth d.
// Near layers sway more.
func PointerSway(d float64) model.Point {
	return model.Point{X: pointerSwayX * d, Y: pointerSwayY * d}
}

// ScrollSway returns the fraction of scroll offset a layer at depth d tracks.
// Far layers track scroll more.
func ScrollSway(d float64) float64 {
	return scrollSway * (1 - d)
}

// Projector smooths pointer and scroll input and projects layers onto the
// screen each frame.
type Projector struct {
	targetPointer   model.Point
	smoothedPointer model.Point
	targetScroll    float64
	smoothedScroll  float64
}

// SetPointer records the pointer offset from the viewport centre, as a
// fraction of the viewport in [-0.5, 0.5].
func (p *Projector) SetPointer(offset model.Point) {
	p.targetPointer = offset
}

// SetScroll records the section-relative scroll offset.
func (p *Projector) SetScroll(offset float64) {
	p.targetScroll = offset
}

// Advance moves the smoothed values one frame toward their targets.
func (p *Projector) Advance() {
	p.smoothedPointer.X += (p.targetPointer.X - p.smoothedPointer.X) * SmoothingFactor
	p.smoothedPointer.Y += (p.targetPointer.Y - p.smoothedPointer.Y) * SmoothingFactor
	p.smoothedScroll += (p.targetScroll - p.smoothedScroll) * SmoothingFactor
}

// Smoothed returns the current smoothed pointer and scroll values.
func (p *Projector) Smoothed() (model.Point, float64) {
	return p.smoothedPointer, p.smoothedScroll
}

// Project returns the layer's transform for the current smoothed input.
func (p *Projector) Project(l model.ParallaxLayer) model.Transform {
	sway := PointerSway(l.Depth)
	return model.Transform{
		Translate: model.Point{
			X: l.Base.X + p.smoothedPointer.X*sway.X,
			Y: l.Base.Y + p.smoothedPointer.Y*sway.Y + p.smoothedScroll*ScrollSway(l.Depth),
		},
		Rotation: l.Rotation,
		Scale:    l.Scale,
		Opacity:  l.Opacity,
		Blur:     l.Blur,
	}
}

// PointerOffset converts client coordinates into an offset from the viewport
// centre as a fraction of the viewport. A degenerate viewport yields zero.
func PointerOffset(client model.Point, vp Size) model.Point {
	if vp.Width <= 0 || vp.Height <= 0 {
		return model.Point{}
	}
	return model.Point{
		X: client.X/vp.Width - 0.5,
		Y: client.Y/vp.Height - 0.5,
	}
}

// SectionScroll clamps a section's top edge to [-viewportHeight, 0].
func SectionScroll(sectionTop, viewportHeight float64) float64 {
	return math.Min(0, math.Max(-viewportHeight, sectionTop))
}
