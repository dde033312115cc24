// Package raster implements image composition and resizing with imaging.
package raster

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ericfisherdev/liquorlocker/internal/domain/model"
	"github.com/ericfisherdev/liquorlocker/internal/domain/port/driven"
)

// Compile-time interface check.
var _ driven.Rasterizer = (*Rasterizer)(nil)

const jpegQuality = 80

// Background is the poster backdrop, the hero section's base colour.
var Background = color.NRGBA{R: 0x14, G: 0x0f, B: 0x0c, A: 0xff}

// layerWidths are the CSS widths of the hero size classes at scale 1.
var layerWidths = map[string]float64{
	"large":  340,
	"medium": 260,
	"small":  190,
}

// Rasterizer paints scenes and resizes images in memory.
type Rasterizer struct{}

// New creates a Rasterizer.
func New() *Rasterizer {
	return &Rasterizer{}
}

// Compose paints the particle field first, then each layer far to near in
// scene order, centred on the canvas plus its translation.
func (r *Rasterizer) Compose(ctx context.Context, scene model.Scene) (image.Image, error) {
	if scene.Width <= 0 || scene.Height <= 0 {
		return nil, fmt.Errorf("compose scene: invalid size %dx%d", scene.Width, scene.Height)
	}

	canvas := imaging.New(scene.Width, scene.Height, Background)

	for _, p := range scene.Particles {
		canvas = paintParticle(canvas, p)
	}

	for i, sl := range scene.Layers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("compose layer %d: %w", i, err)
		}
		canvas = paintLayer(canvas, sl, scene.Width, scene.Height)
	}

	return canvas, nil
}

// ResizeToWidth scales img to width with a Lanczos filter. Upscaling is
// never performed.
func (r *Rasterizer) ResizeToWidth(img image.Image, width int) image.Image {
	if width <= 0 || img.Bounds().Dx() <= width {
		return img
	}
	return imaging.Resize(img, width, 0, imaging.Lanczos)
}

// Encode writes img to w as PNG or JPEG.
func (r *Rasterizer) Encode(w io.Writer, img image.Image, format driven.ImageFormat) error {
	var err error
	switch format {
	case driven.FormatJPEG:
		err = imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	default:
		err = imaging.Encode(w, img, imaging.PNG)
	}
	if err != nil {
		return fmt.Errorf("encode image: %w", err)
	}
	return nil
}

func paintLayer(canvas *image.NRGBA, sl model.SceneLayer, w, h int) *image.NRGBA {
	if sl.Image == nil || sl.Transform.Opacity <= 0 {
		return canvas
	}

	width := int(math.Round(layerWidths[sl.Layer.SizeClass()] * sl.Transform.Scale))
	if width <= 0 {
		return canvas
	}

	img := imaging.Resize(sl.Image, width, 0, imaging.Lanczos)
	// CSS rotates clockwise, imaging counter-clockwise.
	if sl.Transform.Rotation != 0 {
		img = imaging.Rotate(img, -sl.Transform.Rotation, color.Transparent)
	}
	if sl.Transform.Blur > 0 {
		img = imaging.Blur(img, sl.Transform.Blur)
	}

	b := img.Bounds()
	cx := float64(w)/2 + sl.Transform.Translate.X
	cy := float64(h)/2 + sl.Transform.Translate.Y
	pos := image.Pt(
		int(math.Round(cx-float64(b.Dx())/2)),
		int(math.Round(cy-float64(b.Dy())/2)),
	)
	return imaging.Overlay(canvas, img, pos, sl.Transform.Opacity)
}

func paintParticle(canvas *image.NRGBA, p model.Particle) *image.NRGBA {
	if p.Size <= 0 || p.Alpha <= 0 {
		return canvas
	}
	disc := newDisc(p.Size)
	pos := image.Pt(
		int(math.Round(p.Position.X-p.Size)),
		int(math.Round(p.Position.Y-p.Size)),
	)
	return imaging.Overlay(canvas, disc, pos, p.Alpha)
}

// newDisc returns a white filled circle of the given radius on a transparent
// square.
func newDisc(radius float64) *image.NRGBA {
	d := int(math.Ceil(radius * 2))
	if d < 1 {
		d = 1
	}
	disc := image.NewNRGBA(image.Rect(0, 0, d, d))
	c := float64(d) / 2
	for y := range d {
		for x := range d {
			dx := float64(x) + 0.5 - c
			dy := float64(y) + 0.5 - c
			if dx*dx+dy*dy <= radius*radius {
				disc.SetNRGBA(x, y, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
			}
		}
	}
	return disc
}
