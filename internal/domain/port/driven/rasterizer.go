package driven

import (
	"context"
	"image"
	"io"

	"github.com/ericfisherdev/liquorlocker/internal/domain/model"
)

// ImageFormat selects the encoding written by Rasterizer.Encode.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
)

// ContentType returns the MIME type for the format.
func (f ImageFormat) ContentType() string {
	if f == FormatJPEG {
		return "image/jpeg"
	}
	return "image/png"
}

// Rasterizer defines the driven port for server-side image work: compositing
// the hero poster and resizing public images.
type Rasterizer interface {
	// Compose paints scene onto a Width x Height canvas.
	Compose(ctx context.Context, scene model.Scene) (image.Image, error)

	// ResizeToWidth scales img down to width, preserving its aspect ratio.
	// Images already narrower than width are returned unchanged.
	ResizeToWidth(img image.Image, width int) image.Image

	Encode(w io.Writer, img image.Image, format ImageFormat) error
}
