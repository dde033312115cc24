package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/ericfisherdev/liquorlocker/internal/domain/port/driven"
)

// ErrWidthNotAllowed indicates a resize width outside AllowedWidths.
var ErrWidthNotAllowed = errors.New("width not allowed")

// AllowedWidths are the widths the resizer will produce. Keeping the set
// small bounds the work a single public URL can trigger.
var AllowedWidths = []int{160, 240, 320, 420, 640, 960}

// Resize cache bounds. Entries expire so edits to public files show up.
const (
	resizeCacheEntries = 128
	resizeCacheTTL     = 10 * time.Minute
)

// ResizedImage is an encoded image ready to be served.
type ResizedImage struct {
	Data        []byte
	ContentType string
}

// ImageService serves public images scaled to a fixed set of widths.
type ImageService struct {
	images driven.ImageSource
	raster driven.Rasterizer
	cache  *renderCache
}

// NewImageService creates a new ImageService with the required dependencies.
func NewImageService(images driven.ImageSource, raster driven.Rasterizer) *ImageService {
	return &ImageService{
		images: images,
		raster: raster,
		cache:  newRenderCache(resizeCacheEntries, resizeCacheTTL),
	}
}

// Resize opens the public image at src and scales it down to width. JPEG
// sources are re-encoded as JPEG; everything else becomes PNG so transparent
// bottles keep their alpha. Results are cached per source and width.
func (s *ImageService) Resize(ctx context.Context, src string, width int) (*ResizedImage, error) {
	if !slices.Contains(AllowedWidths, width) {
		return nil, fmt.Errorf("resize %q to %d: %w", src, width, ErrWidthNotAllowed)
	}

	v, err := s.cache.get(strconv.Itoa(width)+" "+src, func() (any, error) {
		return s.resize(ctx, src, width)
	})
	if err != nil {
		return nil, err
	}
	return v.(*ResizedImage), nil
}

func (s *ImageService) resize(ctx context.Context, src string, width int) (*ResizedImage, error) {
	img, err := s.images.Open(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("resize %q: %w", src, err)
	}

	format := outputFormat(src)
	var buf bytes.Buffer
	if err := s.raster.Encode(&buf, s.raster.ResizeToWidth(img, width), format); err != nil {
		return nil, fmt.Errorf("resize %q: %w", src, err)
	}

	return &ResizedImage{
		Data:        buf.Bytes(),
		ContentType: format.ContentType(),
	}, nil
}

func outputFormat(src string) driven.ImageFormat {
	switch strings.ToLower(path.Ext(src)) {
	case ".jpg", ".jpeg":
		return driven.FormatJPEG
	default:
		return driven.FormatPNG
	}
}
