package driven

import (
	"context"
	"errors"
	"image"
)

// Sentinel errors returned by asset adapters.
var (
	// ErrAssetsUnavailable indicates the image directory could not be listed.
	ErrAssetsUnavailable = errors.New("assets unavailable")

	// ErrImageNotFound indicates a requested public image does not exist or is
	// outside the public directory.
	ErrImageNotFound = errors.New("image not found")
)

// AssetLister defines the driven port for discovering public product images.
// ListImages returns URL paths with each segment percent-encoded.
type AssetLister interface {
	ListImages(ctx context.Context) ([]string, error)
}

// ImageSource opens decoded images by their public URL path.
type ImageSource interface {
	Open(ctx context.Context, urlPath string) (image.Image, error)
}
