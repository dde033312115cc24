package assetfs

import (
	"context"
	"fmt"
	"image"
	"io/fs"
	"net/url"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register the WebP decoder

	"github.com/ericfisherdev/liquorlocker/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ImageSource = (*Images)(nil)

// Images decodes public images addressed by their URL path.
type Images struct {
	fsys fs.FS
}

// NewImages creates an Images source over the public filesystem.
func NewImages(fsys fs.FS) *Images {
	return &Images{fsys: fsys}
}

// Open decodes the image at urlPath, applying EXIF orientation. Paths that
// escape the public directory, are not images, or do not exist wrap
// driven.ErrImageNotFound.
func (i *Images) Open(ctx context.Context, urlPath string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name, err := FSPath(urlPath)
	if err != nil {
		return nil, err
	}

	f, err := i.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w: %w", urlPath, driven.ErrImageNotFound, err)
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", urlPath, err)
	}
	return img, nil
}

// FSPath converts a public URL path such as "/products/My%20Gin.png" into a
// filesystem path relative to the public root. It rejects anything that is
// not a valid, non-escaping image path.
func FSPath(urlPath string) (string, error) {
	segments := strings.Split(strings.TrimPrefix(urlPath, "/"), "/")
	for i, s := range segments {
		decoded, err := url.PathUnescape(s)
		if err != nil || decoded == "" || decoded == "." || decoded == ".." || strings.ContainsAny(decoded, `/\`) {
			return "", fmt.Errorf("image path %q: %w", urlPath, driven.ErrImageNotFound)
		}
		segments[i] = decoded
	}

	name := strings.Join(segments, "/")
	if !fs.ValidPath(name) || !IsImage(name) {
		return "", fmt.Errorf("image path %q: %w", urlPath, driven.ErrImageNotFound)
	}
	return name, nil
}
