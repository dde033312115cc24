// Package assetfs implements the asset ports on top of the public directory.
package assetfs

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"strings"

	"github.com/ericfisherdev/liquorlocker/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.AssetLister = (*Lister)(nil)

// imageExts is the allow-list of image extensions, compared case-insensitively.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".avif": true,
}

// IsImage reports whether name has an allowed image extension.
func IsImage(name string) bool {
	return imageExts[strings.ToLower(path.Ext(name))]
}

// Lister lists image files beneath a directory of the public filesystem.
type Lister struct {
	fsys      fs.FS
	dir       string
	urlPrefix string
	recursive bool
}

// NewLister creates a Lister for dir within fsys. Returned URLs start with
// urlPrefix. When recursive is false only the top level of dir is listed.
func NewLister(fsys fs.FS, dir, urlPrefix string, recursive bool) *Lister {
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}
	return &Lister{
		fsys:      fsys,
		dir:       dir,
		urlPrefix: urlPrefix,
		recursive: recursive,
	}
}

// ListImages returns the URL path of every image file in lexical order.
// Filesystem failures wrap driven.ErrAssetsUnavailable.
func (l *Lister) ListImages(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if l.recursive {
		return l.walk(ctx)
	}
	return l.readDir()
}

func (l *Lister) readDir() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, l.dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w: %w", l.dir, driven.ErrAssetsUnavailable, err)
	}

	images := []string{}
	for _, e := range entries {
		if !e.Type().IsRegular() || !IsImage(e.Name()) {
			continue
		}
		images = append(images, l.urlFor(e.Name()))
	}
	return images, nil
}

func (l *Lister) walk(ctx context.Context) ([]string, error) {
	images := []string{}
	err := fs.WalkDir(l.fsys, l.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() || !IsImage(d.Name()) {
			return nil
		}

		rel := p
		if l.dir != "." {
			rel = strings.TrimPrefix(p, l.dir+"/")
		}
		images = append(images, l.urlFor(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w: %w", l.dir, driven.ErrAssetsUnavailable, err)
	}
	return images, nil
}

// urlFor percent-encodes each segment of a slash-separated relative path.
func (l *Lister) urlFor(rel string) string {
	segments := strings.Split(rel, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return l.urlPrefix + strings.Join(segments, "/")
}
