package assetfs

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/liquorlocker/internal/domain/motion"
	"github.com/ericfisherdev/liquorlocker/internal/domain/port/driven"
)

func TestLister_Flat_FiltersByExtension(t *testing.T) {
	fsys := fstest.MapFS{
		"products/a.png":        {Data: []byte("png")},
		"products/b.txt":        {Data: []byte("text")},
		"products/c.JPG":        {Data: []byte("jpg")},
		"products/nested/d.png": {Data: []byte("png")},
	}
	l := NewLister(fsys, "products", "/products/", false)

	images, err := l.ListImages(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"/products/a.png", "/products/c.JPG"}, images)
}

func TestLister_AllowedExtensions(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a.jpg", true},
		{"a.jpeg", true},
		{"a.PNG", true},
		{"a.webp", true},
		{"a.Gif", true},
		{"a.avif", true},
		{"a.svg", false},
		{"a.png.txt", false},
		{"png", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsImage(tt.name))
		})
	}
}

func TestLister_Recursive(t *testing.T) {
	fsys := fstest.MapFS{
		"brands/logo.webp":              {Data: []byte("x")},
		"brands/zephyr/london dry.png":  {Data: []byte("x")},
		"brands/zephyr/notes.md":        {Data: []byte("x")},
		"brands/zephyr/pink/label.avif": {Data: []byte("x")},
		"products/ignored.png":          {Data: []byte("x")},
	}
	l := NewLister(fsys, "brands", "/brands", true)

	images, err := l.ListImages(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{
		"/brands/logo.webp",
		"/brands/zephyr/london%20dry.png",
		"/brands/zephyr/pink/label.avif",
	}, images)
}

func TestLister_EncodesEachSegment(t *testing.T) {
	names := []string{"Kōwhai Gin.png", "rum & coke.jpg", "50% proof.webp", "what?.gif"}
	fsys := fstest.MapFS{}
	for _, n := range names {
		fsys["brands/Tāne Mahuta/"+n] = &fstest.MapFile{Data: []byte("x")}
	}
	l := NewLister(fsys, "brands", "/brands/", true)

	images, err := l.ListImages(context.Background())

	require.NoError(t, err)
	require.Len(t, images, len(names))
	for _, img := range images {
		rest := strings.TrimPrefix(img, "/brands/")
		segments := strings.Split(rest, "/")
		require.Len(t, segments, 2, "slash inside a name must not appear unencoded: %s", img)

		dir, err := url.PathUnescape(segments[0])
		require.NoError(t, err)
		assert.Equal(t, "Tāne Mahuta", dir)

		file, err := url.PathUnescape(segments[1])
		require.NoError(t, err)
		assert.Contains(t, names, file)
		assert.NotContains(t, segments[1], " ")
	}
}

func TestLister_ShippedProductsFillTheHero(t *testing.T) {
	public := os.DirFS(filepath.Join("..", "..", "..", "..", "public"))
	l := NewLister(public, "products", "/products/", false)

	images, err := l.ListImages(context.Background())

	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(images), motion.MaxLayers)

	src := NewImages(public)
	for _, img := range images {
		_, err := src.Open(context.Background(), img)
		assert.NoError(t, err, img)
	}
}

func TestLister_MissingDirectory(t *testing.T) {
	for _, recursive := range []bool{false, true} {
		l := NewLister(fstest.MapFS{}, "products", "/products/", recursive)

		images, err := l.ListImages(context.Background())

		assert.Nil(t, images)
		assert.ErrorIs(t, err, driven.ErrAssetsUnavailable)
	}
}

func TestLister_EmptyDirectoryIsNotNil(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "products"), 0o755))
	l := NewLister(os.DirFS(dir), "products", "/products/", false)

	images, err := l.ListImages(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, images)
	assert.Empty(t, images)
}

func TestFSPath(t *testing.T) {
	tests := []struct {
		urlPath string
		want    string
		wantErr bool
	}{
		{"/products/a.png", "products/a.png", false},
		{"/products/K%C5%8Dwhai%20Gin.png", "products/Kōwhai Gin.png", false},
		{"/products/../secret.png", "", true},
		{"/products/%2e%2e/secret.png", "", true},
		{"/products/a%2Fb.png", "", true},
		{"/products//a.png", "", true},
		{"/products/readme.txt", "", true},
		{"/products/bad%zz.png", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.urlPath, func(t *testing.T) {
			got, err := FSPath(tt.urlPath)
			if tt.wantErr {
				assert.ErrorIs(t, err, driven.ErrImageNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImages_Open(t *testing.T) {
	fsys := fstest.MapFS{
		"products/red bottle.png": {Data: encodePNG(t, 12, 8)},
		"products/broken.png":     {Data: []byte("not an image")},
	}
	src := NewImages(fsys)
	ctx := context.Background()

	img, err := src.Open(ctx, "/products/red%20bottle.png")
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	_, err = src.Open(ctx, "/products/missing.png")
	assert.ErrorIs(t, err, driven.ErrImageNotFound)

	_, err = src.Open(ctx, "/products/broken.png")
	require.Error(t, err)
	assert.NotErrorIs(t, err, driven.ErrImageNotFound)
}
