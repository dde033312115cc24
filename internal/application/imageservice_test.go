package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/liquorlocker/internal/domain/port/driven"
)

func TestImageService_Resize(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		width      int
		wantFormat driven.ImageFormat
		wantType   string
	}{
		{"png stays png", "/products/a.png", 420, driven.FormatPNG, "image/png"},
		{"jpeg stays jpeg", "/products/b.JPG", 240, driven.FormatJPEG, "image/jpeg"},
		{"webp becomes png", "/brands/x/c.webp", 960, driven.FormatPNG, "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raster := &mockRasterizer{}
			svc := NewImageService(&mockImageSource{}, raster)

			got, err := svc.Resize(context.Background(), tt.src, tt.width)

			require.NoError(t, err)
			assert.Equal(t, []byte("encoded"), got.Data)
			assert.Equal(t, tt.wantType, got.ContentType)
			assert.Equal(t, tt.wantFormat, raster.format)
			assert.Equal(t, tt.width, raster.resizedTo)
		})
	}
}

func TestImageService_ResizeErrors(t *testing.T) {
	src := &mockImageSource{missing: map[string]bool{"/products/gone.png": true}}
	svc := NewImageService(src, &mockRasterizer{})

	_, err := svc.Resize(context.Background(), "/products/a.png", 421)
	assert.ErrorIs(t, err, ErrWidthNotAllowed)
	assert.Empty(t, src.opened, "a rejected width never touches the filesystem")

	_, err = svc.Resize(context.Background(), "/products/gone.png", 420)
	assert.ErrorIs(t, err, driven.ErrImageNotFound)
}

func TestImageService_ResizeIsCachedPerSourceAndWidth(t *testing.T) {
	src := &mockImageSource{}
	raster := &mockRasterizer{}
	svc := NewImageService(src, raster)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.cache.now = func() time.Time { return now }
	ctx := context.Background()

	for range 3 {
		_, err := svc.Resize(ctx, "/products/a.png", 420)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, raster.resized)
	assert.Equal(t, []string{"/products/a.png"}, src.opened)

	_, err := svc.Resize(ctx, "/products/a.png", 240)
	require.NoError(t, err)
	_, err = svc.Resize(ctx, "/products/b.png", 420)
	require.NoError(t, err)
	assert.Equal(t, 3, raster.resized)

	now = now.Add(resizeCacheTTL)
	_, err = svc.Resize(ctx, "/products/a.png", 420)
	require.NoError(t, err)
	assert.Equal(t, 4, raster.resized, "expired entries are resized again")
}

func TestImageService_MissingImageIsNotCached(t *testing.T) {
	src := &mockImageSource{missing: map[string]bool{"/products/late.png": true}}
	svc := NewImageService(src, &mockRasterizer{})

	_, err := svc.Resize(context.Background(), "/products/late.png", 420)
	require.ErrorIs(t, err, driven.ErrImageNotFound)

	delete(src.missing, "/products/late.png")
	got, err := svc.Resize(context.Background(), "/products/late.png", 420)
	require.NoError(t, err)
	assert.Equal(t, []byte("encoded"), got.Data)
}
