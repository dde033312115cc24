package web

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/liquorlocker/internal/adapter/driven/assetfs"
	"github.com/ericfisherdev/liquorlocker/internal/adapter/driven/raster"
	"github.com/ericfisherdev/liquorlocker/internal/application"
	"github.com/ericfisherdev/liquorlocker/internal/domain/model"
	"github.com/ericfisherdev/liquorlocker/internal/domain/motion"
	"github.com/ericfisherdev/liquorlocker/internal/domain/port/driven"
)

const testSiteURL = "https://liquorlocker.test"

// --- Mock implementations ---

type mockCatalogStore struct {
	brands []model.Brand
	err    error
}

func (m *mockCatalogStore) ListBrands(_ context.Context) ([]model.Brand, error) {
	return m.brands, m.err
}

// --- Helpers ---

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: 120, G: 60, B: 20, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testPublicFS(t *testing.T) fstest.MapFS {
	t.Helper()
	data := encodePNG(t, 800, 400)
	return fstest.MapFS{
		"products/a.png":         {Data: data},
		"products/b.png":         {Data: data},
		"products/c.png":         {Data: data},
		"products/d.png":         {Data: data},
		"products/e gin.png":     {Data: data},
		"products/readme.txt":    {Data: []byte("not an image")},
		"brands/zephyr/logo.png": {Data: data},
		"logo.svg":               {Data: []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)},
	}
}

func testBrands() []model.Brand {
	return []model.Brand{
		{
			Name:        "Zephyr",
			Description: "Small-batch **gin** from Nelson.",
			Logo:        "/brands/zephyr/logo.png",
			Products: []model.Product{
				{Name: "London Dry", Image: "/products/a.png"},
				{Name: "Pink", Image: "/products/b.png"},
				{Name: "Navy Strength", Image: "/products/c.png"},
				{Name: "Old Tom", Image: "/products/d.png"},
			},
		},
		{
			Name:     "Kiwi Rum Co",
			Products: []model.Product{{Name: "Spiced", Image: "/products/e%20gin.png"}},
		},
	}
}

func setupMux(t *testing.T, catalog driven.CatalogStore) http.Handler {
	t.Helper()
	public := testPublicFS(t)

	lister := assetfs.NewLister(public, "products", "/products/", false)
	images := assetfs.NewImages(public)
	rasterizer := raster.New()

	catalogSvc := application.NewCatalogService(catalog, lister)
	heroSvc := application.NewHeroService(catalogSvc, images, rasterizer)
	imageSvc := application.NewImageService(images, rasterizer)

	h := NewHandler(catalogSvc, heroSvc, imageSvc, public, testSiteURL, slog.Default())
	h.newRand = func() motion.Rand { return motion.Seeded(42) }

	mux := http.NewServeMux()
	RegisterRoutes(mux, h)
	return mux
}

func get(t *testing.T, mux http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

// --- Pages ---

func TestHome(t *testing.T) {
	mux := setupMux(t, &mockCatalogStore{brands: testBrands()})

	rec := get(t, mux, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Equal(t, motion.MaxLayers, strings.Count(body, `class="hero-layer"`))
	assert.Contains(t, body, `data-hero`)
	assert.Contains(t, body, `data-particles="global"`)
	assert.Contains(t, body, "BRANDS WITH A STORY")
	assert.Contains(t, body, "Discover a World of Exceptional Liquor")
	assert.Contains(t, body, "Our Story")
	assert.Contains(t, body, "Want To Work Together?")
	assert.Contains(t, body, `<meta property="og:image" content="`+testSiteURL+`/og/hero.png">`)
	assert.Contains(t, body, `<link rel="canonical" href="`+testSiteURL+`/">`)
	assert.Contains(t, body, `href="/range"`)
	assert.Contains(t, body, `href="/contact"`)
	assert.Contains(t, body, `href="/register"`)
	assert.Contains(t, body, "data-reveal")

	cards := strings.Count(body, "data-featured-card")
	assert.Greater(t, cards, 0)
	assert.LessOrEqual(t, cards, 3)
	assert.Regexp(t, `Some of our finest from (Zephyr|Kiwi Rum Co)`, body)
	assert.Regexp(t, `--rot: -?\d+deg`, body)
}

func TestHome_EmptyCatalog(t *testing.T) {
	mux := setupMux(t, &mockCatalogStore{err: driven.ErrCatalogUnavailable})

	rec := get(t, mux, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Some of our finest beverages")
	assert.NotContains(t, body, "data-featured-card")
}

func TestHome_DeterministicForSeed(t *testing.T) {
	mux := setupMux(t, &mockCatalogStore{brands: testBrands()})

	a := get(t, mux, "/").Body.String()
	b := get(t, mux, "/").Body.String()

	assert.Equal(t, a, b)
}

func TestRange(t *testing.T) {
	mux := setupMux(t, &mockCatalogStore{brands: testBrands()})

	rec := get(t, mux, "/range")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Explore Our Range")
	assert.Contains(t, body, `data-particles="section"`)
	assert.NotContains(t, body, "No brands found yet.")

	zephyr := strings.Index(body, `<details class="brand" id="zephyr"`)
	kiwi := strings.Index(body, `<details class="brand" id="kiwi-rum-co"`)
	require.NotEqual(t, -1, zephyr)
	require.NotEqual(t, -1, kiwi)
	assert.Less(t, zephyr, kiwi, "brands keep catalog order")

	london := strings.Index(body, "London Dry")
	oldTom := strings.Index(body, "Old Tom")
	assert.Less(t, london, oldTom, "products keep catalog order")

	assert.Equal(t, 1, strings.Count(body, `class="logo-item"`), "only brands with a logo are in the strip")
	assert.Contains(t, body, `href="#zephyr"`)
	assert.Contains(t, body, "<strong>gin</strong>")
	assert.Contains(t, body, `/img?src=%2Fproducts%2Fa.png&amp;w=420 420w`)
	assert.Equal(t, 5, strings.Count(body, "Range this product"))
}

func TestRange_Empty(t *testing.T) {
	tests := []struct {
		name    string
		catalog *mockCatalogStore
	}{
		{"unreadable catalog", &mockCatalogStore{err: driven.ErrCatalogUnavailable}},
		{"empty catalog", &mockCatalogStore{brands: []model.Brand{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, setupMux(t, tt.catalog), "/range")

			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, "No brands found yet.")
			assert.NotContains(t, body, `class="logo-strip"`)
			assert.NotContains(t, body, "<details")
		})
	}
}

func TestRange_EscapesCatalogText(t *testing.T) {
	brands := []model.Brand{{
		Name:        `Tom <b>& Jerry</b>`,
		Description: `<script>alert(1)</script>`,
		Logo:        "javascript:alert(1)",
		Products:    []model.Product{{Name: `"Quoted" Gin`, Image: "/products/a.png"}},
	}}
	mux := setupMux(t, &mockCatalogStore{brands: brands})

	body := get(t, mux, "/range").Body.String()

	assert.Contains(t, body, "Tom &lt;b&gt;&amp; Jerry&lt;/b&gt;")
	assert.NotContains(t, body, "<b>& Jerry")
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.NotContains(t, body, `src="javascript:`)
	assert.Contains(t, body, "&#34;Quoted&#34; Gin")
}

func TestRemoteProductImagesSkipResizer(t *testing.T) {
	const remote = "https://cdn.example.com/p.png"
	brands := []model.Brand{{
		Name:     "Zephyr",
		Products: []model.Product{{Name: "Remote Gin", Image: remote}},
	}}
	mux := setupMux(t, &mockCatalogStore{brands: brands})

	for _, path := range []string{"/range", "/"} {
		t.Run(path, func(t *testing.T) {
			body := get(t, mux, path).Body.String()

			assert.Contains(t, body, `src="`+remote+`"`)
			assert.NotContains(t, body, "/img?src=https")
			assert.NotContains(t, body, "srcset=")
		})
	}
}

func TestSrcset(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"/products/a.png", "/img?src=%2Fproducts%2Fa.png&w=240 240w, /img?src=%2Fproducts%2Fa.png&w=420 420w"},
		{"https://cdn.example.com/p.png", ""},
		{"//cdn.example.com/p.png", ""},
		{"/products/readme.txt", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, srcset(tt.src, []int{240, 420}))
		})
	}
}

func TestInfoPages(t *testing.T) {
	tests := []struct {
		path    string
		heading string
	}{
		{"/contact", "Talk to Us"},
		{"/register", "Register to Range"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, setupMux(t, &mockCatalogStore{}), tt.path)

			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, "<h1>"+tt.heading+"</h1>")
			assert.Contains(t, body, "mailto:Ben@thespiritsnetwork.co.nz")
			assert.Contains(t, body, "+64 27 625 6220")
			assert.Contains(t, body, `aria-current="page"`)
		})
	}
}

// --- Images ---

func TestHeroPoster(t *testing.T) {
	mux := setupMux(t, &mockCatalogStore{})

	rec := get(t, mux, "/og/hero.png")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, application.PosterWidth, img.Bounds().Dx())
	assert.Equal(t, application.PosterHeight, img.Bounds().Dy())
}

func TestResizedImage(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		width      string
		wantStatus int
		wantWidth  int
	}{
		{"scales down", "/products/a.png", "420", http.StatusOK, 420},
		{"encoded name", "/products/e%20gin.png", "240", http.StatusOK, 240},
		{"never upscales", "/products/a.png", "960", http.StatusOK, 800},
		{"width not allowed", "/products/a.png", "421", http.StatusBadRequest, 0},
		{"missing width", "/products/a.png", "", http.StatusBadRequest, 0},
		{"missing src", "", "420", http.StatusBadRequest, 0},
		{"unknown image", "/products/zzz.png", "420", http.StatusNotFound, 0},
		{"not an image", "/products/readme.txt", "420", http.StatusNotFound, 0},
		{"path traversal", "/products/../logo.png", "420", http.StatusNotFound, 0},
	}

	mux := setupMux(t, &mockCatalogStore{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := url.Values{}
			if tt.src != "" {
				q.Set("src", tt.src)
			}
			if tt.width != "" {
				q.Set("w", tt.width)
			}

			rec := get(t, mux, "/img?"+q.Encode())

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
			img, err := png.Decode(rec.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.wantWidth, img.Bounds().Dx())
		})
	}
}

// --- Static and public files ---

func TestStaticAndPublicFiles(t *testing.T) {
	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/static/js/particles.js", http.StatusOK},
		{"/static/js/hero.js", http.StatusOK},
		{"/static/js/site.js", http.StatusOK},
		{"/static/css/site.css", http.StatusOK},
		{"/logo.svg", http.StatusOK},
		{"/products/a.png", http.StatusOK},
		{"/products/e%20gin.png", http.StatusOK},
		{"/products/", http.StatusNotFound},
		{"/nope", http.StatusNotFound},
	}

	mux := setupMux(t, &mockCatalogStore{})

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, mux, tt.path)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
