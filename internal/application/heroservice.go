package application

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ericfisherdev/liquorlocker/internal/domain/model"
	"github.com/ericfisherdev/liquorlocker/internal/domain/motion"
	"github.com/ericfisherdev/liquorlocker/internal/domain/port/driven"
)

// Poster dimensions, the usual social preview card size.
const (
	PosterWidth  = 1200
	PosterHeight = 630
)

// posterFrames is how many frames the poster scene runs before capture,
// about a second and a half of drift at 60fps.
const posterFrames = 90

// posterTTL matches the poster's Cache-Control max-age.
const posterTTL = 5 * time.Minute

// HeroService builds the home page hero: the parallax layer set rendered into
// the page, and a still poster of the same composition.
type HeroService struct {
	catalog *CatalogService
	images  driven.ImageSource
	raster  driven.Rasterizer
	posters *renderCache
}

// NewHeroService creates a new HeroService with the required dependencies.
func NewHeroService(catalog *CatalogService, images driven.ImageSource, raster driven.Rasterizer) *HeroService {
	return &HeroService{
		catalog: catalog,
		images:  images,
		raster:  raster,
		posters: newRenderCache(4, posterTTL),
	}
}

// Layers samples the hero layers from the image pool for viewport vp. An
// unavailable pool yields no layers.
func (s *HeroService) Layers(ctx context.Context, rng motion.Rand, vp motion.Size) []model.ParallaxLayer {
	return motion.NewLayers(s.catalog.Images(ctx), rng, vp)
}

// Poster renders the hero as a PosterWidth x PosterHeight PNG. The scene is
// mounted on a manual clock with the pointer resting at the centre and run
// for a fixed number of frames before it is captured. Layers whose image
// cannot be opened are left out. A poster is reused for posterTTL as long as
// the image pool is unchanged; rng only feeds fresh renders.
func (s *HeroService) Poster(ctx context.Context, rng motion.Rand) ([]byte, error) {
	images := s.catalog.Images(ctx)
	key := strings.Join(images, "\n")

	v, err := s.posters.get(key, func() (any, error) {
		return s.renderPoster(ctx, rng, images)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (s *HeroService) renderPoster(ctx context.Context, rng motion.Rand, images []string) ([]byte, error) {
	vp := motion.Size{Width: PosterWidth, Height: PosterHeight, DPR: 1}

	clock := motion.NewManualClock()
	host := motion.NewHost(clock)
	host.Viewport.Emit(vp)
	host.Visibility.Emit(true)
	host.Pointer.Emit(model.Point{X: vp.Width / 2, Y: vp.Height / 2})
	host.Scroll.Emit(0)

	particles := motion.MountParticles(host, motion.SurfaceGlobal, rng, nil)
	defer particles.Unmount()
	parallax := motion.MountParallax(host, motion.NewLayers(images, rng, vp), nil)
	defer parallax.Unmount()

	clock.AdvanceN(posterFrames)

	scene := model.Scene{
		Width:     PosterWidth,
		Height:    PosterHeight,
		Particles: append([]model.Particle(nil), particles.Field().Particles...),
	}

	transforms := parallax.Transforms()
	for i, l := range parallax.Layers() {
		img, err := s.images.Open(ctx, l.ImageSrc)
		if err != nil {
			slog.Warn("poster layer skipped", "src", l.ImageSrc, "error", err)
			continue
		}
		scene.Layers = append(scene.Layers, model.SceneLayer{
			Image:     img,
			Layer:     l,
			Transform: transforms[i],
		})
	}

	img, err := s.raster.Compose(ctx, scene)
	if err != nil {
		return nil, fmt.Errorf("compose poster: %w", err)
	}

	var buf bytes.Buffer
	if err := s.raster.Encode(&buf, img, driven.FormatPNG); err != nil {
		return nil, fmt.Errorf("encode poster: %w", err)
	}
	return buf.Bytes(), nil
}
