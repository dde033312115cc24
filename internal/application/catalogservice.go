package application

import (
	"context"
	"log/slog"
	"math"

	"github.com/ericfisherdev/liquorlocker/internal/domain/model"
	"github.com/ericfisherdev/liquorlocker/internal/domain/motion"
	"github.com/ericfisherdev/liquorlocker/internal/domain/port/driven"
)

// Featured pick limits.
const (
	maxFeaturedProducts = 3
	featuredTiltMax     = 20
)

// CatalogService reads the brand catalog and the hero image pool. Neither
// source is allowed to fail a page: errors are logged and an empty result
// is returned instead.
type CatalogService struct {
	catalog driven.CatalogStore
	assets  driven.AssetLister
}

// NewCatalogService creates a new CatalogService with the required dependencies.
func NewCatalogService(catalog driven.CatalogStore, assets driven.AssetLister) *CatalogService {
	return &CatalogService{
		catalog: catalog,
		assets:  assets,
	}
}

// Brands returns every brand in catalog order, or an empty non-nil slice if
// the catalog cannot be read.
func (s *CatalogService) Brands(ctx context.Context) []model.Brand {
	brands, err := s.catalog.ListBrands(ctx)
	if err != nil {
		slog.Error("list brands failed", "error", err)
		return []model.Brand{}
	}
	if brands == nil {
		return []model.Brand{}
	}
	return brands
}

// Images returns the URL paths of the hero image pool, or an empty non-nil
// slice if the asset directory cannot be listed.
func (s *CatalogService) Images(ctx context.Context) []string {
	images, err := s.assets.ListImages(ctx)
	if err != nil {
		slog.Error("list images failed", "error", err)
		return []string{}
	}
	if images == nil {
		return []string{}
	}
	return images
}

// FeaturedProduct is a product shown on the home page, tilted by Rotation
// degrees.
type FeaturedProduct struct {
	Product  model.Product
	Rotation int
}

// FeaturedPicks is the home page's "finest" selection. Brand is nil when the
// catalog is empty.
type FeaturedPicks struct {
	Brand    *model.Brand
	Products []FeaturedProduct
}

// Heading returns the section title for the picks.
func (p FeaturedPicks) Heading() string {
	if p.Brand == nil {
		return "Some of our finest beverages"
	}
	return "Some of our finest from " + p.Brand.Name
}

// FeaturedPicks chooses one brand uniformly at random and up to three of its
// products in random order, each with a tilt in [-20, 20] degrees.
func (s *CatalogService) FeaturedPicks(ctx context.Context, rng motion.Rand) FeaturedPicks {
	brands := s.Brands(ctx)
	if len(brands) == 0 {
		return FeaturedPicks{Products: []FeaturedProduct{}}
	}

	brand := brands[rng.IntN(len(brands))]

	products := append([]model.Product(nil), brand.Products...)
	rng.Shuffle(len(products), func(i, j int) { products[i], products[j] = products[j], products[i] })
	if len(products) > maxFeaturedProducts {
		products = products[:maxFeaturedProducts]
	}

	picks := FeaturedPicks{
		Brand:    &brand,
		Products: make([]FeaturedProduct, 0, len(products)),
	}
	for _, p := range products {
		picks.Products = append(picks.Products, FeaturedProduct{
			Product:  p,
			Rotation: featuredTilt(rng),
		})
	}
	return picks
}

// featuredTilt returns round(U*40 - 20).
func featuredTilt(rng motion.Rand) int {
	return int(math.Round(rng.Float64()*2*featuredTiltMax - featuredTiltMax))
}
