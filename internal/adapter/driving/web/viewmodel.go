package web

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ericfisherdev/liquorlocker/internal/adapter/driven/assetfs"
	vm "github.com/ericfisherdev/liquorlocker/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/liquorlocker/internal/application"
	"github.com/ericfisherdev/liquorlocker/internal/domain/model"
)

// Responsive widths requested from the /img resizer. Each must be one of
// application.AllowedWidths.
var (
	productWidths  = []int{240, 420, 640}
	featuredWidths = []int{240, 420}
)

// contactDetails is the business contact information.
var contactDetails = vm.ContactDetails{
	Email:     "Ben@thespiritsnetwork.co.nz",
	Phone:     "+64 27 625 6220",
	PhoneHref: "tel:+64276256220",
	Location:  "Auckland, New Zealand",
	Facebook:  "https://www.facebook.com/people/The-Liquor-Locker/61572703876000/",
	Instagram: "https://www.instagram.com/theliquorlocker___/",
}

// resizedURL returns the /img URL serving src at width w.
func resizedURL(src string, w int) string {
	return fmt.Sprintf("/img?src=%s&w=%d", url.QueryEscape(src), w)
}

// srcset builds a srcset attribute value for src over widths. Images the
// resizer cannot serve, such as remote URLs, get none.
func srcset(src string, widths []int) string {
	if _, err := assetfs.FSPath(src); err != nil {
		return ""
	}
	parts := make([]string, 0, len(widths))
	for _, w := range widths {
		parts = append(parts, fmt.Sprintf("%s %dw", resizedURL(src, w), w))
	}
	return strings.Join(parts, ", ")
}

// toHeroLayers converts domain parallax layers to hero view models.
func toHeroLayers(layers []model.ParallaxLayer) []vm.HeroLayerViewModel {
	out := make([]vm.HeroLayerViewModel, 0, len(layers))
	for _, l := range layers {
		out = append(out, vm.HeroLayerViewModel{
			Src:       l.ImageSrc,
			SizeClass: l.SizeClass(),
			Depth:     l.Depth,
			XPct:      l.Slot.XPct,
			YPct:      l.Slot.YPct,
			Scale:     l.Scale,
			Opacity:   l.Opacity,
			Blur:      l.Blur,
			Rotation:  l.Rotation,
		})
	}
	return out
}

// toFeaturedViewModel converts the application's featured picks.
func toFeaturedViewModel(picks application.FeaturedPicks) vm.FeaturedViewModel {
	products := make([]vm.FeaturedProductViewModel, 0, len(picks.Products))
	for i, p := range picks.Products {
		products = append(products, vm.FeaturedProductViewModel{
			Name:     p.Product.Name,
			Image:    p.Product.Image,
			Srcset:   srcset(p.Product.Image, featuredWidths),
			Rotation: p.Rotation,
			Index:    i,
			Phase:    fmt.Sprintf("%.1fs", float64(i)*0.6),
		})
	}

	return vm.FeaturedViewModel{
		Heading:  picks.Heading(),
		Products: products,
	}
}

// toBrandViewModel converts a domain Brand to its range page section.
func toBrandViewModel(b model.Brand) vm.BrandViewModel {
	products := make([]vm.ProductViewModel, 0, len(b.Products))
	for _, p := range b.Products {
		products = append(products, vm.ProductViewModel{
			Key:    b.ProductKey(p),
			Name:   p.Name,
			Image:  p.Image,
			Srcset: srcset(p.Image, productWidths),
		})
	}

	return vm.BrandViewModel{
		Name:            b.Name,
		Anchor:          b.Slug(),
		DescriptionHTML: RenderMarkdown(b.Description),
		Logo:            b.Logo,
		Products:        products,
	}
}

// toRangeViewModel converts the catalog into the range page.
func toRangeViewModel(brands []model.Brand) vm.RangeViewModel {
	rv := vm.RangeViewModel{
		Brands: make([]vm.BrandViewModel, 0, len(brands)),
		Logos:  []vm.BrandViewModel{},
	}
	for _, b := range brands {
		bv := toBrandViewModel(b)
		rv.Brands = append(rv.Brands, bv)
		if bv.Logo != "" {
			rv.Logos = append(rv.Logos, bv)
		}
	}
	return rv
}
