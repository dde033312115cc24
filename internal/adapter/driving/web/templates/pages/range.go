package pages

import (
	"github.com/a-h/templ"

	"github.com/ericfisherdev/liquorlocker/internal/adapter/driving/web/templates"
	vm "github.com/ericfisherdev/liquorlocker/internal/adapter/driving/web/viewmodel"
)

// EmptyRangeMessage is shown in place of brand sections when the catalog is
// empty or unreadable.
const EmptyRangeMessage = "No brands found yet."

// Range renders the catalog page: a particle header, the logo strip and one
// collapsible section per brand in catalog order.
func Range(r vm.RangeViewModel) templ.Component {
	return templates.Component(func(h *templates.HTML) {
		h.Raw(`<section class="range-hero" aria-labelledby="range-hero-title">`)
		h.Render(templates.ParticleCanvas("section"))
		h.Raw(`<div class="range-hero-inner">`)
		h.Raw(`<h1 id="range-hero-title" class="range-hero-title">Explore Our Range</h1>`)
		h.Raw(`<p class="range-hero-subtitle">Premium spirits, wines, and craft beers from our partner brands.</p>`)
		h.Raw(`<div class="range-hero-actions">`)
		h.Raw(`<a href="/register" class="cta cta-primary">Register to Range</a>`)
		h.Raw(`<a href="/contact" class="cta cta-secondary">Talk to Us</a>`)
		h.Raw(`</div></div></section>`)
		h.Render(templates.WaveDivider(true, 100, "var(--background)"))

		if len(r.Logos) > 0 {
			h.Render(LogoStrip(r.Logos))
		}

		h.Raw(`<div class="range-brands">`)
		if len(r.Brands) == 0 {
			h.Raw(`<div class="range-empty">`)
			h.Text(EmptyRangeMessage)
			h.Raw(`</div>`)
		}
		for _, b := range r.Brands {
			h.Render(BrandSection(b))
		}
		h.Raw(`</div>`)
	})
}

// LogoStrip renders the row of brand logos, each linking to its section.
func LogoStrip(brands []vm.BrandViewModel) templ.Component {
	return templates.Component(func(h *templates.HTML) {
		h.Raw(`<section class="logo-strip" aria-label="Our brands"><ul class="logo-list">`)
		for _, b := range brands {
			h.Raw(`<li class="logo-item" title="`)
			h.Text(b.Name)
			h.Raw(`"><a href="#`)
			h.Text(b.Anchor)
			h.Raw(`"><img class="strip-logo" src="`)
			h.URL(b.Logo)
			h.Raw(`" alt="`)
			h.Text(b.Name + " logo")
			h.Raw(`" width="160" height="60"></a></li>`)
		}
		h.Raw(`</ul></section>`)
	})
}

// BrandSection renders a brand header that expands to its product grid.
func BrandSection(b vm.BrandViewModel) templ.Component {
	return templates.Component(func(h *templates.HTML) {
		h.Raw(`<details class="brand" id="`)
		h.Text(b.Anchor)
		h.Raw(`" data-reveal><summary class="brand-header">`)
		h.Raw(`<div class="brand-logo-wrap">`)
		if b.Logo != "" {
			h.Raw(`<img class="brand-logo" src="`)
			h.URL(b.Logo)
			h.Raw(`" alt="`)
			h.Text(b.Name + " logo")
			h.Raw(`" width="140" height="140" loading="lazy">`)
		}
		h.Raw(`</div><div class="brand-meta"><h2 class="brand-name">`)
		h.Text(b.Name)
		h.Raw(`</h2><div class="brand-desc">`)
		h.Raw(b.DescriptionHTML)
		h.Raw(`</div></div><span class="chevron" aria-hidden="true">&#9662;</span></summary>`)

		h.Raw(`<ul class="product-grid">`)
		for _, p := range b.Products {
			h.Raw(`<li class="product-card" data-key="`)
			h.Text(p.Key)
			h.Raw(`"><div class="product-image-wrap"><img class="product-img" src="`)
			h.URL(p.Image)
			if p.Srcset != "" {
				h.Raw(`" srcset="`)
				h.Text(p.Srcset)
				h.Raw(`" sizes="(max-width: 600px) 80vw, (max-width: 900px) 50vw, 200px`)
			}
			h.Raw(`" alt="`)
			h.Text(p.Name)
			h.Raw(`" width="240" height="360" loading="lazy"></div>`)
			h.Raw(`<div class="product-body"><h3 class="product-name">`)
			h.Text(p.Name)
			h.Raw(`</h3><a href="/register" class="product-cta">Range this product</a></div></li>`)
		}
		h.Raw(`</ul></details>`)
	})
}
