// Package pages holds the page-level templ components, one per route.
package pages

import (
	"github.com/a-h/templ"

	"github.com/ericfisherdev/liquorlocker/internal/adapter/driving/web/templates"
	vm "github.com/ericfisherdev/liquorlocker/internal/adapter/driving/web/viewmodel"
)

// Home renders the landing page: hero, discover, about, featured picks and
// the work-together call to action.
func Home(home vm.HomeViewModel, contact vm.ContactDetails) templ.Component {
	return templates.Component(func(h *templates.HTML) {
		h.Render(Hero(home.Layers))
		h.Render(templates.WaveDivider(true, 100, ""))
		h.Render(Discover())
		h.Render(About(contact))
		h.Render(Featured(home.Featured))
		h.Render(WorkTogether())
	})
}

// Hero renders the parallax hero. Layer placement is carried in data
// attributes for hero.js.
func Hero(layers []vm.HeroLayerViewModel) templ.Component {
	return templates.Component(func(h *templates.HTML) {
		h.Raw(`<section class="hero" data-hero>`)
		h.Raw(`<div class="hero-layers" aria-hidden="true">`)
		for _, l := range layers {
			h.Raw(`<div class="hero-layer" data-depth="`)
			h.Float(l.Depth)
			h.Raw(`" data-x-pct="`)
			h.Float(l.XPct)
			h.Raw(`" data-y-pct="`)
			h.Float(l.YPct)
			h.Raw(`" data-scale="`)
			h.Float(l.Scale)
			h.Raw(`" data-opacity="`)
			h.Float(l.Opacity)
			h.Raw(`" data-blur="`)
			h.Float(l.Blur)
			h.Raw(`" data-rotate="`)
			h.Float(l.Rotation)
			h.Raw(`"><img class="hero-layer-img `)
			h.Text(l.SizeClass)
			h.Raw(`" src="`)
			h.URL(l.Src)
			h.Raw(`" alt="" loading="eager" decoding="async" draggable="false"></div>`)
		}
		h.Raw(`</div>`)
		h.Render(templates.ParticleCanvas("global"))
		h.Raw(`<div class="hero-content"><h1>`)
		h.Raw(`<span class="first-line">BRANDS WITH A STORY</span>`)
		h.Raw(`<span class="second-line">and we are here to tell it.</span>`)
		h.Raw(`</h1><a href="/range" class="cta">Explore Our Range</a></div>`)
		h.Raw(`</section>`)
	})
}

// Discover renders the introductory range blurb.
func Discover() templ.Component {
	return templates.Component(func(h *templates.HTML) {
		h.Raw(`<section class="discover" aria-labelledby="discover-heading" data-reveal><div class="inner">`)
		h.Raw(`<h2 id="discover-heading">Discover a World of Exceptional Liquor</h2>`)
		h.Raw(`<p>Indulge in the finest selection of premium beverages, including exquisite gins, rare rums, `)
		h.Raw(`exceptional whiskies, smooth vodkas, carefully curated wines, and a diverse range of craft beers, `)
		h.Raw(`sourced from around the globe.</p>`)
		h.Raw(`<a href="/range" class="cta">Explore Our Range</a>`)
		h.Raw(`</div></section>`)
	})
}

// About renders the company story.
func About(contact vm.ContactDetails) templ.Component {
	return templates.Component(func(h *templates.HTML) {
		h.Raw(`<section class="about" aria-labelledby="about-heading" data-reveal><div class="inner">`)
		h.Raw(`<h2 id="about-heading">Our Story</h2>`)
		h.Raw(`<p class="subheading">Premium Liquor Distributor<br>Est. 2025</p>`)
		h.Raw(`<p>Welcome to <strong>The Liquor Locker</strong>, your premium beverage distributor in New Zealand. `)
		h.Raw(`We specialize in importing and distributing a curated selection of premium spirits, wines, `)
		h.Raw(`and craft beers. From top-shelf gin, rum, whiskey, and vodka to handpicked wines and `)
		h.Raw(`exceptional local and international brews, we&#39;re dedicated to bringing the finest beverages `)
		h.Raw(`to all New Zealanders. Whether you&#39;re a liquor store, bar, or restaurant, we ensure you have `)
		h.Raw(`access to an exclusive portfolio tailored to elevate your offering.</p>`)
		h.Raw(`<p>At The Liquor Locker, we take pride in our dedicated team that is passionate about delivering `)
		h.Raw(`exceptional service. With a focus on quality and craftsmanship, we strive to set ourselves `)
		h.Raw(`apart from our competitors by curating a portfolio of liquor that embodies excellence. `)
		h.Raw(`Our commitment to excellence is what defines us and sets us apart in the industry.</p>`)
		h.Render(templates.SocialLinks(contact, "/icons/facebook2.svg", "/icons/instagram2.svg", 28))
		h.Raw(`</div></section>`)
	})
}

// Featured renders the tilted product cards from one brand. With no picks
// only the heading is shown.
func Featured(f vm.FeaturedViewModel) templ.Component {
	return templates.Component(func(h *templates.HTML) {
		h.Raw(`<section class="featured" data-reveal>`)
		h.Render(templates.ParticleCanvas("section"))
		h.Raw(`<div class="featured-content"><h2 class="featured-title">`)
		h.Text(f.Heading)
		h.Raw(`</h2><div class="featured-row">`)
		for _, p := range f.Products {
			h.Raw(`<a href="/range" class="featured-card" data-featured-card style="--rot: `)
			h.Int(p.Rotation)
			h.Raw(`deg; --i: `)
			h.Int(p.Index)
			h.Raw(`; --phase: `)
			h.Text(p.Phase)
			h.Raw(`"><img class="featured-img" src="`)
			h.URL(p.Image)
			if p.Srcset != "" {
				h.Raw(`" srcset="`)
				h.Text(p.Srcset)
				h.Raw(`" sizes="220px`)
			}
			h.Raw(`" alt="`)
			h.Text(p.Name)
			h.Raw(`" width="220" height="320" draggable="false"`)
			if p.Index == 0 {
				h.Raw(` fetchpriority="high"`)
			} else {
				h.Raw(` loading="lazy"`)
			}
			h.Raw(`></a>`)
		}
		h.Raw(`</div></div></section>`)
	})
}

// WorkTogether renders the registration call to action.
func WorkTogether() templ.Component {
	return templates.Component(func(h *templates.HTML) {
		h.Raw(`<section class="work-together" data-reveal>`)
		h.Render(templates.ParticleCanvas("section"))
		h.Raw(`<div class="work-together-content">`)
		h.Raw(`<h2 class="work-together-title">Want To Work Together?</h2>`)
		h.Raw(`<p class="work-together-text">Do you want to range some of our epic products? It has never been easier to get your `)
		h.Raw(`account set up than it is today. Fill out the form and start ordering today.</p>`)
		h.Raw(`<a href="/register" class="cta">Get Started</a>`)
		h.Raw(`</div></section>`)
	})
}
