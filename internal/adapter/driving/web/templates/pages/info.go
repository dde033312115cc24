package pages

import (
	"github.com/a-h/templ"

	"github.com/ericfisherdev/liquorlocker/internal/adapter/driving/web/templates"
	vm "github.com/ericfisherdev/liquorlocker/internal/adapter/driving/web/viewmodel"
)

// Contact renders the contact page.
func Contact(c vm.ContactDetails) templ.Component {
	return infoPage("Talk to Us",
		"Questions about a brand, pricing or delivery? Get in touch and we will come back to you within one business day.",
		c)
}

// Register renders the trade account page.
func Register(c vm.ContactDetails) templ.Component {
	return infoPage("Register to Range",
		"Liquor stores, bars and restaurants can open a trade account by emailing us your business name, "+
			"liquor licence number and delivery address. We will set you up and send through our current price list.",
		c)
}

func infoPage(title, intro string, c vm.ContactDetails) templ.Component {
	return templates.Component(func(h *templates.HTML) {
		h.Raw(`<section class="info-hero">`)
		h.Render(templates.ParticleCanvas("section"))
		h.Raw(`<div class="info-inner" data-reveal><h1>`)
		h.Text(title)
		h.Raw(`</h1><p class="info-intro">`)
		h.Text(intro)
		h.Raw(`</p><ul class="info-contact">`)
		h.Raw(`<li><span>Email</span><a href="mailto:`)
		h.Text(c.Email)
		h.Raw(`">`)
		h.Text(c.Email)
		h.Raw(`</a></li><li><span>Phone</span><a href="`)
		h.Text(c.PhoneHref)
		h.Raw(`">`)
		h.Text(c.Phone)
		h.Raw(`</a></li><li><span>Location</span>`)
		h.Text(c.Location)
		h.Raw(`</li></ul>`)
		h.Render(templates.SocialLinks(c, "/icons/facebook2.svg", "/icons/instagram2.svg", 28))
		h.Raw(`</div></section>`)
		h.Render(templates.WaveDivider(true, 100, ""))
	})
}
