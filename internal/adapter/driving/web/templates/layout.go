package templates

import (
	"github.com/a-h/templ"

	vm "github.com/ericfisherdev/liquorlocker/internal/adapter/driving/web/viewmodel"
)

// SiteName is the company name used in titles and alt text.
const SiteName = "The Liquor Locker"

var navLinks = []struct {
	Href  string
	Label string
}{
	{"/range", "Range"},
	{"/contact", "Contact"},
	{"/register", "Register"},
}

// Layout renders the full HTML document around body.
func Layout(meta vm.PageMeta, contact vm.ContactDetails, body templ.Component) templ.Component {
	return Component(func(h *HTML) {
		h.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.Raw(`<title>`)
		h.Text(meta.Title)
		h.Raw(`</title><meta name="description" content="`)
		h.Text(meta.Description)
		h.Raw(`"><link rel="canonical" href="`)
		h.URL(meta.CanonicalURL)
		h.Raw(`"><meta property="og:type" content="website"><meta property="og:site_name" content="`)
		h.Text(SiteName)
		h.Raw(`"><meta property="og:title" content="`)
		h.Text(meta.Title)
		h.Raw(`"><meta property="og:description" content="`)
		h.Text(meta.Description)
		h.Raw(`"><meta property="og:url" content="`)
		h.URL(meta.CanonicalURL)
		h.Raw(`"><meta property="og:image" content="`)
		h.URL(meta.ImageURL)
		h.Raw(`"><meta name="twitter:card" content="summary_large_image">`)
		h.Raw(`<link rel="icon" href="/logo.svg" type="image/svg+xml">`)
		h.Raw(`<link rel="preconnect" href="https://fonts.googleapis.com">`)
		h.Raw(`<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Raleway:wght@400;500;600;700;800;900&display=swap">`)
		h.Raw(`<link rel="stylesheet" href="/static/css/site.css">`)
		h.Raw(`<script src="/static/js/particles.js" defer></script>`)
		h.Raw(`<script src="/static/js/hero.js" defer></script>`)
		h.Raw(`<script src="/static/js/site.js" defer></script>`)
		h.Raw(`</head><body>`)
		h.Render(Navbar(meta.Path))
		h.Raw(`<main id="content">`)
		h.Render(body)
		h.Raw(`</main>`)
		h.Render(Footer(contact))
		h.Raw(`</body></html>`)
	})
}

// Navbar renders the fixed header. site.js toggles its scrolled class and the
// mobile menu.
func Navbar(activePath string) templ.Component {
	return Component(func(h *HTML) {
		h.Raw(`<header class="site-header" data-navbar><nav class="navbar">`)
		h.Raw(`<div class="navbar-logo"><a href="/" aria-label="`)
		h.Text(SiteName + " home")
		h.Raw(`"><img src="/logo.svg" alt="`)
		h.Text(SiteName)
		h.Raw(`" width="40" height="40"></a></div>`)
		h.Raw(`<button class="nav-toggle" type="button" aria-label="Menu" aria-expanded="false" aria-controls="nav-links" data-nav-toggle>`)
		h.Raw(`<span></span><span></span><span></span></button>`)
		h.Raw(`<ul class="nav-links" id="nav-links">`)
		for _, l := range navLinks {
			h.Raw(`<li><a href="`)
			h.URL(l.Href)
			h.Raw(`"`)
			if l.Href == activePath {
				h.Raw(` aria-current="page"`)
			}
			h.Raw(`>`)
			h.Text(l.Label)
			h.Raw(`</a></li>`)
		}
		h.Raw(`</ul></nav></header><div class="navbar-spacer" aria-hidden="true"></div>`)
	})
}

// Footer renders the logo, social links, contact details and credit.
func Footer(c vm.ContactDetails) templ.Component {
	return Component(func(h *HTML) {
		h.Raw(`<footer class="site-footer"><div class="footer-inner">`)

		h.Raw(`<div class="footer-column"><img class="footer-logo" src="/logo.svg" alt="`)
		h.Text(SiteName + " logo")
		h.Raw(`" width="150" height="150">`)
		h.Render(SocialLinks(c, "/icons/facebook.svg", "/icons/instagram.svg", 20))
		h.Raw(`</div>`)

		h.Raw(`<div class="footer-column"><p><a href="mailto:`)
		h.Text(c.Email)
		h.Raw(`">`)
		h.Text(c.Email)
		h.Raw(`</a></p><p><a href="`)
		h.Text(c.PhoneHref)
		h.Raw(`">`)
		h.Text(c.Phone)
		h.Raw(`</a></p><p>`)
		h.Text(c.Location)
		h.Raw(`</p></div>`)

		h.Raw(`<div class="footer-column"><p><a href="https://sidewalks.co.nz" target="_blank" rel="noopener noreferrer">Created by Sidewalk</a></p></div>`)
		h.Raw(`</div></footer>`)
	})
}

// SocialLinks renders the Facebook and Instagram icon links.
func SocialLinks(c vm.ContactDetails, facebookIcon, instagramIcon string, size int) templ.Component {
	return Component(func(h *HTML) {
		links := []struct{ href, icon, label string }{
			{c.Facebook, facebookIcon, "Facebook"},
			{c.Instagram, instagramIcon, "Instagram"},
		}
		h.Raw(`<div class="socials">`)
		for _, l := range links {
			h.Raw(`<a href="`)
			h.URL(l.href)
			h.Raw(`" target="_blank" rel="noopener noreferrer" aria-label="`)
			h.Text(l.label)
			h.Raw(`"><img src="`)
			h.URL(l.icon)
			h.Raw(`" alt="`)
			h.Text(l.label)
			h.Raw(`" width="`)
			h.Int(size)
			h.Raw(`" height="`)
			h.Int(size)
			h.Raw(`"></a>`)
		}
		h.Raw(`</div>`)
	})
}

// WaveDivider renders the decorative wave between sections. flip points the
// wave downward over the section above.
func WaveDivider(flip bool, height int, color string) templ.Component {
	return Component(func(h *HTML) {
		class := "wave normal"
		transform := ""
		if flip {
			class = "wave flip"
			transform = ` transform="scale(1,-1) translate(0,-100)"`
		}
		if color == "" {
			color = "var(--background)"
		}

		h.Raw(`<div class="`)
		h.Raw(class)
		h.Raw(`" style="--wave-h: `)
		h.Int(height)
		h.Raw(`px; color: `)
		h.Text(color)
		h.Raw(`" aria-hidden="true">`)
		h.Raw(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1000 100" preserveAspectRatio="none">`)
		h.Raw(`<path d="M0 0v4l250 64 125-32 250 64 375-96V0H0z" fill="currentColor"`)
		h.Raw(transform)
		h.Raw(`/></svg></div>`)
	})
}

// ParticleCanvas renders a canvas picked up by particles.js. mode is
// "global" to size against the viewport or "section" to size against the
// enclosing element.
func ParticleCanvas(mode string) templ.Component {
	return Component(func(h *HTML) {
		h.Raw(`<canvas class="particles particles-`)
		h.Text(mode)
		h.Raw(`" data-particles="`)
		h.Text(mode)
		h.Raw(`" aria-hidden="true"></canvas>`)
	})
}
