// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// PageMeta holds the document head fields shared by every page.
type PageMeta struct {
	Title       string
	Description string
	// CanonicalURL is the absolute URL of the page.
	CanonicalURL string
	// ImageURL is the absolute URL of the social preview image.
	ImageURL string
	// Path is the request path, used to mark the active nav link.
	Path string
}

// HeroLayerViewModel holds one parallax layer for the hero. Positions are
// slot percentages; the browser converts them to pixels for its viewport.
type HeroLayerViewModel struct {
	Src       string
	SizeClass string
	Depth     float64
	XPct      float64
	YPct      float64
	Scale     float64
	Opacity   float64
	Blur      float64
	Rotation  float64
}

// FeaturedProductViewModel holds a single tilted product card.
type FeaturedProductViewModel struct {
	Name     string
	Image    string
	Srcset   string
	Rotation int
	Index    int
	// Phase is the CSS animation delay of the card's float cycle.
	Phase string
}

// FeaturedViewModel holds the home page's featured picks section.
type FeaturedViewModel struct {
	Heading  string
	Products []FeaturedProductViewModel
}

// HomeViewModel holds everything rendered on the home page.
type HomeViewModel struct {
	Layers   []HeroLayerViewModel
	Featured FeaturedViewModel
}

// ProductViewModel holds a product card on the range page.
type ProductViewModel struct {
	Key    string
	Name   string
	Image  string
	Srcset string
}

// BrandViewModel holds a brand section on the range page.
type BrandViewModel struct {
	Name string
	// Anchor is the URL slug used as the section id.
	Anchor string
	// DescriptionHTML is sanitized HTML rendered from the brand's markdown.
	DescriptionHTML string
	Logo            string
	Products        []ProductViewModel
}

// RangeViewModel holds the range page.
type RangeViewModel struct {
	Brands []BrandViewModel
	// Logos are the brands shown in the logo strip: those with a logo.
	Logos []BrandViewModel
}

// ContactDetails holds the business contact information shown in the footer
// and on the contact and register pages.
type ContactDetails struct {
	Email     string
	Phone     string
	PhoneHref string
	Location  string
	Facebook  string
	Instagram string
}
