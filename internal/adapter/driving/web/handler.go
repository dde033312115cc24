// Package web implements the HTML site driving adapter using templ components.
package web

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/ericfisherdev/liquorlocker/internal/adapter/driving/web/templates"
	"github.com/ericfisherdev/liquorlocker/internal/adapter/driving/web/templates/pages"
	vm "github.com/ericfisherdev/liquorlocker/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/liquorlocker/internal/application"
	"github.com/ericfisherdev/liquorlocker/internal/domain/motion"
	"github.com/ericfisherdev/liquorlocker/internal/domain/port/driven"
)

const siteDescription = "Supplying premium spirits, wine, and beer to retailers and venues."

// heroViewport is the nominal viewport the hero layers are sampled for. The
// browser only reads slot percentages, so the size just has to be plausible.
var heroViewport = motion.Size{Width: 1440, Height: 900, DPR: 1}

// Handler is the web driving adapter that serves HTML via templ components.
type Handler struct {
	catalog *application.CatalogService
	hero    *application.HeroService
	images  *application.ImageService
	public  fs.FS
	siteURL string
	logger  *slog.Logger

	// newRand returns the random source for one request.
	newRand func() motion.Rand
}

// NewHandler creates a Handler with all required dependencies. public is the
// public asset directory; siteURL is the absolute site origin used for
// canonical and social preview links.
func NewHandler(
	catalog *application.CatalogService,
	hero *application.HeroService,
	images *application.ImageService,
	public fs.FS,
	siteURL string,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		catalog: catalog,
		hero:    hero,
		images:  images,
		public:  public,
		siteURL: siteURL,
		logger:  logger,
		newRand: func() motion.Rand { return motion.Unseeded() },
	}
}

// Home renders the landing page with freshly sampled hero layers and
// featured picks.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	rng := h.newRand()
	home := vm.HomeViewModel{
		Layers:   toHeroLayers(h.hero.Layers(r.Context(), rng, heroViewport)),
		Featured: toFeaturedViewModel(h.catalog.FeaturedPicks(r.Context(), rng)),
	}

	h.render(w, r, templates.SiteName+" | Premium Alcohol Distributor", pages.Home(home, contactDetails))
}

// Range renders the catalog page. The catalog is read on every request.
func (h *Handler) Range(w http.ResponseWriter, r *http.Request) {
	rv := toRangeViewModel(h.catalog.Brands(r.Context()))
	h.render(w, r, "Our Range | "+templates.SiteName, pages.Range(rv))
}

// Register renders the trade account page.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "Register | "+templates.SiteName, pages.Register(contactDetails))
}

// Contact renders the contact page.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "Contact | "+templates.SiteName, pages.Contact(contactDetails))
}

// HeroPoster renders the social preview image of the hero.
func (h *Handler) HeroPoster(w http.ResponseWriter, r *http.Request) {
	data, err := h.hero.Poster(r.Context(), h.newRand())
	if err != nil {
		h.logger.Error("failed to render hero poster", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=300")
	_, _ = w.Write(data)
}

// ResizedImage serves a public image scaled to the requested width:
// GET /img?src=/products/a.png&w=420.
func (h *Handler) ResizedImage(w http.ResponseWriter, r *http.Request) {
	src := r.URL.Query().Get("src")
	width, err := strconv.Atoi(r.URL.Query().Get("w"))
	if src == "" || err != nil {
		http.Error(w, "src and w are required", http.StatusBadRequest)
		return
	}

	img, err := h.images.Resize(r.Context(), src, width)
	switch {
	case errors.Is(err, application.ErrWidthNotAllowed):
		http.Error(w, "width not allowed", http.StatusBadRequest)
		return
	case errors.Is(err, driven.ErrImageNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		h.logger.Error("failed to resize image", "src", src, "width", width, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(img.Data)
}

// render wraps body in the site layout and writes it.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, title string, body templ.Component) {
	meta := vm.PageMeta{
		Title:        title,
		Description:  siteDescription,
		CanonicalURL: h.siteURL + r.URL.Path,
		ImageURL:     h.siteURL + "/og/hero.png",
		Path:         r.URL.Path,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Layout(meta, contactDetails, body).Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", "path", r.URL.Path, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
