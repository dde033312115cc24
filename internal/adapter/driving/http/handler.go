package httphandler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ericfisherdev/liquorlocker/internal/application"
)

// Handler is the HTTP driving adapter that serves the JSON API.
type Handler struct {
	catalog *application.CatalogService
	logger  *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(catalog *application.CatalogService, logger *slog.Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// RegisterAPIRoutes registers the JSON API routes on mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/brands", h.ListBrands)
	mux.HandleFunc("GET /api/products", h.ListProductImages)
	mux.HandleFunc("GET /api/health", h.Health)
}

// NewServeMux creates an http.Handler with the API routes registered and
// wrapped with the standard middleware.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	RegisterAPIRoutes(mux, h)
	return ApplyMiddleware(mux, logger)
}

// ListBrands returns the whole catalog. An unreadable catalog is reported as
// an empty list, never as an error status.
func (h *Handler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands := h.catalog.Brands(r.Context())

	resp := BrandsResponse{Brands: make([]any, 0, len(brands))}
	for _, b := range brands {
		resp.Brands = append(resp.Brands, toBrandJSON(b))
	}

	h.logger.Debug("brands listed", "count", len(brands), "request_id", RequestID(r.Context()))
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, resp)
}

// ListProductImages returns the URL paths of the hero image pool. An
// unreadable directory is reported as an empty list.
func (h *Handler) ListProductImages(w http.ResponseWriter, r *http.Request) {
	images := h.catalog.Images(r.Context())

	h.logger.Debug("product images listed", "count", len(images), "request_id", RequestID(r.Context()))
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, ImagesResponse{Images: images})
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}
