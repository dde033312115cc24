package httphandler

import (
	"encoding/json"
	"net/http"

	"github.com/ericfisherdev/liquorlocker/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// ProductResponse is the JSON representation of a product.
type ProductResponse struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// BrandResponse is the JSON representation of a brand, in the same shape as
// the catalog file.
type BrandResponse struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Logo        string            `json:"logo"`
	Products    []ProductResponse `json:"products"`
}

// BrandsResponse is the body of GET /api/brands. Each element is either the
// brand's stored catalog entry (json.RawMessage) or a BrandResponse.
type BrandsResponse struct {
	Brands []any `json:"brands"`
}

// ImagesResponse is the body of GET /api/products.
type ImagesResponse struct {
	Images []string `json:"images"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// toBrandJSON returns the brand's stored catalog entry verbatim, falling
// back to a BrandResponse for brands that were not loaded from a document.
func toBrandJSON(b model.Brand) any {
	if len(b.Source) > 0 {
		return b.Source
	}
	return toBrandResponse(b)
}

// toBrandResponse converts a domain Brand to its JSON representation.
// Products is never null.
func toBrandResponse(b model.Brand) BrandResponse {
	products := make([]ProductResponse, 0, len(b.Products))
	for _, p := range b.Products {
		products = append(products, ProductResponse{Name: p.Name, Image: p.Image})
	}

	return BrandResponse{
		Name:        b.Name,
		Description: b.Description,
		Logo:        b.Logo,
		Products:    products,
	}
}
