package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/liquorlocker/internal/domain/model"
)

// ErrCatalogUnavailable indicates the catalog source could not be read or parsed.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// CatalogStore defines the driven port for the read-only brand catalog.
// ListBrands returns brands in source order and wraps ErrCatalogUnavailable
// when the source is missing or malformed.
type CatalogStore interface {
	ListBrands(ctx context.Context) ([]model.Brand, error)
}
